package errors

import "errors"

// Server startup errors indicate the dev server could not begin listening.
var (
	// ErrPortInUse indicates the requested port is taken and strict port
	// mode prevented falling back to another one.
	ErrPortInUse = errors.New("port is already in use")

	// ErrCertificateRequired indicates HTTPS was requested without a
	// certificate and key pair.
	ErrCertificateRequired = errors.New("https requires a certificate and key file")
)

// Configuration errors indicate issues with the config file or flags.
var (
	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration file is invalid")

	// ErrRootNotFound indicates the serve root directory does not exist.
	ErrRootNotFound = errors.New("root directory not found")
)
