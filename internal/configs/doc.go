// Package configs loads the optional vite.toml configuration file.
//
// The file carries defaults for the serve command; command-line flags
// always win over file values. A missing file is not an error.
//
//	[server]
//	port = 3000
//	host = "0.0.0.0"
//	base = "/app/"
//
//	[logging]
//	level = "warn"
//	clear_screen = false
package configs
