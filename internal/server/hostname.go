package server

// Loopback and wildcard address literals.
const (
	loopbackIPv4 = "127.0.0.1"
	loopbackIPv6 = "::1"
	wildcardIPv4 = "0.0.0.0"
	wildcardIPv6 = "::"
)

var wildcardHosts = map[string]struct{}{
	wildcardIPv4: {},
	wildcardIPv6: {},
	"0000:0000:0000:0000:0000:0000:0000:0000": {},
}

// Hostname pairs the address the server binds with the name shown to
// the user. A nil Host means listen on all interfaces.
type Hostname struct {
	Host *string
	Name string
}

// ResolveHostname maps the configured host option onto a bind address
// and a display name. The option is nil when no host was configured
// (bind loopback, present as localhost) and empty when the host flag
// was given without a value (listen on all interfaces).
func ResolveHostname(optionsHost *string) Hostname {
	var host *string
	switch {
	case optionsHost == nil:
		h := "localhost"
		host = &h
	case *optionsHost != "":
		host = optionsHost
	}

	name := "localhost"
	if host != nil {
		if _, wildcard := wildcardHosts[*host]; !wildcard {
			name = *host
		}
	}

	// localhost always resolves to the IPv4 loopback for a dev server;
	// skipping the DNS lookup keeps startup deterministic.
	if host != nil && *host == "localhost" {
		h := loopbackIPv4
		host = &h
	}

	return Hostname{Host: host, Name: name}
}
