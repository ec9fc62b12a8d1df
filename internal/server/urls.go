package server

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	logger "github.com/libmw/vite/internal/logging"
	"github.com/libmw/vite/internal/ui"
)

// InterfaceAddr describes one local network interface address.
type InterfaceAddr struct {
	Address string
	Family  string // "IPv4" or "IPv6"
}

// interfaceAddrs enumerates the local interface addresses. Swapped out
// in tests. Enumeration failure degrades to an empty list, which simply
// yields no Network lines.
var interfaceAddrs = func() []InterfaceAddr {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	var out []InterfaceAddr
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		family := "IPv6"
		if ipNet.IP.To4() != nil {
			family = "IPv4"
		}
		out = append(out, InterfaceAddr{Address: ipNet.IP.String(), Family: family})
	}
	return out
}

// URLLine is one line of the server address report.
type URLLine struct {
	// Label is "Local" or "Network".
	Label string
	// Text is the URL, or for an advisory line a plain hint.
	Text string
	// Advisory marks a hint line that carries no address.
	Advisory bool
}

// ResolveServerURLs produces the ordered address report for a server
// bound according to hostname. Lines follow the iteration order of
// addrs; no re-sorting.
func ResolveServerURLs(hostname Hostname, protocol string, port int, base string, addrs []InterfaceAddr) []URLLine {
	if hostname.Host != nil && *hostname.Host == loopbackIPv4 {
		lines := []URLLine{{
			Label: "Local",
			Text:  fmt.Sprintf("%s://%s:%d%s", protocol, hostname.Name, port, base),
		}}
		if hostname.Name != loopbackIPv4 {
			lines = append(lines, URLLine{
				Label:    "Network",
				Text:     "use --host to expose",
				Advisory: true,
			})
		}
		return lines
	}

	var lines []URLLine
	for _, a := range addrs {
		if !includeAddress(hostname.Host, a) {
			continue
		}

		label := "Network"
		if a.Address == loopbackIPv4 || a.Address == loopbackIPv6 {
			label = "Local"
		}

		host := a.Address
		if host == loopbackIPv4 {
			host = hostname.Name
		}
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}

		lines = append(lines, URLLine{
			Label: label,
			Text:  fmt.Sprintf("%s://%s:%d%s", protocol, host, port, base),
		})
	}
	return lines
}

// includeAddress decides whether one interface address belongs in the
// report for the configured host. host is nil when listening on all
// interfaces without an explicit address.
func includeAddress(host *string, a InterfaceAddr) bool {
	if a.Family == "IPv6" {
		return host != nil && strings.Contains(*host, a.Address) && *host != wildcardIPv6
	}
	if host == nil {
		return true
	}
	switch {
	case *host == wildcardIPv4, *host == wildcardIPv6:
		return true
	case strings.Contains(*host, a.Address):
		return true
	case a.Address == loopbackIPv4 && *host != loopbackIPv6:
		return true
	}
	return false
}

// PrintServerURLs resolves the listener's bound port and feeds the
// address report into the logger, one info line per URL.
func PrintServerURLs(addr net.Addr, opts Options, base string, log logger.Logger) {
	tcpAddr, ok := addr.(*net.TCPAddr)
	if !ok {
		return
	}

	protocol := "http"
	if opts.HTTPS {
		protocol = "https"
	}

	hostname := ResolveHostname(opts.Host)
	lines := ResolveServerURLs(hostname, protocol, tcpAddr.Port, base, interfaceAddrs())
	for _, line := range lines {
		log.Info(formatURLLine(line, tcpAddr.Port))
	}
}

// label column width so Local: and Network: URLs line up.
const labelWidth = 9

func formatURLLine(line URLLine, port int) string {
	label := line.Label + ":"
	pad := strings.Repeat(" ", labelWidth-len(label))

	text := line.Text
	if line.Advisory {
		text = ui.Muted.Sprint(text)
	} else {
		text = styleURL(text, port)
	}
	return "  " + ui.Success.Sprint("➜") + "  " + ui.Label.Sprint(label) + pad + text
}

// styleURL colors the URL and renders the port as a bold token.
func styleURL(u string, port int) string {
	token := ":" + strconv.Itoa(port)
	i := strings.LastIndex(u, token)
	if i < 0 {
		return ui.URL.Sprint(u)
	}
	return ui.URL.Sprint(u[:i+1]) + ui.Port.Sprint(token[1:]) + ui.URL.Sprint(u[i+len(token):])
}
