package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	verrors "github.com/libmw/vite/internal/errors"
	logger "github.com/libmw/vite/internal/logging"
)

// DefaultPort is the port the dev server tries first.
const DefaultPort = 5173

// maxPortProbes bounds how many consecutive ports are tried when the
// requested one is taken and strict port mode is off.
const maxPortProbes = 100

const shutdownTimeout = 5 * time.Second

// Options configures a dev server.
type Options struct {
	// Host is the configured host option: nil when absent (bind
	// loopback), empty when given without a value (all interfaces).
	Host *string
	// Port to bind; DefaultPort when zero.
	Port int
	// StrictPort fails instead of probing for a free port.
	StrictPort bool
	// HTTPS serves over TLS using CertFile and KeyFile.
	HTTPS    bool
	CertFile string
	KeyFile  string
	// Root is the directory served; defaults to the working directory.
	Root string
	// Base is the public base path; normalized to have leading and
	// trailing slashes.
	Base string
}

// Server is a running static-file dev server.
type Server struct {
	opts       Options
	base       string
	listener   net.Listener
	httpServer *http.Server
}

// Listen binds the server socket and prepares the handler. Serve must
// be called to start accepting connections.
func Listen(opts Options) (*Server, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, verrors.ErrRootNotFound)
	}

	if opts.HTTPS && (opts.CertFile == "" || opts.KeyFile == "") {
		return nil, verrors.ErrCertificateRequired
	}

	base := normalizeBase(opts.Base)

	bindHost := ""
	hostname := ResolveHostname(opts.Host)
	if hostname.Host != nil {
		bindHost = *hostname.Host
	}

	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}

	listener, err := listenWithProbing(bindHost, port, opts.StrictPort)
	if err != nil {
		return nil, err
	}

	if opts.HTTPS {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			listener.Close()
			return nil, fmt.Errorf("loading certificate: %w", err)
		}
		listener = tls.NewListener(listener, &tls.Config{Certificates: []tls.Certificate{cert}})
	}

	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(root))
	if base == "/" {
		mux.Handle("/", files)
	} else {
		mux.Handle(base, http.StripPrefix(strings.TrimSuffix(base, "/"), files))
	}

	return &Server{
		opts:       opts,
		base:       base,
		listener:   listener,
		httpServer: &http.Server{Handler: mux},
	}, nil
}

// listenWithProbing binds host:port, advancing to the next port on an
// address-in-use error unless strict mode is set.
func listenWithProbing(host string, port int, strict bool) (net.Listener, error) {
	for i := 0; i < maxPortProbes; i++ {
		addr := net.JoinHostPort(host, strconv.Itoa(port+i))
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			return listener, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("binding %s: %w", addr, err)
		}
		if strict {
			return nil, fmt.Errorf("binding %s: %w", addr, verrors.ErrPortInUse)
		}
	}
	return nil, fmt.Errorf("no free port in %d..%d: %w", port, port+maxPortProbes-1, verrors.ErrPortInUse)
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Base returns the normalized public base path.
func (s *Server) Base() string {
	return s.base
}

// PrintURLs reports the addresses the server is reachable on through
// the logger.
func (s *Server) PrintURLs(log logger.Logger) {
	PrintServerURLs(s.listener.Addr(), s.opts, s.base, log)
}

// Serve accepts connections until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close releases the listener without waiting for in-flight requests.
func (s *Server) Close() error {
	return s.httpServer.Close()
}

func normalizeBase(base string) string {
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
