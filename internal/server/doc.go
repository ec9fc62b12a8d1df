// Package server implements the static-file dev server and the address
// report printed after it starts listening.
//
// Listen binds the socket (probing successive ports when the requested
// one is taken, unless strict port mode is on), Serve accepts
// connections until the context is canceled, and PrintURLs tells the
// user which Local and Network URLs the server is reachable on:
//
//	srv, err := server.Listen(opts)
//	...
//	srv.PrintURLs(log)
//	err = srv.Serve(ctx)
//
// The address report distinguishes loopback binds (a single Local URL
// plus a hint that --host exposes the server) from wildcard or explicit
// binds, where every qualifying interface address is listed in
// enumeration order.
package server
