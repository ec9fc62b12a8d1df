// Package errors provides typed error values for the dev server.
//
// Using sentinel errors allows callers to handle specific error
// conditions programmatically with errors.Is() rather than string
// matching.
//
// # Usage
//
// Return errors from internal packages:
//
//	if opts.StrictPort {
//	    return nil, errors.ErrPortInUse
//	}
//
// Handle errors in the CLI layer:
//
//	srv, err := server.Listen(ctx, opts)
//	if errors.Is(err, verrors.ErrPortInUse) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("binding %s: %w", addr, errors.ErrPortInUse)
package errors
