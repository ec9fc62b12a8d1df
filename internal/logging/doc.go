// Package logger prints developer-facing console output for the dev
// server without flooding the terminal with repeats.
//
// # Severity Gating
//
// A Logger is built with a threshold level; messages below it are
// dropped. Levels order as silent < error < warn < info, so a logger at
// LevelWarn prints warnings and errors but not info lines.
//
// # Repeat Collapsing
//
// On interactive terminals (and outside CI), printing the same message
// at the same severity twice in a row clears the screen and reprints
// the message with an (xN) counter instead of scrolling duplicates.
// When clearing is not permitted every accepted message prints as-is.
//
// # One-time Warnings
//
//	log.WarnOnce("optimizing dependencies...")
//
// prints at most once per logger lifetime for a given message.
//
// # Error Bookkeeping
//
// Attaching an error to a call records its identity:
//
//	log.Error("failed to load config", logger.LogOptions{Error: err})
//	log.HasErrorLogged(err) // true, for this exact err value
//
// This lets callers avoid double-reporting an error that was already
// surfaced. Identity is by error value, not message text, and a caller
// that logs without attaching the error leaves no record.
package logger
