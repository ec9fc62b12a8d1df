// Package terminal provides low-level terminal detection and control.
//
// It answers the three environment questions the logger needs before it
// may clear the screen (is output a TTY, is the process in CI, how tall
// is the terminal) and implements the clear primitive itself.
package terminal
