package terminal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// cursor to origin, then erase from cursor to end of screen.
const clearSequence = "\x1b[H\x1b[J"

// IsTTY reports whether the file is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// InCI reports whether the process appears to run under a continuous
// integration environment.
func InCI() bool {
	return os.Getenv("CI") != ""
}

// Rows returns the current height of the terminal attached to f, or 0
// if the size cannot be determined.
func Rows(f *os.File) int {
	_, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return rows
}

// Clear scrolls prior output out of view and resets the cursor. It pads
// with rows-2 blank lines so earlier content survives in the scrollback
// buffer, then homes the cursor and erases to the end of the screen.
// A non-positive row count yields no padding.
func Clear(w io.Writer, rows int) {
	blank := rows - 2
	if blank < 0 {
		blank = 0
	}
	io.WriteString(w, strings.Repeat("\n", blank))
	io.WriteString(w, clearSequence)
}
