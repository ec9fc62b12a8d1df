package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Semantic formatters for different types of CLI output.
var (
	// TagInfo formats the logger prefix tag on informational lines.
	// Cyan bold with color, unchanged without.
	TagInfo = Formatter{color.New(color.FgCyan, color.Bold), "", ""}

	// TagWarn formats the logger prefix tag on warning lines.
	// Yellow bold with color, unchanged without.
	TagWarn = Formatter{color.New(color.FgYellow, color.Bold), "", ""}

	// TagError formats the logger prefix tag on error lines.
	// Red bold with color, unchanged without.
	TagError = Formatter{color.New(color.FgRed, color.Bold), "", ""}

	// Timestamp formats the time-of-day prefix on timestamped lines.
	// Gray with color, unchanged without.
	Timestamp = Formatter{color.New(color.FgHiBlack), "", ""}

	// Repeat formats the (xN) collapse counter appended to repeated messages.
	// Yellow with color, unchanged without.
	Repeat = Formatter{color.New(color.FgYellow), "", ""}

	// Label formats the "Local:"/"Network:" prefix on server URL lines.
	// Green bold with color, unchanged without.
	Label = Formatter{color.New(color.FgGreen, color.Bold), "", ""}

	// URL formats a server URL.
	// Cyan with color, unchanged without.
	URL = Formatter{color.New(color.FgCyan), "", ""}

	// Port formats the port token inside a server URL.
	// Cyan bold with color, unchanged without.
	Port = Formatter{color.New(color.FgCyan, color.Bold), "", ""}

	// Success formats success indicators and messages.
	// Green with color, unchanged without.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages.
	// Red with color, unchanged without.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Muted formats de-emphasized or secondary text.
	// Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}
