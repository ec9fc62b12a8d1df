// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for the different kinds of text the
// dev server prints (severity tags, timestamps, URLs, counters) that
// render appropriately based on terminal capabilities. When colors are
// available, content is colorized. When NO_COLOR is set or the terminal
// doesn't support colors, plain text is used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.TagInfo.Sprint("[vite]")       // Logger prefix tag, info lines
//	ui.TagWarn.Sprint("[vite]")       // Logger prefix tag, warning lines
//	ui.TagError.Sprint("[vite]")      // Logger prefix tag, error lines
//	ui.Timestamp.Sprint("3:04:05 PM") // Time-of-day prefix
//	ui.Repeat.Sprint("(x2)")          // Collapsed-repeat counter
//	ui.Label.Sprint("Local:")         // Server URL labels
//	ui.URL.Sprint("http://...")       // Server URLs
//	ui.Port.Sprint("5173")            // Port token inside a URL
//	ui.Muted.Sprint("press h to show help")
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, most formatters pass text through
// unchanged; Muted falls back to (parentheses).
package ui
