package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/libmw/vite/internal/terminal"
	"github.com/libmw/vite/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when
// output goes to an interactive terminal.
//
// It returns the spinner and a cleanup function. Set spinner.FinalMSG
// before calling cleanup to control the final message shown.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Spinner color failures are cosmetic; continue without it.
	_ = s.Color("cyan")

	interactive := terminal.IsTTY(os.Stdout)
	if interactive {
		s.Start()
	}

	cleanup := func() {
		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if interactive {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
