package main

import (
	"fmt"
	"os"

	"github.com/libmw/vite/cmd"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vite",
	Short: "Vite - a static-file dev server for local development.",
	Long: `Vite is a small dev server for serving a project directory while you
work on it. It reports the Local and Network URLs the server is
reachable on and keeps terminal output readable by collapsing repeated
log lines.

Usage:
  vite <command> [flags]

Available Commands:
  serve      Start the dev server

Run 'vite help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'vite serve' to start the dev server.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.ServeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
