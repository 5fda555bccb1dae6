package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "gridctl – a terminal data grid editor",
	Long:  "gridctl edits typed table documents (text, numbers, dates, selects, files) in a spreadsheet-style TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: open the last (or demo) table in the TUI
		return app.Start("")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
