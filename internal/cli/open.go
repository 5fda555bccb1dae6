package cli

import (
	"github.com/spf13/cobra"

	"gridctl/internal/app"
	"gridctl/internal/table"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <file-or-name>",
	Short: "Open a table document in the editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		// bare names resolve to the managed tables directory
		if table.DocumentName(path) == path {
			p, err := table.DefaultPath(path)
			if err != nil {
				return err
			}
			path = p
		}
		return app.Start(path)
	},
}
