package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridctl/internal/table"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List managed table documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := table.List()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Printf("%s\t%s\n", table.DocumentName(p), p)
		}
		return nil
	},
}
