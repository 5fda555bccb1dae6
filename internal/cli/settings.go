package cli

import (
	"github.com/spf13/cobra"

	"gridctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the grid defaults interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
