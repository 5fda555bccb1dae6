package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridctl/internal/table"
)

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("force", false, "overwrite an existing demo document")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo table document",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := table.Seed()
		path, err := table.DefaultPath(doc.Name)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			if existing, err := table.Load(path); err == nil && len(existing.Columns) > 0 {
				return fmt.Errorf("%s exists; use --force to overwrite", path)
			}
		}
		if err := table.Save(path, doc); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}
