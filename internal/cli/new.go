package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridctl/internal/app"
	"gridctl/internal/grid"
	"gridctl/internal/table"
)

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().Bool("no-open", false, "create the document without opening the editor")
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty table document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path, err := table.DefaultPath(name)
		if err != nil {
			return err
		}
		doc := &table.Document{
			Name: name,
			Columns: []grid.Column{
				{ID: "name", Name: "Name", Variant: grid.VariantText},
				{ID: "value", Name: "Value", Variant: grid.VariantNumber},
				{ID: "done", Name: "Done", Variant: grid.VariantCheckbox},
			},
			Rows: []map[string]any{{}, {}, {}},
		}
		if err := table.Save(path, doc); err != nil {
			return err
		}
		fmt.Println(path)
		if noOpen, _ := cmd.Flags().GetBool("no-open"); noOpen {
			return nil
		}
		return app.Start(path)
	},
}
