package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridctl/internal/table"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the table document format",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := table.MarshalSchema(table.DocumentSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
