// Package schema handles the schema file command
package schema

import (
	"fmt"

	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"
	"fjacquet/finance-tracker/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the schema command
var Cmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the expense and income schema to a YAML file",
	Long: `Write the schema (expense categories and income sources) to a YAML file
usable with --schema. With --input the schema is the one an import of that
file declares; otherwise it is the configured schema.`,
	RunE: schemaFunc,
}

func schemaFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	schema, err := common.DeriveSchema(cmd.Context(), c, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	path := store.DefaultSchemaFile
	if cmd.Flags().Changed("output") {
		path = root.SharedFlags.Output
	}
	if err := c.GetSchemaStore().Save(path, schema); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema saved to %s\n", path)
	return nil
}
