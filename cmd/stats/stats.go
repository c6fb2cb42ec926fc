// Package stats handles the statistics-only command
package stats

import (
	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Print mean, median and mode of every column",
	Long: `Collect data (from --input, or interactively) and print the mean, median
and mode of the budget and of every category column.`,
	RunE: statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return common.RunStats(cmd.Context(), c, root.Options(), cmd.InOrStdin(), cmd.OutOrStdout())
}
