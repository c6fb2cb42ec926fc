// Package chart handles the chart-only command
package chart

import (
	"fjacquet/finance-tracker/cmd/common"
	"fjacquet/finance-tracker/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the chart command
var Cmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw budgets, expenses and incomes per month",
	Long: `Collect data (from --input, or interactively) and save a line chart of
monthly budgets, expense totals and income totals to --chart.`,
	RunE: chartFunc,
}

func chartFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return common.RunChart(cmd.Context(), c, root.Options(), cmd.InOrStdin(), cmd.OutOrStdout())
}
