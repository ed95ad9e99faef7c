// Package report handles the report command
package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"finchat/cmd/root"
	"finchat/internal/aggregate"
	"finchat/internal/report"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Render spending reports over the stored transactions",
	Long: `Print a summary of income and expenses, expense totals per category,
weekly expense totals and progress against the active goal.`,
	RunE: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	state := responder.State()

	report.RenderSummary(out, aggregate.Summarize(state))
	fmt.Fprintln(out)
	report.RenderBarChart(out, "Gastos por categoria", aggregate.CategoryTotals(state))
	fmt.Fprintln(out)
	report.RenderWeekChart(out, "Gastos por semana", aggregate.WeeklyTotals(state))
	fmt.Fprintln(out)

	progress, ok := responder.Progress()
	report.RenderGoal(out, progress, ok)
	return nil
}
