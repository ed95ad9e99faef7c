// Package goal handles the monthly saving goal commands
package goal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"finchat/cmd/root"
	"finchat/internal/report"
)

var (
	amount   string
	category string
)

// Cmd represents the goal command
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the monthly saving goal",
	Long:  `Set a monthly saving goal or show progress against the active one.`,
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the monthly saving goal",
	RunE:  setFunc,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show progress against the active goal",
	RunE:  showFunc,
}

func init() {
	setCmd.Flags().StringVarP(&amount, "amount", "a", "", "Goal amount in R$ (required)")
	setCmd.Flags().StringVarP(&category, "category", "c", "", "Restrict the goal to one category")
	_ = setCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(showCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid goal amount %q: %w", amount, err)
	}

	msg, err := responder.SetGoal(value, category)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func showFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	progress, ok := responder.Progress()
	report.RenderGoal(cmd.OutOrStdout(), progress, ok)
	return nil
}
