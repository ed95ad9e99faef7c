// Package data handles the import, export and clear commands
package data

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finchat/cmd/root"
	"finchat/internal/logging"
	"finchat/internal/transfer"
)

var outputFile string

// Cmd represents the data command
var Cmd = &cobra.Command{
	Use:   "data",
	Short: "Export, import or clear the stored data",
	Long: `Export the full state as JSON or CSV, import a previously exported
JSON document, or wipe transactions and goals.`,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full state as a JSON document",
	RunE:  exportFunc,
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Export the transactions as CSV",
	RunE:  exportCSVFunc,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  importFunc,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all transactions and goals",
	RunE:  clearFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to a file instead of stdout")
	exportCSVCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write to a file instead of stdout")

	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(exportCSVCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(clearCmd)
}

func exportFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := transfer.ExportToFile(responder.State(), outputFile); err != nil {
			return err
		}
		root.Log.WithField(logging.FieldFile, outputFile).Info("State exported")
		return nil
	}

	doc, err := transfer.Export(responder.State())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(doc))
	return nil
}

func exportCSVFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := transfer.ExportCSVToFile(responder.State(), outputFile); err != nil {
			return err
		}
		root.Log.WithField(logging.FieldFile, outputFile).Info("Transactions exported as CSV")
		return nil
	}

	doc, err := transfer.ExportCSV(responder.State())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}

func importFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	msg, err := responder.Import(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func clearFunc(cmd *cobra.Command, args []string) error {
	responder, err := root.BuildResponder()
	if err != nil {
		return err
	}

	msg, err := responder.Clear()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
