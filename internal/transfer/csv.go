package transfer

import (
	"fmt"
	"os"

	"finchat/internal/models"

	"github.com/gocarina/gocsv"
)

// csvRow is the CSV projection of one transaction. Amounts are fixed to two
// decimals and dates to ISO so spreadsheets sort them correctly.
type csvRow struct {
	ID       string `csv:"id"`
	Date     string `csv:"date"`
	Type     string `csv:"type"`
	Value    string `csv:"value"`
	Category string `csv:"category"`
	Note     string `csv:"note"`
}

// ExportCSV renders the transaction sequence as a CSV document.
func ExportCSV(state *models.State) (string, error) {
	rows := make([]csvRow, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		rows = append(rows, csvRow{
			ID:       tx.ID,
			Date:     tx.Date.Format("2006-01-02"),
			Type:     string(tx.Type),
			Value:    tx.Value.StringFixed(2),
			Category: tx.Category,
			Note:     tx.Note,
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshaling transactions to CSV: %w", err)
	}
	return out, nil
}

// ExportCSVToFile writes the CSV document to path.
func ExportCSVToFile(state *models.State, path string) error {
	out, err := ExportCSV(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), models.PermissionExportFile); err != nil {
		return fmt.Errorf("writing CSV file: %w", err)
	}
	return nil
}
