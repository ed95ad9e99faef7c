// Package transfer implements the import/export boundary: the state travels
// as a JSON document, and the transaction sequence can additionally be
// exported as CSV.
package transfer

import (
	"encoding/json"
	"fmt"
	"os"

	"finchat/internal/models"
	"finchat/internal/trackererror"
)

// Export serializes the full state to an indented JSON document.
func Export(state *models.State) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling state document: %w", err)
	}
	return data, nil
}

// ExportToFile writes the state document to path.
func ExportToFile(state *models.State, path string) error {
	data, err := Export(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, models.PermissionExportFile); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ParseDocument validates and parses an import document. The document must be
// valid JSON and carry a "transactions" field holding an array; anything else
// is rejected with an InvalidImportError and the caller's state stays
// untouched. The returned state is normalized and ready for ledger.Replace.
func ParseDocument(data []byte) (*models.State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &trackererror.InvalidImportError{Reason: "malformed JSON", Err: err}
	}

	rawTransactions, ok := raw["transactions"]
	if !ok {
		return nil, &trackererror.InvalidImportError{Reason: "transactions field missing"}
	}
	var transactions []models.Transaction
	if err := json.Unmarshal(rawTransactions, &transactions); err != nil {
		return nil, &trackererror.InvalidImportError{Reason: "transactions field is not an array of transactions", Err: err}
	}
	if transactions == nil {
		return nil, &trackererror.InvalidImportError{Reason: "transactions field is null"}
	}

	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, &trackererror.InvalidImportError{Reason: "document does not match the state schema", Err: err}
	}
	state.Normalize()
	return &state, nil
}

// ParseFile reads and validates an import document from path.
func ParseFile(path string) (*models.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return ParseDocument(data)
}
