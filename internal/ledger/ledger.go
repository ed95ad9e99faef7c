// Package ledger owns the mutations of the application state: an append-only
// transaction sequence (with category correction as the sole rewrite), the
// singleton goal, and clearing. Each function is a reducer over *models.State;
// persistence and re-rendering are explicit side effects of the caller, never
// hidden here.
package ledger

import (
	"strings"

	"finchat/internal/models"
)

// ApplyTransaction appends a transaction to the ordered sequence. Validation
// happened upstream: the router only produces positive amounts and known
// types.
func ApplyTransaction(state *models.State, tx models.Transaction) {
	state.Transactions = append(state.Transactions, tx)
}

// ApplyCorrection rewrites the category of every transaction whose current
// category contains from as a case-insensitive substring, setting it to to
// verbatim. The replacement is not restricted to the fixed vocabulary:
// corrections may relabel to free-form tags. Returns the number of records
// changed.
func ApplyCorrection(state *models.State, from, to string) int {
	needle := strings.ToLower(from)
	count := 0
	for i := range state.Transactions {
		if strings.Contains(strings.ToLower(state.Transactions[i].Category), needle) {
			state.Transactions[i].Category = to
			count++
		}
	}
	return count
}

// ApplyGoal replaces the active goal. The goal list always has cardinality 0
// or 1.
func ApplyGoal(state *models.State, goal models.Goal) {
	state.Goals = []models.Goal{goal}
}

// Clear empties transactions and goals. Settings are preserved.
func Clear(state *models.State) {
	state.Transactions = []models.Transaction{}
	state.Goals = []models.Goal{}
}

// Replace swaps the whole state for src, e.g. after a validated import.
func Replace(state *models.State, src models.State) {
	*state = src
	state.Normalize()
}
