// Package models defines the core data structures shared across the application.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money leaving the wallet from money entering it.
// The wire values are the Portuguese words the chat interface understands, so a
// persisted state file reads the way the user typed.
type TransactionType string

const (
	TypeExpense TransactionType = "despesa"
	TypeIncome  TransactionType = "receita"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a single registered expense or income. Immutable once
// created, except for Category which a correction directive may rewrite.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Value    decimal.Decimal `json:"value"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     time.Time       `json:"date"`
}

// NewTransaction creates a transaction with a fresh ID.
func NewTransaction(txType TransactionType, value decimal.Decimal, category, note string, date time.Time) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Type:     txType,
		Value:    value,
		Category: category,
		Note:     note,
		Date:     date,
	}
}

// Goal is a monthly savings target. Category is an optional filter; empty
// means the goal applies to expenses in every category.
type Goal struct {
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Settings holds the user preferences that travel with the state blob. The
// command line surface does not act on them, but they must survive load, save,
// import, export and clear unchanged.
type Settings struct {
	Theme        string `json:"theme"`
	FontScale    int    `json:"fontScale"`
	ReduceMotion bool   `json:"reduceMotion"`
}

// DefaultSettings returns the settings used when the state blob carries none.
func DefaultSettings() Settings {
	return Settings{
		Theme:        "light",
		FontScale:    100,
		ReduceMotion: false,
	}
}

// State is the full application state: the transaction sequence, the active
// goal (the slice has cardinality 0 or 1) and the user settings. It is the
// unit of persistence and of import/export.
type State struct {
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	Settings     Settings      `json:"settings"`
}

// NewState returns an empty state with default settings. Slices are allocated
// so the state always serializes with JSON arrays, never null.
func NewState() *State {
	return &State{
		Transactions: []Transaction{},
		Goals:        []Goal{},
		Settings:     DefaultSettings(),
	}
}

// ActiveGoal returns the singleton goal, if one is set.
func (s *State) ActiveGoal() (Goal, bool) {
	if len(s.Goals) == 0 {
		return Goal{}, false
	}
	return s.Goals[0], true
}

// Normalize repairs a state loaded from an external document: nil slices
// become empty ones and missing settings fall back to the defaults.
func (s *State) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Settings == (Settings{}) {
		s.Settings = DefaultSettings()
	}
	if s.Settings.Theme == "" {
		s.Settings.Theme = "light"
	}
	if s.Settings.FontScale == 0 {
		s.Settings.FontScale = 100
	}
}
