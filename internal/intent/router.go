// Package intent classifies raw chat text into exactly one structured intent.
package intent

import (
	"finchat/internal/extract"
	"finchat/internal/logging"
	"finchat/internal/models"
	"finchat/internal/vocab"

	"github.com/shopspring/decimal"
)

// Intent is the classified purpose of one chat message. Exactly one of the
// concrete types below is produced per message.
type Intent interface {
	intent()
}

// Correction asks for a bulk category rewrite.
type Correction struct {
	From string
	To   string
}

// Goal declares a monthly savings target via chat.
type Goal struct {
	Amount decimal.Decimal
}

// Transaction registers an expense or income.
type Transaction struct {
	Amount   decimal.Decimal
	Type     models.TransactionType
	Category string
}

// Unrecognized means no amount could be found and nothing will be mutated.
type Unrecognized struct {
	Text string
}

func (Correction) intent()   {}
func (Goal) intent()         {}
func (Transaction) intent()  {}
func (Unrecognized) intent() {}

// Router runs the field extractors in a fixed, short-circuiting priority
// order: correction, then goal declaration, then transaction. Correction
// phrasing pre-empts the others even when the text also carries an amount.
type Router struct {
	vocab  *vocab.Vocabulary
	logger logging.Logger
}

// NewRouter creates a Router over the given vocabulary.
func NewRouter(v *vocab.Vocabulary, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Router{vocab: v, logger: logger}
}

// Route classifies text into exactly one intent.
func (r *Router) Route(text string) Intent {
	if c, ok := extract.CorrectionDirective(text); ok {
		r.logger.Debug("Classified chat message",
			logging.Field{Key: logging.FieldIntent, Value: "correction"},
			logging.Field{Key: "from", Value: c.From},
			logging.Field{Key: "to", Value: c.To})
		return Correction{From: c.From, To: c.To}
	}

	if amount, ok := extract.GoalDeclaration(text); ok {
		r.logger.Debug("Classified chat message",
			logging.Field{Key: logging.FieldIntent, Value: "goal"},
			logging.Field{Key: logging.FieldAmount, Value: amount.String()})
		return Goal{Amount: amount}
	}

	amount, ok := extract.Amount(text)
	if !ok {
		r.logger.Debug("Classified chat message",
			logging.Field{Key: logging.FieldIntent, Value: "unrecognized"})
		return Unrecognized{Text: text}
	}

	tx := Transaction{
		Amount:   amount,
		Type:     extract.Type(text),
		Category: r.vocab.Categorize(text),
	}
	r.logger.Debug("Classified chat message",
		logging.Field{Key: logging.FieldIntent, Value: "transaction"},
		logging.Field{Key: logging.FieldAmount, Value: tx.Amount.String()},
		logging.Field{Key: logging.FieldType, Value: string(tx.Type)},
		logging.Field{Key: logging.FieldCategory, Value: tx.Category})
	return tx
}
