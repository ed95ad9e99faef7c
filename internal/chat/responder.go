// Package chat runs a message through the full pipeline: classify, mutate the
// ledger, persist, and phrase the Portuguese reply. Replies mirror the chat
// contract: a registered-transaction confirmation plus a category tip, a
// correction confirmation with a count, a goal confirmation, or the
// amount-not-recognized message.
package chat

import (
	"fmt"
	"strings"
	"time"

	"finchat/internal/aggregate"
	"finchat/internal/intent"
	"finchat/internal/ledger"
	"finchat/internal/logging"
	"finchat/internal/models"
	"finchat/internal/store"
	"finchat/internal/trackererror"
	"finchat/internal/transfer"
	"finchat/internal/vocab"

	"github.com/shopspring/decimal"
)

// Welcome is the first assistant message of an interactive session.
const Welcome = "Olá! Conte-me seus gastos ou receitas em linguagem natural. Ex.: 'Gastei R$50 no mercado'."

const unrecognizedReply = "Não identifiquei um valor. Tente algo como: 'Gastei R$35 em transporte'."

// Responder holds the state and collaborators of one chat session. Each
// submission runs its extract, mutate, persist pipeline to completion before
// the next one; there is no overlapping processing.
type Responder struct {
	router *intent.Router
	store  *store.StateStore
	state  *models.State
	tips   *vocab.TipTable
	now    func() time.Time
	logger logging.Logger
}

// NewResponder loads state from the store and builds a ready session.
func NewResponder(router *intent.Router, st *store.StateStore, tips *vocab.TipTable, logger logging.Logger) (*Responder, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	state, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	return &Responder{
		router: router,
		store:  st,
		state:  state,
		tips:   tips,
		now:    time.Now,
		logger: logger,
	}, nil
}

// SetClock overrides the time source. Tests use it to pin "now".
func (r *Responder) SetClock(now func() time.Time) {
	r.now = now
}

// State exposes the live state for aggregation and export. Callers must not
// mutate it directly.
func (r *Responder) State() *models.State {
	return r.state
}

// Handle processes one chat message and returns the assistant replies in
// order. A message that mutates nothing (unrecognized, correction with no
// match) still returns a reply; only persistence failures surface as errors.
func (r *Responder) Handle(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	switch in := r.router.Route(text).(type) {
	case intent.Correction:
		return r.handleCorrection(in)
	case intent.Goal:
		return r.handleGoal(in)
	case intent.Transaction:
		return r.handleTransaction(in, text)
	default:
		r.logger.Debug("Message not understood")
		return []string{unrecognizedReply}, nil
	}
}

func (r *Responder) handleCorrection(in intent.Correction) ([]string, error) {
	changed := ledger.ApplyCorrection(r.state, in.From, in.To)
	if changed == 0 {
		r.logger.Info("Correction matched nothing",
			logging.Field{Key: "from", Value: in.From})
		return []string{fmt.Sprintf("Não encontrei transações com categoria relacionada a %q.", in.From)}, nil
	}

	if err := r.store.Save(r.state); err != nil {
		return nil, fmt.Errorf("persisting correction: %w", err)
	}
	r.logger.Info("Applied category correction",
		logging.Field{Key: "from", Value: in.From},
		logging.Field{Key: "to", Value: in.To},
		logging.Field{Key: logging.FieldCount, Value: changed})
	return []string{fmt.Sprintf("Atualizei %d transação(ões) de %q para %q.", changed, in.From, in.To)}, nil
}

func (r *Responder) handleGoal(in intent.Goal) ([]string, error) {
	ledger.ApplyGoal(r.state, models.Goal{Amount: in.Amount, Category: "", CreatedAt: r.now()})
	if err := r.store.Save(r.state); err != nil {
		return nil, fmt.Errorf("persisting goal: %w", err)
	}
	r.logger.Info("Saved goal from chat",
		logging.Field{Key: logging.FieldAmount, Value: in.Amount.String()})
	return []string{fmt.Sprintf("Meta salva: economizar R$%s neste mês.", in.Amount.StringFixed(2))}, nil
}

func (r *Responder) handleTransaction(in intent.Transaction, text string) ([]string, error) {
	tx := models.NewTransaction(in.Type, in.Amount, in.Category, text, r.now())
	ledger.ApplyTransaction(r.state, tx)
	if err := r.store.Save(r.state); err != nil {
		return nil, fmt.Errorf("persisting transaction: %w", err)
	}
	r.logger.Info("Registered transaction",
		logging.Field{Key: logging.FieldTransaction, Value: tx.ID},
		logging.Field{Key: logging.FieldType, Value: string(tx.Type)},
		logging.Field{Key: logging.FieldAmount, Value: tx.Value.String()},
		logging.Field{Key: logging.FieldCategory, Value: tx.Category})

	confirmation := fmt.Sprintf("Registrei %s de R$%s em %q.", tx.Type, tx.Value.StringFixed(2), tx.Category)
	return []string{confirmation, r.tips.For(tx.Category)}, nil
}

// SetGoal is the goal-form entry point: it validates and stores a goal
// outside the chat flow. Category may be empty, meaning all categories.
func (r *Responder) SetGoal(amount decimal.Decimal, category string) (string, error) {
	if !amount.IsPositive() {
		return "", &trackererror.InvalidGoalError{Amount: amount.String(), Reason: "amount must be positive"}
	}
	ledger.ApplyGoal(r.state, models.Goal{
		Amount:    amount,
		Category:  strings.ToLower(strings.TrimSpace(category)),
		CreatedAt: r.now(),
	})
	if err := r.store.Save(r.state); err != nil {
		return "", fmt.Errorf("persisting goal: %w", err)
	}
	return "Meta financeira salva com sucesso.", nil
}

// Progress reports the active goal against the current month.
func (r *Responder) Progress() (aggregate.GoalProgress, bool) {
	return aggregate.Progress(r.state, r.now())
}

// Clear wipes transactions and goals, keeps settings, and persists.
func (r *Responder) Clear() (string, error) {
	ledger.Clear(r.state)
	if err := r.store.Save(r.state); err != nil {
		return "", fmt.Errorf("persisting cleared state: %w", err)
	}
	r.logger.Info("Cleared all data")
	return "Os dados foram limpos. Podemos recomeçar quando quiser.", nil
}

// Import replaces the whole state with a validated document and persists.
// On validation failure nothing changes.
func (r *Responder) Import(doc []byte) (string, error) {
	imported, err := transfer.ParseDocument(doc)
	if err != nil {
		return "", err
	}
	ledger.Replace(r.state, *imported)
	if err := r.store.Save(r.state); err != nil {
		return "", fmt.Errorf("persisting imported state: %w", err)
	}
	r.logger.Info("Imported state",
		logging.Field{Key: logging.FieldCount, Value: len(r.state.Transactions)})
	return "Importação concluída com sucesso.", nil
}
