// Package aggregate derives the reporting series from the application state.
// It holds no state of its own: every function is a pure computation over the
// state plus, where relevant, an explicit "now".
package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"finchat/internal/models"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one (label, total) pair of an aggregate series.
type SeriesPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Summary holds the headline totals of the whole transaction sequence.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Count   int             `json:"count"`
}

// GoalProgress is the monthly savings picture against the active goal.
type GoalProgress struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Saved    decimal.Decimal `json:"saved"`
	Percent  decimal.Decimal `json:"percent"`
}

// Summarize totals income and expenses over all transactions.
func Summarize(state *models.State) Summary {
	s := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Count:   len(state.Transactions),
	}
	for _, tx := range state.Transactions {
		switch tx.Type {
		case models.TypeIncome:
			s.Income = s.Income.Add(tx.Value)
		case models.TypeExpense:
			s.Expense = s.Expense.Add(tx.Value)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// CategoryTotals sums expense values grouped by category, sorted by total
// descending. Ties keep first-encountered-category order. Income transactions
// are excluded entirely; a missing category counts as "outros".
func CategoryTotals(state *models.State) []SeriesPoint {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range state.Transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		category := tx.Category
		if category == "" {
			category = models.CategoryOther
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(tx.Value)
	}

	series := make([]SeriesPoint, 0, len(order))
	for _, category := range order {
		series = append(series, SeriesPoint{Label: category, Total: totals[category]})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Total.GreaterThan(series[j].Total)
	})
	return series
}

// WeekLabel returns the zero-padded ISO-8601 week label for t, e.g.
// "2024-W01". time.Time.ISOWeek implements the Thursday-anchored rule the
// label requires; padding keeps the lexicographic sort chronological.
func WeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeeklyTotals sums expense values grouped by ISO week label, sorted
// ascending by label.
func WeeklyTotals(state *models.State) []SeriesPoint {
	totals := make(map[string]decimal.Decimal)

	for _, tx := range state.Transactions {
		if tx.Type != models.TypeExpense {
			continue
		}
		label := WeekLabel(tx.Date)
		totals[label] = totals[label].Add(tx.Value)
	}

	series := make([]SeriesPoint, 0, len(totals))
	for label, total := range totals {
		series = append(series, SeriesPoint{Label: label, Total: total})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Label < series[j].Label
	})
	return series
}

// Progress computes the savings picture for the active goal: expenses of the
// current calendar month (per now), optionally filtered to the goal category,
// are counted as spent. saved = max(amount - spent, 0) and percent is
// saved/amount clamped to [0, 100], or 0 when the goal amount is 0. The
// second return is false when no goal is defined.
func Progress(state *models.State, now time.Time) (GoalProgress, bool) {
	goal, ok := state.ActiveGoal()
	if !ok {
		return GoalProgress{}, false
	}

	spent := decimal.Zero
	for _, tx := range state.Transactions {
		if tx.Type != models.TypeExpense || !sameMonth(tx.Date, now) {
			continue
		}
		if goal.Category != "" && !strings.EqualFold(tx.Category, goal.Category) {
			continue
		}
		spent = spent.Add(tx.Value)
	}

	saved := goal.Amount.Sub(spent)
	if saved.IsNegative() {
		saved = decimal.Zero
	}

	percent := decimal.Zero
	if goal.Amount.IsPositive() {
		percent = saved.Div(goal.Amount).Mul(decimal.NewFromInt(100))
		if percent.GreaterThan(decimal.NewFromInt(100)) {
			percent = decimal.NewFromInt(100)
		}
	}

	return GoalProgress{
		Amount:   goal.Amount,
		Category: goal.Category,
		Spent:    spent,
		Saved:    saved,
		Percent:  percent,
	}, true
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
