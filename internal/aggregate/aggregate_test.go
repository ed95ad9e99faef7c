package aggregate

import (
	"testing"
	"time"

	"finchat/internal/ledger"
	"finchat/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(txType models.TransactionType, category string, value float64, date time.Time) models.Transaction {
	return models.NewTransaction(txType, decimal.NewFromFloat(value), category, "", date)
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	state := models.NewState()
	ledger.ApplyTransaction(state, tx(models.TypeIncome, "renda", 1200, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 350.50, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "lazer", 49.50, now))

	s := Summarize(state)
	assert.True(t, s.Income.Equal(decimal.NewFromInt(1200)))
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 3, s.Count)
}

func TestCategoryTotals_ExcludesIncomeAndSortsDescending(t *testing.T) {
	now := time.Now()
	state := models.NewState()
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "lazer", 30, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 80, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "lazer", 20, now))
	ledger.ApplyTransaction(state, tx(models.TypeIncome, "renda", 5000, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "", 10, now))

	series := CategoryTotals(state)
	require.Len(t, series, 3)
	assert.Equal(t, "mercado", series[0].Label)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "lazer", series[1].Label)
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, models.CategoryOther, series[2].Label)
}

func TestCategoryTotals_TiesKeepFirstEncounteredOrder(t *testing.T) {
	now := time.Now()
	state := models.NewState()
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "transporte", 40, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "moradia", 40, now))

	series := CategoryTotals(state)
	require.Len(t, series, 2)
	assert.Equal(t, "transporte", series[0].Label)
	assert.Equal(t, "moradia", series[1].Label)
}

func TestWeekLabel(t *testing.T) {
	// 2024-01-01 is a Monday inside ISO week 1 of 2024.
	assert.Equal(t, "2024-W01", WeekLabel(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	// 2023-12-31 is a Sunday, still ISO week 52 of 2023.
	assert.Equal(t, "2023-W52", WeekLabel(time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC)))
}

func TestWeeklyTotals_SortedAscending(t *testing.T) {
	state := models.NewState()
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 25, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))) // W02
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "lazer", 15, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))   // W01
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 5, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))  // W01
	ledger.ApplyTransaction(state, tx(models.TypeIncome, "renda", 900, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	series := WeeklyTotals(state)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-W01", series[0].Label)
	assert.True(t, series[0].Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "2024-W02", series[1].Label)
	assert.True(t, series[1].Total.Equal(decimal.NewFromInt(25)))
}

func TestProgress_NoGoal(t *testing.T) {
	state := models.NewState()
	_, ok := Progress(state, time.Now())
	assert.False(t, ok)
}

func TestProgress_MonthlySavings(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	state := models.NewState()
	ledger.ApplyGoal(state, models.Goal{Amount: decimal.NewFromInt(200), CreatedAt: now})
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 100, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "lazer", 50, now))
	// Outside the current month: ignored.
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 999, now.AddDate(0, -1, 0)))
	// Income: ignored.
	ledger.ApplyTransaction(state, tx(models.TypeIncome, "renda", 1200, now))

	p, ok := Progress(state, now)
	require.True(t, ok)
	assert.True(t, p.Spent.Equal(decimal.NewFromInt(150)))
	assert.True(t, p.Saved.Equal(decimal.NewFromInt(50)))
	assert.True(t, p.Percent.Equal(decimal.NewFromInt(25)), "percent = %s", p.Percent)
}

func TestProgress_Overspent(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	state := models.NewState()
	ledger.ApplyGoal(state, models.Goal{Amount: decimal.NewFromInt(200), CreatedAt: now})
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 250, now))

	p, ok := Progress(state, now)
	require.True(t, ok)
	assert.True(t, p.Saved.IsZero())
	assert.True(t, p.Percent.IsZero(), "percent = %s", p.Percent)
}

func TestProgress_CategoryFilter(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	state := models.NewState()
	ledger.ApplyGoal(state, models.Goal{Amount: decimal.NewFromInt(100), Category: "lazer", CreatedAt: now})
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "Lazer", 40, now))
	ledger.ApplyTransaction(state, tx(models.TypeExpense, "mercado", 500, now))

	p, ok := Progress(state, now)
	require.True(t, ok)
	assert.True(t, p.Spent.Equal(decimal.NewFromInt(40)), "category filter is case-insensitive and excludes other categories")
	assert.True(t, p.Saved.Equal(decimal.NewFromInt(60)))
}

func TestProgress_ZeroAmountGoal(t *testing.T) {
	now := time.Now()
	state := models.NewState()
	ledger.ApplyGoal(state, models.Goal{Amount: decimal.Zero, CreatedAt: now})

	p, ok := Progress(state, now)
	require.True(t, ok)
	assert.True(t, p.Percent.IsZero())
}
