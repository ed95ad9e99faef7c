package report

import (
	"strings"
	"testing"

	"finchat/internal/aggregate"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	var sb strings.Builder
	RenderSummary(&sb, aggregate.Summary{
		Income:  decimal.NewFromInt(1200),
		Expense: decimal.RequireFromString("400.50"),
		Balance: decimal.RequireFromString("799.50"),
		Count:   3,
	})

	out := sb.String()
	assert.Contains(t, out, "Total de receitas: R$1200.00")
	assert.Contains(t, out, "Total de despesas: R$400.50")
	assert.Contains(t, out, "Saldo: R$799.50")
	assert.Contains(t, out, "Transações registradas: 3")
}

func TestRenderBarChart(t *testing.T) {
	var sb strings.Builder
	RenderBarChart(&sb, "Despesas por categoria", []aggregate.SeriesPoint{
		{Label: "alimentação", Total: decimal.NewFromInt(80)},
		{Label: "lazer", Total: decimal.NewFromInt(20)},
	})

	out := sb.String()
	assert.Contains(t, out, "Despesas por categoria")
	assert.Contains(t, out, "alimentação")
	assert.Contains(t, out, "R$80.00")
	// The largest total fills the full bar width; smaller ones scale down.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Greater(t, strings.Count(lines[1], "█"), strings.Count(lines[2], "█"))
}

func TestRenderBarChart_Empty(t *testing.T) {
	var sb strings.Builder
	RenderBarChart(&sb, "Despesas por categoria", nil)
	assert.Contains(t, sb.String(), "Sem dados de despesas para exibir.")
}

func TestRenderWeekChart_Empty(t *testing.T) {
	var sb strings.Builder
	RenderWeekChart(&sb, "Despesas por semana", nil)
	assert.Contains(t, sb.String(), "Sem dados semanais para exibir.")
}

func TestRenderGoal(t *testing.T) {
	var sb strings.Builder
	RenderGoal(&sb, aggregate.GoalProgress{
		Amount:  decimal.NewFromInt(200),
		Spent:   decimal.NewFromInt(150),
		Saved:   decimal.NewFromInt(50),
		Percent: decimal.NewFromInt(25),
	}, true)

	out := sb.String()
	assert.Contains(t, out, "Meta: economizar R$200.00 no mês.")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "Gasto acumulado: R$150.00 | Economia estimada: R$50.00")
}

func TestRenderGoal_CategoryScope(t *testing.T) {
	var sb strings.Builder
	RenderGoal(&sb, aggregate.GoalProgress{
		Amount:  decimal.NewFromInt(100),
		Spent:   decimal.Zero,
		Saved:   decimal.NewFromInt(100),
		Percent: decimal.NewFromInt(100),
		Category: "lazer",
	}, true)
	assert.Contains(t, sb.String(), "Meta: economizar R$100.00 em lazer.")
}

func TestRenderGoal_NoGoal(t *testing.T) {
	var sb strings.Builder
	RenderGoal(&sb, aggregate.GoalProgress{}, false)
	assert.Contains(t, sb.String(), "Nenhuma meta definida.")
}
