// Package report renders aggregate series for the terminal. Purely
// presentational: it consumes (label, total) sequences and the goal summary
// and draws text, no business logic.
package report

import (
	"fmt"
	"io"
	"strings"

	"finchat/internal/aggregate"

	"github.com/shopspring/decimal"
)

const barWidth = 40

// RenderSummary writes the headline totals.
func RenderSummary(w io.Writer, s aggregate.Summary) {
	fmt.Fprintf(w, "Total de receitas: R$%s\n", s.Income.StringFixed(2))
	fmt.Fprintf(w, "Total de despesas: R$%s\n", s.Expense.StringFixed(2))
	fmt.Fprintf(w, "Saldo: R$%s\n", s.Balance.StringFixed(2))
	fmt.Fprintf(w, "Transações registradas: %d\n", s.Count)
}

// RenderBarChart draws a horizontal bar per series point, scaled to the
// largest total.
func RenderBarChart(w io.Writer, title string, series []aggregate.SeriesPoint) {
	fmt.Fprintf(w, "%s\n", title)
	if len(series) == 0 {
		fmt.Fprintln(w, "Sem dados de despesas para exibir.")
		return
	}

	max := series[0].Total
	for _, p := range series[1:] {
		if p.Total.GreaterThan(max) {
			max = p.Total
		}
	}

	labelWidth := 0
	for _, p := range series {
		if n := len([]rune(p.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	for _, p := range series {
		fmt.Fprintf(w, "%-*s %s R$%s\n", labelWidth, p.Label, bar(p.Total, max), p.Total.StringFixed(2))
	}
}

// RenderWeekChart draws the weekly series, one row per ISO week.
func RenderWeekChart(w io.Writer, title string, series []aggregate.SeriesPoint) {
	fmt.Fprintf(w, "%s\n", title)
	if len(series) == 0 {
		fmt.Fprintln(w, "Sem dados semanais para exibir.")
		return
	}

	max := series[0].Total
	for _, p := range series[1:] {
		if p.Total.GreaterThan(max) {
			max = p.Total
		}
	}

	for _, p := range series {
		fmt.Fprintf(w, "%s %s R$%s\n", p.Label, bar(p.Total, max), p.Total.StringFixed(2))
	}
}

// RenderGoal writes the goal progress summary, or the no-goal message.
func RenderGoal(w io.Writer, progress aggregate.GoalProgress, ok bool) {
	if !ok {
		fmt.Fprintln(w, "Nenhuma meta definida. Crie uma meta para acompanhar seu progresso.")
		return
	}

	scope := "no mês"
	if progress.Category != "" {
		scope = fmt.Sprintf("em %s", progress.Category)
	}
	fmt.Fprintf(w, "Meta: economizar R$%s %s.\n", progress.Amount.StringFixed(2), scope)
	fmt.Fprintf(w, "[%s] %s%%\n", gauge(progress.Percent), progress.Percent.StringFixed(0))
	fmt.Fprintf(w, "Gasto acumulado: R$%s | Economia estimada: R$%s\n",
		progress.Spent.StringFixed(2), progress.Saved.StringFixed(2))
}

// bar scales total against max to a row of block characters, at least one
// for a non-zero value.
func bar(total, max decimal.Decimal) string {
	if !max.IsPositive() {
		return ""
	}
	n := int(total.Div(max).Mul(decimal.NewFromInt(barWidth)).IntPart())
	if n == 0 && total.IsPositive() {
		n = 1
	}
	return strings.Repeat("█", n)
}

// gauge renders percent as a fixed-width progress bar.
func gauge(percent decimal.Decimal) string {
	filled := int(percent.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(barWidth)).IntPart())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
