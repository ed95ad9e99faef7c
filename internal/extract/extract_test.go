package extract

import (
	"testing"

	"finchat/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"currency marker", "Gastei R$50 no mercado", "50", true},
		{"marker with space", "paguei R$ 12,50 de uber", "12.5", true},
		{"bare integer", "50", "50", true},
		{"comma decimals", "gastei 35,75 em lazer", "35.75", true},
		{"dot decimals", "comprei algo por 19.9", "19.9", true},
		{"first of many", "paguei 30 e depois 45", "30", true},
		{"lowercase marker", "recebi r$1200 de salário", "1200", true},
		{"no digits", "gastei muito no mercado", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := Amount(tc.text)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				expected, err := decimal.NewFromString(tc.expected)
				require.NoError(t, err)
				assert.True(t, expected.Equal(value), "got %s, want %s", value, expected)
			}
		})
	}
}

func TestType(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected models.TransactionType
	}{
		{"income verb", "recebi R$1200 hoje", models.TypeIncome},
		{"income accented noun", "meu salário caiu", models.TypeIncome},
		{"expense verb", "gastei 50 no mercado", models.TypeExpense},
		{"expense transfer", "transferi 200 para poupança", models.TypeExpense},
		{"no verb defaults to expense", "R$30 no cinema", models.TypeExpense},
		// Income verbs have priority over expense verbs on overlap.
		{"overlap prefers income", "ganhei 100 e paguei 50", models.TypeIncome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Type(tc.text))
		})
	}
}

func TestCorrectionDirective(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected Correction
		found    bool
	}{
		{"verbose", "corrigir mercado para alimentacao", Correction{From: "mercado", To: "alimentacao"}, true},
		{"verbose first person", "corrigo mercado para lazer", Correction{From: "mercado", To: "lazer"}, true},
		{"terse", "corrigir: mercado vira alimentacao", Correction{From: "mercado", To: "alimentacao"}, true},
		{"lowercases tokens", "Corrigir MERCADO para LAZER", Correction{From: "mercado", To: "lazer"}, true},
		// The verbose form captures the first bare word after the verb, so a
		// filler article becomes the from-token. Preserved behavior.
		{"filler word captured", "corrigir a mercado para lazer", Correction{From: "a", To: "lazer"}, true},
		{"no directive", "gastei 50 no mercado", Correction{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := CorrectionDirective(tc.text)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, c)
		})
	}
}

func TestGoalDeclaration(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"with qualifier", "meta: economizar R$ 200 este mês", "200", true},
		{"poupar", "minha meta é poupar R$150,50", "150.5", true},
		{"no qualifier", "meta economizar R$300", "300", true},
		{"no goal keyword", "quero economizar dinheiro", "", false},
		{"goal without amount", "meta: economizar muito", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := GoalDeclaration(tc.text)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				expected, err := decimal.NewFromString(tc.expected)
				require.NoError(t, err)
				assert.True(t, expected.Equal(amount), "got %s, want %s", amount, expected)
			}
		})
	}
}
