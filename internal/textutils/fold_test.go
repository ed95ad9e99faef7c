package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase accents", "alimentação", "alimentacao"},
		{"mixed case", "Combustível", "combustivel"},
		{"already folded", "mercado", "mercado"},
		{"empty", "", ""},
		{"full sentence", "Gastei R$50 no Supermercado São João", "gastei r$50 no supermercado sao joao"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fold(tc.input))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Paguei o CONDOMÍNIO hoje", "condominio"))
	assert.True(t, ContainsFold("salário do mês", "salario"))
	assert.False(t, ContainsFold("cinema com amigos", "mercado"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "gastei 50 no mercado", CollapseSpaces("  gastei   50\tno  mercado "))
	assert.Equal(t, "", CollapseSpaces("   "))
}
