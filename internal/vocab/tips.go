package vocab

import (
	"fmt"
	"os"

	"finchat/internal/logging"
	"finchat/internal/models"

	"gopkg.in/yaml.v3"
)

// TipTable maps category tags to the advice string appended to every
// transaction confirmation.
type TipTable struct {
	tips map[string]string
}

// DefaultTips returns the built-in tip table.
func DefaultTips() *TipTable {
	return &TipTable{tips: map[string]string{
		models.CategoryFood:      "Notei gasto em alimentação. Verifique compras por impulso e planeje mercado com lista.",
		models.CategoryTransport: "Gastos de transporte podem cair com rotas alternativas ou caronas.",
		models.CategoryLeisure:   "Defina um teto semanal de lazer para manter equilíbrio.",
		models.CategoryHousing:   "Considere comparar planos de internet/energia e otimizar consumo.",
		models.CategoryIncome:    "Ótimo! Registrar receitas ajuda a visualizar sobras para metas.",
		models.CategoryOther:     "Considere classificar melhor para ver padrões e economias.",
	}}
}

// LoadTips reads a tip table from a YAML map of tag to tip. A missing file
// yields the built-in table.
func LoadTips(path string, logger logging.Logger) (*TipTable, error) {
	if path == "" {
		return DefaultTips(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Tips file not found, using built-in tips",
				logging.Field{Key: logging.FieldFile, Value: path})
			return DefaultTips(), nil
		}
		return nil, fmt.Errorf("reading tips file: %w", err)
	}

	var tips map[string]string
	if err := yaml.Unmarshal(data, &tips); err != nil {
		return nil, fmt.Errorf("parsing tips file: %w", err)
	}
	if len(tips) == 0 {
		return DefaultTips(), nil
	}
	return &TipTable{tips: tips}, nil
}

// For returns the tip for tag, falling back to the "outros" tip.
func (t *TipTable) For(tag string) string {
	if tip, ok := t.tips[tag]; ok {
		return tip
	}
	return t.tips[models.CategoryOther]
}
