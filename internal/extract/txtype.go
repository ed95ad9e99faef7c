package extract

import (
	"regexp"

	"finchat/internal/models"
	"finchat/internal/textutils"
)

// Verb pattern sets, matched against folded text. Income is checked first.
var (
	incomeRe  = regexp.MustCompile(`recebi|ganhei|salario|renda`)
	expenseRe = regexp.MustCompile(`gastei|paguei|comprei|investi|transferi`)
)

// Type classifies text as income or expense. It never fails: text matching
// neither verb set is an expense. The default-to-expense policy is a
// deliberate fallback, not a gap.
func Type(text string) models.TransactionType {
	folded := textutils.Fold(text)
	if incomeRe.MatchString(folded) {
		return models.TypeIncome
	}
	if expenseRe.MatchString(folded) {
		return models.TypeExpense
	}
	return models.TypeExpense
}
