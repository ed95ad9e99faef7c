package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// goalRe matches a savings goal declared in chat, e.g.
// "meta: economizar R$ 200 este mês". The period qualifier is optional.
var goalRe = regexp.MustCompile(`(?i)meta.*?:?\s*(?:economizar|poupar)\s*R\$\s*(\d+(?:[,.]\d{1,2})?)\s*(?:este m[eê]s|nesse m[eê]s|mensal)?`)

// GoalDeclaration extracts a declared savings target from text, if present.
func GoalDeclaration(text string) (decimal.Decimal, bool) {
	match := goalRe.FindStringSubmatch(text)
	if match == nil {
		return decimal.Decimal{}, false
	}
	raw := strings.Replace(match[1], ",", ".", 1)
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
