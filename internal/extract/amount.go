// Package extract implements the field extractors of the chat pipeline: pure
// functions that scan raw text for a monetary amount, a transaction-type
// verb, a correction directive or a goal declaration.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRe matches an optional currency marker followed by digits with an
// optional 1-2 digit fractional part. A bare integer with no marker still
// matches.
var amountRe = regexp.MustCompile(`(?i)(?:R\$\s*)?(\d+(?:\.\d{1,2})?)`)

// Amount scans text for the first monetary value. The comma decimal separator
// is normalized to a period before matching, so "R$50", "50" and "50,00" all
// parse. Ambiguous multi-number text takes the first match only.
func Amount(text string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(text, ",", ".")
	match := amountRe.FindStringSubmatch(normalized)
	if match == nil {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}
