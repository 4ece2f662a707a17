package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount plausibility bounds. Statements do not carry sub-cent charges and
// a six-figure single line item is a misparse.
var (
	minAmount = decimal.NewFromFloat(0.01)
	maxAmount = decimal.NewFromInt(100000)
)

// ParseAmount converts a Brazilian-format monetary token ("R$ 1.234,56",
// "1234,56") into a decimal. Currency markers and spaces are stripped;
// "." is the thousands separator and "," the decimal separator. Values
// outside [0.01, 100000] are rejected: ok is false and the pipeline must
// never store the candidate.
func ParseAmount(token string) (decimal.Decimal, bool) {
	token = strings.TrimSpace(token)
	token = strings.ReplaceAll(token, "R$", "")
	token = strings.ReplaceAll(token, "$", "")
	token = strings.ReplaceAll(token, " ", "")

	switch {
	case strings.Contains(token, ",") && strings.Contains(token, "."):
		// 1.234,56
		token = strings.ReplaceAll(token, ".", "")
		token = strings.ReplaceAll(token, ",", ".")
	case strings.Contains(token, ","):
		// 1234,56
		token = strings.ReplaceAll(token, ",", ".")
	}

	value, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	if value.LessThan(minAmount) || value.GreaterThan(maxAmount) {
		return decimal.Zero, false
	}
	return value, true
}
