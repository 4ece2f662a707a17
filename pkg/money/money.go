// Package money provides BRL display formatting and summing helpers on top
// of shopspring/decimal amounts. All pipeline amounts are decimals; this
// package only exists where a human reads the value (logs, CLI output).
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatBRL renders a decimal amount in Brazilian currency notation,
// e.g. 1234.5 -> "R$1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	cents := amount.Mul(hundred).Round(0).IntPart()
	return gomoney.New(cents, gomoney.BRL).Display()
}

// Sum adds a slice of decimal amounts.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
