package extract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wfsantos/financas/internal/domain/extract/categorize"
	"github.com/wfsantos/financas/internal/domain/extract/normalize"
	"github.com/wfsantos/financas/internal/domain/ledger"
)

// Payslip fallback lines below this amount are counter noise (column
// numbers, percentages), not rubric values.
var minFallbackPayslipAmount = decimal.NewFromInt(10)

// scanInvoiceLines is the loose extraction path used when no structural
// pattern matched. Any line carrying both a date-shaped and an
// amount-shaped token is treated as a transaction; the rest of the line,
// with those tokens removed, becomes the merchant description.
func scanInvoiceLines(text, card, fileName string, now time.Time, stats *Stats) []ledger.Expense {
	var expenses []ledger.Expense

	for _, line := range strings.Split(text, "\n") {
		dateTok := dateTokenRe.FindString(line)
		amountTok := amountTokenRe.FindString(line)
		if dateTok == "" || amountTok == "" {
			continue
		}

		desc := strings.Replace(line, dateTok, "", 1)
		desc = strings.Replace(desc, amountTok, "", 1)
		desc = lineNoiseRe.ReplaceAllString(desc, " ")

		exp, ok := buildExpense(dateTok, desc, amountTok, card, fileName, now)
		if !ok {
			stats.Skipped++
			continue
		}
		expenses = append(expenses, exp)
	}
	return expenses
}

// scanPayslipLines recovers payroll items line by line: a leading numeric
// code plus an amount token anywhere in the line. Dates on the line are
// scrubbed from the description; every item gets the document reference
// month.
func scanPayslipLines(text string, stats *Stats) []payslipItem {
	var items []payslipItem

	for _, line := range strings.Split(text, "\n") {
		code := payslipCodeRe.FindString(line)
		if code == "" || !shortAmountRe.MatchString(line) {
			continue
		}
		amountTok := amountTokenRe.FindString(line)
		if amountTok == "" {
			stats.Skipped++
			continue
		}
		amount, ok := normalize.ParseAmount(amountTok)
		if !ok || amount.LessThanOrEqual(minFallbackPayslipAmount) {
			stats.Skipped++
			continue
		}

		desc := strings.Replace(line, code, "", 1)
		desc = strings.Replace(desc, amountTok, "", 1)
		desc = payslipNoiseRe.ReplaceAllString(desc, " ")
		desc = cleanDescription(desc)
		if len([]rune(desc)) < minDescriptionLen {
			stats.Skipped++
			continue
		}

		category, kind := categorize.PayrollItem(code, desc)
		items = append(items, payslipItem{
			Code:        code,
			Description: desc,
			Category:    category,
			Kind:        kind,
			Amount:      amount,
		})
	}
	return items
}
