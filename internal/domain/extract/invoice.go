package extract

import (
	"strings"
	"time"

	"github.com/wfsantos/financas/internal/domain/extract/categorize"
	"github.com/wfsantos/financas/internal/domain/extract/normalize"
	"github.com/wfsantos/financas/internal/domain/ledger"
)

const maxDescriptionLen = 50
const minDescriptionLen = 3

// InvoiceResult carries the extracted expenses of one invoice document
// together with the detected card and the per-pattern statistics.
type InvoiceResult struct {
	Card     string
	Expenses []ledger.Expense
	Stats    Stats
}

// Invoice extracts expense records from the text of a credit-card invoice.
// Every structural pattern that matches contributes candidates; when none
// of them yields anything the line scanner in fallback.go takes over.
// Candidates that fail date, amount or description validation are skipped
// and counted, never fatal. The result is deduplicated with
// first-occurrence-wins semantics.
func Invoice(text, fileName string, now time.Time) InvoiceResult {
	card := categorize.DetectCard(fileName, text)

	var expenses []ledger.Expense
	var stats Stats

	for i, spec := range invoicePatterns {
		matches := spec.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		hits := PatternHits{Pattern: i + 1, Matches: len(matches)}
		for _, m := range matches {
			exp, ok := buildExpense(m[spec.fields.Date], m[spec.fields.Desc], m[spec.fields.Amount], card, fileName, now)
			if !ok {
				stats.Skipped++
				continue
			}
			expenses = append(expenses, exp)
			hits.Accepted++
		}
		stats.PatternHits = append(stats.PatternHits, hits)
	}

	if len(expenses) == 0 {
		stats.UsedFallback = true
		expenses = scanInvoiceLines(text, card, fileName, now, &stats)
	}

	return InvoiceResult{
		Card:     card,
		Expenses: DedupeExpenses(expenses),
		Stats:    stats,
	}
}

// buildExpense validates one raw match and turns it into a record.
func buildExpense(dateTok, rawDesc, amountTok, card, fileName string, now time.Time) (ledger.Expense, bool) {
	desc := cleanDescription(rawDesc)
	if len([]rune(desc)) < minDescriptionLen {
		return ledger.Expense{}, false
	}
	date, ok := normalize.ParseDate(dateTok, now)
	if !ok {
		return ledger.Expense{}, false
	}
	amount, ok := normalize.ParseAmount(amountTok)
	if !ok {
		return ledger.Expense{}, false
	}
	return ledger.Expense{
		Date:       date,
		Merchant:   desc,
		Category:   categorize.Merchant(desc),
		Amount:     amount,
		Card:       card,
		SourceFile: fileName,
	}, true
}

// cleanDescription collapses whitespace and truncates to the storage limit.
func cleanDescription(s string) string {
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	runes := []rune(s)
	if len(runes) > maxDescriptionLen {
		s = string(runes[:maxDescriptionLen])
	}
	return strings.TrimSpace(s)
}
