package extract

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wfsantos/financas/internal/domain/extract/categorize"
	"github.com/wfsantos/financas/internal/domain/extract/normalize"
	"github.com/wfsantos/financas/internal/domain/ledger"
)

// payslipItem is one classified rubric line before it is posted to the
// ledger tables.
type payslipItem struct {
	Code        string
	Description string
	Category    string
	Kind        ledger.EntryKind
	Amount      decimal.Decimal
	Date        time.Time // zero when the line carried no month of its own
}

// PayslipResult carries the records extracted from one payslip. Debit
// rubrics are posted twice on purpose: once to Incomes with kind debito
// and once to Deductions as an expense, so that credit minus debit
// reconciliation works from the income table alone.
type PayslipResult struct {
	Source     string
	Reference  time.Time
	Incomes    []ledger.Income
	Deductions []ledger.Expense
	Stats      Stats
}

// Payslip extracts income and deduction records from payslip text. The
// document reference month (used for every line without its own month) is
// the most frequent month/year token in the text, ties broken by first
// encounter.
func Payslip(text, fileName string, now time.Time) PayslipResult {
	source := categorize.DetectEmployer(fileName, text)
	reference := referenceMonth(text, now)

	var items []payslipItem
	var stats Stats

	for i, spec := range payslipPatterns {
		matches := spec.re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		hits := PatternHits{Pattern: i + 1, Matches: len(matches)}
		for _, m := range matches {
			item, ok := buildPayslipItem(m, spec.fields, now)
			if !ok {
				stats.Skipped++
				continue
			}
			items = append(items, item)
			hits.Accepted++
		}
		stats.PatternHits = append(stats.PatternHits, hits)
	}

	if len(items) == 0 {
		stats.UsedFallback = true
		items = scanPayslipLines(text, &stats)
	}

	result := PayslipResult{Source: source, Reference: reference, Stats: stats}
	for _, item := range items {
		date := item.Date
		if date.IsZero() {
			date = reference
		}

		result.Incomes = append(result.Incomes, ledger.Income{
			Date:        date,
			Description: item.Description,
			Category:    item.Category,
			Amount:      item.Amount,
			Source:      source,
			Code:        item.Code,
			Kind:        item.Kind,
			SourceFile:  fileName,
		})
		if item.Kind == ledger.KindDebit {
			result.Deductions = append(result.Deductions, ledger.Expense{
				Date:       date,
				Merchant:   "Desconto: " + item.Description,
				Category:   categorize.CategoryPayrollDeduction,
				Amount:     item.Amount,
				Card:       categorize.PayslipCard,
				SourceFile: fileName,
			})
		}
	}

	result.Incomes = DedupeIncome(result.Incomes)
	result.Deductions = DedupeExpenses(result.Deductions)
	return result
}

func buildPayslipItem(m []string, fields fieldMap, now time.Time) (payslipItem, bool) {
	desc := cleanDescription(m[fields.Desc])
	if len([]rune(desc)) < minDescriptionLen {
		return payslipItem{}, false
	}
	amount, ok := normalize.ParseAmount(m[fields.Amount])
	if !ok {
		return payslipItem{}, false
	}
	code := m[fields.Code]
	category, kind := categorize.PayrollItem(code, desc)

	item := payslipItem{
		Code:        code,
		Description: desc,
		Category:    category,
		Kind:        kind,
		Amount:      amount,
	}
	if fields.MonthYear != 0 {
		// An out-of-window month falls back to the document reference,
		// it does not invalidate the item.
		if d, ok := normalize.ParseMonthYear(m[fields.MonthYear], now); ok {
			item.Date = d
		}
	}
	return item, true
}

// referenceMonth votes across every month/year token in the document,
// numeric (MM/YYYY, M/YYYY, MM-YYYY) and written-out Portuguese months
// alike. The most frequent plausible month wins; a tie keeps the first one
// encountered. With no usable token the current month is used.
func referenceMonth(text string, now time.Time) time.Time {
	type vote struct {
		date  time.Time
		count int
		first int
	}
	votes := make(map[string]*vote)
	order := 0

	record := func(d time.Time) {
		key := d.Format("2006-01")
		if v, ok := votes[key]; ok {
			v.count++
			return
		}
		votes[key] = &vote{date: d, count: 1, first: order}
		order++
	}

	for _, m := range monthYearRe.FindAllStringSubmatch(text, -1) {
		if d, ok := normalize.ParseMonthYear(m[1]+"/"+m[2], now); ok {
			record(d)
		}
	}
	for _, m := range monthNameRe.FindAllStringSubmatch(text, -1) {
		month, ok := normalize.MonthNumber(m[1])
		if !ok {
			continue
		}
		year, err := strconv.Atoi(m[2])
		if err != nil || year < 2020 || year > now.Year()+2 {
			continue
		}
		record(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	}

	var best *vote
	for _, v := range votes {
		if best == nil || v.count > best.count || (v.count == best.count && v.first < best.first) {
			best = v
		}
	}
	if best == nil {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return best.date
}
