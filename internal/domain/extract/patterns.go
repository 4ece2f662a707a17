// Package extract recovers structured ledger records from the raw text of
// credit-card invoices and payslips. An ordered list of tagged pattern
// descriptors is tried first; a looser line scanner takes over when no
// structural pattern produces anything.
package extract

import "regexp"

// fieldMap names the capture groups of a pattern. A zero index means the
// pattern does not capture that field. Mapping groups explicitly (instead
// of assuming date-description-amount positions) is what lets the
// two-date Santander layout bind its fields correctly.
type fieldMap struct {
	Date      int
	Desc      int
	Amount    int
	Code      int
	MonthYear int
}

// patternSpec is one tagged pattern descriptor. Patterns are tried in
// slice order and are not mutually exclusive: every pattern that matches
// contributes all of its matches, with record-level deduplication
// resolving the overlap.
type patternSpec struct {
	re     *regexp.Regexp
	fields fieldMap
}

// Invoice layouts, most structured first. Group shapes vary per issuer:
// Azul prints two amount columns (the second is the charge), Santander
// prints the purchase and posting dates before the merchant.
var invoicePatterns = []patternSpec{
	// DD/MM/YYYY MERCHANT AMOUNT
	{regexp.MustCompile(`(?im)(\d{1,2}/\d{1,2}/\d{4})\s+([A-Za-z0-9\s\-.*&+]+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// DD/MM MERCHANT AMOUNT
	{regexp.MustCompile(`(?im)(\d{1,2}/\d{1,2})\s+([A-Za-z0-9\s\-.*&+]+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// Pipe-separated columns
	{regexp.MustCompile(`(?im)(\d{1,2}/\d{1,2}/\d{4})\s*\|\s*([A-Za-z0-9\s\-.*&+]+?)\s*\|\s*R?\$?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// DD-MM-YYYY
	{regexp.MustCompile(`(?im)(\d{1,2}-\d{1,2}-\d{4})\s+([A-Za-z0-9\s\-.*&+]+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// Explicit R$ before the amount
	{regexp.MustCompile(`(?im)(\d{1,2}/\d{1,2}/\d{4})\s+([A-Za-z0-9\s\-.*&+]+?)\s+R\$\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// Flexible separator and year width
	{regexp.MustCompile(`(?im)(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})\s*[|\s]\s*([A-Za-z0-9\s\-.*&+]{3,50}?)\s*[|\s]\s*R?\$?\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// Azul: two amount columns, the last one is the charge
	{regexp.MustCompile(`(?im)(\d{2}/\d{2})\s+([A-Z\s\-.*]+?)\s+(\d+,\d{2})\s+(\d+,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 4}},
	// Santander: purchase date, posting date, merchant, amount
	{regexp.MustCompile(`(?im)(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+([A-Z\s\-.*]+?)\s+(\d+,\d{2})`),
		fieldMap{Date: 1, Desc: 3, Amount: 4}},
	// Samsung: short date, merchant, single amount
	{regexp.MustCompile(`(?im)(\d{2}/\d{2})\s+([A-Z0-9\s\-.*]+?)\s+(\d+,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
	// Tab-delimited export
	{regexp.MustCompile(`(?im)(\d{1,2}/\d{1,2}/\d{2,4})\t+([A-Za-z0-9\s\-.*&+]+?)\t+(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Date: 1, Desc: 2, Amount: 3}},
}

// Payslip layouts: CODE DESCRIPTION [MM/YYYY] [counter] [R$] AMOUNT.
// Items without their own month inherit the document reference month.
var payslipPatterns = []patternSpec{
	{regexp.MustCompile(`(?m)(\d{2,5})\s+([A-Z\s\-.()/]+?)\s+(\d{2}/\d{4})\s+(?:\d{3}\s+)?R\$\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Code: 1, Desc: 2, MonthYear: 3, Amount: 4}},
	{regexp.MustCompile(`(?m)(\d{2,5})\s+([A-Z\s\-.()/]+?)\s+(\d{2}/\d{4})\s+(?:\d{3}\s+)?(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Code: 1, Desc: 2, MonthYear: 3, Amount: 4}},
	{regexp.MustCompile(`(?m)(\d{2,5})\s+([A-Z\s\-.()/]+?)\s+R\$\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
		fieldMap{Code: 1, Desc: 2, Amount: 3}},
	{regexp.MustCompile(`(?m)^(\d{2,5})\s+(.+?)\s+(\d{1,3}(?:\.\d{3})*,\d{2})$`),
		fieldMap{Code: 1, Desc: 2, Amount: 3}},
}

// Shared helpers for the fallback scanners.
var (
	dateTokenRe    = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]?\d{0,4}`)
	amountTokenRe  = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)
	shortAmountRe  = regexp.MustCompile(`\d+,\d{2}`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	lineNoiseRe    = regexp.MustCompile(`[R$|\t]+`)
	payslipCodeRe  = regexp.MustCompile(`^\d{2,5}`)
	payslipNoiseRe = regexp.MustCompile(`[R$|\t\d/]+`)
	monthYearRe    = regexp.MustCompile(`(\d{1,2})[/\-](\d{4})`)
	monthNameRe    = regexp.MustCompile(`(?i)(JANEIRO|FEVEREIRO|MARÇO|MARCO|ABRIL|MAIO|JUNHO|JULHO|AGOSTO|SETEMBRO|OUTUBRO|NOVEMBRO|DEZEMBRO)\s*/?\s*(\d{4})`)
)

// PatternHits reports how many raw matches a pattern produced and how many
// survived validation. Pattern is the 1-based position in the ordered list.
type PatternHits struct {
	Pattern  int
	Matches  int
	Accepted int
}

// Stats summarizes one extraction run for status reporting.
type Stats struct {
	PatternHits  []PatternHits
	Skipped      int
	UsedFallback bool
}
