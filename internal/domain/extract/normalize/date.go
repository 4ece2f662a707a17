// Package normalize converts raw date and amount tokens found in extracted
// document text into canonical types, applying plausibility bounds so that
// garbage captures never become records.
package normalize

import (
	"strconv"
	"strings"
	"time"
)

// Earliest plausible record year. Anything older than this in a statement
// is a misparse, not a transaction.
const minYear = 2020

// portugueseMonths maps upper-case Portuguese month names to month numbers.
var portugueseMonths = map[string]time.Month{
	"JANEIRO":   time.January,
	"FEVEREIRO": time.February,
	"MARÇO":     time.March,
	"MARCO":     time.March,
	"ABRIL":     time.April,
	"MAIO":      time.May,
	"JUNHO":     time.June,
	"JULHO":     time.July,
	"AGOSTO":    time.August,
	"SETEMBRO":  time.September,
	"OUTUBRO":   time.October,
	"NOVEMBRO":  time.November,
	"DEZEMBRO":  time.December,
}

// MonthNumber resolves a Portuguese month name. The lookup is
// case-insensitive and accepts the unaccented spelling of março.
func MonthNumber(name string) (time.Month, bool) {
	m, ok := portugueseMonths[strings.ToUpper(strings.TrimSpace(name))]
	return m, ok
}

// ParseDate converts a short date token (DD/MM/YYYY, DD/MM/YY, DD/MM and
// the dash-separated equivalents) into a calendar date. A missing year
// defaults to the processing year taken from now. Two-digit years below 50
// map to the 2000s, 50 and above to the 1900s. The result must be a valid
// calendar date with a year in [2020, now.Year()+2]; otherwise ok is false.
func ParseDate(token string, now time.Time) (time.Time, bool) {
	token = strings.TrimSpace(token)
	token = strings.ReplaceAll(token, "-", "/")
	parts := strings.Split(token, "/")

	var dayStr, monthStr, yearStr string
	switch len(parts) {
	case 3:
		dayStr, monthStr, yearStr = parts[0], parts[1], parts[2]
	case 2:
		dayStr, monthStr = parts[0], parts[1]
		yearStr = strconv.Itoa(now.Year())
	default:
		return time.Time{}, false
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, false
	}
	year = expandYear(year)

	return buildDate(year, month, day, now)
}

// ParseMonthYear converts a payroll month token (MM/YYYY, M/YYYY, MM-YYYY,
// including two-digit years) into the first day of that month. Returns ok
// false when the token does not parse or the year falls outside the
// plausibility window; payroll callers then fall back to the document
// reference month.
func ParseMonthYear(token string, now time.Time) (time.Time, bool) {
	token = strings.TrimSpace(token)
	token = strings.ReplaceAll(token, "-", "/")
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	year = expandYear(year)

	return buildDate(year, month, 1, now)
}

// expandYear applies the two-digit year rule: 00-49 become 2000-2049,
// 50-99 become 1950-1999. The 1900s branch always fails the plausibility
// window below; it is kept to match the observed extraction behavior.
func expandYear(year int) int {
	if year >= 100 {
		return year
	}
	if year < 50 {
		return year + 2000
	}
	return year + 1900
}

func buildDate(year, month, day int, now time.Time) (time.Time, bool) {
	if year < minYear || year > now.Year()+2 {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31/02 becomes 02/03 or 03/03);
	// a changed field means the calendar date never existed.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
