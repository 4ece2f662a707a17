package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Fixed processing time so the plausibility window is [2020, 2027].
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{"full year slash", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"full year dash", "15-03-2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"two digit year below fifty", "15/03/24", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"missing year uses processing year", "10/05", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), true},
		{"single digit day and month", "1/2/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"invalid calendar date", "31/02/2024", time.Time{}, false},
		{"year before window", "15/03/2019", time.Time{}, false},
		{"year after window", "15/03/2031", time.Time{}, false},
		{"month out of range", "15/13/2024", time.Time{}, false},
		{"not a date", "POSTO SHELL", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.token, testNow)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Two-digit years of 50 and above expand into the 1900s and can therefore
// never pass the plausibility window. This pins the observed behavior; do
// not "fix" the expansion without revisiting the window.
func TestParseDate_twoDigitYearNineteenHundreds(t *testing.T) {
	_, ok := ParseDate("15/03/97", testNow)
	assert.False(t, ok)

	_, ok = ParseDate("15/03/50", testNow)
	assert.False(t, ok)
}

func TestParseMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{"month year", "05/2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"single digit month", "5/2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"dash separated", "05-2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"two digit year", "05/24", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"month out of range", "13/2024", time.Time{}, false},
		{"year out of window", "05/1997", time.Time{}, false},
		{"garbage", "ABC", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonthYear(tt.token, testNow)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMonthNumber(t *testing.T) {
	m, ok := MonthNumber("MARÇO")
	assert.True(t, ok)
	assert.Equal(t, time.March, m)

	m, ok = MonthNumber("dezembro")
	assert.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = MonthNumber("SMARCH")
	assert.False(t, ok)
}
