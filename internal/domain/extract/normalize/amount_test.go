package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{"plain", "150,00", "150.00", true},
		{"thousands separator", "1.234,56", "1234.56", true},
		{"currency prefix", "R$ 150,00", "150.00", true},
		{"currency prefix no space", "R$1.234,56", "1234.56", true},
		{"dollar sign", "$ 99,90", "99.90", true},
		{"inner spaces", "1 234,56", "1234.56", true},
		{"lower bound", "0,01", "0.01", true},
		{"upper bound", "100.000,00", "100000.00", true},
		{"zero rejected", "0,00", "", false},
		{"above upper bound", "100.000,01", "", false},
		{"six figures rejected", "999.999,99", "", false},
		{"not a number", "POSTO", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.StringFixed(2))
			}
		})
	}
}
