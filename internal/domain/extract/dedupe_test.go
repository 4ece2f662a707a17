package extract

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfsantos/financas/internal/domain/ledger"
)

func TestDedupeExpenses_firstOccurrenceWins(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	first := ledger.Expense{Date: day, Merchant: "POSTO SHELL", Amount: decimal.NewFromInt(150), Card: "Azul"}
	dup := first
	dup.Card = "Santander" // same identity key, different metadata
	other := ledger.Expense{Date: day, Merchant: "PADARIA DO ZE", Amount: decimal.NewFromInt(12), Card: "Azul"}

	out := DedupeExpenses([]ledger.Expense{first, dup, other})

	require.Len(t, out, 2)
	assert.Equal(t, "Azul", out[0].Card)
	assert.Equal(t, "PADARIA DO ZE", out[1].Merchant)
}

// The income key includes the payroll code: distinct rubrics sharing date,
// description and amount are different records.
func TestDedupeIncome_codeSplitsIdentity(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	a := ledger.Income{Date: day, Description: "AJUSTE", Amount: decimal.NewFromInt(100), Code: "9001"}
	b := ledger.Income{Date: day, Description: "AJUSTE", Amount: decimal.NewFromInt(100), Code: "9002"}

	out := DedupeIncome([]ledger.Income{a, b, a})

	require.Len(t, out, 2)
	assert.Equal(t, "9001", out[0].Code)
	assert.Equal(t, "9002", out[1].Code)
}

func TestDedupeExpenses_idempotent(t *testing.T) {
	f := gofakeit.New(42)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	merchants := []string{"POSTO SHELL", "PADARIA DO ZE", "SUPERMERCADO BOM PRECO", "FARMACIA CENTRAL"}

	// far more records than possible identity keys, so collisions are
	// guaranteed
	in := make([]ledger.Expense, 0, 300)
	for i := 0; i < 300; i++ {
		in = append(in, ledger.Expense{
			Date:     base.AddDate(0, 0, f.Number(0, 9)),
			Merchant: merchants[f.Number(0, len(merchants)-1)],
			Amount:   decimal.NewFromInt(int64(f.Number(1, 5))),
		})
	}

	once := DedupeExpenses(in)
	twice := DedupeExpenses(once)

	assert.Equal(t, once, twice)
	assert.Less(t, len(once), len(in))

	seen := make(map[string]struct{})
	for _, e := range once {
		key := e.IdentityKey()
		_, dup := seen[key]
		assert.False(t, dup, "duplicate key %s survived", key)
		seen[key] = struct{}{}
	}
}

func TestDedupeExpenses_empty(t *testing.T) {
	assert.Empty(t, DedupeExpenses(nil))
	assert.Empty(t, DedupeIncome(nil))
}
