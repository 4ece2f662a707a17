package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfsantos/financas/internal/domain/ledger"
)

func TestPayslip_full(t *testing.T) {
	text := strings.Join([]string{
		"CAIXA ECONOMICA FEDERAL",
		"DEMONSTRATIVO DE PAGAMENTO REFERENCIA 05/2024",
		"2002 SALARIO BASE 05/2024 R$ 5.000,00 1",
		"4313 INSS 05/2024 R$ 550,00 2",
		"9999 EMPRESTIMO CONSIGNADO 05/2024 R$ 450,00 3",
	}, "\n")

	result := Payslip(text, "contracheque_maio.pdf", testNow)

	assert.Equal(t, "Caixa Econômica Federal", result.Source)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), result.Reference)

	require.Len(t, result.Incomes, 3)
	salary := result.Incomes[0]
	assert.Equal(t, "2002", salary.Code)
	assert.Equal(t, "SALARIO BASE", salary.Description)
	assert.Equal(t, "Salário", salary.Category)
	assert.Equal(t, ledger.KindCredit, salary.Kind)
	assert.Equal(t, "5000.00", salary.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), salary.Date)
	assert.Equal(t, "Caixa Econômica Federal", salary.Source)

	assert.Equal(t, ledger.KindDebit, result.Incomes[1].Kind)
	assert.Equal(t, "INSS", result.Incomes[1].Category)
	assert.Equal(t, "Empréstimo Consignado", result.Incomes[2].Category)
}

// Deduction rubrics post twice: to the income table with kind debito and
// to the expense table under the payroll deduction category.
func TestPayslip_deductionsPostAsExpenses(t *testing.T) {
	text := strings.Join([]string{
		"CAIXA ECONOMICA FEDERAL 05/2024",
		"2002 SALARIO BASE 05/2024 R$ 5.000,00 1",
		"4313 INSS 05/2024 R$ 550,00 2",
	}, "\n")

	result := Payslip(text, "contracheque.pdf", testNow)

	require.Len(t, result.Deductions, 1)
	d := result.Deductions[0]
	assert.Equal(t, "Desconto: INSS", d.Merchant)
	assert.Equal(t, "Descontos Folha", d.Category)
	assert.Equal(t, "Contracheque", d.Card)
	assert.Equal(t, "550.00", d.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d.Date)

	// the same rubric is also an income entry with kind debito
	var asIncome bool
	for _, in := range result.Incomes {
		if in.Code == "4313" && in.Kind == ledger.KindDebit {
			asIncome = true
		}
	}
	assert.True(t, asIncome)
}

// An item whose own month falls outside the plausibility window inherits
// the document reference month instead of being dropped.
func TestPayslip_outOfWindowItemMonthUsesReference(t *testing.T) {
	text := "REFERENCIA 06/2024\n2002 SALARIO BASE 05/1997 R$ 5.000,00 1"

	result := Payslip(text, "contracheque.pdf", testNow)

	require.Len(t, result.Incomes, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), result.Incomes[0].Date)
}

func TestPayslip_fallbackLineScanner(t *testing.T) {
	text := strings.Join([]string{
		"4313 INSS MENSAL 550,00 TOTAL",
		"12 5,00 X",
	}, "\n")

	result := Payslip(text, "contracheque.pdf", testNow)

	assert.True(t, result.Stats.UsedFallback)
	require.Len(t, result.Incomes, 1)
	in := result.Incomes[0]
	assert.Equal(t, "4313", in.Code)
	assert.Equal(t, "INSS MENSAL TOTAL", in.Description)
	assert.Equal(t, ledger.KindDebit, in.Kind)
	assert.Equal(t, "550.00", in.Amount.StringFixed(2))
	// no month token anywhere: the reference defaults to the current month
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), in.Date)
	// the small-amount line is counter noise
	assert.Equal(t, 1, result.Stats.Skipped)
}

func TestPayslip_empty(t *testing.T) {
	result := Payslip("NADA AQUI", "contracheque.pdf", testNow)

	assert.Empty(t, result.Incomes)
	assert.Empty(t, result.Deductions)
	assert.True(t, result.Stats.UsedFallback)
}

func TestReferenceMonth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			"most frequent wins",
			"03/2024 bla 03/2024 bla 04/2024",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"tie keeps first encountered",
			"04/2024 03/2024 04/2024 03/2024",
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"written-out month",
			"REFERENTE A MAIO/2024",
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"implausible years ignored",
			"05/1997 06/2024",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"no token falls back to current month",
			"SEM COMPETENCIA",
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referenceMonth(tt.text, testNow))
		})
	}
}
