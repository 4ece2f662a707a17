package categorize

import (
	"testing"

	"github.com/wfsantos/financas/internal/domain/ledger"
)

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		code string
		want ledger.EntryKind
	}{
		{"2002", ledger.KindCredit},
		{"2007", ledger.KindCredit},
		{"21100", ledger.KindCredit},
		{" 2002 ", ledger.KindCredit},
		{"4313", ledger.KindDebit},
		{"9999", ledger.KindDebit},
		{"200", ledger.KindDebit},
		{"", ledger.KindDebit},
	}

	for _, tt := range tests {
		if got := ClassifyCode(tt.code); got != tt.want {
			t.Errorf("ClassifyCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestPayrollItem(t *testing.T) {
	tests := []struct {
		code         string
		description  string
		wantCategory string
		wantKind     ledger.EntryKind
	}{
		{"2002", "SALARIO BASE", "Salário", ledger.KindCredit},
		{"2043", "ADICIONAL TEMPO DE SERVICO", "Adicional Tempo Serviço", ledger.KindCredit},
		{"2045", "FERIAS PROPORCIONAIS", "Férias", ledger.KindCredit},
		{"2007", "GRATIFICACAO", "Outros Proventos", ledger.KindCredit},
		{"4313", "INSS CONTRIBUICAO", "INSS", ledger.KindDebit},
		{"7030", "IMPOSTO DE RENDA", "Imposto de Renda", ledger.KindDebit},
		{"5001", "FUNCEF MENSAL", "Previdência Privada", ledger.KindDebit},
		{"9001", "EMPRESTIMO CONSIGNADO", "Empréstimo Consignado", ledger.KindDebit},
		{"6200", "PLANO SAUDE TITULAR", "Plano de Saúde", ledger.KindDebit},
		{"8888", "TAXA BANCARIA", "Outros Descontos", ledger.KindDebit},
	}

	for _, tt := range tests {
		category, kind := PayrollItem(tt.code, tt.description)
		if category != tt.wantCategory || kind != tt.wantKind {
			t.Errorf("PayrollItem(%q, %q) = (%q, %q), want (%q, %q)",
				tt.code, tt.description, category, kind, tt.wantCategory, tt.wantKind)
		}
	}
}

// The kind comes from the code whitelist alone: an earnings-sounding
// description under an unknown code still posts as a deduction.
func TestPayrollItem_kindIgnoresDescription(t *testing.T) {
	category, kind := PayrollItem("3050", "SALARIO EXTRA")
	if kind != ledger.KindDebit {
		t.Errorf("kind = %q, want %q", kind, ledger.KindDebit)
	}
	if category == "Salário" {
		t.Errorf("category %q resolved from the credit table for a debit code", category)
	}
}
