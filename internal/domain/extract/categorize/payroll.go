package categorize

import (
	"strings"

	"github.com/wfsantos/financas/internal/domain/ledger"
)

// Categories assigned to payroll deductions when they are posted to the
// expense table.
const (
	CategoryPayrollDeduction = "Descontos Folha"
	CategoryOtherEarnings    = "Outros Proventos"
	CategoryOtherDeductions  = "Outros Descontos"
)

// creditCodes is the closed whitelist of payroll codes that count as
// earnings. Every other code is a deduction by definition; there is no
// heuristic fallback.
var creditCodes = map[string]struct{}{
	"2002":  {},
	"2007":  {},
	"2043":  {},
	"2045":  {},
	"2049":  {},
	"2116":  {},
	"2186":  {},
	"21100": {},
}

// ClassifyCode returns the entry kind for a payroll code.
func ClassifyCode(code string) ledger.EntryKind {
	if _, ok := creditCodes[strings.TrimSpace(code)]; ok {
		return ledger.KindCredit
	}
	return ledger.KindDebit
}

type keywordCategory struct {
	Keywords []string
	Name     string
}

var creditCategories = []keywordCategory{
	{[]string{"SALARIO", "REMUNERACAO"}, "Salário"},
	{[]string{"FERIAS"}, "Férias"},
	{[]string{"ADICIONAL", "TEMPO"}, "Adicional Tempo Serviço"},
	{[]string{"INCORPORACAO"}, "Incorporação"},
	{[]string{"JUDICIAL"}, "Decisão Judicial"},
}

var debitCategories = []keywordCategory{
	{[]string{"INSS"}, "INSS"},
	{[]string{"IMPOSTO", "RENDA"}, "Imposto de Renda"},
	{[]string{"FUNCEF", "PREVIDENCIA"}, "Previdência Privada"},
	{[]string{"SINDICATO"}, "Sindicato"},
	{[]string{"SAUDE", "MEDICO"}, "Plano de Saúde"},
	{[]string{"CONSIGNACOES", "EMPRESTIMO"}, "Empréstimo Consignado"},
	{[]string{"GYMPASS", "CONVENIO"}, "Convênios"},
	{[]string{"ASSOCIACAO"}, "Associação"},
	{[]string{"CREDITO", "DEVOLVER"}, "Ajustes/Devoluções"},
	{[]string{"REP", "REPOSICAO"}, "Reposições"},
}

// PayrollItem classifies a payroll line by its code and assigns the
// sub-category from the ordered keyword tables over the description.
func PayrollItem(code, description string) (category string, kind ledger.EntryKind) {
	kind = ClassifyCode(code)
	upper := strings.ToUpper(description)

	table := creditCategories
	fallback := CategoryOtherEarnings
	if kind == ledger.KindDebit {
		table = debitCategories
		fallback = CategoryOtherDeductions
	}

	for _, entry := range table {
		for _, kw := range entry.Keywords {
			if strings.Contains(upper, kw) {
				return entry.Name, kind
			}
		}
	}
	return fallback, kind
}
