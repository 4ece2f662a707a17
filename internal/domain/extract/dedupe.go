package extract

import "github.com/wfsantos/financas/internal/domain/ledger"

// DedupeExpenses collapses expenses sharing an identity key
// (date, merchant, amount), keeping the first occurrence and preserving
// its order. Pure function, no I/O.
func DedupeExpenses(in []ledger.Expense) []ledger.Expense {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]ledger.Expense, 0, len(in))
	for _, e := range in {
		key := e.IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// DedupeIncome collapses income entries sharing an identity key
// (date, description, amount, code) with first-occurrence-wins semantics.
func DedupeIncome(in []ledger.Income) []ledger.Income {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]ledger.Income, 0, len(in))
	for _, r := range in {
		key := r.IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
