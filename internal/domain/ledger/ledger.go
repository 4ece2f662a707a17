// Package ledger defines the records produced by the document extraction
// pipeline and persisted by the repository: card expenses, payroll income
// entries and processed-file provenance.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of source document a record came from.
type DocumentType string

const (
	DocumentInvoice DocumentType = "fatura"
	DocumentPayslip DocumentType = "contracheque"
)

// EntryKind classifies a payroll entry as an earning or a deduction.
// The kind is decided by the payroll code whitelist, never by description text.
type EntryKind string

const (
	KindCredit EntryKind = "credito"
	KindDebit  EntryKind = "debito"
)

// Expense is a single dated merchant charge extracted from a card invoice,
// or a payroll deduction posted as an expense. Immutable after creation.
type Expense struct {
	ID         uuid.UUID
	Date       time.Time
	Merchant   string
	Category   string
	Amount     decimal.Decimal
	Card       string
	SourceFile string
}

// IdentityKey is the tuple used for record-level deduplication.
// Two expenses with the same key are the same transaction.
func (e Expense) IdentityKey() string {
	return fmt.Sprintf("%s_%s_%s", e.Date.Format("2006-01-02"), e.Merchant, e.Amount.StringFixed(2))
}

// Income is a single payroll entry, credit or debit. Debit entries also
// appear as Expenses so that net reconciliation stays possible from the
// income table alone.
type Income struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal
	Source      string
	Code        string
	Kind        EntryKind
	SourceFile  string
}

// IdentityKey is the deduplication tuple for income entries. The payroll
// code participates because distinct rubrics may share date, description
// and amount.
func (i Income) IdentityKey() string {
	return fmt.Sprintf("%s_%s_%s_%s", i.Date.Format("2006-01-02"), i.Description, i.Amount.StringFixed(2), i.Code)
}

// ProcessedFile records that a document was ingested. The content hash is
// the file-level idempotence key: a file whose hash is already present is
// rejected before extraction.
type ProcessedFile struct {
	FileName    string
	Hash        string
	Type        DocumentType
	ProcessedAt time.Time
	RecordCount int
}
