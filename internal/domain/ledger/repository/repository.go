// Package repository is the durable side of the extraction pipeline: it
// owns the expenses, income and processed-files tables and the file-level
// idempotence check.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wfsantos/financas/internal/domain/ledger"
)

// DB is the slice of pgxpool.Pool the repository needs. Narrowing it here
// lets tests drive the real SQL through pgxmock.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerRepository is the persistence contract consumed by the pipeline
// service. Batch saves are atomic: either all records of a file plus its
// provenance row land, or nothing does.
type LedgerRepository interface {
	FindProcessedFile(ctx context.Context, hash string) (string, error)
	SaveInvoiceBatch(ctx context.Context, expenses []ledger.Expense, file ledger.ProcessedFile) error
	SavePayslipBatch(ctx context.Context, incomes []ledger.Income, deductions []ledger.Expense, file ledger.ProcessedFile) error
	ListExpenses(ctx context.Context, from, to time.Time) ([]ledger.Expense, error)
	ListIncome(ctx context.Context, from, to time.Time) ([]ledger.Income, error)
	ClearAll(ctx context.Context) error
}
