package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wfsantos/financas/internal/domain/ledger"
)

// Postgres implements LedgerRepository on PostgreSQL.
type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

// FindProcessedFile returns the name of the file previously stored under
// the given content hash, or "" when the hash is unknown.
func (r *Postgres) FindProcessedFile(ctx context.Context, hash string) (string, error) {
	query := `SELECT nome_arquivo FROM arquivos_processados WHERE hash_arquivo = $1`

	var name string
	err := r.db.QueryRow(ctx, query, hash).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up processed file: %w", err)
	}
	return name, nil
}

// SaveInvoiceBatch stores the expenses of one invoice and its provenance
// row in a single transaction.
func (r *Postgres) SaveInvoiceBatch(ctx context.Context, expenses []ledger.Expense, file ledger.ProcessedFile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := insertExpenses(ctx, tx, expenses); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := upsertProcessedFile(ctx, tx, file); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit invoice batch: %w", err)
	}
	return nil
}

// SavePayslipBatch stores income entries, deduction expenses and the
// provenance row of one payslip in a single transaction.
func (r *Postgres) SavePayslipBatch(ctx context.Context, incomes []ledger.Income, deductions []ledger.Expense, file ledger.ProcessedFile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := insertIncome(ctx, tx, incomes); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := insertExpenses(ctx, tx, deductions); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := upsertProcessedFile(ctx, tx, file); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payslip batch: %w", err)
	}
	return nil
}

func insertExpenses(ctx context.Context, tx pgx.Tx, expenses []ledger.Expense) error {
	query := `
		INSERT INTO transacoes (id, data, estabelecimento, categoria, valor, cartao, arquivo_origem)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i := range expenses {
		e := &expenses[i]
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, query,
			e.ID,
			e.Date,
			e.Merchant,
			e.Category,
			e.Amount.StringFixed(2),
			e.Card,
			e.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}
	return nil
}

func insertIncome(ctx context.Context, tx pgx.Tx, incomes []ledger.Income) error {
	query := `
		INSERT INTO receitas (id, data, descricao, categoria, valor, fonte, codigo, tipo_lancamento, arquivo_origem)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for i := range incomes {
		in := &incomes[i]
		if in.ID == uuid.Nil {
			in.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, query,
			in.ID,
			in.Date,
			in.Description,
			in.Category,
			in.Amount.StringFixed(2),
			in.Source,
			in.Code,
			string(in.Kind),
			in.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert income entry: %w", err)
		}
	}
	return nil
}

func upsertProcessedFile(ctx context.Context, tx pgx.Tx, file ledger.ProcessedFile) error {
	query := `
		INSERT INTO arquivos_processados (nome_arquivo, hash_arquivo, tipo_arquivo, data_processamento, total_transacoes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (nome_arquivo) DO UPDATE SET
			hash_arquivo = EXCLUDED.hash_arquivo,
			tipo_arquivo = EXCLUDED.tipo_arquivo,
			data_processamento = EXCLUDED.data_processamento,
			total_transacoes = EXCLUDED.total_transacoes`

	_, err := tx.Exec(ctx, query,
		file.FileName,
		file.Hash,
		string(file.Type),
		file.ProcessedAt,
		file.RecordCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record processed file: %w", err)
	}
	return nil
}

// ListExpenses returns expenses with dates in [from, to], newest first.
func (r *Postgres) ListExpenses(ctx context.Context, from, to time.Time) ([]ledger.Expense, error) {
	query := `
		SELECT id, data, estabelecimento, categoria, valor::text, cartao, arquivo_origem
		FROM transacoes
		WHERE data BETWEEN $1 AND $2
		ORDER BY data DESC`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ledger.Expense
	for rows.Next() {
		var e ledger.Expense
		var amount string
		if err := rows.Scan(&e.ID, &e.Date, &e.Merchant, &e.Category, &amount, &e.Card, &e.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// ListIncome returns income entries with dates in [from, to], newest first.
func (r *Postgres) ListIncome(ctx context.Context, from, to time.Time) ([]ledger.Income, error) {
	query := `
		SELECT id, data, descricao, categoria, valor::text, fonte, codigo, tipo_lancamento, arquivo_origem
		FROM receitas
		WHERE data BETWEEN $1 AND $2
		ORDER BY data DESC`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	defer rows.Close()

	var incomes []ledger.Income
	for rows.Next() {
		var in ledger.Income
		var amount, kind string
		if err := rows.Scan(&in.ID, &in.Date, &in.Description, &in.Category, &amount, &in.Source, &in.Code, &kind, &in.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan income entry: %w", err)
		}
		if in.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
		}
		in.Kind = ledger.EntryKind(kind)
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

// ClearAll removes every record of every kind in one transaction. This is
// the only mutation allowed on stored records.
func (r *Postgres) ClearAll(ctx context.Context) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, table := range []string{"transacoes", "receitas", "arquivos_processados"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}
