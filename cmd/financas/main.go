// Command financas runs the document-to-ledger pipeline from the command
// line: process a credit-card invoice or payslip PDF into the ledger, or
// clear all stored data.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wfsantos/financas/internal/domain/extract/pdftext"
	"github.com/wfsantos/financas/internal/domain/extract/service"
	"github.com/wfsantos/financas/internal/domain/ledger"
	"github.com/wfsantos/financas/internal/domain/ledger/repository"
	"github.com/wfsantos/financas/pkg/config"
	"github.com/wfsantos/financas/pkg/db"
	"github.com/wfsantos/financas/pkg/money"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() error {
	return errors.New("usage: financas <fatura|contracheque> <file.pdf> | financas listar <from> <to> | financas limpar")
}

func run() error {
	if len(os.Args) < 2 {
		return usage()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	ctx := context.Background()

	if err := db.Migrate(cfg.Database); err != nil {
		return err
	}
	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewPostgres(pool)
	pipeline := service.New(repo, pdftext.New(logger), logger)

	switch os.Args[1] {
	case "fatura":
		if len(os.Args) != 3 {
			return usage()
		}
		return processInvoice(ctx, pipeline, os.Args[2])
	case "contracheque":
		if len(os.Args) != 3 {
			return usage()
		}
		return processPayslip(ctx, pipeline, os.Args[2])
	case "listar":
		if len(os.Args) != 4 {
			return usage()
		}
		return listRange(ctx, repo, os.Args[2], os.Args[3])
	case "limpar":
		if err := repo.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Println("all records removed")
		return nil
	default:
		return usage()
	}
}

func processInvoice(ctx context.Context, pipeline *service.PipelineService, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	summary, err := pipeline.ProcessInvoice(ctx, raw, fileName(path))
	if err != nil {
		return err
	}

	fmt.Printf("card: %s\n", summary.Card)
	for _, e := range summary.Expenses {
		fmt.Printf("%s  %-50s  %-15s  %s\n",
			e.Date.Format("02/01/2006"), e.Merchant, e.Category, money.FormatBRL(e.Amount))
	}
	fmt.Printf("%d records stored\n", summary.File.RecordCount)
	return nil
}

func processPayslip(ctx context.Context, pipeline *service.PipelineService, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	summary, err := pipeline.ProcessPayslip(ctx, raw, fileName(path))
	if err != nil {
		return err
	}

	fmt.Printf("source: %s (reference %s)\n", summary.Source, summary.Reference.Format("01/2006"))
	for _, in := range summary.Incomes {
		fmt.Printf("%-6s %-8s %-40s %-25s %s\n",
			in.Code, in.Kind, in.Description, in.Category, money.FormatBRL(in.Amount))
	}
	fmt.Printf("credits: %s  debits: %s  net: %s\n",
		money.FormatBRL(summary.TotalCredits),
		money.FormatBRL(summary.TotalDebits),
		money.FormatBRL(summary.Net))
	fmt.Printf("%d records stored\n", summary.File.RecordCount)
	return nil
}

// listRange prints all stored records with dates in [from, to], given as
// YYYY-MM-DD, with per-table totals.
func listRange(ctx context.Context, repo repository.LedgerRepository, fromStr, toStr string) error {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", fromStr, err)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", toStr, err)
	}

	expenses, err := repo.ListExpenses(ctx, from, to)
	if err != nil {
		return err
	}
	var spent []decimal.Decimal
	for _, e := range expenses {
		fmt.Printf("%s  %-50s  %-15s  %-12s  %s\n",
			e.Date.Format("02/01/2006"), e.Merchant, e.Category, e.Card, money.FormatBRL(e.Amount))
		spent = append(spent, e.Amount)
	}
	fmt.Printf("despesas: %d (%s)\n", len(expenses), money.FormatBRL(money.Sum(spent)))

	incomes, err := repo.ListIncome(ctx, from, to)
	if err != nil {
		return err
	}
	var received []decimal.Decimal
	for _, in := range incomes {
		fmt.Printf("%s  %-6s %-8s %-40s  %s\n",
			in.Date.Format("02/01/2006"), in.Code, in.Kind, in.Description, money.FormatBRL(in.Amount))
		if in.Kind == ledger.KindCredit {
			received = append(received, in.Amount)
		}
	}
	fmt.Printf("receitas: %d (creditos %s)\n", len(incomes), money.FormatBRL(money.Sum(received)))
	return nil
}

func fileName(path string) string {
	return filepath.Base(path)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
