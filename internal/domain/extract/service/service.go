// Package service orchestrates the document-to-ledger pipeline: content
// hashing, duplicate-file rejection, text extraction, pattern extraction,
// deduplication and transactional persistence, one document at a time.
package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wfsantos/financas/internal/domain/extract"
	"github.com/wfsantos/financas/internal/domain/ledger"
	"github.com/wfsantos/financas/pkg/money"
)

// Repository is the persistence slice the pipeline needs.
type Repository interface {
	FindProcessedFile(ctx context.Context, hash string) (string, error)
	SaveInvoiceBatch(ctx context.Context, expenses []ledger.Expense, file ledger.ProcessedFile) error
	SavePayslipBatch(ctx context.Context, incomes []ledger.Income, deductions []ledger.Expense, file ledger.ProcessedFile) error
}

// TextExtractor turns PDF bytes into plain text.
type TextExtractor interface {
	Text(raw []byte) (string, error)
}

// PipelineService processes one uploaded document end to end. Processing
// is synchronous and single-document: a file is fully extracted,
// classified, deduplicated and persisted before the next is accepted.
type PipelineService struct {
	repo      Repository
	extractor TextExtractor
	logger    *slog.Logger
	now       func() time.Time
}

func New(repo Repository, extractor TextExtractor, logger *slog.Logger) *PipelineService {
	return &PipelineService{
		repo:      repo,
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// InvoiceSummary is the outcome of processing one invoice document.
type InvoiceSummary struct {
	File     ledger.ProcessedFile
	Card     string
	Expenses []ledger.Expense
}

// PayslipSummary is the outcome of processing one payslip document,
// including the reconciliation totals (credits - debits = net).
type PayslipSummary struct {
	File         ledger.ProcessedFile
	Source       string
	Reference    time.Time
	Incomes      []ledger.Income
	Deductions   []ledger.Expense
	TotalCredits decimal.Decimal
	TotalDebits  decimal.Decimal
	Net          decimal.Decimal
}

// FileHash computes the content hash used as the file-level idempotence
// key. MD5 matches the hashes already stored by earlier versions of the
// ledger; it is an identity key, not a security boundary.
func FileHash(raw []byte) string {
	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:])
}

// ProcessInvoice runs the full pipeline for a credit-card invoice.
func (s *PipelineService) ProcessInvoice(ctx context.Context, raw []byte, fileName string) (*InvoiceSummary, error) {
	log := s.logger.With("file", fileName, "type", ledger.DocumentInvoice)
	log.Info("processing started", "size", len(raw))

	hash, text, err := s.prepare(ctx, raw, fileName, log)
	if err != nil {
		return nil, err
	}

	result := extract.Invoice(text, fileName, s.now())
	logStats(log, result.Stats)
	if len(result.Expenses) == 0 {
		log.Warn("no records extracted")
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoRecords)
	}

	file := ledger.ProcessedFile{
		FileName:    fileName,
		Hash:        hash,
		Type:        ledger.DocumentInvoice,
		ProcessedAt: s.now(),
		RecordCount: len(result.Expenses),
	}
	if err := s.repo.SaveInvoiceBatch(ctx, result.Expenses, file); err != nil {
		log.Error("persistence failed", "error", err)
		return nil, fmt.Errorf("persist invoice records: %w", err)
	}

	log.Info("processing finished", "card", result.Card, "records", len(result.Expenses))
	return &InvoiceSummary{File: file, Card: result.Card, Expenses: result.Expenses}, nil
}

// ProcessPayslip runs the full pipeline for a payslip document.
func (s *PipelineService) ProcessPayslip(ctx context.Context, raw []byte, fileName string) (*PayslipSummary, error) {
	log := s.logger.With("file", fileName, "type", ledger.DocumentPayslip)
	log.Info("processing started", "size", len(raw))

	hash, text, err := s.prepare(ctx, raw, fileName, log)
	if err != nil {
		return nil, err
	}

	result := extract.Payslip(text, fileName, s.now())
	logStats(log, result.Stats)
	if len(result.Incomes) == 0 && len(result.Deductions) == 0 {
		log.Warn("no records extracted")
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoRecords)
	}

	summary := &PayslipSummary{
		Source:     result.Source,
		Reference:  result.Reference,
		Incomes:    result.Incomes,
		Deductions: result.Deductions,
	}
	for _, in := range result.Incomes {
		if in.Kind == ledger.KindCredit {
			summary.TotalCredits = summary.TotalCredits.Add(in.Amount)
		} else {
			summary.TotalDebits = summary.TotalDebits.Add(in.Amount)
		}
	}
	summary.Net = summary.TotalCredits.Sub(summary.TotalDebits)

	file := ledger.ProcessedFile{
		FileName:    fileName,
		Hash:        hash,
		Type:        ledger.DocumentPayslip,
		ProcessedAt: s.now(),
		RecordCount: len(result.Incomes) + len(result.Deductions),
	}
	if err := s.repo.SavePayslipBatch(ctx, result.Incomes, result.Deductions, file); err != nil {
		log.Error("persistence failed", "error", err)
		return nil, fmt.Errorf("persist payslip records: %w", err)
	}
	summary.File = file

	log.Info("processing finished",
		"source", result.Source,
		"reference", result.Reference.Format("2006-01"),
		"records", file.RecordCount,
		"credits", money.FormatBRL(summary.TotalCredits),
		"debits", money.FormatBRL(summary.TotalDebits),
		"net", money.FormatBRL(summary.Net),
	)
	return summary, nil
}

// prepare runs the steps shared by both document types: hash, duplicate
// check and text extraction.
func (s *PipelineService) prepare(ctx context.Context, raw []byte, fileName string, log *slog.Logger) (hash, text string, err error) {
	hash = FileHash(raw)

	prior, err := s.repo.FindProcessedFile(ctx, hash)
	if err != nil {
		log.Error("duplicate check failed", "error", err)
		return "", "", fmt.Errorf("check processed files: %w", err)
	}
	if prior != "" {
		log.Warn("duplicate file rejected", "prior_file", prior)
		return "", "", &DuplicateFileError{Hash: hash, PriorFile: prior}
	}

	text, err = s.extractor.Text(raw)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		return "", "", fmt.Errorf("%s: %w: %v", fileName, ErrExtractionFailed, err)
	}
	return hash, text, nil
}

func logStats(log *slog.Logger, stats extract.Stats) {
	for _, hits := range stats.PatternHits {
		log.Info("pattern matched", "pattern", hits.Pattern, "matches", hits.Matches, "accepted", hits.Accepted)
	}
	if stats.UsedFallback {
		log.Warn("structural patterns produced nothing, used line scanner")
	}
	if stats.Skipped > 0 {
		log.Info("invalid candidates skipped", "count", stats.Skipped)
	}
}
