// Package pdftext pulls plain text out of text-bearing PDF documents.
// Scanned/image-only PDFs are out of scope; they surface as ErrNoText.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText means the document produced no usable text at all. Callers
// must treat this as "could not read file", never as "zero transactions".
var ErrNoText = errors.New("no extractable text in document")

// Extractor extracts per-page text from PDF byte streams.
type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Text returns the concatenation of per-page text, pages separated by a
// newline. A page whose extraction fails is logged and skipped; it never
// aborts the remaining pages. An empty result after trimming is ErrNoText.
func (e *Extractor) Text(raw []byte) (string, error) {
	reader, err := openReader(raw)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		content, err := pageText(reader, i)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "page", i, "error", err)
			continue
		}
		if content != "" {
			sb.WriteString(content)
			sb.WriteString("\n")
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// openReader parses the PDF structure. The underlying library panics on
// some malformed inputs; a corrupt file must report as unreadable, not
// crash the pipeline.
func openReader(raw []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
}

func pageText(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed page content: %v", rec)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", errors.New("missing page object")
	}
	return page.GetPlainText(nil)
}
