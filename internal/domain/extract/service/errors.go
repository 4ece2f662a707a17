package service

import (
	"errors"
	"fmt"
)

// ErrExtractionFailed means no usable text came out of the document
// (corrupt, scanned or empty PDF). Fatal for the document, no records.
var ErrExtractionFailed = errors.New("could not extract text from document")

// ErrNoRecords means text was extracted but neither the structural
// patterns nor the fallback scanner produced a valid record. Distinct from
// ErrExtractionFailed on purpose: the file was readable.
var ErrNoRecords = errors.New("no extractable records in document")

// DuplicateFileError reports that a document's content hash is already
// registered, naming the file it duplicates. The document is rejected
// before extraction.
type DuplicateFileError struct {
	Hash      string
	PriorFile string
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("file already processed as %q (hash %s)", e.PriorFile, e.Hash)
}
