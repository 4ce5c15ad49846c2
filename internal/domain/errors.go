package domain

import "errors"

// Sentinel errors for lookup and ingestion failures.
// Callers wrap these so the CLI can classify failures with errors.Is
// without knowing which source or parser produced them.
//
//	return fmt.Errorf("open workbook: %w", domain.ErrParse)
var (
	// ErrNotFound indicates no record matched a well-formed query.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyQuery indicates the query was empty after trimming
	// whitespace. The lookup is not performed.
	ErrEmptyQuery = errors.New("empty query")

	// ErrSourceUnavailable indicates the workbook could not be fetched
	// (missing file, network failure, non-2xx response).
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParse indicates the fetched bytes are not a readable workbook.
	ErrParse = errors.New("workbook could not be parsed")
)
