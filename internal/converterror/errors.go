// Package converterror defines the typed errors surfaced by the conversion
// pipeline.
package converterror

import "fmt"

// ExtractionError represents a failure while extracting content from the
// source PDF.
type ExtractionError struct {
	FilePath string
	Page     int // 0 when the failure is not page-specific
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("extraction failed for %s page %d: %v", e.FilePath, e.Page, e.Err)
	}
	return fmt.Sprintf("extraction failed for %s: %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// WriteError represents a failure while assembling or saving the output
// document.
type WriteError struct {
	FilePath string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write document %s: %v", e.FilePath, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not conform to the
// expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
