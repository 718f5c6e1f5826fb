// Package models defines the data types shared across the converter.
package models

// PageText is one page's extracted text fragment, prior to sanitization.
// Fragments carry no identity beyond their position in page order and are
// never mutated after creation.
type PageText struct {
	// Number is the 1-based page number the fragment was extracted from.
	Number int
	// Text is the raw extracted text for the page. It may be empty and may
	// contain control characters and numeric character references.
	Text string
}

// ConversionRecord describes the outcome of converting a single file.
// It is the row type of the batch run report CSV.
type ConversionRecord struct {
	Input      string `csv:"input"`
	Output     string `csv:"output"`
	Pages      int    `csv:"pages"`
	Status     string `csv:"status"`
	Error      string `csv:"error"`
	DurationMS int64  `csv:"duration_ms"`
}

// Conversion record statuses.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
)

// NewConversionRecord builds a record from a finished conversion.
func NewConversionRecord(input, output string, pages int, durationMS int64, err error) ConversionRecord {
	record := ConversionRecord{
		Input:      input,
		Output:     output,
		Pages:      pages,
		Status:     StatusConverted,
		DurationMS: durationMS,
	}
	if err != nil {
		record.Status = StatusFailed
		record.Error = err.Error()
	}
	return record
}
