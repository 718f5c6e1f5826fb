// Package extractor pulls page-ordered text fragments out of PDF files.
package extractor

import "afredes/pdf2docx/internal/models"

// PDFExtractor defines the interface for extracting text from PDF files.
// The interface allows for dependency injection and makes the converter
// testable by providing different implementations for production and
// testing.
type PDFExtractor interface {
	// ExtractPages extracts the text of each page of the PDF at the given
	// path, in page order. Every fragment is independent; the converter
	// requires no cross-fragment context.
	ExtractPages(pdfPath string) ([]models.PageText, error)
}

// MockPDFExtractor implements PDFExtractor for testing purposes. It returns
// predefined pages instead of reading a file.
type MockPDFExtractor struct {
	MockPages []models.PageText
	MockErr   error

	// Calls records the paths ExtractPages was invoked with.
	Calls []string
}

// NewMockPDFExtractor creates a MockPDFExtractor with the given pages and
// error.
func NewMockPDFExtractor(pages []models.PageText, err error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockPages: pages,
		MockErr:   err,
	}
}

// ExtractPages returns the predefined pages or error.
func (e *MockPDFExtractor) ExtractPages(pdfPath string) ([]models.PageText, error) {
	e.Calls = append(e.Calls, pdfPath)
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockPages, nil
}
