package extractor

import (
	"github.com/ledongthuc/pdf"

	"afredes/pdf2docx/internal/converterror"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"
)

// LedongthucExtractor implements PDFExtractor using github.com/ledongthuc/pdf.
// This is the production implementation.
type LedongthucExtractor struct {
	logger logging.Logger
}

// NewLedongthucExtractor creates a new LedongthucExtractor.
func NewLedongthucExtractor(logger logging.Logger) *LedongthucExtractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LedongthucExtractor{logger: logger}
}

// ExtractPages extracts per-page text from the PDF at pdfPath. Pages whose
// content cannot be read yield an empty fragment rather than aborting the
// document; the fragment keeps its page number so page order is preserved.
func (e *LedongthucExtractor) ExtractPages(pdfPath string) ([]models.PageText, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &converterror.InvalidFormatError{
			FilePath:       pdfPath,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close PDF file",
				logging.Field{Key: logging.FieldFile, Value: pdfPath})
		}
	}()

	total := r.NumPage()
	pages := make([]models.PageText, 0, total)

	for num := 1; num <= total; num++ {
		page := r.Page(num)
		if page.V.IsNull() {
			e.logger.Debug("Skipping null page",
				logging.Field{Key: logging.FieldFile, Value: pdfPath},
				logging.Field{Key: logging.FieldPage, Value: num})
			pages = append(pages, models.PageText{Number: num})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.WithError(err).Warn("Failed to extract page text",
				logging.Field{Key: logging.FieldFile, Value: pdfPath},
				logging.Field{Key: logging.FieldPage, Value: num})
			pages = append(pages, models.PageText{Number: num})
			continue
		}

		pages = append(pages, models.PageText{Number: num, Text: text})
	}

	e.logger.Debug("Extracted text from PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldPages, Value: total})

	return pages, nil
}
