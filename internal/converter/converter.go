// Package converter orchestrates the PDF to DOCX conversion: extract
// page-ordered text fragments, sanitize each one, and write the result as a
// Word document.
package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"afredes/pdf2docx/internal/converterror"
	"afredes/pdf2docx/internal/docwriter"
	"afredes/pdf2docx/internal/extractor"
	"afredes/pdf2docx/internal/fileutils"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/textutils"
)

// ErrConversionInFlight is returned by Start when a conversion is already
// running on this Converter. Conversions do not queue.
var ErrConversionInFlight = errors.New("a conversion is already in flight")

// Options control document assembly.
type Options struct {
	// PageBreaks writes a page break after each page's paragraph.
	PageBreaks bool
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{PageBreaks: true, Overwrite: true}
}

// Converter converts PDF files to Word documents.
type Converter struct {
	extractor extractor.PDFExtractor
	newWriter docwriter.Factory
	options   Options
	logger    logging.Logger

	running atomic.Bool
}

// New creates a Converter. A nil writer factory gets the unioffice
// implementation; a nil logger gets the package default.
func New(ext extractor.PDFExtractor, newWriter docwriter.Factory, options Options, logger logging.Logger) *Converter {
	if newWriter == nil {
		newWriter = func() docwriter.DocumentWriter {
			return docwriter.NewUniofficeWriter()
		}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Converter{
		extractor: ext,
		newWriter: newWriter,
		options:   options,
		logger:    logger,
	}
}

// DeriveOutputPath returns the destination path for inputPath: the same path
// with its final extension segment replaced by ".docx".
func DeriveOutputPath(inputPath string) string {
	return fileutils.ReplaceExtension(inputPath, ".docx")
}

// Convert converts the PDF at inputPath into a Word document at outputPath
// and returns the number of pages written. An empty outputPath derives the
// destination from inputPath.
func (c *Converter) Convert(inputPath, outputPath string) (int, error) {
	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath)
	}

	if !c.options.Overwrite && fileutils.FileExists(outputPath) {
		return 0, fmt.Errorf("output file already exists: %s", outputPath)
	}

	c.logger.Info("Converting PDF to DOCX",
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath})

	pages, err := c.extractor.ExtractPages(inputPath)
	if err != nil {
		c.logger.WithError(err).Error("Text extraction failed",
			logging.Field{Key: logging.FieldInputFile, Value: inputPath})
		return 0, err
	}

	doc := c.newWriter()
	for _, page := range pages {
		doc.AddParagraph(textutils.Sanitize(page.Text))
		if c.options.PageBreaks {
			doc.AddPageBreak()
		}
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(outputPath)); err != nil {
		return 0, &converterror.WriteError{FilePath: outputPath, Err: err}
	}

	if err := doc.Save(outputPath); err != nil {
		c.logger.WithError(err).Error("Failed to save document",
			logging.Field{Key: logging.FieldOutputFile, Value: outputPath})
		return 0, &converterror.WriteError{FilePath: outputPath, Err: err}
	}

	c.logger.Info("Conversion complete",
		logging.Field{Key: logging.FieldOutputFile, Value: outputPath},
		logging.Field{Key: logging.FieldPages, Value: len(pages)})

	return len(pages), nil
}
