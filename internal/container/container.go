// Package container provides dependency injection for the pdf2docx
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"afredes/pdf2docx/internal/config"
	"afredes/pdf2docx/internal/converter"
	"afredes/pdf2docx/internal/docwriter"
	"afredes/pdf2docx/internal/extractor"
	"afredes/pdf2docx/internal/images"
	"afredes/pdf2docx/internal/logging"
)

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getter methods only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	extractor extractor.PDFExtractor
	converter *converter.Converter
	images    *images.Extractor
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first; everything else logs through it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	pdfExtractor := extractor.NewLedongthucExtractor(logger)

	writerFactory := docwriter.Factory(func() docwriter.DocumentWriter {
		return docwriter.NewUniofficeWriter()
	})

	conv := converter.New(pdfExtractor, writerFactory, converter.Options{
		PageBreaks: cfg.Convert.PageBreaks,
		Overwrite:  cfg.Convert.Overwrite,
	}, logger)

	imageExtractor := images.NewExtractor(images.Filter{
		XYLimit:  cfg.Images.XYLimit,
		RelRatio: cfg.Images.RelRatio,
		AbsSize:  cfg.Images.AbsSize,
	}, logger)

	return &Container{
		logger:    logger,
		config:    cfg,
		extractor: pdfExtractor,
		converter: conv,
		images:    imageExtractor,
	}, nil
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetExtractor returns the PDF text extractor.
func (c *Container) GetExtractor() extractor.PDFExtractor {
	return c.extractor
}

// GetConverter returns the PDF to DOCX converter.
func (c *Container) GetConverter() *converter.Converter {
	return c.converter
}

// GetImageExtractor returns the image extractor.
func (c *Container) GetImageExtractor() *images.Extractor {
	return c.images
}
