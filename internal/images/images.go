// Package images extracts embedded images from PDF files and applies the
// configured size filter to the results.
package images

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"afredes/pdf2docx/internal/converterror"
	"afredes/pdf2docx/internal/fileutils"
	"afredes/pdf2docx/internal/logging"
)

// Extractor extracts images from PDFs into a directory.
type Extractor struct {
	filter Filter
	logger logging.Logger
}

// NewExtractor creates an Extractor with the given filter.
func NewExtractor(filter Filter, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{filter: filter, logger: logger}
}

// Extract pulls every embedded image of the PDF at pdfPath into outDir,
// removes the ones the filter rejects, and returns the kept paths sorted.
// With the default zero-valued filter everything extracted is kept.
func (e *Extractor) Extract(pdfPath, outDir string) ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(outDir); err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(pdfPath, outDir, nil, conf); err != nil {
		return nil, &converterror.ExtractionError{FilePath: pdfPath, Err: err}
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, err
	}

	var kept []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(outDir, entry.Name())

		keep, reason := e.filter.Keep(path)
		if !keep {
			e.logger.Debug("Filtered out extracted image",
				logging.Field{Key: logging.FieldFile, Value: path},
				logging.Field{Key: "reason", Value: reason})
			if err := os.Remove(path); err != nil {
				e.logger.WithError(err).Warn("Failed to remove filtered image",
					logging.Field{Key: logging.FieldFile, Value: path})
			}
			continue
		}
		kept = append(kept, path)
	}

	sort.Strings(kept)

	e.logger.Info("Extracted images from PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldDirectory, Value: outDir},
		logging.Field{Key: logging.FieldCount, Value: len(kept)})

	return kept, nil
}
