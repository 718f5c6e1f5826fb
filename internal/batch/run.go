package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"afredes/pdf2docx/internal/converter"
	"afredes/pdf2docx/internal/fileutils"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"
)

// Run converts every .pdf file under inputDir into outputDir and writes the
// run report CSV there. It returns the records of the run; a file's failure
// is recorded, not fatal.
func Run(conv *converter.Converter, inputDir, outputDir, reportFile string, workers int, logger logging.Logger) ([]models.ConversionRecord, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", inputDir)
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	logger.Info("Starting batch conversion",
		logging.Field{Key: logging.FieldDirectory, Value: inputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	processor := NewProcessor(logger, workers)
	records := processor.Process(files, func(inputPath string) models.ConversionRecord {
		outputPath := filepath.Join(outputDir,
			filepath.Base(converter.DeriveOutputPath(inputPath)))

		start := time.Now()
		pages, err := conv.Convert(inputPath, outputPath)
		elapsed := time.Since(start).Milliseconds()

		if err != nil {
			logger.WithError(err).Error("Batch file conversion failed",
				logging.Field{Key: logging.FieldInputFile, Value: inputPath})
		}
		return models.NewConversionRecord(inputPath, outputPath, pages, elapsed, err)
	})

	reportPath := filepath.Join(outputDir, reportFile)
	if err := WriteReport(records, reportPath, logger); err != nil {
		return records, err
	}

	return records, nil
}
