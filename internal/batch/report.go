package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"afredes/pdf2docx/internal/fileutils"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"
)

// WriteReport writes the run's conversion records to a CSV file. An empty
// record set still produces a file with headers.
func WriteReport(records []models.ConversionRecord, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if records == nil {
		records = []models.ConversionRecord{}
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close report file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	logger.Info("Wrote batch run report",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return nil
}

// ReadReport reads a run report back into records, for inspection and tests.
func ReadReport(csvFile string) ([]models.ConversionRecord, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening report file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var records []models.ConversionRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("error parsing report: %w", err)
	}
	return records, nil
}
