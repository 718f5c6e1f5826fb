package batch_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"afredes/pdf2docx/internal/batch"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"

	"github.com/stretchr/testify/assert"
)

func namedFiles(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file-%03d.pdf", i)
	}
	return files
}

func echoConvert(inputPath string) models.ConversionRecord {
	return models.NewConversionRecord(inputPath, inputPath+".docx", 1, 0, nil)
}

func TestProcessSequentialKeepsOrder(t *testing.T) {
	processor := batch.NewProcessor(&logging.MockLogger{}, 2)
	files := namedFiles(3)

	records := processor.Process(files, echoConvert)

	assert.Len(t, records, 3)
	for i, record := range records {
		assert.Equal(t, files[i], record.Input)
	}
}

func TestProcessConcurrentKeepsOrder(t *testing.T) {
	processor := batch.NewProcessor(&logging.MockLogger{}, 8)
	files := namedFiles(50)

	records := processor.Process(files, echoConvert)

	assert.Len(t, records, 50)
	for i, record := range records {
		assert.Equal(t, files[i], record.Input)
		assert.Equal(t, models.StatusConverted, record.Status)
	}
}

func TestProcessCallsConvertOncePerFile(t *testing.T) {
	processor := batch.NewProcessor(&logging.MockLogger{}, 4)
	files := namedFiles(20)

	var calls atomic.Int64
	processor.Process(files, func(inputPath string) models.ConversionRecord {
		calls.Add(1)
		return echoConvert(inputPath)
	})

	assert.Equal(t, int64(20), calls.Load())
}

func TestProcessEmptyInput(t *testing.T) {
	processor := batch.NewProcessor(&logging.MockLogger{}, 4)

	records := processor.Process(nil, echoConvert)

	assert.Empty(t, records)
}
