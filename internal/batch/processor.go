// Package batch converts directories of PDF files and reports on the run.
package batch

import (
	"runtime"
	"sync"

	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"
)

// sequentialThreshold is the file count below which the worker pool is not
// worth its overhead.
const sequentialThreshold = 4

// ConvertFunc converts one input file and returns its record.
type ConvertFunc func(inputPath string) models.ConversionRecord

// Processor converts a set of files, in parallel when the set is large
// enough. Results keep the input order regardless of completion order.
type Processor struct {
	logger      logging.Logger
	workerCount int
}

// NewProcessor creates a Processor. workers <= 0 uses one worker per CPU.
func NewProcessor(logger logging.Logger, workers int) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{
		logger:      logger,
		workerCount: workers,
	}
}

// Process converts every file and returns one record per input, in input
// order. A failed file yields a failed record; it never aborts the run.
func (p *Processor) Process(files []string, convert ConvertFunc) []models.ConversionRecord {
	if len(files) < sequentialThreshold || p.workerCount == 1 {
		return p.processSequential(files, convert)
	}
	return p.processConcurrent(files, convert)
}

func (p *Processor) processSequential(files []string, convert ConvertFunc) []models.ConversionRecord {
	records := make([]models.ConversionRecord, 0, len(files))
	for _, file := range files {
		records = append(records, convert(file))
	}
	return records
}

// indexedJob carries a file together with its position so results can be
// reassembled in input order.
type indexedJob struct {
	index int
	file  string
}

type indexedRecord struct {
	index  int
	record models.ConversionRecord
}

func (p *Processor) processConcurrent(files []string, convert ConvertFunc) []models.ConversionRecord {
	workers := p.workerCount
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan indexedJob, workers)
	results := make(chan indexedRecord, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- indexedRecord{
					index:  job.index,
					record: convert(job.file),
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, file := range files {
			jobs <- indexedJob{index: i, file: file}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	records := make([]models.ConversionRecord, len(files))
	for result := range results {
		records[result.index] = result.record
	}

	p.logger.Debug("Concurrent batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})

	return records
}
