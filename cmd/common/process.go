// Package common contains shared functionality for command handlers
package common

import (
	"afredes/pdf2docx/internal/converter"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/validation"
)

// ProcessFile converts a single file with the given converter and returns
// the conversion result. The conversion runs on a worker goroutine;
// ProcessFile waits on the one-shot result channel and reports the outcome
// through the logger. With validate set, the input is checked for a PDF
// header first.
func ProcessFile(conv *converter.Converter, inputFile, outputFile string, validate bool, log logging.Logger) converter.Result {
	if inputFile == "" {
		log.Fatal("Input file must be specified")
	}

	if validate {
		log.Info("Validating format...")
		if err := validation.ValidateInputFile(inputFile); err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		log.Info("Validation successful.")
	}

	results, err := conv.Start(inputFile, outputFile)
	if err != nil {
		log.Fatalf("Error starting conversion: %v", err)
	}

	result := <-results
	if result.Err != nil {
		log.Fatalf("Error converting to DOCX: %v", result.Err)
	}

	log.Info("Conversion completed successfully!",
		logging.Field{Key: logging.FieldOutputFile, Value: result.OutputPath},
		logging.Field{Key: logging.FieldPages, Value: result.Pages})

	return result
}
