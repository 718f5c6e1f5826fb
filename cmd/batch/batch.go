// Package batch handles batch processing of files
package batch

import (
	"afredes/pdf2docx/cmd/root"
	"afredes/pdf2docx/internal/batch"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert PDF files from a directory",
	Long: `Batch convert all PDF files in an input directory to DOCX files in an
output directory. Each file is converted independently; one failure does not
stop the run. A CSV run report is written into the output directory.

Example:
  pdf2docx batch -i input_dir/ -o output_dir/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	// For batch, -i/-o refer to directories.
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	logger := root.GetLogger()

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}
	cfg := appContainer.GetConfig()

	records, err := batch.Run(appContainer.GetConverter(), inputDir, outputDir,
		cfg.Batch.ReportFile, cfg.Batch.Workers, logger)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
	}

	converted := 0
	for _, record := range records {
		if record.Status == models.StatusConverted {
			converted++
		}
	}

	logger.Info("Batch conversion finished",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "converted", Value: converted},
		logging.Field{Key: "failed", Value: len(records) - converted})
}
