// Package convert handles the single-file PDF to DOCX conversion command
package convert

import (
	"path/filepath"

	"afredes/pdf2docx/cmd/common"
	"afredes/pdf2docx/cmd/root"
	"afredes/pdf2docx/internal/container"
	"afredes/pdf2docx/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PDF to DOCX",
	Long: `Convert a single PDF document to a Word (.docx) document.

When no output file is given, the destination is the input path with its
extension replaced by .docx. With images.enabled set, the embedded images of
the PDF are extracted into the configured directory next to the output file.

Example:
  pdf2docx convert -i report.pdf -o report.docx`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Convert command called")
	logger.Info("Converting file",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	result := common.ProcessFile(appContainer.GetConverter(), root.SharedFlags.Input,
		root.SharedFlags.Output, root.SharedFlags.Validate, logger)

	extractImagesIfEnabled(appContainer, root.SharedFlags.Input, result.OutputPath, logger)

	root.Log.Info("PDF to DOCX conversion completed successfully!")
}

// extractImagesIfEnabled runs image extraction alongside the conversion when
// images.enabled is set, into the configured directory next to the output
// file. An extraction failure is reported but does not fail the command; the
// document itself has already been written.
func extractImagesIfEnabled(appContainer *container.Container, inputFile, outputFile string, logger logging.Logger) {
	cfg := appContainer.GetConfig()
	if !cfg.Images.Enabled {
		return
	}

	outDir := filepath.Join(filepath.Dir(outputFile), cfg.Images.Directory)
	kept, err := appContainer.GetImageExtractor().Extract(inputFile, outDir)
	if err != nil {
		logger.WithError(err).Warn("Image extraction failed",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
		return
	}

	logger.Info("Extracted images alongside document",
		logging.Field{Key: logging.FieldDirectory, Value: outDir},
		logging.Field{Key: logging.FieldCount, Value: len(kept)})
}
