// Package images handles the image extraction command
package images

import (
	"path/filepath"

	"afredes/pdf2docx/cmd/root"
	"afredes/pdf2docx/internal/config"
	"afredes/pdf2docx/internal/logging"
	"afredes/pdf2docx/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the images command
var Cmd = &cobra.Command{
	Use:   "images",
	Short: "Extract embedded images from a PDF",
	Long: `Extract the embedded images of a PDF document into a directory.

When no output directory is given, an "images" directory is created next to
the input file. The configured size filter is applied to the extracted files;
by default all thresholds are zero and every image is kept.

Example:
  pdf2docx images -i report.pdf -o extracted/`,
	Run: imagesFunc,
}

func imagesFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Images command called")

	inputFile := root.SharedFlags.Input
	if inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	outDir := resolveOutputDir(appContainer.GetConfig(), inputFile, root.SharedFlags.Output)

	if root.SharedFlags.Validate {
		logger.Info("Validating format...")
		if err := validation.ValidateInputFile(inputFile); err != nil {
			logger.Fatalf("Error validating file: %v", err)
		}
		logger.Info("Validation successful.")
	}

	kept, err := appContainer.GetImageExtractor().Extract(inputFile, outDir)
	if err != nil {
		logger.Fatalf("Error extracting images: %v", err)
	}

	logger.Info("Image extraction completed successfully!",
		logging.Field{Key: logging.FieldDirectory, Value: outDir},
		logging.Field{Key: logging.FieldCount, Value: len(kept)})
}

// resolveOutputDir returns the -o flag value, or the configured images
// directory next to the input file when no output was given.
func resolveOutputDir(cfg *config.Config, inputFile, flagOutput string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return filepath.Join(filepath.Dir(inputFile), cfg.Images.Directory)
}
