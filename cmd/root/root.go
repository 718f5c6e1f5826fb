// Package root contains the root command for the application
package root

import (
	"afredes/pdf2docx/internal/config"
	"afredes/pdf2docx/internal/container"
	"afredes/pdf2docx/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// appContainer holds the wired application dependencies, built in
	// PersistentPreRun.
	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pdf2docx",
		Short: "A CLI tool to convert PDF documents to Word (.docx) documents.",
		Long: `pdf2docx is a CLI tool that converts PDF documents to Word (.docx) format.
Text is extracted page by page, sanitized, and written one paragraph per page.
It can also batch-convert directories and extract embedded images.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf2docx!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to wire dependencies: %v", err)
			}
			logging.SetLogger(appContainer.GetLogger())
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// GetContainer returns the wired dependency container, or nil before
// PersistentPreRun has built it.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the container, for tests.
func SetContainer(c *container.Container) {
	appContainer = c
}

// GetLogger returns the command-level structured logger.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
