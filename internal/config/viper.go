package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Convert struct {
		// PageBreaks controls whether a page break is written after each
		// page's paragraph.
		PageBreaks bool `mapstructure:"page_breaks" yaml:"page_breaks"`
		// Overwrite allows replacing an existing output file.
		Overwrite bool `mapstructure:"overwrite" yaml:"overwrite"`
	} `mapstructure:"convert" yaml:"convert"`

	Images struct {
		// Enabled turns on image extraction alongside text conversion.
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
		// Directory receives extracted images, relative to the output file.
		Directory string `mapstructure:"directory" yaml:"directory"`
		// XYLimit is the minimum pixel length of each image side. 0 disables
		// the check.
		XYLimit int `mapstructure:"xy_limit" yaml:"xy_limit"`
		// RelRatio is the minimum stored-bytes-per-pixel ratio. 0 disables
		// the check.
		RelRatio float64 `mapstructure:"rel_ratio" yaml:"rel_ratio"`
		// AbsSize is the minimum image size in bytes. 0 disables the check.
		AbsSize int64 `mapstructure:"abs_size" yaml:"abs_size"`
	} `mapstructure:"images" yaml:"images"`

	Batch struct {
		// Workers caps the number of files converted concurrently. 0 means
		// one worker per CPU.
		Workers int `mapstructure:"workers" yaml:"workers"`
		// ReportFile names the CSV run report written into the output
		// directory.
		ReportFile string `mapstructure:"report_file" yaml:"report_file"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes viper configuration with hierarchical loading:
// defaults, then an optional config file, then PDF2DOCX_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pdf2docx")
	v.AddConfigPath(".pdf2docx")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PDF2DOCX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. The image thresholds
// default to zero, which disables filtering entirely.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("convert.page_breaks", true)
	v.SetDefault("convert.overwrite", true)

	v.SetDefault("images.enabled", false)
	v.SetDefault("images.directory", "images")
	v.SetDefault("images.xy_limit", 0)
	v.SetDefault("images.rel_ratio", 0.0)
	v.SetDefault("images.abs_size", 0)

	v.SetDefault("batch.workers", 0)
	v.SetDefault("batch.report_file", "report.csv")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Images.XYLimit < 0 {
		return fmt.Errorf("images.xy_limit must not be negative, got: %d", config.Images.XYLimit)
	}
	if config.Images.RelRatio < 0 {
		return fmt.Errorf("images.rel_ratio must not be negative, got: %f", config.Images.RelRatio)
	}
	if config.Images.AbsSize < 0 {
		return fmt.Errorf("images.abs_size must not be negative, got: %d", config.Images.AbsSize)
	}

	if config.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got: %d", config.Batch.Workers)
	}
	if config.Batch.ReportFile == "" {
		return fmt.Errorf("batch.report_file must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
