package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"codewatch"
)

var (
	flagConfig  string
	flagNoColor bool
	flagJSON    bool
)

// ErrProblemsFound signals that inspection completed and found problems;
// the process exits 1 without printing an error message.
var ErrProblemsFound = errors.New("problems found")

var rootCmd = &cobra.Command{
	Use:           "codewatch",
	Short:         "Run pluggable analyzers against a document and report problems",
	Long:          `Codewatch inspects a single document with every analyzer provider registered for its language, running them concurrently with per-provider timeouts, and prints a unified, ordered problem report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration file (overrides the default search paths)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads either the explicitly given config file or the merged
// default search-path configuration.
func loadConfig() (*codewatch.AppConfig, error) {
	if flagConfig != "" {
		return codewatch.ParseConfigFile(flagConfig)
	}

	loader, err := codewatch.NewConfigLoader()
	if err != nil {
		return nil, err
	}
	return loader.LoadConfig()
}

// buildAPI constructs an API instance with the loaded configuration applied
func buildAPI() (*codewatch.API, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return codewatch.NewWithConfig(config)
}
