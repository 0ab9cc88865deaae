package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"codewatch"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate configuration files against the config schema",
	RunE:  runConfigValidate,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the configuration search paths in precedence order",
	RunE:  runConfigPaths,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathsCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		loader, err := codewatch.NewConfigLoader()
		if err != nil {
			return err
		}
		if !loader.ConfigExists() {
			fmt.Fprintln(cmd.OutOrStdout(), "no configuration files found")
			return nil
		}
		if _, err := loader.LoadConfig(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration valid")
		return nil
	}

	for _, path := range paths {
		if _, err := codewatch.ParseConfigFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
	}
	return nil
}

func runConfigPaths(cmd *cobra.Command, args []string) error {
	loader, err := codewatch.NewConfigLoader()
	if err != nil {
		return err
	}
	for _, path := range loader.GetConfigPaths() {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
