package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers <file>",
	Short: "Show the ordered provider selection for a file path",
	Args:  cobra.ExactArgs(1),
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	api, err := buildAPI()
	if err != nil {
		return err
	}

	path := args[0]
	lang := api.Registry().LanguageForPath(path)
	if lang == "" {
		lang = "(unknown)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: language %s\n", path, lang)

	selected := api.SelectProviders(path)
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no providers selected")
		return nil
	}
	for i, p := range selected {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, p.Name())
	}
	return nil
}
