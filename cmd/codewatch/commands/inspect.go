package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codewatch"
	"codewatch/inspection"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect a file with every provider selected for its language",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the report as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	api, err := buildAPI()
	if err != nil {
		return err
	}

	path := args[0]
	outcomes, err := api.InspectFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	if flagJSON {
		data, err := codewatch.MarshalReport(codewatch.BuildReport(path, outcomes))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		if outcomes != nil {
			return ErrProblemsFound
		}
		return nil
	}

	if outcomes == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: no problems found\n", path)
		return nil
	}

	printOutcomes(cmd.OutOrStdout(), path, outcomes)
	return ErrProblemsFound
}

func printOutcomes(w io.Writer, path string, outcomes []inspection.ProviderOutcome) {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	severityColors := map[inspection.Severity]*color.Color{
		inspection.SeverityError:   color.New(color.FgRed, color.Bold),
		inspection.SeverityWarning: color.New(color.FgYellow),
		inspection.SeverityInfo:    color.New(color.FgCyan),
	}

	summary := inspection.Summarize(outcomes)
	for _, outcome := range outcomes {
		problems := outcome.Problems()
		fmt.Fprintf(w, "%s (%d)\n", outcome.Provider.Name(), len(problems))
		for _, p := range problems {
			label := severityColors[p.Severity].Sprint(p.Severity)
			if p.Position.HasLine() {
				fmt.Fprintf(w, "  %s:%d:%d: %s: %s\n", path, p.Position.Line, p.Position.Column, label, p.Message)
			} else {
				fmt.Fprintf(w, "  %s: %s: %s\n", path, label, p.Message)
			}
		}
	}
	fmt.Fprintf(w, "\n%d problem(s) from %d provider(s)\n", summary.TotalProblems, len(outcomes))
}
