package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alephlabs/aleph/internal/harness"
)

// NewCheckCommand creates the check command, which runs a law suite and
// reports the results.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	var suitePath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the algebraic laws",
		Long:  "Run a law suite against the universe. Without --suite the built-in suite covering every law is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, suitePath)
		},
	}

	cmd.Flags().StringVar(&suitePath, "suite", "", "path to a YAML suite definition (optional)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *RootOptions, suitePath string) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	suite := harness.DefaultSuite()
	if suitePath != "" {
		loaded, err := harness.LoadSuite(suitePath)
		if err != nil {
			_ = formatter.Error("E005", "loading suite", err.Error())
			return WrapExitError(ExitCommandError, "loading suite", err)
		}
		suite = loaded
	}

	report, err := harness.NewRunner().Run(suite)
	if err != nil {
		_ = formatter.Error("E001", "running suite", err.Error())
		return WrapExitError(ExitCommandError, "running suite", err)
	}

	if err := formatter.SuccessText(report, renderCheckText(report)); err != nil {
		return err
	}
	if !report.Passed() {
		return NewExitError(ExitFailure, fmt.Sprintf("suite %s failed", report.Suite))
	}
	return nil
}

// renderCheckText renders a report for the text format. Failure details
// print in sorted key order so output stays deterministic.
func renderCheckText(report *harness.Report) string {
	var text strings.Builder
	fmt.Fprintf(&text, "suite %s\n", report.Suite)
	for _, res := range report.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&text, "  %-4s %s\n", status, res.Law)
		if !res.Passed {
			keys := make([]string, 0, len(res.Details))
			for k := range res.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&text, "       %s: %s\n", k, res.Details[k])
			}
		}
	}
	return strings.TrimRight(text.String(), "\n")
}
