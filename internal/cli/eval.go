package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alephlabs/aleph/internal/manifest"
)

// NewEvalCommand creates the eval command, which loads CUE manifests from
// a directory and materializes every declared value.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	var collectAll bool

	cmd := &cobra.Command{
		Use:   "eval <manifest-dir>",
		Short: "Evaluate value manifests",
		Long:  "Load CUE manifests from a directory and materialize every declared value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, opts, args[0], collectAll)
		},
	}

	cmd.Flags().BoolVar(&collectAll, "collect-all", false, "collect all compile errors instead of stopping at the first")

	return cmd
}

func runEval(cmd *cobra.Command, opts *RootOptions, dir string, collectAll bool) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	log, err := newLogger(opts.Verbose)
	if err != nil {
		return WrapExitError(ExitCommandError, "initializing logger", err)
	}
	defer func() { _ = log.Sync() }()

	mode := manifest.LoadModeFailFast
	if collectAll {
		mode = manifest.LoadModeCollectAll
	}

	result, errs := manifest.LoadDir(dir, mode)
	if len(errs) > 0 && (result == nil || len(result.Values) == 0) {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		_ = formatter.Error(loadErrorCode(errs[0]), "loading manifests", msgs)
		return NewExitError(ExitCommandError, strings.Join(msgs, "; "))
	}

	log.Debug("manifests loaded",
		zap.String("dir", dir),
		zap.Int("files", result.FileCount),
		zap.Int("values", len(result.Values)))

	evals := make([]*manifest.Evaluation, 0, len(result.Values))
	for _, spec := range result.Values {
		ev, err := manifest.Evaluate(spec)
		if err != nil {
			_ = formatter.Error("E001", fmt.Sprintf("evaluating %s", spec.Name), err.Error())
			return WrapExitError(ExitFailure, "evaluating "+spec.Name, err)
		}
		evals = append(evals, ev)
	}

	if len(errs) > 0 {
		// Collect-all mode: report partial success with the compile errors.
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		_ = formatter.Error("E001", "some values failed to compile", msgs)
		return NewExitError(ExitFailure, strings.Join(msgs, "; "))
	}

	var text strings.Builder
	for _, ev := range evals {
		fmt.Fprintf(&text, "%s (%s): %s = %s\n", ev.Name, ev.Kind, ev.Rendered, ev.Decimal)
	}
	return formatter.SuccessText(evals, strings.TrimRight(text.String(), "\n"))
}

// loadErrorCode extracts the E-code from a manifest load error, falling
// back to the generic code.
func loadErrorCode(err error) string {
	var le *manifest.LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return manifest.ErrCodeGeneric
}
