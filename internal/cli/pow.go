package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alephlabs/aleph/internal/factored"
	"github.com/alephlabs/aleph/internal/store"
)

// powResult is the JSON payload for the pow command.
type powResult struct {
	Factors string `json:"factors"`
	Value   string `json:"value"`
	Digest  string `json:"digest"`
	Bits    int    `json:"bits"`
	Cached  bool   `json:"cached,omitempty"`
}

// NewPowCommand creates the pow command, which materializes base^exp as a
// factored integer, optionally through a persistent cache.
func NewPowCommand(opts *RootOptions) *cobra.Command {
	var (
		base   int64
		exp    int64
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "pow",
		Short: "Materialize a factored power",
		Long:  "Compute base^exp through the chunked full-range exponentiation, optionally caching the result in a SQLite store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPow(cmd, opts, base, exp, dbPath)
		},
	}

	cmd.Flags().Int64Var(&base, "base", 2, "power base")
	cmd.Flags().Int64Var(&exp, "exp", 1, "power exponent")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to a SQLite materialization cache (optional)")

	return cmd
}

func runPow(cmd *cobra.Command, opts *RootOptions, base, exp int64, dbPath string) error {
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

	p, err := factored.NewPInt(base, exp)
	if err != nil {
		_ = formatter.Error("E001", "building factored power", err.Error())
		return WrapExitError(ExitCommandError, "building factored power", err)
	}
	n, err := factored.NewN(p)
	if err != nil {
		_ = formatter.Error("E001", "building factored integer", err.Error())
		return WrapExitError(ExitCommandError, "building factored integer", err)
	}

	res := powResult{
		Factors: n.String(),
		Digest:  n.Digest(),
	}

	value := n.Value()
	if dbPath != "" {
		st, err := store.Open(dbPath, store.WithLogger(log))
		if err != nil {
			_ = formatter.Error("E002", "opening cache", err.Error())
			return WrapExitError(ExitCommandError, "opening cache", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if _, hit, err := st.Get(ctx, n.Digest()); err == nil {
			res.Cached = hit
		}
		value, err = st.Materialize(ctx, n, store.NewSessionToken())
		if err != nil {
			_ = formatter.Error("E002", "materializing through cache", err.Error())
			return WrapExitError(ExitFailure, "materializing through cache", err)
		}
		log.Debug("materialized through cache",
			zap.String("digest", n.Digest()),
			zap.Bool("hit", res.Cached))
	}

	res.Value = value.Text(10)
	res.Bits = value.BitLen()

	text := fmt.Sprintf("%s = %s (%d bits)", res.Factors, res.Value, res.Bits)
	if res.Cached {
		text += " [cached]"
	}
	return formatter.SuccessText(res, text)
}
