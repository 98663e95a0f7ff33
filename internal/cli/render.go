package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alephlabs/aleph/internal/constants"
	"github.com/alephlabs/aleph/internal/rotation"
)

// renderedValue is one well-known value in the render output.
type renderedValue struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Digest string `json:"digest"`
}

// NewRenderCommand creates the render command, which prints the
// well-known singletons of the universe.
func NewRenderCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the well-known values",
		Long:  "Print the singleton constants of the universe, including the rotation units, with their digests.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
}

func runRender(cmd *cobra.Command, opts *RootOptions) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	reg := constants.Get()

	values := []renderedValue{
		{Name: "one", Kind: reg.One.Kind(), Value: fmt.Sprintf("%g", reg.One.Value()), Digest: reg.One.Digest()},
		{Name: "integer-one", Kind: reg.IntegerOne.Kind(), Value: reg.IntegerOne.Value().Text(10), Digest: reg.IntegerOne.Digest()},
		{Name: "natural-one", Kind: reg.NaturalOne.Kind(), Value: reg.NaturalOne.Value().Text(10), Digest: reg.NaturalOne.Digest()},
		{Name: "zero", Kind: reg.Zero.Kind(), Value: reg.Zero.Polarity().String(), Digest: reg.Zero.Digest()},
		{Name: "infinite", Kind: reg.TheInfinite.Kind(), Value: reg.TheInfinite.Polarity().String(), Digest: reg.TheInfinite.Digest()},
		{Name: "pi", Kind: reg.Pi.Kind(), Value: fmt.Sprintf("%.15f", reg.Pi.Value()), Digest: reg.Pi.Digest()},
		{Name: "e", Kind: reg.E.Kind(), Value: fmt.Sprintf("%.15f", reg.E.Value()), Digest: reg.E.Digest()},
	}

	for i := 0; i <= rotation.Steps; i++ {
		unit, err := reg.Axis.Unit(i)
		if err != nil {
			return WrapExitError(ExitFailure, "reading rotation unit", err)
		}
		values = append(values, renderedValue{
			Name:   fmt.Sprintf("I%d", i),
			Kind:   unit.Kind(),
			Value:  fmt.Sprintf("(%g, %g)", unit.Re().Value(), unit.Im().Value()),
			Digest: unit.Digest(),
		})
	}

	var text strings.Builder
	for _, v := range values {
		fmt.Fprintf(&text, "%-12s %-14s %-24s %s\n", v.Name, v.Kind, v.Value, v.Digest)
	}
	return formatter.SuccessText(values, strings.TrimRight(text.String(), "\n"))
}
