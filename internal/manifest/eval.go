package manifest

import (
	"math/big"

	"github.com/alephlabs/aleph/internal/factored"
	"github.com/alephlabs/aleph/internal/number"
)

// Evaluation is the result of materializing one manifest entry.
type Evaluation struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Rendered string `json:"rendered"`
	Decimal  string `json:"decimal"`
	Digest   string `json:"digest"`
}

// Evaluate materializes a compiled ValueSpec into its number or factored
// value and renders it.
func Evaluate(spec ValueSpec) (*Evaluation, error) {
	switch spec.Kind {
	case KindInteger:
		n, err := number.NewInteger(spec.Int)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Name:     spec.Name,
			Kind:     string(spec.Kind),
			Rendered: n.String(),
			Decimal:  n.Value().Text(10),
			Digest:   n.Digest(),
		}, nil

	case KindNatural:
		n, err := number.NewNatural(spec.Int)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Name:     spec.Name,
			Kind:     string(spec.Kind),
			Rendered: n.String(),
			Decimal:  n.Value().Text(10),
			Digest:   n.Digest(),
		}, nil

	case KindReal:
		r, err := number.NewReal(spec.Real)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Name:     spec.Name,
			Kind:     string(spec.Kind),
			Rendered: r.String(),
			Decimal:  big.NewFloat(r.Value()).Text('g', -1),
			Digest:   r.Digest(),
		}, nil

	case KindRational:
		num, err := number.NewReal(spec.Num)
		if err != nil {
			return nil, err
		}
		den, err := number.NewReal(spec.Den)
		if err != nil {
			return nil, err
		}
		r, err := number.NewRational(num, den)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Name:     spec.Name,
			Kind:     string(spec.Kind),
			Rendered: r.String(),
			Decimal:  big.NewFloat(r.Float()).Text('g', -1),
			Digest:   r.Digest(),
		}, nil

	case KindFactored:
		n, err := BuildFactored(spec.Factors)
		if err != nil {
			return nil, err
		}
		return &Evaluation{
			Name:     spec.Name,
			Kind:     string(spec.Kind),
			Rendered: n.String(),
			Decimal:  n.Canonical(),
			Digest:   n.Digest(),
		}, nil

	default:
		return nil, &CompileError{Field: "kind", Message: "unknown kind " + string(spec.Kind)}
	}
}

// BuildFactored assembles a factored integer from compiled factor specs,
// recursing through exponent towers.
func BuildFactored(specs []FactorSpec) (*factored.N, error) {
	factors := make([]*factored.P, 0, len(specs))
	for _, fs := range specs {
		var exp *factored.N
		var err error
		if len(fs.Tower) > 0 {
			exp, err = BuildFactored(fs.Tower)
		} else {
			exp, err = factored.NewLeafN(big.NewInt(fs.Exp))
		}
		if err != nil {
			return nil, err
		}
		p, err := factored.NewP(big.NewInt(fs.Base), exp)
		if err != nil {
			return nil, err
		}
		factors = append(factors, p)
	}
	return factored.NewN(factors...)
}
