// Package convert provides the named, result-returning conversions between
// number kinds. Every cross-kind map is an explicit function here; nothing
// in the universe converts implicitly.
package convert

import (
	"math"
	"math/big"

	"github.com/alephlabs/aleph/internal/existence"
	"github.com/alephlabs/aleph/internal/number"
)

// ZeroToInfinite maps a Zero to its reciprocal dual: an Infinite with the
// inverted polarity, sharing the member set.
func ZeroToInfinite(z *number.Zero) (*number.Infinite, error) {
	if z == nil {
		return nil, existence.NewInvalidArgument("Zero", "input must not be nil")
	}
	return number.InfiniteFromSet(z.Polarity().Invert(), z.Members()), nil
}

// InfiniteToZero maps an Infinite back across the duality, inverting the
// polarity again. Composed with ZeroToInfinite it is the identity.
func InfiniteToZero(i *number.Infinite) (*number.Zero, error) {
	if i == nil {
		return nil, existence.NewInvalidArgument("Infinite", "input must not be nil")
	}
	return number.ZeroFromSet(i.Polarity().Invert(), i.Members()), nil
}

// ZeroToVoid maps a Zero to a Void sharing the member set. The polarity is
// dropped; a Void carries none.
func ZeroToVoid(z *number.Zero) (*existence.Void, error) {
	if z == nil {
		return nil, existence.NewInvalidArgument("Zero", "input must not be nil")
	}
	return existence.VoidFromSet(z.Members()), nil
}

// VoidToZero maps a Void to a positive-polarity Zero sharing the member
// set. Positive is the default polarity of the universe.
func VoidToZero(v *existence.Void) (*number.Zero, error) {
	if v == nil {
		return nil, existence.NewInvalidArgument("Void", "input must not be nil")
	}
	return number.ZeroFromSet(existence.Positive, v.Members()), nil
}

// IntegerToReal promotes an Integer to a Real via the nearest float64.
func IntegerToReal(n *number.Integer) (*number.Real, error) {
	if n == nil {
		return nil, existence.NewInvalidArgument("Integer", "input must not be nil")
	}
	return number.NewReal(n.Float())
}

// RealToInteger truncates a Real toward zero. The truncation is explicit
// and named so the lossy step is never silent. Non-finite reals are an
// invalid argument; coerce through the number package instead.
func RealToInteger(r *number.Real) (*number.Integer, error) {
	if r == nil {
		return nil, existence.NewInvalidArgument("Real", "input must not be nil")
	}
	v := r.Value()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, existence.NewInvalidArgument("Real", "cannot truncate a non-finite value")
	}
	i, _ := big.NewFloat(math.Trunc(v)).Int(nil)
	return number.NewIntegerFromBig(i)
}

// NaturalToInteger widens a Natural to an Integer. Total: every natural is
// an integer.
func NaturalToInteger(n *number.Natural) (*number.Integer, error) {
	if n == nil {
		return nil, existence.NewInvalidArgument("Natural", "input must not be nil")
	}
	return number.NewIntegerFromBig(n.Value())
}

// IntegerToNatural narrows an Integer to a Natural. Negative values are an
// invalid argument.
func IntegerToNatural(n *number.Integer) (*number.Natural, error) {
	if n == nil {
		return nil, existence.NewInvalidArgument("Integer", "input must not be nil")
	}
	return number.NewNaturalFromBig(n.Value())
}

// NaturalComplexToComplex embeds a NaturalComplex into Complex via
// natural-to-real promotion of both axes.
func NaturalComplexToComplex(c *number.NaturalComplex) (*number.Complex, error) {
	if c == nil {
		return nil, existence.NewInvalidArgument("NaturalComplex", "input must not be nil")
	}
	re, err := number.NewReal(c.Re().Float())
	if err != nil {
		return nil, err
	}
	im, err := number.NewReal(c.Im().Float())
	if err != nil {
		return nil, err
	}
	return number.NewComplex(re, im)
}

// ComplexToNaturalComplex narrows a Complex onto the natural axes. Both
// parts must be non-negative integral values; anything else is a domain
// violation.
func ComplexToNaturalComplex(c *number.Complex) (*number.NaturalComplex, error) {
	if c == nil {
		return nil, existence.NewInvalidArgument("Complex", "input must not be nil")
	}
	re, err := naturalAxis(c.Re().Value())
	if err != nil {
		return nil, err
	}
	im, err := naturalAxis(c.Im().Value())
	if err != nil {
		return nil, err
	}
	return number.NewNaturalComplex(re, im)
}

func naturalAxis(v float64) (*number.Natural, error) {
	if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, existence.NewDomainViolation("NaturalComplex", "axis must be a non-negative integral value")
	}
	i, _ := big.NewFloat(v).Int(nil)
	return number.NewNaturalFromBig(i)
}
