package number

import (
	"math/big"

	"github.com/alephlabs/aleph/internal/existence"
)

// Add returns a + b, dispatched over the variant tags.
//
// Case arms, in order:
//   - an Infinite operand absorbs: the result is that Infinite, polarity
//     preserved
//   - a Zero operand is the additive identity
//   - two integral operands use arbitrary-precision addition
//   - any other linear pair falls back to the scalar view as a Real
func Add(a, b Number) (Number, error) {
	if a == nil || b == nil {
		return nil, existence.NewInvalidArgument("Number", "operand must not be nil")
	}
	if inf, ok := a.(*Infinite); ok {
		return inf, nil
	}
	if inf, ok := b.(*Infinite); ok {
		return inf, nil
	}
	if _, ok := a.(*Zero); ok {
		return b, nil
	}
	if _, ok := b.(*Zero); ok {
		return a, nil
	}
	if x, y, ok := integralPair(a, b); ok {
		return integralResult(new(big.Int).Add(x, y), a, b)
	}
	return linearReal(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b, with the same absorption arms as Add. Subtracting an
// Infinite yields an Infinite of the opposite polarity.
func Sub(a, b Number) (Number, error) {
	if a == nil || b == nil {
		return nil, existence.NewInvalidArgument("Number", "operand must not be nil")
	}
	if inf, ok := a.(*Infinite); ok {
		return inf, nil
	}
	if inf, ok := b.(*Infinite); ok {
		return InfiniteFromSet(inf.Polarity().Invert(), inf.Members()), nil
	}
	if _, ok := b.(*Zero); ok {
		return a, nil
	}
	if _, ok := a.(*Zero); ok {
		return Neg(b)
	}
	if x, y, ok := integralPair(a, b); ok {
		return integralResult(new(big.Int).Sub(x, y), a, b)
	}
	return linearReal(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b. An Infinite operand absorbs; a Zero operand
// annihilates, keeping its own polarity.
func Mul(a, b Number) (Number, error) {
	if a == nil || b == nil {
		return nil, existence.NewInvalidArgument("Number", "operand must not be nil")
	}
	if inf, ok := a.(*Infinite); ok {
		return inf, nil
	}
	if inf, ok := b.(*Infinite); ok {
		return inf, nil
	}
	if z, ok := a.(*Zero); ok {
		return z, nil
	}
	if z, ok := b.(*Zero); ok {
		return z, nil
	}
	if x, y, ok := integralPair(a, b); ok {
		return integralResult(new(big.Int).Mul(x, y), a, b)
	}
	return linearReal(a, b, func(x, y float64) float64 { return x * y })
}

// Neg returns the additive inverse. Natural and NaturalComplex are fixed
// to one sign, so negating them is a domain violation. The polar kinds
// negate by inverting their polarity.
func Neg(n Number) (Number, error) {
	switch v := n.(type) {
	case nil:
		return nil, existence.NewInvalidArgument("Number", "operand must not be nil")
	case *Zero:
		return ZeroFromSet(v.Polarity().Invert(), v.Members()), nil
	case *Infinite:
		return InfiniteFromSet(v.Polarity().Invert(), v.Members()), nil
	case *Integer:
		return NewIntegerFromBig(new(big.Int).Neg(v.value))
	case *Natural:
		return nil, existence.NewDomainViolation("Natural", "cannot negate a kind fixed to non-negative values")
	case *Real:
		return NewReal(-v.value)
	case *Rational:
		num, err := NewReal(-v.num.Value())
		if err != nil {
			return nil, err
		}
		return NewRational(num, v.den)
	case *Irrational:
		// The inverse of a named constant has no name of its own; it
		// degrades to a plain Real.
		return NewReal(-v.value)
	case *Complex:
		return v.Neg()
	case *NaturalComplex:
		return nil, existence.NewDomainViolation("NaturalComplex", "cannot negate a kind fixed to non-negative axes")
	default:
		return nil, existence.NewInvalidArgument("Number", "unknown number kind")
	}
}

// integralPair extracts arbitrary-precision values when both operands are
// integral kinds (Integer or Natural).
func integralPair(a, b Number) (*big.Int, *big.Int, bool) {
	x, ok := integralValue(a)
	if !ok {
		return nil, nil, false
	}
	y, ok := integralValue(b)
	if !ok {
		return nil, nil, false
	}
	return x, y, true
}

func integralValue(n Number) (*big.Int, bool) {
	switch v := n.(type) {
	case *Integer:
		return v.value, true
	case *Natural:
		return v.value, true
	default:
		return nil, false
	}
}

// integralResult wraps an integral result, staying Natural when both
// operands were Natural and the result did not leave the non-negative
// range, and widening to Integer otherwise.
func integralResult(v *big.Int, a, b Number) (Number, error) {
	_, aNat := a.(*Natural)
	_, bNat := b.(*Natural)
	if aNat && bNat && v.Sign() >= 0 {
		return NewNaturalFromBig(v)
	}
	return NewIntegerFromBig(v)
}

// linearReal applies a float operation over the scalar views of two linear
// operands. Structural kinds have no linear arithmetic.
func linearReal(a, b Number, op func(x, y float64) float64) (Number, error) {
	la, ok := a.(Linear)
	if !ok {
		return nil, existence.NewInvalidArgument(a.Kind(), "operand is not a linear kind")
	}
	lb, ok := b.(Linear)
	if !ok {
		return nil, existence.NewInvalidArgument(b.Kind(), "operand is not a linear kind")
	}
	return NewReal(op(la.Float(), lb.Float()))
}
