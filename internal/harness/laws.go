package harness

import (
	"fmt"
	"math/big"

	"github.com/alephlabs/aleph/internal/constants"
	"github.com/alephlabs/aleph/internal/convert"
	"github.com/alephlabs/aleph/internal/existence"
	"github.com/alephlabs/aleph/internal/factored"
	"github.com/alephlabs/aleph/internal/number"
)

// checkLaw dispatches one law to its checker.
func checkLaw(id LawID) Result {
	switch id {
	case LawDoubleNegation:
		return checkDoubleNegation()
	case LawDualityRoundTrip:
		return checkDualityRoundTrip()
	case LawZeroVoidRoundTrip:
		return checkZeroVoidRoundTrip()
	case LawAbsorption:
		return checkAbsorption()
	case LawRotationClosure:
		return checkRotationClosure()
	case LawChunkedPow:
		return checkChunkedPow()
	default:
		return Result{
			Law:     id,
			Passed:  false,
			Details: map[string]string{"error": "unknown law"},
		}
	}
}

func failure(id LawID, msg string) Result {
	return Result{Law: id, Passed: false, Details: map[string]string{"error": msg}}
}

func checkDoubleNegation() Result {
	leaf, err := existence.NewNature()
	if err != nil {
		return failure(LawDoubleNegation, err.Error())
	}
	b, err := existence.NewBeing(leaf)
	if err != nil {
		return failure(LawDoubleNegation, err.Error())
	}

	neg := existence.Negate(b)
	v, isVoid := neg.(*existence.Void)
	if !isVoid {
		return failure(LawDoubleNegation, "negated Being is not a Void")
	}
	if !v.Members().Equal(b.Members()) {
		return failure(LawDoubleNegation, "negation changed the member set")
	}
	if !existence.Equal(existence.Negate(neg), b) {
		return failure(LawDoubleNegation, "double negation is not the identity")
	}
	return Result{
		Law:    LawDoubleNegation,
		Passed: true,
		Details: map[string]string{
			"subject": "Being with one member",
		},
	}
}

func checkDualityRoundTrip() Result {
	for _, p := range []existence.Polarity{existence.Positive, existence.Negative} {
		z, err := number.NewZero(p)
		if err != nil {
			return failure(LawDualityRoundTrip, err.Error())
		}
		inf, err := convert.ZeroToInfinite(z)
		if err != nil {
			return failure(LawDualityRoundTrip, err.Error())
		}
		if inf.Polarity() != p.Invert() {
			return failure(LawDualityRoundTrip, "conversion did not invert polarity")
		}
		back, err := convert.InfiniteToZero(inf)
		if err != nil {
			return failure(LawDualityRoundTrip, err.Error())
		}
		if !existence.Equal(z, back) {
			return failure(LawDualityRoundTrip, "round trip is not the identity")
		}
	}
	return Result{
		Law:    LawDualityRoundTrip,
		Passed: true,
		Details: map[string]string{
			"polarities": "positive, negative",
		},
	}
}

func checkZeroVoidRoundTrip() Result {
	leaf, err := existence.NewNature()
	if err != nil {
		return failure(LawZeroVoidRoundTrip, err.Error())
	}
	z, err := number.NewZero(existence.Positive, leaf)
	if err != nil {
		return failure(LawZeroVoidRoundTrip, err.Error())
	}

	v, err := convert.ZeroToVoid(z)
	if err != nil {
		return failure(LawZeroVoidRoundTrip, err.Error())
	}
	if !v.Members().Equal(z.Members()) {
		return failure(LawZeroVoidRoundTrip, "conversion dropped members")
	}
	back, err := convert.VoidToZero(v)
	if err != nil {
		return failure(LawZeroVoidRoundTrip, err.Error())
	}
	if !existence.Equal(z, back) {
		return failure(LawZeroVoidRoundTrip, "round trip is not the identity")
	}
	return Result{
		Law:    LawZeroVoidRoundTrip,
		Passed: true,
		Details: map[string]string{
			"members": "1",
		},
	}
}

func checkAbsorption() Result {
	two, err := number.NewInteger(2)
	if err != nil {
		return failure(LawAbsorption, err.Error())
	}
	ops := []struct {
		name string
		fn   func(a, b number.Number) (number.Number, error)
	}{
		{"add", number.Add},
		{"sub", number.Sub},
		{"mul", number.Mul},
	}
	for _, p := range []existence.Polarity{existence.Positive, existence.Negative} {
		inf, err := number.NewInfinite(p)
		if err != nil {
			return failure(LawAbsorption, err.Error())
		}
		for _, op := range ops {
			got, err := op.fn(inf, two)
			if err != nil {
				return failure(LawAbsorption, op.name+": "+err.Error())
			}
			res, ok := got.(*number.Infinite)
			if !ok {
				return failure(LawAbsorption, op.name+": result is not Infinite")
			}
			if res.Polarity() != p {
				return failure(LawAbsorption, op.name+": polarity not preserved")
			}
		}
	}
	return Result{
		Law:    LawAbsorption,
		Passed: true,
		Details: map[string]string{
			"operand": "Integer(2)",
			"ops":     "add, sub, mul",
		},
	}
}

func checkRotationClosure() Result {
	axis := constants.Get().Axis

	i0, err := axis.Unit(0)
	if err != nil {
		return failure(LawRotationClosure, err.Error())
	}
	i2, err := axis.Unit(2)
	if err != nil {
		return failure(LawRotationClosure, err.Error())
	}
	i4, err := axis.Unit(4)
	if err != nil {
		return failure(LawRotationClosure, err.Error())
	}

	if !existence.Equal(i0, i4) {
		return failure(LawRotationClosure, "I4 does not close the cycle")
	}
	negI0, err := i0.Neg()
	if err != nil {
		return failure(LawRotationClosure, err.Error())
	}
	if !existence.Equal(negI0, i2) {
		return failure(LawRotationClosure, "I2 is not the additive inverse of I0")
	}
	return Result{
		Law:    LawRotationClosure,
		Passed: true,
		Details: map[string]string{
			"cycle": "4",
		},
	}
}

func checkChunkedPow() Result {
	exp := big.NewInt(factored.PowChunkLimit + 1)
	got, err := factored.FullRangePow(big.NewInt(2), exp)
	if err != nil {
		return failure(LawChunkedPow, err.Error())
	}
	want := new(big.Int).Exp(big.NewInt(2), exp, nil)
	if got.Cmp(want) != 0 {
		return failure(LawChunkedPow, "chunked power differs from reference")
	}
	return Result{
		Law:    LawChunkedPow,
		Passed: true,
		Details: map[string]string{
			"exponent": exp.Text(10),
			"bit_len":  fmt.Sprintf("%d", got.BitLen()),
		},
	}
}
