package factored

import (
	"math/big"

	"github.com/alephlabs/aleph/internal/existence"
)

// PowChunkLimit is the ceiling for direct exponentiation. Exponents above
// it are split into chunks of at most this size; direct exponentiation is
// never invoked with a larger exponent.
const PowChunkLimit = 1 << 16

var powChunk = big.NewInt(PowChunkLimit)

// FullRangePow computes base^exp for a non-negative exponent of any size.
//
// When exp fits under the chunk ceiling the power is computed directly.
// Otherwise exp splits into quotient and remainder against the ceiling:
// the ceiling-power is computed once, raised to the quotient by repeated
// multiplication (recursing when the quotient itself exceeds the ceiling),
// and the remainder power is multiplied in. Total work scales with the
// number of chunks, independent of any single call's native limit.
func FullRangePow(base, exp *big.Int) (*big.Int, error) {
	if base == nil || exp == nil {
		return nil, existence.NewInvalidArgument("P", "base and exponent must not be nil")
	}
	if base.Sign() < 0 {
		return nil, existence.NewInvalidArgument("P", "base must be non-negative")
	}
	if exp.Sign() < 0 {
		return nil, existence.NewInvalidArgument("P", "exponent must be non-negative")
	}
	return fullRangePow(base, exp), nil
}

func fullRangePow(base, exp *big.Int) *big.Int {
	if exp.Cmp(powChunk) <= 0 {
		return directPow(base, exp)
	}

	quo, rem := new(big.Int).QuoRem(exp, powChunk, new(big.Int))
	chunkPow := directPow(base, powChunk)

	var acc *big.Int
	if quo.Cmp(powChunk) > 0 {
		acc = fullRangePow(chunkPow, quo)
	} else {
		acc = big.NewInt(1)
		for i, q := int64(0), quo.Int64(); i < q; i++ {
			acc.Mul(acc, chunkPow)
		}
	}

	return acc.Mul(acc, directPow(base, rem))
}

// directPow is the only call site of native exponentiation. Callers
// guarantee exp <= PowChunkLimit.
func directPow(base, exp *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, nil)
}
