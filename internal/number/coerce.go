package number

import (
	"math"
	"math/big"

	"github.com/alephlabs/aleph/internal/existence"
)

// Saturating coercions to every fixed-width primitive.
//
// Rules:
//   - Infinite saturates to the target type's maximum (positive polarity)
//     or minimum (negative polarity).
//   - Zero coerces to the target type's neutral value.
//   - Finite values clamp to the target range.
//   - A nil Number, or a nil Zero/Infinite reference, coerces to the
//     neutral value. Coercion is the one surface where an absent reference
//     defaults instead of erroring; conversions still propagate absence.

// AsInt8 coerces n to int8.
func AsInt8(n Number) int8 { return int8(saturateSigned(n, math.MinInt8, math.MaxInt8)) }

// AsInt16 coerces n to int16.
func AsInt16(n Number) int16 { return int16(saturateSigned(n, math.MinInt16, math.MaxInt16)) }

// AsInt32 coerces n to int32.
func AsInt32(n Number) int32 { return int32(saturateSigned(n, math.MinInt32, math.MaxInt32)) }

// AsInt64 coerces n to int64.
func AsInt64(n Number) int64 { return saturateSigned(n, math.MinInt64, math.MaxInt64) }

// AsUint8 coerces n to uint8.
func AsUint8(n Number) uint8 { return uint8(saturateUnsigned(n, math.MaxUint8)) }

// AsUint16 coerces n to uint16.
func AsUint16(n Number) uint16 { return uint16(saturateUnsigned(n, math.MaxUint16)) }

// AsUint32 coerces n to uint32.
func AsUint32(n Number) uint32 { return uint32(saturateUnsigned(n, math.MaxUint32)) }

// AsUint64 coerces n to uint64.
func AsUint64(n Number) uint64 { return saturateUnsigned(n, math.MaxUint64) }

// AsFloat32 coerces n to float32, saturating Infinite to the float32 range
// bounds.
func AsFloat32(n Number) float32 {
	f := saturateFloat(n, math.MaxFloat32)
	return float32(f)
}

// AsFloat64 coerces n to float64, saturating Infinite to the float64 range
// bounds.
func AsFloat64(n Number) float64 {
	return saturateFloat(n, math.MaxFloat64)
}

func saturateSigned(n Number, min, max int64) int64 {
	switch v := n.(type) {
	case nil:
		return 0
	case *Zero:
		return 0
	case *Infinite:
		if v == nil {
			return 0
		}
		if v.polarity == existence.Positive {
			return max
		}
		return min
	case *Integer:
		return clampBigSigned(v.value, min, max)
	case *Natural:
		return clampBigSigned(v.value, min, max)
	default:
		return clampFloatSigned(n.Float(), min, max)
	}
}

func saturateUnsigned(n Number, max uint64) uint64 {
	switch v := n.(type) {
	case nil:
		return 0
	case *Zero:
		return 0
	case *Infinite:
		if v == nil {
			return 0
		}
		if v.polarity == existence.Positive {
			return max
		}
		return 0
	case *Integer:
		return clampBigUnsigned(v.value, max)
	case *Natural:
		return clampBigUnsigned(v.value, max)
	default:
		return clampFloatUnsigned(n.Float(), max)
	}
}

func saturateFloat(n Number, max float64) float64 {
	switch v := n.(type) {
	case nil:
		return 0
	case *Zero:
		return 0
	case *Infinite:
		if v == nil {
			return 0
		}
		if v.polarity == existence.Positive {
			return max
		}
		return -max
	default:
		f := n.Float()
		if f > max {
			return max
		}
		if f < -max {
			return -max
		}
		return f
	}
}

func clampBigSigned(v *big.Int, min, max int64) int64 {
	if v.Cmp(big.NewInt(max)) > 0 {
		return max
	}
	if v.Cmp(big.NewInt(min)) < 0 {
		return min
	}
	return v.Int64()
}

func clampBigUnsigned(v *big.Int, max uint64) uint64 {
	if v.Sign() < 0 {
		return 0
	}
	if v.Cmp(new(big.Int).SetUint64(max)) > 0 {
		return max
	}
	return v.Uint64()
}

func clampFloatSigned(f float64, min, max int64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	if f >= float64(max) {
		return max
	}
	if f <= float64(min) {
		return min
	}
	return int64(f)
}

func clampFloatUnsigned(f float64, max uint64) uint64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= float64(max) {
		return max
	}
	return uint64(f)
}
