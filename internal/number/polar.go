package number

import (
	"math"

	"github.com/alephlabs/aleph/internal/existence"
)

// Zero is the signed zero. It carries a polarity and a (usually empty)
// member set. A Zero and an Infinite of opposite polarity are reciprocal
// duals; see the convert package.
type Zero struct {
	base
	polarity existence.Polarity
}

// NewZero constructs a Zero with the given polarity and members.
func NewZero(p existence.Polarity, members ...existence.Existence) (*Zero, error) {
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	return zeroFromSet(p, set), nil
}

// ZeroFromSet constructs a Zero sharing an existing member set. Used by
// conversions that must preserve membership exactly.
func ZeroFromSet(p existence.Polarity, set existence.Set) *Zero {
	return zeroFromSet(p, set)
}

func zeroFromSet(p existence.Polarity, set existence.Set) *Zero {
	return &Zero{
		base:     newBase("Zero", existence.PolarityPayload(p), set),
		polarity: p,
	}
}

func (*Zero) number() {}

// Polarity returns the sign bit.
func (z *Zero) Polarity() existence.Polarity { return z.polarity }

// Sign returns 0: a zero has no linear sign regardless of polarity.
func (z *Zero) Sign() int { return 0 }

// IsZero reports true.
func (z *Zero) IsZero() bool { return true }

// Float returns a zero carrying the polarity as an IEEE sign bit.
func (z *Zero) Float() float64 {
	return math.Copysign(0, float64(z.polarity.Sign()))
}

// Infinite is the unbounded value. It absorbs every finite perturbation
// under Add, Sub and Mul, preserving its polarity.
type Infinite struct {
	base
	polarity existence.Polarity
}

// NewInfinite constructs an Infinite with the given polarity and members.
func NewInfinite(p existence.Polarity, members ...existence.Existence) (*Infinite, error) {
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	return infiniteFromSet(p, set), nil
}

// InfiniteFromSet constructs an Infinite sharing an existing member set.
func InfiniteFromSet(p existence.Polarity, set existence.Set) *Infinite {
	return infiniteFromSet(p, set)
}

func infiniteFromSet(p existence.Polarity, set existence.Set) *Infinite {
	return &Infinite{
		base:     newBase("Infinite", existence.PolarityPayload(p), set),
		polarity: p,
	}
}

func (*Infinite) number() {}

// Polarity returns the sign bit.
func (i *Infinite) Polarity() existence.Polarity { return i.polarity }

// Sign returns the polarity as a linear sign.
func (i *Infinite) Sign() int { return i.polarity.Sign() }

// IsZero reports false.
func (i *Infinite) IsZero() bool { return false }

// Float returns the signed IEEE infinity.
func (i *Infinite) Float() float64 { return math.Inf(i.polarity.Sign()) }
