package number

import (
	"encoding/binary"
	"math"

	"github.com/alephlabs/aleph/internal/existence"
)

// floatPayload folds a float64 into a digest via its IEEE bit pattern.
// Bit-pattern identity, not tolerance, defines structural equality. An
// IEEE negative zero folds to positive zero: the signed zero of the
// universe lives in the Zero kind's polarity, not in Real.
func floatPayload(vs ...float64) []byte {
	out := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		if v == 0 {
			v = 0
		}
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		out = append(out, buf[:]...)
	}
	return out
}

// Real is a double-precision value.
type Real struct {
	base
	value float64
}

// NewReal constructs a Real.
func NewReal(v float64, members ...existence.Existence) (*Real, error) {
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	return &Real{
		base:  newBase("Real", floatPayload(v), set),
		value: v,
	}, nil
}

func (*Real) number() {}

// Value returns the underlying float64.
func (r *Real) Value() float64 { return r.value }

// Sign returns -1, 0 or +1.
func (r *Real) Sign() int {
	switch {
	case r.value > 0:
		return 1
	case r.value < 0:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether the value is zero.
func (r *Real) IsZero() bool { return r.value == 0 }

// Float returns the value itself.
func (r *Real) Float() float64 { return r.value }

// Rational is a Real tagged with an exact numerator/denominator pair.
// Its value is numerator/denominator.
type Rational struct {
	base
	num *Real
	den *Real
}

// NewRational constructs a Rational from a numerator/denominator pair.
// Nil parts and a zero denominator are invalid arguments.
func NewRational(num, den *Real, members ...existence.Existence) (*Rational, error) {
	if num == nil || den == nil {
		return nil, existence.NewInvalidArgument("Rational", "numerator and denominator must not be nil")
	}
	if den.IsZero() {
		return nil, existence.NewInvalidArgument("Rational", "denominator must not be zero")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	// The pair is ordered, so both digests enter the payload in order.
	payload := append([]byte(num.Digest()+":"), []byte(den.Digest())...)
	return &Rational{
		base: newBase("Rational", payload, set),
		num:  num,
		den:  den,
	}, nil
}

func (*Rational) number() {}

// Num returns the numerator.
func (r *Rational) Num() *Real { return r.num }

// Den returns the denominator.
func (r *Rational) Den() *Real { return r.den }

// Sign returns the sign of the quotient.
func (r *Rational) Sign() int {
	s := r.num.Sign() * r.den.Sign()
	return s
}

// IsZero reports whether the numerator is zero.
func (r *Rational) IsZero() bool { return r.num.IsZero() }

// Float returns numerator/denominator.
func (r *Rational) Float() float64 { return r.num.Value() / r.den.Value() }

// Irrational is a Real with no exact numerator/denominator pair, e.g. pi
// or e, obtained by a convergent series at registry initialization. The
// name participates in identity so that two irrationals with coinciding
// approximations remain distinct.
type Irrational struct {
	base
	name  string
	value float64
}

// NewIrrational constructs a named Irrational.
func NewIrrational(name string, v float64, members ...existence.Existence) (*Irrational, error) {
	if name == "" {
		return nil, existence.NewInvalidArgument("Irrational", "name must not be empty")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	payload := append([]byte(name+":"), floatPayload(v)...)
	return &Irrational{
		base:  newBase("Irrational", payload, set),
		name:  name,
		value: v,
	}, nil
}

func (*Irrational) number() {}

// Name returns the constant's name ("pi", "e", ...).
func (r *Irrational) Name() string { return r.name }

// Value returns the series approximation.
func (r *Irrational) Value() float64 { return r.value }

// Sign returns -1, 0 or +1.
func (r *Irrational) Sign() int {
	switch {
	case r.value > 0:
		return 1
	case r.value < 0:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether the approximation is zero.
func (r *Irrational) IsZero() bool { return r.value == 0 }

// Float returns the series approximation.
func (r *Irrational) Float() float64 { return r.value }
