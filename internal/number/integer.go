package number

import (
	"math/big"

	"github.com/alephlabs/aleph/internal/existence"
)

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	base
	value *big.Int
}

// NewInteger constructs an Integer from a native value.
func NewInteger(v int64, members ...existence.Existence) (*Integer, error) {
	return NewIntegerFromBig(big.NewInt(v), members...)
}

// NewIntegerFromBig constructs an Integer from an arbitrary-precision
// value. The value is copied; nil is an invalid argument.
func NewIntegerFromBig(v *big.Int, members ...existence.Existence) (*Integer, error) {
	if v == nil {
		return nil, existence.NewInvalidArgument("Integer", "value must not be nil")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	val := new(big.Int).Set(v)
	return &Integer{
		base:  newBase("Integer", []byte(val.Text(10)), set),
		value: val,
	}, nil
}

func (*Integer) number() {}

// Value returns a copy of the underlying integer.
func (n *Integer) Value() *big.Int { return new(big.Int).Set(n.value) }

// Sign returns -1, 0 or +1.
func (n *Integer) Sign() int { return n.value.Sign() }

// IsZero reports whether the value is zero.
func (n *Integer) IsZero() bool { return n.value.Sign() == 0 }

// Float returns the nearest float64, saturating to an IEEE infinity when
// the value exceeds float range.
func (n *Integer) Float() float64 {
	f, _ := new(big.Float).SetInt(n.value).Float64()
	return f
}

// Natural is an Integer restricted to values >= 0. Construction rejects
// negative values; negation is a domain violation.
type Natural struct {
	base
	value *big.Int
}

// NewNatural constructs a Natural from a native value. Negative values are
// an invalid argument.
func NewNatural(v int64, members ...existence.Existence) (*Natural, error) {
	return NewNaturalFromBig(big.NewInt(v), members...)
}

// NewNaturalFromBig constructs a Natural from an arbitrary-precision value.
func NewNaturalFromBig(v *big.Int, members ...existence.Existence) (*Natural, error) {
	if v == nil {
		return nil, existence.NewInvalidArgument("Natural", "value must not be nil")
	}
	if v.Sign() < 0 {
		return nil, existence.NewInvalidArgument("Natural", "value must be non-negative")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	val := new(big.Int).Set(v)
	return &Natural{
		base:  newBase("Natural", []byte(val.Text(10)), set),
		value: val,
	}, nil
}

func (*Natural) number() {}

// Value returns a copy of the underlying integer.
func (n *Natural) Value() *big.Int { return new(big.Int).Set(n.value) }

// Sign returns 0 or +1.
func (n *Natural) Sign() int { return n.value.Sign() }

// IsZero reports whether the value is zero.
func (n *Natural) IsZero() bool { return n.value.Sign() == 0 }

// Float returns the nearest float64.
func (n *Natural) Float() float64 {
	f, _ := new(big.Float).SetInt(n.value).Float64()
	return f
}
