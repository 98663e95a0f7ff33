package factored

import (
	"math/big"
	"strings"

	"github.com/alephlabs/aleph/internal/existence"
)

// P is a single (base, exponent) factor. The exponent is itself an N, so
// towers of exponents nest to any depth. A nil exponent means one.
type P struct {
	base   *big.Int
	exp    *N
	value  *big.Int
	digest string
}

// N is a product of P factors. The empty product is one.
type N struct {
	factors []*P
	value   *big.Int
	digest  string
}

// NewP constructs a factor base^exp. Negative bases are an invalid
// argument; exponent negativity is unrepresentable by construction.
func NewP(base *big.Int, exp *N) (*P, error) {
	if base == nil {
		return nil, existence.NewInvalidArgument("P", "base must not be nil")
	}
	if base.Sign() < 0 {
		return nil, existence.NewInvalidArgument("P", "base must be non-negative")
	}
	e := exp
	if e == nil {
		var err error
		e, err = unitExponent()
		if err != nil {
			return nil, err
		}
	}
	v, err := FullRangePow(base, e.value)
	if err != nil {
		return nil, err
	}
	return &P{
		base:   new(big.Int).Set(base),
		exp:    e,
		value:  v,
		digest: valueDigest(v),
	}, nil
}

// NewPInt constructs a factor from native base and exponent values.
func NewPInt(base, exp int64) (*P, error) {
	if exp < 0 {
		return nil, existence.NewInvalidArgument("P", "exponent must be non-negative")
	}
	e, err := NewLeafN(big.NewInt(exp))
	if err != nil {
		return nil, err
	}
	return NewP(big.NewInt(base), e)
}

// Base returns a copy of the factor's base.
func (p *P) Base() *big.Int { return new(big.Int).Set(p.base) }

// Exp returns the factor's exponent.
func (p *P) Exp() *N { return p.exp }

// Value returns a copy of the materialized value base^exp.
func (p *P) Value() *big.Int { return new(big.Int).Set(p.value) }

// Digest returns the content-addressed identity of the materialized value.
// Factor shape does not participate.
func (p *P) Digest() string { return p.digest }

// Equal reports value equality with another factor.
func (p *P) Equal(o *P) bool { return o != nil && p.digest == o.digest }

// String renders the factor as "base^exponent".
func (p *P) String() string {
	return p.base.Text(10) + "^" + p.exp.String()
}

// NewN constructs the product of the given factors. Nil factors are an
// invalid argument; no factors is the empty product, one.
func NewN(factors ...*P) (*N, error) {
	v := big.NewInt(1)
	fs := make([]*P, len(factors))
	for i, f := range factors {
		if f == nil {
			return nil, existence.NewInvalidArgument("N", "factor must not be nil")
		}
		fs[i] = f
		v.Mul(v, f.value)
	}
	return &N{factors: fs, value: v, digest: valueDigest(v)}, nil
}

// NewLeafN constructs an N holding a plain non-negative value, the
// terminator of an exponent tower. Implemented as v^1 so the tower stays
// uniform.
func NewLeafN(v *big.Int) (*N, error) {
	if v == nil {
		return nil, existence.NewInvalidArgument("N", "value must not be nil")
	}
	if v.Sign() < 0 {
		return nil, existence.NewInvalidArgument("N", "value must be non-negative")
	}
	val := new(big.Int).Set(v)
	return &N{
		factors: nil,
		value:   val,
		digest:  valueDigest(val),
	}, nil
}

// Factors returns the factor list. The slice is a copy; the factors are
// immutable.
func (n *N) Factors() []*P {
	out := make([]*P, len(n.factors))
	copy(out, n.factors)
	return out
}

// Value returns a copy of the materialized product.
func (n *N) Value() *big.Int { return new(big.Int).Set(n.value) }

// Digest returns the content-addressed identity of the materialized value.
func (n *N) Digest() string { return n.digest }

// Equal reports value equality: two factorizations of the same integer
// compare equal regardless of shape.
func (n *N) Equal(o *N) bool { return o != nil && n.digest == o.digest }

// String renders the product as "f1*f2*..." or the plain value when there
// are no factors.
func (n *N) String() string {
	if len(n.factors) == 0 {
		return n.value.Text(10)
	}
	parts := make([]string, len(n.factors))
	for i, f := range n.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

// Canonical returns the decimal rendering of the materialized value, the
// form stored and cached by the store package.
func (n *N) Canonical() string { return n.value.Text(10) }

func unitExponent() (*N, error) {
	return NewLeafN(big.NewInt(1))
}

// valueDigest hashes the decimal rendering of a materialized value under
// its own domain, keeping factored identities disjoint from entity
// identities.
func valueDigest(v *big.Int) string {
	return existence.DigestOf("FactoredInteger", []byte(v.Text(10)), nil)
}
