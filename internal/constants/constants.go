// Package constants holds the process-wide singleton values of the
// universe. Everything here initializes exactly once, in an explicit
// dependency order, before any concurrent access, and is immutable
// thereafter.
package constants

import (
	"sync"

	"github.com/alephlabs/aleph/internal/existence"
	"github.com/alephlabs/aleph/internal/number"
	"github.com/alephlabs/aleph/internal/rotation"
)

// Registry is the set of well-known singletons.
type Registry struct {
	// One is the real unit.
	One *number.Real
	// IntegerOne and NaturalOne are the integral units.
	IntegerOne *number.Integer
	NaturalOne *number.Natural
	// Zero is the positive-polarity zero; TheInfinite its reciprocal dual
	// context, the positive-polarity unbounded value.
	Zero        *number.Zero
	TheInfinite *number.Infinite
	// Pi and E are obtained by convergent series at initialization.
	Pi *number.Irrational
	E  *number.Irrational
	// Axis holds the rotation units I0..I4.
	Axis *rotation.Axis
}

var (
	once sync.Once
	reg  *Registry
)

// Get returns the singleton registry, initializing it on first use.
//
// The initialization order is deliberate and must not be reshuffled:
// the real unit first, then the integral units built from it, then the
// polar kinds, then the series-defined irrationals, and the rotation axis
// last since it consumes the unit and the duality. Keeping the order in
// one function removes any dependence on package-level init sequencing.
func Get() *Registry {
	once.Do(func() {
		reg = build()
	})
	return reg
}

func build() *Registry {
	r := &Registry{}

	r.One = mustReal(1)
	r.IntegerOne = mustInteger(1)
	r.NaturalOne = mustNatural(1)

	r.Zero = mustZero(existence.Positive)
	r.TheInfinite = mustInfinite(existence.Positive)

	r.Pi = mustIrrational("pi", seriesPi(piTerms))
	r.E = mustIrrational("e", seriesE(eTerms))

	axis, err := rotation.NewAxis()
	if err != nil {
		panic(err)
	}
	r.Axis = axis

	return r
}

func mustReal(v float64) *number.Real {
	r, err := number.NewReal(v)
	if err != nil {
		panic(err)
	}
	return r
}

func mustInteger(v int64) *number.Integer {
	n, err := number.NewInteger(v)
	if err != nil {
		panic(err)
	}
	return n
}

func mustNatural(v int64) *number.Natural {
	n, err := number.NewNatural(v)
	if err != nil {
		panic(err)
	}
	return n
}

func mustZero(p existence.Polarity) *number.Zero {
	z, err := number.NewZero(p)
	if err != nil {
		panic(err)
	}
	return z
}

func mustInfinite(p existence.Polarity) *number.Infinite {
	i, err := number.NewInfinite(p)
	if err != nil {
		panic(err)
	}
	return i
}

func mustIrrational(name string, v float64) *number.Irrational {
	r, err := number.NewIrrational(name, v)
	if err != nil {
		panic(err)
	}
	return r
}
