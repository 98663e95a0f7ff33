package number

import (
	"github.com/alephlabs/aleph/internal/existence"
)

// Number is the sealed interface implemented by every number kind.
// Only Zero, Infinite, Integer, Natural, Real, Rational, Irrational,
// Complex and NaturalComplex implement it.
type Number interface {
	existence.Existence

	// Float returns the semantic scalar view of the number: the value for
	// finite kinds, a signed zero or infinity for the unbounded kinds, and
	// the magnitude for structural kinds.
	Float() float64

	number() // sealed
}

// Linear is the capability shared by the ordered, signed, zero-testable
// kinds. Structural kinds (Complex, NaturalComplex) do not implement it.
type Linear interface {
	Number

	// Sign returns -1, 0 or +1.
	Sign() int

	// IsZero reports whether the value is a zero.
	IsZero() bool
}

// base carries the structural machinery shared by every kind: the kind
// tag, the member set, and the precomputed content-addressed digest.
type base struct {
	kind    string
	members existence.Set
	digest  string
}

func newBase(kind string, payload []byte, members existence.Set) base {
	return base{
		kind:    kind,
		members: members,
		digest:  existence.DigestOf(kind, payload, members.Slice()),
	}
}

func (b *base) Kind() string             { return b.kind }
func (b *base) Members() existence.Set   { return b.members }
func (b *base) Digest() string           { return b.digest }
func (b *base) String() string           { return existence.Render(b.kind, b.members) }
