package existence

// Polarity is the sign bit carried by unbounded kinds (Zero, Infinite).
type Polarity int

const (
	// Positive is the default polarity.
	Positive Polarity = iota
	// Negative is the inverted polarity.
	Negative
)

// Invert returns the opposite polarity. Invert composed twice is the
// identity; the zero/infinity duality relies on that.
func (p Polarity) Invert() Polarity {
	if p == Positive {
		return Negative
	}
	return Positive
}

// Sign returns +1 for Positive, -1 for Negative.
func (p Polarity) Sign() int {
	if p == Positive {
		return 1
	}
	return -1
}

// String implements fmt.Stringer.
func (p Polarity) String() string {
	if p == Positive {
		return "positive"
	}
	return "negative"
}

// payload returns the single byte folded into digests of polar kinds.
func (p Polarity) payload() []byte {
	if p == Positive {
		return []byte{'+'}
	}
	return []byte{'-'}
}

// PolarityPayload exposes the digest payload byte for polar kinds defined
// in other packages.
func PolarityPayload(p Polarity) []byte { return p.payload() }
