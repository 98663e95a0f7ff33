package number

import (
	"math"

	"github.com/alephlabs/aleph/internal/existence"
)

// Complex is an ordered pair of Reals with derived magnitude and phase.
// It is a structural kind: it carries no linear sign or zero test.
type Complex struct {
	base
	re *Real
	im *Real
}

// NewComplex constructs a Complex from its real and imaginary parts.
func NewComplex(re, im *Real, members ...existence.Existence) (*Complex, error) {
	if re == nil || im == nil {
		return nil, existence.NewInvalidArgument("Complex", "both parts must not be nil")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	payload := append([]byte(re.Digest()+":"), []byte(im.Digest())...)
	return &Complex{
		base: newBase("Complex", payload, set),
		re:   re,
		im:   im,
	}, nil
}

// MustComplex is like NewComplex from raw parts but panics on error. Use
// only in tests or when inputs are known to be valid.
func MustComplex(re, im float64) *Complex {
	reR, err := NewReal(re)
	if err != nil {
		panic(err)
	}
	imR, err := NewReal(im)
	if err != nil {
		panic(err)
	}
	c, err := NewComplex(reR, imR)
	if err != nil {
		panic(err)
	}
	return c
}

func (*Complex) number() {}

// Re returns the real part.
func (c *Complex) Re() *Real { return c.re }

// Im returns the imaginary part.
func (c *Complex) Im() *Real { return c.im }

// Magnitude returns sqrt(re^2 + im^2).
func (c *Complex) Magnitude() float64 { return math.Hypot(c.re.Value(), c.im.Value()) }

// Phase returns atan2(im, re).
func (c *Complex) Phase() float64 { return math.Atan2(c.im.Value(), c.re.Value()) }

// Float returns the magnitude.
func (c *Complex) Float() float64 { return c.Magnitude() }

// Add returns the componentwise sum.
func (c *Complex) Add(o *Complex) (*Complex, error) {
	if o == nil {
		return nil, existence.NewInvalidArgument("Complex", "operand must not be nil")
	}
	re, err := NewReal(c.re.Value() + o.re.Value())
	if err != nil {
		return nil, err
	}
	im, err := NewReal(c.im.Value() + o.im.Value())
	if err != nil {
		return nil, err
	}
	return NewComplex(re, im)
}

// Mul returns the complex product.
func (c *Complex) Mul(o *Complex) (*Complex, error) {
	if o == nil {
		return nil, existence.NewInvalidArgument("Complex", "operand must not be nil")
	}
	a, b := c.re.Value(), c.im.Value()
	x, y := o.re.Value(), o.im.Value()
	re, err := NewReal(a*x - b*y)
	if err != nil {
		return nil, err
	}
	im, err := NewReal(a*y + b*x)
	if err != nil {
		return nil, err
	}
	return NewComplex(re, im)
}

// Neg returns the additive inverse of both parts.
func (c *Complex) Neg() (*Complex, error) {
	re, err := NewReal(-c.re.Value())
	if err != nil {
		return nil, err
	}
	im, err := NewReal(-c.im.Value())
	if err != nil {
		return nil, err
	}
	return NewComplex(re, im)
}

// NaturalComplex is an ordered pair of Naturals. It embeds into Complex
// via natural-to-real promotion; see the convert package.
type NaturalComplex struct {
	base
	re *Natural
	im *Natural
}

// NewNaturalComplex constructs a NaturalComplex from its parts.
func NewNaturalComplex(re, im *Natural, members ...existence.Existence) (*NaturalComplex, error) {
	if re == nil || im == nil {
		return nil, existence.NewInvalidArgument("NaturalComplex", "both parts must not be nil")
	}
	set, err := existence.NewSet(members...)
	if err != nil {
		return nil, err
	}
	payload := append([]byte(re.Digest()+":"), []byte(im.Digest())...)
	return &NaturalComplex{
		base: newBase("NaturalComplex", payload, set),
		re:   re,
		im:   im,
	}, nil
}

func (*NaturalComplex) number() {}

// Re returns the real-axis part.
func (c *NaturalComplex) Re() *Natural { return c.re }

// Im returns the imaginary-axis part.
func (c *NaturalComplex) Im() *Natural { return c.im }

// Magnitude returns sqrt(re^2 + im^2).
func (c *NaturalComplex) Magnitude() float64 { return math.Hypot(c.re.Float(), c.im.Float()) }

// Phase returns atan2(im, re).
func (c *NaturalComplex) Phase() float64 { return math.Atan2(c.im.Float(), c.re.Float()) }

// Float returns the magnitude.
func (c *NaturalComplex) Float() float64 { return c.Magnitude() }
