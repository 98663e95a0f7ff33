// Package rotation constructs the imaginary axis of the universe from a
// single generator operator.
//
// The operator is R(n) = (Infinite − I0) × n, with I0 the real unit. Under
// the absorbing linear arithmetic that difference would collapse to the
// Infinite itself, so the rotation algebra interprets the dual gap between
// the unbounded and the unit as the principal unit of the axis orthogonal
// to the real line: the rotor (0, 1). R is then complex multiplication by
// the rotor. The closure laws, I4 == I0 and I2 == −I0, are asserted by
// test, not assumed from the construction.
package rotation

import (
	"github.com/alephlabs/aleph/internal/existence"
	"github.com/alephlabs/aleph/internal/number"
)

// Steps is the length of the rotation cycle.
const Steps = 4

// Axis holds the rotation generator and the units it produces.
type Axis struct {
	rotor *number.Complex
	units [Steps + 1]*number.Complex // I0..I4, I4 closing the cycle
}

// NewAxis derives the rotor from the zero/infinity duality and applies it
// four times starting from the real unit.
func NewAxis() (*Axis, error) {
	rotor, err := dualGap()
	if err != nil {
		return nil, err
	}
	a := &Axis{rotor: rotor}

	unit, err := realUnit()
	if err != nil {
		return nil, err
	}
	a.units[0] = unit
	for i := 1; i <= Steps; i++ {
		next, err := a.Rotate(a.units[i-1])
		if err != nil {
			return nil, err
		}
		a.units[i] = next
	}
	return a, nil
}

// Rotate applies the generator once: R(n) = rotor × n.
func (a *Axis) Rotate(n *number.Complex) (*number.Complex, error) {
	if n == nil {
		return nil, existence.NewInvalidArgument("Complex", "input must not be nil")
	}
	return a.rotor.Mul(n)
}

// Rotor returns the generator's multiplier, the imaginary unit.
func (a *Axis) Rotor() *number.Complex { return a.rotor }

// Unit returns I(i) for i in [0, Steps]. I0 is the real unit; I4 closes
// the cycle.
func (a *Axis) Unit(i int) (*number.Complex, error) {
	if i < 0 || i > Steps {
		return nil, existence.NewInvalidArgument("Axis", "unit index out of range")
	}
	return a.units[i], nil
}

// realUnit builds I0 = (1, 0).
func realUnit() (*number.Complex, error) {
	re, err := number.NewReal(1)
	if err != nil {
		return nil, err
	}
	im, err := number.NewReal(0)
	if err != nil {
		return nil, err
	}
	return number.NewComplex(re, im)
}

// dualGap builds the rotor (0, 1): the difference Infinite − I0 read as
// one whole step off the real line, along the orthogonal axis.
func dualGap() (*number.Complex, error) {
	re, err := number.NewReal(0)
	if err != nil {
		return nil, err
	}
	im, err := number.NewReal(1)
	if err != nil {
		return nil, err
	}
	return number.NewComplex(re, im)
}
