package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alephlabs/aleph/internal/existence"
	"github.com/alephlabs/aleph/internal/number"
)

func TestZeroInfiniteDualityInvertsPolarity(t *testing.T) {
	z, err := number.NewZero(existence.Positive)
	require.NoError(t, err)

	inf, err := ZeroToInfinite(z)
	require.NoError(t, err)
	assert.Equal(t, existence.Negative, inf.Polarity())
}

func TestZeroInfiniteRoundTripIsIdentity(t *testing.T) {
	for _, p := range []existence.Polarity{existence.Positive, existence.Negative} {
		z, err := number.NewZero(p)
		require.NoError(t, err)

		inf, err := ZeroToInfinite(z)
		require.NoError(t, err)
		back, err := InfiniteToZero(inf)
		require.NoError(t, err)

		assert.Equal(t, p, back.Polarity())
		assert.True(t, existence.Equal(z, back))
	}
}

func TestZeroVoidRoundTripPreservesMembers(t *testing.T) {
	leaf, err := existence.NewNature()
	require.NoError(t, err)
	z, err := number.NewZero(existence.Positive, leaf)
	require.NoError(t, err)

	v, err := ZeroToVoid(z)
	require.NoError(t, err)
	assert.True(t, v.Members().Equal(z.Members()))

	back, err := VoidToZero(v)
	require.NoError(t, err)
	assert.True(t, existence.Equal(z, back))
}

func TestEmptyZeroInterchangeableWithEmptyVoid(t *testing.T) {
	z, err := number.NewZero(existence.Positive)
	require.NoError(t, err)
	v, err := existence.NewVoid()
	require.NoError(t, err)

	toVoid, err := ZeroToVoid(z)
	require.NoError(t, err)
	assert.True(t, existence.Equal(v, toVoid))

	toZero, err := VoidToZero(v)
	require.NoError(t, err)
	assert.True(t, existence.Equal(z, toZero))
}

func TestIntegerRealRoundTrip(t *testing.T) {
	i, err := number.NewInteger(-42)
	require.NoError(t, err)

	r, err := IntegerToReal(i)
	require.NoError(t, err)
	assert.InDelta(t, -42.0, r.Value(), 0)

	back, err := RealToInteger(r)
	require.NoError(t, err)
	assert.True(t, existence.Equal(i, back))
}

func TestRealToIntegerTruncatesTowardZero(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want int64
	}{
		{3.9, 3},
		{-3.9, -3},
		{0.0, 0},
	} {
		r, err := number.NewReal(tc.in)
		require.NoError(t, err)
		i, err := RealToInteger(r)
		require.NoError(t, err)
		assert.Equal(t, tc.want, number.AsInt64(i))
	}
}

func TestNaturalIntegerConversions(t *testing.T) {
	n, err := number.NewNatural(7)
	require.NoError(t, err)

	i, err := NaturalToInteger(n)
	require.NoError(t, err)
	assert.Equal(t, int64(7), number.AsInt64(i))

	back, err := IntegerToNatural(i)
	require.NoError(t, err)
	assert.True(t, existence.Equal(n, back))

	neg, err := number.NewInteger(-1)
	require.NoError(t, err)
	_, err = IntegerToNatural(neg)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}

func TestNaturalComplexEmbedsIntoComplex(t *testing.T) {
	re, err := number.NewNatural(3)
	require.NoError(t, err)
	im, err := number.NewNatural(4)
	require.NoError(t, err)
	nc, err := number.NewNaturalComplex(re, im)
	require.NoError(t, err)

	c, err := NaturalComplexToComplex(nc)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, c.Re().Value(), 0)
	assert.InDelta(t, 4.0, c.Im().Value(), 0)
	assert.InDelta(t, nc.Magnitude(), c.Magnitude(), 0)

	back, err := ComplexToNaturalComplex(c)
	require.NoError(t, err)
	assert.True(t, existence.Equal(nc, back))
}

func TestComplexToNaturalComplexRejectsNegativeAxes(t *testing.T) {
	_, err := ComplexToNaturalComplex(number.MustComplex(-1, 0))
	require.Error(t, err)
	assert.True(t, existence.IsDomainViolation(err))

	_, err = ComplexToNaturalComplex(number.MustComplex(1.5, 0))
	require.Error(t, err)
	assert.True(t, existence.IsDomainViolation(err))
}

func TestConversionsPropagateAbsence(t *testing.T) {
	_, err := ZeroToInfinite(nil)
	assert.True(t, existence.IsInvalidArgument(err))
	_, err = InfiniteToZero(nil)
	assert.True(t, existence.IsInvalidArgument(err))
	_, err = ZeroToVoid(nil)
	assert.True(t, existence.IsInvalidArgument(err))
	_, err = VoidToZero(nil)
	assert.True(t, existence.IsInvalidArgument(err))
	_, err = IntegerToReal(nil)
	assert.True(t, existence.IsInvalidArgument(err))
	_, err = NaturalComplexToComplex(nil)
	assert.True(t, existence.IsInvalidArgument(err))
}
