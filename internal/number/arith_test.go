package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alephlabs/aleph/internal/existence"
)

func mustInteger(t *testing.T, v int64) *Integer {
	t.Helper()
	n, err := NewInteger(v)
	require.NoError(t, err)
	return n
}

func mustNatural(t *testing.T, v int64) *Natural {
	t.Helper()
	n, err := NewNatural(v)
	require.NoError(t, err)
	return n
}

func mustInfinite(t *testing.T, p existence.Polarity) *Infinite {
	t.Helper()
	n, err := NewInfinite(p)
	require.NoError(t, err)
	return n
}

func TestAbsorptionLaw(t *testing.T) {
	inf := mustInfinite(t, existence.Positive)
	two := mustInteger(t, 2)

	ops := map[string]func(a, b Number) (Number, error){
		"add": Add,
		"sub": Sub,
		"mul": Mul,
	}
	for name, op := range ops {
		got, err := op(inf, two)
		require.NoError(t, err, name)
		res, ok := got.(*Infinite)
		require.True(t, ok, name)
		assert.Equal(t, existence.Positive, res.Polarity(), name)
	}
}

func TestAbsorptionPreservesNegativePolarity(t *testing.T) {
	inf := mustInfinite(t, existence.Negative)
	x := mustInteger(t, 1000)

	for _, op := range []func(a, b Number) (Number, error){Add, Sub, Mul} {
		got, err := op(inf, x)
		require.NoError(t, err)
		res := got.(*Infinite)
		assert.Equal(t, existence.Negative, res.Polarity())
	}
}

func TestRightHandInfiniteAbsorbs(t *testing.T) {
	inf := mustInfinite(t, existence.Positive)
	two := mustInteger(t, 2)

	got, err := Add(two, inf)
	require.NoError(t, err)
	assert.True(t, existence.Equal(inf, got))

	got, err = Mul(two, inf)
	require.NoError(t, err)
	assert.True(t, existence.Equal(inf, got))

	// Subtracting the unbounded lands on the opposite pole.
	got, err = Sub(two, inf)
	require.NoError(t, err)
	res := got.(*Infinite)
	assert.Equal(t, existence.Negative, res.Polarity())
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	z, err := NewZero(existence.Positive)
	require.NoError(t, err)
	five := mustInteger(t, 5)

	got, err := Add(z, five)
	require.NoError(t, err)
	assert.True(t, existence.Equal(five, got))

	got, err = Add(five, z)
	require.NoError(t, err)
	assert.True(t, existence.Equal(five, got))

	got, err = Sub(five, z)
	require.NoError(t, err)
	assert.True(t, existence.Equal(five, got))
}

func TestZeroAnnihilatesUnderMul(t *testing.T) {
	z, err := NewZero(existence.Negative)
	require.NoError(t, err)
	five := mustInteger(t, 5)

	got, err := Mul(five, z)
	require.NoError(t, err)
	res, ok := got.(*Zero)
	require.True(t, ok)
	assert.Equal(t, existence.Negative, res.Polarity())
}

func TestIntegerArithmetic(t *testing.T) {
	a := mustInteger(t, 7)
	b := mustInteger(t, 3)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(10), AsInt64(sum))

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(4), AsInt64(diff))

	prod, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(21), AsInt64(prod))
}

func TestNaturalArithmeticStaysNaturalWhenNonNegative(t *testing.T) {
	a := mustNatural(t, 7)
	b := mustNatural(t, 3)

	sum, err := Add(a, b)
	require.NoError(t, err)
	_, ok := sum.(*Natural)
	assert.True(t, ok)

	diff, err := Sub(b, a)
	require.NoError(t, err)
	_, ok = diff.(*Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(-4), AsInt64(diff))
}

func TestMixedLinearArithmeticWidensToReal(t *testing.T) {
	a := mustInteger(t, 1)
	r, err := NewReal(0.5)
	require.NoError(t, err)

	sum, err := Add(a, r)
	require.NoError(t, err)
	res, ok := sum.(*Real)
	require.True(t, ok)
	assert.InDelta(t, 1.5, res.Value(), 0)
}

func TestNegDispatch(t *testing.T) {
	i := mustInteger(t, 5)
	neg, err := Neg(i)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), AsInt64(neg))

	_, err = Neg(mustNatural(t, 5))
	require.Error(t, err)
	assert.True(t, existence.IsDomainViolation(err))

	z, err := NewZero(existence.Positive)
	require.NoError(t, err)
	nz, err := Neg(z)
	require.NoError(t, err)
	assert.Equal(t, existence.Negative, nz.(*Zero).Polarity())

	inf := mustInfinite(t, existence.Positive)
	ninf, err := Neg(inf)
	require.NoError(t, err)
	assert.Equal(t, existence.Negative, ninf.(*Infinite).Polarity())

	c := MustComplex(1, 0)
	nc, err := Neg(c)
	require.NoError(t, err)
	assert.True(t, existence.Equal(MustComplex(-1, 0), nc.(*Complex)))
}

func TestArithmeticRejectsNilOperands(t *testing.T) {
	five := mustInteger(t, 5)

	_, err := Add(nil, five)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))

	_, err = Mul(five, nil)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}

func TestArithmeticRejectsStructuralOperands(t *testing.T) {
	five := mustInteger(t, 5)
	c := MustComplex(1, 2)

	_, err := Add(five, c)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}
