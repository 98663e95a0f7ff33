package number

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alephlabs/aleph/internal/existence"
)

func TestNaturalRejectsNegative(t *testing.T) {
	_, err := NewNatural(-1)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}

func TestNaturalZeroSucceeds(t *testing.T) {
	n, err := NewNatural(0)
	require.NoError(t, err)
	assert.True(t, n.IsZero())
	assert.Equal(t, 0, n.Sign())
}

func TestIntegerStructuralEquality(t *testing.T) {
	a, err := NewInteger(42)
	require.NoError(t, err)
	b, err := NewIntegerFromBig(big.NewInt(42))
	require.NoError(t, err)
	c, err := NewInteger(7)
	require.NoError(t, err)

	assert.True(t, existence.Equal(a, b))
	assert.False(t, existence.Equal(a, c))
}

func TestIntegerAndNaturalAreDistinctKinds(t *testing.T) {
	i, err := NewInteger(2)
	require.NoError(t, err)
	n, err := NewNatural(2)
	require.NoError(t, err)

	assert.False(t, existence.Equal(i, n))
}

func TestIntegerValueIsCopied(t *testing.T) {
	src := big.NewInt(10)
	n, err := NewIntegerFromBig(src)
	require.NoError(t, err)

	src.SetInt64(99)
	assert.Equal(t, int64(10), n.Value().Int64())

	n.Value().SetInt64(5)
	assert.Equal(t, int64(10), n.Value().Int64())
}

func TestZeroCarriesPolarity(t *testing.T) {
	pos, err := NewZero(existence.Positive)
	require.NoError(t, err)
	neg, err := NewZero(existence.Negative)
	require.NoError(t, err)

	assert.True(t, pos.IsZero())
	assert.True(t, neg.IsZero())
	assert.Equal(t, 0, pos.Sign())
	assert.False(t, existence.Equal(pos, neg))
	assert.True(t, math.Signbit(neg.Float()))
	assert.False(t, math.Signbit(pos.Float()))
}

func TestInfiniteSignFollowsPolarity(t *testing.T) {
	pos, err := NewInfinite(existence.Positive)
	require.NoError(t, err)
	neg, err := NewInfinite(existence.Negative)
	require.NoError(t, err)

	assert.Equal(t, 1, pos.Sign())
	assert.Equal(t, -1, neg.Sign())
	assert.True(t, math.IsInf(pos.Float(), 1))
	assert.True(t, math.IsInf(neg.Float(), -1))
}

func TestRationalValue(t *testing.T) {
	num, err := NewReal(3)
	require.NoError(t, err)
	den, err := NewReal(4)
	require.NoError(t, err)

	r, err := NewRational(num, den)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, r.Float(), 0)
	assert.Equal(t, 1, r.Sign())
}

func TestRationalRejectsZeroDenominator(t *testing.T) {
	num, err := NewReal(1)
	require.NoError(t, err)
	den, err := NewReal(0)
	require.NoError(t, err)

	_, err = NewRational(num, den)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}

func TestIrrationalIdentityIncludesName(t *testing.T) {
	a, err := NewIrrational("pi", 3.0)
	require.NoError(t, err)
	b, err := NewIrrational("e", 3.0)
	require.NoError(t, err)

	assert.False(t, existence.Equal(a, b))
}

func TestComplexMagnitudeAndPhase(t *testing.T) {
	c := MustComplex(3, 4)
	assert.InDelta(t, 5.0, c.Magnitude(), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), c.Phase(), 1e-12)
	assert.InDelta(t, 5.0, c.Float(), 1e-12)
}

func TestComplexMul(t *testing.T) {
	// (1+2i)(3+4i) = -5 + 10i
	a := MustComplex(1, 2)
	b := MustComplex(3, 4)

	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, p.Re().Value(), 0)
	assert.InDelta(t, 10.0, p.Im().Value(), 0)
}

func TestComplexOrderedPair(t *testing.T) {
	assert.False(t, existence.Equal(MustComplex(1, 2), MustComplex(2, 1)))
}

func TestNaturalComplexRejectsNilParts(t *testing.T) {
	re, err := NewNatural(1)
	require.NoError(t, err)

	_, err = NewNaturalComplex(re, nil)
	require.Error(t, err)
	assert.True(t, existence.IsInvalidArgument(err))
}

func TestNumbersCarryMemberSets(t *testing.T) {
	leaf, err := existence.NewNature()
	require.NoError(t, err)

	a, err := NewInteger(1, leaf)
	require.NoError(t, err)
	b, err := NewInteger(1)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Members().Len())
	assert.False(t, existence.Equal(a, b))
}

func TestRenderEmptyNumberUsesKindName(t *testing.T) {
	z, err := NewZero(existence.Positive)
	require.NoError(t, err)
	inf, err := NewInfinite(existence.Positive)
	require.NoError(t, err)

	assert.Equal(t, "Zero", z.String())
	assert.Equal(t, "Infinite", inf.String())
}
