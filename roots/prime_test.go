package roots

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/groebner/poly"
)

func bbElems(vs ...int64) []babybear.Element {
	out := make([]babybear.Element, len(vs))
	for i, v := range vs {
		out[i].SetInt64(v)
	}
	return out
}

func TestBabyBearDegenerate(t *testing.T) {
	assert := assert.New(t)
	f := NewBabyBear()

	_, err := f.FindRoots(nil)
	assert.ErrorIs(err, poly.ErrEmptyPolynomial)

	_, err = f.FindRoots(bbElems(0, 0))
	assert.ErrorIs(err, poly.ErrEmptyPolynomial)

	rs, err := f.FindRoots(bbElems(7))
	assert.NoError(err)
	assert.Empty(rs)
}

func TestBabyBearLinear(t *testing.T) {
	require := require.New(t)

	// 3x - 6 = 0
	rs, err := NewBabyBear().FindRoots(bbElems(-6, 3))
	require.NoError(err)
	require.Len(rs, 1)

	var want babybear.Element
	want.SetUint64(2)
	require.True(rs[0].Value.Equal(&want))
	require.True(rs[0].Exact)
	require.Equal(1, rs[0].Multiplicity)
}

func TestBabyBearQuadratic(t *testing.T) {
	require := require.New(t)

	// x^2 - 1 = (x-1)(x+1)
	rs, err := NewBabyBear().FindRoots(bbElems(-1, 0, 1))
	require.NoError(err)
	require.Len(rs, 2)

	var one, minusOne babybear.Element
	one.SetOne()
	minusOne.Neg(&one)
	require.True(rs[0].Value.Equal(&one))
	require.True(rs[1].Value.Equal(&minusOne))

	// (x-3)^2 = x^2 - 6x + 9
	rs, err = NewBabyBear().FindRoots(bbElems(9, -6, 1))
	require.NoError(err)
	require.Len(rs, 1)
	var three babybear.Element
	three.SetUint64(3)
	require.True(rs[0].Value.Equal(&three))
	require.Equal(2, rs[0].Multiplicity)
}

func TestBabyBearQuadraticNonResidue(t *testing.T) {
	require := require.New(t)

	// pick a non residue, x^2 - nr then has no roots
	var nr babybear.Element
	found := false
	for i := uint64(2); i < 100; i++ {
		nr.SetUint64(i)
		if nr.Legendre() == -1 {
			found = true
			break
		}
	}
	require.True(found)

	var c0 babybear.Element
	c0.Neg(&nr)
	rs, err := NewBabyBear().FindRoots([]babybear.Element{c0, {}, oneBB()})
	require.NoError(err)
	require.Empty(rs)
}

func oneBB() babybear.Element {
	var e babybear.Element
	e.SetOne()
	return e
}

func TestBabyBearZeroRootAndCubic(t *testing.T) {
	require := require.New(t)

	// x^2 = 0
	rs, err := NewBabyBear().FindRoots(bbElems(0, 0, 1))
	require.NoError(err)
	require.Len(rs, 1)
	require.True(rs[0].Value.IsZero())
	require.Equal(2, rs[0].Multiplicity)

	// degree three is unsupported over prime fields
	_, err = NewBabyBear().FindRoots(bbElems(1, 0, 0, 1))
	require.ErrorIs(err, ErrUnsupported)
}

func TestBN254Roots(t *testing.T) {
	require := require.New(t)

	elems := func(vs ...int64) []fr.Element {
		out := make([]fr.Element, len(vs))
		for i, v := range vs {
			out[i].SetInt64(v)
		}
		return out
	}

	// 2x - 10 = 0
	rs, err := NewBN254().FindRoots(elems(-10, 2))
	require.NoError(err)
	require.Len(rs, 1)
	var five fr.Element
	five.SetUint64(5)
	require.True(rs[0].Value.Equal(&five))

	// x^2 - 9
	rs, err = NewBN254().FindRoots(elems(-9, 0, 1))
	require.NoError(err)
	require.Len(rs, 2)
	var three, minusThree fr.Element
	three.SetUint64(3)
	minusThree.Neg(&three)
	require.True(rs[0].Value.Equal(&three) || rs[0].Value.Equal(&minusThree))
	require.True(rs[1].Value.Equal(&three) || rs[1].Value.Equal(&minusThree))
	require.False(rs[0].Value.Equal(&rs[1].Value))

	_, err = NewBN254().FindRoots(elems(1, 2, 3, 4))
	require.ErrorIs(err, ErrUnsupported)
}

func TestKoalaBearRoots(t *testing.T) {
	require := require.New(t)

	elems := func(vs ...int64) []koalabear.Element {
		out := make([]koalabear.Element, len(vs))
		for i, v := range vs {
			out[i].SetInt64(v)
		}
		return out
	}

	// 4x + 8 = 0
	rs, err := NewKoalaBear().FindRoots(elems(8, 4))
	require.NoError(err)
	require.Len(rs, 1)
	var minusTwo koalabear.Element
	minusTwo.SetInt64(-2)
	require.True(rs[0].Value.Equal(&minusTwo))

	// x^2 - 4
	rs, err = NewKoalaBear().FindRoots(elems(-4, 0, 1))
	require.NoError(err)
	require.Len(rs, 2)
}
