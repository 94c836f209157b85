package extract

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
	"github.com/consensys/groebner/roots"
)

func ratRing(t *testing.T, vars ...string) *poly.Ring[*big.Rat] {
	t.Helper()
	r, err := poly.NewRing[*big.Rat](field.NewQ(), vars)
	require.NoError(t, err)
	return r
}

func term(c int64, exps ...uint32) poly.Term[*big.Rat] {
	return poly.Term[*big.Rat]{Coeff: big.NewRat(c, 1), Mono: poly.Monomial(exps)}
}

func ratTerm(num, den int64, exps ...uint32) poly.Term[*big.Rat] {
	return poly.Term[*big.Rat]{Coeff: big.NewRat(num, den), Mono: poly.Monomial(exps)}
}

func pol(r *poly.Ring[*big.Rat], ts ...poly.Term[*big.Rat]) poly.Polynomial[*big.Rat] {
	return r.FromTerms(ts)
}

func TestSolutionsUniquePoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	basis := []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 1, 0), term(-1, 0, 0)), // x - 1
		pol(r, term(1, 0, 1), term(-1, 0, 0)), // y - 1
	}
	outcome, tuples, err := Solutions(r, roots.NewRational(), basis, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	require.Len(tuples, 1)
	assert.True(tuples[0].Exact)
	assert.Zero(tuples[0].Values[0].Cmp(big.NewRat(1, 1)))
	assert.Zero(tuples[0].Values[1].Cmp(big.NewRat(1, 1)))
}

func TestSolutionsCircleLine(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	// lex basis of the circle/line intersection: x = y, y^2 = 1/2
	basis := []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 1, 0), term(-1, 0, 1)),
		pol(r, term(1, 0, 2), ratTerm(-1, 2, 0, 0)),
	}
	outcome, tuples, err := Solutions(r, roots.NewRational(), basis, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	require.Len(tuples, 2)

	want := 0.7071067811865476
	for i, sign := range []float64{-1, 1} {
		assert.False(tuples[i].Exact)
		x, _ := tuples[i].Values[0].Float64()
		y, _ := tuples[i].Values[1].Float64()
		assert.InDelta(sign*want, y, 1e-9)
		assert.InDelta(y, x, 1e-9)
	}
}

func TestSolutionsInconsistent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	outcome, tuples, err := Solutions(r, roots.NewRational(), []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 0, 0)),
	}, poly.Lex)
	require.NoError(err)
	assert.Equal(Inconsistent, outcome)
	assert.Empty(tuples)
}

func TestSolutionsPositiveDimensional(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	// a line: y is never pinned
	outcome, _, err := Solutions(r, roots.NewRational(), []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 1, 0), term(-1, 0, 1)),
	}, poly.Lex)
	require.NoError(err)
	assert.Equal(PositiveDimensional, outcome)

	// the zero ideal
	outcome, _, err = Solutions(r, roots.NewRational(), nil, poly.Lex)
	require.NoError(err)
	assert.Equal(PositiveDimensional, outcome)
}

func TestSolutionsBranchPruning(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	// y^2 - 1 branches into y = -1 and y = 1, but only y = 1 satisfies
	// both x - y and x + y - 2
	basis := []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 0, 2), term(-1, 0, 0)),
		pol(r, term(1, 1, 0), term(-1, 0, 1)),
		pol(r, term(1, 1, 0), term(1, 0, 1), term(-2, 0, 0)),
	}
	outcome, tuples, err := Solutions(r, roots.NewRational(), basis, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	require.Len(tuples, 1)
	assert.True(tuples[0].Exact)
	assert.Zero(tuples[0].Values[0].Cmp(big.NewRat(1, 1)))
	assert.Zero(tuples[0].Values[1].Cmp(big.NewRat(1, 1)))
}

func TestSolutionsNoRealPoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x")

	// x^2 + 1 has no real root; the ideal is still zero dimensional
	outcome, tuples, err := Solutions(r, roots.NewRational(), []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 2), term(1, 0)),
	}, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	assert.Empty(tuples)
}

func TestSolutionsCubic(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x")

	// (x-1)(x-2)(x-3)
	outcome, tuples, err := Solutions(r, roots.NewRational(), []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 3), term(-6, 2), term(11, 1), term(-6, 0)),
	}, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	require.Len(tuples, 3)
	for i, want := range []int64{1, 2, 3} {
		assert.True(tuples[i].Exact)
		assert.Zero(tuples[i].Values[0].Cmp(big.NewRat(want, 1)))
	}
}

func TestSolutionsPrimeField(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	f := field.NewBabyBear()
	r, err := poly.NewRing[babybear.Element](f, []string{"x"})
	require.NoError(err)

	linear := r.Add(r.Variable(0), r.Constant(f.FromInt64(-5)))
	outcome, tuples, err := Solutions(r, roots.NewBabyBear(), []poly.Polynomial[babybear.Element]{linear}, poly.Lex)
	require.NoError(err)
	assert.Equal(ZeroDimensional, outcome)
	require.Len(tuples, 1)
	assert.True(tuples[0].Exact)
	assert.True(f.Equal(tuples[0].Values[0], f.FromInt64(5)))

	// cubic root isolation is out of scope for prime fields
	cubic := r.Add(r.Pow(r.Variable(0), 3), r.Constant(f.FromInt64(-2)))
	_, _, err = Solutions(r, roots.NewBabyBear(), []poly.Polynomial[babybear.Element]{cubic}, poly.Lex)
	assert.ErrorIs(err, roots.ErrUnsupported)
}

func TestOutcomeString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("zero-dimensional", ZeroDimensional.String())
	assert.Equal("inconsistent", Inconsistent.String())
	assert.Equal("positive-dimensional", PositiveDimensional.String())
}
