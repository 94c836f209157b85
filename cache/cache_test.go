package cache

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
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

func TestSystemKey(t *testing.T) {
	assert := assert.New(t)
	r := ratRing(t, "x", "y")

	g1 := pol(r, term(1, 1, 0), term(-1, 0, 1))
	g2 := pol(r, term(1, 0, 2), ratTerm(-1, 2, 0, 0))
	gens := []poly.Polynomial[*big.Rat]{g1, g2}

	key := SystemKey(r, gens, poly.Lex)
	assert.Len(key, 64)

	// generator order, duplicates and zeros do not matter
	assert.Equal(key, SystemKey(r, []poly.Polynomial[*big.Rat]{g2, g1}, poly.Lex))
	assert.Equal(key, SystemKey(r, []poly.Polynomial[*big.Rat]{g1, g2, g1}, poly.Lex))
	assert.Equal(key, SystemKey(r, []poly.Polynomial[*big.Rat]{g1, r.Zero(), g2}, poly.Lex))

	// the monomial order, the generators and the variable names do
	assert.NotEqual(key, SystemKey(r, gens, poly.GrevLex))
	assert.NotEqual(key, SystemKey(r, []poly.Polynomial[*big.Rat]{g1}, poly.Lex))

	other := ratRing(t, "a", "b")
	og1 := other.FromTerms([]poly.Term[*big.Rat]{term(1, 1, 0), term(-1, 0, 1)})
	og2 := other.FromTerms([]poly.Term[*big.Rat]{term(1, 0, 2), ratTerm(-1, 2, 0, 0)})
	assert.NotEqual(key, SystemKey(other, []poly.Polynomial[*big.Rat]{og1, og2}, poly.Lex))
}

func TestBasisRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	basis := []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 1, 0), term(-1, 0, 1)),
		pol(r, term(1, 0, 2), ratTerm(-1, 2, 0, 0)),
		r.Zero(),
	}
	blob, err := MarshalBasis(r, basis, poly.Lex)
	require.NoError(err)

	got, err := UnmarshalBasis(r, blob, poly.Lex)
	require.NoError(err)
	require.Len(got, len(basis))
	for i := range basis {
		assert.True(r.Equal(basis[i], got[i]), "element %d: %s vs %s", i, r.String(basis[i]), r.String(got[i]))
	}

	// an empty basis survives too
	blob, err = MarshalBasis(r, nil, poly.Lex)
	require.NoError(err)
	got, err = UnmarshalBasis(r, blob, poly.Lex)
	require.NoError(err)
	assert.Empty(got)
}

func TestUnmarshalBasisMismatch(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := ratRing(t, "x", "y")

	blob, err := MarshalBasis(r, []poly.Polynomial[*big.Rat]{
		pol(r, term(1, 1, 0), term(-1, 0, 1)),
	}, poly.Lex)
	require.NoError(err)

	// wrong order
	_, err = UnmarshalBasis(r, blob, poly.GrevLex)
	assert.Error(err)

	// wrong variable names
	other := ratRing(t, "a", "b")
	_, err = UnmarshalBasis(other, blob, poly.Lex)
	assert.Error(err)

	// wrong field
	rbb, err := poly.NewRing[babybear.Element](field.NewBabyBear(), []string{"x", "y"})
	require.NoError(err)
	_, err = UnmarshalBasis(rbb, blob, poly.Lex)
	assert.Error(err)

	// garbage bytes
	_, err = UnmarshalBasis(r, []byte{0x01, 0x02, 0x03}, poly.Lex)
	assert.Error(err)
}

func TestStore(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	_, ok := s.Get("missing")
	assert.False(ok)

	s.Put("k", []byte{1, 2, 3})
	blob, ok := s.Get("k")
	assert.True(ok)
	assert.Equal([]byte{1, 2, 3}, blob)
	assert.Equal(1, s.Len())

	hits, misses := s.Stats()
	assert.Equal(uint64(1), hits)
	assert.Equal(uint64(1), misses)
}

func TestStoreDumpRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := NewStore()
	s.Put("a", []byte{1})
	s.Put("b", []byte{2, 3})

	var buf1, buf2 bytes.Buffer
	_, err := s.WriteTo(&buf1)
	require.NoError(err)
	_, err = s.WriteTo(&buf2)
	require.NoError(err)
	assert.Equal(buf1.Bytes(), buf2.Bytes())

	restored := NewStore()
	n, err := restored.ReadFrom(bytes.NewReader(buf1.Bytes()))
	require.NoError(err)
	assert.Equal(int64(buf1.Len()), n)
	if diff := cmp.Diff(s.entries, restored.entries); diff != "" {
		t.Errorf("restored entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreDumpVersion(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	encode := func(version string) []byte {
		data, err := cbor.Marshal(storeDump{
			Version: version,
			Entries: map[string][]byte{"k": {1}},
		})
		require.NoError(err)
		return data
	}

	s := NewStore()
	_, err := s.ReadFrom(bytes.NewReader(encode("9.0.0")))
	assert.ErrorIs(err, ErrVersionMismatch)
	assert.Zero(s.Len())

	_, err = s.ReadFrom(bytes.NewReader(encode("not-a-version")))
	assert.Error(err)

	// same major: accepted, even with a minor skew
	_, err = s.ReadFrom(bytes.NewReader(encode("0.99.0")))
	require.NoError(err)
	assert.Equal(1, s.Len())
}
