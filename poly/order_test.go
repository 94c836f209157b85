package poly

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monomials over x > y > z
func m(x, y, z uint32) Monomial { return Monomial{x, y, z} }

func TestLexCompare(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		a, b Monomial
		want int
	}{
		{"x>y", m(1, 0, 0), m(0, 1, 0), 1},
		{"y>z", m(0, 1, 0), m(0, 0, 1), 1},
		{"x beats any power of z", m(1, 0, 0), m(0, 0, 5), 1},
		{"x^2 > x*y^3", m(2, 0, 0), m(1, 3, 0), 1},
		{"x*y > x*z", m(1, 1, 0), m(1, 0, 1), 1},
		{"x > 1", m(1, 0, 0), m(0, 0, 0), 1},
		{"equal", m(1, 2, 3), m(1, 2, 3), 0},
	}
	for _, tc := range cases {
		assert.Equal(tc.want, Lex.Compare(tc.a, tc.b), tc.name)
		assert.Equal(-tc.want, Lex.Compare(tc.b, tc.a), "%s reversed", tc.name)
	}
}

func TestGrevLexCompare(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		a, b Monomial
		want int
	}{
		// total degree decides first
		{"z^3 > x^2", m(0, 0, 3), m(2, 0, 0), 1},
		{"x > 1", m(1, 0, 0), m(0, 0, 0), 1},
		// degree ties break on the last differing exponent, smaller wins
		{"x^2*y > x*y^2", m(2, 1, 0), m(1, 2, 0), 1},
		{"x > z", m(1, 0, 0), m(0, 0, 1), 1},
		{"x*y > x*z", m(1, 1, 0), m(1, 0, 1), 1},
		{"y^2 > x*z", m(0, 2, 0), m(1, 0, 1), 1},
		{"x^2 > x*y", m(2, 0, 0), m(1, 1, 0), 1},
		{"y*z > z^2", m(0, 1, 1), m(0, 0, 2), 1},
		{"x*z > y*z", m(1, 0, 1), m(0, 1, 1), 1},
		{"equal", m(1, 2, 3), m(1, 2, 3), 0},
	}
	for _, tc := range cases {
		assert.Equal(tc.want, GrevLex.Compare(tc.a, tc.b), tc.name)
		assert.Equal(-tc.want, GrevLex.Compare(tc.b, tc.a), "%s reversed", tc.name)
	}
}

// textbook degree two chain over x > y > z
func TestGrevLexDegreeTwoChain(t *testing.T) {
	require := require.New(t)

	want := []Monomial{
		m(2, 0, 0), // x^2
		m(1, 1, 0), // x*y
		m(0, 2, 0), // y^2
		m(1, 0, 1), // x*z
		m(0, 1, 1), // y*z
		m(0, 0, 2), // z^2
	}
	got := []Monomial{
		m(0, 1, 1), m(2, 0, 0), m(0, 0, 2), m(1, 0, 1), m(0, 2, 0), m(1, 1, 0),
	}
	sort.Slice(got, func(i, j int) bool { return GrevLex.Compare(got[i], got[j]) > 0 })

	require.Equal(len(want), len(got))
	for i := range want {
		require.True(want[i].Equal(got[i]), "position %d: want %v got %v", i, want[i], got[i])
	}
}

func TestLexDegreeTwoChain(t *testing.T) {
	require := require.New(t)

	want := []Monomial{
		m(2, 0, 0), // x^2
		m(1, 1, 0), // x*y
		m(1, 0, 1), // x*z
		m(1, 0, 0), // x
		m(0, 2, 0), // y^2
		m(0, 1, 1), // y*z
		m(0, 1, 0), // y
		m(0, 0, 2), // z^2
		m(0, 0, 1), // z
		m(0, 0, 0), // 1
	}
	got := make([]Monomial, len(want))
	copy(got, want)
	// reverse, then sort back
	for i, j := 0, len(got)-1; i < j; i, j = i+1, j-1 {
		got[i], got[j] = got[j], got[i]
	}
	sort.Slice(got, func(i, j int) bool { return Lex.Compare(got[i], got[j]) > 0 })

	for i := range want {
		require.True(want[i].Equal(got[i]), "position %d: want %v got %v", i, want[i], got[i])
	}
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "lex", Lex.String())
	assert.Equal(t, "grevlex", GrevLex.String())
}
