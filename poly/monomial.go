// Package poly implements sparse multivariate polynomials over a generic
// coefficient field, together with the monomial orders used by the Groebner
// basis engine.
//
// A Ring fixes the variable list and the coefficient field; polynomials are
// kept in a canonical form (terms strictly decreasing under the structural
// monomial comparison, no zero coefficients) so equality is structural and
// results are reproducible.
package poly

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/groebner/debug"
)

// Monomial is an exponent vector over the ring variable list; position 0 is
// the highest priority variable. A nil or all zero vector is the unit
// monomial.
type Monomial []uint32

// TotalDegree returns the sum of the exponents.
func (m Monomial) TotalDegree() uint64 {
	var d uint64
	for _, e := range m {
		d += uint64(e)
	}
	return d
}

// IsUnit reports whether all exponents are zero.
func (m Monomial) IsUnit() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of m.
func (m Monomial) Clone() Monomial {
	if m == nil {
		return nil
	}
	c := make(Monomial, len(m))
	copy(c, m)
	return c
}

// Equal reports whether m and other carry the same exponents.
func (m Monomial) Equal(other Monomial) bool {
	return m.Cmp(other) == 0
}

// Cmp is the structural comparison used to keep term slices canonical. It
// compares exponents position by position from the highest priority
// variable; a missing position counts as zero. This coincides with the Lex
// monomial order.
func (m Monomial) Cmp(other Monomial) int {
	n := len(m)
	if len(other) > n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		a, b := m.at(i), other.at(i)
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Mul returns the product of m and other, the componentwise exponent sum.
func (m Monomial) Mul(other Monomial) Monomial {
	checkSameRing(m, other)
	p := make(Monomial, maxLen(m, other))
	for i := range p {
		p[i] = m.at(i) + other.at(i)
	}
	return p
}

// Divides reports whether m divides other, that is every exponent of m is at
// most the matching exponent of other.
func (m Monomial) Divides(other Monomial) bool {
	checkSameRing(m, other)
	for i, e := range m {
		if e > other.at(i) {
			return false
		}
	}
	return true
}

// Quo returns other with the exponents of m subtracted. The caller must
// ensure m divides other.
func (m Monomial) Quo(other Monomial) Monomial {
	checkSameRing(m, other)
	q := make(Monomial, maxLen(m, other))
	for i := range q {
		a, b := other.at(i), m.at(i)
		if b > a {
			panic(fmt.Sprintf("monomial %v does not divide %v", m, other))
		}
		q[i] = a - b
	}
	return q
}

// IsPurePower reports whether m is a positive power of a single variable,
// and returns that variable index.
func (m Monomial) IsPurePower() (int, bool) {
	idx := -1
	for i, e := range m {
		if e == 0 {
			continue
		}
		if idx >= 0 {
			return -1, false
		}
		idx = i
	}
	if idx < 0 {
		return -1, false
	}
	return idx, true
}

// Support returns the set of variable indices with a nonzero exponent.
func (m Monomial) Support() *bitset.BitSet {
	s := bitset.New(uint(len(m)))
	for i, e := range m {
		if e != 0 {
			s.Set(uint(i))
		}
	}
	return s
}

// LCM returns the least common multiple of a and b, the componentwise
// exponent maximum.
func LCM(a, b Monomial) Monomial {
	checkSameRing(a, b)
	l := make(Monomial, maxLen(a, b))
	for i := range l {
		x, y := a.at(i), b.at(i)
		if y > x {
			x = y
		}
		l[i] = x
	}
	return l
}

// Coprime reports whether a and b share no variable.
func Coprime(a, b Monomial) bool {
	checkSameRing(a, b)
	for i, e := range a {
		if e != 0 && b.at(i) != 0 {
			return false
		}
	}
	return true
}

func (m Monomial) at(i int) uint32 {
	if i < len(m) {
		return m[i]
	}
	return 0
}

func maxLen(a, b Monomial) int {
	if len(a) >= len(b) {
		return len(a)
	}
	return len(b)
}

func checkSameRing(a, b Monomial) {
	if debug.Debug && len(a) != len(b) && len(a) != 0 && len(b) != 0 {
		panic(fmt.Sprintf("monomials from different rings: %d vs %d variables", len(a), len(b)))
	}
}
