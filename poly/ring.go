package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/consensys/groebner/field"
)

// Ring fixes a variable list and a coefficient field. All polynomial
// arithmetic goes through a Ring so that exponent vectors agree on variable
// positions.
//
// Variable order is the priority order: position 0 is the highest priority
// variable for the monomial orders.
type Ring[E any] struct {
	f    field.Field[E]
	vars []string
}

// NewRing returns a polynomial ring over f with the given variables, listed
// from highest to lowest priority. Variable names must be non empty and
// pairwise distinct.
func NewRing[E any](f field.Field[E], vars []string) (*Ring[E], error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("ring needs at least one variable")
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return nil, fmt.Errorf("empty variable name")
		}
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("duplicate variable %q", v)
		}
		seen[v] = struct{}{}
	}
	owned := make([]string, len(vars))
	copy(owned, vars)
	return &Ring[E]{f: f, vars: owned}, nil
}

// Field returns the coefficient field of the ring.
func (r *Ring[E]) Field() field.Field[E] { return r.f }

// Vars returns the variable names in priority order. The returned slice must
// not be modified.
func (r *Ring[E]) Vars() []string { return r.vars }

// NbVars returns the number of variables.
func (r *Ring[E]) NbVars() int { return len(r.vars) }

// Zero returns the zero polynomial.
func (r *Ring[E]) Zero() Polynomial[E] { return Polynomial[E]{} }

// One returns the constant polynomial 1.
func (r *Ring[E]) One() Polynomial[E] { return r.Constant(r.f.One()) }

// Constant returns the constant polynomial c.
func (r *Ring[E]) Constant(c E) Polynomial[E] {
	if r.f.IsZero(c) {
		return Polynomial[E]{}
	}
	return Polynomial[E]{terms: []Term[E]{{Coeff: c, Mono: make(Monomial, len(r.vars))}}}
}

// Variable returns the polynomial consisting of the i-th variable.
func (r *Ring[E]) Variable(i int) Polynomial[E] {
	if i < 0 || i >= len(r.vars) {
		panic(fmt.Sprintf("variable index %d out of range [0,%d)", i, len(r.vars)))
	}
	m := make(Monomial, len(r.vars))
	m[i] = 1
	return Polynomial[E]{terms: []Term[E]{{Coeff: r.f.One(), Mono: m}}}
}

// FromTerms builds a polynomial in canonical form from arbitrary terms:
// monomials are widened to the ring, duplicates are combined and zero
// coefficients dropped. Terms wider than the ring are rejected.
func (r *Ring[E]) FromTerms(terms []Term[E]) Polynomial[E] {
	nb := len(r.vars)
	ts := make([]Term[E], 0, len(terms))
	for _, t := range terms {
		if len(t.Mono) > nb {
			panic(fmt.Sprintf("monomial with %d exponents in a ring with %d variables", len(t.Mono), nb))
		}
		if r.f.IsZero(t.Coeff) {
			continue
		}
		m := make(Monomial, nb)
		copy(m, t.Mono)
		ts = append(ts, Term[E]{Coeff: t.Coeff, Mono: m})
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Mono.Cmp(ts[j].Mono) > 0 })

	// combine equal monomials
	out := ts[:0]
	for _, t := range ts {
		if n := len(out); n > 0 && out[n-1].Mono.Equal(t.Mono) {
			out[n-1].Coeff = r.f.Add(out[n-1].Coeff, t.Coeff)
			continue
		}
		out = append(out, t)
	}
	final := out[:0]
	for _, t := range out {
		if !r.f.IsZero(t.Coeff) {
			final = append(final, t)
		}
	}
	if len(final) == 0 {
		return Polynomial[E]{}
	}
	return Polynomial[E]{terms: final}
}

// Add returns p + q.
func (r *Ring[E]) Add(p, q Polynomial[E]) Polynomial[E] {
	out := make([]Term[E], 0, len(p.terms)+len(q.terms))
	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		switch c := p.terms[i].Mono.Cmp(q.terms[j].Mono); {
		case c > 0:
			out = append(out, p.terms[i])
			i++
		case c < 0:
			out = append(out, q.terms[j])
			j++
		default:
			s := r.f.Add(p.terms[i].Coeff, q.terms[j].Coeff)
			if !r.f.IsZero(s) {
				out = append(out, Term[E]{Coeff: s, Mono: p.terms[i].Mono})
			}
			i++
			j++
		}
	}
	out = append(out, p.terms[i:]...)
	out = append(out, q.terms[j:]...)
	if len(out) == 0 {
		return Polynomial[E]{}
	}
	return Polynomial[E]{terms: out}
}

// Neg returns -p.
func (r *Ring[E]) Neg(p Polynomial[E]) Polynomial[E] {
	if p.IsZero() {
		return p
	}
	out := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		out[i] = Term[E]{Coeff: r.f.Neg(t.Coeff), Mono: t.Mono}
	}
	return Polynomial[E]{terms: out}
}

// Sub returns p - q.
func (r *Ring[E]) Sub(p, q Polynomial[E]) Polynomial[E] {
	return r.Add(p, r.Neg(q))
}

// MulScalar returns c·p.
func (r *Ring[E]) MulScalar(p Polynomial[E], c E) Polynomial[E] {
	if r.f.IsZero(c) || p.IsZero() {
		return Polynomial[E]{}
	}
	out := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		out[i] = Term[E]{Coeff: r.f.Mul(t.Coeff, c), Mono: t.Mono}
	}
	return Polynomial[E]{terms: out}
}

// MulTerm returns t·p. Multiplying every monomial by the same monomial
// preserves the canonical term order, so no re-sort is needed.
func (r *Ring[E]) MulTerm(p Polynomial[E], t Term[E]) Polynomial[E] {
	if r.f.IsZero(t.Coeff) || p.IsZero() {
		return Polynomial[E]{}
	}
	out := make([]Term[E], len(p.terms))
	for i, pt := range p.terms {
		out[i] = Term[E]{Coeff: r.f.Mul(pt.Coeff, t.Coeff), Mono: pt.Mono.Mul(t.Mono)}
	}
	return Polynomial[E]{terms: out}
}

// Mul returns p · q.
func (r *Ring[E]) Mul(p, q Polynomial[E]) Polynomial[E] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[E]{}
	}
	out := make([]Term[E], 0, len(p.terms)*len(q.terms))
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			out = append(out, Term[E]{
				Coeff: r.f.Mul(pt.Coeff, qt.Coeff),
				Mono:  pt.Mono.Mul(qt.Mono),
			})
		}
	}
	return r.FromTerms(out)
}

// Pow returns p^k, with p^0 = 1.
func (r *Ring[E]) Pow(p Polynomial[E], k uint32) Polynomial[E] {
	result := r.One()
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = r.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = r.Mul(base, base)
		}
	}
	return result
}

// Equal reports whether p and q have identical canonical forms.
func (r *Ring[E]) Equal(p, q Polynomial[E]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].Mono.Equal(q.terms[i].Mono) {
			return false
		}
		if !r.f.Equal(p.terms[i].Coeff, q.terms[i].Coeff) {
			return false
		}
	}
	return true
}

// Monic scales p so its leading coefficient under o is one. The zero
// polynomial is returned unchanged.
func (r *Ring[E]) Monic(p Polynomial[E], o Order) (Polynomial[E], error) {
	if p.IsZero() {
		return p, nil
	}
	lt, err := p.LeadingTerm(o)
	if err != nil {
		return Polynomial[E]{}, err
	}
	if r.f.IsOne(lt.Coeff) {
		return p, nil
	}
	inv, err := r.f.Inverse(lt.Coeff)
	if err != nil {
		return Polynomial[E]{}, err
	}
	return r.MulScalar(p, inv), nil
}

// Eval evaluates p at the given point; point must assign every variable in
// priority order.
func (r *Ring[E]) Eval(p Polynomial[E], point []E) (E, error) {
	var zero E
	if len(point) != len(r.vars) {
		return zero, fmt.Errorf("point has %d coordinates, ring has %d variables", len(point), len(r.vars))
	}
	acc := r.f.Zero()
	for _, t := range p.terms {
		v := t.Coeff
		for i, e := range t.Mono {
			if e != 0 {
				v = r.f.Mul(v, r.powE(point[i], e))
			}
		}
		acc = r.f.Add(acc, v)
	}
	return acc, nil
}

// Substitute replaces the variables listed in assign by field values and
// returns the resulting polynomial in the same ring.
func (r *Ring[E]) Substitute(p Polynomial[E], assign map[int]E) (Polynomial[E], error) {
	for i := range assign {
		if i < 0 || i >= len(r.vars) {
			return Polynomial[E]{}, fmt.Errorf("variable index %d out of range [0,%d)", i, len(r.vars))
		}
	}
	out := make([]Term[E], 0, len(p.terms))
	for _, t := range p.terms {
		c := t.Coeff
		m := t.Mono.Clone()
		for i, v := range assign {
			if e := m[i]; e != 0 {
				c = r.f.Mul(c, r.powE(v, e))
				m[i] = 0
			}
		}
		out = append(out, Term[E]{Coeff: c, Mono: m})
	}
	return r.FromTerms(out), nil
}

// Univariate reports whether p involves at most one variable and returns its
// index; constants report (-1, true).
func (r *Ring[E]) Univariate(p Polynomial[E]) (int, bool) {
	idx := -1
	for _, t := range p.terms {
		for i, e := range t.Mono {
			if e == 0 {
				continue
			}
			if idx >= 0 && idx != i {
				return 0, false
			}
			idx = i
		}
	}
	return idx, true
}

// Coefficients returns the dense coefficient slice of p in the variable v,
// from the constant term up. It fails when p involves another variable.
func (r *Ring[E]) Coefficients(p Polynomial[E], v int) ([]E, error) {
	if v < 0 || v >= len(r.vars) {
		return nil, fmt.Errorf("variable index %d out of range [0,%d)", v, len(r.vars))
	}
	deg := p.DegreeIn(v)
	coeffs := make([]E, deg+1)
	for i := range coeffs {
		coeffs[i] = r.f.Zero()
	}
	for _, t := range p.terms {
		for i, e := range t.Mono {
			if e != 0 && i != v {
				return nil, fmt.Errorf("polynomial involves %q, not univariate in %q", r.vars[i], r.vars[v])
			}
		}
		coeffs[t.Mono.at(v)] = t.Coeff
	}
	return coeffs, nil
}

// String renders p with the ring variable names, terms in canonical order.
func (r *Ring[E]) String(p Polynomial[E]) string {
	if p.IsZero() {
		return "0"
	}
	var sbb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			sbb.WriteString(" + ")
		}
		if t.Mono.IsUnit() {
			sbb.WriteString(r.f.String(t.Coeff))
			continue
		}
		if !r.f.IsOne(t.Coeff) {
			sbb.WriteByte('(')
			sbb.WriteString(r.f.String(t.Coeff))
			sbb.WriteString(")*")
		}
		first := true
		for j, e := range t.Mono {
			if e == 0 {
				continue
			}
			if !first {
				sbb.WriteByte('*')
			}
			first = false
			sbb.WriteString(r.vars[j])
			if e > 1 {
				fmt.Fprintf(&sbb, "^%d", e)
			}
		}
	}
	return sbb.String()
}

func (r *Ring[E]) powE(base E, k uint32) E {
	result := r.f.One()
	for k > 0 {
		if k&1 == 1 {
			result = r.f.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = r.f.Mul(base, base)
		}
	}
	return result
}
