package buchberger

import (
	"github.com/consensys/groebner/poly"
)

// SPolynomial returns the S-polynomial of f and g under o: with L the least
// common multiple of the two leading monomials,
//
//	S(f,g) = L/lt(f)·f - L/lt(g)·g
//
// Both leading terms cancel by construction, which is what makes reduced
// S-polynomials the completion test of a Groebner basis. Zero inputs fail
// with poly.ErrEmptyPolynomial.
func SPolynomial[E any](r *poly.Ring[E], f, g poly.Polynomial[E], o poly.Order) (poly.Polynomial[E], error) {
	ltf, err := f.LeadingTerm(o)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}
	ltg, err := g.LeadingTerm(o)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}

	l := poly.LCM(ltf.Mono, ltg.Mono)

	cf, err := r.Field().Inverse(ltf.Coeff)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}
	cg, err := r.Field().Inverse(ltg.Coeff)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}

	mf := poly.Term[E]{Coeff: cf, Mono: ltf.Mono.Quo(l)}
	mg := poly.Term[E]{Coeff: cg, Mono: ltg.Mono.Quo(l)}
	return r.Sub(r.MulTerm(f, mf), r.MulTerm(g, mg)), nil
}
