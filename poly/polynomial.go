package poly

import "errors"

// ErrEmptyPolynomial is returned when an operation needs a leading term and
// the polynomial has none.
var ErrEmptyPolynomial = errors.New("poly: zero polynomial has no leading term")

// Term is a coefficient attached to a monomial.
type Term[E any] struct {
	Coeff E
	Mono  Monomial
}

// Polynomial is a sparse multivariate polynomial in canonical form: terms
// strictly decreasing under the structural monomial comparison, with no zero
// coefficient. The zero polynomial has no terms.
//
// Polynomials are immutable; Ring operations return fresh values and never
// modify their operands.
type Polynomial[E any] struct {
	terms []Term[E]
}

// NumTerms returns the number of terms.
func (p Polynomial[E]) NumTerms() int { return len(p.terms) }

// Term returns the i-th term. Terms are indexed in decreasing structural
// monomial order.
func (p Polynomial[E]) Term(i int) Term[E] { return p.terms[i] }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[E]) IsZero() bool { return len(p.terms) == 0 }

// TotalDegree returns the largest total degree among the terms, and zero for
// the zero polynomial.
func (p Polynomial[E]) TotalDegree() uint64 {
	var d uint64
	for _, t := range p.terms {
		if td := t.Mono.TotalDegree(); td > d {
			d = td
		}
	}
	return d
}

// IsConstant reports whether p has no variable, including the zero
// polynomial.
func (p Polynomial[E]) IsConstant() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].Mono.IsUnit())
}

// LeadingTerm returns the greatest term of p under o. It fails with
// ErrEmptyPolynomial on the zero polynomial.
func (p Polynomial[E]) LeadingTerm(o Order) (Term[E], error) {
	if len(p.terms) == 0 {
		return Term[E]{}, ErrEmptyPolynomial
	}
	lead := 0
	for i := 1; i < len(p.terms); i++ {
		if o.Compare(p.terms[i].Mono, p.terms[lead].Mono) > 0 {
			lead = i
		}
	}
	return p.terms[lead], nil
}

// LeadingMonomial returns the monomial of the leading term of p under o.
func (p Polynomial[E]) LeadingMonomial(o Order) (Monomial, error) {
	t, err := p.LeadingTerm(o)
	if err != nil {
		return nil, err
	}
	return t.Mono, nil
}

// DegreeIn returns the largest exponent of variable v across the terms.
func (p Polynomial[E]) DegreeIn(v int) uint32 {
	var d uint32
	for _, t := range p.terms {
		if e := t.Mono.at(v); e > d {
			d = e
		}
	}
	return d
}
