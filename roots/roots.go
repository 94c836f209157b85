// Package roots finds roots of univariate polynomials over the solver
// coefficient fields.
//
// Over the rationals the ladder is exact first: zero roots are stripped, the
// rational root theorem with synthetic division recovers every rational root
// with its multiplicity, quadratics with perfect square discriminants stay
// exact, and only the irrational leftovers fall back to derivative guided
// bisection on the square free part. Prime field finders handle degree one
// and two through modular inversion and square roots; higher degrees are
// unsupported there.
package roots

import "errors"

// ErrUnsupported is returned when a finder cannot enumerate the roots of the
// given polynomial; callers downgrade to a partial result instead of
// fabricating values.
var ErrUnsupported = errors.New("roots: unsupported polynomial")

// Root is a single root of a univariate polynomial.
type Root[E any] struct {
	Value E

	// Multiplicity counts how many times the root divides the polynomial.
	Multiplicity int

	// Exact is false when Value only approximates the mathematical root.
	Exact bool
}

// Finder enumerates the roots of a univariate polynomial given by its dense
// coefficient slice, constant term first. Implementations return roots in a
// deterministic order and never invent values: when the computation cannot
// finish they fail with ErrUnsupported.
type Finder[E any] interface {
	FindRoots(coeffs []E) ([]Root[E], error)
}
