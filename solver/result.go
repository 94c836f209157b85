package solver

import (
	"github.com/consensys/groebner/expr"
	"github.com/consensys/groebner/poly"
)

// Status summarizes what Solve established about the system.
type Status uint8

const (
	// StatusInvalid is the zero value; it only appears alongside an error.
	StatusInvalid Status = iota

	// StatusExact means the finite solution set was fully enumerated.
	// Individual coordinates may still be numeric approximations; each
	// Solution carries an Exact flag.
	StatusExact

	// StatusPartial means a Groebner basis was computed but solutions were
	// not enumerated: extraction was turned off, the order is not lex, or
	// root isolation is unsupported over the field.
	StatusPartial

	// StatusNoSolution means the system is unsatisfiable, over the field
	// for prime fields and over the reals for the rationals.
	StatusNoSolution

	// StatusInfiniteSolutions means the solution set is infinite.
	StatusInfiniteSolutions
)

func (s Status) String() string {
	switch s {
	case StatusExact:
		return "exact"
	case StatusPartial:
		return "partial"
	case StatusNoSolution:
		return "no solution"
	case StatusInfiniteSolutions:
		return "infinite solutions"
	default:
		return "invalid"
	}
}

// Solution is one assignment of the unknowns, in Result.Variables order.
type Solution[E any] struct {
	Values []E
	Exact  bool
}

// Result is the outcome of a Solve call.
type Result[E any] struct {
	Status Status

	// Classification is the structural class of the input system, as
	// reported by expr.Classify.
	Classification expr.Classification

	// Variables lists the unknowns in the order Solutions use, which is
	// the elimination priority order.
	Variables []string

	Solutions []Solution[E]

	// Basis is the reduced Groebner basis of the system when one was
	// computed; the linear fast path leaves it nil.
	Basis []poly.Polynomial[E]
}
