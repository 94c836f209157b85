// Package extract turns a lexicographic Groebner basis into explicit
// solution tuples by back substitution.
//
// A lex basis of a zero dimensional ideal is triangular: some element is
// univariate in the lowest priority variable, and once that variable is
// assigned a root, substitution exposes a univariate element for the next
// one. Solutions walks this ladder from the lowest priority variable up,
// branching on every root, pruning branches under which some basis element
// becomes a nonzero constant, and verifying each completed tuple against
// the whole basis.
package extract

import (
	"fmt"

	"github.com/consensys/groebner/poly"
	"github.com/consensys/groebner/roots"
)

// Tuple is one solution point. Values are indexed like the ring variables.
// Exact reports whether every coordinate came out of an exact root; tuples
// with an approximated coordinate are verified with the field's approximate
// zero test instead of the exact one.
type Tuple[E any] struct {
	Values []E
	Exact  bool
}

// Outcome classifies the solution set of the ideal spanned by the basis.
type Outcome uint8

const (
	// ZeroDimensional means finitely many solution points over the
	// algebraic closure. The returned tuples may still be empty when none
	// of the points lives in the coefficient field or its real closure.
	ZeroDimensional Outcome = iota

	// Inconsistent means the basis contains a nonzero constant, so the
	// system has no solution at all.
	Inconsistent

	// PositiveDimensional means infinitely many solutions; no enumeration
	// is attempted.
	PositiveDimensional
)

func (o Outcome) String() string {
	switch o {
	case ZeroDimensional:
		return "zero-dimensional"
	case Inconsistent:
		return "inconsistent"
	case PositiveDimensional:
		return "positive-dimensional"
	default:
		return "unknown"
	}
}

// Solutions enumerates the solutions of the ideal spanned by basis, which
// must be a Groebner basis under o. Back substitution needs the triangular
// shape of the lex order; for other orders Solutions may fail to pin a
// variable and return an error.
//
// Root finding failures of the finder, such as roots.ErrUnsupported for
// degrees it cannot handle, are returned unchanged so callers can tell
// "unsolvable" apart from "not solved".
//
// The tuple order is deterministic: branches follow the finder's root
// order, lowest priority variable first.
func Solutions[E any](r *poly.Ring[E], finder roots.Finder[E], basis []poly.Polynomial[E], o poly.Order) (Outcome, []Tuple[E], error) {
	live := make([]poly.Polynomial[E], 0, len(basis))
	for _, g := range basis {
		if g.IsZero() {
			continue
		}
		if g.IsConstant() {
			return Inconsistent, nil, nil
		}
		live = append(live, g)
	}
	if len(live) == 0 {
		return PositiveDimensional, nil, nil
	}
	zeroDim, err := zeroDimensional(r, live, o)
	if err != nil {
		return 0, nil, err
	}
	if !zeroDim {
		return PositiveDimensional, nil, nil
	}

	x := &extractor[E]{r: r, finder: finder, basis: live}
	branches := []branch[E]{{assign: map[int]E{}, exact: true}}
	for v := r.NbVars() - 1; v >= 0; v-- {
		var next []branch[E]
		for _, br := range branches {
			ext, err := x.step(br, v)
			if err != nil {
				return 0, nil, err
			}
			next = append(next, ext...)
		}
		branches = next
		if len(branches) == 0 {
			return ZeroDimensional, nil, nil
		}
	}

	var tuples []Tuple[E]
	for _, br := range branches {
		tup, ok, err := x.verified(br)
		if err != nil {
			return 0, nil, err
		}
		if ok {
			tuples = append(tuples, tup)
		}
	}
	return ZeroDimensional, tuples, nil
}

// zeroDimensional is the classic finiteness test: the ideal has finitely
// many solutions exactly when, for every variable, some basis element has a
// pure power of that variable as its leading monomial.
func zeroDimensional[E any](r *poly.Ring[E], basis []poly.Polynomial[E], o poly.Order) (bool, error) {
	pinned := make([]bool, r.NbVars())
	for _, g := range basis {
		lm, err := g.LeadingMonomial(o)
		if err != nil {
			return false, err
		}
		if idx, ok := lm.IsPurePower(); ok {
			pinned[idx] = true
		}
	}
	for _, p := range pinned {
		if !p {
			return false, nil
		}
	}
	return true, nil
}

type branch[E any] struct {
	assign map[int]E
	exact  bool
}

type extractor[E any] struct {
	r      *poly.Ring[E]
	finder roots.Finder[E]
	basis  []poly.Polynomial[E]
}

// step assigns variable v in the given branch. It substitutes the branch
// assignments into every basis element, drops the branch when an element
// collapses to a nonzero constant, and otherwise branches on the roots of
// the lowest degree element that became univariate in v.
func (x *extractor[E]) step(br branch[E], v int) ([]branch[E], error) {
	var pin poly.Polynomial[E]
	pinned := false
	var pinDeg uint32
	for _, g := range x.basis {
		q, err := x.r.Substitute(g, br.assign)
		if err != nil {
			return nil, err
		}
		if q.IsZero() {
			continue
		}
		if q.IsConstant() {
			if x.vanishes(q.Term(0).Coeff, br.exact) {
				continue
			}
			return nil, nil // dead branch
		}
		idx, ok := x.r.Univariate(q)
		if !ok || idx != v {
			continue
		}
		if d := q.DegreeIn(v); !pinned || d < pinDeg {
			pin, pinDeg, pinned = q, d, true
		}
	}
	if !pinned {
		return nil, fmt.Errorf("extract: no basis element pins variable %q, not a lex triangular basis", x.r.Vars()[v])
	}

	coeffs, err := x.r.Coefficients(pin, v)
	if err != nil {
		return nil, err
	}
	rts, err := x.finder.FindRoots(coeffs)
	if err != nil {
		return nil, err
	}
	out := make([]branch[E], 0, len(rts))
	for _, rt := range rts {
		assign := make(map[int]E, len(br.assign)+1)
		for k, val := range br.assign {
			assign[k] = val
		}
		assign[v] = rt.Value
		out = append(out, branch[E]{assign: assign, exact: br.exact && rt.Exact})
	}
	return out, nil
}

// verified evaluates every basis element at the completed branch and keeps
// the tuple only if all of them vanish.
func (x *extractor[E]) verified(br branch[E]) (Tuple[E], bool, error) {
	point := make([]E, x.r.NbVars())
	for i := range point {
		point[i] = br.assign[i]
	}
	for _, g := range x.basis {
		val, err := x.r.Eval(g, point)
		if err != nil {
			return Tuple[E]{}, false, err
		}
		if !x.vanishes(val, br.exact) {
			return Tuple[E]{}, false, nil
		}
	}
	return Tuple[E]{Values: point, Exact: br.exact}, true, nil
}

func (x *extractor[E]) vanishes(c E, exact bool) bool {
	if exact {
		return x.r.Field().IsZero(c)
	}
	return x.r.Field().IsApproxZero(c)
}
