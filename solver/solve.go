// Package solver is the front door of the library: it classifies a system
// of equations, converts it to polynomial form and solves it, by exact
// Gaussian elimination when every equation has degree one and through a
// reduced Groebner basis otherwise.
//
// Solve works over the rationals. SolveOver takes any field.Field and a
// matching roots.Finder, so the same pipeline runs over prime fields.
// Systems that are not polynomial in their unknowns are rejected with an
// error wrapping expr.ErrNotPolynomial; matrix equations between equally
// shaped matrix literals are flattened entry by entry and solved as one
// scalar system.
package solver

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/consensys/groebner/buchberger"
	"github.com/consensys/groebner/cache"
	"github.com/consensys/groebner/expr"
	"github.com/consensys/groebner/extract"
	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
	"github.com/consensys/groebner/roots"
)

// ErrDegenerateInput is returned when the system itself is malformed:
// no equations, no unknowns, nil equation sides, duplicate unknowns or an
// unusable variable priority.
var ErrDegenerateInput = errors.New("solver: degenerate input")

// Solve solves the system over the rationals. See SolveOver.
func Solve(system expr.System, opts ...Option) (Result[*big.Rat], error) {
	return SolveOver(field.NewQ(), roots.NewRational(), system, opts...)
}

// SolveOver solves the system over an arbitrary coefficient field. The
// finder isolates roots of univariate polynomials during solution
// extraction and must belong to the same field.
//
// The returned Result always carries the classification of the input and,
// once the pipeline got that far, the reduced Groebner basis. Budget
// exhaustion surfaces as buchberger.ErrResourceExceeded.
func SolveOver[E any](f field.Field[E], finder roots.Finder[E], system expr.System, opts ...Option) (Result[E], error) {
	var res Result[E]
	cfg, err := NewConfig(opts...)
	if err != nil {
		return res, err
	}
	if err := validateSystem(system); err != nil {
		return res, err
	}

	classification := expr.Classify(system)
	log := cfg.Logger.With().
		Str("field", f.Name()).
		Int("equations", len(system.Equations)).
		Int("unknowns", len(system.Unknowns)).
		Stringer("kind", classification.Kind).
		Logger()
	log.Debug().Msg("solving system")

	if classification.Kind == expr.MatrixEquation {
		flat, err := expr.FlattenMatrixEquations(system)
		if err != nil {
			return res, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
		}
		sub, err := SolveOver(f, finder, flat, opts...)
		if err != nil {
			return sub, err
		}
		sub.Classification = classification
		return sub, nil
	}

	vars, err := priorityVars(system, cfg.Priority)
	if err != nil {
		return res, err
	}
	r, err := poly.NewRing(f, vars)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrDegenerateInput, err)
	}

	polys, err := expr.SystemPolynomials(r, system)
	if err != nil {
		return res, err
	}

	res.Classification = classification
	res.Variables = vars

	// equations that reduce to 0 = 0 constrain nothing
	live := polys[:0]
	for _, p := range polys {
		if !p.IsZero() {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		res.Status = StatusInfiniteSolutions
		log.Debug().Stringer("status", res.Status).Msg("system solved")
		return res, nil
	}

	if !cfg.NoLinearFastPath {
		if rows, ok := linearRows(r, live); ok {
			values, status, err := solveLinear(f, rows, r.NbVars())
			if err != nil {
				return res, err
			}
			res.Status = status
			if status == StatusExact {
				res.Solutions = []Solution[E]{{Values: values, Exact: true}}
			}
			log.Debug().Stringer("status", res.Status).Msg("system solved by gaussian elimination")
			return res, nil
		}
	}

	basis, err := computeBasis(r, live, cfg, log)
	if err != nil {
		return res, err
	}
	res.Basis = basis

	if cfg.SkipExtraction {
		res.Status = StatusPartial
		log.Debug().Stringer("status", res.Status).Msg("solution extraction disabled")
		return res, nil
	}
	if cfg.Order != poly.Lex {
		log.Warn().Stringer("order", cfg.Order).Msg("solution extraction needs the lex order, returning the basis only")
		res.Status = StatusPartial
		return res, nil
	}

	outcome, tuples, err := extract.Solutions(r, finder, basis, cfg.Order)
	if err != nil {
		if errors.Is(err, roots.ErrUnsupported) {
			log.Debug().Err(err).Msg("root isolation unsupported, returning the basis only")
			res.Status = StatusPartial
			return res, nil
		}
		return res, err
	}
	switch outcome {
	case extract.Inconsistent:
		res.Status = StatusNoSolution
	case extract.PositiveDimensional:
		res.Status = StatusInfiniteSolutions
	default:
		if len(tuples) == 0 {
			res.Status = StatusNoSolution
			break
		}
		res.Status = StatusExact
		res.Solutions = make([]Solution[E], len(tuples))
		for i, tup := range tuples {
			res.Solutions[i] = Solution[E]{Values: tup.Values, Exact: tup.Exact}
		}
	}
	log.Debug().Stringer("status", res.Status).Int("solutions", len(res.Solutions)).Msg("system solved")
	return res, nil
}

func validateSystem(sys expr.System) error {
	if len(sys.Unknowns) == 0 {
		return fmt.Errorf("%w: no unknowns", ErrDegenerateInput)
	}
	if len(sys.Equations) == 0 {
		return fmt.Errorf("%w: no equations", ErrDegenerateInput)
	}
	for i, eq := range sys.Equations {
		if eq.Lhs == nil || eq.Rhs == nil {
			return fmt.Errorf("%w: equation %d has a nil side", ErrDegenerateInput, i)
		}
	}
	return nil
}

// priorityVars returns the ring variable order: the system unknowns,
// reordered by the priority option when one was given.
func priorityVars(sys expr.System, priority []string) ([]string, error) {
	if len(priority) == 0 {
		return sys.Unknowns, nil
	}
	if len(priority) != len(sys.Unknowns) {
		return nil, fmt.Errorf("%w: priority lists %d variables, system has %d unknowns",
			ErrDegenerateInput, len(priority), len(sys.Unknowns))
	}
	remaining := make(map[string]struct{}, len(sys.Unknowns))
	for _, u := range sys.Unknowns {
		remaining[u] = struct{}{}
	}
	for _, v := range priority {
		if _, ok := remaining[v]; !ok {
			return nil, fmt.Errorf("%w: priority variable %q is not a system unknown", ErrDegenerateInput, v)
		}
		delete(remaining, v)
	}
	return priority, nil
}

func computeBasis[E any](r *poly.Ring[E], gens []poly.Polynomial[E], cfg Config, log zerolog.Logger) ([]poly.Polynomial[E], error) {
	bcfg := buchberger.Config{
		MaxIterations:           cfg.MaxIterations,
		MaxBasisSize:            cfg.MaxBasisSize,
		NbTasks:                 cfg.NbTasks,
		DisableCoprimeCriterion: cfg.NoCoprimeCriterion,
		DisableChainCriterion:   cfg.NoChainCriterion,
		Logger:                  cfg.Logger,
	}
	if cfg.Store == nil {
		return buchberger.Compute(r, gens, cfg.Order, bcfg)
	}

	key := cache.SystemKey(r, gens, cfg.Order)
	if blob, ok := cfg.Store.Get(key); ok {
		basis, err := cache.UnmarshalBasis(r, blob, cfg.Order)
		if err == nil {
			log.Debug().Str("key", key[:8]).Msg("groebner basis served from cache")
			return basis, nil
		}
		log.Warn().Err(err).Msg("discarding unreadable cache entry")
	}
	basis, err := buchberger.Compute(r, gens, cfg.Order, bcfg)
	if err != nil {
		return nil, err
	}
	blob, err := cache.MarshalBasis(r, basis, cfg.Order)
	if err != nil {
		return nil, err
	}
	cfg.Store.Put(key, blob)
	return basis, nil
}
