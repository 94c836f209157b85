// Package buchberger computes reduced Groebner bases of polynomial ideals
// using Buchberger's algorithm.
//
// The entry point is Compute. It maintains a queue of critical pairs,
// reduces their S-polynomials to normal form against the current basis and
// grows the basis with the nonzero remainders until every pair reduces to
// zero. Two classic admissibility criteria (coprime leading monomials and
// Buchberger's chain criterion) discard pairs whose S-polynomial is known
// to reduce to zero without computing it. The returned basis is minimal,
// interreduced and monic: it depends only on the ideal and the monomial
// order, not on the generator set, the criteria toggles or the number of
// tasks.
package buchberger

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/groebner/logger"
	"github.com/consensys/groebner/poly"
)

// ErrResourceExceeded is returned by Compute when the iteration or basis
// size budget runs out before the basis stabilizes.
var ErrResourceExceeded = errors.New("buchberger: resource budget exceeded")

// Default budgets for Compute. They are generous for the small systems the
// solver targets while still bounding degenerate inputs.
const (
	DefaultMaxIterations = 10000
	DefaultMaxBasisSize  = 500
)

// Config tunes a single Compute run. The zero value of a field selects its
// default.
type Config struct {
	// MaxIterations bounds the number of critical pairs taken from the
	// queue, counting pairs discarded by the criteria.
	MaxIterations int

	// MaxBasisSize bounds the size of the intermediate basis, before
	// minimalization.
	MaxBasisSize int

	// NbTasks is the number of goroutines reducing S-polynomials. With
	// NbTasks == 1 pairs are processed one at a time in selection order;
	// larger values reduce whole batches concurrently. Defaults to
	// runtime.NumCPU().
	NbTasks int

	// DisableCoprimeCriterion keeps pairs with coprime leading monomials
	// in the queue instead of discarding them.
	DisableCoprimeCriterion bool

	// DisableChainCriterion turns off Buchberger's chain criterion.
	DisableChainCriterion bool

	Logger zerolog.Logger
}

// DefaultConfig returns the configuration the solver package uses when no
// option overrides it.
func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		MaxBasisSize:  DefaultMaxBasisSize,
		NbTasks:       runtime.NumCPU(),
		Logger:        logger.Logger(),
	}
}

// Compute returns the reduced Groebner basis of the ideal generated by gens
// under the monomial order o. Zero generators are ignored; no nonzero
// generator yields a nil basis. The result is canonical, so two generator
// sets of the same ideal produce the same basis.
func Compute[E any](r *poly.Ring[E], gens []poly.Polynomial[E], o poly.Order, cfg Config) ([]poly.Polynomial[E], error) {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.MaxBasisSize <= 0 {
		cfg.MaxBasisSize = DefaultMaxBasisSize
	}
	if cfg.NbTasks <= 0 {
		cfg.NbTasks = runtime.NumCPU()
	}

	e := &engine[E]{
		r:    r,
		o:    o,
		cfg:  cfg,
		rd:   newReducer(r, o),
		done: make(map[uint64]struct{}),
		log:  cfg.Logger.With().Str("order", o.String()).Logger(),
	}
	for _, g := range gens {
		if g.IsZero() || e.contains(g) {
			continue
		}
		if err := e.append(g); err != nil {
			return nil, err
		}
	}
	if len(e.basis) == 0 {
		return nil, nil
	}

	e.log.Debug().Int("generators", len(e.basis)).Int("nbTasks", cfg.NbTasks).Msg("computing groebner basis")

	if err := e.run(); err != nil {
		return nil, err
	}
	basis, err := e.finalize()
	if err != nil {
		return nil, err
	}
	e.log.Debug().Int("size", len(basis)).Int("pairs", e.iterations).Msg("groebner basis computed")
	return basis, nil
}

// pair is a critical pair of basis indices, i < j, with the lcm of their
// leading monomials cached for the selection strategy and the criteria.
type pair struct {
	i, j int
	lcm  poly.Monomial
	deg  uint64
}

func pairKey(i, j int) uint64 { return uint64(i)<<32 | uint64(j) }

type engine[E any] struct {
	r   *poly.Ring[E]
	o   poly.Order
	cfg Config
	log zerolog.Logger

	basis []poly.Polynomial[E]
	lms   []poly.Monomial
	rd    *reducer[E]

	queue      []pair
	done       map[uint64]struct{}
	iterations int
}

func (e *engine[E]) contains(g poly.Polynomial[E]) bool {
	for i := range e.basis {
		if e.r.Equal(e.basis[i], g) {
			return true
		}
	}
	return false
}

// append adds g to the basis and queues its critical pairs with every
// earlier element.
func (e *engine[E]) append(g poly.Polynomial[E]) error {
	lm, err := g.LeadingMonomial(e.o)
	if err != nil {
		return err
	}
	n := len(e.basis)
	for k := 0; k < n; k++ {
		lcm := poly.LCM(e.lms[k], lm)
		e.queue = append(e.queue, pair{i: k, j: n, lcm: lcm, deg: lcm.TotalDegree()})
	}
	e.basis = append(e.basis, g)
	e.lms = append(e.lms, lm)
	return e.rd.add(g)
}

// lessPair is the normal selection strategy: smallest lcm total degree
// first, ties broken by the monomial order on the lcm, then by indices so
// the choice is deterministic.
func (e *engine[E]) lessPair(a, b pair) bool {
	if a.deg != b.deg {
		return a.deg < b.deg
	}
	if c := e.o.Compare(a.lcm, b.lcm); c != 0 {
		return c < 0
	}
	if a.i != b.i {
		return a.i < b.i
	}
	return a.j < b.j
}

func (e *engine[E]) run() error {
	for len(e.queue) > 0 {
		var err error
		if e.cfg.NbTasks == 1 {
			err = e.stepSequential()
		} else {
			err = e.stepBatch()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// stepSequential treats the single best pair of the queue.
func (e *engine[E]) stepSequential() error {
	best := 0
	for k := 1; k < len(e.queue); k++ {
		if e.lessPair(e.queue[k], e.queue[best]) {
			best = k
		}
	}
	pr := e.queue[best]
	e.queue[best] = e.queue[len(e.queue)-1]
	e.queue = e.queue[:len(e.queue)-1]

	e.iterations++
	if e.iterations > e.cfg.MaxIterations {
		return fmt.Errorf("%w: %d critical pairs treated (max %d)", ErrResourceExceeded, e.iterations, e.cfg.MaxIterations)
	}

	skip := e.skippable(pr)
	e.done[pairKey(pr.i, pr.j)] = struct{}{}
	if skip {
		return nil
	}

	s, err := SPolynomial(e.r, e.basis[pr.i], e.basis[pr.j], e.o)
	if err != nil {
		return err
	}
	rem, err := e.rd.reduce(s)
	if err != nil {
		return err
	}
	if rem.IsZero() {
		return nil
	}
	return e.integrate(rem)
}

// stepBatch treats the whole queue as one batch: the surviving pairs are
// reduced concurrently against the basis frozen at batch start, then the
// remainders are integrated sequentially in selection order.
func (e *engine[E]) stepBatch() error {
	batch := e.queue
	e.queue = nil
	sort.Slice(batch, func(a, b int) bool { return e.lessPair(batch[a], batch[b]) })

	e.iterations += len(batch)
	if e.iterations > e.cfg.MaxIterations {
		return fmt.Errorf("%w: %d critical pairs treated (max %d)", ErrResourceExceeded, e.iterations, e.cfg.MaxIterations)
	}

	// The criteria consult pairs settled in earlier rounds only; marking
	// the batch done after filtering keeps two pairs of the same batch
	// from discarding each other.
	var work []pair
	for _, pr := range batch {
		if !e.skippable(pr) {
			work = append(work, pr)
		}
	}
	for _, pr := range batch {
		e.done[pairKey(pr.i, pr.j)] = struct{}{}
	}
	if len(work) == 0 {
		return nil
	}

	// The reducer is append only and no append happens before Wait
	// returns, so the workers share it without synchronization.
	rems := make([]poly.Polynomial[E], len(work))
	var grp errgroup.Group
	grp.SetLimit(e.cfg.NbTasks)
	for k := range work {
		grp.Go(func() error {
			s, err := SPolynomial(e.r, e.basis[work[k].i], e.basis[work[k].j], e.o)
			if err != nil {
				return err
			}
			rem, err := e.rd.reduce(s)
			if err != nil {
				return err
			}
			rems[k] = rem
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	frozen := e.rd.len()
	for k := range rems {
		rem := rems[k]
		if rem.IsZero() {
			continue
		}
		if e.rd.len() > frozen {
			// the basis advanced during this batch, take a fresh
			// normal form before integrating
			var err error
			rem, err = e.rd.reduce(rem)
			if err != nil {
				return err
			}
			if rem.IsZero() {
				continue
			}
		}
		if err := e.integrate(rem); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine[E]) integrate(rem poly.Polynomial[E]) error {
	if err := e.append(rem); err != nil {
		return err
	}
	if len(e.basis) > e.cfg.MaxBasisSize {
		return fmt.Errorf("%w: basis grew to %d elements (max %d)", ErrResourceExceeded, len(e.basis), e.cfg.MaxBasisSize)
	}
	return nil
}

// skippable reports whether the S-polynomial of pr is already known to
// reduce to zero.
func (e *engine[E]) skippable(pr pair) bool {
	if !e.cfg.DisableCoprimeCriterion && poly.Coprime(e.lms[pr.i], e.lms[pr.j]) {
		return true
	}
	if e.cfg.DisableChainCriterion {
		return false
	}
	// chain criterion: some lm(k) divides the lcm and both subsumed pairs
	// are already treated
	for k := range e.lms {
		if k == pr.i || k == pr.j {
			continue
		}
		if !e.lms[k].Divides(pr.lcm) {
			continue
		}
		if e.isDone(pr.i, k) && e.isDone(pr.j, k) {
			return true
		}
	}
	return false
}

func (e *engine[E]) isDone(i, j int) bool {
	if j < i {
		i, j = j, i
	}
	_, ok := e.done[pairKey(i, j)]
	return ok
}

// finalize turns the stabilized basis into its canonical reduced form.
// Elements whose leading monomial is divisible by another one are dropped,
// the survivors are interreduced to a fixpoint and made monic, and the
// result is sorted by decreasing leading monomial.
func (e *engine[E]) finalize() ([]poly.Polynomial[E], error) {
	keep := make([]bool, len(e.basis))
	for i := range keep {
		keep[i] = true
	}
	for i := range e.basis {
		if !keep[i] {
			continue
		}
		for j := range e.basis {
			if i == j || !keep[j] || !e.lms[j].Divides(e.lms[i]) {
				continue
			}
			if e.lms[i].Equal(e.lms[j]) && i < j {
				continue // equal leading monomials, the lower index survives
			}
			keep[i] = false
			break
		}
	}
	var minimal []poly.Polynomial[E]
	for i := range e.basis {
		if keep[i] {
			minimal = append(minimal, e.basis[i])
		}
	}

	// In a minimal basis no leading term is reducible, so interreduction
	// only rewrites tails and each sweep strictly shrinks some element.
	for changed := true; changed; {
		changed = false
		for i := range minimal {
			rd := newReducer(e.r, e.o)
			for j := range minimal {
				if j == i {
					continue
				}
				if err := rd.add(minimal[j]); err != nil {
					return nil, err
				}
			}
			nf, err := rd.reduce(minimal[i])
			if err != nil {
				return nil, err
			}
			if !e.r.Equal(nf, minimal[i]) {
				minimal[i] = nf
				changed = true
			}
		}
	}

	out := make([]poly.Polynomial[E], len(minimal))
	for i := range minimal {
		m, err := e.r.Monic(minimal[i], e.o)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	sort.Slice(out, func(a, b int) bool {
		la, _ := out[a].LeadingMonomial(e.o)
		lb, _ := out[b].LeadingMonomial(e.o)
		return e.o.Compare(la, lb) > 0
	})
	return out, nil
}
