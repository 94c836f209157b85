package buchberger

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/groebner/poly"
)

// Reduce returns the normal form of p modulo basis under o: every term of
// the result is divisible by no leading monomial of the basis. Zero basis
// elements are ignored. The normal form of p against a Groebner basis is
// unique, which makes a zero result the ideal membership certificate.
func Reduce[E any](r *poly.Ring[E], p poly.Polynomial[E], basis []poly.Polynomial[E], o poly.Order) (poly.Polynomial[E], error) {
	rd := newReducer(r, o)
	for _, g := range basis {
		if g.IsZero() {
			continue
		}
		if err := rd.add(g); err != nil {
			return poly.Polynomial[E]{}, err
		}
	}
	return rd.reduce(p)
}

// reducer reduces polynomials against a growing divisor set. Leading terms,
// inverted leading coefficients, supports and degrees are cached per
// divisor so the inner divisibility scan stays cheap.
//
// A reducer is append only; reduce never mutates shared state, so a frozen
// reducer may serve several goroutines at once.
type reducer[E any] struct {
	r *poly.Ring[E]
	o poly.Order

	polys []poly.Polynomial[E]
	lts   []poly.Term[E]
	invs  []E
	sups  []*bitset.BitSet
	degs  []uint64
}

func newReducer[E any](r *poly.Ring[E], o poly.Order) *reducer[E] {
	return &reducer[E]{r: r, o: o}
}

func (rd *reducer[E]) add(g poly.Polynomial[E]) error {
	lt, err := g.LeadingTerm(rd.o)
	if err != nil {
		return err
	}
	inv, err := rd.r.Field().Inverse(lt.Coeff)
	if err != nil {
		return err
	}
	rd.polys = append(rd.polys, g)
	rd.lts = append(rd.lts, lt)
	rd.invs = append(rd.invs, inv)
	rd.sups = append(rd.sups, lt.Mono.Support())
	rd.degs = append(rd.degs, lt.Mono.TotalDegree())
	return nil
}

func (rd *reducer[E]) len() int { return len(rd.polys) }

// reduce computes the full normal form: reducible leading terms are
// cancelled against the divisor set, irreducible ones move to the remainder
// and are never revisited. Each step strictly decreases the working leading
// monomial, so the loop terminates.
func (rd *reducer[E]) reduce(p poly.Polynomial[E]) (poly.Polynomial[E], error) {
	rem := rd.r.Zero()
	work := p
	for !work.IsZero() {
		lt, err := work.LeadingTerm(rd.o)
		if err != nil {
			return poly.Polynomial[E]{}, err
		}
		ltSup := lt.Mono.Support()
		ltDeg := lt.Mono.TotalDegree()

		reduced := false
		for i := range rd.polys {
			if rd.degs[i] > ltDeg {
				continue
			}
			if !ltSup.IsSuperSet(rd.sups[i]) {
				continue
			}
			if !rd.lts[i].Mono.Divides(lt.Mono) {
				continue
			}
			cofactor := poly.Term[E]{
				Coeff: rd.r.Field().Mul(lt.Coeff, rd.invs[i]),
				Mono:  rd.lts[i].Mono.Quo(lt.Mono),
			}
			work = rd.r.Sub(work, rd.r.MulTerm(rd.polys[i], cofactor))
			reduced = true
			break
		}
		if reduced {
			continue
		}

		t := rd.r.FromTerms([]poly.Term[E]{lt})
		rem = rd.r.Add(rem, t)
		work = rd.r.Sub(work, t)
	}
	return rem, nil
}
