package roots

import (
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/consensys/groebner/poly"
)

// rrtMaxCoeff bounds the trailing and leading integer coefficients for which
// rational root candidates are enumerated by trial division.
const rrtMaxCoeff = int64(1_000_000_000_000)

// rrtMaxCandidates bounds the size of the candidate set p/q.
const rrtMaxCandidates = 10_000

// Rational finds roots of univariate polynomials with rational coefficients.
//
// Rational roots are returned exactly with their multiplicities. Irrational
// real roots are approximated by bisection and flagged inexact; their
// reported multiplicity comes from numeric derivative counting.
type Rational struct{}

// NewRational returns the root finder over the rationals.
func NewRational() Rational { return Rational{} }

func (Rational) FindRoots(coeffs []*big.Rat) ([]Root[*big.Rat], error) {
	cs := trimHigh(coeffs)
	if len(cs) == 0 {
		return nil, fmt.Errorf("finding roots: %w", poly.ErrEmptyPolynomial)
	}
	if len(cs) == 1 {
		// nonzero constant, no roots
		return nil, nil
	}

	var found []Root[*big.Rat]

	// strip x^k
	k := 0
	for cs[k].Sign() == 0 {
		k++
	}
	if k > 0 {
		found = append(found, Root[*big.Rat]{Value: new(big.Rat), Multiplicity: k, Exact: true})
		cs = cs[k:]
	}

	// exact rational roots by trial of p/q candidates, fully deflated
	if len(cs) > 1 {
		var exact []Root[*big.Rat]
		exact, cs = rationalRoots(cs)
		found = append(found, exact...)
	}

	switch deg := len(cs) - 1; {
	case deg <= 0:
		// fully factored
	case deg == 1:
		v := new(big.Rat).Neg(new(big.Rat).Quo(cs[0], cs[1]))
		found = append(found, Root[*big.Rat]{Value: v, Multiplicity: 1, Exact: true})
	case deg == 2:
		qr, err := quadraticRoots(cs)
		if err != nil {
			return nil, err
		}
		found = append(found, qr...)
	default:
		irr, err := irrationalRoots(cs)
		if err != nil {
			return nil, err
		}
		found = append(found, irr...)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Value.Cmp(found[j].Value) < 0 })
	return found, nil
}

// trimHigh drops zero coefficients above the true degree.
func trimHigh(coeffs []*big.Rat) []*big.Rat {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	return coeffs[:n]
}

// rationalRoots tries every candidate p/q with p dividing the trailing and q
// the leading integer coefficient, deflating the polynomial for each root
// found. It returns the roots and the deflated polynomial.
func rationalRoots(cs []*big.Rat) ([]Root[*big.Rat], []*big.Rat) {
	num := integerize(cs)
	if num == nil {
		return nil, cs
	}

	ps, ok := divisors(num[0])
	if !ok {
		return nil, cs
	}
	qs, ok := divisors(num[len(num)-1])
	if !ok {
		return nil, cs
	}
	if len(ps)*len(qs) > rrtMaxCandidates {
		return nil, cs
	}

	seen := make(map[string]struct{})
	var candidates []*big.Rat
	for _, p := range ps {
		for _, q := range qs {
			for _, sign := range []int64{1, -1} {
				c := big.NewRat(sign*p, q)
				key := c.RatString()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				candidates = append(candidates, c)
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Cmp(candidates[j]) < 0 })

	var found []Root[*big.Rat]
	for _, c := range candidates {
		if len(cs) <= 1 {
			break
		}
		mult := 0
		for len(cs) > 1 {
			quot, rem := synthDiv(cs, c)
			if rem.Sign() != 0 {
				break
			}
			mult++
			cs = quot
		}
		if mult > 0 {
			found = append(found, Root[*big.Rat]{Value: c, Multiplicity: mult, Exact: true})
		}
	}
	return found, cs
}

// integerize scales the coefficients to integers. It gives up when the
// extreme coefficients are too large to enumerate divisors.
func integerize(cs []*big.Rat) []*big.Int {
	lcm := big.NewInt(1)
	for _, c := range cs {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}
	out := make([]*big.Int, len(cs))
	for i, c := range cs {
		v := new(big.Int).Mul(c.Num(), lcm)
		v.Div(v, c.Denom())
		out[i] = v
	}
	for _, edge := range []*big.Int{out[0], out[len(out)-1]} {
		if !edge.IsInt64() {
			return nil
		}
		if v := edge.Int64(); v > rrtMaxCoeff || v < -rrtMaxCoeff {
			return nil
		}
	}
	return out
}

func divisors(v *big.Int) ([]int64, bool) {
	n := v.Int64()
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return nil, false
	}
	var divs []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			divs = append(divs, d)
			if q := n / d; q != d {
				divs = append(divs, q)
			}
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i] < divs[j] })
	return divs, true
}

// synthDiv divides by (x - r), returning the quotient and remainder.
func synthDiv(cs []*big.Rat, r *big.Rat) ([]*big.Rat, *big.Rat) {
	n := len(cs)
	quot := make([]*big.Rat, n-1)
	acc := new(big.Rat).Set(cs[n-1])
	for i := n - 2; i >= 0; i-- {
		quot[i] = new(big.Rat).Set(acc)
		acc = new(big.Rat).Add(cs[i], new(big.Rat).Mul(acc, r))
	}
	return quot, acc
}

// quadraticRoots solves a degree two polynomial exactly when the
// discriminant is a perfect square, approximately otherwise.
func quadraticRoots(cs []*big.Rat) ([]Root[*big.Rat], error) {
	a, b, c := cs[2], cs[1], cs[0]
	disc := new(big.Rat).Sub(
		new(big.Rat).Mul(b, b),
		new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)),
	)
	switch disc.Sign() {
	case -1:
		return nil, nil
	case 0:
		v := new(big.Rat).Quo(new(big.Rat).Neg(b), new(big.Rat).Mul(big.NewRat(2, 1), a))
		return []Root[*big.Rat]{{Value: v, Multiplicity: 2, Exact: true}}, nil
	}

	twoA := new(big.Rat).Mul(big.NewRat(2, 1), a)
	if s, ok := sqrtRat(disc); ok {
		r1 := new(big.Rat).Quo(new(big.Rat).Sub(new(big.Rat).Neg(b), s), twoA)
		r2 := new(big.Rat).Quo(new(big.Rat).Add(new(big.Rat).Neg(b), s), twoA)
		return []Root[*big.Rat]{
			{Value: r1, Multiplicity: 1, Exact: true},
			{Value: r2, Multiplicity: 1, Exact: true},
		}, nil
	}

	// irrational pair
	bf, _ := b.Float64()
	df, _ := disc.Float64()
	tf, _ := twoA.Float64()
	s := math.Sqrt(df)
	lo, hi := (-bf-s)/tf, (-bf+s)/tf
	if math.IsInf(lo, 0) || math.IsNaN(lo) || math.IsInf(hi, 0) || math.IsNaN(hi) {
		return nil, fmt.Errorf("%w: coefficients overflow the float range", ErrUnsupported)
	}
	return []Root[*big.Rat]{
		{Value: new(big.Rat).SetFloat64(lo), Multiplicity: 1, Exact: false},
		{Value: new(big.Rat).SetFloat64(hi), Multiplicity: 1, Exact: false},
	}, nil
}

// sqrtRat returns the exact square root of r when both numerator and
// denominator are perfect squares.
func sqrtRat(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	n := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(n, n).Cmp(r.Num()) != 0 {
		return nil, false
	}
	d := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(d, d).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(n, d), true
}

// irrationalRoots approximates the real roots of a polynomial of degree at
// least three that has no rational roots left. The square free part is
// computed exactly, then bisection walks the intervals cut by the roots of
// the derivative.
func irrationalRoots(cs []*big.Rat) ([]Root[*big.Rat], error) {
	sf := squareFree(cs)
	fl, ok := toFloats(sf)
	if !ok {
		return nil, fmt.Errorf("%w: coefficients overflow the float range", ErrUnsupported)
	}
	values := realRootsFloat(fl)

	out := make([]Root[*big.Rat], 0, len(values))
	for _, v := range values {
		out = append(out, Root[*big.Rat]{
			Value:        new(big.Rat).SetFloat64(v),
			Multiplicity: multiplicityAt(cs, v),
			Exact:        false,
		})
	}
	return out, nil
}

// squareFree returns cs divided by gcd(cs, cs'), computed exactly.
func squareFree(cs []*big.Rat) []*big.Rat {
	g := polyGCD(cs, derivRat(cs))
	if len(g) <= 1 {
		return cs
	}
	q, _ := polyDivMod(cs, g)
	return q
}

func derivRat(cs []*big.Rat) []*big.Rat {
	if len(cs) <= 1 {
		return []*big.Rat{new(big.Rat)}
	}
	out := make([]*big.Rat, len(cs)-1)
	for i := 1; i < len(cs); i++ {
		out[i-1] = new(big.Rat).Mul(cs[i], new(big.Rat).SetInt64(int64(i)))
	}
	return out
}

// polyGCD runs the Euclidean algorithm with monic normalization at each
// step; the result is monic.
func polyGCD(a, b []*big.Rat) []*big.Rat {
	a, b = trimHigh(a), trimHigh(b)
	for len(b) > 0 {
		_, rem := polyDivMod(a, b)
		a, b = b, trimHigh(rem)
	}
	return makeMonic(a)
}

// polyDivMod divides a by b with exact rational arithmetic.
func polyDivMod(a, b []*big.Rat) (quot, rem []*big.Rat) {
	b = trimHigh(b)
	rem = make([]*big.Rat, len(a))
	for i, c := range a {
		rem[i] = new(big.Rat).Set(c)
	}
	if len(rem) < len(b) {
		return []*big.Rat{new(big.Rat)}, rem
	}
	quot = make([]*big.Rat, len(rem)-len(b)+1)
	for i := range quot {
		quot[i] = new(big.Rat)
	}
	lead := b[len(b)-1]
	for d := len(rem) - 1; d >= len(b)-1; d-- {
		if rem[d].Sign() == 0 {
			continue
		}
		q := new(big.Rat).Quo(rem[d], lead)
		quot[d-len(b)+1] = q
		for j := 0; j < len(b); j++ {
			idx := d - len(b) + 1 + j
			rem[idx] = new(big.Rat).Sub(rem[idx], new(big.Rat).Mul(q, b[j]))
		}
	}
	return quot, rem[:len(b)-1]
}

func makeMonic(cs []*big.Rat) []*big.Rat {
	cs = trimHigh(cs)
	if len(cs) == 0 {
		return cs
	}
	lead := cs[len(cs)-1]
	out := make([]*big.Rat, len(cs))
	for i, c := range cs {
		out[i] = new(big.Rat).Quo(c, lead)
	}
	return out
}

func toFloats(cs []*big.Rat) ([]float64, bool) {
	out := make([]float64, len(cs))
	for i, c := range cs {
		f, _ := c.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// realRootsFloat returns the real roots of a square free polynomial, sorted.
// The roots of the derivative split the line into monotonic intervals, each
// holding at most one root.
func realRootsFloat(cs []float64) []float64 {
	cs = trimFloat(cs)
	deg := len(cs) - 1
	if deg <= 0 {
		return nil
	}
	if deg == 1 {
		return []float64{-cs[0] / cs[1]}
	}

	breaks := realRootsFloat(derivFloat(cs))
	bound := cauchyBound(cs)
	points := make([]float64, 0, len(breaks)+2)
	points = append(points, -bound)
	points = append(points, breaks...)
	points = append(points, bound)
	sort.Float64s(points)

	var out []float64
	for i := 0; i+1 < len(points); i++ {
		lo, hi := points[i], points[i+1]
		if lo == hi {
			continue
		}
		flo, fhi := horner(cs, lo), horner(cs, hi)
		switch {
		case flo == 0:
			out = appendRoot(out, lo)
		case fhi == 0:
			out = appendRoot(out, hi)
		case (flo < 0) != (fhi < 0):
			out = appendRoot(out, bisect(cs, lo, hi))
		}
	}
	sort.Float64s(out)
	return out
}

func bisect(cs []float64, lo, hi float64) float64 {
	flo := horner(cs, lo)
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			break
		}
		fm := horner(cs, mid)
		if fm == 0 {
			return mid
		}
		if (flo < 0) == (fm < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func appendRoot(out []float64, v float64) []float64 {
	for _, r := range out {
		if math.Abs(r-v) <= 1e-9*(1+math.Abs(v)) {
			return out
		}
	}
	return append(out, v)
}

func horner(cs []float64, x float64) float64 {
	acc := 0.0
	for i := len(cs) - 1; i >= 0; i-- {
		acc = acc*x + cs[i]
	}
	return acc
}

func derivFloat(cs []float64) []float64 {
	if len(cs) <= 1 {
		return nil
	}
	out := make([]float64, len(cs)-1)
	for i := 1; i < len(cs); i++ {
		out[i-1] = cs[i] * float64(i)
	}
	return out
}

func trimFloat(cs []float64) []float64 {
	n := len(cs)
	for n > 0 && cs[n-1] == 0 {
		n--
	}
	return cs[:n]
}

// cauchyBound returns 1 + max |c_i / c_deg|, which bounds every real root in
// absolute value.
func cauchyBound(cs []float64) float64 {
	lead := math.Abs(cs[len(cs)-1])
	maxRatio := 0.0
	for _, c := range cs[:len(cs)-1] {
		if r := math.Abs(c) / lead; r > maxRatio {
			maxRatio = r
		}
	}
	return 1 + maxRatio
}

// multiplicityAt counts how many successive derivatives of cs vanish at x,
// numerically.
func multiplicityAt(cs []*big.Rat, x float64) int {
	fl, ok := toFloats(cs)
	if !ok {
		return 1
	}
	mult := 0
	for len(fl) > 1 {
		if relResidual(fl, x) > 1e-5 {
			break
		}
		mult++
		fl = derivFloat(fl)
	}
	if mult == 0 {
		mult = 1
	}
	return mult
}

// relResidual is |p(x)| scaled by the magnitude of the largest coefficient
// contribution, so the vanishing test is dimensionless.
func relResidual(cs []float64, x float64) float64 {
	val := horner(cs, x)
	scale := 0.0
	xa := math.Max(1, math.Abs(x))
	pow := 1.0
	for _, c := range cs {
		if m := math.Abs(c) * pow; m > scale {
			scale = m
		}
		pow *= xa
	}
	if scale == 0 {
		return 0
	}
	return math.Abs(val) / scale
}
