package solver

import (
	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
)

// linearRows converts polynomials of total degree at most one into rows of
// the augmented matrix [a_0 ... a_{n-1} | b] representing sum a_i*x_i = b.
// It reports false when some polynomial has a higher degree; the caller
// then falls back to the general pipeline.
func linearRows[E any](r *poly.Ring[E], polys []poly.Polynomial[E]) ([][]E, bool) {
	f := r.Field()
	n := r.NbVars()
	rows := make([][]E, 0, len(polys))
	for _, p := range polys {
		if p.TotalDegree() > 1 {
			return nil, false
		}
		row := make([]E, n+1)
		for i := range row {
			row[i] = f.Zero()
		}
		for i := 0; i < p.NumTerms(); i++ {
			t := p.Term(i)
			if t.Mono.IsUnit() {
				// p = 0 puts the constant on the right hand side
				row[n] = f.Neg(t.Coeff)
				continue
			}
			v, _ := t.Mono.IsPurePower()
			row[v] = t.Coeff
		}
		rows = append(rows, row)
	}
	return rows, true
}

// solveLinear runs exact Gauss-Jordan elimination on the augmented rows.
// It returns the unique solution with StatusExact, or no values with
// StatusNoSolution or StatusInfiniteSolutions.
func solveLinear[E any](f field.Field[E], rows [][]E, n int) ([]E, Status, error) {
	rank := 0
	pivots := make([]int, 0, n)
	for col := 0; col < n && rank < len(rows); col++ {
		sel := -1
		for i := rank; i < len(rows); i++ {
			if !f.IsZero(rows[i][col]) {
				sel = i
				break
			}
		}
		if sel == -1 {
			continue
		}
		rows[rank], rows[sel] = rows[sel], rows[rank]

		inv, err := f.Inverse(rows[rank][col])
		if err != nil {
			return nil, StatusInvalid, err
		}
		for j := col; j <= n; j++ {
			rows[rank][j] = f.Mul(rows[rank][j], inv)
		}
		for i := range rows {
			if i == rank || f.IsZero(rows[i][col]) {
				continue
			}
			factor := rows[i][col]
			for j := col; j <= n; j++ {
				rows[i][j] = f.Sub(rows[i][j], f.Mul(factor, rows[rank][j]))
			}
		}
		pivots = append(pivots, col)
		rank++
	}

	// every remaining row is zero on the left; a nonzero right hand side
	// is a contradiction
	for i := rank; i < len(rows); i++ {
		if !f.IsZero(rows[i][n]) {
			return nil, StatusNoSolution, nil
		}
	}
	if rank < n {
		return nil, StatusInfiniteSolutions, nil
	}

	values := make([]E, n)
	for k, col := range pivots {
		values[col] = rows[k][n]
	}
	return values, StatusExact, nil
}
