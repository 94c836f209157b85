package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/consensys/groebner/field"
	"github.com/consensys/groebner/poly"
)

// ErrNotPolynomial is returned when an expression cannot be lowered to a
// polynomial: free symbols, transcendental calls, division by unknowns,
// fractional or negative exponents, misplaced matrix literals.
var ErrNotPolynomial = errors.New("expr: not a polynomial")

// ToPolynomial lowers e into the ring. Every symbol of e must be a ring
// variable and the structure must be polynomial, otherwise it fails with
// ErrNotPolynomial.
func ToPolynomial[E any](r *poly.Ring[E], e Expr) (poly.Polynomial[E], error) {
	c := newConverter(r)
	return c.convert(e)
}

// EquationPolynomial lowers lhs = rhs into the ring element lhs - rhs.
func EquationPolynomial[E any](r *poly.Ring[E], eq Equation) (poly.Polynomial[E], error) {
	c := newConverter(r)
	lhs, err := c.convert(eq.Lhs)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}
	rhs, err := c.convert(eq.Rhs)
	if err != nil {
		return poly.Polynomial[E]{}, err
	}
	return r.Sub(lhs, rhs), nil
}

// SystemPolynomials lowers every equation of sys into the ring. Errors carry
// the index of the offending equation.
func SystemPolynomials[E any](r *poly.Ring[E], sys System) ([]poly.Polynomial[E], error) {
	c := newConverter(r)
	out := make([]poly.Polynomial[E], len(sys.Equations))
	for i, eq := range sys.Equations {
		lhs, err := c.convert(eq.Lhs)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i, err)
		}
		rhs, err := c.convert(eq.Rhs)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i, err)
		}
		out[i] = r.Sub(lhs, rhs)
	}
	return out, nil
}

// FlattenMatrixEquations rewrites every matrix equation entrywise into
// scalar equations, leaving scalar equations untouched. Both sides of a
// matrix equation must be matrix literals of identical rectangular shape.
func FlattenMatrixEquations(sys System) (System, error) {
	out := System{Unknowns: sys.Unknowns}
	for i, eq := range sys.Equations {
		lm, lOK := eq.Lhs.(*Matrix)
		rm, rOK := eq.Rhs.(*Matrix)
		switch {
		case !lOK && !rOK:
			out.Equations = append(out.Equations, eq)
		case lOK != rOK:
			return System{}, fmt.Errorf("equation %d: matrix equated to scalar", i)
		default:
			lr, lc, err := matrixShape(lm)
			if err != nil {
				return System{}, fmt.Errorf("equation %d: %w", i, err)
			}
			rr, rc, err := matrixShape(rm)
			if err != nil {
				return System{}, fmt.Errorf("equation %d: %w", i, err)
			}
			if lr != rr || lc != rc {
				return System{}, fmt.Errorf("equation %d: matrix shapes %dx%d and %dx%d differ", i, lr, lc, rr, rc)
			}
			for r := 0; r < lr; r++ {
				for c := 0; c < lc; c++ {
					out.Equations = append(out.Equations, Eq(lm.Rows[r][c], rm.Rows[r][c]))
				}
			}
		}
	}
	return out, nil
}

func matrixShape(m *Matrix) (rows, cols int, err error) {
	if len(m.Rows) == 0 || len(m.Rows[0]) == 0 {
		return 0, 0, errors.New("empty matrix")
	}
	cols = len(m.Rows[0])
	for _, row := range m.Rows {
		if len(row) != cols {
			return 0, 0, errors.New("ragged matrix")
		}
	}
	return len(m.Rows), cols, nil
}

type converter[E any] struct {
	r   *poly.Ring[E]
	idx map[string]int
}

func newConverter[E any](r *poly.Ring[E]) converter[E] {
	idx := make(map[string]int, r.NbVars())
	for i, v := range r.Vars() {
		idx[v] = i
	}
	return converter[E]{r: r, idx: idx}
}

func (c converter[E]) convert(e Expr) (poly.Polynomial[E], error) {
	var zero poly.Polynomial[E]
	switch v := e.(type) {
	case *Num:
		coeff, err := c.r.Field().FromRat(v.Val)
		if err != nil {
			return zero, fmt.Errorf("literal %s: %w", v.Val.RatString(), err)
		}
		return c.r.Constant(coeff), nil

	case *Var:
		i, ok := c.idx[v.Name]
		if !ok {
			return zero, fmt.Errorf("%w: free symbol %q", ErrNotPolynomial, v.Name)
		}
		return c.r.Variable(i), nil

	case *Add:
		acc := c.r.Zero()
		for _, x := range v.Operands {
			p, err := c.convert(x)
			if err != nil {
				return zero, err
			}
			acc = c.r.Add(acc, p)
		}
		return acc, nil

	case *Mul:
		acc := c.r.One()
		for _, x := range v.Operands {
			p, err := c.convert(x)
			if err != nil {
				return zero, err
			}
			acc = c.r.Mul(acc, p)
		}
		return acc, nil

	case *Pow:
		k, err := c.exponent(v.Exponent)
		if err != nil {
			return zero, err
		}
		base, err := c.convert(v.Base)
		if err != nil {
			return zero, err
		}
		return c.r.Pow(base, k), nil

	case *Div:
		den, err := c.convert(v.Denominator)
		if err != nil {
			return zero, err
		}
		if !den.IsConstant() {
			return zero, fmt.Errorf("%w: division by expression in unknowns", ErrNotPolynomial)
		}
		if den.IsZero() {
			return zero, fmt.Errorf("%w: constant denominator is zero", field.ErrDivisionByZero)
		}
		inv, err := c.r.Field().Inverse(den.Term(0).Coeff)
		if err != nil {
			return zero, err
		}
		num, err := c.convert(v.Numerator)
		if err != nil {
			return zero, err
		}
		return c.r.MulScalar(num, inv), nil

	case *Call:
		return zero, fmt.Errorf("%w: transcendental function %s", ErrNotPolynomial, v.Fn)

	case *Matrix:
		return zero, fmt.Errorf("%w: matrix literal in scalar context", ErrNotPolynomial)

	default:
		return zero, fmt.Errorf("%w: unsupported expression", ErrNotPolynomial)
	}
}

func (c converter[E]) exponent(e Expr) (uint32, error) {
	n, ok := e.(*Num)
	if !ok {
		return 0, fmt.Errorf("%w: exponent %s is not an integer constant", ErrNotPolynomial, e)
	}
	switch {
	case !n.Val.IsInt():
		return 0, fmt.Errorf("%w: fractional exponent %s", ErrNotPolynomial, n.Val.RatString())
	case n.Val.Sign() < 0:
		return 0, fmt.Errorf("%w: negative exponent %s", ErrNotPolynomial, n.Val.RatString())
	case !n.Val.Num().IsInt64() || n.Val.Num().Int64() > math.MaxUint32:
		return 0, fmt.Errorf("exponent %s out of range", n.Val.RatString())
	}
	return uint32(n.Val.Num().Int64()), nil
}
