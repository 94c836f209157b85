// Package expr models the input language of the solver: symbolic equations
// over numbers, variables, arithmetic, integer powers, function calls and
// matrix literals.
//
// Expressions are plain immutable trees. The package classifies a system by
// structure (see Classify) and lowers polynomial equations into poly ring
// elements (see SystemPolynomials); it performs no symbolic simplification.
package expr

import (
	"math/big"
	"strings"
)

// Func identifies a transcendental function in a Call node.
type Func uint8

const (
	Sin Func = iota
	Cos
	Tan
	Exp
	Log
	Sqrt
)

func (f Func) String() string {
	switch f {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	case Exp:
		return "exp"
	case Log:
		return "log"
	case Sqrt:
		return "sqrt"
	default:
		return "unknown"
	}
}

// Expr is a node of the input expression tree.
type Expr interface {
	String() string
	isExpr()
}

// Num is an exact rational literal.
type Num struct {
	Val *big.Rat
}

// Var is a symbol, either an unknown of the system or a free symbol.
type Var struct {
	Name string
}

// Add is an n-ary sum.
type Add struct {
	Operands []Expr
}

// Mul is an n-ary product.
type Mul struct {
	Operands []Expr
}

// Pow raises Base to Exponent.
type Pow struct {
	Base     Expr
	Exponent Expr
}

// Div divides Numerator by Denominator.
type Div struct {
	Numerator   Expr
	Denominator Expr
}

// Call applies a transcendental function to an argument.
type Call struct {
	Fn  Func
	Arg Expr
}

// Matrix is a dense matrix literal given row by row.
type Matrix struct {
	Rows [][]Expr
}

func (*Num) isExpr()    {}
func (*Var) isExpr()    {}
func (*Add) isExpr()    {}
func (*Mul) isExpr()    {}
func (*Pow) isExpr()    {}
func (*Div) isExpr()    {}
func (*Call) isExpr()   {}
func (*Matrix) isExpr() {}

// N returns the integer literal v.
func N(v int64) Expr { return &Num{Val: new(big.Rat).SetInt64(v)} }

// F returns the fraction num/den.
func F(num, den int64) Expr { return &Num{Val: big.NewRat(num, den)} }

// Rat returns the rational literal r.
func Rat(r *big.Rat) Expr { return &Num{Val: new(big.Rat).Set(r)} }

// V returns the symbol name.
func V(name string) Expr { return &Var{Name: name} }

// AddOf returns the sum of xs.
func AddOf(xs ...Expr) Expr { return &Add{Operands: xs} }

// MulOf returns the product of xs.
func MulOf(xs ...Expr) Expr { return &Mul{Operands: xs} }

// PowOf returns base raised to exponent.
func PowOf(base, exponent Expr) Expr { return &Pow{Base: base, Exponent: exponent} }

// DivOf returns num divided by den.
func DivOf(num, den Expr) Expr { return &Div{Numerator: num, Denominator: den} }

// CallOf returns fn applied to arg.
func CallOf(fn Func, arg Expr) Expr { return &Call{Fn: fn, Arg: arg} }

// MatrixOf returns a matrix literal from rows.
func MatrixOf(rows [][]Expr) Expr { return &Matrix{Rows: rows} }

// Neg returns -x.
func Neg(x Expr) Expr { return MulOf(N(-1), x) }

// SubOf returns a - b.
func SubOf(a, b Expr) Expr { return AddOf(a, Neg(b)) }

func (e *Num) String() string { return e.Val.RatString() }

func (e *Var) String() string { return e.Name }

func (e *Add) String() string {
	parts := make([]string, len(e.Operands))
	for i, x := range e.Operands {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (e *Mul) String() string {
	parts := make([]string, len(e.Operands))
	for i, x := range e.Operands {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

func (e *Pow) String() string {
	return "(" + e.Base.String() + "^" + e.Exponent.String() + ")"
}

func (e *Div) String() string {
	return "(" + e.Numerator.String() + " / " + e.Denominator.String() + ")"
}

func (e *Call) String() string {
	return e.Fn.String() + "(" + e.Arg.String() + ")"
}

func (e *Matrix) String() string {
	rows := make([]string, len(e.Rows))
	for i, row := range e.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		rows[i] = "[" + strings.Join(cells, ", ") + "]"
	}
	return "[" + strings.Join(rows, "; ") + "]"
}
