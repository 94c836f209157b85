package expr

import "strings"

// Equation is a single input equation lhs = rhs.
type Equation struct {
	Lhs Expr
	Rhs Expr
}

// Eq returns the equation lhs = rhs.
func Eq(lhs, rhs Expr) Equation { return Equation{Lhs: lhs, Rhs: rhs} }

func (e Equation) String() string {
	return e.Lhs.String() + " = " + e.Rhs.String()
}

// System is a set of equations together with the symbols to solve for.
// Symbols not listed in Unknowns are free symbols.
type System struct {
	Equations []Equation
	Unknowns  []string
}

// NewSystem returns a system over the given unknowns.
func NewSystem(unknowns []string, eqs ...Equation) System {
	return System{Equations: eqs, Unknowns: unknowns}
}

func (s System) String() string {
	lines := make([]string, len(s.Equations))
	for i, eq := range s.Equations {
		lines[i] = eq.String()
	}
	return "solve " + strings.Join(lines, ", ") + " for " + strings.Join(s.Unknowns, ", ")
}
