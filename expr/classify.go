package expr

// Kind tags the structure of an equation or system and drives solver
// dispatch.
type Kind uint8

const (
	// Unclassifiable marks structures the solver cannot route: free
	// symbols, division by an unknown, fractional or symbolic exponents,
	// misplaced matrix literals.
	Unclassifiable Kind = iota
	Linear
	Quadratic
	// Polynomial is a single univariate equation of degree three or more.
	Polynomial
	PolynomialSystem
	MatrixEquation
	Transcendental
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Polynomial:
		return "polynomial"
	case PolynomialSystem:
		return "polynomial system"
	case MatrixEquation:
		return "matrix equation"
	case Transcendental:
		return "transcendental"
	default:
		return "unclassifiable"
	}
}

// Classification is the structural tag of a system. Degree is the largest
// structural total degree in the unknowns, computed without simplification,
// so cancellations do not lower it; it is only meaningful for polynomial
// kinds.
type Classification struct {
	Kind   Kind
	Degree int
}

// degreeCap bounds structural degrees so absurd exponent literals cannot
// overflow the computation.
const degreeCap = 1 << 30

type analysis struct {
	degree         int
	transcendental bool
	nonPoly        bool
	matrix         bool
}

func mergeMax(a, b analysis) analysis {
	if b.degree > a.degree {
		a.degree = b.degree
	}
	a.transcendental = a.transcendental || b.transcendental
	a.nonPoly = a.nonPoly || b.nonPoly
	a.matrix = a.matrix || b.matrix
	return a
}

// Classify tags a whole system. Transcendental structure wins over other
// defects; a single equation in a single unknown keeps its degree based tag,
// anything larger is a PolynomialSystem.
func Classify(sys System) Classification {
	if len(sys.Equations) == 0 || len(sys.Unknowns) == 0 {
		return Classification{Kind: Unclassifiable}
	}
	set := unknownSet(sys.Unknowns)

	var anyTrans, anyNonPoly, anyMatrix bool
	maxDeg := 0
	for _, eq := range sys.Equations {
		c := classifyEquation(eq, set)
		switch c.Kind {
		case Transcendental:
			anyTrans = true
		case Unclassifiable:
			anyNonPoly = true
		case MatrixEquation:
			anyMatrix = true
		}
		if c.Degree > maxDeg {
			maxDeg = c.Degree
		}
	}
	switch {
	case anyTrans:
		return Classification{Kind: Transcendental}
	case anyNonPoly:
		return Classification{Kind: Unclassifiable}
	case anyMatrix:
		return Classification{Kind: MatrixEquation, Degree: maxDeg}
	}
	if len(sys.Equations) == 1 && len(sys.Unknowns) == 1 {
		return Classification{Kind: kindForDegree(maxDeg), Degree: maxDeg}
	}
	return Classification{Kind: PolynomialSystem, Degree: maxDeg}
}

// ClassifyEquation tags a single equation against a set of unknowns. The
// degree based kinds ignore how many unknowns appear; Classify promotes
// multivariate input to PolynomialSystem.
func ClassifyEquation(eq Equation, unknowns []string) Classification {
	return classifyEquation(eq, unknownSet(unknowns))
}

func classifyEquation(eq Equation, set map[string]struct{}) Classification {
	la, lMatrix := sideAnalysis(eq.Lhs, set)
	ra, rMatrix := sideAnalysis(eq.Rhs, set)
	a := mergeMax(la, ra)
	switch {
	case a.transcendental:
		return Classification{Kind: Transcendental}
	case a.nonPoly:
		return Classification{Kind: Unclassifiable}
	case lMatrix || rMatrix:
		return Classification{Kind: MatrixEquation, Degree: a.degree}
	default:
		return Classification{Kind: kindForDegree(a.degree), Degree: a.degree}
	}
}

func kindForDegree(d int) Kind {
	switch {
	case d <= 1:
		return Linear
	case d == 2:
		return Quadratic
	default:
		return Polynomial
	}
}

// sideAnalysis walks one side of an equation. A matrix literal is only legal
// as the whole side; nested matrices poison the analysis.
func sideAnalysis(e Expr, set map[string]struct{}) (analysis, bool) {
	if mx, ok := e.(*Matrix); ok {
		var a analysis
		for _, row := range mx.Rows {
			for _, cell := range row {
				ca := walk(cell, set)
				if ca.matrix {
					ca.nonPoly = true
				}
				a = mergeMax(a, ca)
			}
		}
		return a, true
	}
	a := walk(e, set)
	if a.matrix {
		a.nonPoly = true
	}
	return a, false
}

func walk(e Expr, set map[string]struct{}) analysis {
	switch v := e.(type) {
	case *Num:
		return analysis{}
	case *Var:
		if _, ok := set[v.Name]; ok {
			return analysis{degree: 1}
		}
		// free symbol
		return analysis{nonPoly: true}
	case *Add:
		var a analysis
		for _, x := range v.Operands {
			a = mergeMax(a, walk(x, set))
		}
		return a
	case *Mul:
		var a analysis
		for _, x := range v.Operands {
			c := walk(x, set)
			a.degree = capDegree(a.degree + c.degree)
			a.transcendental = a.transcendental || c.transcendental
			a.nonPoly = a.nonPoly || c.nonPoly
			a.matrix = a.matrix || c.matrix
		}
		return a
	case *Pow:
		a := walk(v.Base, set)
		if containsUnknown(v.Exponent, set) {
			a.transcendental = true
			return a
		}
		k, ok := constIntExponent(v.Exponent)
		if !ok {
			a.nonPoly = true
			return a
		}
		a.degree = capDegree(a.degree * k)
		return a
	case *Div:
		a := walk(v.Numerator, set)
		d := walk(v.Denominator, set)
		a.transcendental = a.transcendental || d.transcendental
		a.nonPoly = a.nonPoly || d.nonPoly
		a.matrix = a.matrix || d.matrix
		if containsUnknown(v.Denominator, set) {
			a.nonPoly = true
		}
		return a
	case *Call:
		a := walk(v.Arg, set)
		if containsUnknown(v.Arg, set) {
			a.transcendental = true
		} else {
			// constant transcendental value, not rational
			a.nonPoly = true
		}
		a.degree = 0
		return a
	case *Matrix:
		var a analysis
		for _, row := range v.Rows {
			for _, cell := range row {
				a = mergeMax(a, walk(cell, set))
			}
		}
		a.matrix = true
		return a
	default:
		return analysis{nonPoly: true}
	}
}

func constIntExponent(e Expr) (int, bool) {
	n, ok := e.(*Num)
	if !ok || !n.Val.IsInt() || n.Val.Sign() < 0 {
		return 0, false
	}
	if !n.Val.Num().IsInt64() {
		return degreeCap, true
	}
	k := n.Val.Num().Int64()
	if k > degreeCap {
		return degreeCap, true
	}
	return int(k), true
}

func capDegree(d int) int {
	if d > degreeCap || d < 0 {
		return degreeCap
	}
	return d
}

func containsUnknown(e Expr, set map[string]struct{}) bool {
	switch v := e.(type) {
	case *Num:
		return false
	case *Var:
		_, ok := set[v.Name]
		return ok
	case *Add:
		for _, x := range v.Operands {
			if containsUnknown(x, set) {
				return true
			}
		}
	case *Mul:
		for _, x := range v.Operands {
			if containsUnknown(x, set) {
				return true
			}
		}
	case *Pow:
		return containsUnknown(v.Base, set) || containsUnknown(v.Exponent, set)
	case *Div:
		return containsUnknown(v.Numerator, set) || containsUnknown(v.Denominator, set)
	case *Call:
		return containsUnknown(v.Arg, set)
	case *Matrix:
		for _, row := range v.Rows {
			for _, cell := range row {
				if containsUnknown(cell, set) {
					return true
				}
			}
		}
	}
	return false
}

func unknownSet(unknowns []string) map[string]struct{} {
	set := make(map[string]struct{}, len(unknowns))
	for _, u := range unknowns {
		set[u] = struct{}{}
	}
	return set
}
