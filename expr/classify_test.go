package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyUnivariate(t *testing.T) {
	assert := assert.New(t)

	x := []string{"x"}

	c := Classify(NewSystem(x, Eq(AddOf(MulOf(N(2), V("x")), N(3)), N(0))))
	assert.Equal(Linear, c.Kind)
	assert.Equal(1, c.Degree)

	c = Classify(NewSystem(x, Eq(PowOf(V("x"), N(2)), N(4))))
	assert.Equal(Quadratic, c.Kind)
	assert.Equal(2, c.Degree)

	c = Classify(NewSystem(x, Eq(PowOf(V("x"), N(3)), N(8))))
	assert.Equal(Polynomial, c.Kind)
	assert.Equal(3, c.Degree)

	// constant equations are routed with the linear machinery
	c = Classify(NewSystem(x, Eq(N(1), N(2))))
	assert.Equal(Linear, c.Kind)
	assert.Equal(0, c.Degree)
}

func TestClassifySystem(t *testing.T) {
	assert := assert.New(t)

	// x^2 + y^2 = 1, x - y = 0
	sys := NewSystem([]string{"x", "y"},
		Eq(AddOf(PowOf(V("x"), N(2)), PowOf(V("y"), N(2))), N(1)),
		Eq(SubOf(V("x"), V("y")), N(0)),
	)
	c := Classify(sys)
	assert.Equal(PolynomialSystem, c.Kind)
	assert.Equal(2, c.Degree)

	// a single multivariate equation is a system too
	c = Classify(NewSystem([]string{"x", "y"}, Eq(AddOf(V("x"), V("y")), N(1))))
	assert.Equal(PolynomialSystem, c.Kind)
	assert.Equal(1, c.Degree)
}

func TestClassifyStructuralDegreeIgnoresCancellation(t *testing.T) {
	// (x^2 + x) - x^2 simplifies to x but the structural degree stays 2
	c := Classify(NewSystem([]string{"x"},
		Eq(AddOf(PowOf(V("x"), N(2)), V("x"), Neg(PowOf(V("x"), N(2)))), N(0)),
	))
	assert.Equal(t, Quadratic, c.Kind)
	assert.Equal(t, 2, c.Degree)
}

func TestClassifyTranscendental(t *testing.T) {
	assert := assert.New(t)

	// sin(x) + x^2 = 0
	c := Classify(NewSystem([]string{"x"},
		Eq(AddOf(CallOf(Sin, V("x")), PowOf(V("x"), N(2))), N(0)),
	))
	assert.Equal(Transcendental, c.Kind)

	// unknown in the exponent
	c = Classify(NewSystem([]string{"x", "y"}, Eq(PowOf(V("x"), V("y")), N(1))))
	assert.Equal(Transcendental, c.Kind)

	// transcendental beats other defects anywhere in the system
	c = Classify(NewSystem([]string{"x"},
		Eq(V("a"), N(0)),
		Eq(CallOf(Exp, V("x")), N(1)),
	))
	assert.Equal(Transcendental, c.Kind)
}

func TestClassifyUnclassifiable(t *testing.T) {
	assert := assert.New(t)

	// division by an unknown
	c := Classify(NewSystem([]string{"x"}, Eq(DivOf(N(1), V("x")), N(2))))
	assert.Equal(Unclassifiable, c.Kind)

	// fractional exponent
	c = Classify(NewSystem([]string{"x"}, Eq(PowOf(V("x"), F(1, 2)), N(2))))
	assert.Equal(Unclassifiable, c.Kind)

	// negative exponent
	c = Classify(NewSystem([]string{"x"}, Eq(PowOf(V("x"), N(-1)), N(2))))
	assert.Equal(Unclassifiable, c.Kind)

	// free symbol
	c = Classify(NewSystem([]string{"x"}, Eq(MulOf(V("a"), V("x")), N(1))))
	assert.Equal(Unclassifiable, c.Kind)

	// constant transcendental value
	c = Classify(NewSystem([]string{"x"}, Eq(AddOf(V("x"), CallOf(Sqrt, N(2))), N(0))))
	assert.Equal(Unclassifiable, c.Kind)

	// empty input
	assert.Equal(Unclassifiable, Classify(System{}).Kind)
	assert.Equal(Unclassifiable, Classify(NewSystem(nil, Eq(V("x"), N(1)))).Kind)
}

func TestClassifyMatrix(t *testing.T) {
	assert := assert.New(t)

	lhs := MatrixOf([][]Expr{
		{V("x"), N(1)},
		{N(0), V("y")},
	})
	rhs := MatrixOf([][]Expr{
		{N(2), N(1)},
		{N(0), N(5)},
	})
	c := Classify(NewSystem([]string{"x", "y"}, Eq(lhs, rhs)))
	assert.Equal(MatrixEquation, c.Kind)
	assert.Equal(1, c.Degree)

	// a matrix buried inside a scalar expression is not routable
	c = Classify(NewSystem([]string{"x"},
		Eq(AddOf(MatrixOf([][]Expr{{V("x")}}), N(1)), N(0)),
	))
	assert.Equal(Unclassifiable, c.Kind)

	// nested matrix literal inside an entry
	c = Classify(NewSystem([]string{"x"},
		Eq(MatrixOf([][]Expr{{MatrixOf([][]Expr{{V("x")}})}}), MatrixOf([][]Expr{{N(1)}})),
	))
	assert.Equal(Unclassifiable, c.Kind)
}

func TestClassifyEquationStandalone(t *testing.T) {
	c := ClassifyEquation(Eq(PowOf(V("x"), N(2)), V("y")), []string{"x", "y"})
	assert.Equal(t, Quadratic, c.Kind)
	assert.Equal(t, 2, c.Degree)
}

func TestKindString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("linear", Linear.String())
	assert.Equal("quadratic", Quadratic.String())
	assert.Equal("polynomial", Polynomial.String())
	assert.Equal("polynomial system", PolynomialSystem.String())
	assert.Equal("matrix equation", MatrixEquation.String())
	assert.Equal("transcendental", Transcendental.String())
	assert.Equal("unclassifiable", Unclassifiable.String())
}
