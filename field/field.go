// Package field abstracts the coefficient arithmetic used by the polynomial
// kernel.
//
// The solver is generic over a coefficient field; Q (exact rationals backed
// by math/big) is the default, and adapters over gnark-crypto prime fields
// (BN254 scalar field, BabyBear, KoalaBear) are generated by
// internal/generator.
package field

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when inverting the zero element or when an
// input carries a fraction whose denominator vanishes in the field.
var ErrDivisionByZero = errors.New("field: division by zero")

// Field implements the coefficient arithmetic of a polynomial ring.
//
// Implementations must be stateless and non mutating; operations return
// fresh elements and never modify their operands, so coefficients can be
// shared freely between polynomials and goroutines.
type Field[E any] interface {
	// Name identifies the field in cache keys, serialized bases and logs.
	Name() string

	Zero() E
	One() E
	FromInt64(v int64) E

	// FromRat maps an exact rational into the field. Prime field
	// implementations fail with ErrDivisionByZero when the denominator is
	// a multiple of the modulus.
	FromRat(r *big.Rat) (E, error)

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E

	// Inverse fails with ErrDivisionByZero on the zero element.
	Inverse(a E) (E, error)

	IsZero(a E) bool
	IsOne(a E) bool
	Equal(a, b E) bool

	// IsApproxZero reports whether a vanishes up to the field working
	// tolerance. Exact fields alias IsZero; the rational field tolerates
	// small residues left by approximated roots.
	IsApproxZero(a E) bool

	String(a E) string

	// Marshal returns the canonical byte representation of a, used for
	// cache keys and serialized bases. Unmarshal is its inverse.
	Marshal(a E) []byte
	Unmarshal(data []byte) (E, error)
}
