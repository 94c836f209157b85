// Package groebner provides exact polynomial system solving through Groebner bases and a high level API to classify and dispatch equations.
//
// groebner supports the following monomial orders:
//   - Lex
//   - GrevLex
//
// groebner supports the following coefficient fields:
//   - Q (rationals, the default)
//   - BN254 (scalar field)
//   - BabyBear
//   - KoalaBear
package groebner

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")

// Fields return the coefficient field identifiers supported by groebner
func Fields() []string {
	return []string{
		"q",
		"bn254",
		"babybear",
		"koalabear",
	}
}
