// Package debug holds the build-time debug flag shared by groebner components.
//
// Building with the "debug" tag enables expensive internal invariant checks
// (for example exponent vector length checks in the polynomial ring) and
// keeps logging enabled when running under "go test".
package debug
