package field

import (
	"fmt"
	"math/big"
)

// approxZeroBound is the residue tolerance of Q.IsApproxZero; values derived
// from bisection roots carry errors well below it.
var approxZeroBound = big.NewRat(1, 100_000_000)

// Q is the field of rational numbers, backed by math/big.Rat.
//
// Q is the default coefficient field of the solver. Elements are arbitrary
// precision, so arithmetic is exact and never overflows.
type Q struct{}

// NewQ returns the rational coefficient field.
func NewQ() Q { return Q{} }

func (Q) Name() string { return "q" }

func (Q) Zero() *big.Rat { return new(big.Rat) }

func (Q) One() *big.Rat { return big.NewRat(1, 1) }

func (Q) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

func (Q) FromRat(r *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(r), nil
}

func (Q) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Q) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (Q) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Q) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Q) Inverse(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Inv(a), nil
}

func (Q) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

func (Q) IsOne(a *big.Rat) bool { return a.Cmp(oneRat) == 0 }

func (Q) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Q) IsApproxZero(a *big.Rat) bool {
	if a.Sign() == 0 {
		return true
	}
	return new(big.Rat).Abs(a).Cmp(approxZeroBound) < 0
}

func (Q) String(a *big.Rat) string { return a.RatString() }

func (Q) Marshal(a *big.Rat) []byte {
	// big.Rat gob encoding is version tagged and stable
	b, err := a.GobEncode()
	if err != nil {
		// only fails on a nil receiver
		panic(fmt.Sprintf("marshaling rational: %v", err))
	}
	return b
}

func (Q) Unmarshal(data []byte) (*big.Rat, error) {
	r := new(big.Rat)
	if err := r.GobDecode(data); err != nil {
		return nil, fmt.Errorf("unmarshaling rational: %w", err)
	}
	return r, nil
}

var oneRat = big.NewRat(1, 1)
