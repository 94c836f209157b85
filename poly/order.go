package poly

// Order is a monomial order. It decides which term of a polynomial leads,
// and with it the whole shape of a Groebner basis computation.
type Order uint8

const (
	// Lex compares exponents along the variable priority; the first
	// differing position decides. It is the elimination order used for
	// solution extraction by back substitution.
	Lex Order = iota

	// GrevLex compares total degrees first; on ties it scans positions in
	// reverse priority order and the monomial with the smaller exponent at
	// the first difference is the greater one. Bases are usually cheaper
	// to compute under GrevLex than under Lex.
	GrevLex
)

func (o Order) String() string {
	switch o {
	case Lex:
		return "lex"
	case GrevLex:
		return "grevlex"
	default:
		return "unknown"
	}
}

// Compare returns 1 if a is greater than b under o, -1 if smaller and 0 if
// equal. Monomials of different lengths are compared as if the shorter one
// were padded with zero exponents.
func (o Order) Compare(a, b Monomial) int {
	switch o {
	case GrevLex:
		da, db := a.TotalDegree(), b.TotalDegree()
		if da != db {
			if da > db {
				return 1
			}
			return -1
		}
		n := maxLen(a, b)
		for i := n - 1; i >= 0; i-- {
			x, y := a.at(i), b.at(i)
			if x != y {
				if x < y {
					return 1
				}
				return -1
			}
		}
		return 0
	default:
		return a.Cmp(b)
	}
}
