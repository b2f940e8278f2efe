// Multiplicative inversion of a trimmed, non-zero multiseries.
//
// Outline for the series case with leading term (e0, c0) and tail r:
//  1. ic0 := Invert(c0)            — recursion on strictly smaller depth.
//  2. g   := MulMonomial(r, ic0, -e0)
//     — the tail normalized against the leading monomial. Every
//     exponent of r is < e0, so g's leading exponent is < 0: the
//     normalized remainder tends to zero by construction.
//  3. result := MulMonomial(Apply(Geometric(), g), ic0, -e0)
//     — 1/(c0·b^e0·(1+g)) unfolded through the geometric series.
//
// The cycle with Apply/Mul is broken exactly as step 2 suggests: the
// remainder g is constructed explicitly before any recursive use, and
// the series case recurses at the SAME depth only through Apply, whose
// negative-leading-exponent precondition g satisfies by construction.
// Termination for the series case rests on that precondition, not on
// structural descent.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Invert returns 1/x for a trimmed, non-zero x.
//
// Returns ErrZeroDivision when x is zero, or when the leading scalar
// coefficient at some basis depth is zero (an untrimmed disguised zero
// surfaces here as soon as the walk reaches it — fail-fast, no partial
// result).
//
// Exactness boundary: the scalar base case divides with
// decimal.Decimal.Div, which rounds at decimal.DivisionPrecision (16
// fractional digits), so reciprocals that do not terminate in decimal,
// such as 1/3, come back rounded. Every other operation in the algebra
// is exact.
func Invert(x PreMS) (PreMS, error) {
	if x.depth == 0 {
		if x.scalar.IsZero() {
			return PreMS{}, fmt.Errorf("%w: zero constant", ErrZeroDivision)
		}

		return PreMS{scalar: decimal.NewFromInt(1).Div(x.scalar)}, nil
	}

	head, tail, ok := x.terms.Force()
	if !ok {
		return PreMS{}, fmt.Errorf("%w: zero expansion", ErrZeroDivision)
	}

	// 1) Invert the leading coefficient one basis level down.
	ic0, err := Invert(head.Coef)
	if err != nil {
		return PreMS{}, err
	}

	// 2) Normalize the tail against the leading monomial.
	negE0 := head.Exp.Neg()
	g := mulMonomial(PreMS{depth: x.depth, terms: tail}, ic0, negE0)

	// 3) Unfold 1/(1+g) and denormalize.
	unfolded, err := Apply(Geometric(), g)
	if err != nil {
		// Unreachable for well-ordered input: g's leading exponent is
		// negative by construction. Surface it rather than mask it.
		return PreMS{}, err
	}

	return mulMonomial(unfolded, ic0, negE0), nil
}
