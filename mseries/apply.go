// Power-series substitution: Apply(s, m) computes s(m), the formal
// series s evaluated at the multiseries m.
//
// Outline:
//  1. Hold the corecursive state (currentPower, remainingSeries),
//     initialized to (One, s).
//  2. Each step forces the next series coefficient c, contributes
//     c * currentPower, and advances currentPower to currentPower * m.
//  3. The per-coefficient contributions form a stream of well-ordered
//     streams whose leading exponents strictly decrease — the k-th power
//     of m leads with k * lead(m) and lead(m) < 0 — so merge1 flattens
//     them into one well-ordered result, exactly as in Mul.
//
// The strictly-negative-leading-exponent precondition is what makes both
// the ordering argument and termination work; it is checked fail-fast at
// the call boundary, never silently repaired.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// Apply substitutes m for the formal variable of s.
//
// Precondition: m's leading exponent is strictly negative (the quantity
// m represents tends to zero), inspected on m's structural leading term
// — pass a trimmed m. Violations return ErrNotSmall. The identically
// zero m is the one exception: substituting zero yields the constant
// term of s, lifted over m's basis.
func Apply(s PowerSeries, m PreMS) (PreMS, error) {
	// Depth 0: a bare constant tends to zero only if it IS zero.
	if m.depth == 0 {
		if !m.scalar.IsZero() {
			return PreMS{}, fmt.Errorf("%w: constant %s", ErrNotSmall, m.scalar)
		}

		return constHead(s, 0), nil
	}

	head, _, ok := m.terms.Force()
	if !ok {
		return constHead(s, m.depth), nil // s(0) = c0
	}
	if head.Exp.Sign() >= 0 {
		return PreMS{}, fmt.Errorf("%w: leading exponent %s", ErrNotSmall, head.Exp)
	}

	return apply(s, m), nil
}

// constHead lifts the constant term of s (zero when s is empty) to depth.
func constHead(s PowerSeries, depth int) PreMS {
	c, _, ok := s.Force()
	if !ok {
		return zeroAt(depth)
	}

	return constAt(c, depth)
}

// substState is Apply's generator state: the current power of the
// substituted value and the remaining series coefficients.
type substState struct {
	power  PreMS
	series PowerSeries
}

// apply is the precondition-unchecked substitution.
func apply(s PowerSeries, m PreMS) PreMS {
	depth := m.depth

	// One contribution stream per series coefficient: c_k * m^k.
	contributions := lazyseq.Corec(
		substState{power: oneAt(depth), series: s},
		func(st substState) (*lazyseq.Seq[Term], substState, bool) {
			c, rest, ok := st.series.Force()
			if !ok {
				return nil, st, false
			}
			contribution := mulMonomial(st.power, constAt(c, depth-1), decimal.Zero)

			return contribution.terms, substState{power: mul(st.power, m), series: rest}, true
		},
	)

	return PreMS{depth: depth, terms: merge1(contributions)}
}
