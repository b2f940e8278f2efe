// Bounded inspection of multiseries: term extraction, equality up to a
// term budget, and the trimmed leading monomial. These are the read-only
// surfaces external consumers (drivers, golden tests) work with; all of
// them are total thanks to explicit bounds, except Leading, which trims.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// Terms materializes at most n leading terms of x. Total on any input
// (at most n forcing steps, like lazyseq.Take). A bare constant has no
// terms; nil is returned.
func Terms(x PreMS, n int) []Term {
	if x.depth == 0 {
		return nil
	}

	return lazyseq.Take(x.terms, n)
}

// EqualUpTo reports whether x and y agree on their first n terms at
// every basis level: same exponents, and coefficients again equal up to
// n terms, down to equal scalars. Depth disagreement is inequality.
//
// This is the bounded structural equality used by golden tests; it is
// total (at most n forcing steps per level) but can only ever certify
// agreement of the inspected prefix.
func EqualUpTo(x, y PreMS, n int) bool {
	if x.depth != y.depth {
		return false
	}
	if x.depth == 0 {
		return x.scalar.Equal(y.scalar)
	}

	xs, ys := x.terms, y.terms
	for i := 0; i < n; i++ {
		xh, xt, xok := xs.Force()
		yh, yt, yok := ys.Force()
		if !xok || !yok {
			return xok == yok // both ended together, or one ran short
		}
		if !xh.Exp.Equal(yh.Exp) || !EqualUpTo(xh.Coef, yh.Coef, n) {
			return false
		}
		xs, ys = xt, yt
	}

	return true // the whole budget agreed
}

// EquivUpTo reports whether x and y denote the same value on their
// first n live terms per basis level: zero-coefficient terms are skipped
// (up to n of them per live term), then exponents and coefficients are
// compared as in EqualUpTo. This is equality "up to Trim" on a bounded
// window — the right notion for algebraic identities, whose two sides
// usually differ in how many disguised zeros they carry.
//
// Total: every forcing walk is bounded by n, including the zero test on
// each skipped coefficient (products routinely carry coefficients that
// denote zero as infinite cancellation streams, so an unbounded zero
// test would not return). The flip side of the bound: a side that needs
// more than n skips to reach its next live term counts as ended, and a
// coefficient whose first live scalar lies beyond the window counts as
// zero.
func EquivUpTo(x, y PreMS, n int) bool {
	if x.depth != y.depth {
		return false
	}
	if x.depth == 0 {
		return x.scalar.Equal(y.scalar)
	}

	xs, ys := x.terms, y.terms
	for i := 0; i < n; i++ {
		xh, xt, xok := nextLive(xs, n)
		yh, yt, yok := nextLive(ys, n)
		if !xok || !yok {
			return xok == yok
		}
		if !xh.Exp.Equal(yh.Exp) || !EquivUpTo(xh.Coef, yh.Coef, n) {
			return false
		}
		xs, ys = xt, yt
	}

	return true
}

// nextLive scans past zero-coefficient terms, forcing at most budget+1
// steps, and returns the first live term with its tail. Liveness is
// decided by zeroUpTo, never by the unbounded IsZero.
func nextLive(s *lazyseq.Seq[Term], budget int) (Term, *lazyseq.Seq[Term], bool) {
	for i := 0; i <= budget; i++ {
		head, tail, ok := s.Force()
		if !ok {
			return Term{}, nil, false
		}
		if !zeroUpTo(head.Coef, budget) {
			return head, tail, true
		}
		s = tail
	}

	return Term{}, nil, false // budget exhausted while skipping
}

// zeroUpTo reports whether x denotes zero as far as a bounded walk can
// tell: at most budget terms are forced per basis level, each
// coefficient tested recursively with the same budget. A stream still
// producing dead terms when the budget runs out counts as zero, so a
// live scalar beyond the window is invisible, like everything else in
// the bounded comparators.
func zeroUpTo(x PreMS, budget int) bool {
	if x.depth == 0 {
		return x.scalar.IsZero()
	}

	s := x.terms
	for i := 0; i < budget; i++ {
		head, tail, ok := s.Force()
		if !ok {
			return true
		}
		if !zeroUpTo(head.Coef, budget) {
			return false
		}
		s = tail
	}

	return true
}

// Leading returns the trimmed leading monomial of x: the exponent at
// every basis level (dominant first) and the scalar coefficient at the
// bottom. This is the quantity a limit-decision driver consumes.
//
// Returns ErrZeroValue when x trims to zero. Shares Trim's termination
// caveat for externally crafted generators.
func Leading(x PreMS) ([]decimal.Decimal, decimal.Decimal, error) {
	cur := Trim(x)
	exps := make([]decimal.Decimal, 0, cur.depth)
	for cur.depth > 0 {
		head, _, ok := cur.terms.Force()
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: no leading term", ErrZeroValue)
		}
		exps = append(exps, head.Exp)
		cur = head.Coef // trimmed recursively by Trim, so the walk is direct
	}
	if cur.scalar.IsZero() {
		return nil, decimal.Zero, fmt.Errorf("%w: zero leading coefficient", ErrZeroValue)
	}

	return exps, cur.scalar, nil
}
