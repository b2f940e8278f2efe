// Multiplication: the monomial map, the k-ary lazy merge (merge1) and
// the full product built from the two, plus non-negative integer powers.
//
// Mul(x, y) outline:
//  1. For each term (e, c) of x, form the partial product
//     MulMonomial(y, c, e) — a well-ordered stream whose leading
//     exponent is e + lead(y).
//  2. The partial products, enumerated in x's term order, form an outer
//     stream of inner streams whose leading exponents strictly decrease.
//  3. merge1 flattens the outer stream into one globally well-ordered
//     stream.
//
// merge1 invariant (the central correctness argument of the package):
// the generator holds (current, rest), where current is a well-ordered
// stream and every inner stream in rest has a strictly smaller leading
// exponent than its predecessor. A term is emitted from current only
// after comparing it against the head of rest's first non-empty inner
// stream; unless that head is strictly smaller, the inner stream is
// folded into current with the binary merge (combining equal exponents)
// and scanning resumes. Every emitted term
// therefore dominates everything that can still appear, which is exactly
// the well-ordered property between arbitrary (not just adjacent) terms.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// MulMonomial maps every term (e, c) of x to (e + shift, c * coef),
// lazily. coef lives one basis level below x (it multiplies x's
// coefficients). Adding a constant shift preserves strict exponent
// decrease, so the result is well-ordered whenever x is.
//
// Returns ErrBadDepth when x is a bare constant and ErrDepthMismatch
// when coef is not at x's coefficient depth.
func MulMonomial(x, coef PreMS, shift decimal.Decimal) (PreMS, error) {
	if x.depth == 0 {
		return PreMS{}, fmt.Errorf("%w: MulMonomial on a bare constant", ErrBadDepth)
	}
	if coef.depth != x.depth-1 {
		return PreMS{}, fmt.Errorf("%w: coefficient at depth %d, want %d",
			ErrDepthMismatch, coef.depth, x.depth-1)
	}

	return mulMonomial(x, coef, shift), nil
}

// Mul returns x * y over the same basis.
//
// Returns ErrDepthMismatch when the depths differ. Forcing the n-th
// output term forces only the prefix of x whose partial products can
// still contribute exponents that large.
//
// Termination caveat (the multiplicative analogue of Trim's): when x is
// infinite and y has the empty expansion, every partial product is
// empty and forcing the first output term scans the partial products
// forever looking for a head. Check such a factor with IsZero, or keep
// it on the left, where the empty term stream ends the product at once.
func Mul(x, y PreMS) (PreMS, error) {
	if x.depth != y.depth {
		return PreMS{}, fmt.Errorf("%w: Mul on depths %d and %d", ErrDepthMismatch, x.depth, y.depth)
	}

	return mul(x, y), nil
}

// Pow returns x^n for n >= 0 by repeated multiplication; Pow(x, 0) is
// One at x's depth. Returns ErrNegativePower for n < 0 (compose with
// Invert for negative powers).
func Pow(x PreMS, n int) (PreMS, error) {
	if n < 0 {
		return PreMS{}, fmt.Errorf("%w: got %d", ErrNegativePower, n)
	}
	acc := oneAt(x.depth)
	for i := 0; i < n; i++ {
		acc = mul(acc, x)
	}

	return acc, nil
}

// mulMonomial is the depth-unchecked monomial map.
func mulMonomial(x, coef PreMS, shift decimal.Decimal) PreMS {
	return PreMS{depth: x.depth, terms: lazyseq.Map(x.terms, func(t Term) Term {
		return Term{Exp: t.Exp.Add(shift), Coef: mul(t.Coef, coef)}
	})}
}

// mul is the depth-unchecked product used inside generators.
func mul(x, y PreMS) PreMS {
	if x.depth == 0 {
		return PreMS{scalar: x.scalar.Mul(y.scalar)}
	}

	// One partial product per term of x; their leading exponents strictly
	// decrease along the outer stream because x is well-ordered.
	outer := lazyseq.Map(x.terms, func(t Term) *lazyseq.Seq[Term] {
		return mulMonomial(y, t.Coef, t.Exp).terms
	})

	return PreMS{depth: x.depth, terms: merge1(outer)}
}

// flattenState is merge1's generator state: the stream currently being
// drained and the outer stream of not-yet-touched inner streams.
type flattenState struct {
	current *lazyseq.Seq[Term]
	rest    *lazyseq.Seq[*lazyseq.Seq[Term]]
}

// merge1 flattens a stream of well-ordered term streams — whose leading
// exponents strictly decrease along the outer stream — into one globally
// well-ordered stream.
//
// Each step emits at most one term and forces: one head of current, plus
// one head per outer stream element it passes (empty inners are dropped,
// overtaking inners are folded into current via the binary merge).
func merge1(outer *lazyseq.Seq[*lazyseq.Seq[Term]]) *lazyseq.Seq[Term] {
	return lazyseq.Corec(flattenState{rest: outer}, flattenStep)
}

// flattenStep performs one step of the k-ary merge.
func flattenStep(st flattenState) (Term, flattenState, bool) {
	current, rest := st.current, st.rest

	for {
		head, currentTail, ok := current.Force()
		if !ok {
			// Current drained: promote the next inner stream, or finish.
			inner, restTail, more := rest.Force()
			if !more {
				return Term{}, flattenState{}, false
			}
			current, rest = inner, restTail

			continue
		}

		// Compare head against the first non-empty competitor.
		for {
			inner, restTail, more := rest.Force()
			if !more {
				// No competitors left: current alone decides the order.
				return head, flattenState{current: currentTail}, true
			}
			innerHead, _, nonEmpty := inner.Force()
			if !nonEmpty {
				rest = restTail // an empty partial product cannot compete

				continue
			}
			if head.Exp.Cmp(innerHead.Exp) > 0 {
				// head strictly dominates every stream still waiting in rest.
				return head, flattenState{current: currentTail, rest: rest}, true
			}
			// The competitor overtakes (or ties, and must be combined):
			// fold it into current and rescan.
			current = mergeTerms(current, inner)
			rest = restTail

			break
		}
	}
}
