// Addition and its derived operations (Neg, Sub), built on the binary
// combining merge over term streams.
//
// The merge walks both inputs by forcing one head from each and applying
// a three-way exponent comparison:
//
//	left > right  — emit the left term, advance left only;
//	equal         — emit (exp, left.Coef + right.Coef), advance both;
//	left < right  — emit the right term, advance right only.
//
// An exhausted side lets the other side stream through unchanged. Given
// two well-ordered inputs the output is well-ordered by construction.
// Coefficients that cancel to zero are NOT collapsed here — canonical
// form is Trim's job.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// Add returns x + y over the same basis.
//
// Returns ErrDepthMismatch when x and y live at different basis depths.
// Complexity: O(1) to build; each forced output term costs O(depth)
// comparisons plus the coefficient additions it exposes.
func Add(x, y PreMS) (PreMS, error) {
	if x.depth != y.depth {
		return PreMS{}, fmt.Errorf("%w: Add on depths %d and %d", ErrDepthMismatch, x.depth, y.depth)
	}

	return add(x, y), nil
}

// Neg returns -x (every scalar coefficient negated, exponents untouched).
func Neg(x PreMS) PreMS {
	return MulConst(x, decimal.NewFromInt(-1))
}

// Sub returns x - y over the same basis.
// Returns ErrDepthMismatch when the depths differ.
func Sub(x, y PreMS) (PreMS, error) {
	if x.depth != y.depth {
		return PreMS{}, fmt.Errorf("%w: Sub on depths %d and %d", ErrDepthMismatch, x.depth, y.depth)
	}

	return add(x, Neg(y)), nil
}

// MulConst returns c * x, scaling every coefficient down to the scalars.
// Exponents are untouched, so well-ordering is preserved trivially.
func MulConst(x PreMS, c decimal.Decimal) PreMS {
	if x.depth == 0 {
		return PreMS{scalar: x.scalar.Mul(c)}
	}

	return PreMS{depth: x.depth, terms: lazyseq.Map(x.terms, func(t Term) Term {
		return Term{Exp: t.Exp, Coef: MulConst(t.Coef, c)}
	})}
}

// add is the depth-unchecked addition used inside generators, where the
// depths agree by construction.
func add(x, y PreMS) PreMS {
	if x.depth == 0 {
		return PreMS{scalar: x.scalar.Add(y.scalar)}
	}

	return PreMS{depth: x.depth, terms: mergeTerms(x.terms, y.terms)}
}

// mergePair is the generator state of the binary merge: the two
// remaining term streams.
type mergePair struct {
	left  *lazyseq.Seq[Term]
	right *lazyseq.Seq[Term]
}

// mergeTerms interleaves two well-ordered term streams into one,
// combining equal exponents by coefficient addition. Lazy: each emitted
// term forces at most one head from each input.
func mergeTerms(left, right *lazyseq.Seq[Term]) *lazyseq.Seq[Term] {
	return lazyseq.Corec(mergePair{left: left, right: right}, mergeStep)
}

// mergeStep performs one step of the binary merge.
func mergeStep(st mergePair) (Term, mergePair, bool) {
	lh, lt, lok := st.left.Force()
	rh, rt, rok := st.right.Force()

	switch {
	case !lok && !rok:
		return Term{}, st, false
	case !rok:
		// Right exhausted: left streams through unchanged.
		return lh, mergePair{left: lt}, true
	case !lok:
		return rh, mergePair{right: rt}, true
	}

	switch lh.Exp.Cmp(rh.Exp) {
	case 1:
		return lh, mergePair{left: lt, right: st.right}, true
	case -1:
		return rh, mergePair{left: st.left, right: rt}, true
	default:
		// Equal exponents: combine coefficients one level down.
		return Term{Exp: lh.Exp, Coef: add(lh.Coef, rh.Coef)}, mergePair{left: lt, right: rt}, true
	}
}
