// Constructors of well-formed multiseries: the lifted constants Zero,
// One and Const, the single-scale Monomial, and the explicit-term
// constructors FromPairs and FromTerms used for interop and tests.
//
// Every value that enters the algebra should be built here (or be the
// output of an operation in this package); that is what makes Trim and
// the other unbounded walks terminate.
package mseries

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// Zero returns the zero multiseries over basis b: the constant 0 at
// depth 0, the empty term stream at every deeper level.
func Zero(b Basis) PreMS { return zeroAt(b.Depth()) }

// One returns the multiplicative identity over basis b: the constant 1
// lifted through every basis level as the single term (0, One(rest)).
func One(b Basis) PreMS { return oneAt(b.Depth()) }

// Const lifts the real constant c over basis b, by the same recursive
// rule as One but with c at the scalar base.
//
// Note: Const(0, b) has one term per level with a zero scalar at the
// bottom; it is equal to Zero(b) only up to Trim.
func Const(c decimal.Decimal, b Basis) PreMS { return constAt(c, b.Depth()) }

// Monomial returns b[index]^exp as a full multiseries over b: levels
// above index carry the single term (0, …), level index carries the
// single term (exp, One(rest)).
//
// Returns ErrBadIndex when index is outside [0, len(b)).
func Monomial(b Basis, index int, exp decimal.Decimal) (PreMS, error) {
	if index < 0 || index >= b.Depth() {
		return PreMS{}, fmt.Errorf("%w: index %d, basis depth %d", ErrBadIndex, index, b.Depth())
	}

	return monomialAt(b.Depth(), index, exp), nil
}

// Pair is an (exponent, scalar coefficient) step for FromPairs.
type Pair struct {
	Exp  decimal.Decimal
	Coef decimal.Decimal
}

// FromPairs builds a finite multiseries over basis b whose terms are the
// given (exponent, scalar) pairs, largest exponent first; each scalar is
// lifted to a constant over the remaining basis levels. This is the
// convenient way to write expansions like x + 2 as (1,1), (0,2).
//
// Returns ErrBadDepth on the empty basis and ErrUnordered when the
// exponents are not strictly decreasing.
func FromPairs(b Basis, pairs ...Pair) (PreMS, error) {
	depth := b.Depth()
	if depth == 0 {
		return PreMS{}, fmt.Errorf("%w: FromPairs needs at least one scale", ErrBadDepth)
	}
	terms := make([]Term, len(pairs))
	for i, p := range pairs {
		if i > 0 && pairs[i-1].Exp.Cmp(p.Exp) <= 0 {
			return PreMS{}, fmt.Errorf("%w: %s then %s", ErrUnordered, pairs[i-1].Exp, p.Exp)
		}
		terms[i] = Term{Exp: p.Exp, Coef: constAt(p.Coef, depth-1)}
	}

	return PreMS{depth: depth, terms: lazyseq.FromSlice(terms)}, nil
}

// FromTerms builds a multiseries at the given depth from explicit terms,
// for callers that need non-constant coefficients. Validates strict
// exponent decrease (ErrUnordered), depth >= 1 (ErrBadDepth) and that
// every coefficient sits at depth-1 (ErrDepthMismatch).
func FromTerms(depth int, terms []Term) (PreMS, error) {
	if depth < 1 {
		return PreMS{}, fmt.Errorf("%w: FromTerms needs depth >= 1", ErrBadDepth)
	}
	for i, t := range terms {
		if t.Coef.depth != depth-1 {
			return PreMS{}, fmt.Errorf("%w: coefficient %d at depth %d, want %d",
				ErrDepthMismatch, i, t.Coef.depth, depth-1)
		}
		if i > 0 && terms[i-1].Exp.Cmp(t.Exp) <= 0 {
			return PreMS{}, fmt.Errorf("%w: %s then %s", ErrUnordered, terms[i-1].Exp, t.Exp)
		}
	}
	own := make([]Term, len(terms))
	copy(own, terms)

	return PreMS{depth: depth, terms: lazyseq.FromSlice(own)}, nil
}

// zeroAt is the unchecked zero constructor at a bare depth.
func zeroAt(depth int) PreMS {
	return PreMS{depth: depth} // scalar 0 at depth 0, nil (empty) stream above
}

// oneAt is the unchecked one constructor at a bare depth.
func oneAt(depth int) PreMS { return constAt(decimal.NewFromInt(1), depth) }

// constAt lifts scalar c through depth levels as nested (0, …) terms.
func constAt(c decimal.Decimal, depth int) PreMS {
	if depth == 0 {
		return PreMS{scalar: c}
	}

	return singleTerm(depth, decimal.Zero, constAt(c, depth-1))
}

// monomialAt nests down to the indexed level, where the exponent applies.
func monomialAt(depth, index int, exp decimal.Decimal) PreMS {
	if index == 0 {
		return singleTerm(depth, exp, oneAt(depth-1))
	}

	return singleTerm(depth, decimal.Zero, monomialAt(depth-1, index-1, exp))
}

// singleTerm wraps one (exp, coef) term as a depth-level multiseries.
func singleTerm(depth int, exp decimal.Decimal, coef PreMS) PreMS {
	return PreMS{depth: depth, terms: lazyseq.Cons(Term{Exp: exp, Coef: coef}, nil)}
}
