// Package mseries implements multiseries: nested, lazily produced
// asymptotic expansions over an ordered basis of comparison scales,
// together with their algebra (Add, Mul, Trim, Apply, Invert).
//
// 🚀 What is a multiseries?
//
//	Fix an ordered basis of scale functions, dominant first, e.g.
//	[x, log(x)]: each scale is eventually positive and strictly
//	dominates the next (the ratio of successive scales tends to zero).
//	A multiseries over that basis describes how a quantity grows:
//	  • over the empty basis it is a bare constant;
//	  • over basis b::rest it is a lazy stream of (exponent, coefficient)
//	    terms with strictly decreasing exponents, where each coefficient
//	    is itself a multiseries over rest.
//
//	So x + 2 over basis [x] is the stream [(1, 1), (0, 2)], and
//	(3·log(x))·x² over [x, log(x)] is [(2, [(1, 3)])].
//
// ✨ Key guarantees:
//   - Well-ordered by construction – every operation yields strictly
//     decreasing exponents given well-ordered inputs; this is the load-
//     bearing invariant of the whole algebra and is tested directly
//   - Exact coefficients – shopspring/decimal arithmetic, so Trim's
//     "is this coefficient zero?" question has a reliable answer
//   - Lazy throughout – products and compositions of infinite
//     expansions cost only the terms you force
//   - Pure values – operations never mutate their inputs
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/mseries/mseries"
//	)
//
//	b := mseries.Basis{"x"}
//	a, _ := mseries.FromPairs(b, mseries.Pair{Exp: mseries.C("1"), Coef: mseries.C("1")},
//	    mseries.Pair{Exp: mseries.C("0"), Coef: mseries.C("2")}) // x + 2
//	m, _ := mseries.FromPairs(b, mseries.Pair{Exp: mseries.C("1"), Coef: mseries.C("3")}) // 3x
//
//	prod, _ := mseries.Mul(a, m)                  // 3x² + 6x
//	s, _ := mseries.Format(prod, b)               // "3*x^2 + 6*x"
//
// Termination:
//
//	Terms(x, n) and EqualUpTo(x, y, n) are bounded and total. Trim,
//	Invert and unbounded walks terminate for every value built through
//	this package's constructors and operations; an externally crafted
//	generator producing infinitely many zero-coefficient leading terms
//	can make Trim loop. Build values through this package.
//
// Errors (sentinel):
//
//	– ErrZeroDivision  inverting a value whose leading scalar coefficient is zero
//	– ErrNotSmall      substituting a series whose leading exponent is not negative
//	– ErrDepthMismatch combining expansions over different basis depths
//	– ErrBadBasis, ErrBadIndex, ErrBadDepth, ErrUnordered, ErrNegativePower,
//	  ErrZeroValue — construction and inspection misuse
//
// The basis-validity property itself (eventual positivity, domination of
// successive scales) is a caller precondition and is not verified here.
package mseries
