// Canonicalization: Trim discards leading terms whose coefficients are
// (recursively) zero, stopping at the first genuinely non-zero term.
//
// Recursion runs along two dimensions: depth (basis levels, structural,
// always finite) and breadth (how many leading zero terms must be
// discarded). Breadth is finite for every value built through this
// package's constructors and operations; an externally crafted generator
// emitting infinitely many zero-coefficient terms before a non-zero one
// would make Trim loop, which is a documented limitation rather than a
// detectable error.
package mseries

import "github.com/katalvlaran/mseries/lazyseq"

// Trim returns the canonical form of x: either an empty expansion (x is
// zero at this level) or an expansion whose leading coefficient is
// non-zero and itself trimmed, recursively down to the scalar.
//
// Trim is idempotent and never changes the value x denotes, only its
// leading representation; the tail beyond the first non-zero term is
// left untouched (and lazy).
func Trim(x PreMS) PreMS {
	if x.depth == 0 {
		return x
	}

	rest := x.terms
	for {
		head, tail, ok := rest.Force()
		if !ok {
			return PreMS{depth: x.depth} // nothing survived: canonical zero
		}

		trimmed := Trim(head.Coef)
		if !trimmedIsZero(trimmed) {
			// First live term found; re-head the stream with its trimmed
			// coefficient and keep the untouched lazy tail.
			return PreMS{depth: x.depth, terms: lazyseq.Cons(
				Term{Exp: head.Exp, Coef: trimmed},
				func() *lazyseq.Seq[Term] { return tail },
			)}
		}
		rest = tail // the whole leading term was a disguised zero
	}
}

// IsZero reports whether x denotes zero, i.e. whether it trims to the
// empty expansion (or the zero scalar). Same termination caveat as Trim.
func IsZero(x PreMS) bool { return trimmedIsZero(Trim(x)) }

// trimmedIsZero checks zero-ness of an already trimmed value without
// further recursion: a trimmed non-zero expansion is never empty.
func trimmedIsZero(x PreMS) bool {
	if x.depth == 0 {
		return x.scalar.IsZero()
	}

	return x.terms.IsEmpty()
}
