// Core types of the multiseries representation: Basis, Term and PreMS,
// plus the decimal-literal helpers used throughout tests and examples.
package mseries

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// Basis is an ordered list of scale-function names, dominant scale first.
//
// The mathematical precondition — every scale is eventually positive and
// strictly dominates the next (b[i+1]/b[i] → 0) — is the caller's
// responsibility; this package only checks the shape of the list.
// A Basis is immutable once constructed.
type Basis []string

// Depth returns the number of basis levels (the nesting depth of a
// multiseries over this basis).
func (b Basis) Depth() int { return len(b) }

// Validate checks the shape of the basis: every name non-empty and all
// names distinct. Returns ErrBadBasis on violation, nil otherwise.
// The empty basis is valid (its expansions are bare constants).
func (b Basis) Validate() error {
	seen := make(map[string]struct{}, len(b))
	for _, name := range b {
		if name == "" {
			return ErrBadBasis
		}
		if _, dup := seen[name]; dup {
			return ErrBadBasis
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Term is one step of an expansion at a given basis level: the exponent
// of the level's scale, and the coefficient, which is itself a
// multiseries over the remaining (deeper) basis levels.
type Term struct {
	Exp  decimal.Decimal
	Coef PreMS
}

// PreMS is a multiseries over some basis, tagged by basis depth:
//
//	depth == 0 — a bare constant (expansion over the empty basis);
//	depth  > 0 — a lazy stream of Terms with strictly decreasing
//	             exponents, whose coefficients sit at depth-1.
//
// Invariants (maintained by every constructor and operation here):
//
//	Well-ordered — forcing the term stream yields strictly decreasing
//	exponents, between any two terms ever produced, not just adjacent ones.
//	Trimmed (after Trim) — the leading coefficient, recursively down to
//	the scalar, is non-zero.
//
// The zero value of PreMS is the constant 0 over the empty basis.
// PreMS values are immutable; operations always return fresh values.
type PreMS struct {
	depth  int
	scalar decimal.Decimal    // the constant, valid when depth == 0
	terms  *lazyseq.Seq[Term] // the expansion, valid when depth > 0
}

// Depth returns the basis depth this expansion lives at.
func (p PreMS) Depth() int { return p.depth }

// C parses a decimal literal into a coefficient/exponent value,
// panicking on malformed input. Intended for constants in code and
// tests, mirroring decimal.RequireFromString.
func C(literal string) decimal.Decimal { return decimal.RequireFromString(literal) }

// CI converts an integer into a coefficient/exponent value.
func CI(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
