// Human-readable rendering of multiseries against a named basis, e.g.
// "3*x^2 + 6*x" or "(2*y + 1)*x^0.5 + 3". Rendering is the library's
// diagnostic surface (there is no logging here) and the comparison
// format of the golden tests.
package mseries

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatOptions configures Format.
//
//	TermLimit – maximum number of terms rendered per basis level;
//	            deeper terms are cut off. Must be >= 1. Default 8.
//	Ellipsis  – marker appended at a level where terms were cut off.
//	            Default " + ...". Set to "" to cut silently.
type FormatOptions struct {
	TermLimit int
	Ellipsis  string
}

// FormatOption is a functional option for Format.
type FormatOption func(*FormatOptions)

// WithTermLimit caps the number of rendered terms per level.
// Panics on n < 1 (invalid configuration, signalled early).
func WithTermLimit(n int) FormatOption {
	return func(o *FormatOptions) {
		if n < 1 {
			panic("mseries: Format term limit must be >= 1")
		}
		o.TermLimit = n
	}
}

// WithEllipsis sets the cut-off marker ("" cuts silently).
func WithEllipsis(marker string) FormatOption {
	return func(o *FormatOptions) {
		o.Ellipsis = marker
	}
}

// DefaultFormatOptions returns the rendering defaults: 8 terms per
// level, " + ..." as the cut-off marker.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{TermLimit: 8, Ellipsis: " + ..."}
}

// Format renders x against the named basis b.
//
// Returns ErrDepthMismatch when x's depth differs from len(b) and
// ErrBadBasis when b fails shape validation. Forcing is bounded by
// TermLimit per level, so Format is total on any input.
func Format(x PreMS, b Basis, opts ...FormatOption) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	if x.depth != b.Depth() {
		return "", fmt.Errorf("%w: expansion depth %d, basis depth %d", ErrDepthMismatch, x.depth, b.Depth())
	}

	cfg := DefaultFormatOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return render(x, b, cfg), nil
}

// String renders x against a synthetic basis b0, b1, … with default
// options. Use Format with the real basis for presentable output.
func (p PreMS) String() string {
	names := make(Basis, p.depth)
	for i := range names {
		names[i] = fmt.Sprintf("b%d", i)
	}

	return render(p, names, DefaultFormatOptions())
}

// render walks one basis level, joining rendered terms with signed
// separators ("a + b", "a - b").
func render(x PreMS, names Basis, cfg FormatOptions) string {
	if x.depth == 0 {
		return x.scalar.String()
	}

	// Take one term beyond the limit to know whether we cut anything off.
	terms := Terms(x, cfg.TermLimit+1)
	if len(terms) == 0 {
		return "0"
	}
	truncated := len(terms) > cfg.TermLimit
	if truncated {
		terms = terms[:cfg.TermLimit]
	}

	var sb strings.Builder
	for i, t := range terms {
		piece := renderTerm(t, names, cfg)
		switch {
		case i == 0:
			sb.WriteString(piece)
		case strings.HasPrefix(piece, "-"):
			sb.WriteString(" - ")
			sb.WriteString(piece[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(piece)
		}
	}
	if truncated {
		sb.WriteString(cfg.Ellipsis)
	}

	return sb.String()
}

// renderTerm renders one (exponent, coefficient) step as coef*scale^exp,
// eliding unit coefficients and zero/unit exponents.
func renderTerm(t Term, names Basis, cfg FormatOptions) string {
	coef := render(t.Coef, names[1:], cfg)

	var power string
	switch {
	case t.Exp.IsZero():
		power = ""
	case t.Exp.Equal(decimal.NewFromInt(1)):
		power = names[0]
	default:
		power = names[0] + "^" + t.Exp.String()
	}

	if power == "" {
		return coef
	}
	// A compound (multi-term) coefficient needs parentheses once it
	// multiplies a scale; rendered sums always contain a space.
	if strings.Contains(coef, " ") {
		coef = "(" + coef + ")"
	}
	switch coef {
	case "1":
		return power
	case "-1":
		return "-" + power
	default:
		return coef + "*" + power
	}
}
