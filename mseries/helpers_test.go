package mseries_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mseries/mseries"
)

// basisX is the single-scale basis used by most scenarios.
var basisX = mseries.Basis{"x"}

// basisXLog is the two-scale basis for nested-coefficient scenarios.
var basisXLog = mseries.Basis{"x", "log(x)"}

// p builds a Pair from decimal literals.
func p(exp, coef string) mseries.Pair {
	return mseries.Pair{Exp: mseries.C(exp), Coef: mseries.C(coef)}
}

// pairsMS builds a multiseries from pairs, failing the test on error.
func pairsMS(t *testing.T, b mseries.Basis, pairs ...mseries.Pair) mseries.PreMS {
	t.Helper()
	m, err := mseries.FromPairs(b, pairs...)
	require.NoError(t, err, "FromPairs must accept well-ordered pairs")

	return m
}

// renderMS formats a multiseries against b, failing the test on error.
func renderMS(t *testing.T, m mseries.PreMS, b mseries.Basis) string {
	t.Helper()
	s, err := mseries.Format(m, b)
	require.NoError(t, err, "Format must succeed on matching depths")

	return s
}

// expsOf extracts the exponents of the first n terms as strings.
func expsOf(m mseries.PreMS, n int) []string {
	terms := mseries.Terms(m, n)
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Exp.String()
	}

	return out
}

// requireWellOrdered asserts strictly decreasing exponents over the
// first n terms — the global invariant every operation must preserve.
func requireWellOrdered(t *testing.T, m mseries.PreMS, n int) {
	t.Helper()
	terms := mseries.Terms(m, n)
	var prev decimal.Decimal
	for i, term := range terms {
		if i > 0 {
			require.True(t, prev.GreaterThan(term.Exp),
				"exponents must strictly decrease: %s then %s at position %d", prev, term.Exp, i)
		}
		prev = term.Exp
	}
}
