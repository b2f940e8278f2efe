package mseries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mseries/mseries"
)

// TestTrim_DropsDisguisedZeros verifies that leading zero-coefficient
// terms are discarded until the first live term.
func TestTrim_DropsDisguisedZeros(t *testing.T) {
	m := pairsMS(t, basisX, p("3", "0"), p("2", "0"), p("1", "5"), p("0", "0"))

	trimmed := mseries.Trim(m)
	assert.Equal(t, []string{"1", "0"}, expsOf(trimmed, 5),
		"leading zeros go, the live term and its (lazy, untouched) tail stay")

	leadExps, leadCoef, err := mseries.Leading(m)
	require.NoError(t, err)
	assert.Equal(t, "1", leadExps[0].String())
	assert.Equal(t, "5", leadCoef.String())
}

// TestTrim_Idempotent verifies Trim(Trim(x)) == Trim(x) on a mix of
// shapes, including canonical zero and already-trimmed input.
func TestTrim_Idempotent(t *testing.T) {
	cases := []mseries.PreMS{
		pairsMS(t, basisX, p("2", "0"), p("1", "3")),
		pairsMS(t, basisX, p("1", "1"), p("0", "2")),
		mseries.Zero(basisX),
		mseries.Const(mseries.C("0"), basisX),
		mseries.Const(mseries.C("4"), nil),
	}
	for _, m := range cases {
		once := mseries.Trim(m)
		twice := mseries.Trim(once)
		assert.True(t, mseries.EqualUpTo(once, twice, 10), "Trim must be idempotent")
	}
}

// TestTrim_RecursesIntoCoefficients verifies the depth dimension: a
// term whose nested coefficient trims to zero is itself discarded.
func TestTrim_RecursesIntoCoefficients(t *testing.T) {
	zeroInner := mseries.Const(mseries.C("0"), mseries.Basis{"log(x)"})
	liveInner := pairsMS(t, mseries.Basis{"log(x)"}, p("0", "2"))

	m, err := mseries.FromTerms(2, []mseries.Term{
		{Exp: mseries.C("5"), Coef: zeroInner}, // looks leading, denotes zero
		{Exp: mseries.C("3"), Coef: liveInner},
	})
	require.NoError(t, err)

	trimmed := mseries.Trim(m)
	terms := mseries.Terms(trimmed, 3)
	require.Len(t, terms, 1)
	assert.Equal(t, "3", terms[0].Exp.String(), "the disguised-zero leading term must be dropped")
	assert.Equal(t, "2*x^3", renderMS(t, trimmed, basisXLog))
}

// TestIsZero_Shapes verifies zero detection across representations.
func TestIsZero_Shapes(t *testing.T) {
	assert.True(t, mseries.IsZero(mseries.Zero(basisX)))
	assert.True(t, mseries.IsZero(mseries.Const(mseries.C("0"), basisXLog)))
	assert.True(t, mseries.IsZero(pairsMS(t, basisX, p("2", "0"), p("1", "0"))))
	assert.False(t, mseries.IsZero(pairsMS(t, basisX, p("2", "0"), p("1", "0.001"))))
	assert.False(t, mseries.IsZero(mseries.One(basisXLog)))
}

// TestTrim_SurvivingTailStaysLazy verifies that Trim touches only the
// head: the tail beyond the first live term is not forced.
func TestTrim_SurvivingTailStaysLazy(t *testing.T) {
	// An infinite expansion whose head is live: Trim must return without
	// walking the infinite tail.
	small, err := mseries.Monomial(basisX, 0, mseries.C("-1"))
	require.NoError(t, err)
	inf, err := mseries.Apply(mseries.Geometric(), small)
	require.NoError(t, err)

	trimmed := mseries.Trim(inf)
	assert.Equal(t, []string{"0", "-1", "-2"}, expsOf(trimmed, 3),
		"the infinite tail must still stream after Trim")
}
