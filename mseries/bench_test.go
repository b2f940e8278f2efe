package mseries_test

import (
	"testing"

	"github.com/katalvlaran/mseries/mseries"
)

// buildDense builds a dense n-term expansion x^n + 2x^(n-1) + … for
// benchmark inputs, failing fast on construction errors.
func buildDense(b *testing.B, n int) mseries.PreMS {
	b.Helper()
	pairs := make([]mseries.Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = mseries.Pair{Exp: mseries.CI(int64(n - i)), Coef: mseries.CI(int64(i + 1))}
	}
	m, err := mseries.FromPairs(mseries.Basis{"x"}, pairs...)
	if err != nil {
		b.Fatalf("FromPairs failed: %v", err)
	}

	return m
}

// forceTerms forces n output terms, the lazy analogue of "run to completion".
func forceTerms(b *testing.B, m mseries.PreMS, n int) {
	b.Helper()
	if got := mseries.Terms(m, n); len(got) == 0 {
		b.Fatal("expected a non-empty expansion")
	}
}

// BenchmarkMul_Dense16 multiplies two 16-term expansions and forces the
// full 31-term product, exercising merge1's fold path heavily.
func BenchmarkMul_Dense16(b *testing.B) {
	x := buildDense(b, 16)
	y := buildDense(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prod, err := mseries.Mul(x, y)
		if err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
		forceTerms(b, prod, 31)
	}
}

// BenchmarkInvert_Prefix32 inverts a 4-term expansion and forces 32
// terms of the infinite inverse (geometric unfolding + k-ary merge).
func BenchmarkInvert_Prefix32(b *testing.B) {
	x := buildDense(b, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := mseries.Invert(x)
		if err != nil {
			b.Fatalf("Invert failed: %v", err)
		}
		forceTerms(b, inv, 32)
	}
}

// BenchmarkTrim_LeadingZeros trims an expansion with a long disguised-
// zero prefix, the breadth dimension of Trim's recursion.
func BenchmarkTrim_LeadingZeros(b *testing.B) {
	pairs := make([]mseries.Pair, 64)
	for i := 0; i < 63; i++ {
		pairs[i] = mseries.Pair{Exp: mseries.CI(int64(64 - i)), Coef: mseries.CI(0)}
	}
	pairs[63] = mseries.Pair{Exp: mseries.CI(1), Coef: mseries.CI(5)}
	m, err := mseries.FromPairs(mseries.Basis{"x"}, pairs...)
	if err != nil {
		b.Fatalf("FromPairs failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		forceTerms(b, mseries.Trim(m), 1)
	}
}

// BenchmarkAdd_Interleave64 adds two 64-term expansions with disjoint
// exponent sets, the pure merge path without coefficient work.
func BenchmarkAdd_Interleave64(b *testing.B) {
	even := make([]mseries.Pair, 64)
	odd := make([]mseries.Pair, 64)
	for i := 0; i < 64; i++ {
		even[i] = mseries.Pair{Exp: mseries.CI(int64(2 * (64 - i))), Coef: mseries.CI(1)}
		odd[i] = mseries.Pair{Exp: mseries.CI(int64(2*(64-i) - 1)), Coef: mseries.CI(1)}
	}
	x, err := mseries.FromPairs(mseries.Basis{"x"}, even...)
	if err != nil {
		b.Fatalf("FromPairs failed: %v", err)
	}
	y, err := mseries.FromPairs(mseries.Basis{"x"}, odd...)
	if err != nil {
		b.Fatalf("FromPairs failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum, err := mseries.Add(x, y)
		if err != nil {
			b.Fatalf("Add failed: %v", err)
		}
		forceTerms(b, sum, 128)
	}
}
