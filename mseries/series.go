// Ordinary formal power series as lazy coefficient streams, indexed
// implicitly by the power of a dummy variable. These are the "outer"
// series substituted into a multiseries by Apply.
package mseries

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/mseries/lazyseq"
)

// PowerSeries is a formal power series: the lazy stream of its real
// coefficients c0, c1, c2, … (the nil stream is the zero series).
type PowerSeries = *lazyseq.Seq[decimal.Decimal]

// ConstSeries returns the power series with constant term c and nothing
// else; substituting anything into it yields the constant c.
func ConstSeries(c decimal.Decimal) PowerSeries {
	return lazyseq.FromSlice([]decimal.Decimal{c})
}

// SeriesFromCoeffs returns the finite power series with the given
// coefficients, constant term first.
func SeriesFromCoeffs(coeffs ...decimal.Decimal) PowerSeries {
	own := make([]decimal.Decimal, len(coeffs))
	copy(own, coeffs)

	return lazyseq.FromSlice(own)
}

// Geometric returns the fixed series 1, -1, 1, -1, … for 1/(1+t),
// the series behind multiplicative inversion.
func Geometric() PowerSeries {
	one := decimal.NewFromInt(1)
	minusOne := decimal.NewFromInt(-1)

	return lazyseq.Corec(false, func(neg bool) (decimal.Decimal, bool, bool) {
		if neg {
			return minusOne, false, true
		}

		return one, true, true
	})
}
