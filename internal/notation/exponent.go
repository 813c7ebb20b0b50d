package notation

import (
	"math"

	"github.com/Amund211/notations/internal/bignum"
)

type exponentFormat func(exponent float64, places int) string

type decimalFormat func(value bignum.Decimal, places int) string

// formatMantissaWithExponent splits value into mantissa * base^exponent
//
// The exponent is a non-negative multiple of steps, so the mantissa lands in
// [1, base^steps).
func formatMantissaWithExponent(formatMantissa mantissaFormat, formatExponent exponentFormat, base float64, steps int, separator string) decimalFormat {
	return func(value bignum.Decimal, places int) string {
		fSteps := float64(steps)
		realBase := math.Pow(base, fSteps)

		exponent := math.Max(math.Floor(value.Log(realBase))*fSteps, 0)
		mantissa := value.Div(bignum.Pow(base, exponent)).Float64()
		if mantissa >= realBase || (mantissa < 1 && exponent > 0) {
			adjust := math.Floor(math.Log(mantissa) / math.Log(realBase))
			mantissa /= math.Pow(realBase, adjust)
			exponent += fSteps * adjust
		}

		m := formatMantissa(mantissa, places)
		if m == formatMantissa(realBase, places) {
			// Rounding carried into the next power
			m = formatMantissa(1, places)
			exponent += fSteps
		}

		if exponent == 0 {
			return m
		}
		return m + separator + formatExponent(exponent, places)
	}
}
