package notation

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type mantissaFormat func(n float64, places int) string

func formatMantissaBaseTen(n float64, places int) string {
	return strconv.FormatFloat(n, 'f', max(0, places), 64)
}

// formatMantissa writes n in the given base using the supplied digit symbols
func formatMantissa(base int, digits []rune) mantissaFormat {
	return func(n float64, places int) string {
		places = max(0, places)

		if math.IsNaN(n) || math.IsInf(n, 0) {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}

		sign := ""
		if n < 0 {
			sign = "-"
			n = -n
		}

		fBase := float64(base)
		value := math.Round(n * math.Pow(fBase, float64(places)))

		var symbols []rune
		for value > 0 || len(symbols) == 0 {
			symbols = append(symbols, digits[int(math.Mod(value, fBase))])
			value = math.Floor(value / fBase)
		}
		for len(symbols) < places+1 {
			symbols = append(symbols, digits[0])
		}
		slices.Reverse(symbols)

		if places == 0 {
			return sign + string(symbols)
		}
		integer := symbols[:len(symbols)-places]
		fraction := symbols[len(symbols)-places:]
		return sign + string(integer) + "." + string(fraction)
	}
}

// formatWithCommas groups the integer part of a formatted number in threes
func formatWithCommas(formatted string) string {
	integer, fraction, hasFraction := strings.Cut(formatted, ".")

	symbols := []rune(integer)
	var b strings.Builder
	for i, r := range symbols {
		if i > 0 && (len(symbols)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}

	if hasFraction {
		b.WriteRune('.')
		b.WriteString(fraction)
	}
	return b.String()
}
