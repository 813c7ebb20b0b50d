package bignum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal is a float64 mantissa with an int64 power-of-ten exponent
//
// The mantissa is kept in [1, 10) (or (-10, -1]) so values far outside the
// float64 range can be compared and logged. Zero is {0, 0}. NaN and the
// infinities are stored in the mantissa with a zero exponent.
type Decimal struct {
	mantissa float64
	exponent int64
}

var (
	Zero     = Decimal{}
	One      = Decimal{mantissa: 1}
	Infinity = Decimal{mantissa: math.Inf(1)}
	NaN      = Decimal{mantissa: math.NaN()}
)

// FromFloat splits value using its shortest decimal representation, so a
// literal like 1e33 keeps a mantissa of exactly 1
func FromFloat(value float64) Decimal {
	if value == 0 {
		return Zero
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Decimal{mantissa: value}
	}

	mantissaPart, exponentPart, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
	mantissa, err := strconv.ParseFloat(mantissaPart, 64)
	if err != nil {
		panic(fmt.Sprintf("logic error: invalid formatted mantissa %q: %s", mantissaPart, err))
	}
	exponent, err := strconv.ParseInt(exponentPart, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("logic error: invalid formatted exponent %q: %s", exponentPart, err))
	}

	return Decimal{mantissa: mantissa, exponent: exponent}
}

func FromMantissaExponent(mantissa float64, exponent int64) Decimal {
	d := FromFloat(mantissa)
	if d.IsZero() || !d.IsFinite() {
		return d
	}
	d.exponent += exponent
	return d
}

// normalize fixes rounding slop from the log10 shift
func normalize(mantissa float64, exponent int64) Decimal {
	for math.Abs(mantissa) >= 10 {
		mantissa /= 10
		exponent++
	}
	for math.Abs(mantissa) < 1 {
		mantissa *= 10
		exponent--
	}
	return Decimal{mantissa: mantissa, exponent: exponent}
}

// Parse accepts plain floats ("123.4"), scientific form with an exponent of any
// size ("1.5e33", "1e1000") and the strings "Infinity"/"-Infinity"/"NaN".
func Parse(raw string) (Decimal, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "infinity", "+infinity", "inf", "+inf":
		return Infinity, nil
	case "-infinity", "-inf":
		return Infinity.Neg(), nil
	case "nan":
		return NaN, nil
	}

	mantissaPart, exponentPart, hasExponent := strings.Cut(strings.ToLower(s), "e")
	mantissa, err := strconv.ParseFloat(mantissaPart, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid mantissa in %q: %w", raw, err)
	}
	if !hasExponent {
		return FromFloat(mantissa), nil
	}

	exponent, err := strconv.ParseInt(exponentPart, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid exponent in %q: %w", raw, err)
	}
	return FromMantissaExponent(mantissa, exponent), nil
}

func MustParse(raw string) Decimal {
	d, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) Mantissa() float64 {
	return d.mantissa
}

func (d Decimal) Exponent() int64 {
	return d.exponent
}

func (d Decimal) Sign() int {
	switch {
	case d.mantissa > 0:
		return 1
	case d.mantissa < 0:
		return -1
	default:
		return 0
	}
}

func (d Decimal) IsZero() bool {
	return d.mantissa == 0
}

func (d Decimal) IsNaN() bool {
	return math.IsNaN(d.mantissa)
}

func (d Decimal) IsFinite() bool {
	return !math.IsNaN(d.mantissa) && !math.IsInf(d.mantissa, 0)
}

func (d Decimal) Abs() Decimal {
	return Decimal{mantissa: math.Abs(d.mantissa), exponent: d.exponent}
}

func (d Decimal) Neg() Decimal {
	return Decimal{mantissa: -d.mantissa, exponent: d.exponent}
}

func (d Decimal) Div(other Decimal) Decimal {
	if !d.IsFinite() || !other.IsFinite() || other.IsZero() {
		return FromFloat(d.mantissa / other.mantissa)
	}
	if d.IsZero() {
		return Zero
	}
	return normalize(d.mantissa/other.mantissa, d.exponent-other.exponent)
}

// Pow returns base^exponent for a positive base
func Pow(base float64, exponent float64) Decimal {
	if exponent == 0 {
		return One
	}

	power := exponent * Log10Of(base)
	if math.IsInf(power, 0) || math.IsNaN(power) {
		return FromFloat(math.Pow(base, exponent))
	}

	whole := math.Floor(power)
	return normalize(math.Pow(10, power-whole), int64(whole))
}

// Log10Of is math.Log10 that returns exact integers for exact powers of ten
func Log10Of(x float64) float64 {
	l := math.Log10(x)
	rounded := math.Round(l)
	if rounded < -323 || rounded > 308 {
		return l
	}
	power, err := strconv.ParseFloat("1e"+strconv.Itoa(int(rounded)), 64)
	if err == nil && power == x {
		return rounded
	}
	return l
}

func (d Decimal) Log10() float64 {
	if !d.IsFinite() {
		return math.Log10(d.mantissa)
	}
	if d.mantissa <= 0 {
		return math.Log10(d.mantissa)
	}
	return float64(d.exponent) + Log10Of(d.mantissa)
}

func (d Decimal) Log(base float64) float64 {
	return d.Log10() / Log10Of(base)
}

func (d Decimal) Float64() float64 {
	if !d.IsFinite() || d.IsZero() {
		return d.mantissa
	}
	// ParseFloat rounds once, where mantissa * 10^exponent would round twice.
	// Out of range results are ±Inf or 0 together with ErrRange, which is what we want.
	value, _ := strconv.ParseFloat(d.String(), 64)
	return value
}

func (d Decimal) Cmp(other Decimal) int {
	if d.IsNaN() || other.IsNaN() {
		// NaN compares as equal to nothing, treat as unordered-equal for sorting
		return 0
	}

	ds, otherSign := d.Sign(), other.Sign()
	if ds != otherSign {
		if ds < otherSign {
			return -1
		}
		return 1
	}
	if ds == 0 {
		return 0
	}

	magnitude := d.cmpAbs(other)
	if ds < 0 {
		return -magnitude
	}
	return magnitude
}

func (d Decimal) cmpAbs(other Decimal) int {
	dm, om := math.Abs(d.mantissa), math.Abs(other.mantissa)
	if math.IsInf(dm, 0) || math.IsInf(om, 0) {
		switch {
		case dm == om:
			return 0
		case math.IsInf(dm, 0):
			return 1
		default:
			return -1
		}
	}

	switch {
	case d.exponent > other.exponent:
		return 1
	case d.exponent < other.exponent:
		return -1
	case dm > om:
		return 1
	case dm < om:
		return -1
	default:
		return 0
	}
}

func (d Decimal) Lt(other Decimal) bool {
	return !d.IsNaN() && !other.IsNaN() && d.Cmp(other) < 0
}

func (d Decimal) Gte(other Decimal) bool {
	return !d.IsNaN() && !other.IsNaN() && d.Cmp(other) >= 0
}
func (d Decimal) String() string {
	if !d.IsFinite() {
		return strconv.FormatFloat(d.mantissa, 'g', -1, 64)
	}
	return fmt.Sprintf("%se%d", strconv.FormatFloat(d.mantissa, 'g', -1, 64), d.exponent)
}
