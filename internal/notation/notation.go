package notation

import (
	"math"

	"github.com/Amund211/notations/internal/bignum"
)

type ID string

const (
	TimeScientific    ID = "time-scientific"
	Scientific        ID = "scientific"
	Standard          ID = "standard"
	Logarithm         ID = "logarithm"
	Engineering       ID = "engineering"
	Letters           ID = "letters"
	MixedScientific   ID = "mixed-scientific"
	MixedEngineering  ID = "mixed-engineering"
	MixedLogarithmSci ID = "mixed-logarithm-sci"
)

type mantissaKind int

const (
	mantissaDisplay mantissaKind = iota
	mantissaBaseTen
)

type exponentKind int

const (
	// The exponent is formatted by the notation itself
	exponentSelf exponentKind = iota
	exponentStandard
	exponentLetters
	// No mantissa, the value is replaced by its logarithm
	exponentLogarithm
)

const infinite = "Infinite"

var (
	switchOverPoint     = bignum.FromFloat(1000)
	delegationThreshold = bignum.FromMantissaExponent(1, 33)
)

// Notation is one way of writing numbers on screen
//
// Values below 1000 are written as plain digits, larger ones as a mantissa and
// an exponent. Notations are immutable and read all display settings from the
// Options passed to each call.
type Notation struct {
	id   ID
	name string

	mantissa mantissaKind
	// fixedBase overrides Options.ExponentBase when non-zero
	fixedBase int
	// basePower raises the exponent base before splitting, Standard counts in thousands
	basePower int
	steps     int
	exponent  exponentKind
	separator string

	// Values below 1e33 are handed to delegate when set
	delegate *Notation
}

func (n Notation) ID() ID {
	return n.id
}

// Name is the label shown in the options menu. It is not unique.
func (n Notation) Name() string {
	return n.name
}

func (n Notation) Format(value bignum.Decimal, places, placesUnder1000 int, opts Options) string {
	if value.IsNaN() {
		return "NaN"
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}

	if !value.IsFinite() {
		return sign + infinite
	}
	if !value.IsZero() && value.Exponent() < -300 {
		return n.FormatUnder1000(0, placesUnder1000, opts)
	}

	abs := value.Abs()
	if abs.Gte(switchOverPoint) {
		return sign + n.FormatDecimal(abs, places, opts)
	}
	return sign + n.FormatUnder1000(abs.Float64(), placesUnder1000, opts)
}

func (n Notation) FormatUnder1000(value float64, places int, opts Options) string {
	return n.formatMantissa(opts)(value, places)
}

// FormatDecimal formats a value of at least 1000
func (n Notation) FormatDecimal(value bignum.Decimal, places int, opts Options) string {
	if n.delegate != nil && value.Lt(delegationThreshold) {
		return n.delegate.FormatDecimal(value, places, opts)
	}

	mantissa := n.formatMantissa(opts)
	base := n.exponentBase(opts)

	var exponent exponentFormat
	switch n.exponent {
	case exponentLogarithm:
		return "e" + n.formatExponent(value.Log(base), places, mantissa, 0, opts)
	case exponentStandard:
		exponent = func(thousands float64, _ int) string {
			return abbreviateStandard(int64(thousands))
		}
	case exponentLetters:
		alphabet := opts.alphabet()
		exponent = func(e float64, _ int) string {
			return RepresentExponentWithAlphabet(int64(e), alphabet)
		}
	default:
		integer := func(e float64, _ int) string {
			return mantissa(e, 0)
		}
		exponent = func(e float64, places int) string {
			return n.formatExponent(e, places, integer, 0, opts)
		}
	}

	realBase := math.Pow(base, float64(n.basePower))
	return formatMantissaWithExponent(mantissa, exponent, realBase, n.steps, n.separator)(value, places)
}

// formatExponent writes small exponents with special, mid-sized ones with
// commas and formats the rest as a number of their own
func (n Notation) formatExponent(exponent float64, places int, special mantissaFormat, largePlaces int, opts Options) string {
	if exponent < opts.ExponentCommas.Min {
		return special(exponent, max(places, 1))
	}
	if opts.ExponentCommas.Show && exponent < opts.ExponentCommas.Max {
		return formatWithCommas(special(exponent, 0))
	}
	return n.FormatDecimal(bignum.FromFloat(exponent), largePlaces, opts)
}

func (n Notation) formatMantissa(opts Options) mantissaFormat {
	if n.mantissa == mantissaBaseTen {
		return formatMantissaBaseTen
	}
	return formatMantissa(opts.DisplayBase, opts.digits())
}

func (n Notation) exponentBase(opts Options) float64 {
	if n.fixedBase != 0 {
		return float64(n.fixedBase)
	}
	return float64(opts.ExponentBase)
}
