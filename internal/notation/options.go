package notation

import (
	"fmt"
	"unicode/utf8"

	"github.com/Amund211/notations/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultDisplayDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Options are the display settings every notation reads when formatting
type Options struct {
	// Radix used when writing mantissas and plain numbers
	DisplayBase int `validate:"gte=2"`
	// Symbols for the digits of DisplayBase, one rune per digit
	DisplayDigits string `validate:"required"`
	// Base the exponent is computed in
	ExponentBase int `validate:"gte=2"`
	// Symbols used by the Letters notation
	Alphabet string `validate:"required"`

	ExponentCommas CommaOptions
}

// CommaOptions control how mid-sized exponents are written
//
// Exponents below Min are written as plain numbers, exponents in [Min, Max) get
// comma grouping when Show is set, larger exponents are formatted recursively.
type CommaOptions struct {
	Show bool
	Min  float64 `validate:"gte=0"`
	Max  float64 `validate:"gtefield=Min"`
}

func DefaultOptions() Options {
	return Options{
		DisplayBase:   10,
		DisplayDigits: DefaultDisplayDigits,
		ExponentBase:  10,
		Alphabet:      DefaultAlphabet,
		ExponentCommas: CommaOptions{
			Show: true,
			Min:  100000,
			Max:  1e9,
		},
	}
}

var optionsValidate = validator.New()

func (o Options) Validate() error {
	err := optionsValidate.Struct(o)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDisplayOptions, err)
	}

	digitCount := utf8.RuneCountInString(o.DisplayDigits)
	if o.DisplayBase > digitCount {
		return fmt.Errorf("%w: display base %d needs %d digits, got %d", domain.ErrInvalidDisplayOptions, o.DisplayBase, o.DisplayBase, digitCount)
	}
	if !distinctRunes(o.DisplayDigits[:runeOffset(o.DisplayDigits, o.DisplayBase)]) {
		return fmt.Errorf("%w: display digits contain duplicates", domain.ErrInvalidDisplayOptions)
	}
	if !distinctRunes(o.Alphabet) {
		return fmt.Errorf("%w: alphabet contains duplicates", domain.ErrInvalidDisplayOptions)
	}

	return nil
}

func (o Options) digits() []rune {
	return []rune(o.DisplayDigits)
}

func (o Options) alphabet() []string {
	symbols := make([]string, 0, utf8.RuneCountInString(o.Alphabet))
	for _, r := range o.Alphabet {
		symbols = append(symbols, string(r))
	}
	return symbols
}

func distinctRunes(s string) bool {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			return false
		}
		seen[r] = struct{}{}
	}
	return true
}

// runeOffset returns the byte offset of the n-th rune, or len(s)
func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
