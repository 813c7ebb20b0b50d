package notation_test

import (
	"testing"

	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/notation"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, notation.DefaultOptions().Validate())
	})

	t.Run("largest base is valid", func(t *testing.T) {
		opts := notation.DefaultOptions()
		opts.DisplayBase = 36
		require.NoError(t, opts.Validate())
	})

	tests := []struct {
		name   string
		modify func(*notation.Options)
	}{
		{"display base too small", func(o *notation.Options) { o.DisplayBase = 1 }},
		{"display base without digits", func(o *notation.Options) { o.DisplayBase = 37 }},
		{"digits missing", func(o *notation.Options) { o.DisplayDigits = "" }},
		{"duplicate digits", func(o *notation.Options) { o.DisplayDigits = "0120" }},
		{"exponent base too small", func(o *notation.Options) { o.ExponentBase = 0 }},
		{"alphabet missing", func(o *notation.Options) { o.Alphabet = "" }},
		{"duplicate letters", func(o *notation.Options) { o.Alphabet = "ABA" }},
		{"negative comma minimum", func(o *notation.Options) { o.ExponentCommas.Min = -1 }},
		{"comma maximum below minimum", func(o *notation.Options) { o.ExponentCommas.Max = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := notation.DefaultOptions()
			tt.modify(&opts)
			require.ErrorIs(t, opts.Validate(), domain.ErrInvalidDisplayOptions)
		})
	}

	t.Run("duplicates past the base are allowed", func(t *testing.T) {
		opts := notation.DefaultOptions()
		opts.DisplayBase = 3
		opts.DisplayDigits = "0120"
		require.NoError(t, opts.Validate())
	})
}
