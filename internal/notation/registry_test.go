package notation_test

import (
	"testing"

	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/notation"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := notation.NewRegistry()

	t.Run("names", func(t *testing.T) {
		expected := map[notation.ID]string{
			notation.TimeScientific:    "Scientific",
			notation.Scientific:        "Scientific",
			notation.Standard:          "Standard",
			notation.Logarithm:         "Logarithm",
			notation.Letters:           "Letters",
			notation.Engineering:       "Engineering",
			notation.MixedScientific:   "Mixed Scientific",
			notation.MixedEngineering:  "Mixed Engineering",
			notation.MixedLogarithmSci: "Mixed Logarithm (Sci)",
		}

		require.Len(t, registry.All(), len(expected))
		for id, name := range expected {
			n, ok := registry.Lookup(id)
			require.True(t, ok)
			require.Equal(t, id, n.ID())
			require.Equal(t, name, n.Name())
		}
	})

	t.Run("ids are in menu order", func(t *testing.T) {
		ids := registry.IDs()
		require.Equal(t, notation.TimeScientific, ids[0])
		require.Equal(t, notation.MixedLogarithmSci, ids[len(ids)-1])
		for i, n := range registry.All() {
			require.Equal(t, ids[i], n.ID())
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := registry.Lookup("roman")
		require.False(t, ok)
	})

	t.Run("All returns a copy", func(t *testing.T) {
		all := registry.All()
		all[0] = all[1]
		require.Equal(t, notation.TimeScientific, registry.All()[0].ID())
	})
}

func TestParseID(t *testing.T) {
	for _, id := range notation.NewRegistry().IDs() {
		t.Run(string(id), func(t *testing.T) {
			parsed, err := notation.ParseID(string(id))
			require.NoError(t, err)
			require.Equal(t, id, parsed)
		})
	}

	for _, raw := range []string{"", "Scientific", "roman", "mixed scientific"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := notation.ParseID(raw)
			require.ErrorIs(t, err, domain.ErrUnknownNotation)
		})
	}
}
