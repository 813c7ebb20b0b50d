package notation

import (
	"fmt"
	"slices"

	"github.com/Amund211/notations/internal/domain"
)

var (
	timeScientificNotation = Notation{
		id:        TimeScientific,
		name:      "Scientific",
		mantissa:  mantissaBaseTen,
		fixedBase: 10,
		basePower: 1,
		steps:     1,
		exponent:  exponentSelf,
		separator: "e",
	}
	scientificNotation = Notation{
		id:        Scientific,
		name:      "Scientific",
		basePower: 1,
		steps:     1,
		exponent:  exponentSelf,
		separator: "e",
	}
	standardNotation = Notation{
		id:        Standard,
		name:      "Standard",
		basePower: 3,
		steps:     1,
		exponent:  exponentStandard,
		separator: " ",
	}
	logarithmNotation = Notation{
		id:       Logarithm,
		name:     "Logarithm",
		exponent: exponentLogarithm,
	}
	engineeringNotation = Notation{
		id:        Engineering,
		name:      "Engineering",
		basePower: 1,
		steps:     3,
		exponent:  exponentSelf,
		separator: "e",
	}
	lettersNotation = Notation{
		id:        Letters,
		name:      "Letters",
		basePower: 1,
		steps:     1,
		exponent:  exponentLetters,
		separator: "",
	}
	mixedScientificNotation = Notation{
		id:        MixedScientific,
		name:      "Mixed Scientific",
		basePower: 1,
		steps:     1,
		exponent:  exponentSelf,
		separator: "e",
		delegate:  &standardNotation,
	}
	mixedEngineeringNotation = Notation{
		id:        MixedEngineering,
		name:      "Mixed Engineering",
		basePower: 1,
		steps:     3,
		exponent:  exponentSelf,
		separator: "e",
		delegate:  &standardNotation,
	}
	mixedLogarithmSciNotation = Notation{
		id:       MixedLogarithmSci,
		name:     "Mixed Logarithm (Sci)",
		exponent: exponentLogarithm,
		delegate: &scientificNotation,
	}
)

// Registry is the fixed catalog of notations
type Registry struct {
	notations []Notation
	byID      map[ID]Notation
}

func NewRegistry() *Registry {
	notations := []Notation{
		timeScientificNotation,
		scientificNotation,
		standardNotation,
		logarithmNotation,
		lettersNotation,
		engineeringNotation,
		mixedScientificNotation,
		mixedEngineeringNotation,
		mixedLogarithmSciNotation,
	}

	byID := make(map[ID]Notation, len(notations))
	for _, n := range notations {
		if _, ok := byID[n.id]; ok {
			panic(fmt.Sprintf("logic error: duplicate notation id %s", n.id))
		}
		byID[n.id] = n
	}

	return &Registry{
		notations: notations,
		byID:      byID,
	}
}

func (r *Registry) Lookup(id ID) (Notation, bool) {
	n, ok := r.byID[id]
	return n, ok
}

// All returns the notations in menu order
func (r *Registry) All() []Notation {
	return slices.Clone(r.notations)
}

func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.notations))
	for i, n := range r.notations {
		ids[i] = n.id
	}
	return ids
}

func ParseID(raw string) (ID, error) {
	id := ID(raw)
	switch id {
	case TimeScientific, Scientific, Standard, Logarithm, Engineering, Letters,
		MixedScientific, MixedEngineering, MixedLogarithmSci:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownNotation, raw)
	}
}
