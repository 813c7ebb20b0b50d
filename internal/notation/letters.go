package notation

import (
	"slices"
	"strings"
)

// RepresentExponentWithAlphabet writes x in bijective base len(alphabet)
//
// 1 -> A, 26 -> Z, 27 -> AA with the latin alphabet. x must be positive.
func RepresentExponentWithAlphabet(x int64, alphabet []string) string {
	length := int64(len(alphabet))

	var symbols []string
	for x > 0 {
		symbols = append(symbols, alphabet[(x-1)%length])
		x = (x - 1) / length
	}
	slices.Reverse(symbols)
	return strings.Join(symbols, "")
}
