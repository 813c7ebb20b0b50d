package notation

import (
	"regexp"
	"strings"
)

var standardAbbreviations = []string{"K", "M", "B", "T", "Qa", "Qt", "Sx", "Sp", "Oc", "No"}

var standardPrefixes = [3][10]string{
	{"", "U", "D", "T", "Qa", "Qt", "Sx", "Sp", "O", "N"},
	{"", "Dc", "Vg", "Tg", "Qd", "Qi", "Se", "St", "Og", "Nn"},
	{"", "Ce", "Dn", "Tc", "Qe", "Qu", "Sc", "Si", "Oe", "Ne"},
}

var standardTiers = []string{"", "MI-", "MC-", "NA-", "PC-", "FM-", "AT-", "ZP-"}

var (
	emptyTierRx    = regexp.MustCompile(`-[A-Z]{2}-`)
	leadingUnitRx  = regexp.MustCompile(`U([A-Z]{2}-)`)
	trailingDashRx = regexp.MustCompile(`-$`)
)

// abbreviateStandard names the power of one thousand: 1 -> K, 2 -> M, 11 -> Dc
func abbreviateStandard(thousands int64) string {
	exp := thousands - 1
	if exp < 0 {
		return ""
	}
	if exp < int64(len(standardAbbreviations)) {
		return standardAbbreviations[exp]
	}

	var prefix []string
	for e := exp; e > 0; e /= 10 {
		prefix = append(prefix, standardPrefixes[len(prefix)%3][e%10])
	}
	for len(prefix)%3 != 0 {
		prefix = append(prefix, "")
	}

	var b strings.Builder
	for i := len(prefix)/3 - 1; i >= 0; i-- {
		b.WriteString(strings.Join(prefix[i*3:i*3+3], ""))
		if i < len(standardTiers) {
			b.WriteString(standardTiers[i])
		}
	}

	abbreviation := emptyTierRx.ReplaceAllString(b.String(), "-")
	abbreviation = leadingUnitRx.ReplaceAllString(abbreviation, "$1")
	return trailingDashRx.ReplaceAllString(abbreviation, "")
}
