package metarcore

import (
	"fmt"
	"strings"
)

// MilesPerMeter converts a meter visibility to statute miles.
const MilesPerMeter = 0.000621371

// identAlphabet is the fixed symbol set for station identifier selection:
// the letters A through Z followed by the digits 0 through 9.
const identAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IdentToStation converts selector indices into a station identifier.
func IdentToStation(idents []int) (string, error) {
	var b strings.Builder
	for _, n := range idents {
		if n < 0 || n >= len(identAlphabet) {
			return "", fmt.Errorf("ident index out of range: %d", n)
		}
		b.WriteByte(identAlphabet[n])
	}
	return b.String(), nil
}

// StationToIdent converts a station identifier into selector indices. It is
// the inverse of IdentToStation for identifiers drawn from the alphabet.
func StationToIdent(station string) ([]int, error) {
	idents := make([]int, 0, len(station))
	for i := 0; i < len(station); i++ {
		idx := strings.IndexByte(identAlphabet, station[i])
		if idx == -1 {
			return nil, fmt.Errorf("character %q is not a station ident symbol", station[i])
		}
		idents = append(idents, idx)
	}
	return idents, nil
}
