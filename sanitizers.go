package metarcore

import "strings"

// Markers that introduce a trend or remarks section, in precedence order.
var remarkMarkers = []string{"BECMG", "TEMPO", "RMK"}

// splitRemarks separates the report body from any trailing trend or remarks
// section. Trend markers stay part of the remarks text; the RMK keyword
// itself is stripped. A lone ? is a corrupted-feed artifact and is treated
// as a space.
func splitRemarks(raw string) (body, remarks string) {
	raw = strings.ReplaceAll(raw, "?", " ")
	for _, marker := range remarkMarkers {
		idx := strings.Index(raw, marker)
		if idx == -1 {
			continue
		}
		body = strings.TrimSpace(raw[:idx])
		remarks = strings.TrimSpace(raw[idx:])
		if marker == "RMK" {
			remarks = strings.TrimSpace(strings.TrimPrefix(remarks, "RMK"))
		}
		return body, remarks
	}
	return strings.TrimSpace(raw), ""
}

// sanitize normalizes the body tokens in one pass: drops noise tokens,
// re-merges groups split by upstream feeds, removes recent-weather groups,
// and pulls runway visual range tokens out of the sequence. It never fails;
// unrecognized tokens pass through unchanged for later extractors.
func sanitize(tokens []string) (clean, rvr []string) {
	clean = make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok == "" || noiseTokens[tok]:
		case tok == "M":
			// leftover calm marker after a 00000KT group
		case tok == "KT" || tok == "SM":
			// unit suffix split off its value group; stray otherwise
			if n := len(clean); n > 0 && digitsRegex.MatchString(clean[n-1]) {
				clean[n-1] += tok
			}
		case rvrRegex.MatchString(tok):
			rvr = append(rvr, tok)
		case recentWxRegex.MatchString(tok):
			// recent-weather groups are not retained
		case len(tok) == 3 && digitsRegex.MatchString(tok) && endsWithBareCloudType(clean):
			clean[len(clean)-1] += tok
		default:
			clean = append(clean, tok)
		}
	}
	return clean, rvr
}

func endsWithBareCloudType(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	return cloudTypes[last] || last == "VV"
}
