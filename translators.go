package metarcore

import "strings"

// TranslateWX expands a weather phenomenon code into descriptive text. After
// stripping an intensity prefix the code is read two characters at a time;
// known pairs translate with a trailing space, unknown pairs pass through
// verbatim. A token that is not 2, 4, or 6 characters after the prefix is
// not a phenomenon code and comes back unmodified.
func TranslateWX(wx string) string {
	out := ""
	rest := wx
	switch {
	case strings.HasPrefix(rest, "+"):
		out = "Heavy "
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		out = "Light "
		rest = rest[1:]
	}
	if n := len(rest); n != 2 && n != 4 && n != 6 {
		return wx
	}
	for len(rest) > 0 {
		if desc, ok := wxReplacements[rest[:2]]; ok {
			out += desc + " "
		} else {
			out += rest[:2]
		}
		rest = rest[2:]
	}
	return out
}
