package metarcore

import (
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// extractAltimeter takes the altimeter group off the tail of the token
// sequence. US reports carry an A-prefixed value in hundredths of inHg,
// International reports a Q-prefixed value in hPa.
func extractAltimeter(tokens []string, variant Variant) (string, []string) {
	if len(tokens) == 0 {
		return "", tokens
	}
	prefix := byte('A')
	if variant == VariantInternational {
		prefix = 'Q'
	}
	last := tokens[len(tokens)-1]
	if len(last) == 5 && last[0] == prefix && digitsRegex.MatchString(last[1:]) {
		return last[1:], tokens[:len(tokens)-1]
	}
	return "", tokens
}

// extractTempDew takes the temperature/dewpoint group off the tail. The group
// is a "/"-separated pair where a leading M marks a negative value. A missing
// half leaves that pointer nil.
func extractTempDew(tokens []string) (temp, dew *int, rest []string) {
	rest = tokens
	if len(rest) == 0 {
		return nil, nil, rest
	}
	last := rest[len(rest)-1]
	if !strings.Contains(last, "/") {
		return nil, nil, rest
	}
	rest = rest[:len(rest)-1]
	parts := strings.SplitN(last, "/", 2)
	return parseTemperature(parts[0]), parseTemperature(parts[1]), rest
}

func parseTemperature(s string) *int {
	neg := strings.HasPrefix(s, "M")
	if neg {
		s = s[1:]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	if neg {
		v = -v
	}
	return ptr.To(v)
}

// extractStationTime claims the station identifier and, when it has the
// DDHHMMZ shape, the observation time from the head of the sequence.
func extractStationTime(tokens []string) (station, tm string, rest []string) {
	if len(tokens) == 0 {
		return "", "", tokens
	}
	station = tokens[0]
	rest = tokens[1:]
	if len(rest) > 0 && timeRegex.MatchString(rest[0]) {
		tm = rest[0]
		rest = rest[1:]
	}
	return station, tm, rest
}

// extractWind claims the surface wind group from the head of the sequence.
// Five token shapes are recognized, tried in order: a KT/KTS-suffixed group,
// a bare five-digit group, a long gust group that lost its unit, an
// MPS-suffixed group, and the ddd/ss slash form. A following Gnn token or
// dddVddd range belongs to the group and is consumed with it. A token that
// matches a shape but fails to parse numerically is still consumed; the wind
// is simply absent.
func extractWind(tokens []string) (*Wind, []string) {
	if len(tokens) == 0 {
		return nil, tokens
	}
	tok := tokens[0]
	var body string
	switch {
	case strings.HasSuffix(tok, "KTS"):
		body = tok[:len(tok)-3]
	case strings.HasSuffix(tok, "KT"):
		body = tok[:len(tok)-2]
	case len(tok) == 5 && digitsRegex.MatchString(tok):
		body = tok
	case len(tok) >= 8 && strings.Contains(tok, "G") &&
		!strings.Contains(tok, "/") && !strings.Contains(tok, "MPS"):
		body = tok
	case strings.HasSuffix(tok, "MPS"):
		body = tok[:len(tok)-3]
	case windSlashRegex.MatchString(tok):
		m := windSlashRegex.FindStringSubmatch(tok)
		body = m[1] + m[2]
	default:
		return nil, tokens
	}
	rest := tokens[1:]

	w := parseWindBody(body)
	if w != nil {
		if len(rest) > 0 && gustTokenRegex.MatchString(rest[0]) {
			if g, err := strconv.Atoi(rest[0][1:]); err == nil {
				w.Gust = g
			}
			rest = rest[1:]
		}
		if len(rest) > 0 && windVarRegex.MatchString(rest[0]) {
			m := windVarRegex.FindStringSubmatch(rest[0])
			w.VariableFrom, w.VariableTo = m[1], m[2]
			rest = rest[1:]
		}
	}
	return w, rest
}

// parseWindBody splits a unit-stripped wind group into direction, speed, and
// an optional embedded gust.
func parseWindBody(body string) *Wind {
	if len(body) < 5 {
		return nil
	}
	w := &Wind{Direction: body[:3]}
	speedStr := body[3:]
	gustStr := ""
	if g := strings.IndexByte(speedStr, 'G'); g != -1 {
		gustStr = speedStr[g+1:]
		speedStr = speedStr[:g]
	}
	speed, err := strconv.Atoi(speedStr)
	if err != nil {
		return nil
	}
	w.Speed = speed
	if gustStr != "" {
		gust, err := strconv.Atoi(gustStr)
		if err != nil {
			return nil
		}
		w.Gust = gust
	}
	return w
}

// extractVisibilityUS claims a statute-mile visibility from the head: either
// a single SM-suffixed token, or a whole-number token followed by a fraction
// token, folded into a single improper fraction.
func extractVisibilityUS(tokens []string) (string, []string) {
	if len(tokens) == 0 {
		return "", tokens
	}
	if strings.HasSuffix(tokens[0], "SM") {
		vis := strings.TrimSuffix(tokens[0], "SM")
		if v, err := strconv.Atoi(vis); err == nil {
			vis = strconv.Itoa(v)
		}
		return vis, tokens[1:]
	}
	if len(tokens) > 1 && strings.HasSuffix(tokens[1], "SM") {
		whole, err := strconv.Atoi(tokens[0])
		frac := strings.TrimSuffix(tokens[1], "SM")
		if err == nil && len(frac) == 3 && frac[1] == '/' && frac[2] != '0' {
			num := int(frac[0] - '0')
			den := int(frac[2] - '0')
			return strconv.Itoa(whole*den+num) + "/" + strconv.Itoa(den), tokens[2:]
		}
	}
	return "", tokens
}

// extractVisibilityIntl claims a meter visibility from the head. CAVOK
// anywhere in the sequence stands in for unrestricted visibility; the caller
// must then skip cloud extraction, since CAVOK also asserts an empty sky.
func extractVisibilityIntl(tokens []string) (vis string, cavok bool, rest []string) {
	for i, tok := range tokens {
		if tok == "CAVOK" {
			rest = append(append(rest, tokens[:i]...), tokens[i+1:]...)
			return "9999", true, rest
		}
	}
	if len(tokens) > 0 && metersRegex.MatchString(tokens[0]) {
		return tokens[0], false, tokens[1:]
	}
	return "", false, tokens
}

// extractClouds claims every layer token, preserving report order. Tokens
// open with a known coverage code (or the two-character VV prefix) and split
// at fixed widths into type, height, and modifier.
func extractClouds(tokens []string) ([]Cloud, []string) {
	var clouds []Cloud
	var rest []string
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "VV"):
			clouds = append(clouds, splitCloud(tok, 2))
		case len(tok) >= 3 && cloudTypes[tok[:3]]:
			clouds = append(clouds, splitCloud(tok, 3))
		default:
			rest = append(rest, tok)
		}
	}
	return clouds, rest
}

// splitCloud cuts a layer token into type, height, and modifier. Two known
// feed defects are repaired first: a modifier letter embedded before the
// height is moved behind it, and a letter O in the height field is read as a
// zero.
func splitCloud(tok string, prefix int) Cloud {
	typ, body := tok[:prefix], tok[prefix:]
	for i := 0; i < len(body) && len(body) > 3 && !isHeightChar(body[0]); i++ {
		body = body[1:] + body[:1]
	}
	height, modifier := body, ""
	if len(body) > 3 {
		height, modifier = body[:3], body[3:]
	}
	height = strings.ReplaceAll(height, "O", "0")
	return Cloud{Type: typ, Height: height, Modifier: modifier}
}

func isHeightChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '/'
}
