package metarcore

import (
	"fmt"
	"strings"
)

// Decode parses a raw METAR report using the default configuration.
func Decode(raw string) (Report, error) {
	return DecodeWithConfig(Config{}, raw)
}

// DecodeWithConfig parses a raw METAR report. Only two conditions abort a
// decode: a report too short to name a station, and a station identifier no
// region table recognizes. Any individual field that fails to match its
// expected shape is left absent rather than failing the whole report.
func DecodeWithConfig(cfg Config, raw string) (Report, error) {
	body, remarks := splitRemarks(raw)
	tokens := strings.Fields(body)
	if len(tokens) < 2 {
		return Report{}, ErrShortReport
	}
	variant, err := selectVariant(tokens[0], cfg.LegacyVariantPrecedence)
	if err != nil {
		return Report{}, err
	}
	tokens, rvr := sanitize(tokens)

	r := Report{
		Raw:               raw,
		Variant:           variant,
		RunwayVisualRange: rvr,
		Remarks:           remarks,
	}
	r.Altimeter, tokens = extractAltimeter(tokens, variant)
	r.Temperature, r.Dewpoint, tokens = extractTempDew(tokens)
	r.Station, r.Time, tokens = extractStationTime(tokens)
	r.Wind, tokens = extractWind(tokens)

	switch variant {
	case VariantUS:
		r.Visibility, tokens = extractVisibilityUS(tokens)
		r.Clouds, tokens = extractClouds(tokens)
	case VariantInternational:
		var cavok bool
		r.Visibility, cavok, tokens = extractVisibilityIntl(tokens)
		if !cavok {
			r.Clouds, tokens = extractClouds(tokens)
		}
	}
	r.Other = tokens
	return r, nil
}

// selectVariant routes a station identifier to its extraction pipeline. The
// M prefix appears in both single-letter tables, so it is resolved through
// the two-letter sub-tables first, defaulting to the US pipeline for pairs
// neither sub-table lists. The legacy ordering instead checks the
// single-letter US table before anything else, which routes every M station
// to the US pipeline.
func selectVariant(station string, legacy bool) (Variant, error) {
	if station == "" {
		return VariantUnknown, fmt.Errorf("%w: empty identifier", ErrUnsupportedStation)
	}
	first := station[0]
	if legacy {
		if usRegions[first] {
			return VariantUS, nil
		}
		if intlRegions[first] {
			return VariantInternational, nil
		}
		return VariantUnknown, fmt.Errorf("%w: %s", ErrUnsupportedStation, station)
	}
	if usRegions[first] && intlRegions[first] {
		if len(station) >= 2 {
			if usMStations[station[:2]] {
				return VariantUS, nil
			}
			if intlMStations[station[:2]] {
				return VariantInternational, nil
			}
		}
		return VariantUS, nil
	}
	if usRegions[first] {
		return VariantUS, nil
	}
	if intlRegions[first] {
		return VariantInternational, nil
	}
	return VariantUnknown, fmt.Errorf("%w: %s", ErrUnsupportedStation, station)
}
