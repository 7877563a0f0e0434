package metarcore

import (
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// FlightRules is the operational category derived from visibility and
// ceiling. It is computed on demand and never stored in a Report.
type FlightRules int

const (
	VFR FlightRules = iota
	MVFR
	IFR
	LIFR
)

func (f FlightRules) String() string {
	switch f {
	case VFR:
		return "VFR"
	case MVFR:
		return "MVFR"
	case IFR:
		return "IFR"
	case LIFR:
		return "LIFR"
	}
	return "N/A"
}

// Ceiling returns the lowest layer that constitutes a ceiling: the first
// BKN, OVC, or VV layer whose height is numeric. Layers with placeholder
// heights such as "///" are skipped. Returns nil when no layer qualifies.
func Ceiling(clouds []Cloud) *Cloud {
	for i := range clouds {
		c := &clouds[i]
		if c.Type != "BKN" && c.Type != "OVC" && c.Type != "VV" {
			continue
		}
		if _, err := strconv.Atoi(c.Height); err == nil {
			return c
		}
	}
	return nil
}

// Classify runs the flight-rules decision tree. Visibility is in statute
// miles, ceiling in hundreds of feet. A nil visibility reports IFR
// regardless of ceiling: a station that cannot measure visibility is treated
// as instrument conditions.
func Classify(visibility *float64, ceiling int) FlightRules {
	if visibility == nil {
		return IFR
	}
	vis := *visibility
	if vis < 5 || ceiling < 30 {
		if vis < 3 || ceiling < 10 {
			if vis < 1 || ceiling < 5 {
				return LIFR
			}
			return IFR
		}
		return MVFR
	}
	return VFR
}

// FlightRules derives the category from the report's visibility and lowest
// ceiling layer. Without a qualifying ceiling layer the ceiling defaults to
// 99, high enough to never trip a threshold.
func (r Report) FlightRules() FlightRules {
	ceiling := 99
	if c := Ceiling(r.Clouds); c != nil {
		ceiling, _ = strconv.Atoi(c.Height)
	}
	return Classify(r.visibilityMiles(), ceiling)
}

// visibilityMiles converts the stored visibility to statute miles. An
// M-prefixed fraction means "less than" and collapses to zero; International
// values are meter counts.
func (r Report) visibilityMiles() *float64 {
	vis := r.Visibility
	if vis == "" {
		return nil
	}
	if strings.Contains(vis, "/") {
		if strings.HasPrefix(vis, "M") {
			return ptr.To(0.0)
		}
		parts := strings.SplitN(vis, "/", 2)
		num, numErr := strconv.Atoi(parts[0])
		den, denErr := strconv.Atoi(parts[1])
		if numErr != nil || denErr != nil || den == 0 {
			return nil
		}
		return ptr.To(float64(num) / float64(den))
	}
	v, err := strconv.Atoi(vis)
	if err != nil {
		return nil
	}
	if r.Variant == VariantInternational {
		return ptr.To(float64(v) * MilesPerMeter)
	}
	return ptr.To(float64(v))
}
