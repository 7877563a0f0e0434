package metarcore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color definitions for output styling
var (
	labelColor   = color.New(color.FgCyan)
	stationColor = color.New(color.FgYellow, color.Bold)

	flightRulesColors = map[FlightRules]*color.Color{
		VFR:  color.New(color.FgGreen),
		MVFR: color.New(color.FgBlue),
		IFR:  color.New(color.FgRed),
		LIFR: color.New(color.FgMagenta),
	}
)

var cloudNames = map[string]string{
	"FEW": "few clouds",
	"SCT": "scattered clouds",
	"BKN": "broken clouds",
	"OVC": "overcast",
	"VV":  "vertical visibility",
}

// FormatFlightRules renders the category in its conventional color.
func FormatFlightRules(f FlightRules) string {
	if c, ok := flightRulesColors[f]; ok {
		return c.Sprint(f.String())
	}
	return f.String()
}

func formatWind(w *Wind) string {
	if w == nil {
		return ""
	}
	if w.Speed == 0 && w.Gust == 0 {
		return "Calm"
	}
	windStr := ""
	if w.Direction == "VRB" {
		windStr = "Variable"
	} else {
		windStr = fmt.Sprintf("From %s°", w.Direction)
	}
	windStr += fmt.Sprintf(" at %d kt", w.Speed)
	if w.Gust > 0 {
		windStr += fmt.Sprintf(", gusting to %d kt", w.Gust)
	}
	if w.VariableFrom != "" && w.VariableTo != "" {
		windStr += fmt.Sprintf(", varying between %s° and %s°", w.VariableFrom, w.VariableTo)
	}
	return windStr
}

func formatVisibility(vis string, variant Variant) string {
	if vis == "" {
		return ""
	}
	if variant == VariantInternational {
		if vis == "9999" {
			return "10+ km"
		}
		return vis + " meters"
	}
	return vis + " statute miles"
}

func formatClouds(clouds []Cloud) string {
	if len(clouds) == 0 {
		return "Clear"
	}
	parts := make([]string, 0, len(clouds))
	for _, c := range clouds {
		name := c.Type
		if n, ok := cloudNames[c.Type]; ok {
			name = n
		}
		desc := name
		if h, err := strconv.Atoi(c.Height); err == nil {
			desc = fmt.Sprintf("%s at %s feet", name, formatNumberWithCommas(h*100))
		}
		if c.Modifier != "" {
			desc += " (" + c.Modifier + ")"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, ", ")
}

func formatAltimeter(alt string, variant Variant) string {
	if alt == "" {
		return ""
	}
	if variant == VariantUS && len(alt) == 4 {
		return alt[:2] + "." + alt[2:] + " inHg"
	}
	return alt + " hPa"
}

func formatTime(tm string) string {
	if len(tm) != 7 {
		return tm
	}
	return fmt.Sprintf("day %s at %s:%sZ", tm[:2], tm[2:4], tm[4:6])
}

func formatNumberWithCommas(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatReport renders a decoded report for terminal display. Absent fields
// are omitted.
func FormatReport(r Report) string {
	var sb strings.Builder
	line := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(labelColor.Sprintf("%s: ", label))
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	line("Station", stationColor.Sprint(r.Station))
	line("Time", formatTime(r.Time))
	line("Flight Rules", FormatFlightRules(r.FlightRules()))
	line("Wind", formatWind(r.Wind))
	line("Visibility", formatVisibility(r.Visibility, r.Variant))
	line("Clouds", formatClouds(r.Clouds))
	if r.Temperature != nil {
		line("Temperature", fmt.Sprintf("%d°C", *r.Temperature))
	}
	if r.Dewpoint != nil {
		line("Dewpoint", fmt.Sprintf("%d°C", *r.Dewpoint))
	}
	line("Altimeter", formatAltimeter(r.Altimeter, r.Variant))
	if len(r.RunwayVisualRange) > 0 {
		line("RVR", strings.Join(r.RunwayVisualRange, ", "))
	}
	if len(r.Other) > 0 {
		wx := make([]string, 0, len(r.Other))
		for _, o := range r.Other {
			wx = append(wx, strings.TrimSpace(TranslateWX(o)))
		}
		line("Weather", strings.Join(wx, ", "))
	}
	line("Remarks", r.Remarks)
	return sb.String()
}
