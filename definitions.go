package metarcore

import (
	"errors"
	"regexp"
)

// Variant selects which extraction pipeline a station's reports use.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantUS
	VariantInternational
)

func (v Variant) String() string {
	switch v {
	case VariantUS:
		return "US"
	case VariantInternational:
		return "International"
	}
	return "unknown"
}

// Config carries decoding options. The zero value is the default behavior.
type Config struct {
	// LegacyVariantPrecedence restores the historical dispatch order that
	// checked the single-letter US table before the two-letter M sub-tables,
	// routing every M-prefixed station to the US pipeline.
	LegacyVariantPrecedence bool
}

// Region prefix tables for the variant selector. The M prefix appears in both
// single-letter tables; the two-letter sub-tables split Central America
// between the two conventions.
var (
	usRegions   = map[byte]bool{'C': true, 'K': true, 'P': true, 'T': true, 'M': true}
	intlRegions = map[byte]bool{
		'A': true, 'B': true, 'D': true, 'E': true, 'F': true, 'G': true,
		'H': true, 'L': true, 'N': true, 'O': true, 'R': true, 'S': true,
		'U': true, 'V': true, 'W': true, 'Y': true, 'Z': true, 'M': true,
	}
	usMStations = map[string]bool{
		"MB": true, "MM": true, "MT": true, "MY": true,
	}
	intlMStations = map[string]bool{
		"MD": true, "MG": true, "MH": true, "MK": true, "MN": true, "MP": true,
		"MR": true, "MS": true, "MU": true, "MW": true, "MZ": true,
	}
)

// Cloud layer types claimed by the cloud extractor.
var cloudTypes = map[string]bool{
	"FEW": true, "SCT": true, "BKN": true, "OVC": true,
}

// Tokens dropped outright by the sanitizer. NSC/CLR/SKC/NCD all mean an empty
// cloud list; AUTO/COR flag the report itself; $ flags station maintenance.
var noiseTokens = map[string]bool{
	"AUTO": true, "COR": true, "NSC": true, "CLR": true,
	"SKC": true, "NCD": true, "$": true,
}

// Weather phenomenon codes for the translator.
var wxReplacements = map[string]string{
	"RA": "Rain", "TS": "Thunderstorm", "SH": "Showers", "DZ": "Drizzle",
	"VC": "Vicinity", "UP": "Unknown Precip", "SN": "Snow", "FZ": "Freezing",
	"SG": "Snow Grains", "IC": "Ice Crystals", "PL": "Ice Pellets",
	"GR": "Hail", "GS": "Small Hail", "FG": "Fog", "BR": "Mist", "HZ": "Haze",
	"VA": "Volcanic Ash", "DU": "Wide Dust", "FU": "Smoke", "SA": "Sand",
	"SY": "Spray", "SQ": "Squall", "PO": "Dust Whirls", "DS": "Duststorm",
	"SS": "Sandstorm", "FC": "Funnel Cloud",
}

// Commonly used regular expressions
var (
	timeRegex      = regexp.MustCompile(`^\d{6}Z$`)
	windVarRegex   = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
	gustTokenRegex = regexp.MustCompile(`^G\d{0,2}$`)
	windSlashRegex = regexp.MustCompile(`^(\d{3})/(\d{2,3})$`)
	rvrRegex       = regexp.MustCompile(`^R\d{2}[A-Z]?/\d+`)
	recentWxRegex  = regexp.MustCompile(`^RE[A-Z]{2}([A-Z]{2})?$`)
	metersRegex    = regexp.MustCompile(`^\d{4}$`)
	digitsRegex    = regexp.MustCompile(`^\d+$`)
)

// Wind represents the surface wind group. Direction and Speed are always
// populated together; a Report either carries a full Wind or none at all.
type Wind struct {
	Direction    string // three digits or "VRB"
	Speed        int
	Gust         int // 0 when no gust was reported
	VariableFrom string
	VariableTo   string
}

// Cloud represents one cloud layer.
type Cloud struct {
	Type     string // FEW, SCT, BKN, OVC, or VV
	Height   string // three-character height code, may contain "/" placeholders
	Modifier string // trailing modifier such as CB or TCU
}

// Report is the decoded form of a single METAR. It is built once by Decode
// and never mutated afterward.
type Report struct {
	Raw     string
	Station string
	Time    string // raw DDHHMMZ token, empty if malformed
	Variant Variant

	Wind              *Wind
	Visibility        string // statute miles for US, meters for International; "9999" for CAVOK
	RunwayVisualRange []string
	Altimeter         string // hundredths of inHg (US) or hPa (International)
	Temperature       *int
	Dewpoint          *int
	Clouds            []Cloud
	Other             []string
	Remarks           string
}

// Hard decode failures. Per-field mismatches never surface as errors; they
// leave the field absent instead.
var (
	ErrShortReport        = errors.New("report too short to contain station and time")
	ErrUnsupportedStation = errors.New("station prefix matches no known region")
)
