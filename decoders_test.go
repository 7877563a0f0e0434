package metarcore

import (
	"iter"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/rmitchellscott/metarcore/testdata"
)

func decodeList(t *testing.T) iter.Seq2[string, Report] {
	return func(yield func(string, Report) bool) {
		scanner := testdata.METAR(t)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			r, err := Decode(line)
			require.NoError(t, err, line)
			if !yield(line, r) {
				return
			}
		}
	}
}

func TestDecode_stationCode(t *testing.T) {
	t.Parallel()
	for line, r := range decodeList(t) {
		fields := strings.Fields(line)
		assert.Equal(t, fields[0], r.Station, line)
	}
}

func TestDecode_time(t *testing.T) {
	t.Parallel()
	for line, r := range decodeList(t) {
		fields := strings.Fields(line)
		assert.Equal(t, fields[1], r.Time, line)
	}
}

func TestDecode_deterministic(t *testing.T) {
	t.Parallel()
	for line, r := range decodeList(t) {
		again, err := Decode(line)
		require.NoError(t, err, line)
		assert.Equal(t, r, again, line)
	}
}

func TestDecode_cloudOrdering(t *testing.T) {
	t.Parallel()
	for line, r := range decodeList(t) {
		prev := -1
		for _, c := range r.Clouds {
			h, err := strconv.Atoi(c.Height)
			require.NoError(t, err, line)
			assert.GreaterOrEqual(t, h, prev, line)
			prev = h
		}
	}
}

func TestDecode_altimeter(t *testing.T) {
	t.Parallel()
	for line, r := range decodeList(t) {
		assert.Len(t, r.Altimeter, 4, line)
	}
}

func TestDecode_usReport(t *testing.T) {
	t.Parallel()
	r, err := Decode("KTOB 252234Z AUTO 29019G29KT 10SM OVC010 01/M03 A3002 RMK AO2")
	require.NoError(t, err)

	assert.Equal(t, VariantUS, r.Variant)
	assert.Equal(t, "KTOB", r.Station)
	assert.Equal(t, "252234Z", r.Time)
	require.NotNil(t, r.Wind)
	assert.Equal(t, Wind{Direction: "290", Speed: 19, Gust: 29}, *r.Wind)
	assert.Equal(t, "10", r.Visibility)
	assert.Equal(t, "3002", r.Altimeter)
	assert.Equal(t, ptr.To(1), r.Temperature)
	assert.Equal(t, ptr.To(-3), r.Dewpoint)
	assert.Equal(t, []Cloud{{Type: "OVC", Height: "010"}}, r.Clouds)
	assert.Empty(t, r.Other)
	assert.Equal(t, "AO2", r.Remarks)
	assert.Equal(t, MVFR, r.FlightRules())
}

func TestDecode_internationalCAVOK(t *testing.T) {
	t.Parallel()
	r, err := Decode("EGLL 251750Z 09010KT CAVOK 15/10 Q1013")
	require.NoError(t, err)

	assert.Equal(t, VariantInternational, r.Variant)
	assert.Equal(t, "EGLL", r.Station)
	require.NotNil(t, r.Wind)
	assert.Equal(t, Wind{Direction: "090", Speed: 10}, *r.Wind)
	assert.Equal(t, "9999", r.Visibility)
	assert.Empty(t, r.Clouds)
	assert.Equal(t, ptr.To(15), r.Temperature)
	assert.Equal(t, ptr.To(10), r.Dewpoint)
	assert.Equal(t, "1013", r.Altimeter)
	assert.Empty(t, r.Other)
	assert.Equal(t, VFR, r.FlightRules())
}

func TestDecode_runwayVisualRange(t *testing.T) {
	t.Parallel()
	r, err := Decode("KBOS 251954Z 04012KT 1/2SM R04R/2800FT FG VV002 14/13 A2995")
	require.NoError(t, err)

	assert.Equal(t, []string{"R04R/2800FT"}, r.RunwayVisualRange)
	assert.Equal(t, "1/2", r.Visibility)
	assert.Equal(t, []Cloud{{Type: "VV", Height: "002"}}, r.Clouds)
	assert.Equal(t, []string{"FG"}, r.Other)
	assert.Equal(t, LIFR, r.FlightRules())
}

func TestDecode_variableWind(t *testing.T) {
	t.Parallel()
	r, err := Decode("LFPG 251800Z 24015G27KT 210V280 8000 -SHRA BKN025CB 17/12 Q1008")
	require.NoError(t, err)

	require.NotNil(t, r.Wind)
	assert.Equal(t, Wind{
		Direction:    "240",
		Speed:        15,
		Gust:         27,
		VariableFrom: "210",
		VariableTo:   "280",
	}, *r.Wind)
	assert.Equal(t, "8000", r.Visibility)
	assert.Equal(t, []Cloud{{Type: "BKN", Height: "025", Modifier: "CB"}}, r.Clouds)
	assert.Equal(t, []string{"-SHRA"}, r.Other)
}

func TestDecode_hardErrors(t *testing.T) {
	t.Parallel()

	_, err := Decode("")
	assert.ErrorIs(t, err, ErrShortReport)

	_, err = Decode("KJFK")
	assert.ErrorIs(t, err, ErrShortReport)

	_, err = Decode("XXXX 251751Z 10SM A3002")
	assert.ErrorIs(t, err, ErrUnsupportedStation)
}

func TestDecode_malformedFieldsAbsorbed(t *testing.T) {
	t.Parallel()
	r, err := Decode("KJFK 999999 BADWINDKT FOO A30X2")
	require.NoError(t, err)

	assert.Equal(t, "KJFK", r.Station)
	assert.Empty(t, r.Time)
	assert.Nil(t, r.Wind)
	assert.Empty(t, r.Visibility)
	assert.Empty(t, r.Altimeter)
	assert.Nil(t, r.Temperature)
}

func TestSelectVariant(t *testing.T) {
	t.Parallel()
	tests := []struct {
		station string
		legacy  bool
		want    Variant
	}{
		{"KJFK", false, VariantUS},
		{"KJFK", true, VariantUS},
		{"EGLL", false, VariantInternational},
		{"EGLL", true, VariantInternational},
		{"MMMX", false, VariantUS},
		{"MMMX", true, VariantUS},
		{"MDPC", false, VariantInternational},
		{"MDPC", true, VariantUS},
		{"MROC", false, VariantInternational},
		{"MROC", true, VariantUS},
		{"MAAA", false, VariantUS},
	}
	for _, tt := range tests {
		got, err := selectVariant(tt.station, tt.legacy)
		require.NoError(t, err, tt.station)
		assert.Equal(t, tt.want, got, "%s legacy=%v", tt.station, tt.legacy)
	}

	_, err := selectVariant("QQQQ", false)
	assert.ErrorIs(t, err, ErrUnsupportedStation)
	_, err = selectVariant("", false)
	assert.ErrorIs(t, err, ErrUnsupportedStation)
}

func TestDecodeWithConfig_legacyRouting(t *testing.T) {
	t.Parallel()
	raw := "MDPC 251900Z 10012KT 9999 FEW018 SCT060 30/22 Q1014"

	r, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, VariantInternational, r.Variant)
	assert.Equal(t, "9999", r.Visibility)
	assert.Equal(t, "1014", r.Altimeter)

	legacy, err := DecodeWithConfig(Config{LegacyVariantPrecedence: true}, raw)
	require.NoError(t, err)
	assert.Equal(t, VariantUS, legacy.Variant)
	assert.Empty(t, legacy.Altimeter)
}
