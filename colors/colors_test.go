package colors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{255, 0, 0}},
		{"ff0000", RGB{255, 0, 0}},
		{"#f00", RGB{255, 0, 0}},
		{"abc", RGB{170, 187, 204}},
		{"#1E90FF", RGB{30, 144, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := HexToRGB(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#1234567", "#gggggg", "#-12345"} {
		_, err := HexToRGB(in)
		assert.ErrorIs(t, err, ErrInvalidHex, "input %q", in)
	}
}

func TestRGBToHexClampsAndRounds(t *testing.T) {
	assert.Equal(t, "#ff0000", RGBToHex(300, -4, 0.4))
	assert.Equal(t, "#010203", RGBToHex(0.6, 2.2, 2.5))
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				hex := RGB{r, g, b}.Hex()
				hsl, err := HexToHSL(hex)
				require.NoError(t, err)

				back, err := HexToRGB(hsl.Hex())
				require.NoError(t, err)
				assert.InDelta(t, r, back.R, 1, hex)
				assert.InDelta(t, g, back.G, 1, hex)
				assert.InDelta(t, b, back.B, 1, hex)
			}
		}
	}
}

func TestHexToHSLKnownValues(t *testing.T) {
	hsl, err := HexToHSL("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, HSL{0, 100, 50}, hsl.Round())

	hsl, err = HexToHSL("#0000ff")
	require.NoError(t, err)
	assert.Equal(t, HSL{240, 100, 50}, hsl.Round())
	assert.Equal(t, "hsl(240, 100%, 50%)", hsl.String())

	hsl, err = HexToHSL("#808080")
	require.NoError(t, err)
	assert.Equal(t, HSL{0, 0, 50}, hsl.Round())
}

func TestHSLToHexWrapsHue(t *testing.T) {
	assert.Equal(t, HSLToHex(0, 100, 50), HSLToHex(360, 100, 50))
	assert.Equal(t, HSLToHex(300, 100, 50), HSLToHex(-60, 100, 50))
}

func TestContrastRatio(t *testing.T) {
	ratio, err := ContrastRatio("#ffffff", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)

	_, err = ContrastRatio("#ffffff", "nope")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestContrastRatioSymmetricAndReflexive(t *testing.T) {
	samples := []string{"#ffffff", "#000000", "#3b82f6", "#e11d48", "#777777", "#fde68a"}
	for _, a := range samples {
		same, err := ContrastRatio(a, a)
		require.NoError(t, err)
		assert.Equal(t, 1.0, same, a)

		for _, b := range samples {
			ab, _ := ContrastRatio(a, b)
			ba, _ := ContrastRatio(b, a)
			assert.Equal(t, ab, ba, fmt.Sprintf("%s/%s", a, b))
			assert.GreaterOrEqual(t, ab, 1.0)
			assert.LessOrEqual(t, ab, 21.0+1e-9)
		}
	}
}

func TestWCAGLevel(t *testing.T) {
	assert.Equal(t, WCAGResult{LevelAAA, true}, WCAGLevel(21, TextNormal))
	assert.Equal(t, WCAGResult{LevelAA, true}, WCAGLevel(5, TextNormal))
	assert.Equal(t, WCAGResult{LevelAAA, true}, WCAGLevel(5, TextLarge))
	assert.Equal(t, WCAGResult{LevelAA, true}, WCAGLevel(3.5, TextLarge))
	assert.Equal(t, WCAGResult{LevelFail, false}, WCAGLevel(2, TextLarge))
	assert.Equal(t, WCAGResult{LevelFail, false}, WCAGLevel(4.4, TextNormal))
}

func TestLargeThresholdsNeverExceedNormal(t *testing.T) {
	largeAA, largeAAA := Thresholds(TextLarge)
	normalAA, normalAAA := Thresholds(TextNormal)
	assert.Equal(t, 3.0, largeAA)
	assert.Equal(t, 4.5, normalAA)
	assert.LessOrEqual(t, largeAA, normalAA)
	assert.LessOrEqual(t, largeAAA, normalAAA)
}

func TestCheckContrast(t *testing.T) {
	report, err := CheckContrast("#767676", "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 4.54, report.Ratio, 0.01)
	assert.True(t, report.AA)
	assert.True(t, report.AALarge)
	assert.False(t, report.AAA)
	assert.True(t, report.AAALarge)
}

func TestFixContrastDarkensForegroundOnWhite(t *testing.T) {
	fixed, err := FixContrast("#777777", "#ffffff", FixForeground, 4.5)
	require.NoError(t, err)
	assert.Equal(t, "#727272", fixed)

	ratio, err := ContrastRatio(fixed, "#ffffff")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ratio, 4.5)
}

func TestFixContrastDarkensBackgroundBehindLightText(t *testing.T) {
	fixed, err := FixContrast("#ffffff", "#999999", FixBackground, 7)
	require.NoError(t, err)

	ratio, err := ContrastRatio("#ffffff", fixed)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ratio, 7.0)
}

func TestFixContrastAlreadyPassing(t *testing.T) {
	fixed, err := FixContrast("#000000", "#ffffff", FixForeground, 4.5)
	require.NoError(t, err)
	assert.Equal(t, "#000000", fixed)
}

func TestFixContrastRejectsUnknownTarget(t *testing.T) {
	_, err := FixContrast("#000000", "#ffffff", "both", 4.5)
	assert.Error(t, err)
}

func TestAutoTextColor(t *testing.T) {
	c, err := AutoTextColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, "#000000", c)

	c, err = AutoTextColor("#000000")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", c)
}

func TestShadesAlwaysEleven(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#3b82f6", "#f00", "#10b981", "#808080"} {
		shades, err := Shades(hex)
		require.NoError(t, err)
		assert.Len(t, shades, 11, hex)
		assert.Len(t, ShadeSteps, len(shades))
	}
}

func TestShadesOfGray(t *testing.T) {
	shades, err := Shades("#808080")
	require.NoError(t, err)
	assert.Equal(t, "#f2f2f2", shades[0])
	assert.Equal(t, "#808080", shades[5])
	assert.Equal(t, "#0d0d0d", shades[10])
}

func TestShadesGetDarker(t *testing.T) {
	shades, err := Shades("#3b82f6")
	require.NoError(t, err)
	for i := 1; i < len(shades); i++ {
		prev, _ := Luminance(shades[i-1])
		cur, _ := Luminance(shades[i])
		assert.Less(t, cur, prev, "shade %d", i)
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"#ff0000": "Red",
		"#ffffff": "White",
		"#000000": "Black",
		"#808080": "Gray",
		"#0000ff": "Blue",
		"#ffcccc": "Light Red",
		"#800000": "Dark Red",
	}
	for hex, want := range tests {
		got, err := Name(hex)
		require.NoError(t, err)
		assert.Equal(t, want, got, hex)
	}
}

func TestGradient(t *testing.T) {
	assert.Equal(t, "linear-gradient(to right, #fff, #000)", Gradient([]string{"#fff", "#000"}, ""))
	assert.Equal(t, "linear-gradient(to bottom, #f00, #0f0, #00f)", Gradient([]string{"#f00", "#0f0", "#00f"}, ToBottom))
}

func TestSimulate(t *testing.T) {
	got, err := Simulate("#ff0000", Achromatopsia)
	require.NoError(t, err)
	assert.Equal(t, "#4c4c4c", got)

	got, err = Simulate("#ff0000", Protanopia)
	require.NoError(t, err)
	assert.Equal(t, "#918e00", got)

	got, err = Simulate("#0000ff", Tritanopia)
	require.NoError(t, err)
	assert.Equal(t, "#009186", got)

	got, err = Simulate("#ffffff", Deuteranopia)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got)
}

func TestSimulateUnknownType(t *testing.T) {
	_, err := Simulate("#ff0000", "monochromacy")
	assert.Error(t, err)

	_, err = ParseDeficiency("monochromacy")
	assert.Error(t, err)
}

func TestSimulateAll(t *testing.T) {
	all, err := SimulateAll("#3b82f6")
	require.NoError(t, err)
	assert.Len(t, all, len(Deficiencies))
}
