package palette

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nine-hub/api/colors"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestHues(t *testing.T) {
	tests := []struct {
		harmony Harmony
		base    int
		want    []int
	}{
		{Analogous, 10, []int{10, 40, 70, 340, 310}},
		{Complementary, 200, []int{200, 20, 215, 185, 35}},
		{Triadic, 300, []int{300, 60, 180, 0, 120}},
		{Split, 0, []int{0, 150, 210, 30, 330}},
		{Tetradic, 100, []int{100, 190, 280, 10, 145}},
		{Monochromatic, 42, []int{42, 42, 42, 42, 42}},
	}

	for _, tt := range tests {
		t.Run(string(tt.harmony), func(t *testing.T) {
			assert.Equal(t, tt.want, Hues(tt.base, tt.harmony))
		})
	}
}

func TestHuesStayOnWheel(t *testing.T) {
	for _, h := range Harmonies() {
		for base := 0; base < 360; base += 7 {
			for _, hue := range Hues(base, h) {
				assert.GreaterOrEqual(t, hue, 0)
				assert.Less(t, hue, 360)
			}
		}
	}
}

func TestParseHarmony(t *testing.T) {
	h, err := ParseHarmony("triadic")
	require.NoError(t, err)
	assert.Equal(t, Triadic, h)
	assert.NotEmpty(t, h.Description())

	_, err = ParseHarmony("square")
	assert.Error(t, err)
}

func TestNewPalette(t *testing.T) {
	p, err := New(Analogous, testRand(1))
	require.NoError(t, err)
	require.Len(t, p.Colors, Size)

	for _, c := range p.Colors {
		assert.False(t, c.Locked)
		assert.NotEmpty(t, c.Name)
		_, err := colors.HexToRGB(c.Hex)
		assert.NoError(t, err)
	}

	_, err = New("square", testRand(1))
	assert.Error(t, err)
}

func TestRegenerateKeepsLockedSwatches(t *testing.T) {
	rng := testRand(7)
	p, err := New(Split, rng)
	require.NoError(t, err)

	require.NoError(t, p.SetColor(1, "#123456"))
	locked, err := p.ToggleLock(3)
	require.NoError(t, err)
	assert.True(t, locked)
	kept := p.Colors[3].Hex

	for i := 0; i < 20; i++ {
		require.NoError(t, p.Regenerate(rng))
		assert.Equal(t, "#123456", p.Colors[1].Hex)
		assert.True(t, p.Colors[1].Locked)
		assert.Equal(t, kept, p.Colors[3].Hex)
	}
}

func TestRegenerateRejectsMalformedPalettes(t *testing.T) {
	rng := testRand(5)

	p, err := New(Triadic, rng)
	require.NoError(t, err)
	p.Colors = append(p.Colors, Swatch{Hex: "#abcdef"})
	assert.Error(t, p.Regenerate(rng))

	p = &Palette{Harmony: "square", Colors: make([]Swatch, Size)}
	assert.Error(t, p.Regenerate(rng))

	p = &Palette{Harmony: Analogous}
	assert.Error(t, p.Regenerate(rng))
}

func TestRegenerateMonochromaticSharesHue(t *testing.T) {
	rng := testRand(3)
	p, err := New(Monochromatic, rng)
	require.NoError(t, err)
	require.NoError(t, p.Regenerate(rng))

	first, err := colors.HexToHSL(p.Colors[0].Hex)
	require.NoError(t, err)
	for _, c := range p.Colors[1:] {
		hsl, err := colors.HexToHSL(c.Hex)
		require.NoError(t, err)
		diff := math.Abs(first.H - hsl.H)
		if diff > 180 {
			diff = 360 - diff
		}
		assert.Less(t, diff, 3.0, c.Hex)
	}

	// lightness climbs 20, 35, 50, 65, 80
	for i := 1; i < Size; i++ {
		prev, _ := colors.HexToHSL(p.Colors[i-1].Hex)
		cur, _ := colors.HexToHSL(p.Colors[i].Hex)
		assert.Greater(t, cur.L, prev.L)
	}
}

func TestToggleLockAndSetColorBounds(t *testing.T) {
	p, err := New(Tetradic, testRand(2))
	require.NoError(t, err)

	_, err = p.ToggleLock(Size)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, p.SetColor(-1, "#fff"), ErrIndexOutOfRange)
	assert.Error(t, p.SetColor(0, "not-a-color"))

	locked, err := p.ToggleLock(0)
	require.NoError(t, err)
	assert.True(t, locked)
	locked, err = p.ToggleLock(0)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestFromHexes(t *testing.T) {
	p, err := FromHexes(Triadic, []string{"#f00", "#0f0", "#00f", "#fff", "#000"}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000"}, p.Hexes())
	assert.True(t, p.Colors[0].Locked)
	assert.False(t, p.Colors[4].Locked)
	assert.Equal(t, "Red", p.Names()[0])

	_, err = FromHexes(Triadic, []string{"#fff"}, nil)
	assert.Error(t, err)
}

func TestAccessibilityScores(t *testing.T) {
	p, err := FromHexes(Analogous, []string{"#ffffff", "#000000", "#777777", "#eeeeee", "#111111"}, nil)
	require.NoError(t, err)

	scores := p.AccessibilityScores()
	require.Len(t, scores, Size*(Size-1)/2)

	assert.Equal(t, 0, scores[0].BG)
	assert.Equal(t, 1, scores[0].FG)
	assert.InDelta(t, 21, scores[0].Ratio, 1e-9)
	assert.Equal(t, colors.LevelAAA, scores[0].Level)

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Ratio, scores[i].Ratio)
		assert.Less(t, scores[i].BG, scores[i].FG)
	}
}
