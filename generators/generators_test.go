package generators

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlassDefaults(t *testing.T) {
	res, err := Glass(DefaultGlass())
	require.NoError(t, err)

	assert.Equal(t, "rgba(255,255,255,0.65)", res.Background)
	assert.Equal(t, "1px solid rgba(255,255,255,0.55)", res.Border)
	assert.Contains(t, res.CSS, "backdrop-filter: blur(16px) saturate(180%);")
	assert.Contains(t, res.CSS, "-webkit-backdrop-filter: blur(16px) saturate(180%);")
	assert.NotContains(t, res.CSS, "min-height")
	assert.Equal(t, "w-[320px] bg-[#ffffff]/65 backdrop-blur-[16px] backdrop-saturate-[180%] rounded-[16px] border border-white/20 p-6", res.Tailwind)
}

func TestGlassBorderAlphaFloor(t *testing.T) {
	cfg := DefaultGlass()
	cfg.Transparency = 0.1
	cfg.BorderColor = "#000"

	res, err := Glass(cfg)
	require.NoError(t, err)
	assert.Equal(t, "1px solid rgba(0,0,0,0.2)", res.Border)
}

func TestGlassWithoutBorder(t *testing.T) {
	cfg := DefaultGlass()
	cfg.ShowBorder = false
	cfg.MinHeight = 200

	res, err := Glass(cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Border)
	assert.NotContains(t, res.CSS, "border:")
	assert.Contains(t, res.CSS, "min-height: 200px;")
	assert.NotContains(t, res.Tailwind, "border")
}

func TestGlassInvalidTint(t *testing.T) {
	cfg := DefaultGlass()
	cfg.TintColor = "blue"
	_, err := Glass(cfg)
	assert.Error(t, err)
}

func TestShadowLightSources(t *testing.T) {
	tests := []struct {
		source LightSource
		want   string
	}{
		{TopLeft, "20px 20px 40px rgb(15, 26, 44), -20px -20px 40px rgb(45, 56, 74)"},
		{TopRight, "-20px 20px 40px rgb(15, 26, 44), 20px -20px 40px rgb(45, 56, 74)"},
		{BottomLeft, "20px -20px 40px rgb(15, 26, 44), -20px 20px 40px rgb(45, 56, 74)"},
		{BottomRight, "-20px -20px 40px rgb(15, 26, 44), 20px 20px 40px rgb(45, 56, 74)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			cfg := DefaultShadow()
			cfg.LightSource = tt.source
			res, err := Shadow(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.BoxShadow)
		})
	}
}

func TestShadowAllSidesPressed(t *testing.T) {
	cfg := DefaultShadow()
	cfg.LightSource = AllSides
	cfg.Pressed = true

	res, err := Shadow(cfg)
	require.NoError(t, err)
	layers := strings.Split(res.BoxShadow, ", inset")
	assert.Len(t, layers, 4)
	assert.True(t, strings.HasPrefix(res.BoxShadow, "inset "))
	assert.Contains(t, res.CSS, "box-shadow: "+res.BoxShadow+";")
	assert.NotContains(t, res.Tailwind, " 20px")
}

func TestShadowClampsChannels(t *testing.T) {
	cfg := DefaultShadow()
	cfg.Color = "#fafafa"
	cfg.Intensity = 30

	res, err := Shadow(cfg)
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 255, 255)", res.LightColor)
	assert.Equal(t, "rgb(220, 220, 220)", res.DarkColor)
}

func TestGradientTextLinear(t *testing.T) {
	res, err := GradientText(GradientTextConfig{
		Text:      "Hello",
		Direction: "to bottom right",
		Stops:     []Stop{{"#FB923C", 0}, {"#db2777", 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(to bottom right, #fb923c 0%, #db2777 100%)", res.Gradient)
	assert.Contains(t, res.CSS, "font-size: 48px;")
	assert.Equal(t, "font-extrabold text-[48px] bg-clip-text text-transparent bg-gradient-to-br from-[#fb923c] to-[#db2777]", res.Tailwind)
}

func TestGradientTextAngleAndThreeStops(t *testing.T) {
	res, err := GradientText(GradientTextConfig{
		Text:  "Hello",
		Angle: 90,
		Stops: []Stop{{"#fb923c", 0}, {"#f59e0b", 50}, {"#db2777", 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(90deg, #fb923c 0%, #f59e0b 50%, #db2777 100%)", res.Gradient)
	assert.Contains(t, res.Tailwind, "to-[#db2777]")
}

func TestGradientTextRadial(t *testing.T) {
	res, err := GradientText(GradientTextConfig{
		Text:  "Hello",
		Type:  Radial,
		Stops: []Stop{{"#000", 0}, {"#fff", 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "radial-gradient(circle at center, #000000 0%, #ffffff 100%)", res.Gradient)
}

func TestGradientTextStopCount(t *testing.T) {
	_, err := GradientText(GradientTextConfig{Text: "x", Stops: []Stop{{"#000", 0}}})
	assert.Error(t, err)

	_, err = GradientText(GradientTextConfig{Text: "x", Stops: []Stop{{"#000", 0}, {"nope", 100}}})
	assert.Error(t, err)
}

var radiusPart = regexp.MustCompile(`^(\d+)%$`)

func TestBorderRadiusStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 2))
	for _, complexity := range []int{0, 20, 50, 100} {
		r := BorderRadius(complexity, rng)
		halves := strings.Split(r, " / ")
		require.Len(t, halves, 2, r)

		for _, half := range halves {
			parts := strings.Fields(half)
			require.Len(t, parts, 4)
			for _, p := range parts {
				m := radiusPart.FindStringSubmatch(p)
				require.NotNil(t, m, p)
				v, _ := strconv.Atoi(m[1])
				assert.GreaterOrEqual(t, v, 50-complexity/2)
				assert.LessOrEqual(t, v, 50+complexity/2)
			}
		}
	}

	assert.Equal(t, "50% 50% 50% 50% / 50% 50% 50% 50%", BorderRadius(0, rng))
}

func TestBlob(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	res, err := Blob(DefaultBlob(), rng)
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(135deg, #14b8a6, #0f766e)", res.Background)
	assert.Contains(t, res.CSS, "border-radius: "+res.BorderRadius+";")
	assert.NotContains(t, res.CSS, "@keyframes")

	cfg := DefaultBlob()
	cfg.Animate = true
	res, err = Blob(cfg, rng)
	require.NoError(t, err)
	assert.Contains(t, res.CSS, "animation: morphBlob 8s ease-in-out infinite;")
	assert.Contains(t, res.CSS, "@keyframes morphBlob {")
	assert.Contains(t, res.CSS, "75% { border-radius:")

	cfg.Color2 = "#12"
	_, err = Blob(cfg, rng)
	assert.Error(t, err)
}
