package generators

import (
	"fmt"
	"strings"

	"github.com/nine-hub/api/colors"
)

type LightSource string

const (
	TopLeft     LightSource = "TL"
	TopRight    LightSource = "TR"
	BottomLeft  LightSource = "BL"
	BottomRight LightSource = "BR"
	AllSides    LightSource = "ALL"
)

type ShadowConfig struct {
	Size         int         `json:"size" validate:"min=0,max=1000"`
	Distance     int         `json:"distance" validate:"min=0,max=200"`
	Blur         int         `json:"blur" validate:"min=0,max=300"`
	Intensity    int         `json:"intensity" validate:"min=0,max=255"`
	BorderRadius int         `json:"borderRadius" validate:"min=0,max=1000"`
	LightSource  LightSource `json:"lightSource" validate:"omitempty,oneof=TL TR BL BR ALL"`
	Pressed      bool        `json:"isPressed"`
	Color        string      `json:"bgColor" validate:"required"`
}

func DefaultShadow() ShadowConfig {
	return ShadowConfig{
		Size:         200,
		Distance:     20,
		Blur:         40,
		Intensity:    15,
		BorderRadius: 50,
		LightSource:  TopLeft,
		Color:        "#1e293b",
	}
}

type ShadowResult struct {
	LightColor string `json:"lightColor"`
	DarkColor  string `json:"darkColor"`
	BoxShadow  string `json:"boxShadow"`
	CSS        string `json:"css"`
	Tailwind   string `json:"tailwind"`
}

// adjust shifts every channel by amount, clamped to 0..255
func adjust(c colors.RGB, amount int) colors.RGB {
	clamp := func(v int) int { return min(255, max(0, v+amount)) }
	return colors.RGB{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B)}
}

func Shadow(cfg ShadowConfig) (ShadowResult, error) {
	base, err := colors.HexToRGB(cfg.Color)
	if err != nil {
		return ShadowResult{}, fmt.Errorf("background color: %w", err)
	}
	hex, _ := colors.NormalizeHex(cfg.Color)

	light := adjust(base, cfg.Intensity).String()
	dark := adjust(base, -cfg.Intensity).String()

	inset := ""
	if cfg.Pressed {
		inset = "inset "
	}
	d := cfg.Distance
	layer := func(x, y int, c string) string {
		return fmt.Sprintf("%s%dpx %dpx %dpx %s", inset, x, y, cfg.Blur, c)
	}

	var layers []string
	switch cfg.LightSource {
	case AllSides:
		layers = []string{layer(d, d, dark), layer(-d, -d, light), layer(-d, d, dark), layer(d, -d, light)}
	case TopRight:
		layers = []string{layer(-d, d, dark), layer(d, -d, light)}
	case BottomLeft:
		layers = []string{layer(d, -d, dark), layer(-d, d, light)}
	case BottomRight:
		layers = []string{layer(-d, -d, dark), layer(d, d, light)}
	default:
		layers = []string{layer(d, d, dark), layer(-d, -d, light)}
	}
	boxShadow := strings.Join(layers, ", ")

	css := fmt.Sprintf(`.neumorphic {
  width: %dpx;
  height: %dpx;
  background: %s;
  border-radius: %dpx;
  box-shadow: %s;
}`, cfg.Size, cfg.Size, hex, cfg.BorderRadius, boxShadow)

	// tailwind arbitrary values cannot hold spaces
	tw := strings.ReplaceAll(strings.ReplaceAll(boxShadow, ", ", ","), " ", "_")

	return ShadowResult{
		LightColor: light,
		DarkColor:  dark,
		BoxShadow:  boxShadow,
		CSS:        css,
		Tailwind: fmt.Sprintf("w-[%dpx] h-[%dpx] rounded-[%dpx] bg-[%s] shadow-[%s]",
			cfg.Size, cfg.Size, cfg.BorderRadius, hex, tw),
	}, nil
}
