package generators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nine-hub/api/colors"
)

type GradientType string

const (
	Linear GradientType = "linear"
	Radial GradientType = "radial"
)

type Stop struct {
	Color    string `json:"color" validate:"required"`
	Position int    `json:"position" validate:"min=0,max=100"`
}

type GradientTextConfig struct {
	Text      string       `json:"text" validate:"required,max=200"`
	Type      GradientType `json:"gradientType" validate:"omitempty,oneof=linear radial"`
	Direction string       `json:"direction"`
	// Angle wins over Direction when non-zero
	Angle          int    `json:"angle" validate:"min=0,max=360"`
	RadialShape    string `json:"radialShape" validate:"omitempty,oneof=circle ellipse"`
	RadialPosition string `json:"radialPosition" validate:"omitempty,oneof=center top bottom left right"`
	Stops          []Stop `json:"stops" validate:"min=2,max=3,dive"`
	FontSize       int    `json:"fontSize" validate:"min=0,max=400"`
}

// tailwind's bg-gradient-to-* suffix per CSS direction keyword
var tailwindDirections = map[string]string{
	"to right":        "r",
	"to left":         "l",
	"to bottom":       "b",
	"to top":          "t",
	"to bottom right": "br",
	"to bottom left":  "bl",
	"to top right":    "tr",
	"to top left":     "tl",
}

type GradientTextResult struct {
	Gradient string `json:"gradient"`
	CSS      string `json:"css"`
	Tailwind string `json:"tailwind"`
}

func GradientText(cfg GradientTextConfig) (GradientTextResult, error) {
	if len(cfg.Stops) < 2 || len(cfg.Stops) > 3 {
		return GradientTextResult{}, errors.New("gradient text needs 2 or 3 color stops")
	}

	stops := make([]string, len(cfg.Stops))
	hexes := make([]string, len(cfg.Stops))
	for i, s := range cfg.Stops {
		hex, err := colors.NormalizeHex(s.Color)
		if err != nil {
			return GradientTextResult{}, fmt.Errorf("stop %d: %w", i+1, err)
		}
		hexes[i] = hex
		stops[i] = fmt.Sprintf("%s %d%%", hex, s.Position)
	}

	direction := cfg.Direction
	if _, ok := tailwindDirections[direction]; !ok {
		direction = "to right"
	}

	var gradient string
	if cfg.Type == Radial {
		shape, pos := cfg.RadialShape, cfg.RadialPosition
		if shape == "" {
			shape = "circle"
		}
		if pos == "" {
			pos = "center"
		}
		gradient = fmt.Sprintf("radial-gradient(%s at %s, %s)", shape, pos, strings.Join(stops, ", "))
	} else {
		head := direction
		if cfg.Angle != 0 {
			head = fmt.Sprintf("%ddeg", cfg.Angle)
		}
		gradient = fmt.Sprintf("linear-gradient(%s, %s)", head, strings.Join(stops, ", "))
	}

	fontSize := cfg.FontSize
	if fontSize == 0 {
		fontSize = 48
	}

	css := fmt.Sprintf(`.gradient-text {
  background: %s;
  -webkit-background-clip: text;
  -webkit-text-fill-color: transparent;
  background-clip: text;
  font-size: %dpx;
  font-weight: 800;
}`, gradient, fontSize)

	tw := fmt.Sprintf("font-extrabold text-[%dpx] bg-clip-text text-transparent bg-gradient-to-%s from-[%s] to-[%s]",
		fontSize, tailwindDirections[direction], hexes[0], hexes[len(hexes)-1])

	return GradientTextResult{Gradient: gradient, CSS: css, Tailwind: tw}, nil
}
