package colors

import (
	"fmt"
	"strings"
)

// ShadeSteps are the Tailwind-style stops produced by Shades, light to dark
var ShadeSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

var shadeLightness = []float64{95, 90, 80, 70, 60, 50, 40, 30, 20, 10, 5}

// Shades derives an 11-step ramp from a base color by varying lightness
func Shades(hex string) ([]string, error) {
	base, err := HexToHSL(hex)
	if err != nil {
		return nil, err
	}

	shades := make([]string, 0, len(shadeLightness))
	for _, l := range shadeLightness {
		shades = append(shades, HSLToHex(base.H, base.S, l))
	}
	return shades, nil
}

type hueRange struct {
	name     string
	min, max float64
}

var hueNames = []hueRange{
	{"Red", 0, 20},
	{"Orange", 20, 40},
	{"Yellow", 40, 60},
	{"Green", 60, 160},
	{"Cyan", 160, 200},
	{"Blue", 200, 260},
	{"Purple", 260, 290},
	{"Pink", 290, 330},
	{"Rose", 330, 360},
}

// Name gives a rough human name for a color based on its hue and lightness
func Name(hex string) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	c := hsl.Round()

	if c.S < 10 {
		switch {
		case c.L > 90:
			return "White", nil
		case c.L > 70:
			return "Light Gray", nil
		case c.L > 40:
			return "Gray", nil
		case c.L > 20:
			return "Dark Gray", nil
		}
		return "Black", nil
	}

	for _, hr := range hueNames {
		if c.H >= hr.min && c.H < hr.max {
			switch {
			case c.L > 75:
				return "Light " + hr.name, nil
			case c.L < 35:
				return "Dark " + hr.name, nil
			}
			return hr.name, nil
		}
	}

	// hue rounded up to 360
	return "Color", nil
}

type Direction string

const (
	ToRight       Direction = "to right"
	ToBottom      Direction = "to bottom"
	ToBottomRight Direction = "to bottom right"
)

// Gradient renders a CSS linear-gradient through the given colors
func Gradient(colors []string, dir Direction) string {
	if dir == "" {
		dir = ToRight
	}
	return fmt.Sprintf("linear-gradient(%s, %s)", dir, strings.Join(colors, ", "))
}
