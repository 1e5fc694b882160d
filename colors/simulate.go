package colors

import (
	"fmt"
	"math"
)

// Deficiency is a kind of color vision deficiency
type Deficiency string

const (
	Protanopia    Deficiency = "protanopia"
	Deuteranopia  Deficiency = "deuteranopia"
	Tritanopia    Deficiency = "tritanopia"
	Achromatopsia Deficiency = "achromatopsia"
)

var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}

// rows are applied to normalized (r, g, b)
var deficiencyMatrices = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
	Achromatopsia: {
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
		{0.299, 0.587, 0.114},
	},
}

// ParseDeficiency validates a deficiency name
func ParseDeficiency(s string) (Deficiency, error) {
	d := Deficiency(s)
	if _, ok := deficiencyMatrices[d]; !ok {
		return "", fmt.Errorf("unknown color blindness type %q", s)
	}
	return d, nil
}

// Simulate shows how a color appears under the given deficiency
func Simulate(hex string, d Deficiency) (string, error) {
	m, ok := deficiencyMatrices[d]
	if !ok {
		return "", fmt.Errorf("unknown color blindness type %q", d)
	}
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}

	in := [3]float64{float64(rgb.R) / 255, float64(rgb.G) / 255, float64(rgb.B) / 255}
	var out [3]float64
	for i, row := range m {
		v := row[0]*in[0] + row[1]*in[1] + row[2]*in[2]
		out[i] = math.Max(0, math.Min(1, v)) * 255
	}

	return RGBToHex(out[0], out[1], out[2]), nil
}

// SimulateAll runs every deficiency against one color
func SimulateAll(hex string) (map[Deficiency]string, error) {
	result := make(map[Deficiency]string, len(Deficiencies))
	for _, d := range Deficiencies {
		sim, err := Simulate(hex, d)
		if err != nil {
			return nil, err
		}
		result[d] = sim
	}
	return result, nil
}
