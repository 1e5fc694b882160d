package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidHex = errors.New("invalid hex color format")

// RGB is a color with 0-255 channels
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees (0-360) and saturation/lightness in percent (0-100).
// Values keep full precision; use Round for display.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Round returns the integer triple shown to users
func (c HSL) Round() HSL {
	return HSL{H: math.Round(c.H), S: math.Round(c.S), L: math.Round(c.L)}
}

// Hex converts the HSL value back to a hex string
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

func (c HSL) String() string {
	r := c.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(r.H), int(r.S), int(r.L))
}

// Hex formats the color as lower-case #rrggbb
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NormalizeHex expands shorthand and lower-cases a hex color, always with a leading #
func NormalizeHex(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// HexToRGB parses "#ff0000", "ff0000", "#f00" or "f00"
func HexToRGB(hex string) (RGB, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(clean) == 3 {
		var b strings.Builder
		for _, ch := range clean {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		clean = b.String()
	}

	if len(clean) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// RGBToHex clamps each channel to 0-255 and rounds it
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// HexToHSL converts a hex color to HSL
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// RGBToHSL converts RGB channels to HSL
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToHex converts hue (0-360), saturation and lightness (0-100) to hex
func HSLToHex(h, s, l float64) string {
	rgb := HSLToRGB(h, s, l)
	return rgb.Hex()
}

// HSLToRGB converts hue (0-360), saturation and lightness (0-100) to RGB channels
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	s = math.Max(0, math.Min(100, s)) / 100
	l = math.Max(0, math.Min(100, l)) / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{
		R: clampChannel(r * 255),
		G: clampChannel(g * 255),
		B: clampChannel(b * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
