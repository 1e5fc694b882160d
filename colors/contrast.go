package colors

import (
	"fmt"
	"math"
)

type TextSize string

const (
	TextNormal TextSize = "normal"
	TextLarge  TextSize = "large"
)

type Level string

const (
	LevelAAA  Level = "aaa"
	LevelAA   Level = "aa"
	LevelFail Level = "fail"
)

// WCAGResult is the outcome of classifying a contrast ratio
type WCAGResult struct {
	Level  Level `json:"level"`
	Passes bool  `json:"passes"`
}

// ContrastReport describes how a foreground/background pair fares against WCAG
type ContrastReport struct {
	Ratio    float64 `json:"ratio"`
	AA       bool    `json:"aa"`
	AALarge  bool    `json:"aaLarge"`
	AAA      bool    `json:"aaa"`
	AAALarge bool    `json:"aaaLarge"`
}

// Thresholds returns the AA and AAA minimum ratios for a text size
func Thresholds(size TextSize) (aa, aaa float64) {
	if size == TextLarge {
		return 3, 4.5
	}
	return 4.5, 7
}

// RelativeLuminance computes sRGB relative luminance in [0, 1]
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Luminance is RelativeLuminance for a hex string
func Luminance(hex string) (float64, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(rgb), nil
}

// Contrast returns the WCAG contrast ratio between two colors, in [1, 21]
func Contrast(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatio is Contrast for two hex strings
func ContrastRatio(a, b string) (float64, error) {
	ca, err := HexToRGB(a)
	if err != nil {
		return 0, err
	}
	cb, err := HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

// WCAGLevel classifies a ratio for the given text size
func WCAGLevel(ratio float64, size TextSize) WCAGResult {
	aa, aaa := Thresholds(size)
	switch {
	case ratio >= aaa:
		return WCAGResult{Level: LevelAAA, Passes: true}
	case ratio >= aa:
		return WCAGResult{Level: LevelAA, Passes: true}
	}
	return WCAGResult{Level: LevelFail, Passes: false}
}

// CheckContrast builds the full report for a foreground on a background
func CheckContrast(fg, bg string) (ContrastReport, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return ContrastReport{}, err
	}

	normalAA, normalAAA := Thresholds(TextNormal)
	largeAA, largeAAA := Thresholds(TextLarge)

	return ContrastReport{
		Ratio:    ratio,
		AA:       ratio >= normalAA,
		AALarge:  ratio >= largeAA,
		AAA:      ratio >= normalAAA,
		AAALarge: ratio >= largeAAA,
	}, nil
}

// FixTarget selects which side of the pair FixContrast adjusts
type FixTarget string

const (
	FixForeground FixTarget = "fg"
	FixBackground FixTarget = "bg"
)

// FixContrast moves the lightness of the target color away from the other color
// until the pair reaches ratio. When lightness bottoms or tops out first, the last
// candidate is returned even though it misses the ratio.
func FixContrast(fg, bg string, target FixTarget, ratio float64) (string, error) {
	if target != FixForeground && target != FixBackground {
		return "", fmt.Errorf("unknown fix target %q", target)
	}

	fgRGB, err := HexToRGB(fg)
	if err != nil {
		return "", err
	}
	bgRGB, err := HexToRGB(bg)
	if err != nil {
		return "", err
	}

	working, other := RGBToHSL(fgRGB), bgRGB
	if target == FixBackground {
		working, other = RGBToHSL(bgRGB), fgRGB
	}

	step := 2.0
	if RelativeLuminance(other) >= 0.5 {
		step = -2
	}

	for i := 0; i < 100; i++ {
		candidate := HSLToRGB(working.H, working.S, working.L)
		if Contrast(candidate, other) >= ratio {
			return candidate.Hex(), nil
		}

		working.L = math.Max(0, math.Min(100, working.L+step))
		if working.L == 0 || working.L == 100 {
			break
		}
	}

	return working.Hex(), nil
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// AutoTextColor picks black or white text for a background, preferring black
// whenever it reaches AA.
func AutoTextColor(bg string) (string, error) {
	rgb, err := HexToRGB(bg)
	if err != nil {
		return "", err
	}
	onBlack := Contrast(black, rgb)
	onWhite := Contrast(white, rgb)
	if onBlack >= 4.5 || onBlack >= onWhite {
		return black.Hex(), nil
	}
	return white.Hex(), nil
}
