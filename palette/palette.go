package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/nine-hub/api/colors"
)

// Size is the number of swatches in every palette
const Size = 5

var ErrIndexOutOfRange = errors.New("swatch index out of range")

type Harmony string

const (
	Analogous     Harmony = "analogous"
	Complementary Harmony = "complementary"
	Triadic       Harmony = "triadic"
	Split         Harmony = "split"
	Tetradic      Harmony = "tetradic"
	Monochromatic Harmony = "monochromatic"
)

// offsets from the base hue, in degrees
var harmonyOffsets = map[Harmony][Size]int{
	Analogous:     {0, 30, 60, -30, -60},
	Complementary: {0, 180, 15, -15, 195},
	Triadic:       {0, 120, 240, 60, 180},
	Split:         {0, 150, 210, 30, -30},
	Tetradic:      {0, 90, 180, 270, 45},
	Monochromatic: {0, 0, 0, 0, 0},
}

var harmonyDescriptions = map[Harmony]string{
	Analogous:     "Colors that are next to each other on the color wheel. Creates serene and comfortable designs.",
	Complementary: "Colors opposite each other on the color wheel. Creates vibrant, high-contrast looks.",
	Triadic:       "Three colors equally spaced around the color wheel. Creates vibrant, balanced palettes.",
	Split:         "Base color plus two colors adjacent to its complement. Provides high contrast with less tension.",
	Tetradic:      "Four colors arranged into two complementary pairs. Rich and versatile.",
	Monochromatic: "Variations of a single hue. Creates cohesive, elegant designs.",
}

// Harmonies lists the supported rules
func Harmonies() []Harmony {
	return []Harmony{Analogous, Complementary, Triadic, Split, Tetradic, Monochromatic}
}

// ParseHarmony validates a harmony rule tag
func ParseHarmony(s string) (Harmony, error) {
	h := Harmony(s)
	if _, ok := harmonyOffsets[h]; !ok {
		return "", fmt.Errorf("unknown harmony %q", s)
	}
	return h, nil
}

// Description explains the rule in one sentence
func (h Harmony) Description() string {
	return harmonyDescriptions[h]
}

// Hues returns the five hues the rule derives from base
func Hues(base int, h Harmony) []int {
	offsets, ok := harmonyOffsets[h]
	if !ok {
		return nil
	}
	hues := make([]int, Size)
	for i, off := range offsets {
		hues[i] = ((base+off)%360 + 360) % 360
	}
	return hues
}

type Swatch struct {
	Hex    string `json:"hex"`
	Locked bool   `json:"locked"`
	Name   string `json:"name,omitempty"`
}

type Palette struct {
	Harmony Harmony  `json:"harmony"`
	Colors  []Swatch `json:"colors"`
}

// New builds an unlocked palette around a random base hue
func New(h Harmony, rng *rand.Rand) (*Palette, error) {
	if _, err := ParseHarmony(string(h)); err != nil {
		return nil, err
	}

	hues := Hues(rng.IntN(360), h)
	p := &Palette{Harmony: h, Colors: make([]Swatch, Size)}
	for i, hue := range hues {
		p.Colors[i] = swatch(colors.HSLToHex(float64(hue), float64(70+i*5), float64(50+i*3)))
	}
	return p, nil
}

// FromHexes wraps existing colors, e.g. a palette posted by a client
func FromHexes(h Harmony, hexes []string, locked []bool) (*Palette, error) {
	if _, err := ParseHarmony(string(h)); err != nil {
		return nil, err
	}
	if len(hexes) != Size {
		return nil, fmt.Errorf("palette needs %d colors, got %d", Size, len(hexes))
	}

	p := &Palette{Harmony: h, Colors: make([]Swatch, Size)}
	for i, hex := range hexes {
		norm, err := colors.NormalizeHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		p.Colors[i] = swatch(norm)
		if i < len(locked) {
			p.Colors[i].Locked = locked[i]
		}
	}
	return p, nil
}

func swatch(hex string) Swatch {
	name, _ := colors.Name(hex)
	return Swatch{Hex: hex, Name: name}
}

// Regenerate picks a new base hue and recolors every unlocked swatch
func (p *Palette) Regenerate(rng *rand.Rand) error {
	if _, err := ParseHarmony(string(p.Harmony)); err != nil {
		return err
	}
	if len(p.Colors) != Size {
		return fmt.Errorf("palette needs %d colors, got %d", Size, len(p.Colors))
	}

	hues := Hues(rng.IntN(360), p.Harmony)
	for i := range p.Colors {
		if p.Colors[i].Locked {
			continue
		}

		var hex string
		if p.Harmony == Monochromatic {
			hex = colors.HSLToHex(float64(hues[i]), 60+rng.Float64()*20, float64(20+i*15))
		} else {
			hex = colors.HSLToHex(float64(hues[i]), 65+rng.Float64()*20, 45+rng.Float64()*20)
		}
		p.Colors[i] = swatch(hex)
	}
	return nil
}

// ToggleLock flips the lock on swatch i and returns the new state
func (p *Palette) ToggleLock(i int) (bool, error) {
	if i < 0 || i >= len(p.Colors) {
		return false, ErrIndexOutOfRange
	}
	p.Colors[i].Locked = !p.Colors[i].Locked
	return p.Colors[i].Locked, nil
}

// SetColor replaces swatch i; a hand-picked color is locked so regeneration keeps it
func (p *Palette) SetColor(i int, hex string) error {
	if i < 0 || i >= len(p.Colors) {
		return ErrIndexOutOfRange
	}
	norm, err := colors.NormalizeHex(hex)
	if err != nil {
		return err
	}
	p.Colors[i] = swatch(norm)
	p.Colors[i].Locked = true
	return nil
}

func (p *Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex
	}
	return out
}

// Names are the swatch color names, in order, for labelling exports
func (p *Palette) Names() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Name
	}
	return out
}

// PairScore is the contrast between swatches BG and FG
type PairScore struct {
	BG    int          `json:"bg"`
	FG    int          `json:"fg"`
	Ratio float64      `json:"ratio"`
	Level colors.Level `json:"level"`
}

// AccessibilityScores rates every pair of swatches for normal text, best first
func (p *Palette) AccessibilityScores() []PairScore {
	rgbs := make([]colors.RGB, len(p.Colors))
	for i, c := range p.Colors {
		rgbs[i], _ = colors.HexToRGB(c.Hex)
	}

	var scores []PairScore
	for i := 0; i < len(rgbs); i++ {
		for j := i + 1; j < len(rgbs); j++ {
			ratio := colors.Contrast(rgbs[i], rgbs[j])
			scores = append(scores, PairScore{
				BG:    i,
				FG:    j,
				Ratio: ratio,
				Level: colors.WCAGLevel(ratio, colors.TextNormal).Level,
			})
		}
	}

	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Ratio > scores[b].Ratio
	})
	return scores
}
