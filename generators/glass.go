// Package generators produces the CSS snippets behind the glassmorphism,
// neumorphic shadow, gradient text and blob tools.
package generators

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nine-hub/api/colors"
)

type GlassConfig struct {
	Blur         int     `json:"blur" validate:"min=0,max=100"`
	Transparency float64 `json:"transparency" validate:"min=0,max=1"`
	Saturation   int     `json:"saturation" validate:"min=0,max=400"`
	BorderRadius int     `json:"borderRadius" validate:"min=0,max=500"`
	TintColor    string  `json:"tintColor" validate:"required"`
	BorderColor  string  `json:"borderColor"`
	ShowBorder   bool    `json:"showBorder"`
	Width        int     `json:"width" validate:"min=0,max=2000"`
	MinHeight    int     `json:"minHeight" validate:"min=0,max=2000"`
}

// DefaultGlass mirrors the tool's starting card
func DefaultGlass() GlassConfig {
	return GlassConfig{
		Blur:         16,
		Transparency: 0.65,
		Saturation:   180,
		BorderRadius: 16,
		TintColor:    "#ffffff",
		BorderColor:  "#ffffff",
		ShowBorder:   true,
		Width:        320,
	}
}

type GlassResult struct {
	Background string `json:"background"`
	Border     string `json:"border,omitempty"`
	CSS        string `json:"css"`
	Tailwind   string `json:"tailwind"`
}

func rgba(c colors.RGB, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, num(alpha))
}

// num prints a float the shortest way, so 0.5 stays 0.5 and 1 stays 1
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func Glass(cfg GlassConfig) (GlassResult, error) {
	tint, err := colors.HexToRGB(cfg.TintColor)
	if err != nil {
		return GlassResult{}, fmt.Errorf("tint color: %w", err)
	}

	res := GlassResult{Background: rgba(tint, cfg.Transparency)}
	if cfg.ShowBorder {
		borderHex := cfg.BorderColor
		if borderHex == "" {
			borderHex = "#ffffff"
		}
		border, err := colors.HexToRGB(borderHex)
		if err != nil {
			return GlassResult{}, fmt.Errorf("border color: %w", err)
		}
		// rounded to dodge float noise such as 0.55-0.1
		alpha := math.Round(math.Max(0.2, cfg.Transparency-0.1)*100) / 100
		res.Border = "1px solid " + rgba(border, alpha)
	}

	filter := fmt.Sprintf("blur(%dpx) saturate(%d%%)", cfg.Blur, cfg.Saturation)

	var b strings.Builder
	b.WriteString(".glass-card {\n")
	fmt.Fprintf(&b, "  width: %dpx;\n", cfg.Width)
	if cfg.MinHeight > 0 {
		fmt.Fprintf(&b, "  min-height: %dpx;\n", cfg.MinHeight)
	}
	fmt.Fprintf(&b, "  background: %s;\n", res.Background)
	fmt.Fprintf(&b, "  backdrop-filter: %s;\n", filter)
	fmt.Fprintf(&b, "  -webkit-backdrop-filter: %s;\n", filter)
	fmt.Fprintf(&b, "  border-radius: %dpx;\n", cfg.BorderRadius)
	if res.Border != "" {
		fmt.Fprintf(&b, "  border: %s;\n", res.Border)
	}
	b.WriteString("  padding: 24px;\n}")
	res.CSS = b.String()

	classes := []string{fmt.Sprintf("w-[%dpx]", cfg.Width)}
	if cfg.MinHeight > 0 {
		classes = append(classes, fmt.Sprintf("min-h-[%dpx]", cfg.MinHeight))
	}
	classes = append(classes,
		fmt.Sprintf("bg-[%s]/%d", tint.Hex(), int(math.Round(cfg.Transparency*100))),
		fmt.Sprintf("backdrop-blur-[%dpx]", cfg.Blur),
		fmt.Sprintf("backdrop-saturate-[%d%%]", cfg.Saturation),
		fmt.Sprintf("rounded-[%dpx]", cfg.BorderRadius),
	)
	if cfg.ShowBorder {
		classes = append(classes, "border", "border-white/20")
	}
	classes = append(classes, "p-6")
	res.Tailwind = strings.Join(classes, " ")

	return res, nil
}
