package generators

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/nine-hub/api/colors"
)

type BlobConfig struct {
	// Complexity is how far each radius may stray from 50%
	Complexity int    `json:"complexity" validate:"min=0,max=100"`
	Size       int    `json:"size" validate:"min=0,max=2000"`
	Color1     string `json:"color1" validate:"required"`
	Color2     string `json:"color2" validate:"required"`
	Angle      int    `json:"gradientAngle" validate:"min=0,max=360"`
	Rotation   int    `json:"rotation" validate:"min=0,max=360"`
	Animate    bool   `json:"animate"`
}

func DefaultBlob() BlobConfig {
	return BlobConfig{
		Complexity: 50,
		Size:       256,
		Color1:     "#14b8a6",
		Color2:     "#0f766e",
		Angle:      135,
	}
}

type BlobResult struct {
	BorderRadius string `json:"borderRadius"`
	Background   string `json:"background"`
	CSS          string `json:"css"`
}

// BorderRadius draws eight percentages in [50-c/2, 50+c/2] in the
// "a b c d / e f g h" elliptical shorthand
func BorderRadius(complexity int, rng *rand.Rand) string {
	lo := int(math.Floor(50 - float64(complexity)/2))
	hi := int(math.Floor(50 + float64(complexity)/2))

	parts := make([]string, 8)
	for i := range parts {
		parts[i] = fmt.Sprintf("%d%%", lo+rng.IntN(hi-lo+1))
	}
	return strings.Join(parts[:4], " ") + " / " + strings.Join(parts[4:], " ")
}

func Blob(cfg BlobConfig, rng *rand.Rand) (BlobResult, error) {
	c1, err := colors.NormalizeHex(cfg.Color1)
	if err != nil {
		return BlobResult{}, fmt.Errorf("color1: %w", err)
	}
	c2, err := colors.NormalizeHex(cfg.Color2)
	if err != nil {
		return BlobResult{}, fmt.Errorf("color2: %w", err)
	}

	res := BlobResult{
		BorderRadius: BorderRadius(cfg.Complexity, rng),
		Background:   fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", cfg.Angle, c1, c2),
	}

	var b strings.Builder
	b.WriteString(".blob {\n")
	fmt.Fprintf(&b, "  width: %dpx;\n  height: %dpx;\n", cfg.Size, cfg.Size)
	fmt.Fprintf(&b, "  background: %s;\n", res.Background)
	fmt.Fprintf(&b, "  border-radius: %s;\n", res.BorderRadius)
	fmt.Fprintf(&b, "  transform: rotate(%ddeg);\n", cfg.Rotation)
	if !cfg.Animate {
		b.WriteString("}")
		res.CSS = b.String()
		return res, nil
	}

	b.WriteString("  animation: morphBlob 8s ease-in-out infinite;\n}\n\n")
	b.WriteString("@keyframes morphBlob {\n")
	fmt.Fprintf(&b, "  0%%, 100%% { border-radius: %s; }\n", res.BorderRadius)
	for _, pct := range []int{25, 50, 75} {
		fmt.Fprintf(&b, "  %d%% { border-radius: %s; }\n", pct, BorderRadius(cfg.Complexity, rng))
	}
	b.WriteString("}")
	res.CSS = b.String()
	return res, nil
}
