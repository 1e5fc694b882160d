// Package export renders palettes into the text formats designers paste into
// stylesheets, build configs and design tools.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nine-hub/api/colors"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	CSS       Format = "css"
	SCSS      Format = "scss"
	LESS      Format = "less"
	HSL       Format = "hsl"
	OKLCH     Format = "oklch"
	Tailwind  Format = "tailwind"
	JSON      Format = "json"
	Figma     Format = "figma"
	Sketch    Format = "sketch"
	Elementor Format = "elementor"
)

type renderer func(hexes []string, names []string) (string, error)

var renderers = map[Format]renderer{
	CSS:       renderCSS,
	SCSS:      renderSCSS,
	LESS:      renderLESS,
	HSL:       renderHSL,
	OKLCH:     renderOKLCH,
	Tailwind:  renderTailwind,
	JSON:      renderJSON,
	Figma:     renderFigma,
	Sketch:    renderSketch,
	Elementor: renderElementor,
}

// Formats lists every supported format in display order
func Formats() []Format {
	return []Format{CSS, SCSS, LESS, HSL, OKLCH, Tailwind, JSON, Figma, Sketch, Elementor}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Render formats colors with their names. names may be shorter than colors;
// missing names fall back to palette-N.
func Render(format Format, hexes []string, names []string) (string, error) {
	render, ok := renderers[format]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	normalized := make([]string, len(hexes))
	for i, h := range hexes {
		n, err := colors.NormalizeHex(h)
		if err != nil {
			return "", fmt.Errorf("color %d: %w", i+1, err)
		}
		normalized[i] = n
	}

	return render(normalized, names)
}

var whitespace = regexp.MustCompile(`\s+`)

// Slug returns the variable-safe name for entry i
func Slug(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return whitespace.ReplaceAllString(strings.ToLower(names[i]), "-")
	}
	return fmt.Sprintf("palette-%d", i+1)
}

// Label returns the human-readable name for entry i
func Label(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fmt.Sprintf("Color %d", i+1)
}

func rootBlock(prefix string, hexes []string, names []string, value func(i int) string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i := range hexes {
		fmt.Fprintf(&b, "  %s%s: %s;", prefix, Slug(names, i), value(i))
		if i < len(hexes)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n}")
	return b.String()
}

func renderCSS(hexes []string, names []string) (string, error) {
	return rootBlock("--color-", hexes, names, func(i int) string { return hexes[i] }), nil
}

func renderHSL(hexes []string, names []string) (string, error) {
	return rootBlock("--color-", hexes, names, func(i int) string {
		hsl, _ := colors.HexToHSL(hexes[i])
		r := hsl.Round()
		return fmt.Sprintf("hsl(%d %d%% %d%%)", int(r.H), int(r.S), int(r.L))
	}), nil
}

func renderOKLCH(hexes []string, names []string) (string, error) {
	return rootBlock("--color-", hexes, names, func(i int) string {
		c, _ := colorful.Hex(hexes[i])
		l, ch, h := c.OkLch()
		if ch < 0.0005 {
			h = 0
		}
		return fmt.Sprintf("oklch(%.2f%% %.4f %.2f)", l*100, ch, h)
	}), nil
}

func variableLines(prefix string, hexes []string, names []string) string {
	lines := make([]string, len(hexes))
	for i, h := range hexes {
		lines[i] = fmt.Sprintf("%scolor-%s: %s;", prefix, Slug(names, i), h)
	}
	return strings.Join(lines, "\n")
}

func renderSCSS(hexes []string, names []string) (string, error) {
	return variableLines("$", hexes, names), nil
}

func renderLESS(hexes []string, names []string) (string, error) {
	return variableLines("@", hexes, names), nil
}

// orderedPairs keeps first-seen key order; a repeated slug takes the later color
func orderedPairs(hexes []string, names []string) (keys []string, values map[string]string) {
	values = make(map[string]string, len(hexes))
	for i, h := range hexes {
		key := Slug(names, i)
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = h
	}
	return keys, values
}

func objectLiteral(keys []string, values map[string]string, indent, closeIndent, quote string) string {
	if len(keys) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range keys {
		fmt.Fprintf(&b, "%s%s%s%s: %s%s%s", indent, quote, k, quote, quote, values[k], quote)
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(closeIndent + "}")
	return b.String()
}

func renderTailwind(hexes []string, names []string) (string, error) {
	keys, values := orderedPairs(hexes, names)
	obj := objectLiteral(keys, values, strings.Repeat(" ", 8), "", "'")
	return fmt.Sprintf(`module.exports = {
  theme: {
    extend: {
      colors: %s
    }
  }
}`, obj), nil
}

func renderJSON(hexes []string, names []string) (string, error) {
	keys, values := orderedPairs(hexes, names)
	return objectLiteral(keys, values, "  ", "", `"`), nil
}

func renderFigma(hexes []string, names []string) (string, error) {
	lines := make([]string, len(hexes))
	for i, h := range hexes {
		hsl, _ := colors.HexToHSL(h)
		r := hsl.Round()
		lines[i] = fmt.Sprintf("%s: H%d° S%d%% L%d%%", Label(names, i), int(r.H), int(r.S), int(r.L))
	}
	return strings.Join(lines, "\n"), nil
}

func renderSketch(hexes []string, names []string) (string, error) {
	lines := make([]string, len(hexes))
	for i, h := range hexes {
		rgb, _ := colors.HexToRGB(h)
		lines[i] = fmt.Sprintf("%s: RGB(%d, %d, %d)", Label(names, i), rgb.R, rgb.G, rgb.B)
	}
	return strings.Join(lines, "\n"), nil
}

func renderElementor(hexes []string, names []string) (string, error) {
	entries := make([]string, len(hexes))
	for i, h := range hexes {
		entries[i] = fmt.Sprintf("Color %d - %q:\n  Value: %s\n  Type: Global Color", i+1, Label(names, i), h)
	}

	vars := make([]string, len(hexes))
	for i, h := range hexes {
		vars[i] = fmt.Sprintf("  --e-global-color-%s: %s;", Slug(names, i), h)
	}

	return fmt.Sprintf(`/* Elementor Global Colors */
/* Navigate to: Site Settings > Global Colors */

%s

/* Copy these colors to Elementor: */
/* 1. Go to Elementor > Site Settings > Global Colors */
/* 2. Click "Add Item" for each color */
/* 3. Set the name and hex value */
/* 4. Use in widgets via the color picker */

/* Alternative: Custom CSS Variables */
/* Add to Elementor > Custom CSS: */
:root {
%s
}`, strings.Join(entries, "\n\n"), strings.Join(vars, "\n")), nil
}
