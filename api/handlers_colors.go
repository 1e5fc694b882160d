package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nine-hub/api/colors"
	"github.com/nine-hub/api/export"
	"github.com/nine-hub/api/models"
	"github.com/nine-hub/api/palette"
)

func (app *Application) hexParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		app.badRequest(w, r, fmt.Errorf("%s query parameter is required", name))
		return "", false
	}
	hex, err := colors.NormalizeHex(raw)
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("%s: %w", name, err))
		return "", false
	}
	return hex, true
}

func describeColor(hex string) (models.Color, error) {
	rgb, err := colors.HexToRGB(hex)
	if err != nil {
		return models.Color{}, err
	}
	hsl := colors.RGBToHSL(rgb)
	rounded := hsl.Round()
	name, _ := colors.Name(hex)
	text, _ := colors.AutoTextColor(hex)

	return models.Color{
		Hex:       models.ColorHex{Value: hex, Clean: hex[1:]},
		RGB:       models.ColorRGB{R: rgb.R, G: rgb.G, B: rgb.B, Value: rgb.String()},
		HSL:       models.ColorHSL{H: int(rounded.H), S: int(rounded.S), L: int(rounded.L), Value: hsl.String()},
		Name:      name,
		Luminance: colors.RelativeLuminance(rgb),
		Contrast:  models.ColorContrast{Value: text},
	}, nil
}

// GET /v1/colors/convert?hex=
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	hex, ok := app.hexParam(w, r, "hex")
	if !ok {
		return
	}

	color, err := describeColor(hex)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, color)
}

type contrastResponse struct {
	Foreground string `json:"fg"`
	Background string `json:"bg"`
	colors.ContrastReport
	Normal colors.WCAGResult `json:"normal"`
	Large  colors.WCAGResult `json:"large"`
}

// GET /v1/colors/contrast?fg=&bg=
func (app *Application) checkContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	fg, ok := app.hexParam(w, r, "fg")
	if !ok {
		return
	}
	bg, ok := app.hexParam(w, r, "bg")
	if !ok {
		return
	}

	report, err := colors.CheckContrast(fg, bg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contrastResponse{
		Foreground:     fg,
		Background:     bg,
		ContrastReport: report,
		Normal:         colors.WCAGLevel(report.Ratio, colors.TextNormal),
		Large:          colors.WCAGLevel(report.Ratio, colors.TextLarge),
	})
}

// POST /v1/colors/contrast/fix
func (app *Application) fixContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.FixContrastRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}
	target := colors.FixTarget(req.Target)
	if target == "" {
		target = colors.FixForeground
	}
	ratio := req.Ratio
	if ratio == 0 {
		ratio, _ = colors.Thresholds(colors.TextNormal)
	}

	fixed, err := colors.FixContrast(req.Foreground, req.Background, target, ratio)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	resp := models.FixContrastResponse{Foreground: req.Foreground, Background: req.Background}
	if target == colors.FixForeground {
		resp.Foreground = fixed
	} else {
		resp.Background = fixed
	}
	resp.Foreground, _ = colors.NormalizeHex(resp.Foreground)
	resp.Background, _ = colors.NormalizeHex(resp.Background)
	resp.Ratio, _ = colors.ContrastRatio(resp.Foreground, resp.Background)

	writeJSON(w, http.StatusOK, resp)
}

type shade struct {
	Step int    `json:"step"`
	Hex  string `json:"hex"`
}

// GET /v1/colors/shades?hex=
func (app *Application) getShades(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	hex, ok := app.hexParam(w, r, "hex")
	if !ok {
		return
	}

	hexes, err := colors.Shades(hex)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	shades := make([]shade, len(hexes))
	for i, h := range hexes {
		shades[i] = shade{Step: colors.ShadeSteps[i], Hex: h}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"hex":    hex,
		"shades": shades,
	})
}

// GET /v1/colors/simulate?hex=&type=
func (app *Application) simulateColorBlindness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}
	hex, ok := app.hexParam(w, r, "hex")
	if !ok {
		return
	}

	kind := r.URL.Query().Get("type")
	if kind == "" {
		all, err := colors.SimulateAll(hex)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"hex": hex, "simulations": all})
		return
	}

	d, err := colors.ParseDeficiency(kind)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	simulated, err := colors.Simulate(hex, d)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hex": hex, "type": d, "simulated": simulated})
}

type paletteResponse struct {
	Palette       *palette.Palette    `json:"palette"`
	Description   string              `json:"description"`
	Gradient      string              `json:"gradient"`
	Accessibility []palette.PairScore `json:"accessibility"`
}

// POST /v1/palettes/generate
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.PaletteGenerateRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}
	harmony := palette.Analogous
	if req.Harmony != "" {
		harmony = palette.Harmony(req.Harmony)
	}

	rng := app.newRand()
	var p *palette.Palette
	var err error
	if len(req.Colors) > 0 {
		p, err = palette.FromHexes(harmony, req.Colors, req.Locked)
		if err == nil {
			err = p.Regenerate(rng)
		}
	} else {
		p, err = palette.New(harmony, rng)
	}
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paletteResponse{
		Palette:       p,
		Description:   harmony.Description(),
		Gradient:      colors.Gradient(p.Hexes(), colors.ToRight),
		Accessibility: p.AccessibilityScores(),
	})
}

// POST /v1/palettes/export
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.PaletteExportRequest{}
	if !app.decodeAndValidate(w, r, req) {
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	content, err := export.Render(format, req.Colors, req.Names)
	if err != nil {
		if errors.Is(err, colors.ErrInvalidHex) {
			app.badRequest(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PaletteExportResponse{Format: string(format), Content: content})
}
