package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nine-hub/api/generators"
	"github.com/nine-hub/api/prompt"
)

// POST /v1/generators/grid?preset=
func (app *Application) generateGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	cfg := generators.DefaultGrid()
	if id := r.URL.Query().Get("preset"); id != "" {
		p, ok := generators.GridPresetByID(id)
		if !ok {
			app.badRequest(w, r, fmt.Errorf("unknown grid preset %q", id))
			return
		}
		cfg = p.Config()
	}
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.Grid(cfg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /v1/generators/grid/presets?category=
func (app *Application) getGridPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"presets":    generators.GridPresets(r.URL.Query().Get("category")),
		"categories": generators.GridCategories(),
	})
}

// POST /v1/generators/meta
func (app *Application) generateMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	cfg := generators.DefaultMeta()
	if !app.decodeAndValidate(w, r, &cfg) {
		return
	}
	res, err := generators.Meta(cfg)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/prompts/analyze
func (app *Application) analyzePrompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	s := prompt.DefaultState()
	if !app.decodeAndValidate(w, r, &s) {
		return
	}
	writeJSON(w, http.StatusOK, prompt.Analyze(s))
}

type buildPromptRequest struct {
	prompt.State
	Export string `json:"export" validate:"omitempty,oneof=text json api"`
}

type buildPromptResponse struct {
	Prompt  string       `json:"prompt"`
	Content string       `json:"content"`
	Quality prompt.Score `json:"quality"`
	Tokens  int          `json:"tokens"`
	Cost    prompt.Cost  `json:"cost"`
}

// POST /v1/prompts/build
func (app *Application) buildPrompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &buildPromptRequest{State: prompt.DefaultState()}
	if !app.decodeAndValidate(w, r, req) {
		return
	}
	format, err := prompt.ParseExportFormat(req.Export)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	built := prompt.Build(req.State)
	if built == "" {
		app.badRequest(w, r, errors.New("task is required"))
		return
	}
	content, err := prompt.Export(req.State, format)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	tokens := prompt.EstimateTokens(built)
	writeJSON(w, http.StatusOK, buildPromptResponse{
		Prompt:  built,
		Content: content,
		Quality: prompt.Analyze(req.State),
		Tokens:  tokens,
		Cost:    prompt.EstimateCost(tokens),
	})
}

// GET /v1/prompts/templates?category=
func (app *Application) getPromptTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"templates":  prompt.Templates(r.URL.Query().Get("category")),
		"categories": prompt.Categories(),
		"personas":   prompt.Personas,
		"tones":      prompt.Tones,
		"formats":    prompt.Formats,
	})
}
