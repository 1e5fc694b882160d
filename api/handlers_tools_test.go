package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nine-hub/api/generators"
	"github.com/nine-hub/api/prompt"
)

func TestGenerateGrid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/generators/grid", map[string]any{
		"columns": 4,
		"items":   []map[string]int{{"columnStart": 1, "columnEnd": 3, "rowStart": 1, "rowEnd": 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[generators.GridResult](t, rec)
	assert.Contains(t, res.Declarations, "grid-template-columns: repeat(4, 1fr);")
	assert.Contains(t, res.CSS, ".grid-item-1 {")
	assert.Equal(t, generators.GridStats{TotalCells: 8, SpannedItems: 1, GapSpace: 16*3 + 16*1}, res.Stats)

	t.Run("preset seeds the config", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/v1/generators/grid?preset=app-sidebar", map[string]any{})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		res := decodeBody[generators.GridResult](t, rec)
		assert.Contains(t, res.Declarations, "grid-template-columns: 240px 1fr;")

		rec = env.do(http.MethodPost, "/v1/generators/grid?preset=nope", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad configs are rejected", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/v1/generators/grid", map[string]any{"columns": 13})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(http.MethodPost, "/v1/generators/grid", map[string]any{
			"items": []map[string]int{{"columnStart": 3, "columnEnd": 6, "rowStart": 1, "rowEnd": 2}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = env.do(http.MethodGet, "/v1/generators/grid", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestGetGridPresets(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/generators/grid/presets?category=landing", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[struct {
		Presets    []generators.GridPreset `json:"presets"`
		Categories []generators.Category   `json:"categories"`
	}](t, rec)
	assert.Len(t, body.Presets, 4)
	for _, p := range body.Presets {
		assert.Equal(t, "landing", p.Category)
	}
	assert.Len(t, body.Categories, 8)
}

func TestGenerateMeta(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/generators/meta", map[string]any{
		"title": "Nine Hub <Tools>",
		"url":   "https://ninehub.dev",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[generators.MetaResult](t, rec)
	assert.Contains(t, res.HTML, "<title>Nine Hub &lt;Tools&gt;</title>")
	assert.Equal(t, "NINEHUB.DEV", res.Hostname)
	assert.True(t, res.TitleOK)

	rec = env.do(http.MethodPost, "/v1/generators/meta", map[string]any{"image": "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/v1/generators/meta", map[string]any{"socialPlatform": "myspace"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzePrompt(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/prompts/analyze", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	score := decodeBody[prompt.Score](t, rec)
	assert.Equal(t, 18, score.Score)
	assert.Equal(t, prompt.Poor, score.Rating)

	rec = env.do(http.MethodPost, "/v1/prompts/analyze", map[string]any{"tone": "shouty"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildPrompt(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/v1/prompts/build", map[string]any{
		"task":              "Explain <div> nesting",
		"persona":           "coder",
		"useChainOfThought": true,
		"export":            "api",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[buildPromptResponse](t, rec)
	assert.True(t, strings.HasPrefix(res.Prompt, "### ROLE ###\nAct as a Senior Software Architect."))
	assert.Contains(t, res.Prompt, "### REASONING ###")
	assert.Contains(t, res.Content, `"model": "gpt-4"`)
	assert.Contains(t, res.Content, "<div>")
	assert.Equal(t, prompt.EstimateTokens(res.Prompt), res.Tokens)
	assert.Equal(t, prompt.EstimateCost(res.Tokens), res.Cost)
	assert.NotZero(t, res.Quality.Score)

	rec = env.do(http.MethodPost, "/v1/prompts/build", map[string]any{"task": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/v1/prompts/build", map[string]any{"task": "Write", "export": "yaml"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPromptTemplates(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/v1/prompts/templates?category=coding", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[struct {
		Templates  []prompt.Template `json:"templates"`
		Categories []prompt.Category `json:"categories"`
		Personas   []prompt.Option   `json:"personas"`
	}](t, rec)
	require.Len(t, body.Templates, 3)
	assert.Equal(t, "code-review", body.Templates[0].ID)
	assert.Len(t, body.Categories, 5)
	assert.Len(t, body.Personas, len(prompt.Personas))

	rec = env.do(http.MethodPost, "/v1/prompts/templates", map[string]any{})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
