package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSections(t *testing.T) {
	s := DefaultState()
	s.Task = "  Summarize the release notes  "
	s.Context = "Audience is <support> staff."
	s.Constraints = "Max 100 words."
	s.Examples = []Example{{Input: "v1.2", Output: "Faster exports."}, {Input: "", Output: "dropped"}}
	s.ChainOfThought = true

	got := Build(s)
	want := "### ROLE ###\nAct as a highly capable and intelligent AI assistant.\n\n" +
		"### CONTEXT ###\nAudience is <support> staff.\n\n" +
		"### EXAMPLES ###\nExample 1:\nInput: v1.2\nOutput: Faster exports.\n\n" +
		"### TASK ###\nSummarize the release notes\n\n" +
		"### CONSTRAINTS & STYLE ###\n- Tone: Maintain a formal, objective, and corporate tone.\n- Format: Format with Markdown.\n" +
		"- Additional Constraints: Max 100 words.\n\n" +
		"### REASONING ###\nThink step-by-step before providing your answer. Show your reasoning process."
	assert.Equal(t, want, got)

	assert.Empty(t, Build(State{Task: "   "}))
}

func TestBuildOmitsEmptySections(t *testing.T) {
	s := State{Task: "Write a haiku", Persona: "writer", Tone: "pirate", Format: "text"}
	got := Build(s)
	assert.NotContains(t, got, "### CONTEXT ###")
	assert.NotContains(t, got, "### EXAMPLES ###")
	assert.NotContains(t, got, "### REASONING ###")
	assert.NotContains(t, got, "Additional Constraints")
	assert.Contains(t, got, "Best-Selling Copywriter")
	assert.Contains(t, got, "- Format: Plain text without formatting.")
}

func TestExport(t *testing.T) {
	s := DefaultState()
	s.Task = "Explain <div> nesting"
	s.Persona = "coder"

	text, err := Export(s, ExportText)
	require.NoError(t, err)
	assert.Equal(t, Build(s), text)

	raw, err := Export(s, ExportJSON)
	require.NoError(t, err)
	assert.Contains(t, raw, "<div>")
	var doc struct {
		Prompt   string `json:"prompt"`
		Metadata struct {
			Persona     string `json:"persona"`
			HasExamples bool   `json:"hasExamples"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, text, doc.Prompt)
	assert.Equal(t, "coder", doc.Metadata.Persona)
	assert.False(t, doc.Metadata.HasExamples)

	raw, err = Export(s, ExportAPI)
	require.NoError(t, err)
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	assert.Equal(t, "gpt-4", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.True(t, strings.HasPrefix(req.Messages[0].Content, "Act as a Senior Software Architect."))
	assert.Equal(t, text, req.Messages[1].Content)
	assert.Equal(t, 0.7, req.Temperature)

	_, err = Export(State{}, ExportText)
	assert.Error(t, err)
	_, err = Export(s, "yaml")
	assert.Error(t, err)
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, ExportText, f)

	f, err = ParseExportFormat("api")
	require.NoError(t, err)
	assert.Equal(t, ExportAPI, f)

	_, err = ParseExportFormat("xml")
	assert.Error(t, err)
}

func TestAnalyzeEmptyPrompt(t *testing.T) {
	score := Analyze(DefaultState())

	// only the default format and the simple-task reasoning points
	assert.Equal(t, 18, score.Score)
	assert.Equal(t, Poor, score.Rating)
	require.NotEmpty(t, score.Checks)
	assert.Equal(t, Check{Type: CheckError, Message: "Task is required", Suggestion: "Describe what you want the AI to do"}, score.Checks[0])
}

func TestAnalyzeCompletePrompt(t *testing.T) {
	s := State{
		Task:        "Write a product announcement for our new color palette tool",
		Context:     "Nine Hub is a set of free design tools used by front-end developers and designers.",
		Persona:     "writer",
		Tone:        "casual",
		Format:      "text",
		Constraints: "Under 120 words.",
		Examples: []Example{
			{Input: "Gradient tool", Output: "Make text pop with gradients."},
			{Input: "Shadow tool", Output: "Soft UI in one click."},
		},
	}

	score := Analyze(s)
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, Excellent, score.Rating)
	for _, c := range score.Checks {
		assert.Equal(t, CheckSuccess, c.Type, c.Message)
	}
	assert.Equal(t, "2 examples provided (excellent!)", score.Checks[4].Message)
}

func TestAnalyzePartialCredit(t *testing.T) {
	s := State{
		Task:    "Analyze churn",
		Context: "SaaS",
		Format:  "markdown",
		Examples: []Example{
			{Input: "Q1", Output: "5%"},
			{Input: "Q2"},
		},
	}

	// vague task 5, brief context 10, verb 10, no constraints 0,
	// one valid example 15, default format 8, complex without reasoning 5
	score := Analyze(s)
	assert.Equal(t, 53, score.Score)
	assert.Equal(t, Fair, score.Rating)

	s.ChainOfThought = true
	assert.Equal(t, 58, Analyze(s).Score)

	s.Examples = []Example{{Input: "Q2"}}
	for _, c := range Analyze(s).Checks {
		assert.NotContains(t, c.Message, "example")
	}

	s.Task = strings.Repeat("word ", 101)
	long := Analyze(s)
	assert.Equal(t, Check{Type: CheckWarning, Message: "Task is very long", Suggestion: "Consider breaking it into smaller, focused prompts"}, long.Checks[0])
}

func TestRatingFor(t *testing.T) {
	assert.Equal(t, Excellent, RatingFor(85))
	assert.Equal(t, Good, RatingFor(84))
	assert.Equal(t, Good, RatingFor(70))
	assert.Equal(t, Fair, RatingFor(50))
	assert.Equal(t, Poor, RatingFor(49))
}

func TestEstimateTokensAndCost(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	// 2 words, 11 chars: (2.6 + 2.75) / 2 = 2.675
	assert.Equal(t, 3, EstimateTokens("hello world"))

	assert.Equal(t, Cost{GPT4: "< $0.01", GPT35: "< $0.001", Claude: "< $0.01"}, EstimateCost(100))
	assert.Equal(t, Cost{GPT4: "$0.060", GPT35: "$0.0040", Claude: "$0.016"}, EstimateCost(2000))
}

func TestTemplates(t *testing.T) {
	all := Templates("")
	require.Len(t, all, 10)

	total := 0
	for _, c := range Categories() {
		assert.Len(t, Templates(c.Value), c.Count, c.Value)
		total += c.Count
	}
	assert.Equal(t, len(all), total)
	assert.Equal(t, Category{Value: "coding", Label: "Coding", Count: 3}, Categories()[0])

	tpl, ok := TemplateByID("eli5-explainer")
	require.True(t, ok)
	s := tpl.State()
	assert.Equal(t, "eli5", s.Tone)
	assert.False(t, s.ChainOfThought)
	require.Len(t, s.Examples, 1)
	s.Examples[0].Input = "changed"
	again, _ := TemplateByID("eli5-explainer")
	assert.Equal(t, "Blockchain technology", again.Examples[0].Input)
	assert.Contains(t, Build(s), "### EXAMPLES ###")

	_, ok = TemplateByID("nope")
	assert.False(t, ok)
}
