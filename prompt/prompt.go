// Package prompt assembles structured AI prompts from a task description and
// rates how complete they are.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type Example struct {
	Input  string `json:"input" validate:"max=2000"`
	Output string `json:"output" validate:"max=2000"`
}

type State struct {
	Task        string    `json:"task" validate:"max=10000"`
	Context     string    `json:"context" validate:"max=10000"`
	Persona     string    `json:"persona" validate:"omitempty,oneof=generic coder writer analyst product seo designer"`
	Tone        string    `json:"tone" validate:"omitempty,oneof=professional casual direct witty eli5 academic pirate"`
	Format      string    `json:"format" validate:"omitempty,oneof=markdown step-by-step code json table text csv"`
	Constraints string    `json:"constraints" validate:"max=5000"`
	Examples    []Example `json:"examples" validate:"max=10,dive"`
	// ChainOfThought asks the model to reason step by step
	ChainOfThought bool `json:"useChainOfThought"`
}

func DefaultState() State {
	return State{Persona: "generic", Tone: "professional", Format: "markdown"}
}

// Option is one entry of the persona, tone or format pickers
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}

var Personas = []Option{
	{"generic", "Generic", "Act as a highly capable and intelligent AI assistant."},
	{"coder", "Developer", "Act as a Senior Software Architect. Prioritize clean, efficient, and scalable code. Follow SOLID principles."},
	{"writer", "Copywriter", "Act as a Best-Selling Copywriter. Use persuasive, engaging language with active voice."},
	{"analyst", "Data Analyst", "Act as a Lead Data Scientist. Focus on empirical evidence and statistical significance."},
	{"product", "Product Manager", "Act as a Senior Product Manager. Focus on user value and business viability."},
	{"seo", "SEO Specialist", "Act as a Technical SEO Specialist. Focus on search intent and keyword optimization."},
	{"designer", "Designer", "You are a creative UI/UX designer with expertise in modern design systems."},
}

var Tones = []Option{
	{"professional", "Professional", "Maintain a formal, objective, and corporate tone."},
	{"casual", "Casual", "Use a friendly, conversational tone."},
	{"direct", "Direct", "Be extremely concise. No filler words."},
	{"witty", "Witty", "Use a humorous, witty tone."},
	{"eli5", "ELI5", "Explain like I am 5 years old."},
	{"academic", "Academic", "Use rigorous academic language."},
	{"pirate", "Pirate", `Respond as a swashbuckling pirate would, with nautical expressions and "arrr"s.`},
}

var Formats = []Option{
	{"markdown", "Markdown", "Format with Markdown."},
	{"step-by-step", "Step-by-Step", "Numbered step-by-step guide."},
	{"code", "Code Only", "Code block only."},
	{"json", "JSON", "Valid JSON output."},
	{"table", "Table", "Markdown table."},
	{"text", "Plain Text", "Plain text without formatting."},
	{"csv", "CSV", "Format data as CSV with headers."},
}

func instruction(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Instruction
		}
	}
	return ""
}

func (s State) validExamples() []Example {
	var out []Example
	for _, ex := range s.Examples {
		if strings.TrimSpace(ex.Input) != "" && strings.TrimSpace(ex.Output) != "" {
			out = append(out, ex)
		}
	}
	return out
}

// Build assembles the sectioned prompt. An empty task yields an empty prompt.
func Build(s State) string {
	task := strings.TrimSpace(s.Task)
	if task == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("### ROLE ###\n")
	b.WriteString(instruction(Personas, s.Persona))
	b.WriteString("\n\n")

	if ctx := strings.TrimSpace(s.Context); ctx != "" {
		b.WriteString("### CONTEXT ###\n" + ctx + "\n\n")
	}

	if examples := s.validExamples(); len(examples) > 0 {
		b.WriteString("### EXAMPLES ###\n")
		for i, ex := range examples {
			fmt.Fprintf(&b, "Example %d:\nInput: %s\nOutput: %s\n\n", i+1, ex.Input, ex.Output)
		}
	}

	b.WriteString("### TASK ###\n" + task + "\n\n")

	b.WriteString("### CONSTRAINTS & STYLE ###\n")
	fmt.Fprintf(&b, "- Tone: %s\n", instruction(Tones, s.Tone))
	fmt.Fprintf(&b, "- Format: %s", instruction(Formats, s.Format))
	if c := strings.TrimSpace(s.Constraints); c != "" {
		fmt.Fprintf(&b, "\n- Additional Constraints: %s", c)
	}

	if s.ChainOfThought {
		b.WriteString("\n\n### REASONING ###\n")
		b.WriteString("Think step-by-step before providing your answer. Show your reasoning process.")
	}
	return b.String()
}

type ExportFormat string

const (
	ExportText ExportFormat = "text"
	ExportJSON ExportFormat = "json"
	// ExportAPI is a chat completion request body
	ExportAPI ExportFormat = "api"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportText, ExportJSON, ExportAPI:
		return f, nil
	case "":
		return ExportText, nil
	}
	return "", fmt.Errorf("unknown prompt export format %q", s)
}

type metadata struct {
	Persona        string `json:"persona"`
	Tone           string `json:"tone"`
	Format         string `json:"format"`
	HasExamples    bool   `json:"hasExamples"`
	ChainOfThought bool   `json:"useChainOfThought"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Export renders the built prompt as plain text, JSON with metadata, or an API request body
func Export(s State, format ExportFormat) (string, error) {
	built := Build(s)
	if built == "" {
		return "", fmt.Errorf("task is required")
	}

	var v any
	switch format {
	case ExportText, "":
		return built, nil
	case ExportJSON:
		v = struct {
			Prompt   string   `json:"prompt"`
			Metadata metadata `json:"metadata"`
		}{built, metadata{s.Persona, s.Tone, s.Format, len(s.Examples) > 0, s.ChainOfThought}}
	case ExportAPI:
		v = struct {
			Model       string    `json:"model"`
			Messages    []message `json:"messages"`
			Temperature float64   `json:"temperature"`
		}{
			Model: "gpt-4",
			Messages: []message{
				{Role: "system", Content: instruction(Personas, s.Persona)},
				{Role: "user", Content: built},
			},
			Temperature: 0.7,
		}
	default:
		return "", fmt.Errorf("unknown prompt export format %q", format)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
