package prompt

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

type CheckType string

const (
	CheckError   CheckType = "error"
	CheckWarning CheckType = "warning"
	CheckSuccess CheckType = "success"
	CheckInfo    CheckType = "info"
)

type Check struct {
	Type       CheckType `json:"type"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

type Rating string

const (
	Poor      Rating = "poor"
	Fair      Rating = "fair"
	Good      Rating = "good"
	Excellent Rating = "excellent"
)

// Score is a 0-100 rating built from weighted checks
type Score struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
	Rating Rating  `json:"rating"`
}

var actionVerbs = []string{
	"write", "create", "generate", "analyze", "explain", "compare",
	"summarize", "translate", "optimize", "refactor", "debug", "review",
	"design", "build", "implement", "test", "document", "evaluate",
}

func RatingFor(score int) Rating {
	switch {
	case score >= 85:
		return Excellent
	case score >= 70:
		return Good
	case score >= 50:
		return Fair
	}
	return Poor
}

// Analyze scores a prompt. Weights: task 20, context 15, action verb 10,
// constraints 15, examples 20, format 10, reasoning 10.
func Analyze(s State) Score {
	var checks []Check
	score := 0
	add := func(points int, t CheckType, msg, suggestion string) {
		score += points
		checks = append(checks, Check{Type: t, Message: msg, Suggestion: suggestion})
	}

	taskLen := utf8.RuneCountInString(s.Task)
	lowerTask := strings.ToLower(s.Task)

	switch {
	case strings.TrimSpace(s.Task) == "":
		add(0, CheckError, "Task is required", "Describe what you want the AI to do")
	case taskLen < 20:
		add(5, CheckWarning, "Task is too vague", "Add more specific details about what you need")
	case taskLen > 500:
		add(15, CheckWarning, "Task is very long", "Consider breaking it into smaller, focused prompts")
	default:
		add(20, CheckSuccess, "Task length is appropriate", "")
	}

	switch {
	case strings.TrimSpace(s.Context) == "":
		add(0, CheckInfo, "No context provided", "Adding context helps the AI understand your needs better")
	case utf8.RuneCountInString(s.Context) > 50:
		add(15, CheckSuccess, "Good context provided", "")
	default:
		add(10, CheckInfo, "Context is brief", "Add more background information for better results")
	}

	hasVerb := false
	for _, v := range actionVerbs {
		if strings.Contains(lowerTask, v) {
			hasVerb = true
			break
		}
	}
	if hasVerb {
		add(10, CheckSuccess, "Clear action verb found", "")
	} else {
		add(0, CheckWarning, "No clear action verb", `Start with a verb like "write", "create", "analyze", etc.`)
	}

	if strings.TrimSpace(s.Constraints) != "" {
		add(15, CheckSuccess, "Constraints defined", "")
	} else {
		add(0, CheckInfo, "No constraints specified", "Add length limits, style requirements, or other constraints")
	}

	if len(s.Examples) == 0 {
		add(0, CheckInfo, "No examples provided", "Examples significantly improve output quality (few-shot learning)")
	} else {
		// examples missing an input or output earn nothing and add no check
		switch valid := len(s.validExamples()); {
		case valid >= 2:
			add(20, CheckSuccess, fmt.Sprintf("%d examples provided (excellent!)", valid), "")
		case valid == 1:
			add(15, CheckSuccess, "1 example provided", "Add 1-2 more examples for better few-shot learning")
		}
	}

	if s.Format != "" && s.Format != "markdown" {
		add(10, CheckSuccess, "Specific output format selected", "")
	} else {
		add(8, CheckInfo, "Using default format", "")
	}

	isComplex := strings.Contains(lowerTask, "complex") ||
		strings.Contains(lowerTask, "step") ||
		strings.Contains(lowerTask, "analyze") ||
		taskLen > 200
	switch {
	case !isComplex:
		score += 10
	case s.ChainOfThought:
		add(10, CheckSuccess, "Chain-of-thought enabled for complex task", "")
	default:
		add(5, CheckInfo, "Consider enabling chain-of-thought reasoning", "For complex tasks, reasoning steps improve accuracy")
	}

	return Score{Score: score, Checks: checks, Rating: RatingFor(score)}
}

// EstimateTokens averages word count * 1.3 and characters / 4
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	chars := utf8.RuneCountInString(text)
	return int(math.Round((float64(words)*1.3 + float64(chars)/4) / 2))
}

// Cost is the approximate price of sending a prompt, per model family
type Cost struct {
	GPT4   string `json:"gpt4"`
	GPT35  string `json:"gpt35"`
	Claude string `json:"claude"`
}

// per 1K tokens, USD
const (
	gpt4Rate   = 0.03
	gpt35Rate  = 0.002
	claudeRate = 0.008
)

func EstimateCost(tokens int) Cost {
	k := float64(tokens) / 1000
	format := func(cost, floor float64, prec int) string {
		if cost < floor {
			return fmt.Sprintf("< $%g", floor)
		}
		return fmt.Sprintf("$%.*f", prec, cost)
	}
	return Cost{
		GPT4:   format(k*gpt4Rate, 0.01, 3),
		GPT35:  format(k*gpt35Rate, 0.001, 4),
		Claude: format(k*claudeRate, 0.01, 3),
	}
}
