package prompt

import "strings"

type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Task        string    `json:"task"`
	Context     string    `json:"context"`
	Persona     string    `json:"persona"`
	Tone        string    `json:"tone"`
	Format      string    `json:"format"`
	Constraints string    `json:"constraints,omitempty"`
	Examples    []Example `json:"examples,omitempty"`
}

// State loads the template into a fresh prompt with chain-of-thought off
func (t Template) State() State {
	return State{
		Task:        t.Task,
		Context:     t.Context,
		Persona:     t.Persona,
		Tone:        t.Tone,
		Format:      t.Format,
		Constraints: t.Constraints,
		Examples:    append([]Example(nil), t.Examples...),
	}
}

var templates = []Template{
	{
		ID:          "code-review",
		Name:        "Code Review",
		Category:    "coding",
		Description: "Professional code review with best practices",
		Task:        "Review the following code and provide detailed feedback on:\n- Code quality and readability\n- Potential bugs or security issues\n- Performance optimizations\n- Best practices and conventions",
		Context:     "Focus on practical improvements that can be implemented immediately. Consider maintainability and scalability.",
		Persona:     "coder",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Limit response to top 5 most critical issues. Include code examples for suggested fixes.",
	},
	{
		ID:          "debug-helper",
		Name:        "Debug Assistant",
		Category:    "coding",
		Description: "Step-by-step debugging guidance",
		Task:        "Help me debug this error by:\n1. Explaining what the error means\n2. Identifying the root cause\n3. Providing a step-by-step fix\n4. Suggesting how to prevent it in the future",
		Context:     "I am working on [describe your project/framework]. The error occurs when [describe scenario].",
		Persona:     "coder",
		Tone:        "direct",
		Format:      "step-by-step",
		Constraints: "Keep explanations concise. Provide working code examples.",
	},
	{
		ID:          "api-documentation",
		Name:        "API Documentation",
		Category:    "coding",
		Description: "Generate comprehensive API docs",
		Task:        "Create complete API documentation including:\n- Endpoint description\n- HTTP method and URL\n- Request parameters (query, body, headers)\n- Response format with examples\n- Error codes and handling\n- Usage examples in curl and JavaScript",
		Context:     "This API is for [describe purpose]. Target audience: [developers/integrators].",
		Persona:     "coder",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Use OpenAPI 3.0 style. Include authentication details.",
	},
	{
		ID:          "blog-post-outline",
		Name:        "Blog Post Outline",
		Category:    "writing",
		Description: "SEO-optimized blog structure",
		Task:        "Create a comprehensive blog post outline about [TOPIC] including:\n- Catchy title with primary keyword\n- Meta description (150-160 chars)\n- Introduction hook\n- 5-7 main sections with H2/H3 headings\n- Key points under each section\n- Conclusion with CTA\n- FAQ section (5 questions)",
		Context:     "Target audience: [define audience]. Keyword: [main keyword]. Intent: [informational/commercial/transactional].",
		Persona:     "writer",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Optimize for featured snippets. Keep headings under 60 characters. Include LSI keywords.",
	},
	{
		ID:          "marketing-copy",
		Name:        "Marketing Copy",
		Category:    "writing",
		Description: "Persuasive sales copy",
		Task:        "Write compelling marketing copy for [PRODUCT/SERVICE] that:\n- Opens with a powerful hook\n- Highlights 3 key benefits (not features)\n- Addresses pain points\n- Includes social proof\n- Ends with a clear CTA",
		Context:     "Product: [name]. Target customer: [persona]. Unique value proposition: [UVP]. Price point: [range].",
		Persona:     "writer",
		Tone:        "casual",
		Format:      "markdown",
		Constraints: "Keep paragraphs under 3 lines. Use power words. AIDA framework.",
		Examples: []Example{{
			Input:  "Fitness app for busy professionals",
			Output: `"No time for the gym? Get fit in just 15 minutes a day..."`,
		}},
	},
	{
		ID:          "email-sequence",
		Name:        "Email Sequence",
		Category:    "writing",
		Description: "Multi-email campaign",
		Task:        "Create a 5-email nurture sequence for [GOAL]:\n- Email 1: Introduction + value proposition\n- Email 2: Educational content\n- Email 3: Social proof + testimonial\n- Email 4: Objection handling\n- Email 5: Strong CTA with urgency",
		Context:     "Campaign goal: [conversion/engagement]. List segment: [describe audience]. Sending schedule: [frequency].",
		Persona:     "writer",
		Tone:        "casual",
		Format:      "markdown",
		Constraints: "Each email: 150-200 words. Subject lines under 50 chars. One clear CTA per email.",
	},
	{
		ID:          "data-analysis",
		Name:        "Data Analysis",
		Category:    "analysis",
		Description: "Structured data insights",
		Task:        "Analyze this data and provide:\n- Summary statistics and key metrics\n- Notable patterns and trends\n- Anomalies or outliers\n- Correlations and relationships\n- Actionable insights and recommendations\n- Data visualization suggestions",
		Context:     "Dataset: [describe data]. Business context: [explain use case]. Analysis goal: [objective].",
		Persona:     "analyst",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Support findings with numbers. Suggest 3-5 actionable next steps. Use statistical terms when appropriate.",
	},
	{
		ID:          "product-requirements",
		Name:        "Product Requirements",
		Category:    "business",
		Description: "PRD document structure",
		Task:        "Create a Product Requirements Document (PRD) for [FEATURE] including:\n- Problem statement\n- Target users and use cases\n- User stories (As a... I want... So that...)\n- Functional requirements\n- Non-functional requirements\n- Success metrics\n- Out of scope\n- Open questions",
		Context:     "Product: [name]. Current state: [describe]. Target release: [timeline]. Stakeholders: [list].",
		Persona:     "product",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Be specific and measurable. Include acceptance criteria. Prioritize requirements (Must/Should/Could/Won't).",
	},
	{
		ID:          "meeting-agenda",
		Name:        "Meeting Agenda",
		Category:    "business",
		Description: "Productive meeting structure",
		Task:        "Create a meeting agenda for [MEETING PURPOSE] including:\n- Meeting objective (one sentence)\n- Date, time, duration\n- Attendees and roles\n- Pre-meeting prep (5 min)\n- Main topics with time allocations\n- Decision points\n- Action items template\n- Next steps",
		Context:     "Meeting type: [standup/planning/review/brainstorm]. Team size: [number]. Meeting frequency: [one-time/recurring].",
		Persona:     "product",
		Tone:        "professional",
		Format:      "markdown",
		Constraints: "Total meeting time: 30-60 minutes. Time-box each topic. Define clear outcomes.",
	},
	{
		ID:          "eli5-explainer",
		Name:        "ELI5 Explainer",
		Category:    "education",
		Description: "Simple explanations for complex topics",
		Task:        "Explain [COMPLEX TOPIC] in a way a 5-year-old would understand:\n- Start with a simple analogy\n- Break down into 3-5 key concepts\n- Use everyday examples\n- Avoid jargon (or explain it simply)\n- End with \"why this matters\"",
		Context:     "Topic: [technical concept]. Audience: complete beginners. Goal: build foundational understanding.",
		Persona:     "generic",
		Tone:        "eli5",
		Format:      "markdown",
		Constraints: "Use short sentences. One concept per paragraph. Include fun analogies. Max 300 words.",
		Examples: []Example{{
			Input:  "Blockchain technology",
			Output: "Imagine a special notebook that everyone in your class shares. When someone writes in it, everyone gets a copy...",
		}},
	},
}

// Templates lists the starter prompts, optionally only one category
func Templates(category string) []Template {
	out := []Template{}
	for _, t := range templates {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Categories lists template categories in first-seen order
func Categories() []Category {
	cats := []Category{}
	index := map[string]int{}
	for _, t := range templates {
		i, ok := index[t.Category]
		if !ok {
			i = len(cats)
			index[t.Category] = i
			cats = append(cats, Category{Value: t.Category, Label: strings.ToUpper(t.Category[:1]) + t.Category[1:]})
		}
		cats[i].Count++
	}
	return cats
}
