package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/nine-hub/api/generators"
	"github.com/nine-hub/api/prompt"
)

// tool keys exports are recorded under
const (
	gridTool   = "grid-generator"
	metaTool   = "meta-tags"
	promptTool = "prompt-builder"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func newGridCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Generate CSS grid layouts",
	}
	cmd.AddCommand(newGridGenerateCmd(c), newGridPresetsCmd())
	return cmd
}

func newGridGenerateCmd(c *cli) *cobra.Command {
	var (
		preset    string
		columns   int
		rows      int
		gap       int
		rowHeight int
		minWidth  int
		autoFit   bool
		elementor bool
		noSave    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the CSS for a grid, optionally starting from a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := generators.DefaultGrid()
			if preset != "" {
				p, ok := generators.GridPresetByID(preset)
				if !ok {
					return fmt.Errorf("unknown grid preset %q", preset)
				}
				cfg = p.Config()
			}

			flags := cmd.Flags()
			if flags.Changed("columns") {
				cfg.Columns = columns
				// a preset's areas and items no longer fit a reshaped grid
				cfg.Areas, cfg.Items, cfg.ColumnTemplate = nil, nil, ""
			}
			if flags.Changed("rows") {
				cfg.Rows = rows
				cfg.Areas, cfg.Items = nil, nil
			}
			if flags.Changed("gap") {
				cfg.Gap, cfg.RowGap, cfg.ColumnGap = gap, gap, gap
			}
			if flags.Changed("row-height") {
				cfg.RowHeight = rowHeight
			}
			if flags.Changed("min-width") {
				cfg.MinColumnWidth = minWidth
			}
			if autoFit {
				cfg.AutoFit = true
			}
			if err := configValidator.Struct(cfg); err != nil {
				return err
			}

			res, err := generators.Grid(cfg)
			if err != nil {
				return err
			}
			format, content := "css", res.CSS
			if elementor {
				format, content = "elementor", res.Elementor
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)

			if noSave {
				return nil
			}
			_, err = c.store().AddExport(gridTool, format, content)
			return err
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "start from a layout preset (see grid presets)")
	cmd.Flags().IntVar(&columns, "columns", 3, "number of columns, 1-12")
	cmd.Flags().IntVar(&rows, "rows", 2, "number of rows, 1-12")
	cmd.Flags().IntVar(&gap, "gap", 16, "gap in px, 0-48")
	cmd.Flags().IntVar(&rowHeight, "row-height", 0, "row height in px (0 means 1fr)")
	cmd.Flags().IntVar(&minWidth, "min-width", 200, "minimum column width for --auto-fit, 100-400")
	cmd.Flags().BoolVar(&autoFit, "auto-fit", false, "fit as many columns as the container allows")
	cmd.Flags().BoolVar(&elementor, "elementor", false, "print Elementor container settings instead of CSS")
	cmd.Flags().BoolVar(&noSave, "no-history", false, "do not record the export")
	return cmd
}

func newGridPresetsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List grid layout presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := generators.GridPresets(category)
			if len(presets) == 0 {
				return fmt.Errorf("no grid presets in category %q", category)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range presets {
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\n", p.ID, p.Category, p.Columns, p.Rows, p.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category")
	return cmd
}

func newMetaCmd(c *cli) *cobra.Command {
	cfg := generators.DefaultMeta()
	var noSave bool
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Generate SEO, Open Graph and social meta tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configValidator.Struct(cfg); err != nil {
				return err
			}
			res, err := generators.Meta(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.HTML)
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			if noSave {
				return nil
			}
			_, err = c.store().AddExport(metaTool, "html", res.HTML)
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.Title, "title", cfg.Title, "page title")
	cmd.Flags().StringVar(&cfg.Description, "description", cfg.Description, "page description")
	cmd.Flags().StringVar(&cfg.Keywords, "keywords", cfg.Keywords, "comma separated keywords")
	cmd.Flags().StringVar(&cfg.Author, "author", cfg.Author, "page author")
	cmd.Flags().StringVar(&cfg.Image, "image", cfg.Image, "social preview image URL")
	cmd.Flags().StringVar(&cfg.URL, "url", cfg.URL, "canonical page URL")
	cmd.Flags().StringVar(&cfg.SocialHandle, "handle", cfg.SocialHandle, "social handle, empty to skip")
	cmd.Flags().StringVar(&cfg.SocialPlatform, "platform", cfg.SocialPlatform, "twitter, facebook, linkedin or instagram")
	cmd.Flags().BoolVar(&noSave, "no-history", false, "do not record the export")
	return cmd
}

func newPromptCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Build and rate structured AI prompts",
	}
	cmd.AddCommand(newPromptBuildCmd(c), newPromptAnalyzeCmd(), newPromptTemplatesCmd())
	return cmd
}

// promptFlags binds the prompt fields shared by build and analyze
type promptFlags struct {
	template string
	state    prompt.State
	taskFile string
}

func (pf *promptFlags) register(cmd *cobra.Command) {
	d := prompt.DefaultState()
	f := cmd.Flags()
	f.StringVar(&pf.template, "template", "", "start from a prompt template (see prompt templates)")
	f.StringVar(&pf.state.Task, "task", "", "what the model should do")
	f.StringVar(&pf.taskFile, "task-file", "", "read the task from a file")
	f.StringVar(&pf.state.Context, "context", "", "background information")
	f.StringVar(&pf.state.Persona, "persona", d.Persona, "role the model plays")
	f.StringVar(&pf.state.Tone, "tone", d.Tone, "tone of the answer")
	f.StringVar(&pf.state.Format, "format", d.Format, "answer format")
	f.StringVar(&pf.state.Constraints, "constraints", "", "extra constraints")
	f.BoolVar(&pf.state.ChainOfThought, "cot", false, "ask for step by step reasoning")
}

// resolve applies explicitly set flags over the chosen template
func (pf *promptFlags) resolve(cmd *cobra.Command) (prompt.State, error) {
	s := pf.state
	if pf.template != "" {
		t, ok := prompt.TemplateByID(pf.template)
		if !ok {
			return prompt.State{}, fmt.Errorf("unknown prompt template %q", pf.template)
		}
		s = t.State()
		f := cmd.Flags()
		for name, dst := range map[string]*string{
			"task":        &s.Task,
			"context":     &s.Context,
			"persona":     &s.Persona,
			"tone":        &s.Tone,
			"format":      &s.Format,
			"constraints": &s.Constraints,
		} {
			if f.Changed(name) {
				*dst, _ = f.GetString(name)
			}
		}
		s.ChainOfThought = pf.state.ChainOfThought
	}
	if pf.taskFile != "" {
		raw, err := os.ReadFile(pf.taskFile)
		if err != nil {
			return prompt.State{}, err
		}
		s.Task = string(raw)
	}
	if err := configValidator.Struct(s); err != nil {
		return prompt.State{}, err
	}
	return s, nil
}

func newPromptBuildCmd(c *cli) *cobra.Command {
	var (
		pf     promptFlags
		export string
		noSave bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a sectioned prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			format, err := prompt.ParseExportFormat(export)
			if err != nil {
				return err
			}
			content, err := prompt.Export(s, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)

			tokens := prompt.EstimateTokens(prompt.Build(s))
			cost := prompt.EstimateCost(tokens)
			fmt.Fprintf(cmd.ErrOrStderr(), "~%d tokens (gpt-4 %s, gpt-3.5 %s, claude %s)\n", tokens, cost.GPT4, cost.GPT35, cost.Claude)

			if noSave {
				return nil
			}
			_, err = c.store().AddExport(promptTool, string(format), content)
			return err
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&export, "export", string(prompt.ExportText), "text, json or api")
	cmd.Flags().BoolVar(&noSave, "no-history", false, "do not record the export")
	return cmd
}

func newPromptAnalyzeCmd() *cobra.Command {
	var pf promptFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score how complete a prompt is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			score := prompt.Analyze(s)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score  %d/100 (%s)\n", score.Score, score.Rating)
			for _, ch := range score.Checks {
				fmt.Fprintf(out, "%-8s %s\n", ch.Type, ch.Message)
				if ch.Suggestion != "" {
					fmt.Fprintf(out, "         %s\n", ch.Suggestion)
				}
			}
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newPromptTemplatesCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List prompt templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range prompt.Templates(category) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Category, t.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category")
	return cmd
}
