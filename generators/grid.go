package generators

import (
	"errors"
	"fmt"
	"strings"
)

type GridItem struct {
	ColumnStart int `json:"columnStart" validate:"min=1"`
	ColumnEnd   int `json:"columnEnd" validate:"min=2"`
	RowStart    int `json:"rowStart" validate:"min=1"`
	RowEnd      int `json:"rowEnd" validate:"min=2"`
}

type GridConfig struct {
	Columns   int `json:"columns" validate:"min=1,max=12"`
	Rows      int `json:"rows" validate:"min=1,max=12"`
	Gap       int `json:"gap" validate:"min=0,max=48"`
	RowGap    int `json:"rowGap" validate:"min=0,max=48"`
	ColumnGap int `json:"columnGap" validate:"min=0,max=48"`
	// SplitGap writes row-gap and column-gap instead of one gap
	SplitGap bool `json:"splitGap"`
	// RowHeight of 0 means 1fr
	RowHeight      int    `json:"rowHeight" validate:"min=0,max=200"`
	AutoFit        bool   `json:"autoFit"`
	MinColumnWidth int    `json:"minColumnWidth" validate:"min=100,max=400"`
	AlignItems     string `json:"alignItems" validate:"omitempty,oneof=start center end stretch"`
	JustifyItems   string `json:"justifyItems" validate:"omitempty,oneof=start center end stretch"`
	AlignContent   string `json:"alignContent" validate:"omitempty,oneof=start center end space-between space-around space-evenly stretch"`
	JustifyContent string `json:"justifyContent" validate:"omitempty,oneof=start center end space-between space-around space-evenly stretch"`
	// ColumnTemplate replaces the repeat() column track list, e.g. "240px 1fr"
	ColumnTemplate string     `json:"columnTemplate" validate:"max=200"`
	Areas          []string   `json:"areas" validate:"max=12"`
	Items          []GridItem `json:"items" validate:"max=144,dive"`
}

func DefaultGrid() GridConfig {
	return GridConfig{
		Columns:        3,
		Rows:           2,
		Gap:            16,
		RowGap:         16,
		ColumnGap:      16,
		MinColumnWidth: 200,
		AlignItems:     "stretch",
		JustifyItems:   "stretch",
		AlignContent:   "start",
		JustifyContent: "start",
	}
}

type GridStats struct {
	TotalCells   int `json:"totalCells"`
	SpannedItems int `json:"spannedItems"`
	GapSpace     int `json:"gapSpace"`
}

type GridResult struct {
	// Declarations is the container rule body without a selector
	Declarations string    `json:"declarations"`
	CSS          string    `json:"css"`
	Elementor    string    `json:"elementor"`
	Stats        GridStats `json:"stats"`
}

var ErrGridItemOutOfBounds = errors.New("grid item lies outside the grid")

func (cfg GridConfig) columnsValue() string {
	switch {
	case cfg.AutoFit:
		return fmt.Sprintf("repeat(auto-fit, minmax(%dpx, 1fr))", cfg.MinColumnWidth)
	case cfg.ColumnTemplate != "":
		return cfg.ColumnTemplate
	}
	return fmt.Sprintf("repeat(%d, 1fr)", cfg.Columns)
}

func (cfg GridConfig) rowHeightValue() string {
	if cfg.RowHeight == 0 {
		return "1fr"
	}
	return fmt.Sprintf("%dpx", cfg.RowHeight)
}

func (cfg GridConfig) check() error {
	for i, it := range cfg.Items {
		if it.ColumnEnd <= it.ColumnStart || it.RowEnd <= it.RowStart ||
			it.ColumnEnd > cfg.Columns+1 || it.RowEnd > cfg.Rows+1 {
			return fmt.Errorf("item %d (%d/%d, %d/%d): %w",
				i+1, it.ColumnStart, it.ColumnEnd, it.RowStart, it.RowEnd, ErrGridItemOutOfBounds)
		}
	}
	if len(cfg.Areas) == 0 {
		return nil
	}
	if len(cfg.Areas) != cfg.Rows {
		return fmt.Errorf("areas has %d rows, grid has %d", len(cfg.Areas), cfg.Rows)
	}
	for i, row := range cfg.Areas {
		if n := len(strings.Fields(row)); n != cfg.Columns {
			return fmt.Errorf("areas row %d names %d cells, grid has %d columns", i+1, n, cfg.Columns)
		}
	}
	return nil
}

func Grid(cfg GridConfig) (GridResult, error) {
	if cfg.Columns < 1 || cfg.Rows < 1 {
		return GridResult{}, errors.New("grid needs at least one column and one row")
	}
	if err := cfg.check(); err != nil {
		return GridResult{}, err
	}

	var decl strings.Builder
	decl.WriteString("display: grid;\n")
	fmt.Fprintf(&decl, "grid-template-columns: %s;\n", cfg.columnsValue())
	fmt.Fprintf(&decl, "grid-template-rows: repeat(%d, %s);\n", cfg.Rows, cfg.rowHeightValue())
	if len(cfg.Areas) > 0 {
		quoted := make([]string, len(cfg.Areas))
		for i, row := range cfg.Areas {
			quoted[i] = `"` + strings.Join(strings.Fields(row), " ") + `"`
		}
		fmt.Fprintf(&decl, "grid-template-areas: %s;\n", strings.Join(quoted, " "))
	}
	if cfg.SplitGap {
		fmt.Fprintf(&decl, "row-gap: %dpx;\n", cfg.RowGap)
		fmt.Fprintf(&decl, "column-gap: %dpx;\n", cfg.ColumnGap)
	} else {
		fmt.Fprintf(&decl, "gap: %dpx;\n", cfg.Gap)
	}
	// only non-default alignment is written out
	if cfg.AlignItems != "" && cfg.AlignItems != "stretch" {
		fmt.Fprintf(&decl, "align-items: %s;\n", cfg.AlignItems)
	}
	if cfg.JustifyItems != "" && cfg.JustifyItems != "stretch" {
		fmt.Fprintf(&decl, "justify-items: %s;\n", cfg.JustifyItems)
	}
	if cfg.AlignContent != "" && cfg.AlignContent != "start" {
		fmt.Fprintf(&decl, "align-content: %s;\n", cfg.AlignContent)
	}
	if cfg.JustifyContent != "" && cfg.JustifyContent != "start" {
		fmt.Fprintf(&decl, "justify-content: %s;\n", cfg.JustifyContent)
	}
	declarations := decl.String()

	var css strings.Builder
	css.WriteString(".grid-container {\n")
	css.WriteString(indent(declarations, "  "))
	css.WriteString("}")
	for i, it := range cfg.Items {
		fmt.Fprintf(&css, "\n\n.grid-item-%d {\n  grid-column: %d / %d;\n  grid-row: %d / %d;\n}",
			i+1, it.ColumnStart, it.ColumnEnd, it.RowStart, it.RowEnd)
	}

	return GridResult{
		Declarations: declarations,
		CSS:          css.String(),
		Elementor:    elementor(cfg, declarations),
		Stats:        cfg.stats(),
	}, nil
}

func (cfg GridConfig) stats() GridStats {
	gap := cfg.Gap * (cfg.Columns - 1 + cfg.Rows - 1)
	if cfg.SplitGap {
		gap = cfg.RowGap*(cfg.Rows-1) + cfg.ColumnGap*(cfg.Columns-1)
	}
	return GridStats{
		TotalCells:   cfg.Columns * cfg.Rows,
		SpannedItems: len(cfg.Items),
		GapSpace:     gap,
	}
}

func indent(block, prefix string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// elementor renders the container settings as they are entered in Elementor's grid panel
func elementor(cfg GridConfig, declarations string) string {
	var b strings.Builder
	b.WriteString("/* Elementor Container Settings */\n/* Navigate to: Layout > Container */\n\nContainer Type: Grid\n\n")
	fmt.Fprintf(&b, "/* Grid Settings */\nColumns: %d\nRows: %d\n\n", cfg.Columns, cfg.Rows)

	b.WriteString("/* Column Width */\n")
	if cfg.AutoFit {
		fmt.Fprintf(&b, "Auto-fit: ON\nMin Column Width: %dpx\n\n", cfg.MinColumnWidth)
	} else {
		b.WriteString("Column Width: 1fr (equal)\n\n")
	}

	b.WriteString("/* Row Height */\n")
	if cfg.RowHeight == 0 {
		b.WriteString("Row Height: auto\n\n")
	} else {
		fmt.Fprintf(&b, "Row Height: %dpx\n\n", cfg.RowHeight)
	}

	b.WriteString("/* Gap */\n")
	if cfg.SplitGap {
		fmt.Fprintf(&b, "Row Gap: %dpx\nColumn Gap: %dpx\n\n", cfg.RowGap, cfg.ColumnGap)
	} else {
		fmt.Fprintf(&b, "Gap: %dpx\n\n", cfg.Gap)
	}

	fmt.Fprintf(&b, "/* Alignment */\nAlign Items: %s\nJustify Items: %s\nAlign Content: %s\nJustify Content: %s\n\n",
		orDefault(cfg.AlignItems, "stretch"), orDefault(cfg.JustifyItems, "stretch"),
		orDefault(cfg.AlignContent, "start"), orDefault(cfg.JustifyContent, "start"))

	b.WriteString("/* Additional CSS (if needed) */\nselector {\n")
	b.WriteString(indent(declarations, "  "))
	b.WriteString("}")

	if len(cfg.Items) > 0 {
		b.WriteString("\n\n/* Grid Item Positioning */\n/* For items that span multiple cells: */")
		for i, it := range cfg.Items {
			fmt.Fprintf(&b, "\nItem %d:\n  grid-column: %d / %d;\n  grid-row: %d / %d;",
				i+1, it.ColumnStart, it.ColumnEnd, it.RowStart, it.RowEnd)
		}
	}
	return b.String()
}

type GridPreset struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	Columns        int        `json:"columns"`
	Rows           int        `json:"rows"`
	Gap            int        `json:"gap"`
	RowHeight      int        `json:"rowHeight"`
	ColumnTemplate string     `json:"columnTemplate,omitempty"`
	Areas          []string   `json:"areas,omitempty"`
	Items          []GridItem `json:"items,omitempty"`
}

// Config turns the preset into a full configuration with default alignment
func (p GridPreset) Config() GridConfig {
	cfg := DefaultGrid()
	cfg.Columns = p.Columns
	cfg.Rows = p.Rows
	cfg.Gap, cfg.RowGap, cfg.ColumnGap = p.Gap, p.Gap, p.Gap
	cfg.RowHeight = p.RowHeight
	cfg.ColumnTemplate = p.ColumnTemplate
	cfg.Areas = append([]string(nil), p.Areas...)
	cfg.Items = append([]GridItem(nil), p.Items...)
	return cfg
}

func span(c0, c1, r0, r1 int) GridItem {
	return GridItem{ColumnStart: c0, ColumnEnd: c1, RowStart: r0, RowEnd: r1}
}

var gridPresets = []GridPreset{
	{ID: "dashboard-classic", Name: "Classic Dashboard", Category: "dashboard", Description: "Header, sidebar, main content, and footer",
		Columns: 4, Rows: 4, Gap: 16,
		Areas: []string{
			"header header header header",
			"sidebar main main main",
			"sidebar main main main",
			"footer footer footer footer",
		}},
	{ID: "dashboard-analytics", Name: "Analytics Dashboard", Category: "dashboard", Description: "Multi-widget analytics layout",
		Columns: 6, Rows: 4, Gap: 16, RowHeight: 100,
		Items: []GridItem{span(1, 4, 1, 2), span(4, 7, 1, 2), span(1, 3, 2, 4), span(3, 5, 2, 4), span(5, 7, 2, 4), span(1, 7, 4, 5)}},
	{ID: "dashboard-modern", Name: "Modern Dashboard", Category: "dashboard", Description: "Asymmetric modern layout",
		Columns: 12, Rows: 3, Gap: 20, RowHeight: 120,
		Items: []GridItem{span(1, 9, 1, 3), span(9, 13, 1, 2), span(9, 13, 2, 3), span(1, 4, 3, 4), span(4, 7, 3, 4), span(7, 10, 3, 4), span(10, 13, 3, 4)}},

	{ID: "blog-standard", Name: "Standard Blog", Category: "blog", Description: "Classic blog with sidebar",
		Columns: 3, Rows: 3, Gap: 24,
		Areas: []string{
			"header header header",
			"content content sidebar",
			"footer footer footer",
		}},
	{ID: "blog-magazine", Name: "Magazine Layout", Category: "blog", Description: "Featured post with grid articles",
		Columns: 4, Rows: 4, Gap: 16, RowHeight: 120,
		Items: []GridItem{span(1, 3, 1, 3), span(3, 5, 1, 2), span(3, 5, 2, 3), span(1, 2, 3, 4), span(2, 3, 3, 4), span(3, 4, 3, 4), span(4, 5, 3, 4)}},
	{ID: "blog-masonry", Name: "Masonry Blog", Category: "blog", Description: "Pinterest-style masonry layout",
		Columns: 4, Rows: 6, Gap: 12, RowHeight: 80,
		Items: []GridItem{span(1, 2, 1, 3), span(2, 3, 1, 2), span(3, 4, 1, 4), span(4, 5, 1, 3), span(1, 2, 3, 5), span(2, 3, 2, 4), span(4, 5, 3, 5)}},

	{ID: "portfolio-grid", Name: "Portfolio Grid", Category: "portfolio", Description: "Equal-width portfolio grid",
		Columns: 3, Rows: 3, Gap: 24},
	{ID: "portfolio-showcase", Name: "Portfolio Showcase", Category: "portfolio", Description: "Featured work showcase",
		Columns: 4, Rows: 3, Gap: 20, RowHeight: 150,
		Items: []GridItem{span(1, 3, 1, 3), span(3, 5, 1, 2), span(3, 5, 2, 3), span(1, 2, 3, 4), span(2, 3, 3, 4), span(3, 5, 3, 4)}},
	{ID: "portfolio-asymmetric", Name: "Asymmetric Portfolio", Category: "portfolio", Description: "Creative asymmetric layout",
		Columns: 6, Rows: 3, Gap: 16, RowHeight: 120,
		Items: []GridItem{span(1, 4, 1, 3), span(4, 7, 1, 2), span(4, 6, 2, 3), span(6, 7, 2, 4), span(1, 3, 3, 4), span(3, 5, 3, 4)}},

	{ID: "ecommerce-product-grid", Name: "Product Grid", Category: "ecommerce", Description: "Standard product listing",
		Columns: 4, Rows: 3, Gap: 20},
	{ID: "ecommerce-featured", Name: "Featured Products", Category: "ecommerce", Description: "Hero product with grid",
		Columns: 4, Rows: 3, Gap: 16, RowHeight: 140,
		Items: []GridItem{span(1, 3, 1, 3), span(3, 4, 1, 2), span(4, 5, 1, 2), span(3, 4, 2, 3), span(4, 5, 2, 3), span(1, 5, 3, 4)}},
	{ID: "ecommerce-checkout", Name: "Checkout Layout", Category: "ecommerce", Description: "Checkout form with summary",
		Columns: 2, Rows: 1, Gap: 32, ColumnTemplate: "2fr 1fr"},

	{ID: "landing-hero", Name: "Hero Section", Category: "landing", Description: "Classic hero with CTA",
		Columns: 2, Rows: 2, Gap: 32, RowHeight: 200},
	{ID: "landing-features", Name: "Feature Grid", Category: "landing", Description: "3-column feature showcase",
		Columns: 3, Rows: 2, Gap: 24},
	{ID: "landing-pricing", Name: "Pricing Cards", Category: "landing", Description: "Pricing tier comparison",
		Columns: 3, Rows: 1, Gap: 20},
	{ID: "landing-testimonials", Name: "Testimonials Grid", Category: "landing", Description: "Customer testimonial layout",
		Columns: 3, Rows: 2, Gap: 16, RowHeight: 120},

	{ID: "app-sidebar", Name: "App with Sidebar", Category: "app", Description: "Sidebar navigation layout",
		Columns: 2, Rows: 1, ColumnTemplate: "240px 1fr"},
	{ID: "app-split", Name: "Split View App", Category: "app", Description: "Master-detail split view",
		Columns: 2, Rows: 1, ColumnTemplate: "1fr 2fr"},
	{ID: "app-admin", Name: "Admin Panel", Category: "app", Description: "Full admin dashboard",
		Columns: 12, Rows: 5, Gap: 16, RowHeight: 80,
		Areas: []string{
			"header header header header header header header header header header header header",
			"sidebar main main main main main main main main main main aside",
			"sidebar main main main main main main main main main main aside",
			"sidebar main main main main main main main main main main aside",
			"sidebar footer footer footer footer footer footer footer footer footer footer footer",
		}},

	{ID: "responsive-mobile-first", Name: "Mobile First", Category: "responsive", Description: "Single column mobile layout",
		Columns: 1, Rows: 6, Gap: 16},
	{ID: "responsive-tablet", Name: "Tablet Grid", Category: "responsive", Description: "2-column tablet layout",
		Columns: 2, Rows: 4, Gap: 20},
	{ID: "responsive-desktop", Name: "Desktop Grid", Category: "responsive", Description: "Full-width desktop layout",
		Columns: 4, Rows: 3, Gap: 24},

	{ID: "creative-swiss", Name: "Swiss Grid", Category: "creative", Description: "Swiss design style grid",
		Columns: 12, Rows: 12, Gap: 8, RowHeight: 40},
	{ID: "creative-brutalist", Name: "Brutalist Layout", Category: "creative", Description: "Bold asymmetric design",
		Columns: 6, Rows: 5, Gap: 4, RowHeight: 80,
		Items: []GridItem{span(1, 4, 1, 4), span(4, 7, 1, 2), span(4, 6, 2, 4), span(6, 7, 2, 5), span(1, 3, 4, 6), span(3, 5, 4, 6)}},
}

// GridPresets lists the layout presets, optionally only one category
func GridPresets(category string) []GridPreset {
	out := []GridPreset{}
	for _, p := range gridPresets {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func GridPresetByID(id string) (GridPreset, bool) {
	for _, p := range gridPresets {
		if p.ID == id {
			return p, true
		}
	}
	return GridPreset{}, false
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GridCategories lists preset categories in first-seen order
func GridCategories() []Category {
	cats := []Category{}
	index := map[string]int{}
	for _, p := range gridPresets {
		i, ok := index[p.Category]
		if !ok {
			i = len(cats)
			index[p.Category] = i
			cats = append(cats, Category{Value: p.Category, Label: strings.ToUpper(p.Category[:1]) + p.Category[1:]})
		}
		cats[i].Count++
	}
	return cats
}
