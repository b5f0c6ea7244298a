package template

import (
	"fmt"
	"strings"
)

// LayoutCapability is the full capability report for one slide layout:
// classified placeholders, spatial and semantic structure, and the
// scores that drive layout selection.
type LayoutCapability struct {
	Index       int    `json:"idx"`
	Name        string `json:"name"`
	HasTitle    bool   `json:"has_title"`
	HasSubtitle bool   `json:"has_subtitle"`
	HasChart    bool   `json:"has_chart"`
	HasTable    bool   `json:"has_table"`
	HasPicture  bool   `json:"has_picture"`

	Subtitles []Placeholder `json:"subtitle_placeholders"`
	Content   []Placeholder `json:"content_placeholders"`
	Text      []Placeholder `json:"text_placeholders"`
	All       []Placeholder `json:"all_placeholders"`

	SpatialGroups map[string][]Placeholder `json:"spatial_groups"`
	Sections      []Section                `json:"semantic_sections"`
	KPIGrid       *KPIGrid                 `json:"kpi_grid,omitempty"`

	LayoutType LayoutType `json:"layout_type"`
	Category   Category   `json:"layout_category"`
	StoryType  StoryType  `json:"semantic_story_type"`
	Story      string     `json:"layout_story"`
	BestFor    []string   `json:"best_for"`

	UsableArea float64  `json:"usable_content_area"`
	Capacity   Capacity `json:"content_capacity"`

	ComplexityScore      float64               `json:"complexity_score"`
	VisualBalance        float64               `json:"visual_balance"`
	FillDifficulty       Difficulty            `json:"fill_difficulty"`
	RecommendedVerbosity int                   `json:"recommended_verbosity"`
	ExecutiveSuitability float64               `json:"executive_suitability"`
	Density              DensityRecommendation `json:"content_density_recommendation"`
}

// Usable reports whether the layout can carry slide content at all.
// Fallback capabilities and pure title/divider layouts are not usable.
func (c *LayoutCapability) Usable() bool {
	return len(c.Content) > 0
}

// LargestContent returns the content placeholder with the largest area,
// or nil when the layout has none. Every degraded mapping path falls
// back to this placeholder.
func (c *LayoutCapability) LargestContent() *Placeholder {
	return largestOf(c.Content)
}

// Analysis is the capability report for a whole template, one entry per
// layout in template order.
type Analysis struct {
	TemplateName string             `json:"template_name"`
	TotalLayouts int                `json:"total_layouts"`
	Layouts      []LayoutCapability `json:"layouts"`
}

// Layout returns the capability at the given layout index, or nil when
// out of range.
func (a *Analysis) Layout(idx int) *LayoutCapability {
	if idx < 0 || idx >= len(a.Layouts) {
		return nil
	}
	return &a.Layouts[idx]
}

// Summary renders a multi-line overview of the analysis for humans.
func (a *Analysis) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Template %q: %d layouts\n", a.TemplateName, a.TotalLayouts)

	for i := range a.Layouts {
		c := &a.Layouts[i]
		fmt.Fprintf(&b, "\nLayout %d: %s\n", c.Index, c.Name)
		fmt.Fprintf(&b, "  Type: %s  Category: %s  Story: %s\n", c.LayoutType, c.Category, c.StoryType)

		uses := c.BestFor
		if len(uses) > 3 {
			uses = uses[:3]
		}
		fmt.Fprintf(&b, "  Best for: %s\n", strings.Join(uses, ", "))
		fmt.Fprintf(&b, "  Placeholders: %d content, %d subtitle\n", len(c.Content), len(c.Subtitles))
		fmt.Fprintf(&b, "  Sections: %d\n", len(c.Sections))
		fmt.Fprintf(&b, "  Complexity: %.0f/100, Balance: %.0f/100\n", c.ComplexityScore, c.VisualBalance)
		if c.KPIGrid != nil {
			fmt.Fprintf(&b, "  KPI grid: %dx%d\n", c.KPIGrid.Rows, c.KPIGrid.Cols)
		}
	}
	return b.String()
}
