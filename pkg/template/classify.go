package template

import (
	"fmt"
	"strings"
)

// Category is a coarse bucket for routing slides onto layouts.
type Category string

const (
	CategoryBlank          Category = "blank"
	CategoryCover          Category = "cover"
	CategorySectionDivider Category = "section_divider"
	CategoryKPICards       Category = "kpicards"
	CategoryLargeContent   Category = "large_content"
	CategorySmallContent   Category = "small_content"
)

// Category thresholds.
const (
	kpiCardsMinSmall    = 4
	largeContentMinArea = 10.0
)

// classifyCategory assigns one of six strict categories. Layouts with a
// title but no content split into covers and section dividers by name.
func classifyCategory(hasTitle bool, grid *KPIGrid, content []Placeholder, name string) Category {
	if len(content) == 0 {
		if !hasTitle {
			return CategoryBlank
		}
		lower := strings.ToLower(name)
		if strings.Contains(lower, "title") && !strings.Contains(lower, "only") {
			return CategoryCover
		}
		return CategorySectionDivider
	}

	if grid != nil {
		return CategoryKPICards
	}
	small := 0
	for _, p := range content {
		if p.IsSmall {
			small++
		}
	}
	if small >= kpiCardsMinSmall {
		return CategoryKPICards
	}

	for _, p := range content {
		if p.IsLarge {
			return CategoryLargeContent
		}
	}
	if len(content) == 1 && content[0].Area > largeContentMinArea {
		return CategoryLargeContent
	}
	return CategorySmallContent
}

// LayoutType is the structural shape of a layout.
type LayoutType string

const (
	LayoutKPIDashboard  LayoutType = "kpi_dashboard"
	LayoutChart         LayoutType = "chart_layout"
	LayoutTable         LayoutType = "table_layout"
	LayoutImage         LayoutType = "image_layout"
	LayoutMultiSection  LayoutType = "multi_section"
	LayoutDoubleSection LayoutType = "double_section"
	LayoutSingleSection LayoutType = "single_section"
	LayoutTitleOnly     LayoutType = "title_only"
	LayoutSingleColumn  LayoutType = "single_column"
	LayoutDoubleColumn  LayoutType = "double_column"
	LayoutTripleColumn  LayoutType = "triple_column"
	LayoutMultiColumn   LayoutType = "multi_column"

	// LayoutFallback marks a layout whose analysis failed and was
	// replaced by a minimal stand-in.
	LayoutFallback LayoutType = "fallback"
)

// classifyLayoutType picks the structural type: dedicated media
// placeholders first, then section count, then text column count.
func classifyLayoutType(hasChart, hasTable, hasPicture bool, textCount, sectionCount int, grid *KPIGrid) LayoutType {
	switch {
	case grid != nil:
		return LayoutKPIDashboard
	case hasChart:
		return LayoutChart
	case hasTable:
		return LayoutTable
	case hasPicture:
		return LayoutImage
	}

	switch {
	case sectionCount >= 3:
		return LayoutMultiSection
	case sectionCount == 2:
		return LayoutDoubleSection
	case sectionCount == 1:
		return LayoutSingleSection
	}

	switch textCount {
	case 0:
		return LayoutTitleOnly
	case 1:
		return LayoutSingleColumn
	case 2:
		return LayoutDoubleColumn
	case 3:
		return LayoutTripleColumn
	}
	return LayoutMultiColumn
}

// layoutStory renders a one-line human reading of the layout.
func layoutStory(groups map[string][]Placeholder, hasChart, hasTable bool, grid *KPIGrid, sections []Section) string {
	if grid != nil {
		return fmt.Sprintf("KPI Dashboard (%dx%d metrics)", grid.Rows, grid.Cols)
	}
	if len(sections) >= 3 {
		return fmt.Sprintf("%d topic sections", len(sections))
	}
	if hasChart {
		return "Chart with supporting text"
	}
	if hasTable {
		return "Data table presentation"
	}

	if hasGroup(groups, GroupLeftColumn) && hasGroup(groups, GroupRightColumn) {
		return "Two column comparison"
	}
	if len(groups) == 3 && allNamesContain(groups, "column") {
		return "Three column layout"
	}
	if len(groups) >= 1 && allNamesContain(groups, "row") {
		return fmt.Sprintf("Vertical stack (%d sections)", len(groups))
	}
	if len(groups) == 1 {
		return "Single content area"
	}
	return fmt.Sprintf("Multi-area layout (%d areas)", len(groups))
}

func hasGroup(groups map[string][]Placeholder, name string) bool {
	_, ok := groups[name]
	return ok
}

func allNamesContain(groups map[string][]Placeholder, substr string) bool {
	for name := range groups {
		if !strings.Contains(name, substr) {
			return false
		}
	}
	return true
}

// bestUses aggregates the content kinds a layout serves well: grid and
// media placeholders first, then section suggestions, then spatial
// arrangement bonuses. Duplicates collapse keeping first appearance; a
// layout good for nothing else takes bullets.
func bestUses(hasChart, hasTable bool, content []Placeholder, groups map[string][]Placeholder, sections []Section, grid *KPIGrid) []string {
	var uses []string

	if grid != nil {
		uses = append(uses, "kpi_dashboard", "metrics", "scorecard")
	}
	if hasChart {
		uses = append(uses, "chart")
	}
	if hasTable {
		uses = append(uses, "table")
	}

	for _, s := range sections {
		uses = append(uses, s.BestFor...)
	}

	if hasGroup(groups, GroupLeftColumn) && hasGroup(groups, GroupRightColumn) {
		uses = append(uses, "comparison", "before_after")
	}
	if len(groups) == 3 {
		uses = append(uses, "three_points", "process_steps")
	}
	if len(groups) >= 4 && grid == nil {
		uses = append(uses, "icon_grid")
	}

	for _, p := range content {
		if p.IsMedium {
			uses = append(uses, "pictogram")
			break
		}
	}

	if len(uses) == 0 {
		uses = append(uses, "bullets")
	}
	return dedupe(uses)
}

// dedupe removes repeated values keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
