package template

import "math"

// StoryType names the narrative a layout's geometry is built to tell.
type StoryType string

const (
	// StoryMetricsDashboard is an executive summary built on a KPI grid.
	StoryMetricsDashboard StoryType = "metrics_dashboard"
	// StoryDataVisualization is a single wide area carrying a chart or table.
	StoryDataVisualization StoryType = "data_visualization"
	// StoryDetailedAnalysis is a single large area for a text-heavy deep dive.
	StoryDetailedAnalysis StoryType = "detailed_analysis"
	// StoryFocusedMessage is a single modest area making one key point.
	StoryFocusedMessage StoryType = "focused_message"
	// StoryBalancedComparison is two equal sections, before/after or pros/cons.
	StoryBalancedComparison StoryType = "balanced_comparison"
	// StoryMainSupporting is a primary section with a smaller evidence panel.
	StoryMainSupporting StoryType = "main_supporting"
	// StoryThreeStageNarrative is three sections, problem/solution/outcome.
	StoryThreeStageNarrative StoryType = "three_stage_narrative"
	// StoryFeatureGrid is many small parallel points.
	StoryFeatureGrid StoryType = "feature_grid"
	// StoryHierarchicalStory is one main area plus supporting facts.
	StoryHierarchicalStory StoryType = "hierarchical_story"
	// StoryGeneralContent is anything without a sharper reading.
	StoryGeneralContent StoryType = "general_content"
)

// Story inference thresholds.
const (
	storyLargeArea     = 40.0
	storyWideAspect    = 1.5
	storyBalancedDelta = 5.0
	storyGridMinBoxes  = 6
)

// inferStoryType reads the narrative out of a layout's structure. A KPI
// grid always wins; otherwise the section count decides, then box size
// mixes. A layout with no sections but exactly one content area reads as
// its own single section.
func inferStoryType(sections []Section, content []Placeholder, grid *KPIGrid) StoryType {
	if grid != nil {
		return StoryMetricsDashboard
	}

	sectionCount := len(sections)
	var largest *Placeholder
	switch {
	case sectionCount == 1:
		largest = largestOf(sections[0].ContentAreas)
	case sectionCount == 0 && len(content) == 1:
		sectionCount = 1
		largest = &content[0]
	}

	switch sectionCount {
	case 1:
		if largest.Area > storyLargeArea {
			if largest.AspectRatio > storyWideAspect {
				return StoryDataVisualization
			}
			return StoryDetailedAnalysis
		}
		return StoryFocusedMessage
	case 2:
		if math.Abs(sections[0].TotalCapacity-sections[1].TotalCapacity) < storyBalancedDelta {
			return StoryBalancedComparison
		}
		return StoryMainSupporting
	case 3:
		return StoryThreeStageNarrative
	}

	if len(content) >= storyGridMinBoxes && allSmall(content) {
		return StoryFeatureGrid
	}

	larges, smalls := 0, 0
	for _, p := range content {
		switch {
		case p.IsLarge:
			larges++
		case p.IsSmall:
			smalls++
		}
	}
	if larges >= 1 && smalls >= 2 {
		return StoryHierarchicalStory
	}
	return StoryGeneralContent
}

func allSmall(phs []Placeholder) bool {
	for _, p := range phs {
		if !p.IsSmall {
			return false
		}
	}
	return true
}
