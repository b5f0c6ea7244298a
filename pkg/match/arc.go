package match

import "github.com/nattu22/pptgenerator/pkg/template"

// bodyStoryCycle is the rotation of story types for deck-body slides,
// alternating analytical and visual beats.
var bodyStoryCycle = []template.StoryType{
	template.StoryDataVisualization,
	template.StoryBalancedComparison,
	template.StoryThreeStageNarrative,
	template.StoryMetricsDashboard,
	template.StoryDetailedAnalysis,
	template.StoryHierarchicalStory,
	template.StoryFeatureGrid,
}

// compatibleStories pairs story types that can stand in for each other
// when a slide's planned beat has no exact layout.
var compatibleStories = [][2]template.StoryType{
	{template.StoryDataVisualization, template.StoryMetricsDashboard},
	{template.StoryBalancedComparison, template.StoryHierarchicalStory},
	{template.StoryThreeStageNarrative, template.StoryFeatureGrid},
	{template.StoryFocusedMessage, template.StoryMainSupporting},
}

func compatibleStory(a, b template.StoryType) bool {
	for _, pair := range compatibleStories {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// BuildStoryArc plans the preferred story type for each of n slides:
// a short opening of focused messages, a body cycling through varied
// analytical and visual beats, and a closing of summary dashboards
// ending on a focused final word.
func BuildStoryArc(n int) []template.StoryType {
	if n <= 0 {
		return nil
	}
	arc := make([]template.StoryType, 0, n)

	opening := (n + 9) / 10
	for i := 0; i < opening && len(arc) < n; i++ {
		arc = append(arc, template.StoryFocusedMessage)
	}

	body := int(float64(n) * 0.7)
	for i := 0; i < body && len(arc) < n; i++ {
		arc = append(arc, bodyStoryCycle[i%len(bodyStoryCycle)])
	}

	for len(arc) < n {
		if len(arc) == n-1 {
			arc = append(arc, template.StoryFocusedMessage)
		} else {
			arc = append(arc, template.StoryMetricsDashboard)
		}
	}
	return arc
}
