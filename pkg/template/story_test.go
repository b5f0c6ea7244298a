package template

import "testing"

func sectionWith(areas ...Placeholder) Section {
	var capacity float64
	for _, a := range areas {
		capacity += a.Area
	}
	return Section{ContentAreas: areas, TotalCapacity: capacity}
}

func TestInferStoryType(t *testing.T) {
	wide := kpiBox(0, 0, 1, 10, 5)    // area 50, aspect 2.0
	square := kpiBox(0, 0, 1, 6.5, 6.5) // area 42.25, aspect 1.0
	modest := kpiBox(0, 0, 1, 4, 2.5) // area 10

	tests := []struct {
		name     string
		sections []Section
		content  []Placeholder
		grid     *KPIGrid
		want     StoryType
	}{
		{"kpi grid wins", nil, nil, &KPIGrid{Rows: 2, Cols: 2}, StoryMetricsDashboard},
		{"single wide area", []Section{sectionWith(wide)}, []Placeholder{wide}, nil, StoryDataVisualization},
		{"single square area", []Section{sectionWith(square)}, []Placeholder{square}, nil, StoryDetailedAnalysis},
		{"single modest area", []Section{sectionWith(modest)}, []Placeholder{modest}, nil, StoryFocusedMessage},
		{"lone placeholder reads as a section", nil, []Placeholder{wide}, nil, StoryDataVisualization},
		{"balanced pair", []Section{
			sectionWith(kpiBox(0, 0, 1, 4, 2.5)),
			sectionWith(kpiBox(1, 5, 1, 4.2, 2.5)),
		}, nil, nil, StoryBalancedComparison},
		{"main and supporting", []Section{
			sectionWith(kpiBox(0, 0, 1, 2, 2.5)),
			sectionWith(kpiBox(1, 5, 1, 8, 2.5)),
		}, nil, nil, StoryMainSupporting},
		{"three stages", []Section{
			sectionWith(modest), sectionWith(modest), sectionWith(modest),
		}, nil, nil, StoryThreeStageNarrative},
		{"feature grid", nil, []Placeholder{
			kpiBox(0, 0, 1, 2, 1), kpiBox(1, 2, 1, 2, 1), kpiBox(2, 4, 1, 2, 1),
			kpiBox(3, 0, 3, 2, 1), kpiBox(4, 2, 3, 2, 1), kpiBox(5, 4, 3, 2, 1),
		}, nil, StoryFeatureGrid},
		{"hierarchy", nil, []Placeholder{
			kpiBox(0, 0, 1, 6, 4), kpiBox(1, 7, 1, 2, 1), kpiBox(2, 7, 3, 2, 1),
		}, nil, StoryHierarchicalStory},
		{"nothing sharper", nil, []Placeholder{
			kpiBox(0, 0, 1, 4, 2), kpiBox(1, 5, 1, 4, 2),
		}, nil, StoryGeneralContent},
	}

	for _, tt := range tests {
		if got := inferStoryType(tt.sections, tt.content, tt.grid); got != tt.want {
			t.Errorf("%s: story = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInferStoryTypeBalancedBoundary(t *testing.T) {
	// Totals 10 and 10.5 differ by less than 5; 5 and 20 do not.
	near := []Section{
		sectionWith(kpiBox(0, 0, 1, 4, 2.5)),
		sectionWith(kpiBox(1, 5, 1, 4.2, 2.5)),
	}
	if got := inferStoryType(near, nil, nil); got != StoryBalancedComparison {
		t.Errorf("near totals story = %q", got)
	}

	far := []Section{
		sectionWith(kpiBox(0, 0, 1, 2, 2.5)),
		sectionWith(kpiBox(1, 5, 1, 8, 2.5)),
	}
	if got := inferStoryType(far, nil, nil); got != StoryMainSupporting {
		t.Errorf("far totals story = %q", got)
	}
}

func TestInferStoryTypeManySections(t *testing.T) {
	// Four sections skip the section rules and fall through to box mixes.
	sections := []Section{
		sectionWith(kpiBox(0, 0, 1, 2, 1)), sectionWith(kpiBox(1, 2, 1, 2, 1)),
		sectionWith(kpiBox(2, 4, 1, 2, 1)), sectionWith(kpiBox(3, 6, 1, 2, 1)),
	}
	content := []Placeholder{
		kpiBox(0, 0, 1, 2, 1), kpiBox(1, 2, 1, 2, 1), kpiBox(2, 4, 1, 2, 1),
		kpiBox(3, 0, 3, 2, 1), kpiBox(4, 2, 3, 2, 1), kpiBox(5, 4, 3, 2, 1),
	}
	if got := inferStoryType(sections, content, nil); got != StoryFeatureGrid {
		t.Errorf("many sections story = %q", got)
	}
}
