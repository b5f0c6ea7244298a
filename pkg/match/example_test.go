package match_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/template"
)

func ExampleBuildStoryArc() {
	for i, story := range match.BuildStoryArc(8) {
		fmt.Printf("%d: %s\n", i, story)
	}
	// Output:
	// 0: focused_message
	// 1: data_visualization
	// 2: balanced_comparison
	// 3: three_stage_narrative
	// 4: metrics_dashboard
	// 5: detailed_analysis
	// 6: metrics_dashboard
	// 7: focused_message
}

func ExamplePlanner_PlanDeck() {
	spec := &template.Spec{
		Name: "quarterly",
		Layouts: []template.LayoutSpec{
			{Name: "Title and Content", Placeholders: []template.PlaceholderSpec{
				{Index: 0, TypeID: 1, Left: 0.5, Top: 0.2, Width: 9, Height: 0.9},
				{Index: 1, TypeID: 2, Left: 0, Top: 1.5, Width: 10, Height: 5},
			}},
		},
	}
	analysis, err := template.NewAnalyzer(log.New(io.Discard)).Analyze(spec)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	deck := &content.Deck{
		Title: "Q3 Review",
		Slides: []content.Payload{
			{Heading: "Highlights", BulletPoints: content.BulletList{
				{Kind: content.BulletText, Text: "Revenue up 12%"},
			}},
			{Heading: "Next Steps", BulletPoints: content.BulletList{
				{Kind: content.BulletText, Text: "Expand the pilot"},
			}},
		},
	}

	planner := match.NewPlanner(analysis, match.DefaultTunables(), log.New(io.Discard))
	plan := planner.PlanDeck(deck)

	for _, slide := range plan.Slides {
		fmt.Printf("%d: %s (%s)\n", slide.Index, slide.LayoutName, slide.Story)
	}
	fmt.Println("Degraded:", plan.DegradedCount())
	// Output:
	// 0: Title and Content (data_visualization)
	// 1: Title and Content (data_visualization)
	// Degraded: 0
}
