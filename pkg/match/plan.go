package match

import (
	"time"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// PlanVersion is the current deck-plan schema version.
const PlanVersion = 1

// DeckPlan is the planned rendition of one deck against one template:
// per slide, the chosen layout, its story type, the content score at
// selection time, and the placeholder mapping.
type DeckPlan struct {
	Version   int         `json:"version"`
	Template  string      `json:"template"`
	Title     string      `json:"title,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	Slides    []SlidePlan `json:"slides"`
}

// SlidePlan is the plan for a single slide.
type SlidePlan struct {
	Index       int                `json:"idx"`
	Heading     string             `json:"heading,omitempty"`
	Kind        content.Kind       `json:"content_kind"`
	LayoutIndex int                `json:"layout_idx"`
	LayoutName  string             `json:"layout_name,omitempty"`
	Story       template.StoryType `json:"story_type,omitempty"`
	Score       float64            `json:"score"`
	Mapping     Mapping            `json:"mapping"`
}

// DegradedCount reports how many slides fell back to a degraded
// mapping.
func (p *DeckPlan) DegradedCount() int {
	n := 0
	for i := range p.Slides {
		if p.Slides[i].Mapping.Degraded {
			n++
		}
	}
	return n
}

// PlanDeck plans every slide of a deck in order: one sequence state for
// the run, one layout selection and content mapping per slide.
func (pl *Planner) PlanDeck(deck *content.Deck) *DeckPlan {
	plan := &DeckPlan{
		Version:   PlanVersion,
		Template:  pl.analysis.TemplateName,
		Title:     deck.Title,
		CreatedAt: time.Now().UTC(),
		Slides:    make([]SlidePlan, 0, len(deck.Slides)),
	}

	state := NewSequenceState(len(deck.Slides))
	for i := range deck.Slides {
		p := &deck.Slides[i]
		kind := p.Kind()

		sp := SlidePlan{
			Index:   i,
			Heading: p.Heading,
			Kind:    kind,
			Mapping: Mapping{Specs: make(map[int]ContentSpec)},
		}

		sp.LayoutIndex = pl.SelectLayout(state, p, i)
		if layout := pl.analysis.Layout(sp.LayoutIndex); layout != nil {
			sp.LayoutName = layout.Name
			sp.Story = layout.StoryType
			sp.Score = Score(layout, kind, p)
			sp.Mapping = MapContent(layout, kind, p)
		} else {
			sp.Mapping.Degraded = true
		}

		plan.Slides = append(plan.Slides, sp)
	}
	return plan
}
