package match

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// Planner selects layouts for a deck's slides against one analyzed
// template. Planners are stateless across runs; all history lives in
// the SequenceState the caller passes in.
type Planner struct {
	analysis *template.Analysis
	tunables Tunables
	logger   *log.Logger
}

// NewPlanner builds a planner over an analyzed template. A nil logger
// uses the package default; zero tunables get their default values.
func NewPlanner(analysis *template.Analysis, tunables Tunables, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	tunables.SetDefaults()
	return &Planner{analysis: analysis, tunables: tunables, logger: logger}
}

// SelectLayout picks the layout for one slide and records the choice
// in the state. Each layout's content score is adjusted for story-arc
// alignment (+30 exact, +15 compatible), recent reuse (-20 when picked
// twice in the recent window), and variety (+10 when it differs from
// both previous picks). If the winner would repeat the same story type
// a third consecutive time, an alternative with a different story
// whose content score lands within ScoreMargin of the winner's takes
// its place when one exists; otherwise the winner stands.
func (pl *Planner) SelectLayout(state *SequenceState, p *content.Payload, slideIndex int) int {
	kind := p.Kind()
	preferred := state.Preferred(slideIndex)

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i := range pl.analysis.Layouts {
		layout := &pl.analysis.Layouts[i]
		score := Score(layout, kind, p)

		if layout.StoryType == preferred {
			score += 30
		} else if compatibleStory(layout.StoryType, preferred) {
			score += 15
		}

		if state.recentUses(layout.Index, pl.tunables.RecentWindow) >= 2 {
			score -= 20
		}
		if state.differsFromLastTwo(layout.Index) {
			score += 10
		}

		if score > bestScore {
			bestIdx, bestScore = layout.Index, score
		}
	}
	if bestIdx < 0 {
		pl.logger.Warn("no layouts to select from", "slide", slideIndex)
		return 0
	}

	chosen := pl.analysis.Layout(bestIdx)
	if state.wouldRepeatStory(chosen.StoryType) {
		if alt := pl.alternative(state, kind, p, bestIdx, chosen.StoryType); alt >= 0 {
			pl.logger.Info("rerouting for story diversity",
				"slide", slideIndex, "story", chosen.StoryType, "from", bestIdx, "to", alt)
			bestIdx = alt
			chosen = pl.analysis.Layout(alt)
		}
	}

	state.record(bestIdx, chosen.StoryType, pl.tunables.HistoryLimit)
	pl.logger.Info("selected layout",
		"slide", slideIndex, "layout", bestIdx, "name", chosen.Name,
		"kind", kind, "story", chosen.StoryType, "score", bestScore)
	return bestIdx
}

// alternative searches for a layout with a different story type whose
// raw content score lands within ScoreMargin of the chosen layout's.
// Story types already used in the recent window take a small penalty so
// fresh ones win ties.
func (pl *Planner) alternative(state *SequenceState, kind content.Kind, p *content.Payload, chosenIdx int, chosenStory template.StoryType) int {
	baseline := Score(pl.analysis.Layout(chosenIdx), kind, p)

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i := range pl.analysis.Layouts {
		layout := &pl.analysis.Layouts[i]
		if layout.Index == chosenIdx || layout.StoryType == chosenStory {
			continue
		}
		score := Score(layout, kind, p)
		if score < baseline-pl.tunables.ScoreMargin {
			continue
		}
		if state.storyUsedRecently(layout.StoryType, pl.tunables.RecentStoryWindow) {
			score -= 5
		}
		if score > bestScore {
			bestIdx, bestScore = layout.Index, score
		}
	}
	return bestIdx
}
