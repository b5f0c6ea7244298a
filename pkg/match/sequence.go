package match

import "github.com/nattu22/pptgenerator/pkg/template"

// SequenceState carries the layout-selection history of one generation
// run: the planned story arc plus the recently chosen layouts and story
// types. A state belongs to exactly one run and one caller; selection
// is history dependent, so slides must be planned as a single ordered
// pass, never in parallel.
type SequenceState struct {
	Arc         []template.StoryType
	UsedLayouts []int
	UsedStories []template.StoryType
}

// NewSequenceState plans the story arc for a deck of n slides and
// starts with empty history.
func NewSequenceState(n int) *SequenceState {
	return &SequenceState{Arc: BuildStoryArc(n)}
}

// Preferred returns the planned story type for a slide position. Past
// the end of the arc the final beat repeats.
func (s *SequenceState) Preferred(slideIndex int) template.StoryType {
	if len(s.Arc) == 0 {
		return ""
	}
	if slideIndex >= len(s.Arc) {
		slideIndex = len(s.Arc) - 1
	}
	if slideIndex < 0 {
		slideIndex = 0
	}
	return s.Arc[slideIndex]
}

// record appends one selection, truncating history to limit entries.
func (s *SequenceState) record(layoutIdx int, story template.StoryType, limit int) {
	s.UsedLayouts = append(s.UsedLayouts, layoutIdx)
	s.UsedStories = append(s.UsedStories, story)
	if limit > 0 && len(s.UsedLayouts) > limit {
		s.UsedLayouts = s.UsedLayouts[len(s.UsedLayouts)-limit:]
		s.UsedStories = s.UsedStories[len(s.UsedStories)-limit:]
	}
}

// recentUses counts how often a layout appears in the last window
// selections.
func (s *SequenceState) recentUses(layoutIdx, window int) int {
	recent := s.UsedLayouts
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	n := 0
	for _, idx := range recent {
		if idx == layoutIdx {
			n++
		}
	}
	return n
}

// differsFromLastTwo reports whether the layout differs from both of
// the two most recent selections. False until two selections exist.
func (s *SequenceState) differsFromLastTwo(layoutIdx int) bool {
	n := len(s.UsedLayouts)
	if n < 2 {
		return false
	}
	return s.UsedLayouts[n-1] != layoutIdx && s.UsedLayouts[n-2] != layoutIdx
}

// wouldRepeatStory reports whether picking the story would make it
// three identical story types in a row.
func (s *SequenceState) wouldRepeatStory(story template.StoryType) bool {
	n := len(s.UsedStories)
	if n < 2 {
		return false
	}
	return s.UsedStories[n-1] == story && s.UsedStories[n-2] == story
}

// storyUsedRecently reports whether the story appears in the last
// window selections.
func (s *SequenceState) storyUsedRecently(story template.StoryType, window int) bool {
	recent := s.UsedStories
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	for _, st := range recent {
		if st == story {
			return true
		}
	}
	return false
}
