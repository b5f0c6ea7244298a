package template

import (
	"fmt"
	"math"
	"slices"
)

// Section grouping tolerances, in inches.
const (
	sectionVerticalMax   = 1.0
	sectionHorizontalMax = 1.5
	sectionTopAlignMax   = 0.5
)

// Pattern classifies the arrangement of content areas inside a section.
type Pattern string

const (
	// PatternSingle is one content area under the subtitle.
	PatternSingle Pattern = "single"
	// PatternGrid is three or more small boxes.
	PatternGrid Pattern = "grid"
	// PatternColumns is two or more areas sharing a top edge.
	PatternColumns Pattern = "columns"
	// PatternMixed is any other arrangement.
	PatternMixed Pattern = "mixed"
)

// Section pairs a subtitle with the content areas sitting directly
// beneath it on the slide.
type Section struct {
	ID            string        `json:"section_id"`
	Subtitle      Placeholder   `json:"subtitle"`
	ContentAreas  []Placeholder `json:"content_areas"`
	TotalCapacity float64       `json:"total_capacity"`
	Pattern       Pattern       `json:"layout_pattern"`
	BestFor       []string      `json:"best_for"`
}

// detectSections groups each subtitle with the unclaimed content areas
// that start up to an inch below it and within 1.5" horizontally. Each
// content area joins at most one section, first subtitle wins. Subtitles
// with no matching content produce no section.
func detectSections(subtitles, content []Placeholder) []Section {
	var sections []Section
	used := make(map[int]bool, len(content))

	for _, sub := range subtitles {
		var related []Placeholder
		for _, c := range content {
			if used[c.Index] {
				continue
			}
			drop := c.Top - sub.Top
			if drop <= 0 || drop >= sectionVerticalMax {
				continue
			}
			if math.Abs(c.Left-sub.Left) > sectionHorizontalMax {
				continue
			}
			related = append(related, c)
			used[c.Index] = true
		}
		if len(related) == 0 {
			continue
		}

		pattern := sectionPattern(related)
		var capacity float64
		for _, c := range related {
			capacity += c.Area
		}
		sections = append(sections, Section{
			ID:            fmt.Sprintf("section_%d", sub.Index),
			Subtitle:      sub,
			ContentAreas:  related,
			TotalCapacity: capacity,
			Pattern:       pattern,
			BestFor:       sectionBestFor(related, pattern),
		})
	}
	return sections
}

// sectionPattern classifies how a section's content areas are arranged.
func sectionPattern(areas []Placeholder) Pattern {
	if len(areas) == 1 {
		return PatternSingle
	}

	small := 0
	for _, a := range areas {
		if a.IsSmall {
			small++
		}
	}
	if small >= 3 {
		return PatternGrid
	}

	byLeft := slices.Clone(areas)
	slices.SortStableFunc(byLeft, func(a, b Placeholder) int {
		switch {
		case a.Left < b.Left:
			return -1
		case a.Left > b.Left:
			return 1
		}
		return 0
	})
	if math.Abs(byLeft[0].Top-byLeft[1].Top) < sectionTopAlignMax {
		return PatternColumns
	}
	return PatternMixed
}

// sectionBestFor suggests content kinds for a section from its pattern
// and the size of its areas.
func sectionBestFor(areas []Placeholder, pattern Pattern) []string {
	best := []string{}
	switch pattern {
	case PatternSingle:
		if areas[0].IsLarge {
			best = append(best, "chart", "table", "bullets")
		} else if areas[0].IsMedium {
			best = append(best, "bullets", "pictogram")
		}
	case PatternGrid:
		best = append(best, "kpi_dashboard", "icon_grid")
	case PatternColumns:
		best = append(best, "comparison", "bullets")
	}
	return best
}
