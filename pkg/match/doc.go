// Package match selects slide layouts for content payloads.
//
// Given an analyzed template and a sequence of slide payloads, the
// package scores every layout against each payload's content kind,
// plans a deck-wide story arc (opening, body, closing), steers
// selection toward the arc while avoiding repetitive runs of the same
// layout or story type, and finally maps the chosen layout's
// placeholders to concrete content specs for the document writer.
//
// # Architecture
//
// Selection is a sequential, history-dependent pass over slides:
//
//  1. Score: content-kind fit against capacity, sections, and grids
//  2. Arc: position-dependent story-type preference per slide
//  3. Diversity: penalties for recent reuse, best-effort rerouting
//     when a third consecutive story type would repeat
//  4. Map: placeholder index to content spec assignments
//
// History lives in a [SequenceState] owned by the caller of one
// generation run; the planner never keeps state of its own, so distinct
// runs cannot bleed into each other.
//
// # Usage
//
//	planner := match.NewPlanner(analysis, match.DefaultTunables(), nil)
//	state := match.NewSequenceState(len(deck.Slides))
//	for i := range deck.Slides {
//	    idx := planner.SelectLayout(state, &deck.Slides[i], i)
//	    mapping := match.MapContent(analysis.Layout(idx), &deck.Slides[i])
//	    // hand mapping to the document writer
//	}
//
// Matching never fails a run: a payload that fits nothing still maps to
// the largest content placeholder, flagged as degraded.
package match
