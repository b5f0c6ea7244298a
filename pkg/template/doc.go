// Package template analyzes presentation template layouts.
//
// A template is a set of slide layouts, each describing placeholder regions
// by position and size. This package classifies those placeholders into
// roles, groups them spatially and semantically, and derives per-layout
// capability records describing what content each layout can hold and what
// kind of narrative it is suited to tell.
//
// # Architecture
//
// Analysis runs as a fixed sequence of passes over each layout:
//
//  1. Role classification: type id plus geometry heuristics label every
//     placeholder as title, subtitle, content, chart, table, image, or footer
//  2. Spatial grouping: content placeholders cluster into columns, rows,
//     or cells by shared coordinates
//  3. KPI grid detection: regular grids of small, similarly sized boxes
//  4. Semantic sections: each subtitle pairs with the content placeholders
//     directly beneath it
//  5. Derived scores: complexity, visual balance, fill difficulty,
//     executive suitability, and a content density recommendation
//
// The result is one immutable [LayoutCapability] per layout. Capabilities
// are plain values and safe for concurrent readers once built.
//
// # Usage
//
// Decode a template descriptor and analyze it:
//
//	spec, err := template.ReadSpecFile("boardroom.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	analysis, err := template.NewAnalyzer(nil).Analyze(spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, layout := range analysis.Layouts {
//	    fmt.Println(layout.Name, layout.StoryType, layout.BestFor)
//	}
//
// Layouts that fail analysis degrade to a minimal fallback capability
// rather than aborting the template; a template with no usable layout at
// all is an error.
package template
