// Package io provides JSON import and export for deck plans, template
// analyses, and slide content payloads.
//
// # Overview
//
// This package serializes the two artifacts a planning run produces so they
// can outlive the process, and reads the payload files runs start from. The
// formats are designed for:
//
//   - Caching template analyses so re-planning skips geometry work
//   - Handing deck plans to downstream renderers and other tooling
//   - Inspecting why a slide landed on a layout (story type, score, mapping)
//   - Round-trip preservation: export, edit, and re-import identically
//
// # Plan Format
//
// A deck plan is a JSON object with a schema version, the template it was
// planned against, and one entry per slide:
//
//	{
//	  "version": 1,
//	  "template": "boardroom",
//	  "title": "Q3 Review",
//	  "created_at": "2026-08-25T10:00:00Z",
//	  "slides": [
//	    {
//	      "idx": 0,
//	      "heading": "Where We Stand",
//	      "content_kind": "bullets",
//	      "layout_idx": 2,
//	      "layout_name": "Title and Content",
//	      "story_type": "general_content",
//	      "score": 78,
//	      "mapping": {
//	        "specs": {"1": {"type": "bullets", "items": ["Revenue up 12%"]}},
//	        "degraded": false
//	      }
//	    }
//	  ]
//	}
//
// # Slide Fields
//
// Required:
//   - idx: Zero-based slide position within the deck
//   - layout_idx: Index of the chosen layout within the template
//   - mapping: Placeholder index to content spec assignments
//
// Optional:
//   - heading: Slide heading from the source content
//   - content_kind: Inferred slide kind ("bullets", "chart", ...)
//   - layout_name, story_type, score: Selection diagnostics
//
// # Analysis Format
//
// A template analysis is the capability report produced by the template
// package, encoded with its own JSON tags: template name, layout count, and
// one capability record per layout. No extra envelope is added, so an
// exported analysis matches what the HTTP API serves.
//
// # Import
//
// Use [ImportPlan] to read a plan from a file path, or [ReadPlan] to read
// from any io.Reader:
//
//	plan, err := io.ImportPlan("plan.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the schema version and per-slide constraints.
// Errors are wrapped with context about which slide caused the problem.
// [ImportAnalysis] and [ReadAnalysis] do the same for analyses.
//
// [ImportDeck] and [ReadDeck] read slide content payload files: either a
// full deck object with "title" and "slides", or a bare JSON array of
// slide payloads.
//
// # Export
//
// Use [ExportPlan] to write a plan to a file, or [WritePlan] to write to any
// io.Writer:
//
//	err := io.ExportPlan(plan, "plan.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Output is indented JSON. Everything the planner recorded is preserved,
// including degraded mappings, so a re-imported plan renders identically.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same plan or analysis, but not with concurrent
// modifications. [ReadPlan] and [ImportPlan] return independent values that
// can be modified freely after import.
package io
