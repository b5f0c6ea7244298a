// Package pkg provides the core libraries for pptgenerator presentation planning.
//
// # Overview
//
// pptgenerator turns a presentation template's layout geometry into a capability
// model, then sequences slide content onto the layouts that fit it best. The pkg
// directory is organized into four main areas:
//
//  1. [template] - Template analysis (geometry, classification, capabilities)
//  2. [content] / [contentgen] - Slide payloads and content generation backends
//  3. [match] - Layout scoring, story sequencing, and deck planning
//  4. [pipeline] - Orchestration (analyze, generate, plan)
//
// # Architecture
//
// The typical data flow through pptgenerator:
//
//	Template Descriptor (JSON)
//	         |
//	    [template] package (classify layouts into capabilities)
//	         |
//	    [contentgen] package (generate or load slide payloads)
//	         |
//	    [match] package (score layouts, sequence the deck)
//	         |
//	    Deck Plan (JSON output)
//
// # Quick Start
//
// Analyze a template and plan a deck in one call:
//
//	import (
//	    "context"
//	    "github.com/nattu22/pptgenerator/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Template:  "examples/boardroom.json",
//	    Topic:     "Q3 revenue review",
//	    Generator: pipeline.GeneratorStatic,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan := result.Plan
//
// Or run the stages by hand:
//
//	spec, _ := template.ReadSpecFile("examples/boardroom.json")
//	analysis, _ := template.NewAnalyzer(logger).Analyze(spec)
//	planner := match.NewPlanner(analysis, match.DefaultTunables(), logger)
//	plan := planner.PlanDeck(deck)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [template] - Parses template descriptors and classifies each layout by
// placeholder geometry: layout type, story type, complexity, density, and
// executive suitability. Layouts that cannot be classified degrade to
// conservative fallback capabilities instead of failing the analysis.
//
// [content] - Slide payload types (headings, bullets, charts, tables, key
// messages) with kind detection and validation.
//
// [contentgen] - Content generation backends behind a single Provider
// interface: a deterministic static backend for offline runs and a Gemini
// backend for model-generated decks. Prompt building, response repair, and
// retry live here.
//
// [match] - The planning engine. Scores every layout against every payload,
// tracks sequence state (variety windows, story arcs), and maps content
// onto the chosen layout's placeholders.
//
// ## Orchestration
//
// [pipeline] - Complete planning pipeline (analyze, generate, plan) used by
// CLI and API. Ensures consistent behavior across all entry points and
// memoizes template analyses with single-flight semantics.
//
// ## Infrastructure
//
// [session] - Deck sessions for the revision loop. Memory, file, and Redis
// backends; the file backend powers the CLI's "latest deck" convenience.
//
// [io] - Reading and writing the JSON artifacts: decks, analyses, and plans.
//
// [httputil] - JSON responses, error envelopes, request logging middleware,
// file-based caching, and retry with backoff.
//
// [errors] - Coded application errors shared by every layer; codes map to
// HTTP statuses at the API boundary.
//
// [observability] - Optional hooks for pipeline, cache, and HTTP events.
// No-op by default; register implementations at startup to wire metrics.
//
// [buildinfo] - Version and build metadata stamped at link time.
//
// # Common Workflows
//
// Plan pre-written payloads:
//
//	deck, _ := pptio.ImportDeck("payloads.json")
//	result, _ := runner.Plan(ctx, pipeline.Options{
//	    Template: "examples/boardroom.json",
//	    Deck:     deck,
//	})
//
// Revise a deck across a session:
//
//	sess, _ := session.New(result.Deck.Title, "boardroom", session.DefaultTTL)
//	sess.Deck = result.DeckJSON
//	revised, _ := runner.Revise(ctx, sess.Deck, []string{"tighten slide 2"}, opts)
//
// Serve the pipeline over HTTP:
//
//	srv := server.New(server.Config{TemplateDir: "examples", Logger: logger})
//	err := srv.ListenAndServe(ctx, ":8080")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/match/...       # Specific package
//	go test -run Example          # Examples only
//
// [template]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/template
// [content]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/content
// [contentgen]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/contentgen
// [match]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/match
// [pipeline]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/pipeline
// [session]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/session
// [io]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/io
// [httputil]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/errors
// [observability]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/nattu22/pptgenerator/pkg/buildinfo
package pkg
