// Package pipeline provides the core planning pipeline for pptgenerator.
//
// This package implements the complete analyze → generate → plan pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Analyze: Classify a template descriptor into layout capabilities
//  2. Generate: Produce slide content for a topic (skipped when the
//     caller supplies a deck)
//  3. Plan: Select a layout per slide and map content to placeholders
//
// Each stage can be run independently or as part of the complete pipeline.
// Template analyses are memoized per template identity with single-flight
// semantics, so concurrent requests for one template share one build and
// later requests reuse it.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Template: "examples/boardroom.json",
//	    Topic:    "Q3 revenue review",
//	    Generator: pipeline.GeneratorStatic,
//	}
//	result, err := runner.Generate(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan := result.Plan
//
// Run individual stages:
//
//	// Analyze only
//	analysis, err := runner.Analyze(ctx, opts)
//
//	// Plan with an existing deck
//	plan, err := runner.PlanDeck(ctx, analysis, deck, opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/contentgen"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSlideCount is the slide count when generating content for a
	// topic without an explicit count.
	DefaultSlideCount = 10
)

// Generator constants for content generation backends.
const (
	GeneratorStatic = "static"
	GeneratorGemini = "gemini"
)

// DefaultGenerator is the default content generation backend.
const DefaultGenerator = GeneratorGemini

// ValidGenerators is the set of supported content generation backends.
var ValidGenerators = map[string]bool{
	GeneratorStatic: true,
	GeneratorGemini: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the planning pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Template options
	Template string `json:"template,omitempty"` // descriptor path or registered name
	Refresh  bool   `json:"refresh,omitempty"`  // bypass the analysis memo

	// Content options. Either a pre-written deck or a topic to generate
	// content for; a deck wins when both are set.
	Deck           *content.Deck `json:"deck,omitempty"`
	Topic          string        `json:"topic,omitempty"`
	SlideCount     int           `json:"slide_count,omitempty"`
	AdditionalInfo string        `json:"additional_info,omitempty"`
	Generator      string        `json:"generator,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger         `json:"-"`
	Spec     *template.Spec      `json:"-"` // pre-parsed descriptor, overrides Template
	Provider contentgen.Provider `json:"-"` // overrides Generator selection
	Tunables match.Tunables      `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Analysis is the capability report for the template.
	Analysis *template.Analysis

	// Deck holds the slide content that was planned, whether supplied or
	// generated.
	Deck *content.Deck

	// DeckJSON is the canonical JSON form of Deck, suitable for session
	// storage and revision prompts.
	DeckJSON string

	// Plan is the per-slide layout selection and content mapping.
	Plan *match.DeckPlan

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the analysis memo.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayoutCount   int // layouts analyzed
	UsableLayouts int // layouts that can carry content
	FallbackCount int // layouts degraded to fallback capabilities
	SlideCount    int // slides planned
	DegradedCount int // slides with degraded mappings
	AnalyzeTime   time.Duration
	GenerateTime  time.Duration
	PlanTime      time.Duration
}

// CacheInfo tracks memo hits for the analysis stage.
type CacheInfo struct {
	AnalysisHit bool // whether the analysis came from the memo
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateGenerator checks that a generator backend is valid.
func ValidateGenerator(generator string) error {
	if !ValidGenerators[generator] {
		return apperrors.New(apperrors.ErrCodeInvalidOptions,
			"invalid generator: %q (must be one of: static, gemini)", generator)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForAnalyze(); err != nil {
		return err
	}
	if o.Deck == nil && o.Topic == "" {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "deck or topic is required")
	}
	o.SetGenerateDefaults()
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForAnalyze checks required fields for template analysis.
func (o *Options) ValidateForAnalyze() error {
	if o.Template == "" && o.Spec == nil {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "template is required")
	}
	return nil
}

// SetGenerateDefaults sets default values for content generation.
func (o *Options) SetGenerateDefaults() {
	if o.SlideCount == 0 {
		o.SlideCount = DefaultSlideCount
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
}

// ValidateForGenerate validates and sets defaults for content generation.
// A caller-supplied Provider short-circuits backend validation.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if o.Provider != nil {
		return nil
	}
	return ValidateGenerator(o.Generator)
}

// NeedsGeneration reports whether the run must generate slide content
// before planning.
func (o *Options) NeedsGeneration() bool {
	return o.Deck == nil
}

// analysisKey is the memo key for this run's template identity: the
// descriptor path or registered name, or the embedded spec's own name.
func (o *Options) analysisKey() string {
	if o.Template != "" {
		return o.Template
	}
	return "spec:" + o.Spec.Name
}
