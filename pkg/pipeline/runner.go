package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/observability"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// Runner encapsulates pipeline execution with analysis memoization.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the analysis memo and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options. Published analyses are shared and
// must be treated as read-only.
type Runner struct {
	Logger *log.Logger

	group    singleflight.Group
	mu       sync.RWMutex
	analyses map[string]*template.Analysis
}

// NewRunner creates a runner. If logger is nil, the package default logger
// is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Logger:   logger,
		analyses: make(map[string]*template.Analysis),
	}
}

// Execute runs the complete analyze → generate → plan pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Analyze
	analyzeStart := time.Now()
	analysis, hit, err := r.AnalyzeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	result.Stats.AnalyzeTime = time.Since(analyzeStart)
	result.Stats.LayoutCount = len(analysis.Layouts)
	for i := range analysis.Layouts {
		if analysis.Layouts[i].Usable() {
			result.Stats.UsableLayouts++
		}
		if analysis.Layouts[i].LayoutType == template.LayoutFallback {
			result.Stats.FallbackCount++
		}
	}
	result.CacheInfo.AnalysisHit = hit

	opts.Logger.Info("analyzed template",
		"name", analysis.TemplateName,
		"layouts", result.Stats.LayoutCount,
		"usable", result.Stats.UsableLayouts,
		"cached", hit,
		"duration", result.Stats.AnalyzeTime)

	// Stage 2: Generate (or marshal the supplied deck)
	if opts.NeedsGeneration() {
		observability.Pipeline().OnGenerateStart(ctx, opts.Generator)
		generateStart := time.Now()
		deck, deckJSON, err := r.GenerateDeck(ctx, analysis, opts)
		if err != nil {
			observability.Pipeline().OnGenerateComplete(ctx, opts.Generator, 0, time.Since(generateStart), err)
			return nil, err
		}
		result.Deck = deck
		result.DeckJSON = deckJSON
		result.Stats.GenerateTime = time.Since(generateStart)
		observability.Pipeline().OnGenerateComplete(ctx, opts.Generator, len(deck.Slides), result.Stats.GenerateTime, nil)

		opts.Logger.Info("generated deck content",
			"topic", opts.Topic,
			"slides", len(deck.Slides),
			"duration", result.Stats.GenerateTime)
	} else {
		data, err := json.Marshal(opts.Deck)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode deck")
		}
		result.Deck = opts.Deck
		result.DeckJSON = string(data)
	}
	result.Stats.SlideCount = len(result.Deck.Slides)

	// Stage 3: Plan
	observability.Pipeline().OnPlanStart(ctx, analysis.TemplateName, result.Stats.SlideCount)
	planStart := time.Now()
	plan, err := r.PlanDeck(ctx, analysis, result.Deck, opts)
	if err != nil {
		observability.Pipeline().OnPlanComplete(ctx, analysis.TemplateName, 0, time.Since(planStart), err)
		return nil, err
	}
	result.Plan = plan
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.DegradedCount = plan.DegradedCount()
	observability.Pipeline().OnPlanComplete(ctx, analysis.TemplateName, result.Stats.DegradedCount, result.Stats.PlanTime, nil)

	opts.Logger.Info("planned deck",
		"slides", result.Stats.SlideCount,
		"degraded", result.Stats.DegradedCount,
		"duration", result.Stats.PlanTime)

	return result, nil
}

// Plan runs the pipeline for pre-written slide payloads.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Result, error) {
	if opts.Deck == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidOptions, "plan requires a deck of slide payloads")
	}
	return r.Execute(ctx, opts)
}

// Generate runs the pipeline for a topic, producing slide content before
// planning. Any supplied deck is ignored.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.Topic == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidOptions, "generate requires a topic")
	}
	opts.Deck = nil
	return r.Execute(ctx, opts)
}

// AnalyzeWithCacheInfo analyzes the template with memoization and reports
// whether the analysis came from the memo. Concurrent calls for one
// template share a single build.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, opts Options) (*template.Analysis, bool, error) {
	if err := opts.ValidateForAnalyze(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	key := opts.analysisKey()
	if !opts.Refresh {
		if analysis, ok := r.lookup(key); ok {
			observability.Cache().OnCacheHit(ctx, "analysis")
			return analysis, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "analysis")
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		if !opts.Refresh {
			if analysis, ok := r.lookup(key); ok {
				return analysis, nil
			}
		}

		spec := opts.Spec
		if spec == nil {
			var err error
			spec, err = template.ReadSpecFile(opts.Template)
			if err != nil {
				return nil, err
			}
		}

		observability.Pipeline().OnAnalyzeStart(ctx, key)
		start := time.Now()
		analysis, err := template.NewAnalyzer(opts.Logger).Analyze(spec)
		layouts := 0
		if analysis != nil {
			layouts = len(analysis.Layouts)
		}
		observability.Pipeline().OnAnalyzeComplete(ctx, key, layouts, time.Since(start), err)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.analyses[key] = analysis
		r.mu.Unlock()
		observability.Cache().OnCacheSet(ctx, "analysis")
		return analysis, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*template.Analysis), false, nil
}

// Analyze is a convenience wrapper that calls AnalyzeWithCacheInfo and
// discards the memo hit info.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*template.Analysis, error) {
	analysis, _, err := r.AnalyzeWithCacheInfo(ctx, opts)
	return analysis, err
}

// lookup reads the analysis memo.
func (r *Runner) lookup(key string) (*template.Analysis, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.analyses[key]
	return analysis, ok
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
