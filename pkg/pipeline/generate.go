package pipeline

import (
	"context"
	"time"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/contentgen"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/observability"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// GenerateDeck produces slide content for the options' topic, shaped by
// the analyzed template: the story arc orders the slide beats and the
// template's density recommendation caps the text. Returns the deck and
// its canonical JSON.
func (r *Runner) GenerateDeck(ctx context.Context, analysis *template.Analysis, opts Options) (*content.Deck, string, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, "", err
	}
	if opts.Topic == "" {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidOptions, "topic is required")
	}
	r.applyLogger(&opts)

	provider, err := r.provider(ctx, &opts)
	if err != nil {
		return nil, "", err
	}

	gen := contentgen.NewGenerator(provider, opts.Logger)
	return gen.GenerateDeck(ctx, contentgen.PromptSpec{
		Topic:          opts.Topic,
		SlideCount:     opts.SlideCount,
		Stories:        match.BuildStoryArc(opts.SlideCount),
		Density:        representativeDensity(analysis),
		AdditionalInfo: opts.AdditionalInfo,
	})
}

// Revise regenerates a deck from its previous canonical JSON plus
// revision instructions, then replans it against the same template.
func (r *Runner) Revise(ctx context.Context, previous string, instructions []string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForAnalyze(); err != nil {
		return nil, err
	}
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}

	provider, err := r.provider(ctx, &opts)
	if err != nil {
		return nil, err
	}

	gen := contentgen.NewGenerator(provider, opts.Logger)
	observability.Pipeline().OnGenerateStart(ctx, opts.Generator)
	reviseStart := time.Now()
	deck, _, err := gen.ReviseDeck(ctx, previous, instructions, opts.AdditionalInfo)
	slides := 0
	if deck != nil {
		slides = len(deck.Slides)
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.Generator, slides, time.Since(reviseStart), err)
	if err != nil {
		return nil, err
	}

	opts.Deck = deck
	opts.Topic = ""
	return r.Execute(ctx, opts)
}

// provider picks the content provider: an injected one wins, otherwise
// the backend named by the options. Model-backed providers are wrapped
// with retry so transient upstream failures do not sink a whole run.
func (r *Runner) provider(ctx context.Context, opts *Options) (contentgen.Provider, error) {
	if opts.Provider != nil {
		return opts.Provider, nil
	}
	switch opts.Generator {
	case GeneratorStatic:
		return contentgen.Static{}, nil
	case GeneratorGemini:
		gemini, err := contentgen.NewGemini(ctx, contentgen.GeminiConfig{})
		if err != nil {
			return nil, err
		}
		return contentgen.WithRetry(gemini, 3, time.Second), nil
	}
	return nil, ValidateGenerator(opts.Generator)
}

// representativeDensity picks the density recommendation slides will most
// often target: the most executive-suitable usable layout's. A template
// with no usable layouts yields the zero recommendation, which the
// prompt builder replaces with its own defaults.
func representativeDensity(a *template.Analysis) template.DensityRecommendation {
	best := -1.0
	var density template.DensityRecommendation
	for i := range a.Layouts {
		c := &a.Layouts[i]
		if !c.Usable() {
			continue
		}
		if c.ExecutiveSuitability > best {
			best = c.ExecutiveSuitability
			density = c.Density
		}
	}
	return density
}
