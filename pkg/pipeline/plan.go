package pipeline

import (
	"context"

	"github.com/nattu22/pptgenerator/pkg/content"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// PlanDeck selects a layout for every slide of the deck and maps content
// to placeholders. Planning never fails for individual slides; payloads
// a layout cannot honor land in degraded mappings.
func (r *Runner) PlanDeck(ctx context.Context, analysis *template.Analysis, deck *content.Deck, opts Options) (*match.DeckPlan, error) {
	if analysis == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "nil analysis")
	}
	if deck == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "nil deck")
	}
	r.applyLogger(&opts)

	planner := match.NewPlanner(analysis, opts.Tunables, opts.Logger)
	return planner.PlanDeck(deck), nil
}
