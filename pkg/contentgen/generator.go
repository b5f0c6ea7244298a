package contentgen

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/nattu22/pptgenerator/pkg/content"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Generator produces decks through a provider and decodes the output.
// It returns both the typed deck and its canonical JSON; revisions feed
// the canonical form back to the model.
type Generator struct {
	provider Provider
	logger   *log.Logger
}

// NewGenerator builds a generator over a provider. A nil logger uses
// the package default.
func NewGenerator(p Provider, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{provider: p, logger: logger}
}

// GenerateDeck produces a fresh deck for the prompt spec.
func (g *Generator) GenerateDeck(ctx context.Context, spec PromptSpec) (*content.Deck, string, error) {
	req := Request{
		System: systemInstruction,
		Prompt: BuildInitialPrompt(spec),
		Topic:  spec.Topic,
		Slides: spec.SlideCount,
	}
	if req.Slides <= 0 {
		req.Slides = len(spec.Stories)
	}

	g.logger.Info("generating deck content", "topic", spec.Topic, "slides", req.Slides)
	return g.roundTrip(ctx, req)
}

// ReviseDeck regenerates a deck from its previous canonical JSON and
// the accumulated revision instructions, oldest first.
func (g *Generator) ReviseDeck(ctx context.Context, previous string, instructions []string, additionalInfo string) (*content.Deck, string, error) {
	if previous == "" {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidInput, "no previous deck to revise")
	}
	if len(instructions) == 0 {
		return nil, "", apperrors.New(apperrors.ErrCodeInvalidInput, "no revision instructions")
	}

	req := Request{
		System: systemInstruction,
		Prompt: BuildRevisionPrompt(previous, instructions, additionalInfo),
	}

	g.logger.Info("revising deck content", "instructions", len(instructions))
	return g.roundTrip(ctx, req)
}

// roundTrip runs one provider call and decodes the output, returning
// the deck and its canonical JSON.
func (g *Generator) roundTrip(ctx context.Context, req Request) (*content.Deck, string, error) {
	raw, err := g.provider.GenerateContent(ctx, req)
	if err != nil {
		return nil, "", err
	}

	deck, err := DecodeDeck(raw)
	if err != nil {
		g.logger.Warn("undecodable model output", "bytes", len(raw))
		return nil, "", err
	}

	canonical, err := json.Marshal(deck)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "re-encode deck")
	}

	g.logger.Info("deck content ready", "title", deck.Title, "slides", len(deck.Slides))
	return deck, string(canonical), nil
}
