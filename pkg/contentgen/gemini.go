package contentgen

import (
	"context"
	"os"

	"google.golang.org/genai"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// DefaultGeminiModel is used when the config names no model.
const DefaultGeminiModel = "gemini-2.0-flash"

// defaultTemperature keeps deck structure stable across runs; slide
// content JSON is not a place for sampling variety.
const defaultTemperature = 0.2

// GeminiConfig configures the Gemini provider. An empty APIKey falls
// back to the GEMINI_API_KEY environment variable.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Gemini generates slide content through the Gemini API in JSON mode.
// Safe for concurrent use.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ Provider = (*Gemini)(nil)

// NewGemini creates a Gemini provider. It fails with INVALID_CONFIG
// when no API key is available.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig,
			"missing Gemini API key: set GEMINI_API_KEY or pass GeminiConfig.APIKey")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeGenerationFailed, err, "create Gemini client")
	}
	return &Gemini{client: client, model: cfg.Model, temperature: cfg.Temperature}, nil
}

// GenerateContent sends one generation request in JSON mode and returns
// the raw response text.
func (g *Gemini) GenerateContent(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, err, "gemini model %s", g.model)
	}
	return result.Text(), nil
}
