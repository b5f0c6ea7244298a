package contentgen

import (
	"encoding/json"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/nattu22/pptgenerator/pkg/content"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// DecodeDeck parses raw model output into a deck, trying progressively
// more forgiving strategies: strict JSON first, then mechanical repair
// (quotes, trailing commas, unclosed brackets), then Hjson for output
// with unquoted keys or comments. Markdown fences and surrounding prose
// are stripped before any attempt. Fails with BAD_MODEL_OUTPUT when no
// strategy yields a deck.
func DecodeDeck(raw string) (*content.Deck, error) {
	cleaned := extractObject(raw)

	if deck, err := content.ParseDeck([]byte(cleaned)); err == nil {
		return deck, nil
	}

	if repaired, err := jsonrepair.RepairJSON(cleaned); err == nil {
		if deck, err := content.ParseDeck([]byte(repaired)); err == nil {
			return deck, nil
		}
	}

	var loose any
	if err := hjson.Unmarshal([]byte(cleaned), &loose); err == nil {
		if normalized, err := json.Marshal(loose); err == nil {
			if deck, err := content.ParseDeck(normalized); err == nil {
				return deck, nil
			}
		}
	}

	return nil, apperrors.New(apperrors.ErrCodeBadModelOutput,
		"model output is not a slide deck after repair (%d bytes)", len(raw))
}

// extractObject trims the response to the outermost JSON object,
// dropping markdown fences and any prose before or after it. Returns
// the trimmed input unchanged when no braces are found so the repair
// chain still gets a chance.
func extractObject(raw string) string {
	s := strings.TrimSpace(raw)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
