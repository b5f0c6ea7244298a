package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/nattu22/pptgenerator/pkg/content"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// ReadDeck decodes slide content payloads from r. Two shapes are
// accepted: a deck object with "title" and "slides", or a bare JSON
// array of slide payloads, which becomes an untitled deck. A deck
// without slides is rejected, since there is nothing to plan.
func ReadDeck(r io.Reader) (*content.Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPayload, err, "read deck payloads")
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var slides []content.Payload
		if err := json.Unmarshal(data, &slides); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPayload, err, "decode slide payloads")
		}
		deck := &content.Deck{Slides: slides}
		return deck, validateDeck(deck)
	}

	deck, err := content.ParseDeck(data)
	if err != nil {
		return nil, err
	}
	return deck, validateDeck(deck)
}

func validateDeck(d *content.Deck) error {
	if len(d.Slides) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidPayload, "deck has no slides")
	}
	return nil
}

// ImportDeck reads a JSON file at path and returns the decoded deck.
// See [ImportPlan] for error behavior; decoding follows [ReadDeck].
func ImportDeck(path string) (*content.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadDeck(f)
}
