package contentgen

import (
	"strings"
	"testing"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

func TestDecodeDeckStrict(t *testing.T) {
	raw := `{"title": "Q3 Review", "slides": [{"heading": "Revenue", "bullet_points": ["Up 18%"]}]}`

	deck, err := DecodeDeck(raw)
	if err != nil {
		t.Fatalf("DecodeDeck() error: %v", err)
	}
	if deck.Title != "Q3 Review" || len(deck.Slides) != 1 {
		t.Errorf("deck = %+v, want one-slide Q3 Review", deck)
	}
	if deck.Slides[0].BulletPoints[0].Text != "Up 18%" {
		t.Errorf("bullet = %q, want Up 18%%", deck.Slides[0].BulletPoints[0].Text)
	}
}

func TestDecodeDeckMarkdownFences(t *testing.T) {
	raw := "Here is your deck:\n```json\n" +
		`{"title": "Fenced", "slides": [{"heading": "One"}]}` +
		"\n```\nLet me know if you need changes."

	deck, err := DecodeDeck(raw)
	if err != nil {
		t.Fatalf("DecodeDeck() error: %v", err)
	}
	if deck.Title != "Fenced" {
		t.Errorf("title = %q, want Fenced", deck.Title)
	}
}

func TestDecodeDeckRepairsTrailingCommas(t *testing.T) {
	raw := `{"title": "Messy", "slides": [{"heading": "A", "bullet_points": ["x", "y",]},]}`

	deck, err := DecodeDeck(raw)
	if err != nil {
		t.Fatalf("DecodeDeck() error: %v", err)
	}
	if len(deck.Slides) != 1 || len(deck.Slides[0].BulletPoints) != 2 {
		t.Errorf("deck = %+v, want 1 slide with 2 bullets", deck)
	}
}

func TestDecodeDeckLenientSyntax(t *testing.T) {
	// Unquoted keys and missing commas, the Hjson-ish dialect some
	// models drift into.
	raw := "{\n  title: \"Lenient\"\n  slides: [\n    {heading: \"Intro\", bullet_points: [\"First point\"]}\n  ]\n}"

	deck, err := DecodeDeck(raw)
	if err != nil {
		t.Fatalf("DecodeDeck() error: %v", err)
	}
	if deck.Title != "Lenient" || deck.Slides[0].Heading != "Intro" {
		t.Errorf("deck = %+v, want Lenient/Intro", deck)
	}
}

func TestDecodeDeckRefusal(t *testing.T) {
	_, err := DecodeDeck("I'm sorry, I cannot produce that presentation.")
	if err == nil {
		t.Fatal("DecodeDeck() = nil error for refusal text")
	}
	if !apperrors.Is(err, apperrors.ErrCodeBadModelOutput) {
		t.Errorf("error code = %v, want BAD_MODEL_OUTPUT", apperrors.GetCode(err))
	}
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"prose before {\"a\": 1} prose after", `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"no braces here", "no braces here"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		if got := extractObject(tt.in); got != tt.want {
			t.Errorf("extractObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractObjectNested(t *testing.T) {
	in := "x {\"outer\": {\"inner\": 1}} y"
	got := extractObject(in)
	if !strings.HasPrefix(got, `{"outer"`) || !strings.HasSuffix(got, "}}") {
		t.Errorf("extractObject(%q) = %q", in, got)
	}
}
