package contentgen

import "context"

// Request is one content-generation call. System and Prompt drive model
// providers; Topic and Slides carry the structured intent so synthetic
// providers can answer without parsing the prompt back apart.
type Request struct {
	System string
	Prompt string
	Topic  string
	Slides int
}

// Provider turns a generation request into raw model output. The
// output is expected to be a slide deck JSON document, but providers
// make no formatting guarantees; callers decode through DecodeDeck.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
}
