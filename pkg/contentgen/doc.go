// Package contentgen produces slide content payloads from a topic.
//
// A Provider turns a prompt into raw model output; Gemini is the
// production provider and Static is a deterministic stand-in for
// offline runs and tests. The Generator builds prompts from a story
// arc and a density recommendation, then decodes the output through a
// repair chain that tolerates the usual model formatting accidents
// (markdown fences, single quotes, trailing commas, unquoted keys).
package contentgen
