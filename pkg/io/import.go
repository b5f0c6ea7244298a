package io

import (
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// ReadPlan decodes a JSON deck plan from r.
//
// The input must be a JSON object in the format produced by [WritePlan]:
//
//	{
//	  "version": 1,
//	  "template": "boardroom",
//	  "slides": [{"idx": 0, "layout_idx": 2, "mapping": {"specs": {}}}]
//	}
//
// Each slide must have a non-negative "layout_idx". Optional fields:
//   - heading, content_kind: source-content diagnostics
//   - layout_name, story_type, score: selection diagnostics
//
// ReadPlan returns an error if:
//   - The JSON is malformed or invalid
//   - The version is newer than this build supports
//   - A slide has a negative layout index
//
// A missing version is treated as version 1 so plans written before the
// field existed keep importing. Errors are wrapped with context describing
// which slide caused the problem.
//
// The returned plan is independent of r and can be modified safely after
// ReadPlan returns. ReadPlan does not close r.
func ReadPlan(r io.Reader) (*match.DeckPlan, error) {
	var p match.DeckPlan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode plan")
	}

	if p.Version == 0 {
		p.Version = match.PlanVersion
	}
	if p.Version > match.PlanVersion {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"plan version %d not supported (latest is %d)", p.Version, match.PlanVersion)
	}
	for i := range p.Slides {
		if p.Slides[i].LayoutIndex < 0 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
				"slide %d: negative layout index %d", i, p.Slides[i].LayoutIndex)
		}
	}

	return &p, nil
}

// ImportPlan reads a JSON file at path and returns the decoded plan.
//
// ImportPlan opens the file, decodes it using [ReadPlan], and closes the
// file. If the file cannot be opened, ImportPlan returns a FILE_NOT_FOUND
// error wrapping the underlying cause with the file path for context.
//
// ImportPlan returns the same validation errors as [ReadPlan] for malformed
// or unsupported plans.
func ImportPlan(path string) (*match.DeckPlan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadPlan(f)
}

// ReadAnalysis decodes a JSON template analysis from r.
//
// ReadAnalysis returns an error if the JSON is malformed or if the
// recorded layout count disagrees with the number of layout entries. A
// zero layout count is filled in from the entries, so hand-written
// analyses can omit it.
//
// The returned analysis is independent of r. ReadAnalysis does not close r.
func ReadAnalysis(r io.Reader) (*template.Analysis, error) {
	var a template.Analysis
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode analysis")
	}

	if a.TotalLayouts == 0 {
		a.TotalLayouts = len(a.Layouts)
	}
	if a.TotalLayouts != len(a.Layouts) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"total_layouts %d disagrees with %d layout entries", a.TotalLayouts, len(a.Layouts))
	}

	return &a, nil
}

// ImportAnalysis reads a JSON file at path and returns the decoded analysis.
// See [ImportPlan] for error behavior; decoding follows [ReadAnalysis].
func ImportAnalysis(path string) (*template.Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadAnalysis(f)
}
