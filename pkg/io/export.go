package io

import (
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// WritePlan encodes a deck plan as indented JSON and writes it to w.
// The output includes every slide entry with its mapping and diagnostics.
// This format can be re-imported with [ReadPlan] for round-trip processing.
func WritePlan(p *match.DeckPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode plan")
	}
	return nil
}

// ExportPlan writes a deck plan to a JSON file at path.
// This is a convenience wrapper around [WritePlan] for file-based output.
func ExportPlan(p *match.DeckPlan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WritePlan(p, f)
}

// WriteAnalysis encodes a template analysis as indented JSON and writes it to w.
// This format can be re-imported with [ReadAnalysis] to skip re-analysis.
func WriteAnalysis(a *template.Analysis, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode analysis")
	}
	return nil
}

// ExportAnalysis writes a template analysis to a JSON file at path.
// This is a convenience wrapper around [WriteAnalysis] for file-based output.
func ExportAnalysis(a *template.Analysis, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteAnalysis(a, f)
}
