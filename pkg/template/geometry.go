package template

import (
	"encoding/json"
	"math"
	"os"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Slide coordinate conventions. All analysis runs in inches; descriptors
// measured in English Metric Units are normalized on decode.
const (
	// EMUPerInch is the number of English Metric Units per inch, the native
	// unit of Office document geometry.
	EMUPerInch = 914400.0

	// DefaultSlideWidth is the assumed slide width in inches when the
	// descriptor does not carry dimensions.
	DefaultSlideWidth = 10.0

	// DefaultSlideHeight is the assumed slide height in inches when the
	// descriptor does not carry dimensions.
	DefaultSlideHeight = 7.5
)

// Units accepted in a template descriptor.
const (
	UnitInches = "in"
	UnitEMU    = "emu"
)

// Spec is a decoded template descriptor: the geometric description of a
// template's slide layouts as produced by an external template reader.
// After ParseSpec or ReadSpecFile all coordinates are in inches.
type Spec struct {
	Name        string       `json:"name"`
	Units       string       `json:"units,omitempty"`
	SlideWidth  float64      `json:"slide_width,omitempty"`
	SlideHeight float64      `json:"slide_height,omitempty"`
	Layouts     []LayoutSpec `json:"layouts"`
}

// LayoutSpec describes one slide layout of a template. The layout index is
// its position in Spec.Layouts.
type LayoutSpec struct {
	Name         string            `json:"name"`
	Placeholders []PlaceholderSpec `json:"placeholders"`
}

// PlaceholderSpec is the raw geometry record for one placeholder region:
// its stable index within the layout, its numeric placeholder type, and its
// bounding box. Placeholder type ids follow the Office numbering (1 title,
// 2 body, 4 subtitle, 10 chart, 11 table, 15 picture, ...).
type PlaceholderSpec struct {
	Index  int     `json:"index"`
	TypeID int     `json:"type_id"`
	Name   string  `json:"name,omitempty"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ParseSpec decodes a template descriptor from JSON and normalizes its
// geometry to inches. Descriptors may declare units "emu" or "in"; absent
// units default to inches. Missing slide dimensions default to 10.0 x 7.5.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode template descriptor")
	}
	if err := spec.normalize(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ReadSpecFile reads and decodes a template descriptor from a file.
func ReadSpecFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read template descriptor %s", path)
	}
	return ParseSpec(data)
}

// normalize converts all geometry to inches and applies slide dimension
// defaults. It rejects unknown units.
func (s *Spec) normalize() error {
	switch s.Units {
	case "", UnitInches:
	case UnitEMU:
		s.SlideWidth /= EMUPerInch
		s.SlideHeight /= EMUPerInch
		for li := range s.Layouts {
			for pi := range s.Layouts[li].Placeholders {
				p := &s.Layouts[li].Placeholders[pi]
				p.Left /= EMUPerInch
				p.Top /= EMUPerInch
				p.Width /= EMUPerInch
				p.Height /= EMUPerInch
			}
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidTemplate, "unknown units %q (want %q or %q)", s.Units, UnitInches, UnitEMU)
	}
	s.Units = UnitInches
	if s.SlideWidth <= 0 {
		s.SlideWidth = DefaultSlideWidth
	}
	if s.SlideHeight <= 0 {
		s.SlideHeight = DefaultSlideHeight
	}
	return nil
}

// validGeometry reports whether a placeholder's bounding box is well formed:
// finite coordinates and non-negative dimensions.
func validGeometry(p PlaceholderSpec) bool {
	for _, v := range []float64{p.Left, p.Top, p.Width, p.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p.Width >= 0 && p.Height >= 0
}
