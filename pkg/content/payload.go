package content

import (
	"encoding/json"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Deck is a full presentation payload: a deck title plus one payload per
// slide.
type Deck struct {
	Title  string    `json:"title"`
	Slides []Payload `json:"slides"`
}

// Payload is one slide's content. Chart and table are optional; most
// slides carry bullet points, which may nest groups for comparisons and
// KPI callouts.
type Payload struct {
	Heading      string     `json:"heading,omitempty"`
	BulletPoints BulletList `json:"bullet_points,omitempty"`
	Chart        *Chart     `json:"chart,omitempty"`
	Table        *Table     `json:"table,omitempty"`
	KeyMessage   string     `json:"key_message,omitempty"`
	ImgKeywords  string     `json:"img_keywords,omitempty"`
}

// Chart is a chart request: a type name understood by the document
// writer plus categories and one or more value series.
type Chart struct {
	Type       string   `json:"type,omitempty"`
	Title      string   `json:"title,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Series     []Series `json:"series,omitempty"`
}

// Series is one named value series of a chart.
type Series struct {
	Name   string    `json:"name,omitempty"`
	Values []float64 `json:"values,omitempty"`
}

// HasData reports whether the chart carries anything renderable.
func (c *Chart) HasData() bool {
	if c == nil {
		return false
	}
	return c.Type != "" || c.Title != "" || len(c.Categories) > 0 || len(c.Series) > 0
}

// Table is a table request: a header row plus data rows.
type Table struct {
	Headers []string `json:"headers,omitempty"`
	Rows    [][]Cell `json:"rows,omitempty"`
}

// HasData reports whether the table carries anything renderable.
func (t *Table) HasData() bool {
	if t == nil {
		return false
	}
	return len(t.Headers) > 0 || len(t.Rows) > 0
}

// Cell is one table cell. Generators sometimes emit numbers or booleans
// where prose is expected; any scalar decodes to its textual form.
type Cell string

func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell(s)
		return nil
	}
	if string(data) == "null" {
		*c = ""
		return nil
	}
	*c = Cell(data)
	return nil
}

// ParseDeck decodes a deck payload from JSON.
func ParseDeck(data []byte) (*Deck, error) {
	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPayload, err, "decode deck payload")
	}
	return &deck, nil
}

// ParsePayload decodes a single slide payload from JSON.
func ParsePayload(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPayload, err, "decode slide payload")
	}
	return &p, nil
}
