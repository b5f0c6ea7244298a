package content

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// BulletKind discriminates the variants a bullet list entry can take.
type BulletKind string

const (
	// BulletText is a plain string bullet.
	BulletText BulletKind = "text"
	// BulletNested is a sub-list of bullets indented under its parent.
	BulletNested BulletKind = "nested"
	// BulletGroup is an object entry, usually a heading with its own
	// bullet points (comparison columns, KPI callouts).
	BulletGroup BulletKind = "group"
	// BulletOther is any scalar that is none of the above. It renders
	// as nothing and contributes no lines.
	BulletOther BulletKind = "other"
)

// BulletItem is one entry of a bullet list, decoded into an explicit
// variant so downstream code never re-inspects raw JSON.
type BulletItem struct {
	Kind BulletKind

	// Text holds the string for BulletText, or the raw token for
	// BulletOther.
	Text string

	// Items holds the sub-list for BulletNested.
	Items BulletList

	// Heading and Points hold the group fields for BulletGroup.
	// HasHeading records whether the heading key was present at all;
	// group classification keys off presence, not content.
	Heading    string
	HasHeading bool
	Points     BulletList
}

func (b *BulletItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*b = BulletItem{Kind: BulletOther}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*b = BulletItem{Kind: BulletText, Text: s}
	case '[':
		var items []BulletItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*b = BulletItem{Kind: BulletNested, Items: items}
	case '{':
		// Probe keys through a map: a heading set to null still counts
		// as headed, only a missing key does not.
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return err
		}
		item := BulletItem{Kind: BulletGroup}
		if raw, ok := fields["heading"]; ok {
			item.HasHeading = true
			item.Heading = rawString(raw)
		}
		if raw, ok := fields["bullet_points"]; ok {
			if err := json.Unmarshal(raw, &item.Points); err != nil {
				return err
			}
		}
		*b = item
	default:
		*b = BulletItem{Kind: BulletOther, Text: string(trimmed)}
	}
	return nil
}

func (b BulletItem) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BulletText:
		return json.Marshal(b.Text)
	case BulletNested:
		return json.Marshal(b.Items)
	case BulletGroup:
		var group struct {
			Heading *string    `json:"heading,omitempty"`
			Points  BulletList `json:"bullet_points,omitempty"`
		}
		if b.HasHeading {
			group.Heading = &b.Heading
		}
		group.Points = b.Points
		return json.Marshal(group)
	default:
		if b.Text == "" {
			return []byte("null"), nil
		}
		return []byte(b.Text), nil
	}
}

// rawString renders a raw JSON value as text: strings decode, anything
// else keeps its token form.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// BulletList is the bullet_points field of a payload. Generators
// occasionally emit a bare string instead of a list; that decodes as a
// single text bullet. Other non-list values decode as empty.
type BulletList []BulletItem

func (l *BulletList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []BulletItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = BulletList{{Kind: BulletText, Text: s}}
	default:
		*l = nil
	}
	return nil
}

// EstimateLines approximates how many rendered lines the list needs.
// Strings wrap at roughly 50 characters, nested lists recurse, and a
// group costs two lines for its heading and spacing plus its points.
func (l BulletList) EstimateLines() int {
	total := 0
	for _, item := range l {
		switch item.Kind {
		case BulletText:
			lines := utf8.RuneCountInString(item.Text) / 50
			if lines < 1 {
				lines = 1
			}
			total += lines
		case BulletNested:
			total += item.Items.EstimateLines()
		case BulletGroup:
			total += 2 + item.Points.EstimateLines()
		}
	}
	return total
}

// Groups returns the group entries of the list, or nil unless every
// entry is a group. Comparison mapping fans content out per group only
// when the whole list is group-shaped.
func (l BulletList) Groups() []BulletItem {
	if len(l) == 0 {
		return nil
	}
	for _, item := range l {
		if item.Kind != BulletGroup {
			return nil
		}
	}
	return l
}
