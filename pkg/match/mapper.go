package match

import (
	"fmt"
	"slices"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// Spec types understood by the document writer.
const (
	SpecSubtitle = "subtitle"
	SpecBullets  = "bullets"
	SpecChart    = "chart"
	SpecTable    = "table"
	SpecIcon     = "icon"
)

// ContentSpec tells the document writer what to place into one
// placeholder. Type selects which of the remaining fields carries the
// content.
type ContentSpec struct {
	Type  string             `json:"type"`
	Text  string             `json:"text,omitempty"`
	Items content.BulletList `json:"items,omitempty"`
	Icon  string             `json:"icon,omitempty"`
	Chart *content.Chart     `json:"chart,omitempty"`
	Table *content.Table     `json:"table,omitempty"`
}

// Mapping assigns content specs to placeholders by placeholder index.
// Degraded marks a mapping that could not honor the payload's shape
// and fell back to the largest content area.
type Mapping struct {
	Specs    map[int]ContentSpec `json:"specs"`
	Degraded bool                `json:"degraded,omitempty"`
}

// MapContent assigns the payload's content to the layout's
// placeholders. Chart, table, and flat bullet payloads take the
// largest content area; group lists fan out one section per group;
// icon lists fill KPI grid boxes or content areas left to right. A
// payload whose shape the layout cannot honor still lands in the
// largest content area, flagged degraded; mapping never fails a run.
func MapContent(layout *template.LayoutCapability, kind content.Kind, p *content.Payload) Mapping {
	m := Mapping{Specs: make(map[int]ContentSpec)}

	switch kind {
	case content.KindChart:
		m.Degraded = !m.placeLargest(layout, ContentSpec{Type: SpecChart, Chart: p.Chart})
		return m

	case content.KindTable:
		m.Degraded = !m.placeLargest(layout, ContentSpec{Type: SpecTable, Table: p.Table})
		return m

	case content.KindComparison, content.KindKPIDashboard:
		groups := p.BulletPoints.Groups()
		if len(layout.Sections) >= 2 && groups != nil {
			m.placeGroups(layout, groups)
			return m
		}
		// Not enough sections for a fan-out; the whole list goes to
		// the largest area instead.
		m.placeLargest(layout, ContentSpec{Type: SpecBullets, Items: p.BulletPoints})
		m.Degraded = true
		return m

	case content.KindPictogram:
		if layout.KPIGrid == nil && len(layout.Content) == 0 {
			m.Degraded = true
			return m
		}
		m.placeIcons(layout, p.IconItems())
		return m
	}

	if len(p.BulletPoints) > 0 {
		m.Degraded = !m.placeLargest(layout, ContentSpec{Type: SpecBullets, Items: p.BulletPoints})
	}
	return m
}

// placeLargest assigns a spec to the layout's largest content area.
// Reports false when the layout has no content placeholder to take it.
func (m *Mapping) placeLargest(layout *template.LayoutCapability, spec ContentSpec) bool {
	largest := layout.LargestContent()
	if largest == nil {
		return false
	}
	m.Specs[largest.Index] = spec
	return true
}

// placeGroups fans a group list out across the layout's sections: each
// group's heading fills the section subtitle and its points fill the
// section's first content area. Extra groups or sections are left
// unassigned.
func (m *Mapping) placeGroups(layout *template.LayoutCapability, groups []content.BulletItem) {
	n := min(len(groups), len(layout.Sections))
	for i := 0; i < n; i++ {
		section := &layout.Sections[i]

		heading := groups[i].Heading
		if !groups[i].HasHeading {
			heading = fmt.Sprintf("Section %d", i+1)
		}
		m.Specs[section.Subtitle.Index] = ContentSpec{Type: SpecSubtitle, Text: heading}

		if len(section.ContentAreas) > 0 {
			m.Specs[section.ContentAreas[0].Index] = ContentSpec{Type: SpecBullets, Items: groups[i].Points}
		}
	}
}

// placeIcons fills KPI grid boxes in grid order, or content areas left
// to right, one icon each, truncated to the shorter list.
func (m *Mapping) placeIcons(layout *template.LayoutCapability, icons []content.BulletItem) {
	var targets []template.Placeholder
	if layout.KPIGrid != nil {
		targets = layout.KPIGrid.Boxes
	} else {
		targets = slices.Clone(layout.Content)
		slices.SortStableFunc(targets, func(a, b template.Placeholder) int {
			switch {
			case a.Left < b.Left:
				return -1
			case a.Left > b.Left:
				return 1
			}
			return 0
		})
	}

	n := min(len(icons), len(targets))
	for i := 0; i < n; i++ {
		m.Specs[targets[i].Index] = ContentSpec{Type: SpecIcon, Icon: icons[i].Text}
	}
}
