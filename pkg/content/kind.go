package content

import (
	"strings"
	"unicode/utf8"
)

// Kind labels what a payload fundamentally is. The values share the
// vocabulary layout analysis emits in its best_for lists, so a kind can
// be matched against a layout directly.
type Kind string

const (
	KindChart        Kind = "chart"
	KindTable        Kind = "table"
	KindKPIDashboard Kind = "kpi_dashboard"
	KindComparison   Kind = "comparison"
	KindPictogram    Kind = "pictogram"
	KindBullets      Kind = "bullets"
)

const (
	// iconMarker introduces an icon request inside a bullet string,
	// e.g. "[[rocket]] Launch phase".
	iconMarker = "[["

	// kpiMinGroups and kpiMaxHeadingRunes split headed-group lists:
	// many short-headed groups read as KPI callouts, fewer or wordier
	// ones as comparison columns.
	kpiMinGroups       = 4
	kpiMaxHeadingRunes = 20
)

// Kind classifies the payload. Chart or table data wins outright.
// Otherwise the bullet list's shape decides: all icon-marked strings
// make a pictogram, all headed groups make a KPI dashboard or a
// comparison, and anything else is plain bullets.
func (p *Payload) Kind() Kind {
	if p.Chart.HasData() {
		return KindChart
	}
	if p.Table.HasData() {
		return KindTable
	}
	bullets := p.BulletPoints
	if len(bullets) == 0 {
		return KindBullets
	}
	if allIconText(bullets) {
		return KindPictogram
	}
	if allHeadedGroups(bullets) {
		if len(bullets) >= kpiMinGroups && allShortHeadings(bullets) {
			return KindKPIDashboard
		}
		return KindComparison
	}
	return KindBullets
}

// EstimateLines reports how many rendered lines the payload's bullets
// need.
func (p *Payload) EstimateLines() int {
	return p.BulletPoints.EstimateLines()
}

// IconItems returns the icon-marked text bullets in order.
func (p *Payload) IconItems() []BulletItem {
	var icons []BulletItem
	for _, item := range p.BulletPoints {
		if item.Kind == BulletText && strings.Contains(item.Text, iconMarker) {
			icons = append(icons, item)
		}
	}
	return icons
}

func allIconText(items BulletList) bool {
	for _, item := range items {
		if item.Kind != BulletText || !strings.Contains(item.Text, iconMarker) {
			return false
		}
	}
	return true
}

func allHeadedGroups(items BulletList) bool {
	for _, item := range items {
		if item.Kind != BulletGroup || !item.HasHeading {
			return false
		}
	}
	return true
}

func allShortHeadings(items BulletList) bool {
	for _, item := range items {
		if utf8.RuneCountInString(item.Heading) >= kpiMaxHeadingRunes {
			return false
		}
	}
	return true
}
