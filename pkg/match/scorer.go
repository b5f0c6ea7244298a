package match

import (
	"math"

	"github.com/nattu22/pptgenerator/pkg/content"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// defaultBulletTarget stands in when a capability carries no density
// recommendation at all.
const defaultBulletTarget = 10

// Score rates how well a layout carries a payload of the given kind,
// 0 to 100. A best_for match earns the 40-point base; kind-specific
// bonuses then check the payload's actual needs against the layout's
// capacity; small global bonuses prefer balanced, easy-to-fill layouts.
func Score(layout *template.LayoutCapability, kind content.Kind, p *content.Payload) float64 {
	score := 0.0

	for _, use := range layout.BestFor {
		if use == string(kind) {
			score += 40
			break
		}
	}

	switch kind {
	case content.KindChart:
		score += scoreChart(layout)
	case content.KindTable:
		score += scoreTable(layout, p)
	case content.KindKPIDashboard:
		score += scoreKPI(layout, p)
	case content.KindPictogram:
		score += scorePictogram(layout, p)
	case content.KindComparison:
		score += scoreComparison(layout, p)
	case content.KindBullets:
		score += scoreBullets(layout, p)
	}

	if layout.VisualBalance > 70 {
		score += 5
	}
	if layout.FillDifficulty == template.DifficultyEasy {
		score += 3
	}

	return math.Min(score, 100)
}

func scoreChart(layout *template.LayoutCapability) float64 {
	score := 0.0
	if layout.Capacity.Chart.Suitable {
		score += 30
		if layout.Capacity.Chart.AvailableArea > 50 {
			score += 10
		}
	}
	// A single section holding one large area frames a chart best.
	if len(layout.Sections) == 1 {
		areas := layout.Sections[0].ContentAreas
		if len(areas) == 1 && areas[0].IsLarge {
			score += 20
		}
	}
	return score
}

func scoreTable(layout *template.LayoutCapability, p *content.Payload) float64 {
	score := 0.0
	var cols, rows int
	if p.Table != nil {
		cols = len(p.Table.Headers)
		rows = len(p.Table.Rows)
	}

	c := layout.Capacity.Table
	if c.MaxCols >= cols && c.MaxRows >= rows {
		score += 40
		if c.MaxCols <= cols+2 {
			score += 10 // fits without drowning in empty columns
		}
	} else {
		score += 10 // partial fit
	}

	if len(layout.Sections) == 1 {
		score += 10
	}
	return score
}

func scoreKPI(layout *template.LayoutCapability, p *content.Payload) float64 {
	needed := len(p.BulletPoints)

	if layout.KPIGrid != nil {
		available := layout.Capacity.KPIs.Count
		if available < needed {
			return 0
		}
		score := 50.0
		if available == needed {
			score += 10
		}
		return score
	}

	small := 0
	for _, ph := range layout.Content {
		if ph.IsSmall {
			small++
		}
	}
	if small >= needed {
		return 30
	}
	return 0
}

func scorePictogram(layout *template.LayoutCapability, p *content.Payload) float64 {
	score := 0.0
	needed := len(p.BulletPoints)

	if layout.Capacity.Pictograms.Suitable {
		est := layout.Capacity.Pictograms.EstimatedCount
		if est >= needed {
			score += 40
			if est-needed <= 1 {
				score += 10
			}
		}
	}

	for _, ph := range layout.Content {
		if ph.IsMedium && ph.IsWide {
			score += 10
			break
		}
	}
	return score
}

func scoreComparison(layout *template.LayoutCapability, p *content.Payload) float64 {
	score := 0.0

	needed := 2
	if groups := p.BulletPoints.Groups(); groups != nil {
		needed = len(groups)
	}

	switch diff := len(layout.Sections) - needed; {
	case diff == 0:
		score += 50
	case diff == 1 || diff == -1:
		score += 30
	}

	if needed == 2 {
		if _, ok := layout.SpatialGroups[template.GroupLeftColumn]; ok {
			score += 10
		}
	}
	return score
}

func scoreBullets(layout *template.LayoutCapability, p *content.Payload) float64 {
	score := 0.0
	est := p.EstimateLines()

	target := layout.Density.BulletsRecommended
	if target == 0 {
		target = defaultBulletTarget
	}
	maxLines := layout.Capacity.Bullets.MaxLines

	switch {
	case absInt(est-target) <= 2:
		score += 50 // lands right on the recommended density
	case maxLines >= est:
		score += 40
		if maxLines <= est+5 {
			score += 10 // not too much empty space either
		}
	default:
		score += 20 // will be tight
	}

	if layout.ExecutiveSuitability >= 70 {
		score += 10
	}
	return score
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
