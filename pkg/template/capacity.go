package template

// Content capacity heuristics. Line height and slot widths are in
// inches; character and word densities are per inch of width and per
// square inch of area.
const (
	bulletMinHeight  = 1.0
	bulletLineHeight = 0.3
	bulletCharsPer   = 8
	bulletWordsPer   = 20
	tableColWidth    = 1.5
	tableRowHeight   = 0.4
	chartMinArea     = 30.0
	pictogramSlot    = 1.5
)

// Capacity estimates how much of each content kind a layout can absorb.
type Capacity struct {
	Bullets    BulletCapacity    `json:"bullets"`
	Table      TableCapacity     `json:"table"`
	Chart      ChartCapacity     `json:"chart"`
	KPIs       KPICapacity       `json:"kpis"`
	Pictograms PictogramCapacity `json:"pictograms"`
	Sections   int               `json:"sections"`
}

// BulletCapacity sizes the largest text area tall enough for bullets.
type BulletCapacity struct {
	MaxLines       int `json:"max_lines"`
	CharsPerLine   int `json:"chars_per_line"`
	EstimatedWords int `json:"estimated_words"`
}

// TableCapacity bounds the grid that fits the largest content area.
type TableCapacity struct {
	MaxCols int `json:"max_cols"`
	MaxRows int `json:"max_rows"`
}

// ChartCapacity reports whether any area is large enough for a chart.
type ChartCapacity struct {
	Suitable      bool    `json:"suitable"`
	MinArea       float64 `json:"min_area"`
	AvailableArea float64 `json:"available_area"`
}

// KPICapacity counts the metric boxes of a detected grid.
type KPICapacity struct {
	Count int `json:"count"`
}

// PictogramCapacity reports whether a wide medium box can hold an icon
// strip and how many icons fit across it.
type PictogramCapacity struct {
	Suitable       bool `json:"suitable"`
	EstimatedCount int  `json:"estimated_count"`
}

// computeCapacity derives content capacity from a layout's content
// placeholders, its sections, and its KPI grid if one was detected.
func computeCapacity(content []Placeholder, sections []Section, grid *KPIGrid) Capacity {
	c := Capacity{
		Chart:    ChartCapacity{MinArea: chartMinArea},
		Sections: len(sections),
	}

	if grid != nil {
		c.KPIs.Count = len(grid.Boxes)
	}

	var text []Placeholder
	for _, p := range content {
		if p.Height > bulletMinHeight {
			text = append(text, p)
		}
	}
	if largest := largestOf(text); largest != nil {
		c.Bullets.MaxLines = int(largest.Height / bulletLineHeight)
		c.Bullets.CharsPerLine = int(largest.Width * bulletCharsPer)
		c.Bullets.EstimatedWords = int(largest.Area * bulletWordsPer)
	}

	if largest := largestOf(content); largest != nil {
		c.Table.MaxCols = max(2, int(largest.Width/tableColWidth))
		c.Table.MaxRows = max(3, int(largest.Height/tableRowHeight))
	}

	for _, p := range content {
		if p.IsLarge {
			c.Chart.Suitable = true
			if p.Area > c.Chart.AvailableArea {
				c.Chart.AvailableArea = p.Area
			}
		}
	}

	for _, p := range content {
		if p.IsMedium && p.IsWide {
			c.Pictograms.Suitable = true
			c.Pictograms.EstimatedCount = int(p.Width / pictogramSlot)
			break
		}
	}

	return c
}
