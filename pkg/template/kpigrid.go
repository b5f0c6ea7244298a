package template

import (
	"math"
	"slices"
)

// KPI grid detection thresholds.
const (
	kpiMinBoxes     = 4
	kpiMaxDeviation = 0.3
)

// KPIGrid describes a uniform arrangement of small metric boxes. Boxes
// are ordered row-major: topmost row first, left to right within a row.
type KPIGrid struct {
	Boxes      []Placeholder `json:"boxes"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	TotalArea  float64       `json:"total_area"`
	AvgBoxSize float64       `json:"avg_box_size"`
}

// rowBand buckets a top coordinate into a third-of-an-inch band so that
// slightly misaligned boxes still land on the same row.
func rowBand(top float64) float64 {
	return math.Round(top*3) / 3
}

// detectKPIGrid reports the KPI grid formed by a layout's small content
// boxes, or nil when no such grid exists. A grid needs at least four
// small boxes arranged in two or more rows of two or more columns, with
// every box area within 30% of the mean.
func detectKPIGrid(content []Placeholder) *KPIGrid {
	var small []Placeholder
	for _, p := range content {
		if p.IsSmall {
			small = append(small, p)
		}
	}
	if len(small) < kpiMinBoxes {
		return nil
	}

	rows := make(map[float64][]Placeholder)
	for _, box := range small {
		band := rowBand(box.Top)
		rows[band] = append(rows[band], box)
	}
	if len(rows) < 2 {
		return nil
	}
	for _, row := range rows {
		if len(row) < 2 {
			return nil
		}
	}

	var total float64
	for _, box := range small {
		total += box.Area
	}
	avg := total / float64(len(small))
	for _, box := range small {
		if math.Abs(box.Area-avg) > avg*kpiMaxDeviation {
			return nil
		}
	}

	bands := make([]float64, 0, len(rows))
	for band := range rows {
		bands = append(bands, band)
	}
	slices.Sort(bands)

	boxes := make([]Placeholder, 0, len(small))
	for _, band := range bands {
		row := rows[band]
		slices.SortStableFunc(row, func(a, b Placeholder) int {
			switch {
			case a.Left < b.Left:
				return -1
			case a.Left > b.Left:
				return 1
			}
			return 0
		})
		boxes = append(boxes, row...)
	}

	return &KPIGrid{
		Boxes:      boxes,
		Rows:       len(rows),
		Cols:       len(rows[bands[0]]),
		TotalArea:  total,
		AvgBoxSize: avg,
	}
}
