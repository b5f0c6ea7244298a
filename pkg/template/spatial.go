package template

import (
	"fmt"
	"math"
	"slices"
)

// Spatial group names. Row and cell groups are numbered "row_N" and
// "cell_N"; subtitle assignments carry a "_subtitle" suffix.
const (
	GroupCenter       = "center"
	GroupLeftColumn   = "left_column"
	GroupCenterColumn = "center_column"
	GroupRightColumn  = "right_column"
)

// round1 snaps a coordinate to a tenth of an inch, the tolerance within
// which placeholders count as sharing an axis.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// groupSpatial clusters content placeholders into named groups by their
// distinct rounded left coordinates: one column yields a center group or
// stacked rows, two yield a left/right split at the midpoint, three yield
// left/center/right columns, and anything denser degrades to one cell per
// placeholder. Each placeholder's PositionGroup is set to its group name.
func groupSpatial(content []Placeholder) map[string][]Placeholder {
	if len(content) == 0 {
		return map[string][]Placeholder{}
	}

	lefts := distinctRounded(content, func(p Placeholder) float64 { return p.Left })
	tops := distinctRounded(content, func(p Placeholder) float64 { return p.Top })

	groups := make(map[string][]Placeholder)
	assign := func(name string, idx int) {
		content[idx].PositionGroup = name
		groups[name] = append(groups[name], content[idx])
	}

	switch len(lefts) {
	case 1:
		if len(tops) == 1 {
			for i := range content {
				assign(GroupCenter, i)
			}
			break
		}
		for row, top := range tops {
			name := fmt.Sprintf("row_%d", row+1)
			for i := range content {
				if round1(content[i].Top) == top {
					assign(name, i)
				}
			}
		}
	case 2:
		mid := (lefts[0] + lefts[1]) / 2
		for i := range content {
			if content[i].Left < mid {
				assign(GroupLeftColumn, i)
			} else {
				assign(GroupRightColumn, i)
			}
		}
	case 3:
		names := []string{GroupLeftColumn, GroupCenterColumn, GroupRightColumn}
		for col, left := range lefts {
			for i := range content {
				if round1(content[i].Left) == left {
					assign(names[col], i)
				}
			}
		}
	default:
		for i := range content {
			assign(fmt.Sprintf("cell_%d", i+1), i)
		}
	}

	return groups
}

// distinctRounded collects the sorted distinct rounded values of one axis.
func distinctRounded(phs []Placeholder, axis func(Placeholder) float64) []float64 {
	seen := make(map[float64]struct{}, len(phs))
	var vals []float64
	for _, p := range phs {
		v := round1(axis(p))
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			vals = append(vals, v)
		}
	}
	slices.Sort(vals)
	return vals
}

// matchSubtitleGroups assigns each subtitle the position group of its
// vertically nearest content cluster, suffixed "_subtitle". Distance is
// measured to the first member of each group; ties resolve to the
// lexically first group name.
func matchSubtitleGroups(subtitles []Placeholder, groups map[string][]Placeholder) {
	if len(groups) == 0 {
		return
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	for i := range subtitles {
		minDist := math.Inf(1)
		closest := ""
		for _, name := range names {
			members := groups[name]
			if len(members) == 0 {
				continue
			}
			dist := math.Abs(subtitles[i].Top - members[0].Top)
			if dist < minDist {
				minDist = dist
				closest = name
			}
		}
		if closest != "" {
			subtitles[i].PositionGroup = closest + "_subtitle"
		}
	}
}
