package template

import "testing"

func contentAt(coords ...[2]float64) []Placeholder {
	phs := make([]Placeholder, len(coords))
	for i, c := range coords {
		phs[i] = newPlaceholder(PlaceholderSpec{Index: i, TypeID: 2, Left: c[0], Top: c[1], Width: 3, Height: 2})
	}
	return phs
}

func TestGroupSpatialCenter(t *testing.T) {
	content := contentAt([2]float64{2.0, 1.5})
	groups := groupSpatial(content)

	if len(groups) != 1 || len(groups["center"]) != 1 {
		t.Fatalf("groups = %v, want single center group", groups)
	}
	if content[0].PositionGroup != "center" {
		t.Errorf("position group = %q, want center", content[0].PositionGroup)
	}
}

func TestGroupSpatialRows(t *testing.T) {
	content := contentAt([2]float64{1.0, 1.0}, [2]float64{1.0, 4.0})
	groups := groupSpatial(content)

	if len(groups["row_1"]) != 1 || len(groups["row_2"]) != 1 {
		t.Fatalf("groups = %v, want row_1 and row_2", groups)
	}
	if groups["row_1"][0].Top != 1.0 {
		t.Error("row_1 should hold the topmost placeholder")
	}
}

func TestGroupSpatialTwoColumns(t *testing.T) {
	content := contentAt([2]float64{0.5, 1.5}, [2]float64{5.5, 1.5}, [2]float64{0.5, 4.0})
	groups := groupSpatial(content)

	if len(groups[GroupLeftColumn]) != 2 || len(groups[GroupRightColumn]) != 1 {
		t.Fatalf("groups = %v, want 2 left and 1 right", groups)
	}
	if content[1].PositionGroup != GroupRightColumn {
		t.Errorf("position group = %q, want right_column", content[1].PositionGroup)
	}
}

func TestGroupSpatialThreeColumns(t *testing.T) {
	content := contentAt([2]float64{0.5, 1.5}, [2]float64{3.5, 1.5}, [2]float64{6.5, 1.5})
	groups := groupSpatial(content)

	for _, name := range []string{GroupLeftColumn, GroupCenterColumn, GroupRightColumn} {
		if len(groups[name]) != 1 {
			t.Fatalf("groups = %v, want one placeholder per column", groups)
		}
	}
	if groups[GroupCenterColumn][0].Left != 3.5 {
		t.Error("center column should hold the middle placeholder")
	}
}

func TestGroupSpatialCells(t *testing.T) {
	content := contentAt(
		[2]float64{0.5, 1.0}, [2]float64{2.5, 1.0},
		[2]float64{4.5, 1.0}, [2]float64{6.5, 1.0},
	)
	groups := groupSpatial(content)

	if len(groups) != 4 {
		t.Fatalf("groups = %v, want one cell per placeholder", groups)
	}
	if len(groups["cell_1"]) != 1 || len(groups["cell_4"]) != 1 {
		t.Errorf("groups = %v, want cell_1..cell_4", groups)
	}
}

func TestGroupSpatialEmpty(t *testing.T) {
	groups := groupSpatial(nil)
	if len(groups) != 0 {
		t.Errorf("groups = %v, want empty", groups)
	}
}

func TestMatchSubtitleGroups(t *testing.T) {
	content := contentAt([2]float64{0.5, 1.5}, [2]float64{0.5, 5.0})
	groups := groupSpatial(content)

	subtitles := []Placeholder{
		newPlaceholder(PlaceholderSpec{Index: 10, TypeID: 4, Left: 0.5, Top: 4.5, Width: 3, Height: 0.4}),
	}
	matchSubtitleGroups(subtitles, groups)

	if subtitles[0].PositionGroup != "row_2_subtitle" {
		t.Errorf("subtitle group = %q, want row_2_subtitle", subtitles[0].PositionGroup)
	}
}

func TestMatchSubtitleGroupsTie(t *testing.T) {
	content := contentAt([2]float64{0.5, 1.5}, [2]float64{5.5, 1.5})
	groups := groupSpatial(content)

	subtitles := []Placeholder{
		newPlaceholder(PlaceholderSpec{Index: 10, TypeID: 4, Left: 0.5, Top: 1.0, Width: 3, Height: 0.4}),
	}
	matchSubtitleGroups(subtitles, groups)

	// Both columns start at the same top; the lexically first name wins.
	if subtitles[0].PositionGroup != "left_column_subtitle" {
		t.Errorf("subtitle group = %q, want left_column_subtitle", subtitles[0].PositionGroup)
	}
}
