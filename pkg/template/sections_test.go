package template

import "testing"

func subtitleAt(index int, left, top float64) Placeholder {
	return newPlaceholder(PlaceholderSpec{Index: index, TypeID: 4, Left: left, Top: top, Width: 4, Height: 0.4})
}

func TestDetectSections(t *testing.T) {
	subtitles := []Placeholder{subtitleAt(1, 0.5, 1.0)}
	content := []Placeholder{
		newPlaceholder(PlaceholderSpec{Index: 2, TypeID: 2, Left: 0.5, Top: 1.5, Width: 4, Height: 2.5}),
	}

	sections := detectSections(subtitles, content)
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}

	s := sections[0]
	if s.ID != "section_1" {
		t.Errorf("id = %q, want section_1", s.ID)
	}
	if len(s.ContentAreas) != 1 || s.ContentAreas[0].Index != 2 {
		t.Errorf("content areas = %v, want placeholder 2", indices(s.ContentAreas))
	}
	if s.TotalCapacity != 10 {
		t.Errorf("capacity = %g, want 10", s.TotalCapacity)
	}
	if s.Pattern != PatternSingle {
		t.Errorf("pattern = %q, want single", s.Pattern)
	}
}

func TestDetectSectionsTolerances(t *testing.T) {
	tests := []struct {
		name        string
		contentLeft float64
		contentTop  float64
		joins       bool
	}{
		{"directly below", 0.5, 1.5, true},
		{"above subtitle", 0.5, 0.5, false},
		{"level with subtitle", 0.5, 1.0, false},
		{"a full inch below", 0.5, 2.0, false},
		{"just inside vertically", 0.5, 1.9, true},
		{"shifted right within tolerance", 2.0, 1.5, true},
		{"too far right", 2.1, 1.5, false},
	}

	for _, tt := range tests {
		subtitles := []Placeholder{subtitleAt(1, 0.5, 1.0)}
		content := []Placeholder{
			newPlaceholder(PlaceholderSpec{Index: 2, TypeID: 2, Left: tt.contentLeft, Top: tt.contentTop, Width: 4, Height: 2.5}),
		}
		sections := detectSections(subtitles, content)
		if got := len(sections) == 1; got != tt.joins {
			t.Errorf("%s: joined = %v, want %v", tt.name, got, tt.joins)
		}
	}
}

func TestDetectSectionsFirstSubtitleWins(t *testing.T) {
	subtitles := []Placeholder{
		subtitleAt(1, 0.5, 1.0),
		subtitleAt(2, 0.5, 1.2),
	}
	content := []Placeholder{
		newPlaceholder(PlaceholderSpec{Index: 3, TypeID: 2, Left: 0.5, Top: 1.8, Width: 4, Height: 2.5}),
	}

	sections := detectSections(subtitles, content)
	if len(sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(sections))
	}
	if sections[0].ID != "section_1" {
		t.Errorf("section = %q, want section_1 to claim the content", sections[0].ID)
	}
}

func TestDetectSectionsNoOrphans(t *testing.T) {
	// A subtitle with nothing below it produces no section.
	subtitles := []Placeholder{subtitleAt(1, 0.5, 6.5)}
	content := []Placeholder{
		newPlaceholder(PlaceholderSpec{Index: 2, TypeID: 2, Left: 0.5, Top: 1.5, Width: 4, Height: 2.5}),
	}
	if sections := detectSections(subtitles, content); len(sections) != 0 {
		t.Errorf("sections = %d, want 0", len(sections))
	}
}

func TestSectionPattern(t *testing.T) {
	single := []Placeholder{kpiBox(0, 1, 1, 4, 3)}
	if got := sectionPattern(single); got != PatternSingle {
		t.Errorf("single area pattern = %q", got)
	}

	grid := []Placeholder{
		kpiBox(0, 1, 1, 2, 1), kpiBox(1, 3.5, 1, 2, 1), kpiBox(2, 6, 1, 2, 1),
	}
	if got := sectionPattern(grid); got != PatternGrid {
		t.Errorf("three small boxes pattern = %q", got)
	}

	columns := []Placeholder{
		kpiBox(0, 1, 1.2, 4, 3), kpiBox(1, 5.5, 1.0, 4, 3),
	}
	if got := sectionPattern(columns); got != PatternColumns {
		t.Errorf("aligned pair pattern = %q", got)
	}

	mixed := []Placeholder{
		kpiBox(0, 1, 1.0, 4, 3), kpiBox(1, 5.5, 2.0, 4, 3),
	}
	if got := sectionPattern(mixed); got != PatternMixed {
		t.Errorf("staggered pair pattern = %q", got)
	}
}

func TestSectionBestFor(t *testing.T) {
	large := []Placeholder{kpiBox(0, 1, 1, 6, 4)}
	got := sectionBestFor(large, PatternSingle)
	if len(got) != 3 || got[0] != "chart" {
		t.Errorf("large single best for = %v", got)
	}

	medium := []Placeholder{kpiBox(0, 1, 1, 4, 2)}
	got = sectionBestFor(medium, PatternSingle)
	if len(got) != 2 || got[0] != "bullets" || got[1] != "pictogram" {
		t.Errorf("medium single best for = %v", got)
	}

	small := []Placeholder{kpiBox(0, 1, 1, 2, 1)}
	if got = sectionBestFor(small, PatternSingle); len(got) != 0 {
		t.Errorf("small single best for = %v, want none", got)
	}

	if got = sectionBestFor(nil, PatternGrid); got[0] != "kpi_dashboard" {
		t.Errorf("grid best for = %v", got)
	}
	if got = sectionBestFor(nil, PatternColumns); got[0] != "comparison" {
		t.Errorf("columns best for = %v", got)
	}
	if got = sectionBestFor(nil, PatternMixed); len(got) != 0 {
		t.Errorf("mixed best for = %v, want none", got)
	}
}
