package content

import (
	"encoding/json"
	"testing"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

func TestParseDeck(t *testing.T) {
	data := []byte(`{
		"title": "Q3 Business Review",
		"slides": [
			{
				"heading": "Revenue by Region",
				"bullet_points": ["EMEA grew 12%", "APAC flat year over year"],
				"key_message": "Growth is concentrated in EMEA",
				"img_keywords": "world map revenue",
				"chart": {
					"type": "column",
					"categories": ["Q1", "Q2", "Q3"],
					"series": [{"name": "EMEA", "values": [1.2, 1.4, 1.6]}]
				}
			},
			{
				"heading": "Headcount Plan",
				"table": {
					"headers": ["Team", "Now", "EOY"],
					"rows": [["Platform", 12, 18], ["Design", 4, null]]
				}
			}
		]
	}`)

	deck, err := ParseDeck(data)
	if err != nil {
		t.Fatalf("ParseDeck failed: %v", err)
	}
	if deck.Title != "Q3 Business Review" {
		t.Errorf("Title = %q", deck.Title)
	}
	if len(deck.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(deck.Slides))
	}

	chart := deck.Slides[0].Chart
	if !chart.HasData() {
		t.Fatal("slide 0 chart missing")
	}
	if chart.Type != "column" || len(chart.Categories) != 3 {
		t.Errorf("chart = %+v", chart)
	}
	if len(chart.Series) != 1 || chart.Series[0].Name != "EMEA" || len(chart.Series[0].Values) != 3 {
		t.Errorf("series = %+v", chart.Series)
	}

	table := deck.Slides[1].Table
	if !table.HasData() {
		t.Fatal("slide 1 table missing")
	}
	if got := table.Rows[0][1]; got != "12" {
		t.Errorf("numeric cell = %q, want \"12\"", got)
	}
	if got := table.Rows[1][2]; got != "" {
		t.Errorf("null cell = %q, want empty", got)
	}
}

func TestParseDeckInvalid(t *testing.T) {
	_, err := ParseDeck([]byte(`{"title": `))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if !apperrors.Is(err, apperrors.ErrCodeInvalidPayload) {
		t.Errorf("code = %q, want INVALID_PAYLOAD", apperrors.GetCode(err))
	}
}

func TestParsePayload(t *testing.T) {
	p, err := ParsePayload([]byte(`{"heading": "Update", "bullet_points": ["done"]}`))
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if p.Heading != "Update" || len(p.BulletPoints) != 1 {
		t.Errorf("payload = %+v", p)
	}
}

func TestChartHasData(t *testing.T) {
	var missing *Chart
	if missing.HasData() {
		t.Error("nil chart reports data")
	}
	if (&Chart{}).HasData() {
		t.Error("empty chart reports data")
	}
	if !(&Chart{Type: "pie"}).HasData() {
		t.Error("typed chart reports no data")
	}
	if !(&Chart{Series: []Series{{Name: "a"}}}).HasData() {
		t.Error("chart with series reports no data")
	}
}

func TestTableHasData(t *testing.T) {
	var missing *Table
	if missing.HasData() {
		t.Error("nil table reports data")
	}
	if (&Table{}).HasData() {
		t.Error("empty table reports data")
	}
	if !(&Table{Headers: []string{"A"}}).HasData() {
		t.Error("headed table reports no data")
	}
	if !(&Table{Rows: [][]Cell{{"x"}}}).HasData() {
		t.Error("table with rows reports no data")
	}
}

func TestCellCoercion(t *testing.T) {
	var row []Cell
	if err := json.Unmarshal([]byte(`["text", 42, 3.5, true, null]`), &row); err != nil {
		t.Fatalf("unmarshal row: %v", err)
	}
	want := []Cell{"text", "42", "3.5", "true", ""}
	if len(row) != len(want) {
		t.Fatalf("len = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] = %q, want %q", i, row[i], want[i])
		}
	}
}
