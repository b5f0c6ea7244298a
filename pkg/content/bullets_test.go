package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeBullets(t *testing.T, src string) BulletList {
	t.Helper()
	var list BulletList
	if err := json.Unmarshal([]byte(src), &list); err != nil {
		t.Fatalf("unmarshal %s: %v", src, err)
	}
	return list
}

func TestBulletListVariants(t *testing.T) {
	list := decodeBullets(t, `[
		"plain point",
		["sub one", "sub two"],
		{"heading": "Risks", "bullet_points": ["slippage"]},
		{"note": "no heading here"},
		7
	]`)

	if len(list) != 5 {
		t.Fatalf("len = %d, want 5", len(list))
	}
	if list[0].Kind != BulletText || list[0].Text != "plain point" {
		t.Errorf("item 0 = %+v", list[0])
	}
	if list[1].Kind != BulletNested || len(list[1].Items) != 2 {
		t.Errorf("item 1 = %+v", list[1])
	}
	if list[2].Kind != BulletGroup || !list[2].HasHeading || list[2].Heading != "Risks" || len(list[2].Points) != 1 {
		t.Errorf("item 2 = %+v", list[2])
	}
	if list[3].Kind != BulletGroup || list[3].HasHeading {
		t.Errorf("item 3 = %+v", list[3])
	}
	if list[4].Kind != BulletOther || list[4].Text != "7" {
		t.Errorf("item 4 = %+v", list[4])
	}
}

func TestBulletGroupHeadingForms(t *testing.T) {
	list := decodeBullets(t, `[
		{"heading": 42, "bullet_points": []},
		{"heading": null}
	]`)

	if !list[0].HasHeading || list[0].Heading != "42" {
		t.Errorf("numeric heading = %+v", list[0])
	}
	if !list[1].HasHeading || list[1].Heading != "" {
		t.Errorf("null heading = %+v", list[1])
	}
}

func TestBulletListScalarForms(t *testing.T) {
	bare := decodeBullets(t, `"a single line of prose"`)
	if len(bare) != 1 || bare[0].Kind != BulletText {
		t.Errorf("bare string = %+v", bare)
	}

	if got := decodeBullets(t, `null`); got != nil {
		t.Errorf("null = %+v, want nil", got)
	}
	if got := decodeBullets(t, `42`); got != nil {
		t.Errorf("number = %+v, want nil", got)
	}
}

func TestBulletListPayloadField(t *testing.T) {
	p, err := ParsePayload([]byte(`{"bullet_points": "one takeaway"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.BulletPoints) != 1 || p.BulletPoints[0].Text != "one takeaway" {
		t.Errorf("normalized bullets = %+v", p.BulletPoints)
	}
}

func TestEstimateLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"short string", `["short"]`, 1},
		{"49 chars", `["` + strings.Repeat("x", 49) + `"]`, 1},
		{"100 chars wraps", `["` + strings.Repeat("x", 100) + `"]`, 2},
		{"nested recurses", `[["a", "b"], "c"]`, 3},
		{"group costs two plus points", `[{"heading": "H", "bullet_points": ["a", "b"]}]`, 4},
		{"scalar ignored", `[42]`, 0},
		{"empty", `[]`, 0},
	}

	for _, tt := range tests {
		list := decodeBullets(t, tt.src)
		if got := list.EstimateLines(); got != tt.want {
			t.Errorf("%s: EstimateLines() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestEstimateLinesRunes(t *testing.T) {
	// 60 multibyte runes is 60 characters of display text, not 180
	// bytes worth.
	list := BulletList{{Kind: BulletText, Text: strings.Repeat("界", 60)}}
	if got := list.EstimateLines(); got != 1 {
		t.Errorf("EstimateLines() = %d, want 1", got)
	}
}

func TestGroups(t *testing.T) {
	all := decodeBullets(t, `[{"heading": "A"}, {"heading": "B"}]`)
	if got := all.Groups(); len(got) != 2 {
		t.Errorf("Groups() = %+v, want 2 entries", got)
	}

	mixed := decodeBullets(t, `[{"heading": "A"}, "stray"]`)
	if got := mixed.Groups(); got != nil {
		t.Errorf("Groups() on mixed list = %+v, want nil", got)
	}

	var empty BulletList
	if got := empty.Groups(); got != nil {
		t.Errorf("Groups() on empty list = %+v, want nil", got)
	}
}

func TestBulletItemRoundTrip(t *testing.T) {
	src := `["point",{"heading":"Risks","bullet_points":["slippage"]},["a","b"]]`
	list := decodeBullets(t, src)

	out, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != src {
		t.Errorf("round trip = %s, want %s", out, src)
	}
}
