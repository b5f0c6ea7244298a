package template

import "fmt"

// Role labels the function a placeholder serves on a slide.
type Role string

// Placeholder roles assigned by classifyRole.
const (
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleContent  Role = "content"
	RoleChart    Role = "chart"
	RoleTable    Role = "table"
	RoleImage    Role = "image"
	RoleFooter   Role = "footer"
)

// Size class thresholds in square inches and aspect ratios. These are fixed
// constants of the analysis, not per-template configuration.
const (
	smallAreaMax  = 3.0
	largeAreaMin  = 15.0
	wideAspectMin = 2.0
	tallAspectMax = 0.5
)

// typeNames maps Office placeholder type ids to their conventional names.
var typeNames = map[int]string{
	1: "TITLE", 2: "BODY", 3: "CENTER_TITLE", 4: "SUBTITLE",
	5: "DATE", 6: "SLIDE_NUMBER", 7: "FOOTER", 8: "HEADER",
	9: "OBJECT", 10: "CHART", 11: "TABLE", 12: "CLIP_ART",
	13: "ORG_CHART", 14: "MEDIA", 15: "PICTURE",
	16: "VERTICAL_BODY", 17: "VERTICAL_OBJECT", 18: "VERTICAL_TITLE",
}

// Placeholder is a classified placeholder region: raw geometry plus the
// derived role, size classes, and spatial group assignment.
type Placeholder struct {
	Index    int    `json:"index"`
	TypeID   int    `json:"type_id"`
	TypeName string `json:"type_name"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`

	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`

	AspectRatio float64 `json:"aspect_ratio"`
	IsSmall     bool    `json:"is_small"`
	IsMedium    bool    `json:"is_medium"`
	IsLarge     bool    `json:"is_large"`
	IsWide      bool    `json:"is_wide"`
	IsTall      bool    `json:"is_tall"`

	// PositionGroup is the spatial group this placeholder was assigned to,
	// e.g. "left_column" or "row_2". Subtitles get the group of their
	// nearest content cluster suffixed with "_subtitle".
	PositionGroup string `json:"position_group,omitempty"`
}

// newPlaceholder builds a Placeholder from raw geometry, deriving area,
// aspect ratio, size classes, and role.
func newPlaceholder(spec PlaceholderSpec) Placeholder {
	area := spec.Width * spec.Height
	aspect := 1.0
	if spec.Height > 0 {
		aspect = spec.Width / spec.Height
	}
	p := Placeholder{
		Index:       spec.Index,
		TypeID:      spec.TypeID,
		TypeName:    typeName(spec.TypeID),
		Name:        spec.Name,
		Left:        spec.Left,
		Top:         spec.Top,
		Width:       spec.Width,
		Height:      spec.Height,
		Area:        area,
		AspectRatio: aspect,
		IsSmall:     area < smallAreaMax,
		IsMedium:    area >= smallAreaMax && area < largeAreaMin,
		IsLarge:     area >= largeAreaMin,
		IsWide:      aspect > wideAspectMin,
		IsTall:      aspect < tallAspectMax,
	}
	p.Role = classifyRole(roleProbe{typeID: p.TypeID, width: p.Width, height: p.Height, area: p.Area})
	return p
}

func typeName(id int) string {
	if name, ok := typeNames[id]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", id)
}

// roleProbe carries the inputs of role classification.
type roleProbe struct {
	typeID int
	width  float64
	height float64
	area   float64
}

// generic reports whether the type id is a generic body/object id whose role
// must be read from geometry rather than the id itself.
func (p roleProbe) generic() bool {
	return p.typeID == 2 || p.typeID == 9 || p.typeID == 16 || p.typeID == 17
}

func (p roleProbe) aspect() float64 {
	if p.height > 0 {
		return p.width / p.height
	}
	return 1.0
}

// roleRule is one entry of the ordered role classification table.
type roleRule struct {
	match func(roleProbe) bool
	role  Role
}

// roleRules is evaluated top to bottom; the first matching rule wins and
// anything unmatched is content. Dedicated ids map directly; generic ids
// are disambiguated by geometry, where squat or tiny boxes read as
// subtitles (section headings) rather than body text.
var roleRules = []roleRule{
	{func(p roleProbe) bool { return p.typeID == 4 }, RoleSubtitle},
	{func(p roleProbe) bool { return p.typeID == 1 || p.typeID == 3 }, RoleTitle},
	{func(p roleProbe) bool { return p.typeID >= 5 && p.typeID <= 8 }, RoleFooter},
	{func(p roleProbe) bool { return p.typeID == 10 }, RoleChart},
	{func(p roleProbe) bool { return p.typeID == 11 }, RoleTable},
	{func(p roleProbe) bool { return p.typeID == 15 }, RoleImage},
	{func(p roleProbe) bool { return p.generic() && p.height < 0.5 }, RoleSubtitle},
	{func(p roleProbe) bool { return p.generic() && p.area < 1.0 }, RoleSubtitle},
	{func(p roleProbe) bool { return p.generic() && p.aspect() > 3.0 && p.height < 0.8 }, RoleSubtitle},
}

// classifyRole labels a placeholder by type id and geometry. It is a pure
// function of its inputs.
func classifyRole(p roleProbe) Role {
	for _, rule := range roleRules {
		if rule.match(p) {
			return rule.role
		}
	}
	return RoleContent
}

// holdsContent reports whether a placeholder belongs to the layout's content
// bucket. Dedicated chart, table, and picture regions always hold content;
// generic body and object regions do when their role resolved to content.
// Decorative ids (clip art, media, vertical titles) hold none.
func holdsContent(p Placeholder) bool {
	switch p.TypeID {
	case 10, 11, 15:
		return true
	case 2, 9, 16, 17:
		return p.Role == RoleContent
	}
	return false
}

// holdsText reports whether a placeholder counts as a text column. Only
// body ids carry the column semantics used by layout type inference.
func holdsText(p Placeholder) bool {
	return (p.TypeID == 2 || p.TypeID == 16) && p.Role == RoleContent
}

// isSubtitle reports whether a placeholder belongs to the subtitle bucket:
// the dedicated subtitle id, or a generic region whose geometry reads as a
// section heading.
func isSubtitle(p Placeholder) bool {
	if p.TypeID == 4 {
		return true
	}
	switch p.TypeID {
	case 2, 9, 16, 17:
		return p.Role == RoleSubtitle
	}
	return false
}

// largestOf returns a pointer to the placeholder with the maximum area, or
// nil for an empty slice. Ties keep the earliest placeholder.
func largestOf(phs []Placeholder) *Placeholder {
	if len(phs) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(phs); i++ {
		if phs[i].Area > phs[best].Area {
			best = i
		}
	}
	return &phs[best]
}
