package template

import (
	"github.com/charmbracelet/log"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Analyzer turns template descriptors into layout capabilities.
//
// The Analyzer is stateless except for the logger. Multiple goroutines
// can safely share one instance.
type Analyzer struct {
	Logger *log.Logger
}

// NewAnalyzer creates an analyzer. If logger is nil, the package default
// logger is used.
func NewAnalyzer(logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.Default()
	}
	return &Analyzer{Logger: logger}
}

// Analyze classifies every layout of a template. Layouts whose geometry
// cannot be analyzed degrade to fallback capabilities with a warning; a
// template where no layout can carry content at all is an error.
func (a *Analyzer) Analyze(spec *Spec) (*Analysis, error) {
	if spec == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "nil template descriptor")
	}

	analysis := &Analysis{
		TemplateName: spec.Name,
		TotalLayouts: len(spec.Layouts),
		Layouts:      make([]LayoutCapability, 0, len(spec.Layouts)),
	}

	usable := 0
	for idx, layout := range spec.Layouts {
		capability, err := a.analyzeLayout(idx, layout)
		if err != nil {
			ferr := &apperrors.LayoutFallbackError{
				LayoutIndex: idx,
				LayoutName:  layout.Name,
				Cause:       err,
			}
			a.Logger.Warn("layout degraded", "err", ferr)
			capability = fallbackCapability(idx, layout.Name)
		}
		if capability.Usable() {
			usable++
		}
		analysis.Layouts = append(analysis.Layouts, capability)
	}

	if usable == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNoUsableLayout,
			"template %q has no layouts that can carry content", spec.Name)
	}

	a.Logger.Info("analyzed template",
		"name", spec.Name, "layouts", len(analysis.Layouts), "usable", usable)
	return analysis, nil
}

// analyzeLayout runs the full classification chain for one layout:
// placeholder extraction, spatial grouping, semantic sections, KPI grid,
// story inference, capacity, and scoring.
func (a *Analyzer) analyzeLayout(idx int, layout LayoutSpec) (LayoutCapability, error) {
	all := make([]Placeholder, 0, len(layout.Placeholders))
	for _, ps := range layout.Placeholders {
		if !validGeometry(ps) {
			return LayoutCapability{}, apperrors.New(apperrors.ErrCodeInvalidTemplate,
				"placeholder %d of layout %q has invalid geometry", ps.Index, layout.Name)
		}
		all = append(all, newPlaceholder(ps))
	}

	var hasTitle, hasSubtitle, hasChart, hasTable, hasPicture bool
	var subtitleIdx, contentIdx, textIdx []int
	for i := range all {
		switch all[i].TypeID {
		case 1, 3:
			hasTitle = true
		case 4:
			hasSubtitle = true
		case 10:
			hasChart = true
		case 11:
			hasTable = true
		case 15:
			hasPicture = true
		}
		switch {
		case isSubtitle(all[i]):
			subtitleIdx = append(subtitleIdx, i)
		case holdsContent(all[i]):
			contentIdx = append(contentIdx, i)
			if holdsText(all[i]) {
				textIdx = append(textIdx, i)
			}
		}
	}

	subtitles := copyAt(all, subtitleIdx)
	content := copyAt(all, contentIdx)

	groups := groupSpatial(content)
	matchSubtitleGroups(subtitles, groups)
	for i, ai := range contentIdx {
		all[ai].PositionGroup = content[i].PositionGroup
	}
	for i, ai := range subtitleIdx {
		all[ai].PositionGroup = subtitles[i].PositionGroup
	}
	text := copyAt(all, textIdx)

	grid := detectKPIGrid(content)
	sections := detectSections(subtitles, content)
	if sections == nil {
		sections = []Section{}
	}
	story := inferStoryType(sections, content, grid)

	var usableArea float64
	for _, p := range content {
		usableArea += p.Area
	}

	complexity := complexityScore(sections, content)
	balance := visualBalance(content)
	difficulty, verbosity := fillDifficulty(sections, content)

	return LayoutCapability{
		Index:       idx,
		Name:        layout.Name,
		HasTitle:    hasTitle,
		HasSubtitle: hasSubtitle,
		HasChart:    hasChart,
		HasTable:    hasTable,
		HasPicture:  hasPicture,

		Subtitles: subtitles,
		Content:   content,
		Text:      text,
		All:       all,

		SpatialGroups: groups,
		Sections:      sections,
		KPIGrid:       grid,

		LayoutType: classifyLayoutType(hasChart, hasTable, hasPicture, len(text), len(sections), grid),
		Category:   classifyCategory(hasTitle, grid, content, layout.Name),
		StoryType:  story,
		Story:      layoutStory(groups, hasChart, hasTable, grid, sections),
		BestFor:    bestUses(hasChart, hasTable, content, groups, sections, grid),

		UsableArea: usableArea,
		Capacity:   computeCapacity(content, sections, grid),

		ComplexityScore:      complexity,
		VisualBalance:        balance,
		FillDifficulty:       difficulty,
		RecommendedVerbosity: verbosity,
		ExecutiveSuitability: executiveSuitability(balance, complexity, sections, story),
		Density:              recommendDensity(usableArea, sections, story),
	}, nil
}

// copyAt builds a fresh slice holding copies of the elements at the given
// indices. Buckets never alias each other, so a capability can be shared
// between goroutines once built.
func copyAt(phs []Placeholder, idxs []int) []Placeholder {
	out := make([]Placeholder, len(idxs))
	for i, idx := range idxs {
		out[i] = phs[idx]
	}
	return out
}

// fallbackCapability is the minimal stand-in for a layout that could not
// be analyzed. It carries no content placeholders and accepts bullets
// only.
func fallbackCapability(idx int, name string) LayoutCapability {
	return LayoutCapability{
		Index:     idx,
		Name:      name,
		Subtitles: []Placeholder{},
		Content:   []Placeholder{},
		Text:      []Placeholder{},
		All:       []Placeholder{},

		SpatialGroups: map[string][]Placeholder{},
		Sections:      []Section{},

		LayoutType: LayoutFallback,
		Category:   CategoryBlank,
		StoryType:  StoryGeneralContent,
		Story:      "Fallback layout",
		BestFor:    []string{"bullets"},

		Capacity: computeCapacity(nil, nil, nil),

		FillDifficulty:       DifficultyHard,
		RecommendedVerbosity: 9,
		Density:              recommendDensity(0, nil, StoryGeneralContent),
	}
}
