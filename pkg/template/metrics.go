package template

import "math"

// Complexity weights per section, content placeholder, and small box.
const (
	complexityPerSection = 15
	complexityPerContent = 8
	complexityPerSmall   = 5
)

// complexityScore rates how busy a layout is, 0 to 100.
func complexityScore(sections []Section, content []Placeholder) float64 {
	small := 0
	for _, p := range content {
		if p.IsSmall {
			small++
		}
	}
	score := float64(len(sections)*complexityPerSection +
		len(content)*complexityPerContent +
		small*complexityPerSmall)
	return math.Min(math.Max(score, 0), 100)
}

// visualBalance rates how evenly sized the content areas are, 0 to 100.
// A layout with no content scores zero; a single area is perfectly
// balanced.
func visualBalance(content []Placeholder) float64 {
	if len(content) == 0 {
		return 0
	}

	var total float64
	for _, p := range content {
		total += p.Area
	}
	avg := total / float64(len(content))

	var maxDev float64
	for _, p := range content {
		if dev := math.Abs(p.Area - avg); dev > maxDev {
			maxDev = dev
		}
	}

	penalty := 100.0
	if avg > 0 {
		penalty = maxDev / avg * 100
	}
	return 100 - math.Min(penalty, 100)
}

// Difficulty rates how hard a layout is to fill well.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// fillDifficulty grades the layout and pairs it with a verbosity level
// for the content generator.
func fillDifficulty(sections []Section, content []Placeholder) (Difficulty, int) {
	switch {
	case len(sections) <= 2 && len(content) <= 3:
		return DifficultyEasy, 7
	case len(sections) <= 4 && len(content) <= 6:
		return DifficultyMedium, 8
	}
	return DifficultyHard, 9
}

// Story types that read well in front of executives.
var executiveStories = map[StoryType]bool{
	StoryMetricsDashboard:    true,
	StoryDataVisualization:   true,
	StoryBalancedComparison:  true,
	StoryThreeStageNarrative: true,
}

// executiveSuitability rates a layout for executive presentations, 0 to
// 100. Balance dominates; moderate complexity, a clear story, and one to
// three sections each add a bonus.
func executiveSuitability(balance, complexity float64, sections []Section, story StoryType) float64 {
	score := balance / 100 * 40

	switch {
	case complexity >= 30 && complexity <= 60:
		score += 30
	case complexity < 30:
		score += 20
	default:
		score += 10
	}

	switch {
	case executiveStories[story]:
		score += 20
	case story == StoryFocusedMessage || story == StoryMainSupporting:
		score += 15
	default:
		score += 5
	}

	if n := len(sections); n >= 1 && n <= 3 {
		score += 10
	} else {
		score += 3
	}

	return math.Min(score, 100)
}

// Word densities in words per square inch.
const (
	densityExecutive = 15
	densitySparse    = 10
	densityDetailed  = 20
)

// DensityRecommendation tells the content generator how much to write
// for a layout, derived from its actual usable area.
type DensityRecommendation struct {
	TotalWordsTarget   int    `json:"total_words_target"`
	WordsPerSection    int    `json:"words_per_section"`
	DensityStyle       string `json:"density_style"`
	BulletsRecommended int    `json:"bullets_recommended"`
	VerbosityLevel     int    `json:"verbosity_level"`
	AvoidOverflow      bool   `json:"avoid_overflow"`
}

// recommendDensity sizes the text budget for a layout. Number-focused
// stories get a sparser target, analysis-heavy ones a denser one.
func recommendDensity(usableArea float64, sections []Section, story StoryType) DensityRecommendation {
	target := densityExecutive
	switch story {
	case StoryMetricsDashboard, StoryFeatureGrid:
		target = densitySparse
	case StoryDetailedAnalysis:
		target = densityDetailed
	}

	totalWords := int(usableArea * float64(target))
	perSection := totalWords
	if len(sections) > 0 {
		perSection = totalWords / len(sections)
	}

	var bullets int
	switch story {
	case StoryMetricsDashboard:
		bullets = 4 + len(sections)*2
	case StoryBalancedComparison, StoryThreeStageNarrative:
		bullets = 6 + len(sections)*3
	default:
		bullets = 8 + len(sections)*4
	}

	style, verbosity := "executive", 6
	if target > densityExecutive {
		style, verbosity = "detailed", 8
	}

	return DensityRecommendation{
		TotalWordsTarget:   totalWords,
		WordsPerSection:    perSection,
		DensityStyle:       style,
		BulletsRecommended: bullets,
		VerbosityLevel:     verbosity,
		AvoidOverflow:      true,
	}
}
