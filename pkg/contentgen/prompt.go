package contentgen

import (
	"fmt"
	"strings"

	"github.com/nattu22/pptgenerator/pkg/template"
)

// systemInstruction is sent with every model call. The output contract
// matches what content.ParseDeck expects.
const systemInstruction = `You are an executive presentation writer. You produce the complete ` +
	`content of a slide deck as a single JSON object and nothing else: no ` +
	`markdown fences, no commentary, no trailing text. Every slide tells one ` +
	`clear story. Headings are short and declarative. You never invent ` +
	`numbers when the topic material provides them.`

// deckSchema describes the slide JSON the decoder accepts, one line per
// slide shape.
const deckSchema = `{
  "title": "Deck title",
  "slides": [
    {"heading": "...", "bullet_points": ["point", ...], "key_message": "...", "img_keywords": "..."},
    {"heading": "...", "bullet_points": [{"heading": "Group", "bullet_points": ["point", ...]}, ...]},
    {"heading": "...", "chart": {"type": "bar|column|line|pie", "categories": [...], "series": [{"name": "...", "values": [...]}]}},
    {"heading": "...", "table": {"headers": [...], "rows": [[...], ...]}},
    {"heading": "...", "bullet_points": ["[[icon_name]] caption", ...]}
  ]
}`

// PromptSpec describes one deck-generation request: the topic, how many
// slides, the planned story beat per slide, and the density budget the
// chosen template recommends.
type PromptSpec struct {
	Topic          string
	SlideCount     int
	Stories        []template.StoryType
	Density        template.DensityRecommendation
	AdditionalInfo string
}

// storyHint maps a planned story beat to the content shape the model
// should emit for that slide.
func storyHint(story template.StoryType) string {
	switch story {
	case template.StoryFocusedMessage:
		return "3-4 concise bullet points driving one message, plus a key_message line"
	case template.StoryDataVisualization:
		return "a chart with real categories and 1-3 series"
	case template.StoryBalancedComparison:
		return "exactly two {heading, bullet_points} groups contrasting two options"
	case template.StoryThreeStageNarrative:
		return "exactly three {heading, bullet_points} groups in sequence"
	case template.StoryMetricsDashboard:
		return "4-6 {heading, bullet_points} groups; each heading a metric name under 20 characters, each group one value line"
	case template.StoryDetailedAnalysis:
		return "a table, or dense supporting bullet points"
	case template.StoryHierarchicalStory:
		return "one main point with supporting bullet points beneath it"
	case template.StoryFeatureGrid:
		return "4-6 bullet points each starting with an [[icon_name]] marker"
	case template.StoryMainSupporting:
		return "a lead statement followed by supporting bullet points"
	default:
		return "clear bullet points"
	}
}

// BuildInitialPrompt renders the first-pass generation prompt: story
// structure, density rules from the template analysis, the output
// schema, and the topic.
func BuildInitialPrompt(spec PromptSpec) string {
	n := spec.SlideCount
	if n <= 0 {
		n = len(spec.Stories)
	}
	if n <= 0 {
		n = 10
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create the content for a %d-slide executive presentation.\n", n)

	if len(spec.Stories) > 0 {
		b.WriteString("\n### Story structure\n")
		b.WriteString("Follow this slide-by-slide structure exactly:\n")
		for i := 0; i < n; i++ {
			story := spec.Stories[min(i, len(spec.Stories)-1)]
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, story, storyHint(story))
		}
	}

	b.WriteString("\n### Content rules\n")
	bullets := spec.Density.BulletsRecommended
	if bullets <= 0 {
		bullets = 6
	}
	fmt.Fprintf(&b, "- At most %d bullet points per slide.\n", bullets)
	if spec.Density.TotalWordsTarget > 0 {
		fmt.Fprintf(&b, "- About %d words per slide in total.\n", spec.Density.TotalWordsTarget)
	}
	if spec.Density.VerbosityLevel > 0 {
		fmt.Fprintf(&b, "- Verbosity level %d of 9: concise yet complete.\n", spec.Density.VerbosityLevel)
	}
	if spec.Density.DensityStyle != "" {
		fmt.Fprintf(&b, "- Writing style: %s.\n", spec.Density.DensityStyle)
	}
	b.WriteString("- Group and section headings: 2-5 words.\n")
	b.WriteString("- No two consecutive slides with the same content shape.\n")
	if spec.Density.AvoidOverflow {
		b.WriteString("- Never overflow a slide; trim rather than cram.\n")
	}

	b.WriteString("\n### Output format\nReturn ONLY a JSON object shaped like:\n")
	b.WriteString(deckSchema)
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n### Topic\n%s\n", spec.Topic)
	if spec.AdditionalInfo != "" {
		fmt.Fprintf(&b, "\n### Source material\n%s\n", spec.AdditionalInfo)
	}
	return b.String()
}

// BuildRevisionPrompt renders a refinement prompt: the numbered
// instruction history, the previous deck JSON to revise, and the output
// schema again so the shape survives the rewrite.
func BuildRevisionPrompt(previous string, instructions []string, additionalInfo string) string {
	var b strings.Builder
	b.WriteString("Revise the slide deck JSON below following the numbered instructions.\n")
	b.WriteString("Apply every instruction; keep everything else unchanged.\n")

	b.WriteString("\n### Instructions\n")
	for i, inst := range instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, inst)
	}

	b.WriteString("\n### Current deck\n")
	b.WriteString(previous)
	b.WriteString("\n")

	if additionalInfo != "" {
		fmt.Fprintf(&b, "\n### Source material\n%s\n", additionalInfo)
	}

	b.WriteString("\n### Output format\nReturn ONLY the full revised JSON object shaped like:\n")
	b.WriteString(deckSchema)
	b.WriteString("\n")
	return b.String()
}
