package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nattu22/pptgenerator/pkg/content"
	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// defaultStaticSlides is the deck length when a request names none.
const defaultStaticSlides = 8

// Static is a deterministic provider for offline runs, demos, and
// tests. It ignores the prompt text and synthesizes a deck from the
// request's topic, cycling through every content shape the planner can
// route. Same request, same output.
type Static struct{}

var _ Provider = Static{}

// GenerateContent returns a synthesized deck as strict JSON.
func (Static) GenerateContent(_ context.Context, req Request) (string, error) {
	topic := req.Topic
	if topic == "" {
		topic = "Untitled Presentation"
	}
	n := req.Slides
	if n <= 0 {
		n = defaultStaticSlides
	}

	deck := content.Deck{Title: topic}
	for i := 0; i < n; i++ {
		deck.Slides = append(deck.Slides, staticSlide(topic, i, n))
	}

	data, err := json.Marshal(deck)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeGenerationFailed, err, "encode static deck")
	}
	return string(data), nil
}

// staticSlide synthesizes slide i of n. The first and last slides frame
// the deck; the body cycles through chart, comparison, KPI, table,
// icon, and narrative shapes.
func staticSlide(topic string, i, n int) content.Payload {
	if i == 0 {
		return content.Payload{
			Heading: topic,
			BulletPoints: textBullets(
				"Why this matters now",
				"What the data shows",
				"What we recommend",
			),
			KeyMessage:  fmt.Sprintf("A clear path forward on %s", topic),
			ImgKeywords: "strategy, overview",
		}
	}
	if i == n-1 {
		return content.Payload{
			Heading: "Next Steps",
			BulletPoints: textBullets(
				"Align owners and timelines",
				"Commit the first milestone",
				"Review progress in 30 days",
			),
			KeyMessage: "Decide today, start this week",
		}
	}

	switch (i - 1) % 6 {
	case 0:
		return content.Payload{
			Heading: "Performance Trend",
			Chart: &content.Chart{
				Type:       "column",
				Categories: []string{"Q1", "Q2", "Q3", "Q4"},
				Series: []content.Series{
					{Name: "Current", Values: []float64{42, 48, 55, 61}},
					{Name: "Prior Year", Values: []float64{38, 40, 44, 47}},
				},
			},
		}
	case 1:
		return content.Payload{
			Heading: "Two Paths",
			BulletPoints: content.BulletList{
				group("Stay the Course", "Lower risk", "Slower payoff"),
				group("Accelerate", "Higher investment", "Faster market position"),
			},
		}
	case 2:
		return content.Payload{
			Heading: "Key Metrics",
			BulletPoints: content.BulletList{
				group("Revenue", "$12.4M, up 18%"),
				group("Margin", "34%, up 2 pts"),
				group("Churn", "3.1%, down 0.4"),
				group("NPS", "52, up 6"),
			},
		}
	case 3:
		return content.Payload{
			Heading: "Initiative Status",
			Table: &content.Table{
				Headers: []string{"Initiative", "Owner", "Status"},
				Rows: [][]content.Cell{
					{"Platform rebuild", "Engineering", "On track"},
					{"Pricing refresh", "Product", "At risk"},
					{"Partner program", "Sales", "Done"},
				},
			},
		}
	case 4:
		return content.Payload{
			Heading: "What Sets Us Apart",
			BulletPoints: textBullets(
				"[[rocket]] Fastest onboarding in segment",
				"[[shield]] SOC 2 compliant from day one",
				"[[gauge]] 99.95% uptime last quarter",
				"[[users]] Dedicated success team",
			),
		}
	default:
		return content.Payload{
			Heading: "How We Get There",
			BulletPoints: content.BulletList{
				group("Stabilize", "Close the reliability gaps"),
				group("Standardize", "One platform, one playbook"),
				group("Scale", "Expand to two new regions"),
			},
		}
	}
}

func textBullets(lines ...string) content.BulletList {
	out := make(content.BulletList, 0, len(lines))
	for _, line := range lines {
		out = append(out, content.BulletItem{Kind: content.BulletText, Text: line})
	}
	return out
}

func group(heading string, points ...string) content.BulletItem {
	return content.BulletItem{
		Kind:       content.BulletGroup,
		Heading:    heading,
		HasHeading: true,
		Points:     textBullets(points...),
	}
}
