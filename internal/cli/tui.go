package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// TemplateListModel - Interactive template selection
// =============================================================================

// TemplateChoice describes one discovered template descriptor.
type TemplateChoice struct {
	Path     string
	Name     string
	Layouts  int
	Usable   int
	Modified time.Time
}

// TemplateListModel is the bubbletea model for interactive template selection.
type TemplateListModel struct {
	Choices  []TemplateChoice
	Cursor   int
	Selected *TemplateChoice
	Height   int
	Offset   int
}

// NewTemplateListModel creates a new template list model.
func NewTemplateListModel(choices []TemplateChoice) TemplateListModel {
	return TemplateListModel{
		Choices: choices,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m TemplateListModel) Init() tea.Cmd {
	return nil
}

func (m TemplateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			choice := m.Choices[m.Cursor]
			if choice.Usable == 0 {
				return m, nil
			}
			m.Selected = &choice
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TemplateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Choices) {
		end = len(m.Choices)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Choices[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		usable := fmt.Sprintf("%d", c.Usable)
		if c.Usable == 0 {
			usable = "—"
		}

		modified := formatRelativeTime(c.Modified)
		rows = append(rows, []string{cursor, c.Name, fmt.Sprintf("%d", c.Layouts), usable, modified, c.Path})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Template", "Layouts", "Usable", "Modified", "File").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Choices) {
				return lipgloss.NewStyle()
			}
			c := m.Choices[actualIdx]
			selectable := c.Usable > 0
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 4 || col == 5 {
				if isCurrent {
					base = base.Foreground(colorGray)
				} else {
					base = base.Foreground(colorDim)
				}
			}

			if isCurrent {
				if selectable {
					if col != 4 && col != 5 {
						return base.Foreground(colorGreen).Bold(true)
					}
					return base.Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			} else if selectable {
				if col != 4 && col != 5 {
					return base.Foreground(colorWhite)
				}
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Choices))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
