package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trackloop/trackloop/pkg/report"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseLayouts opens the interactive layout browser. It is a no-op for an
// empty result set.
func browseLayouts(layouts []report.Layout) error {
	if len(layouts) == 0 {
		printWarning("No closed layout can be built from this inventory")
		return nil
	}
	_, err := tea.NewProgram(NewLayoutListModel(layouts)).Run()
	return err
}

// LayoutListModel is the bubbletea model for browsing found layouts.
type LayoutListModel struct {
	Layouts []report.Layout
	Cursor  int
	Height  int
	Offset  int
}

// NewLayoutListModel creates a new layout list model.
func NewLayoutListModel(layouts []report.Layout) LayoutListModel {
	return LayoutListModel{
		Layouts: layouts,
		Height:  15,
	}
}

func (m LayoutListModel) Init() tea.Cmd {
	return nil
}

func (m LayoutListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Layouts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LayoutListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Closed Layouts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Layouts) {
		end = len(m.Layouts)
	}

	for i := m.Offset; i < end; i++ {
		l := m.Layouts[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, strings.Join(l.Pieces, " "))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %s",
		m.Cursor+1, len(m.Layouts), summarizePieces(m.Layouts[m.Cursor].Pieces))))

	return b.String()
}

// summarizePieces collapses a piece sequence into sorted label counts,
// e.g. "10×aR 2×s1".
func summarizePieces(pieces []string) string {
	counts := make(map[string]int)
	for _, p := range pieces {
		counts[p]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%d×%s", counts[label], label)
	}
	return strings.Join(parts, " ")
}
