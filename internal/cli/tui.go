package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sketchwire/sketchwire/pkg/sketch"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Themes   []string
	Cursor   int
	Selected string
}

// NewThemeListModel creates a theme list with the cursor on current.
func NewThemeListModel(current string) ThemeListModel {
	names := sketch.ThemeNames()
	cursor := 0
	for i, name := range names {
		if name == current {
			cursor = i
			break
		}
	}
	return ThemeListModel{Themes: names, Cursor: cursor}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Themes[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Themes {
		theme := sketch.LookupTheme(name)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(theme.Accent)).Render("  ")

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		b.WriteString(cursor + swatch + " " + style.Render(name))
		if name == sketch.DefaultTheme {
			b.WriteString(listDimStyle.Render("  default"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickTheme runs the interactive theme picker and returns the chosen theme.
// The second return value is false when the user quit without selecting.
func pickTheme(current string) (string, bool, error) {
	final, err := tea.NewProgram(NewThemeListModel(current)).Run()
	if err != nil {
		return "", false, fmt.Errorf("theme picker: %w", err)
	}
	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		return "", false, nil
	}
	return m.Selected, true, nil
}
