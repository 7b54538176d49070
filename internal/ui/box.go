package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─ Title ────┐. Content lines must already fit the inner width.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.borderDefault(), m.theme.Surface
	if focused {
		borderColorStr, bgColorStr = m.borderSelected(), m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := m.theme.Styles().Title

	innerWidth := max(width-2, 0)

	var top string
	if title == "" || innerWidth < 5 {
		top = bg.Render("┌"+strings.Repeat("─", innerWidth)+"┐", borderStyle)
	} else {
		title = truncate(title, innerWidth-3)
		rest := innerWidth - 3 - runewidth.StringWidth(title)
		top = bg.Render("┌─", borderStyle) +
			bg.Render(" "+title+" ", titleStyle) +
			bg.Render(strings.Repeat("─", max(rest, 0))+"┐", borderStyle)
	}
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, top)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				bg.FillLine(line, innerWidth)+
				bg.Render("│", borderStyle))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}

func (m Model) borderSelected() string {
	if m.cfg.Border.Selected != "" {
		return m.cfg.Border.Selected
	}
	return m.theme.BorderFocus
}

func (m Model) borderDefault() string {
	if m.cfg.Border.Default != "" {
		return m.cfg.Border.Default
	}
	return m.theme.Border
}
