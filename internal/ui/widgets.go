package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/navigator/internal/forest"
	"github.com/five82/navigator/internal/nav"
)

// Widget is one of the boxes on screen.
type Widget int

const (
	WidgetSearch Widget = iota
	WidgetList
	WidgetInfo
)

const (
	lameFolderPrefix = "    "
	nothingFound     = "Nothing found!"
	nothingFoundIcon = "❎"
)

// title returns the text embedded in the widget's top border.
func (w Widget) title(m Model) string {
	switch w {
	case WidgetSearch:
		if m.cfg.Lame {
			return "Search"
		}
		return m.cfg.Prefixes.Search + " Search"
	case WidgetList:
		crumb := m.ctrl.Breadcrumb()
		if m.cfg.Lame {
			return crumb
		}
		return m.cfg.Prefixes.List + " " + crumb
	default:
		return ""
	}
}

// content renders the widget body into width by height cells.
func (w Widget) content(m Model, width, height int) string {
	switch w {
	case WidgetSearch:
		return m.searchContent(width)
	case WidgetList:
		return m.listContent(width, height)
	default:
		return padLeft(strconv.Itoa(len(m.ctrl.Displayed()))+" ", width)
	}
}

func (w Widget) focused(m Model) bool {
	switch w {
	case WidgetSearch:
		return m.focus.Current() == nav.FocusSearch
	case WidgetList:
		return m.focus.Current() == nav.FocusList
	default:
		return false
	}
}

func (m Model) renderWidget(w Widget, width, height int) string {
	return m.renderTitledBox(w.title(m), w.content(m, width-2, height-2), width, height, w.focused(m))
}

func (m Model) searchContent(width int) string {
	styles := m.theme.Styles()
	in := m.search
	in.Width = max(width-1, 1)
	if m.invalid {
		in.TextStyle = styles.DangerText
	} else {
		in.TextStyle = styles.Text
	}
	return in.View()
}

func (m Model) listContent(width, height int) string {
	styles := m.theme.Styles()
	entries := m.ctrl.Displayed()
	if len(entries) == 0 {
		icon := nothingFoundIcon + "  "
		if m.cfg.Lame {
			icon = lameFolderPrefix
		}
		return styles.MutedText.Render(truncate(icon+nothingFound, width))
	}

	selected := m.ctrl.SelectedIndex()
	start, end := visibleWindow(len(entries), selected, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(entries[i], i == selected, width))
	}
	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) range of rows that keeps selected
// on screen.
func visibleWindow(n, selected, rows int) (int, int) {
	if rows <= 0 || n == 0 {
		return 0, 0
	}
	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	return start, min(n, start+rows)
}

func (m Model) renderRow(e forest.Entry, selected bool, width int) string {
	styles := m.theme.Styles()

	lead := blank(m.cfg.Selector)
	if selected {
		lead = m.cfg.Selector
	}
	prefix := lameFolderPrefix
	if !m.cfg.Lame && e.IsFolder() {
		prefix = m.cfg.Prefixes.Folder + " "
	}
	head := truncate(lead+prefix, width)

	segs := e.Segments
	if len(segs) == 0 {
		segs = []forest.Segment{{Text: e.Name, Style: forest.StylePlain}}
	}
	segs = truncateSegments(segs, width-runewidth.StringWidth(head))

	var b strings.Builder
	if selected {
		b.WriteString(styles.Selected.Render(head))
	} else {
		b.WriteString(styles.Text.Render(head))
	}
	for _, s := range segs {
		st := styles.Segment(s.Style)
		if selected {
			st = st.Bold(true)
		}
		b.WriteString(st.Render(s.Text))
	}
	return b.String()
}
