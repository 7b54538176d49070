package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/navigator/internal/forest"
)

const ellipsis = "…"

// truncate shortens value to limit terminal cells, adding an ellipsis if
// needed.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	return runewidth.Truncate(value, limit, ellipsis)
}

// truncateSegments cuts a styled name to limit cells. The ellipsis is plain.
func truncateSegments(segs []forest.Segment, limit int) []forest.Segment {
	if limit <= 0 {
		return nil
	}
	total := 0
	for _, s := range segs {
		total += runewidth.StringWidth(s.Text)
	}
	if total <= limit {
		return segs
	}

	budget := limit - runewidth.StringWidth(ellipsis)
	out := make([]forest.Segment, 0, len(segs)+1)
	for _, s := range segs {
		w := runewidth.StringWidth(s.Text)
		if w <= budget {
			out = append(out, s)
			budget -= w
			continue
		}
		if budget > 0 {
			out = append(out, forest.Segment{Text: runewidth.Truncate(s.Text, budget, ""), Style: s.Style})
		}
		break
	}
	return append(out, forest.Segment{Text: ellipsis, Style: forest.StylePlain})
}

// padLeft right-aligns s in width cells.
func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// blank returns spaces as wide as s.
func blank(s string) string {
	return strings.Repeat(" ", runewidth.StringWidth(s))
}
