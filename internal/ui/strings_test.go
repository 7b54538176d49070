package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"github.com/five82/navigator/internal/forest"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"📁 folder", 4, "📁 …"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.limit)
		assert.Equal(t, tt.want, got, "truncate(%q, %d)", tt.in, tt.limit)
		assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.limit, 0), "truncate(%q, %d) width", tt.in, tt.limit)
	}
}

func TestTruncateSegments(t *testing.T) {
	segs := []forest.Segment{
		{Text: "usr", Style: forest.StylePlain},
		{Text: "/", Style: forest.StyleStructural},
		{Text: "local", Style: forest.StyleMatched},
	}

	assert.Equal(t, segs, truncateSegments(segs, 20))

	assert.Equal(t, []forest.Segment{
		{Text: "usr", Style: forest.StylePlain},
		{Text: "/", Style: forest.StyleStructural},
		{Text: "l", Style: forest.StyleMatched},
		{Text: "…", Style: forest.StylePlain},
	}, truncateSegments(segs, 6))

	assert.Equal(t, []forest.Segment{
		{Text: "usr", Style: forest.StylePlain},
		{Text: "…", Style: forest.StylePlain},
	}, truncateSegments(segs, 4))

	assert.Nil(t, truncateSegments(segs, 0))
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		n, selected, rows int
		start, end        int
	}{
		{0, 0, 5, 0, 0},
		{3, 0, 5, 0, 3},
		{10, 4, 5, 0, 5},
		{10, 5, 5, 1, 6},
		{10, 9, 5, 5, 10},
		{10, 3, 0, 0, 0},
	}
	for _, tt := range tests {
		start, end := visibleWindow(tt.n, tt.selected, tt.rows)
		assert.Equal(t, [2]int{tt.start, tt.end}, [2]int{start, end},
			"visibleWindow(%d, %d, %d)", tt.n, tt.selected, tt.rows)
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "   7 ", padLeft("7 ", 5))
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "  ", blank("> "))
}
