package search

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/five82/navigator/internal/forest"
)

func TestSegments_StructuralWinsOverMatch(t *testing.T) {
	name := "usr/local/bin"
	marks := []forest.Mark{{Offset: 3, Style: forest.StyleStructural}, {Offset: 9, Style: forest.StyleStructural}}
	matches := regexp.MustCompile(`r/lo`).FindAllStringIndex(name, -1)

	got := Segments(name, marks, matches)
	assert.Equal(t, []forest.Segment{
		{Text: "us", Style: forest.StylePlain},
		{Text: "r", Style: forest.StyleMatched},
		{Text: "/", Style: forest.StyleStructural},
		{Text: "lo", Style: forest.StyleMatched},
		{Text: "cal", Style: forest.StylePlain},
		{Text: "/", Style: forest.StyleStructural},
		{Text: "bin", Style: forest.StylePlain},
	}, got)
}

func TestSegments_AdjacentMatchesMerge(t *testing.T) {
	got := Segments("aaab", nil, [][]int{{0, 1}, {1, 2}, {2, 3}})
	assert.Equal(t, []forest.Segment{
		{Text: "aaa", Style: forest.StyleMatched},
		{Text: "b", Style: forest.StylePlain},
	}, got)
}

func TestSegments_IgnoresBadRanges(t *testing.T) {
	got := Segments("abc", []forest.Mark{{Offset: 10, Style: forest.StyleStructural}}, [][]int{{-2, 1}, {2, 99}, {1}})
	assert.Equal(t, []forest.Segment{
		{Text: "a", Style: forest.StyleMatched},
		{Text: "b", Style: forest.StylePlain},
		{Text: "c", Style: forest.StyleMatched},
	}, got)
}

func TestSegments_Empty(t *testing.T) {
	assert.Nil(t, Segments("", nil, [][]int{{0, 0}}))
}

func TestSegments_Coverage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.StringMatching(`[a-c]{1,5}`), 1, 6).Draw(t, "parts")
		name := strings.Join(parts, "/")

		var marks []forest.Mark
		for i := range len(name) {
			if name[i] == '/' {
				marks = append(marks, forest.Mark{Offset: i, Style: forest.StyleStructural})
			}
		}
		pattern := rapid.SampledFrom([]string{`a`, `b+`, `c/a`, `.`, `a*`, `/`, `[ab]{2}`}).Draw(t, "pattern")
		matches := regexp.MustCompile(pattern).FindAllStringIndex(name, -1)

		segs := Segments(name, marks, matches)

		var b strings.Builder
		offset := 0
		for i, s := range segs {
			require.NotEmpty(t, s.Text, "segment %d", i)
			if i > 0 {
				require.NotEqual(t, segs[i-1].Style, s.Style, "adjacent segments %d and %d are merged", i-1, i)
			}
			for j := range len(s.Text) {
				if name[offset+j] == '/' {
					require.Equal(t, forest.StyleStructural, s.Style, "separator at %d", offset+j)
				}
			}
			offset += len(s.Text)
			b.WriteString(s.Text)
		}
		require.Equal(t, name, b.String())
	})
}
