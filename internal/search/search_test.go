package search

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"pgregory.net/rapid"

	"github.com/five82/navigator/internal/forest"
	"github.com/five82/navigator/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func leaves(names ...string) []forest.Entry {
	out := make([]forest.Entry, len(names))
	for i, n := range names {
		out[i] = forest.NewLeaf(n)
	}
	return out
}

func entryNames(entries []forest.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func synthetic(n int) []forest.Entry {
	out := make([]forest.Entry, n)
	for i := range n {
		out[i] = forest.NewLeaf(fmt.Sprintf("item-%03d/%s", i, strings.Repeat("x", i%5)))
	}
	return out
}

func TestApply_EmptyPatternKeepsScope(t *testing.T) {
	scope := leaves("alpha", "beta")
	scope[0].Segments = []forest.Segment{{Text: "al", Style: forest.StyleMatched}, {Text: "pha", Style: forest.StylePlain}}

	got, err := New(Options{}).Apply(scope, "")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, entryNames(got))
	assert.Equal(t, []forest.Segment{{Text: "alpha", Style: forest.StylePlain}}, got[0].Segments)
	assert.Equal(t, forest.StyleMatched, scope[0].Segments[0].Style, "input must not be modified")
}

func TestApply_EmptyPatternKeepsStructuralJoiners(t *testing.T) {
	scope := []forest.Entry{{Name: "a/b", Marks: []forest.Mark{{Offset: 1, Style: forest.StyleStructural}}}}

	got, err := New(Options{}).Apply(scope, "")
	require.NoError(t, err)
	assert.Equal(t, []forest.Segment{
		{Text: "a", Style: forest.StylePlain},
		{Text: "/", Style: forest.StyleStructural},
		{Text: "b", Style: forest.StylePlain},
	}, got[0].Segments)
}

func TestApply_InvalidRegex(t *testing.T) {
	got, err := New(Options{}).Apply(leaves("a"), "([")
	require.ErrorIs(t, err, ErrInvalidRegex)
	assert.Nil(t, got)
}

func TestApply_FiltersAndHighlights(t *testing.T) {
	got, err := New(Options{}).Apply(leaves("config.toml", "main.go", "go.mod"), `go`)
	require.NoError(t, err)
	require.Equal(t, []string{"main.go", "go.mod"}, entryNames(got))

	assert.Equal(t, []forest.Segment{
		{Text: "main.", Style: forest.StylePlain},
		{Text: "go", Style: forest.StyleMatched},
	}, got[0].Segments)
	assert.Equal(t, []forest.Segment{
		{Text: "go", Style: forest.StyleMatched},
		{Text: ".mod", Style: forest.StylePlain},
	}, got[1].Segments)
}

func TestApply_CaseHandling(t *testing.T) {
	scope := leaves("README", "readme")

	got, err := New(Options{}).Apply(scope, "read")
	require.NoError(t, err)
	assert.Equal(t, []string{"readme"}, entryNames(got))

	got, err = New(Options{IgnoreCase: true}).Apply(scope, "read")
	require.NoError(t, err)
	assert.Equal(t, []string{"README", "readme"}, entryNames(got))
}

func TestApply_Idempotent(t *testing.T) {
	e := New(Options{})
	scope := synthetic(50)

	first, err := e.Apply(scope, `item-0[0-4]`)
	require.NoError(t, err)
	second, err := e.Apply(first, `item-0[0-4]`)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestApply_ZeroWidthMatchKeepsEntryPlain(t *testing.T) {
	got, err := New(Options{}).Apply(leaves("abc"), `^`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []forest.Segment{{Text: "abc", Style: forest.StylePlain}}, got[0].Segments)
}

func TestApply_ParallelMatchesSerial(t *testing.T) {
	serial := New(Options{Mode: ModeSerial})
	parallel := New(Options{Mode: ModeParallel})
	auto := New(Options{})

	for _, n := range []int{0, 1, 7, 20, 21, 45, 400, 1003} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			scope := synthetic(n)
			for _, pattern := range []string{`x+`, `item-\d*[13579]/`, `nomatch`, `/`} {
				want, err := serial.Apply(scope, pattern)
				require.NoError(t, err)
				got, err := parallel.Apply(scope, pattern)
				require.NoError(t, err)
				assert.Equal(t, want, got, "pattern %q", pattern)
				got, err = auto.Apply(scope, pattern)
				require.NoError(t, err)
				assert.Equal(t, want, got, "pattern %q", pattern)
			}
		})
	}
}

func TestApply_ParallelPreservesOrder(t *testing.T) {
	scope := synthetic(500)
	got, err := New(Options{Mode: ModeParallel}).Apply(scope, `item`)
	require.NoError(t, err)
	require.Len(t, got, len(scope))
	for i := range got {
		require.Equal(t, scope[i].Name, got[i].Name)
	}
}

func TestApply_LogsFanOut(t *testing.T) {
	var buf bytes.Buffer
	e := New(Options{Logger: logging.New(log.New(&buf, "", 0))})

	_, err := e.Apply(synthetic(10), "item")
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "small scopes stay serial")

	_, err = e.Apply(synthetic(100), "item")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "100 entries across 5 workers")
}

func TestChunkCount(t *testing.T) {
	auto := New(Options{})
	cases := map[int]int{0: 1, 20: 1, 21: 2, 40: 2, 41: 3, 400: 20, 100000: 20}
	for n, want := range cases {
		got := auto.chunkCount(n)
		if want == 1 {
			assert.LessOrEqual(t, got, 1, "n=%d", n)
			continue
		}
		assert.Equal(t, want, got, "n=%d", n)
	}
	assert.Equal(t, 1, New(Options{Mode: ModeSerial}).chunkCount(1000))
	assert.Equal(t, 5, New(Options{Mode: ModeParallel}).chunkCount(5))
}

func TestChunkBounds(t *testing.T) {
	assert.Nil(t, chunkBounds(0, 4))
	assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, chunkBounds(10, 4))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, chunkBounds(2, 20))

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5000).Draw(t, "n")
		k := rapid.IntRange(1, 20).Draw(t, "k")
		bounds := chunkBounds(n, k)
		require.Len(t, bounds, min(n, k))
		next, smallest, largest := 0, n, 0
		for _, b := range bounds {
			require.Equal(t, next, b[0], "bounds are contiguous")
			size := b[1] - b[0]
			smallest, largest = min(smallest, size), max(largest, size)
			next = b[1]
		}
		require.Equal(t, n, next)
		require.LessOrEqual(t, largest-smallest, 1, "chunk sizes are balanced")
	})
}
