package search

import "github.com/five82/navigator/internal/forest"

// Segments partitions name into contiguous styled runs. Every byte belongs
// to exactly one run. Structural marks win over matches, matches win over
// plain text. matches holds [start, end) byte ranges as returned by
// regexp.FindAllStringIndex; out-of-range or empty ranges are ignored.
func Segments(name string, marks []forest.Mark, matches [][]int) []forest.Segment {
	if name == "" {
		return nil
	}

	styles := make([]forest.Style, len(name))
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		start, end := max(m[0], 0), min(m[1], len(name))
		for i := start; i < end; i++ {
			styles[i] = forest.StyleMatched
		}
	}
	for _, mk := range marks {
		if mk.Offset >= 0 && mk.Offset < len(name) {
			styles[mk.Offset] = mk.Style
		}
	}

	var segs []forest.Segment
	start := 0
	for i := 1; i <= len(name); i++ {
		if i < len(name) && styles[i] == styles[start] {
			continue
		}
		segs = append(segs, forest.Segment{Text: name[start:i], Style: styles[start]})
		start = i
	}
	return segs
}
