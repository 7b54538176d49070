package forest

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSeparator is the indentation token used when none is given.
const DefaultSeparator = "\t"

// ErrMalformedInput reports input that cannot be turned into a forest.
var ErrMalformedInput = errors.New("malformed input")

type line struct {
	depth int
	name  string
}

// frame is an open ancestor: the list the folder was appended to and the
// folder's own depth.
type frame struct {
	list  int
	depth int
}

// Parse turns indentation-delimited text into a forest. Each leading
// occurrence of sep adds one level of depth; whether a line is a folder is
// decided by the depth of the line that follows it.
func Parse(text, sep string) (*Forest, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	if !strings.Contains(text, "\n") {
		return nil, fmt.Errorf("%w: input has no line breaks", ErrMalformedInput)
	}

	lines := splitLines(text, sep)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: input has no entries", ErrMalformedInput)
	}

	b := NewBuilder()
	current := Root
	var ancestors []frame

	for i, ln := range lines {
		if i == len(lines)-1 {
			b.AddLeaf(current, ln.name)
			break
		}
		next := lines[i+1]

		switch {
		case next.depth > ln.depth:
			child := b.AddFolder(current, ln.name)
			ancestors = append(ancestors, frame{list: current, depth: ln.depth})
			current = child
		case next.depth < ln.depth:
			b.AddLeaf(current, ln.name)
			// Well-formed input pops exactly depth(ln)-depth(next) frames.
			for len(ancestors) > 0 && ancestors[len(ancestors)-1].depth >= next.depth {
				current = ancestors[len(ancestors)-1].list
				ancestors = ancestors[:len(ancestors)-1]
			}
		default:
			b.AddLeaf(current, ln.name)
		}
	}

	return b.Build(), nil
}

// splitLines measures and strips the indentation of every line, dropping
// blank ones.
func splitLines(text, sep string) []line {
	raw := strings.Split(text, "\n")
	out := make([]line, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSuffix(r, "\r")
		depth, name := measure(r, sep)
		if name == "" {
			continue
		}
		out = append(out, line{depth: depth, name: name})
	}
	return out
}

func measure(s, sep string) (int, string) {
	depth := 0
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
		depth++
	}
	return depth, s
}
