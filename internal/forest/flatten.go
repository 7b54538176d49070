package forest

import "slices"

// PathSeparator joins ancestor names in full-path entries.
const PathSeparator = "/"

type pending struct {
	entry  Entry
	prefix string
	marks  []Mark
}

// Flatten expands the list start, and everything below it, into full-path
// leaves in depth-first pre-order. Every joiner inserted between two names is
// recorded as a structural mark.
func Flatten(f *Forest, start int) []Entry {
	if start < 0 || start >= len(f.lists) {
		return nil
	}

	var out []Entry
	stack := pushReversed(nil, f.lists[start], "", nil)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := p.prefix + p.entry.Name
		out = append(out, Entry{
			Name:     name,
			Marks:    p.marks,
			Segments: structuralSegments(name, p.marks),
		})

		if child, ok := p.entry.Folder(); ok {
			marks := append(slices.Clip(p.marks), Mark{Offset: len(name), Style: StyleStructural})
			stack = pushReversed(stack, f.lists[child], name+PathSeparator, marks)
		}
	}
	return out
}

func pushReversed(stack []pending, list []Entry, prefix string, marks []Mark) []pending {
	for i := len(list) - 1; i >= 0; i-- {
		stack = append(stack, pending{entry: list[i], prefix: prefix, marks: marks})
	}
	return stack
}

// structuralSegments splits name into plain runs and one-byte structural
// runs at each mark.
func structuralSegments(name string, marks []Mark) []Segment {
	if len(marks) == 0 {
		return plainSegments(name)
	}
	segs := make([]Segment, 0, 2*len(marks)+1)
	pos := 0
	for _, m := range marks {
		if m.Offset < pos || m.Offset >= len(name) {
			continue
		}
		if m.Offset > pos {
			segs = append(segs, Segment{Text: name[pos:m.Offset], Style: StylePlain})
		}
		segs = append(segs, Segment{Text: name[m.Offset : m.Offset+1], Style: m.Style})
		pos = m.Offset + 1
	}
	if pos < len(name) {
		segs = append(segs, Segment{Text: name[pos:], Style: StylePlain})
	}
	return segs
}
