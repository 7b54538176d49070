package forest

// Style tags a run of display text.
type Style int

const (
	StylePlain Style = iota
	StyleMatched
	StyleStructural
)

// String returns a short label for the style.
func (s Style) String() string {
	switch s {
	case StyleMatched:
		return "matched"
	case StyleStructural:
		return "structural"
	default:
		return "plain"
	}
}

// Segment is a styled run of an entry's name.
type Segment struct {
	Text  string
	Style Style
}

// Mark records a one-byte structural separator injected into a name.
type Mark struct {
	Offset int
	Style  Style
}

// Entry is a single node of the forest: a leaf or a folder.
//
// Child holds the index of the folder's sibling list. The root list (index 0)
// is never anyone's child, so zero means the entry is a leaf.
type Entry struct {
	Name     string
	Child    int
	Segments []Segment
	Marks    []Mark
}

// NewLeaf returns a leaf entry with plain display segments.
func NewLeaf(name string) Entry {
	return Entry{Name: name, Segments: plainSegments(name)}
}

// NewFolder returns a folder entry pointing at the sibling list child.
func NewFolder(name string, child int) Entry {
	return Entry{Name: name, Child: child, Segments: plainSegments(name)}
}

// IsFolder reports whether the entry has a child list, even an empty one.
func (e Entry) IsFolder() bool {
	return e.Child > 0
}

// Folder returns the child list index and whether the entry is a folder.
func (e Entry) Folder() (int, bool) {
	return e.Child, e.Child > 0
}

func plainSegments(name string) []Segment {
	if name == "" {
		return nil
	}
	return []Segment{{Text: name, Style: StylePlain}}
}
