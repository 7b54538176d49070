package forest

import (
	"fmt"
	"slices"
	"sync"
)

// Root is the index of the top-level sibling list.
const Root = 0

// Forest is the parsed hierarchy: an arena of sibling lists addressed by
// index. It is immutable once built and safe to share between goroutines.
type Forest struct {
	lists [][]Entry

	mu    sync.Mutex
	paths map[int][]Entry
}

// Len returns the number of sibling lists.
func (f *Forest) Len() int {
	return len(f.lists)
}

// Entries returns the total number of entries across all lists.
func (f *Forest) Entries() int {
	n := 0
	for _, l := range f.lists {
		n += len(l)
	}
	return n
}

// List returns a copy of the sibling list at index i. Out-of-range indices
// yield nil.
func (f *Forest) List(i int) []Entry {
	if i < 0 || i >= len(f.lists) {
		return nil
	}
	return slices.Clone(f.lists[i])
}

// Names returns the entry names of every list, mostly useful in tests and
// diagnostics.
func (f *Forest) Names() [][]string {
	out := make([][]string, len(f.lists))
	for i, l := range f.lists {
		names := make([]string, len(l))
		for j, e := range l {
			names[j] = e.Name
		}
		out[i] = names
	}
	return out
}

// Paths returns the full-path expansion rooted at list start. The expansion
// is computed on first use and cached for the lifetime of the forest.
func (f *Forest) Paths(start int) []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cached, ok := f.paths[start]; ok {
		return slices.Clone(cached)
	}
	flat := Flatten(f, start)
	if f.paths == nil {
		f.paths = make(map[int][]Entry)
	}
	f.paths[start] = flat
	return slices.Clone(flat)
}

// Validate checks that every child reference points at an existing list.
func (f *Forest) Validate() error {
	if len(f.lists) == 0 {
		return fmt.Errorf("%w: forest has no root list", ErrMalformedInput)
	}
	for i, l := range f.lists {
		for j, e := range l {
			if e.Child < 0 || e.Child >= len(f.lists) {
				return fmt.Errorf("%w: entry %d of list %d references list %d", ErrMalformedInput, j, i, e.Child)
			}
		}
	}
	return nil
}

// Builder assembles a forest list by list. The zero value is not usable; call
// NewBuilder.
type Builder struct {
	lists [][]Entry
}

// NewBuilder returns a builder holding an empty root list.
func NewBuilder() *Builder {
	return &Builder{lists: [][]Entry{{}}}
}

// NewList allocates an empty sibling list and returns its index.
func (b *Builder) NewList() int {
	b.lists = append(b.lists, []Entry{})
	return len(b.lists) - 1
}

// AddLeaf appends a leaf to list.
func (b *Builder) AddLeaf(list int, name string) {
	b.lists[list] = append(b.lists[list], NewLeaf(name))
}

// AddFolder allocates a child list, appends a folder pointing at it to list
// and returns the child's index.
func (b *Builder) AddFolder(list int, name string) int {
	child := b.NewList()
	b.lists[list] = append(b.lists[list], NewFolder(name, child))
	return child
}

// Build freezes the builder into a forest. The builder must not be used
// afterwards.
func (b *Builder) Build() *Forest {
	f := &Forest{lists: b.lists}
	b.lists = nil
	return f
}
