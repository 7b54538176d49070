// Package forest parses indentation-delimited text into an index-addressed
// hierarchy.
//
// # Overview
//
// A Forest is an arena of sibling lists. List 0 is the root scope; a folder
// entry refers to its children by the index of another list instead of
// owning them, so the whole structure is a flat slice of slices that can be
// shared read-only between goroutines.
//
//	input (sep = "\t")      lists
//	------------------      -----------------------------
//	a                       0: [a, b(->1), e]
//	b                       1: [c, d]
//	\tc
//	\td
//	e
//
// # Parsing
//
// Parse makes a single forward pass with one line of lookahead. A line only
// becomes a folder when the next line is indented deeper, so the decision
// for the current line is made while reading the next one. Closing several
// folders at once (depth dropping by more than one level) pops one ancestor
// frame per level.
//
// Blank lines and a trailing carriage return are ignored. Input without a
// single line break is rejected with ErrMalformedInput, and parsing is all
// or nothing: no partially built forest is ever returned.
//
// # Full paths
//
// Flatten expands a list into leaves whose names are the "/"-joined path from
// that list down to each node, in pre-order. The joiners are recorded as
// structural marks so that highlighting can keep them distinct from regex
// matches. Forest.Paths caches the expansion per starting list.
//
// # Building by hand
//
// Builder is used by Parse and by the structured-input decoders:
//
//	b := forest.NewBuilder()
//	dir := b.AddFolder(forest.Root, "etc")
//	b.AddLeaf(dir, "hosts")
//	f := b.Build()
package forest
