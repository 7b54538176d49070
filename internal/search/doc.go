// Package search filters a scope of entries with a regular expression and
// restyles what survives.
//
// # Filtering
//
// Engine.Apply drops every entry whose name has no match. Surviving entries
// get their display segments rebuilt from scratch, so applying the same
// pattern twice yields the same result. An empty pattern keeps the scope
// intact, and an invalid pattern returns ErrInvalidRegex so the caller can
// keep showing its previous results.
//
// # Highlighting
//
// Segments partitions a name into plain, matched and structural runs. Each
// byte is covered exactly once; structural marks (the "/" joiners of
// full-path entries) keep their style even when a match spans them.
//
// # Fan-out
//
// Scopes larger than the threshold (20 entries) are split into at most 20
// contiguous chunks filtered by an errgroup. Each worker owns a copy of its
// chunk and writes only its own slot of the result slice, so the output is
// concatenated in chunk order regardless of which worker finishes first.
// All workers are joined before Apply returns.
package search
