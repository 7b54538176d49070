// Package input reads outlines from the command line, a file or stdin and
// turns them into forests.
//
// Indentation-delimited text goes through forest.Parse. JSON and YAML
// documents are mapped structurally: objects and arrays become folders named
// by their key (or "[i]" for array items) and scalars become leaves rendered
// as "key: value". YAML mappings keep document order; JSON object keys are
// sorted since the decoded map carries no order.
package input
