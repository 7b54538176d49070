package input

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/five82/navigator/internal/forest"
)

// DecodeJSON maps a JSON document onto a forest. Objects and arrays become
// folders, scalars become leaves. Object keys are listed in sorted order.
func DecodeJSON(data []byte) (*forest.Forest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", forest.ErrMalformedInput, err)
	}

	b := forest.NewBuilder()
	switch v := doc.(type) {
	case map[string]any, []any:
		addJSONChildren(b, forest.Root, v)
	default:
		b.AddLeaf(forest.Root, jsonScalar(v))
	}
	return finish(b)
}

func addJSONChildren(b *forest.Builder, list int, v any) {
	switch v := v.(type) {
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(v)) {
			addJSON(b, list, k, v[k])
		}
	case []any:
		for i, item := range v {
			addJSON(b, list, indexName(i), item)
		}
	}
}

func addJSON(b *forest.Builder, list int, key string, v any) {
	switch v.(type) {
	case map[string]any, []any:
		addJSONChildren(b, b.AddFolder(list, key), v)
	default:
		b.AddLeaf(list, key+": "+jsonScalar(v))
	}
}

func jsonScalar(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// DecodeYAML maps the first YAML document onto a forest, keeping mapping
// keys in document order. Aliases are followed.
func DecodeYAML(data []byte) (*forest.Forest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", forest.ErrMalformedInput, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	b := forest.NewBuilder()
	switch root = resolve(root); root.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		addYAMLChildren(b, forest.Root, root)
	case yaml.ScalarNode:
		b.AddLeaf(forest.Root, root.Value)
	}
	return finish(b)
}

func addYAMLChildren(b *forest.Builder, list int, n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			addYAML(b, list, n.Content[i].Value, resolve(n.Content[i+1]))
		}
	case yaml.SequenceNode:
		for i, item := range n.Content {
			addYAML(b, list, indexName(i), resolve(item))
		}
	}
}

func addYAML(b *forest.Builder, list int, key string, n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		addYAMLChildren(b, b.AddFolder(list, key), n)
	default:
		value := n.Value
		if n.ShortTag() == "!!null" {
			value = "null"
		}
		b.AddLeaf(list, key+": "+value)
	}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func indexName(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func finish(b *forest.Builder) (*forest.Forest, error) {
	f := b.Build()
	if len(f.List(forest.Root)) == 0 {
		return nil, fmt.Errorf("%w: document has no entries", forest.ErrMalformedInput)
	}
	return f, nil
}
