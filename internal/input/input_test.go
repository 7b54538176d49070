package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/navigator/internal/forest"
)

func TestRead_Sources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outline.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n\tb\r\nc"), 0o644))

	got, err := Read(Source{Path: path, Stdin: true, Text: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "a\r\n\tb\r\nc", string(got))

	got, err = Read(Source{Stdin: true, Reader: strings.NewReader("x\ny"), Text: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "x\ny", string(got))

	got, err = Read(Source{Text: "a\n\tb"})
	require.NoError(t, err)
	assert.Equal(t, "a\n\tb", string(got))

	_, err = Read(Source{})
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = Read(Source{Path: filepath.Join(dir, "missing.txt")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_LongLine(t *testing.T) {
	long := strings.Repeat("x", 3*1024*1024)
	got, err := Read(Source{Stdin: true, Reader: strings.NewReader(long + "\n")})
	require.NoError(t, err)
	assert.Len(t, got, len(long)+1)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestLoad_Text(t *testing.T) {
	f, err := Load(Source{Stdin: true, Reader: strings.NewReader("a\n..b\nc")}, FormatText, "..")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "c"}, {"b"}}, f.Names())
}

func TestLoad_TextCRLFFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\n\tb\r\nc"), 0o644))

	f, err := Load(Source{Path: path}, FormatText, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "c"}, {"b"}}, f.Names())
}

func TestLoad_SingleLineIsMalformedFromEverySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.txt")
	require.NoError(t, os.WriteFile(path, []byte("only"), 0o644))

	sources := map[string]Source{
		"text":  {Text: "only"},
		"file":  {Path: path},
		"stdin": {Stdin: true, Reader: strings.NewReader("only")},
	}
	for name, src := range sources {
		_, err := Load(src, FormatText, "")
		assert.ErrorIs(t, err, forest.ErrMalformedInput, name)
	}

	f, err := Load(Source{Stdin: true, Reader: strings.NewReader("only\n")}, FormatText, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"only"}}, f.Names())
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(Source{Path: path}, FormatText, "")
	assert.ErrorIs(t, err, forest.ErrMalformedInput)
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"name": "navigator", "tags": ["cli", {"k": 1.5}], "deps": {"lipgloss": true, "none": null}}`
	f, err := DecodeJSON([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	root := f.List(forest.Root)
	require.Len(t, root, 3)
	assert.Equal(t, "deps", root[0].Name)
	assert.Equal(t, "name: navigator", root[1].Name)
	assert.Equal(t, "tags", root[2].Name)
	assert.False(t, root[1].IsFolder())

	deps, ok := root[0].Folder()
	require.True(t, ok)
	assert.Equal(t, []string{"lipgloss: true", "none: null"}, names(f.List(deps)))

	tags, ok := root[2].Folder()
	require.True(t, ok)
	tagList := f.List(tags)
	assert.Equal(t, []string{"[0]: cli", "[1]"}, names(tagList))
	inner, ok := tagList[1].Folder()
	require.True(t, ok)
	assert.Equal(t, []string{"k: 1.5"}, names(f.List(inner)))
}

func TestLoad_LargeSingleLineJSON(t *testing.T) {
	const items = 150_000
	var b strings.Builder
	b.WriteByte('[')
	for i := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"value"`)
	}
	b.WriteByte(']')
	require.Greater(t, b.Len(), 1024*1024)

	f, err := Load(Source{Stdin: true, Reader: strings.NewReader(b.String())}, FormatJSON, "")
	require.NoError(t, err)
	root := f.List(forest.Root)
	require.Len(t, root, items)
	assert.Equal(t, "[149999]: value", root[items-1].Name)
}

func TestDecodeJSON_TopLevelShapes(t *testing.T) {
	f, err := DecodeJSON([]byte(`[1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"[0]: 1", "[1]: 2"}}, f.Names())

	f, err = DecodeJSON([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hello"}}, f.Names())

	f, err = DecodeJSON([]byte(`{"empty": {}}`))
	require.NoError(t, err)
	root := f.List(forest.Root)
	require.Len(t, root, 1)
	assert.True(t, root[0].IsFolder())

	_, err = DecodeJSON([]byte(`{}`))
	assert.ErrorIs(t, err, forest.ErrMalformedInput)

	_, err = DecodeJSON([]byte(`{"broken":`))
	assert.ErrorIs(t, err, forest.ErrMalformedInput)
}

func TestDecodeYAML_KeepsOrder(t *testing.T) {
	doc := `
zeta: 1
alpha:
  - one
  - two: 2
base: &base
  x: y
copy: *base
nothing: ~
`
	f, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	root := f.List(forest.Root)
	assert.Equal(t, []string{"zeta: 1", "alpha", "base", "copy", "nothing: null"}, names(root))

	alpha, ok := root[1].Folder()
	require.True(t, ok)
	alphaList := f.List(alpha)
	assert.Equal(t, []string{"[0]: one", "[1]"}, names(alphaList))

	copied, ok := root[3].Folder()
	require.True(t, ok)
	assert.Equal(t, []string{"x: y"}, names(f.List(copied)))
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := DecodeYAML([]byte(""))
	assert.ErrorIs(t, err, forest.ErrMalformedInput)

	_, err = DecodeYAML([]byte("a: [unclosed"))
	assert.ErrorIs(t, err, forest.ErrMalformedInput)
}

func TestLoad_YAMLFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a:\n  b: c\n"), 0o644))

	f, err := Load(Source{Path: path}, FormatYAML, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b: c"}}, f.Names())
}

func names(entries []forest.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
