package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/navigator/internal/forest"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not know.
var ErrUnknownFormat = errors.New("unknown input format")

// Format is the encoding of the outline.
type Format int

const (
	// FormatText is indentation-delimited text.
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

// ParseFormat maps a format name to a Format. The empty name means text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Load reads src and builds a forest from it. sep only applies to text.
func Load(src Source, format Format, sep string) (*forest.Forest, error) {
	data, err := Read(src)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return forest.Parse(string(data), sep)
	}
}
