package input

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput is returned when a Source names nothing to read.
var ErrNoInput = errors.New("no input given")

// Source selects where the outline comes from. Path wins over Stdin, which
// wins over Text.
type Source struct {
	// Text is the outline itself, as passed on the command line.
	Text string
	// Path names a file holding the outline.
	Path string
	// Stdin reads the outline from Reader.
	Stdin bool
	// Reader defaults to os.Stdin.
	Reader io.Reader
}

// Read returns the raw bytes named by src. Every source is returned as is,
// so line structure is judged the same way whichever one supplied it.
func Read(src Source) ([]byte, error) {
	switch {
	case src.Path != "":
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return data, nil
	case src.Stdin:
		r := src.Reader
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	case src.Text != "":
		return []byte(src.Text), nil
	default:
		return nil, ErrNoInput
	}
}
