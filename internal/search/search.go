package search

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/five82/navigator/internal/forest"
	"github.com/five82/navigator/internal/logging"
)

// ErrInvalidRegex reports a search pattern that does not compile.
var ErrInvalidRegex = errors.New("invalid regex")

const (
	// DefaultThreshold is the scope size above which filtering fans out.
	DefaultThreshold = 20
	// DefaultMaxWorkers bounds the number of concurrent filter workers.
	DefaultMaxWorkers = 20
)

// Mode selects between the serial and the fan-out filter paths.
type Mode int

const (
	// ModeAuto fans out only when the scope exceeds the threshold.
	ModeAuto Mode = iota
	// ModeSerial always filters on the calling goroutine.
	ModeSerial
	// ModeParallel always fans out, splitting even small scopes.
	ModeParallel
)

// Options configure an Engine. Zero values select the defaults.
type Options struct {
	Threshold  int
	MaxWorkers int
	Mode       Mode
	IgnoreCase bool
	Logger     logging.Sink
}

// Engine filters a scope by regex and restyles the surviving entries.
type Engine struct {
	opts Options
}

// New returns an engine with defaults filled in.
func New(opts Options) *Engine {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = DefaultMaxWorkers
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}
	return &Engine{opts: opts}
}

// Compile compiles pattern with the engine's case handling.
func (e *Engine) Compile(pattern string) (*regexp.Regexp, error) {
	if e.opts.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegex, err)
	}
	return re, nil
}

// Apply filters scope by pattern. Entries whose name does not match are
// dropped; the rest get fresh display segments. An empty pattern keeps every
// entry with its base styling. The input slice is never modified.
func (e *Engine) Apply(scope []forest.Entry, pattern string) ([]forest.Entry, error) {
	if pattern == "" {
		return restyle(scope), nil
	}
	re, err := e.Compile(pattern)
	if err != nil {
		return nil, err
	}

	chunks := e.chunkCount(len(scope))
	if chunks <= 1 {
		return filter(re, scope), nil
	}
	return e.fanOut(re, scope, chunks), nil
}

func (e *Engine) chunkCount(n int) int {
	switch e.opts.Mode {
	case ModeSerial:
		return 1
	case ModeParallel:
		return min(n, e.opts.MaxWorkers)
	}
	if n <= e.opts.Threshold {
		return 1
	}
	return min((n+e.opts.Threshold-1)/e.opts.Threshold, e.opts.MaxWorkers)
}

// fanOut filters contiguous chunks concurrently. Results are collected by
// chunk index so the output order matches the scope order.
func (e *Engine) fanOut(re *regexp.Regexp, scope []forest.Entry, chunks int) []forest.Entry {
	bounds := chunkBounds(len(scope), chunks)
	logging.Printf(e.opts.Logger, "search: %d entries across %d workers", len(scope), len(bounds))

	results := make([][]forest.Entry, len(bounds))
	var g errgroup.Group
	g.SetLimit(e.opts.MaxWorkers)
	for i, b := range bounds {
		chunk := slices.Clone(scope[b[0]:b[1]])
		g.Go(func() error {
			results[i] = filter(re, chunk)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]forest.Entry, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// chunkBounds splits n items into k contiguous, near-equal [start, end)
// ranges. The first n%k ranges are one item longer.
func chunkBounds(n, k int) [][2]int {
	if n == 0 || k <= 0 {
		return nil
	}
	k = min(k, n)
	base, extra := n/k, n%k
	bounds := make([][2]int, 0, k)
	start := 0
	for i := range k {
		size := base
		if i < extra {
			size++
		}
		bounds = append(bounds, [2]int{start, start + size})
		start += size
	}
	return bounds
}

func filter(re *regexp.Regexp, entries []forest.Entry) []forest.Entry {
	out := make([]forest.Entry, 0, len(entries))
	for _, entry := range entries {
		matches := re.FindAllStringIndex(entry.Name, -1)
		if matches == nil {
			continue
		}
		entry.Segments = Segments(entry.Name, entry.Marks, matches)
		out = append(out, entry)
	}
	return out
}

func restyle(scope []forest.Entry) []forest.Entry {
	out := make([]forest.Entry, len(scope))
	for i, entry := range scope {
		entry.Segments = Segments(entry.Name, entry.Marks, nil)
		out[i] = entry
	}
	return out
}
