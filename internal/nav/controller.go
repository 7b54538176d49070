package nav

import (
	"errors"
	"slices"
	"strings"

	"github.com/five82/navigator/internal/forest"
	"github.com/five82/navigator/internal/search"
)

// ErrEmptySelection is returned by selection accessors when nothing is
// displayed.
var ErrEmptySelection = errors.New("nothing selected")

// Mode is the display mode of the controller.
type Mode int

const (
	// ModeStructured browses one sibling list at a time.
	ModeStructured Mode = iota
	// ModeFullPath lists every node below the current folder by full path.
	ModeFullPath
)

// String returns the mode label shown in the UI.
func (m Mode) String() string {
	if m == ModeFullPath {
		return "full path"
	}
	return "structured"
}

// Direction is a scroll direction.
type Direction int

const (
	Up Direction = iota
	Down
)

// Frame is one step of the navigation path.
type Frame struct {
	Name string
	List int
}

// Controller holds the navigation state over a forest: the path into it, the
// cursor, the display mode and the currently displayed entries.
type Controller struct {
	forest *forest.Forest
	engine *search.Engine

	path      []Frame
	selected  int
	mode      Mode
	displayed []forest.Entry
	query     string
}

// New returns a controller positioned at the root of f. A nil engine uses
// the search defaults.
func New(f *forest.Forest, engine *search.Engine) *Controller {
	if engine == nil {
		engine = search.New(search.Options{})
	}
	c := &Controller{
		forest: f,
		engine: engine,
		path:   []Frame{{Name: "", List: forest.Root}},
	}
	c.rebuild()
	return c
}

// Displayed returns the entries currently shown. The slice must not be
// modified.
func (c *Controller) Displayed() []forest.Entry {
	return c.displayed
}

// SelectedIndex returns the cursor position.
func (c *Controller) SelectedIndex() int {
	return c.selected
}

// Mode returns the display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Query returns the last search pattern that was applied successfully.
func (c *Controller) Query() string {
	return c.query
}

// Path returns a copy of the navigation path, root frame included.
func (c *Controller) Path() []Frame {
	return slices.Clone(c.path)
}

// Expand enters the selected folder. It does nothing outside structured
// mode or when the selection is a leaf.
func (c *Controller) Expand() {
	if c.mode != ModeStructured || len(c.displayed) == 0 {
		return
	}
	entry := c.displayed[c.selected]
	child, ok := entry.Folder()
	if !ok {
		return
	}
	c.path = append(c.path, Frame{Name: entry.Name, List: child})
	c.selected = 0
	c.rebuild()
}

// Back leaves the current folder. The root frame is never popped.
func (c *Controller) Back() {
	if c.mode != ModeStructured || len(c.path) == 1 {
		return
	}
	c.path = c.path[:len(c.path)-1]
	c.selected = 0
	c.rebuild()
}

// Scroll moves the cursor one step, saturating at both ends.
func (c *Controller) Scroll(dir Direction) {
	if len(c.displayed) == 0 {
		return
	}
	switch dir {
	case Up:
		if c.selected > 0 {
			c.selected--
		}
	case Down:
		if c.selected < len(c.displayed)-1 {
			c.selected++
		}
	}
}

// Page moves the cursor by delta entries, clamped to the displayed range.
func (c *Controller) Page(delta int) {
	if len(c.displayed) == 0 {
		return
	}
	c.selected = min(max(c.selected+delta, 0), len(c.displayed)-1)
}

// ScrollTop moves the cursor to the first entry.
func (c *Controller) ScrollTop() {
	c.selected = 0
}

// ScrollBottom moves the cursor to the last entry.
func (c *Controller) ScrollBottom() {
	if len(c.displayed) > 0 {
		c.selected = len(c.displayed) - 1
	}
}

// ToggleDisplayMode switches between structured and full-path mode and
// rebuilds the displayed entries. Full-path mode is rooted at the current
// folder.
func (c *Controller) ToggleDisplayMode() {
	if c.mode == ModeStructured {
		c.mode = ModeFullPath
	} else {
		c.mode = ModeStructured
	}
	c.selected = 0
	c.rebuild()
}

// ApplySearch filters the current scope by pattern. When the pattern does
// not compile the displayed entries are kept as they are and the error
// (wrapping search.ErrInvalidRegex) is returned.
func (c *Controller) ApplySearch(pattern string) error {
	displayed, err := c.engine.Apply(c.scope(), pattern)
	if err != nil {
		return err
	}
	c.query = pattern
	c.displayed = displayed
	c.selected = 0
	return nil
}

// CurrentName returns the name of the selected entry.
func (c *Controller) CurrentName() (string, error) {
	if len(c.displayed) == 0 {
		return "", ErrEmptySelection
	}
	return c.displayed[c.selected].Name, nil
}

// CurrentFullPath joins the names of the entered folders with "/". The
// selected entry itself is not included.
func (c *Controller) CurrentFullPath() string {
	names := make([]string, 0, len(c.path)-1)
	for _, f := range c.path[1:] {
		names = append(names, f.Name)
	}
	return strings.Join(names, forest.PathSeparator)
}

// SelectedPath returns the full path of the selected entry.
func (c *Controller) SelectedPath() (string, error) {
	name, err := c.CurrentName()
	if err != nil {
		return "", err
	}
	if dir := c.CurrentFullPath(); dir != "" {
		return dir + forest.PathSeparator + name, nil
	}
	return name, nil
}

// Breadcrumb renders the path as "/a/b/", or "/" at the root.
func (c *Controller) Breadcrumb() string {
	var b strings.Builder
	b.WriteString(forest.PathSeparator)
	for _, f := range c.path[1:] {
		b.WriteString(f.Name)
		b.WriteString(forest.PathSeparator)
	}
	return b.String()
}

// scope returns the unfiltered entries for the current folder and mode.
func (c *Controller) scope() []forest.Entry {
	list := c.path[len(c.path)-1].List
	if c.mode == ModeFullPath {
		return c.forest.Paths(list)
	}
	return c.forest.List(list)
}

// rebuild re-applies the stored query to the current scope. The query
// compiled when it was stored; the fallback keeps displayed consistent with
// the scope regardless.
func (c *Controller) rebuild() {
	displayed, err := c.engine.Apply(c.scope(), c.query)
	if err != nil {
		displayed, _ = c.engine.Apply(c.scope(), "")
		c.query = ""
	}
	c.displayed = displayed
	c.selected = min(c.selected, max(len(c.displayed)-1, 0))
}
