package ui

import (
	"context"
	"errors"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/navigator/internal/config"
	"github.com/five82/navigator/internal/logging"
	"github.com/five82/navigator/internal/nav"
	"github.com/five82/navigator/internal/prefs"
	"github.com/five82/navigator/internal/search"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Options configures the UI.
type Options struct {
	Controller *nav.Controller
	Config     config.Config
	ThemeName  string
	PrefsPath  string
	// PrintPath makes commit and copy use the full path of the selection.
	PrintPath bool
	Logger    logging.Sink
}

// Result is what the user committed, if anything.
type Result struct {
	Committed bool
	Name      string
	Path      string
}

// Value returns the committed path when full paths were requested, and the
// name otherwise.
func (r Result) Value(fullPath bool) string {
	if fullPath {
		return r.Path
	}
	return r.Name
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg       config.Config
	keys      keyMap
	prefsPath string
	printPath bool
	logger    logging.Sink

	// Core state
	ctrl   *nav.Controller
	focus  nav.FocusState
	search textinput.Model

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	invalid  bool
	status   string

	result Result
}

// New creates a new Bubble Tea model around a controller.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg.Selector == "" {
		cfg.Selector = config.Default().Selector
	}
	if cfg.Prefixes == (config.Prefixes{}) {
		cfg.Prefixes = config.Default().Prefixes
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "regex"
	ti.CharLimit = 256

	m := Model{
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		prefsPath: opts.PrefsPath,
		printPath: opts.PrintPath,
		logger:    logger,
		ctrl:      opts.Controller,
		search:    ti,
		theme:     GetTheme(themeName),
	}
	m, _ = m.afterNavigate()
	return m
}

// Result returns the committed selection once the program has exited.
func (m Model) Result() Result {
	return m.result
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil
	}

	if m.focus.Current() == nav.FocusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	m.status = ""
	if m.focus.Current() == nav.FocusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

// handleSearchKey edits the search box and re-filters on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.focus.Commit(m.empty()) {
			m.search.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.focus.Cancel()
		m.search.Blur()
		m.search.SetValue("")
		m.applySearch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applySearch()
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Up):
		m.ctrl.Scroll(nav.Up)

	case key.Matches(msg, m.keys.Down):
		m.ctrl.Scroll(nav.Down)

	case key.Matches(msg, m.keys.Top):
		m.ctrl.ScrollTop()

	case key.Matches(msg, m.keys.Bottom):
		m.ctrl.ScrollBottom()

	case key.Matches(msg, m.keys.HalfPageDown):
		m.ctrl.Page(m.halfPage())

	case key.Matches(msg, m.keys.HalfPageUp):
		m.ctrl.Page(-m.halfPage())

	case key.Matches(msg, m.keys.Expand):
		m.ctrl.Expand()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.Back):
		m.ctrl.Back()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.ToggleMode):
		m.ctrl.ToggleDisplayMode()
		m.status = m.ctrl.Mode().String()
		return m.afterNavigate()

	case key.Matches(msg, m.keys.Search):
		m.focus.RequestSearch()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Commit):
		return m.commit()

	case key.Matches(msg, m.keys.Yank):
		m.yank()
	}
	return m, nil
}

// afterNavigate hands focus to the search box when the new scope shows
// nothing.
func (m Model) afterNavigate() (Model, tea.Cmd) {
	m.focus.AfterNavigate(m.empty())
	if m.focus.Current() == nav.FocusSearch && !m.search.Focused() {
		cmd := m.search.Focus()
		return m, cmd
	}
	return m, nil
}

func (m *Model) applySearch() {
	pattern := m.search.Value()
	err := m.ctrl.ApplySearch(pattern)
	m.invalid = errors.Is(err, search.ErrInvalidRegex)
	if err != nil {
		logging.Printf(m.logger, "search %q: %v", pattern, err)
	}
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	name, err := m.ctrl.CurrentName()
	if err != nil {
		return m, nil
	}
	path, _ := m.ctrl.SelectedPath()
	m.result = Result{Committed: true, Name: name, Path: path}
	logging.Printf(m.logger, "commit %q", path)
	return m, tea.Quit
}

func (m *Model) yank() {
	value, err := m.ctrl.CurrentName()
	if err != nil {
		return
	}
	if m.printPath {
		value, _ = m.ctrl.SelectedPath()
	}
	if err := writeClipboard(value); err != nil {
		logging.Printf(m.logger, "copy to clipboard: %v", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + value
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.status = "theme " + m.theme.Name
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		logging.Printf(m.logger, "save prefs: %v", err)
	}
}

func (m Model) empty() bool {
	return len(m.ctrl.Displayed()) == 0
}

func (m Model) listHeight() int {
	return max(m.height-searchHeight-footerHeight, minListHeight)
}

func (m Model) halfPage() int {
	return max((m.listHeight()-2)/2, 1)
}

// renderMain renders the search row, the list and the status line.
func (m Model) renderMain() string {
	searchWidth := max(m.width-infoWidth, infoWidth)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderWidget(WidgetSearch, searchWidth, searchHeight),
		m.renderWidget(WidgetInfo, infoWidth, searchHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.renderWidget(WidgetList, m.width, m.listHeight()),
		m.renderFooter(),
	)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	left := m.ctrl.Mode().String()
	if m.status != "" {
		left = m.status
	}
	right := "? help"
	gap := m.width - lipgloss.Width(right) - 1
	return styles.MutedText.Render(padRight(truncate(left, max(gap-1, 0)), gap) + " " + right)
}

// Run starts the Bubble Tea program. The UI is drawn on stderr and reads keys
// from the terminal, leaving stdin and stdout free for pipelines. Cancelling
// ctx ends the program without a result.
func Run(ctx context.Context, opts Options) (Result, error) {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return Result{}, nil
		}
		return Result{}, err
	}
	if m, ok := final.(Model); ok {
		return m.result, nil
	}
	return Result{}, nil
}
