package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/roster/internal/grid"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/users"
)

// Options configures the UI.
type Options struct {
	Items     []users.Item
	Columns   []grid.Column // nil uses grid.Columns()
	PageSize  int
	Actions   []grid.Action // applied before the first render
	ThemeName string        // empty uses the stored preference
	Prefs     *prefs.Store  // nil disables theme persistence
	Logger    *zap.Logger
	Observer  grid.Observer // nil reports selection through Logger
	LogPath   string        // file shown by the diagnostics view
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Data
	items []users.Item
	cols  []grid.Column
	state grid.State
	view  grid.View

	// Collaborators
	prefs    *prefs.Store
	logger   *zap.Logger
	observer grid.Observer
	logPath  string
	copyText func(string) error

	// UI state
	keys   keyMap
	theme  Theme
	help   help.Model
	pager  paginator.Model
	width  int
	height int
	ready  bool

	// Table cursor
	cursor   int // row within the current page
	colFocus int // index into cols
	scroll   int // first visible scrolling column

	// Filter popover
	pop popover

	// Overlays
	showHelp bool
	showDiag bool
	diag     viewport.Model
	diagErr  error

	// Transient message shown in the header
	notice string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := logging.OrNop(opts.Logger)

	cols := opts.Columns
	if cols == nil {
		cols = grid.Columns()
	}

	observer := opts.Observer
	if observer == nil {
		observer = logging.NewSelectionObserver(logger)
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	themeName := opts.ThemeName
	if themeName == "" && opts.Prefs != nil {
		p, err := opts.Prefs.Load()
		if err != nil {
			logger.Warn("load prefs", zap.Error(err))
		}
		themeName = p.Theme
	}

	pager := paginator.New()
	pager.Type = paginator.Dots

	m := Model{
		items:    opts.Items,
		cols:     cols,
		state:    grid.NewState(opts.PageSize),
		prefs:    opts.Prefs,
		logger:   logger,
		observer: observer,
		logPath:  opts.LogPath,
		copyText: copyText,
		keys:     DefaultKeyMap(),
		theme:    GetTheme(themeName),
		help:     help.New(),
		pager:    pager,
		pop:      newPopover(),
	}
	for _, a := range opts.Actions {
		m.state = grid.Reduce(m.state, a)
	}
	m.refresh()
	return m
}

// State returns the current table state.
func (m Model) State() grid.State {
	return m.state
}

// Rows returns the rows of the current page.
func (m Model) Rows() []users.Item {
	return m.view.Rows
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.diag = viewport.New(diagWidth(msg.Width), diagHeight(msg.Height))
		} else {
			m.diag.Width = diagWidth(msg.Width)
			m.diag.Height = diagHeight(msg.Height)
		}
		m.ready = true
		m.ensureColumnVisible()
		return m, nil

	case focusInputMsg:
		return m.handleFocusInput(msg)

	case diagMsg:
		m.handleDiag(msg)
		return m, nil
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

	if m.state.Popover.Open {
		return m.renderPopover()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.showDiag {
		b.WriteString(m.renderDiagnostics())
	} else {
		b.WriteString(m.renderTable())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.state.Popover.Open {
		return m.handlePopoverKey(msg)
	}

	if m.showDiag {
		return m.handleDiagKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiag = true
		return m, loadDiagCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.notice = ""

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.view.Rows)-1, 0)

	case key.Matches(msg, m.keys.Left):
		m.focusColumn(m.colFocus - 1)
	case key.Matches(msg, m.keys.Right):
		m.focusColumn(m.colFocus + 1)

	case key.Matches(msg, m.keys.NextPage):
		if m.view.Page.Current < m.totalPages() {
			m.cursor = 0
			m.apply(grid.SetPage{Page: m.view.Page.Current + 1})
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.view.Page.Current > 1 {
			m.cursor = 0
			m.apply(grid.SetPage{Page: m.view.Page.Current - 1})
		}
	case key.Matches(msg, m.keys.SizeUp):
		m.resize(1)
	case key.Matches(msg, m.keys.SizeDown):
		m.resize(-1)

	case key.Matches(msg, m.keys.OpenColumn):
		cmd := m.activateColumn()
		return m, cmd
	case key.Matches(msg, m.keys.Sort):
		if col, ok := m.sortColumn(); ok {
			m.apply(grid.ToggleSort{Column: col.Key})
		}

	case key.Matches(msg, m.keys.Select):
		if row, ok := m.cursorRow(); ok {
			m.apply(grid.ToggleRow{Key: row.Key()})
		}
	case key.Matches(msg, m.keys.SelectPage):
		keys := make([]string, len(m.view.Rows))
		for i, row := range m.view.Rows {
			keys[i] = row.Key()
		}
		m.apply(grid.TogglePage{Keys: keys})
	case key.Matches(msg, m.keys.ClearSelection):
		m.apply(grid.ClearSelection{})
	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
	}

	return m, nil
}

// apply reduces a into the state, reports selection changes and re-derives
// the visible page.
func (m *Model) apply(a grid.Action) {
	prev := m.state
	m.state = grid.Reduce(m.state, a)
	if !prev.Selection.Equal(m.state.Selection) {
		m.observer.SelectionChanged(m.state.Selection.Keys(), m.state.Selection.Rows(m.items))
	}
	m.refresh()
}

// refresh derives the page and keeps cursor, pagination and pager in range.
func (m *Model) refresh() {
	m.view = grid.Derive(m.items, m.cols, m.state)
	m.state.Page = m.view.Page
	m.cursor = min(max(m.cursor, 0), max(len(m.view.Rows)-1, 0))

	m.pager.PerPage = m.view.Page.Size
	m.pager.TotalPages = m.totalPages()
	m.pager.Page = m.view.Page.Current - 1

	for _, row := range m.view.Rows {
		m.observer.CheckboxQueried(row, grid.CheckboxPropsFor(row))
	}
}

func (m Model) totalPages() int {
	return m.view.Page.TotalPages(m.view.Total)
}

func (m *Model) resize(dir int) {
	size := grid.NextPageSize(m.view.Page.Size, dir)
	if size == m.view.Page.Size {
		return
	}
	m.apply(grid.SetPageSize{Page: m.view.Page.Current, Size: size})
}

func (m Model) cursorRow() (users.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Rows) {
		return users.Item{}, false
	}
	return m.view.Rows[m.cursor], true
}

// activateColumn opens the focused column's popover, or cycles its sort
// order when the column sorts instead of filtering.
func (m *Model) activateColumn() tea.Cmd {
	if m.colFocus < 0 || m.colFocus >= len(m.cols) {
		return nil
	}
	col := m.cols[m.colFocus]
	switch {
	case col.Sortable():
		m.apply(grid.ToggleSort{Column: col.Key})
		return nil
	case col.Filterable():
		return m.openPopover(col)
	}
	return nil
}

// sortColumn prefers the focused column when it sorts, else the first
// sortable one.
func (m Model) sortColumn() (grid.Column, bool) {
	if m.colFocus >= 0 && m.colFocus < len(m.cols) && m.cols[m.colFocus].Sortable() {
		return m.cols[m.colFocus], true
	}
	for _, c := range m.cols {
		if c.Sortable() {
			return c, true
		}
	}
	return grid.Column{}, false
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Save(prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs", zap.Error(err))
		m.notice = "Theme not saved"
	}
}

func (m *Model) copySelection() {
	keys := m.state.Selection.Keys()
	if len(keys) == 0 {
		m.notice = "Nothing selected"
		return
	}
	if err := m.copyText(strings.Join(keys, "\n")); err != nil {
		m.logger.Warn("copy selection", zap.Error(err))
		m.notice = "Clipboard unavailable"
		return
	}
	m.logger.Info("copied selection", zap.Int("count", len(keys)))
	m.notice = fmt.Sprintf("Copied %d %s", len(keys), pluralize(len(keys), "email", "emails"))
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
