package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/grid"
)

// focusDelay lets the popover finish drawing before its input takes focus.
const focusDelay = 100 * time.Millisecond

// focusInputMsg asks the popover opened as generation gen to focus its input.
type focusInputMsg struct {
	gen int
}

// popover is the filter dropdown of one column. Control 0 is the text input
// (search columns) or the option list (categorical columns); the rest are
// buttons.
type popover struct {
	column    grid.Column
	input     textinput.Model
	control   int
	selectAll bool // the next edit replaces the whole input
	gen       int  // bumped on every open

	option int             // cursor in the option list
	picked map[string]bool // checked option values
}

func newPopover() popover {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 100
	input.Width = 30
	return popover{input: input}
}

func (p popover) buttons() []string {
	if p.column.Kind == grid.KindCategorical {
		return []string{"OK", "Reset", "Close"}
	}
	return []string{"Search", "Reset", "Filter", "Close"}
}

// button returns the label of the focused button, or "" on control 0.
func (p popover) button() string {
	if p.control == 0 {
		return ""
	}
	return p.buttons()[p.control-1]
}

func (p popover) pickedValues() []string {
	var values []string
	for _, opt := range p.column.Options {
		if p.picked[opt.Value] {
			values = append(values, opt.Value)
		}
	}
	return values
}

// openPopover shows col's filter popover seeded with the committed filter,
// and schedules the input focus.
func (m *Model) openPopover(col grid.Column) tea.Cmd {
	m.apply(grid.Open{Column: col.Key})

	m.pop.gen++
	m.pop.column = col
	m.pop.control = 0
	m.pop.selectAll = false
	m.pop.input.Blur()
	m.pop.input.Placeholder = "Search " + string(col.Key)
	m.pop.input.SetValue(m.state.Filters.Value(col.Key))
	m.pop.option = 0
	m.pop.picked = make(map[string]bool)
	for _, v := range m.state.Filters.Values(col.Key) {
		m.pop.picked[v] = true
	}

	if col.Kind != grid.KindSearch {
		return nil
	}
	gen := m.pop.gen
	return tea.Tick(focusDelay, func(time.Time) tea.Msg {
		return focusInputMsg{gen: gen}
	})
}

// handleFocusInput focuses the input with its text selected. A message for
// a popover that has since closed or been reopened is dropped.
func (m Model) handleFocusInput(msg focusInputMsg) (tea.Model, tea.Cmd) {
	if !m.state.Popover.Open || msg.gen != m.pop.gen || m.pop.column.Kind != grid.KindSearch {
		return m, nil
	}
	m.pop.control = 0
	m.pop.input.CursorEnd()
	m.pop.selectAll = m.pop.input.Value() != ""
	cmd := m.pop.input.Focus()
	return m, cmd
}

func (m *Model) closePopover() {
	m.pop.input.Blur()
	m.pop.selectAll = false
	m.apply(grid.Close{})
}

// handlePopoverKey handles keyboard input while a popover is open.
func (m Model) handlePopoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closePopover()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		cmd := m.moveControl(1)
		return m, cmd

	case key.Matches(msg, m.keys.ShiftTab):
		cmd := m.moveControl(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Confirm):
		m.activateControl()
		return m, nil
	}

	if m.pop.control != 0 {
		return m, nil
	}
	if m.pop.column.Kind == grid.KindCategorical {
		m.handleOptionKey(msg)
		return m, nil
	}
	return m.updateInput(msg)
}

func (m *Model) moveControl(dir int) tea.Cmd {
	n := len(m.pop.buttons()) + 1
	m.pop.control = (m.pop.control + dir + n) % n
	m.pop.selectAll = false
	if m.pop.control == 0 && m.pop.column.Kind == grid.KindSearch {
		return m.pop.input.Focus()
	}
	m.pop.input.Blur()
	return nil
}

// activateControl runs the focused control. Enter in the input searches;
// enter in the option list confirms.
func (m *Model) activateControl() {
	col := m.pop.column.Key
	categorical := m.pop.column.Kind == grid.KindCategorical

	switch m.pop.button() {
	case "", "Search", "OK":
		if categorical {
			m.apply(grid.SetCategories{Column: col, Values: m.pop.pickedValues()})
		} else {
			m.apply(grid.Search{Column: col, Value: m.pop.input.Value()})
		}
		m.pop.input.Blur()
		m.pop.selectAll = false
	case "Reset":
		if categorical {
			m.pop.picked = make(map[string]bool)
			m.apply(grid.ResetCategories{Column: col})
		} else {
			m.pop.input.SetValue("")
			m.pop.selectAll = false
			m.apply(grid.Reset{Column: col})
		}
	case "Filter":
		m.apply(grid.Filter{Column: col, Value: m.pop.input.Value()})
	case "Close":
		m.closePopover()
	}
}

func (m *Model) handleOptionKey(msg tea.KeyMsg) {
	opts := m.pop.column.Options
	if len(opts) == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.pop.option = (m.pop.option - 1 + len(opts)) % len(opts)
	case key.Matches(msg, m.keys.Down):
		m.pop.option = (m.pop.option + 1) % len(opts)
	case key.Matches(msg, m.keys.Select):
		v := opts[m.pop.option].Value
		m.pop.picked[v] = !m.pop.picked[v]
	}
}

// updateInput forwards a key to the input. While the text is selected the
// first edit replaces it.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pop.selectAll {
		m.pop.selectAll = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.pop.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.pop.input.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.pop.input, cmd = m.pop.input.Update(msg)
	return m, cmd
}

// renderPopover renders the filter popover modal.
func (m Model) renderPopover() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	col := m.pop.column

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Filter " + col.Title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")

	if col.Kind == grid.KindCategorical {
		for i, opt := range col.Options {
			box := "[ ]"
			if m.pop.picked[opt.Value] {
				box = "[x]"
			}
			style := styles.Text
			if m.pop.control == 0 && i == m.pop.option {
				style = styles.AccentText.Bold(true)
			}
			b.WriteString(bg.Render(box+" "+opt.Label, style))
			b.WriteString("\n")
		}
	} else {
		label := styles.MutedText.Render("Search " + string(col.Key) + ": ")
		if m.pop.control == 0 {
			label = styles.AccentText.Render("Search " + string(col.Key) + ": ")
		}
		b.WriteString(label)
		if m.pop.selectAll {
			b.WriteString(styles.Selected.Render(m.pop.input.Value()))
		} else {
			b.WriteString(m.pop.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	buttons := make([]string, 0, len(m.pop.buttons()))
	for i, label := range m.pop.buttons() {
		style := styles.MutedText
		if m.pop.control == i+1 {
			style = styles.Selected.Bold(true)
		} else if i == 0 {
			style = styles.AccentText
		}
		buttons = append(buttons, bg.Render("[ "+label+" ]", style))
	}
	b.WriteString(bg.Join(buttons, " "))
	b.WriteString("\n\n")

	hints := make([]string, 0, 4)
	for _, binding := range m.keys.popoverHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+" "+strings.ToLower(h.Desc))
	}
	if col.Kind == grid.KindCategorical {
		hints = append(hints, "space toggle")
	}
	b.WriteString(styles.FaintText.Render(strings.Join(hints, " · ")))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Padding(1, 2).
		Width(popoverWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

const popoverWidth = 60
