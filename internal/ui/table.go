package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/five82/roster/internal/grid"
	"github.com/five82/roster/internal/users"
)

const (
	checkboxWidth = 3 // "[x]"
	cellGap       = 1
	// header bar, footer, box borders, column titles and rule
	tableChrome = 6
)

// visibleRows is how many page rows fit on screen.
func (m Model) visibleRows() int {
	return max(m.height-tableChrome, 1)
}

// scrolling returns the indexes of the columns that scroll horizontally.
func (m Model) scrolling() []int {
	var idx []int
	for i, c := range m.cols {
		if !c.Fixed {
			idx = append(idx, i)
		}
	}
	return idx
}

// layout returns the column indexes that fit in width: every fixed column,
// then scrolling columns from m.scroll on. At least one scrolling column is
// shown even when it must be clipped.
func (m Model) layout(width int) []int {
	var idx []int
	used := checkboxWidth
	for i, c := range m.cols {
		if c.Fixed {
			idx = append(idx, i)
			used += cellGap + c.Width
		}
	}
	fixed := len(idx)
	scroll := m.scrolling()
	for _, i := range scroll[min(m.scroll, len(scroll)):] {
		w := cellGap + m.cols[i].Width
		if used+w > width && len(idx) > fixed {
			break
		}
		idx = append(idx, i)
		used += w
	}
	return idx
}

// focusColumn moves the column focus to i, clamped, and scrolls it into view.
func (m *Model) focusColumn(i int) {
	if len(m.cols) == 0 {
		return
	}
	m.colFocus = min(max(i, 0), len(m.cols)-1)
	m.ensureColumnVisible()
}

func (m *Model) ensureColumnVisible() {
	if m.colFocus < 0 || m.colFocus >= len(m.cols) || m.cols[m.colFocus].Fixed {
		return
	}
	scroll := m.scrolling()
	pos := 0
	for i, idx := range scroll {
		if idx == m.colFocus {
			pos = i
		}
	}
	if pos < m.scroll {
		m.scroll = pos
		return
	}
	width := m.tableInnerWidth()
	for m.scroll < pos && !containsInt(m.layout(width), m.colFocus) {
		m.scroll++
	}
}

func (m Model) tableInnerWidth() int {
	return max(m.width-2, 0)
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// renderTable renders the user table pane.
func (m Model) renderTable() string {
	height := max(m.height-2, 3) // header + footer
	width := m.tableInnerWidth()
	bgColor := m.theme.SurfaceAlt
	styles := m.theme.Styles()

	visible := m.layout(width)
	lines := []string{
		m.renderColumnHeader(visible, width),
		NewBgStyle(bgColor).Render(strings.Repeat("─", width), styles.FaintText),
	}

	if len(m.view.Rows) == 0 {
		msg := "No users"
		if m.view.Total == 0 && len(m.items) > 0 {
			msg = "No users match the current filters"
		}
		lines = append(lines, NewBgStyle(bgColor).FillLine(styles.MutedText.Render(msg), width))
	} else {
		start := 0
		if rows := m.visibleRows(); m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		end := min(start+m.visibleRows(), len(m.view.Rows))
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(m.view.Rows[i], visible, width, i == m.cursor))
		}
	}

	return m.renderTitledBox(m.tableTitle(), strings.Join(lines, "\n"), m.width, height, true)
}

func (m Model) tableTitle() string {
	title := "Users"
	if len(m.scrolling()) > 0 && m.scroll > 0 {
		title = "◂ " + title
	}
	visible := m.layout(m.tableInnerWidth())
	if last := m.scrolling(); len(last) > 0 && !containsInt(visible, last[len(last)-1]) {
		title += " ▸"
	}
	return title
}

// pageCheckbox summarises the selection of the current page.
func (m Model) pageCheckbox() string {
	selected := 0
	for _, row := range m.view.Rows {
		if m.state.Selection.Has(row.Key()) {
			selected++
		}
	}
	switch {
	case selected == 0:
		return "[ ]"
	case selected == len(m.view.Rows):
		return "[x]"
	default:
		return "[-]"
	}
}

// columnIndicator marks how a column filters or sorts, and its state.
func (m Model) columnIndicator(col grid.Column) (string, bool) {
	switch col.Kind {
	case grid.KindSearch:
		return "/", m.state.Filters.Active(col.Key)
	case grid.KindCategorical:
		return "▾", m.state.Filters.Active(col.Key)
	case grid.KindNumericSort:
		if m.state.Sort.Column == col.Key {
			switch m.state.Sort.Order {
			case grid.OrderAscend:
				return "↑", true
			case grid.OrderDescend:
				return "↓", true
			}
		}
		return "↕", false
	}
	return "", false
}

func (m Model) renderColumnHeader(visible []int, width int) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()
	focusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.FocusBg)).
		Foreground(lipgloss.Color(m.theme.BorderFocus)).
		Bold(true)

	parts := []string{bg.Render(m.pageCheckbox(), styles.MutedText)}
	for _, i := range visible {
		col := m.cols[i]
		mark, active := m.columnIndicator(col)
		title := col.Title
		if mark != "" {
			// keep the indicator visible when the title is cut
			title = runewidth.Truncate(title, max(col.Width-2, 1), ellipsis) + " " + mark
		}
		cell := padCell(title, col.Width)

		style := styles.MutedText.Bold(true)
		if active {
			style = styles.AccentText.Bold(true)
		}
		if i == m.colFocus {
			parts = append(parts, focusStyle.Render(cell))
			continue
		}
		parts = append(parts, bg.Render(cell, style))
	}
	return bg.FillLine(ansi.Truncate(bg.Join(parts, " "), width, ""), width)
}

// renderRow renders one user with the searched column highlighted.
func (m Model) renderRow(item users.Item, visible []int, width int, atCursor bool) string {
	styles := m.theme.Styles()
	bgColor := m.theme.SurfaceAlt
	text := styles.Text
	check := styles.MutedText
	if atCursor {
		bgColor = m.theme.SelectionBg
		text = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		check = text
	}
	bg := NewBgStyle(bgColor)

	box := "[ ]"
	if m.state.Selection.Has(item.Key()) {
		box = "[x]"
		check = styles.AccentText.Bold(true)
	}

	parts := []string{bg.Render(box, check)}
	for _, i := range visible {
		col := m.cols[i]
		segs, used := fitSegments(m.state.Search.Segments(col.Key, col.Value(item)), col.Width)
		parts = append(parts, bg.Segments(segs, text, styles.Match)+bg.Spaces(col.Width-used))
	}
	return bg.FillLine(ansi.Truncate(bg.Join(parts, " "), width, ""), width)
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr := m.theme.Border
	if focused {
		borderColorStr = m.theme.BorderFocus
	}
	bgColorStr := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := runewidth.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
