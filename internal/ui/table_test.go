package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/roster/internal/grid"
)

func TestLayout_FixedColumnsStay(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = next.(Model)

	visible := m.layout(m.tableInnerWidth())
	if len(visible) < 3 || m.cols[visible[0]].Key != grid.ColUsername || m.cols[visible[1]].Key != grid.ColEmail {
		t.Fatalf("visible = %v, want username and email first", visible)
	}
	if m.cols[visible[2]].Key != grid.ColName {
		t.Fatalf("first scrolling column = %q, want name", m.cols[visible[2]].Key)
	}

	// Focusing the last column scrolls it into view; fixed columns remain.
	m = press(m, "l", "l", "l", "l", "l", "l", "l", "l")
	if m.cols[m.colFocus].Key != grid.ColNat {
		t.Fatalf("focus = %q, want nat", m.cols[m.colFocus].Key)
	}
	visible = m.layout(m.tableInnerWidth())
	if !containsInt(visible, m.colFocus) {
		t.Fatalf("focused column not visible: %v (scroll %d)", visible, m.scroll)
	}
	if m.cols[visible[0]].Key != grid.ColUsername || m.cols[visible[1]].Key != grid.ColEmail {
		t.Fatalf("fixed columns scrolled away: %v", visible)
	}

	// Moving back left scrolls back.
	m = press(m, "h", "h", "h", "h", "h", "h")
	if m.scroll != 0 {
		t.Fatalf("scroll = %d, want 0 after focusing name", m.scroll)
	}
}

func TestRenderRow_HighlightsSearchedColumnOnly(t *testing.T) {
	m, _ := newTestModel(t, Options{
		Actions: []grid.Action{grid.Search{Column: grid.ColEmail, Value: "USER02"}},
	})
	if len(m.Rows()) != 1 {
		t.Fatalf("rows = %d, want 1", len(m.Rows()))
	}
	visible := m.layout(m.tableInnerWidth())
	line := ansi.Strip(m.renderRow(m.Rows()[0], visible, m.tableInnerWidth(), false))
	if !strings.HasPrefix(line, "[ ] user02") || !strings.Contains(line, "user02@example.com") {
		t.Fatalf("row = %q", line)
	}
	if ansi.StringWidth(line) != m.tableInnerWidth() {
		t.Fatalf("row width = %d, want %d", ansi.StringWidth(line), m.tableInnerWidth())
	}
}

func TestPageCheckbox(t *testing.T) {
	m, _ := newTestModel(t, Options{PageSize: 10})
	if got := m.pageCheckbox(); got != "[ ]" {
		t.Fatalf("empty page checkbox = %q", got)
	}
	m = press(m, " ")
	if got := m.pageCheckbox(); got != "[-]" {
		t.Fatalf("partial page checkbox = %q", got)
	}
	m = press(m, "a")
	if got := m.pageCheckbox(); got != "[x]" {
		t.Fatalf("full page checkbox = %q", got)
	}
}

func TestColumnIndicator(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	age, _ := grid.Lookup(m.cols, grid.ColAge)
	if mark, active := m.columnIndicator(age); mark != "↕" || active {
		t.Fatalf("unsorted age = %q %v", mark, active)
	}
	m = press(m, "s")
	if mark, active := m.columnIndicator(age); mark != "↑" || !active {
		t.Fatalf("ascending age = %q %v", mark, active)
	}
}
