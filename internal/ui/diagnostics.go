package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/logtail"
)

// diagLines bounds how much of the log file the diagnostics view loads.
const diagLines = 500

type diagMsg struct {
	entries []logtail.Entry
	err     error
}

func loadDiagCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagMsg{}
		}
		entries, err := logtail.ReadEntries(path, diagLines)
		return diagMsg{entries: entries, err: err}
	}
}

func diagWidth(width int) int {
	return max(width-2, 1)
}

func diagHeight(height int) int {
	return max(height-4, 1) // header, footer, box borders
}

func (m *Model) handleDiag(msg diagMsg) {
	m.diagErr = msg.err
	m.diag.SetContent(m.formatEntries(msg.entries))
	m.diag.GotoBottom()
}

func (m Model) handleDiagKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Diagnostics):
		m.showDiag = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.diag, cmd = m.diag.Update(msg)
	return m, cmd
}

// formatEntries renders log records one per line: time, level, message and
// the remaining fields.
func (m Model) formatEntries(entries []logtail.Entry) string {
	styles := m.theme.Styles()
	if m.logPath == "" {
		return styles.MutedText.Render("Logging to file is disabled.")
	}
	if len(entries) == 0 {
		return styles.MutedText.Render("No log records yet.")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Level == "" {
			lines = append(lines, styles.FaintText.Render(e.Raw))
			continue
		}
		parts := []string{
			styles.FaintText.Render(clock(e.Time)),
			levelStyle(styles, e.Level).Render(padCell(e.Level, 5)),
			styles.Text.Render(e.Message),
		}
		if e.Fields != "" {
			parts = append(parts, styles.MutedText.Render(e.Fields))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// clock trims an ISO8601 timestamp to its time of day.
func clock(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch level {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}

// renderDiagnostics renders the log tail pane.
func (m Model) renderDiagnostics() string {
	title := "Diagnostics"
	if m.logPath != "" {
		title += " · " + truncate(m.logPath, 60)
	}
	content := m.diag.View()
	if m.diagErr != nil {
		content = m.theme.Styles().DangerText.Render(m.diagErr.Error())
	}
	return m.renderTitledBox(title, content, m.width, max(m.height-2, 3), true)
}
