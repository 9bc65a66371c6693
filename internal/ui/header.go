package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/grid"
)

// renderHeader renders the status bar: counts, active filters, the
// highlighted search, sort, selection and any notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("roster", styles.Logo),
		bg.Render("Users:", styles.MutedText) + bg.Space() +
			bg.Render(fmt.Sprintf("%d/%d", m.view.Total, len(m.items)), styles.Text),
	}

	if filters := m.filterSummary(); filters != "" {
		parts = append(parts,
			bg.Render("Filters:", styles.MutedText)+bg.Space()+
				bg.Render(truncate(filters, 48), styles.AccentText))
	}

	if s := m.state.Search; s.Text != "" {
		parts = append(parts,
			bg.Render("Search:", styles.MutedText)+bg.Space()+
				bg.Render(string(s.Column), styles.Text)+bg.Space()+
				bg.Render(truncate(s.Text, 24), styles.Match))
	}

	if m.state.Sort.Order != grid.OrderNone {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+
				bg.Render(string(m.state.Sort.Column)+" "+m.state.Sort.Order.String(), styles.InfoText))
	}

	selStyle := styles.MutedText
	if m.state.Selection.Len() > 0 {
		selStyle = styles.SuccessText
	}
	parts = append(parts,
		bg.Render("Selected:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.state.Selection.Len()), selStyle))

	if m.notice != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.notice, styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(1).
		Render(strings.Join(parts, sep))
}

// filterSummary lists the committed filters in column order.
func (m Model) filterSummary() string {
	var parts []string
	for _, c := range m.cols {
		values := m.state.Filters.Values(c.Key)
		if len(values) == 0 {
			continue
		}
		parts = append(parts, string(c.Key)+"="+strings.Join(values, "|"))
	}
	return strings.Join(parts, " ")
}

// renderFooter renders the page indicator, row range, page size and short
// help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	pager := m.pager
	if pager.TotalPages > 10 {
		pager.Type = paginator.Arabic
	}
	pager.ActiveDot = bg.Render("•", styles.AccentText)
	pager.InactiveDot = bg.Render("○", styles.FaintText)

	first, last := 0, 0
	if len(m.view.Rows) > 0 {
		first = m.view.Start + 1
		last = m.view.Start + len(m.view.Rows)
	}

	parts := []string{
		bg.Render(pager.View(), styles.MutedText),
		bg.Render(fmt.Sprintf("Page %d of %d", m.view.Page.Current, m.totalPages()), styles.Text),
		bg.Render(fmt.Sprintf("%d-%d of %d", first, last, m.view.Total), styles.MutedText),
		bg.Render(fmt.Sprintf("%d / page", m.view.Page.Size), styles.MutedText),
	}

	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	h.Styles.Ellipsis = styles.FaintText
	var helpView string
	if m.showDiag {
		helpView = bg.Render("esc/D close · j/k scroll", styles.MutedText)
	} else {
		h.Width = max(m.width-40, 0)
		helpView = h.View(m.keys)
	}
	parts = append(parts, helpView)

	return styles.Footer.
		Width(m.width).
		MaxHeight(1).
		Render(bg.Join(parts, "  "))
}
