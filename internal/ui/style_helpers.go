package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/grid"
)

// BgStyle renders text on a fixed background color. Lipgloss resets the
// background between separately styled segments, so every segment and every
// gap must carry it explicitly.
// See: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string // cached styled space
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render renders text with style on the background, spaces included.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	return style.Background(b.bg).Render(text)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// FillLine pads rendered content to width with the background color.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).Render(content)
}

// Segments renders highlighter output: plain runs in style, matched runs in
// match (which keeps its own background).
func (b BgStyle) Segments(segs []grid.Segment, style, match lipgloss.Style) string {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Text == "" {
			continue
		}
		if seg.Match {
			sb.WriteString(match.Render(seg.Text))
			continue
		}
		sb.WriteString(b.Render(seg.Text, style))
	}
	return sb.String()
}
