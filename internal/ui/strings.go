package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/roster/internal/grid"
)

const ellipsis = "…"

// truncate shortens value to at most limit terminal cells, ending with an
// ellipsis when cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	return runewidth.Truncate(value, limit, ellipsis)
}

// fitSegments cuts segs to width cells, marking the cut with an ellipsis,
// and returns the visible segments with their total width.
func fitSegments(segs []grid.Segment, width int) ([]grid.Segment, int) {
	total := 0
	for _, s := range segs {
		total += runewidth.StringWidth(s.Text)
	}
	if total <= width {
		return segs, total
	}
	if width <= 0 {
		return nil, 0
	}

	budget := width - runewidth.StringWidth(ellipsis)
	var out []grid.Segment
	used := 0
	for _, s := range segs {
		if budget <= used {
			break
		}
		var sb strings.Builder
		for _, r := range s.Text {
			w := runewidth.RuneWidth(r)
			if used+w > budget {
				break
			}
			sb.WriteRune(r)
			used += w
		}
		if sb.Len() > 0 {
			out = append(out, grid.Segment{Text: sb.String(), Match: s.Match})
		}
	}
	out = append(out, grid.Segment{Text: ellipsis})
	return out, used + runewidth.StringWidth(ellipsis)
}

// padCell pads or truncates text to exactly width cells.
func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = runewidth.Truncate(text, width, ellipsis)
	return runewidth.FillRight(text, width)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
