package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/roster/internal/grid"
	"github.com/five82/roster/internal/users"
)

// Print writes the page selected by s as aligned text followed by a
// one-line page summary.
func Print(w io.Writer, items []users.Item, cols []grid.Column, s grid.State) error {
	view := grid.Derive(items, cols, s)

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.Title)
		for _, row := range view.Rows {
			widths[i] = max(widths[i], runewidth.StringWidth(c.Value(row)))
		}
	}

	out := bufio.NewWriter(w)
	writeLine := func(cells []string) {
		for i := range cells[:len(cells)-1] {
			cells[i] = runewidth.FillRight(cells[i], widths[i])
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = strings.ToUpper(c.Title)
	}
	writeLine(header)

	for _, row := range view.Rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(row)
		}
		writeLine(cells)
	}

	first, last := 0, 0
	if len(view.Rows) > 0 {
		first, last = view.Start+1, view.Start+len(view.Rows)
	}
	fmt.Fprintf(out, "\npage %d of %d, rows %d-%d of %d\n",
		view.Page.Current, view.Page.TotalPages(view.Total), first, last, view.Total)

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
