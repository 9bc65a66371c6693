package app

import (
	"fmt"
	"strings"

	"github.com/five82/roster/internal/grid"
)

// ViewFlags are the command-line view settings, applied to the initial
// table state in the same order a user would apply them.
type ViewFlags struct {
	Filters []string // "column=value"
	Genders []string
	Sort    string // "", "asc" or "desc"
	Page    int
}

// Actions converts the flags into grid actions: filters, categories, sort
// and finally the page, since filtering and sorting reset it.
func (f ViewFlags) Actions(cols []grid.Column) ([]grid.Action, error) {
	var actions []grid.Action

	for _, raw := range f.Filters {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("filter %q: want column=value", raw)
		}
		col, ok := grid.Lookup(cols, grid.ColumnKey(strings.ToLower(strings.TrimSpace(name))))
		if !ok {
			return nil, fmt.Errorf("filter %q: unknown column %q", raw, name)
		}
		if col.Kind != grid.KindSearch {
			return nil, fmt.Errorf("filter %q: column %s is not searchable", raw, col.Key)
		}
		actions = append(actions, grid.Search{Column: col.Key, Value: value})
	}

	if len(f.Genders) > 0 {
		col, ok := categorical(cols)
		if !ok {
			return nil, fmt.Errorf("no categorical column to filter")
		}
		values := make([]string, 0, len(f.Genders))
		for _, g := range f.Genders {
			v := strings.ToLower(strings.TrimSpace(g))
			if !hasOption(col, v) {
				return nil, fmt.Errorf("%s %q: want one of %s", col.Key, g, optionList(col))
			}
			values = append(values, v)
		}
		actions = append(actions, grid.SetCategories{Column: col.Key, Values: values})
	}

	if f.Sort != "" {
		col, ok := sortable(cols)
		if !ok {
			return nil, fmt.Errorf("no sortable column")
		}
		var order grid.Order
		switch strings.ToLower(f.Sort) {
		case "asc", "ascend":
			order = grid.OrderAscend
		case "desc", "descend":
			order = grid.OrderDescend
		default:
			return nil, fmt.Errorf("sort %q: want asc or desc", f.Sort)
		}
		actions = append(actions, grid.SetSort{Column: col.Key, Order: order})
	}

	if f.Page > 0 {
		actions = append(actions, grid.SetPage{Page: f.Page})
	}
	return actions, nil
}

func categorical(cols []grid.Column) (grid.Column, bool) {
	for _, c := range cols {
		if c.Kind == grid.KindCategorical {
			return c, true
		}
	}
	return grid.Column{}, false
}

func sortable(cols []grid.Column) (grid.Column, bool) {
	for _, c := range cols {
		if c.Sortable() {
			return c, true
		}
	}
	return grid.Column{}, false
}

func hasOption(col grid.Column, value string) bool {
	for _, o := range col.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func optionList(col grid.Column) string {
	values := make([]string, len(col.Options))
	for i, o := range col.Options {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}
