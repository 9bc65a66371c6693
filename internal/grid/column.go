package grid

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/users"
)

// ColumnKey names a view row field.
type ColumnKey string

const (
	ColUsername ColumnKey = "username"
	ColEmail    ColumnKey = "email"
	ColName     ColumnKey = "name"
	ColAge      ColumnKey = "age"
	ColGender   ColumnKey = "gender"
	ColPhone    ColumnKey = "phone"
	ColLocation ColumnKey = "location"
	ColNat      ColumnKey = "nat"
)

// Kind selects how a column filters or sorts.
type Kind int

const (
	// KindSearch columns filter by case-insensitive substring.
	KindSearch Kind = iota
	// KindCategorical columns filter by exact match against fixed options.
	KindCategorical
	// KindNumericSort columns sort numerically and have no filter.
	KindNumericSort
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindCategorical:
		return "categorical"
	case KindNumericSort:
		return "numeric-sort"
	default:
		return "unknown"
	}
}

// Option is one choice of a categorical column.
type Option struct {
	Label string
	Value string
}

// Column describes one table column.
type Column struct {
	Key     ColumnKey
	Title   string
	Width   int  // preferred width in cells
	Fixed   bool // pinned to the left edge
	Kind    Kind
	Options []Option // KindCategorical only
}

// Value returns the cell text of item for this column.
func (c Column) Value(item users.Item) string {
	return item.Field(string(c.Key))
}

// Filterable reports whether the column accepts a filter value.
func (c Column) Filterable() bool {
	return c.Kind == KindSearch || c.Kind == KindCategorical
}

// Sortable reports whether the column can be ordered.
func (c Column) Sortable() bool {
	return c.Kind == KindNumericSort
}

// Match reports whether item passes the filter values for this column.
// No values means no filter.
func (c Column) Match(item users.Item, values []string) bool {
	if len(values) == 0 {
		return true
	}
	switch c.Kind {
	case KindSearch:
		if values[0] == "" {
			return true
		}
		return Contains(c.Value(item), values[0])
	case KindCategorical:
		cell := c.Value(item)
		for _, v := range values {
			if cell == v {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func (c Column) number(item users.Item) int {
	n, err := strconv.Atoi(c.Value(item))
	if err != nil {
		return 0
	}
	return n
}

// Columns returns the table's column set in display order: the fixed columns
// first, then the scrolling ones.
func Columns() []Column {
	title := cases.Title(language.English)
	search := func(key ColumnKey, width int, fixed bool) Column {
		return Column{Key: key, Title: title.String(string(key)), Width: width, Fixed: fixed, Kind: KindSearch}
	}
	return []Column{
		search(ColUsername, 16, true),
		search(ColEmail, 28, true),
		search(ColName, 20, false),
		{Key: ColAge, Title: title.String(string(ColAge)), Width: 5, Kind: KindNumericSort},
		{
			Key:   ColGender,
			Title: title.String(string(ColGender)),
			Width: 8,
			Kind:  KindCategorical,
			Options: []Option{
				{Label: title.String("male"), Value: "male"},
				{Label: title.String("female"), Value: "female"},
			},
		},
		search(ColPhone, 14, false),
		search(ColLocation, 40, false),
		search(ColNat, 5, false),
	}
}

// Lookup finds the column with key.
func Lookup(cols []Column, key ColumnKey) (Column, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
