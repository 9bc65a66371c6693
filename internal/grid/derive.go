package grid

import (
	"sort"

	"github.com/five82/roster/internal/users"
)

// DefaultPageSize is the number of rows per page before the user changes it.
const DefaultPageSize = 20

// PageSizes are the sizes offered by the size changer.
var PageSizes = []int{10, 20, 50, 100}

// NextPageSize returns the size after (dir > 0) or before current in PageSizes.
func NextPageSize(current, dir int) int {
	idx := -1
	for i, s := range PageSizes {
		if s == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return DefaultPageSize
	}
	idx += dir
	idx = min(max(idx, 0), len(PageSizes)-1)
	return PageSizes[idx]
}

// Order is a sort direction.
type Order int

const (
	OrderNone Order = iota
	OrderAscend
	OrderDescend
)

// Next cycles none, ascend, descend, none.
func (o Order) Next() Order {
	switch o {
	case OrderNone:
		return OrderAscend
	case OrderAscend:
		return OrderDescend
	default:
		return OrderNone
	}
}

func (o Order) String() string {
	switch o {
	case OrderAscend:
		return "ascend"
	case OrderDescend:
		return "descend"
	default:
		return "none"
	}
}

// Sort names the ordered column. The zero value keeps fixture order.
type Sort struct {
	Column ColumnKey
	Order  Order
}

// Pagination is the controlled page state. Current is 1-based.
type Pagination struct {
	Current int
	Size    int
}

// TotalPages returns the page count for total rows; never less than one.
func (p Pagination) TotalPages(total int) int {
	size := p.size()
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Clamp keeps Current within the pages available for total rows.
func (p Pagination) Clamp(total int) Pagination {
	p.Size = p.size()
	p.Current = min(max(p.Current, 1), p.TotalPages(total))
	return p
}

// Bounds returns the half-open slice bounds of the current page.
func (p Pagination) Bounds(total int) (start, end int) {
	p = p.Clamp(total)
	start = (p.Current - 1) * p.Size
	end = min(start+p.Size, total)
	if start > end {
		start = end
	}
	return start, end
}

func (p Pagination) size() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

// View is the row model derived from the items and the view state.
type View struct {
	Rows  []users.Item // rows of the current page
	Total int          // rows passing every filter
	Start int          // index of Rows[0] within the filtered rows
	Page  Pagination   // clamped to Total
}

// Derive filters, sorts and paginates items. items is not modified.
func Derive(items []users.Item, cols []Column, s State) View {
	rows := Apply(items, cols, s.Filters)
	rows = SortRows(rows, cols, s.Sort)

	page := s.Page.Clamp(len(rows))
	start, end := page.Bounds(len(rows))
	return View{
		Rows:  rows[start:end],
		Total: len(rows),
		Start: start,
		Page:  page,
	}
}

// Apply returns the items passing every active column filter, in order.
func Apply(items []users.Item, cols []Column, filters Filters) []users.Item {
	out := make([]users.Item, 0, len(items))
	for _, it := range items {
		if passes(it, cols, filters) {
			out = append(out, it)
		}
	}
	return out
}

func passes(item users.Item, cols []Column, filters Filters) bool {
	for _, c := range cols {
		if !c.Filterable() {
			continue
		}
		if !c.Match(item, filters.Values(c.Key)) {
			return false
		}
	}
	return true
}

// SortRows orders rows by a numeric-sort column. Ties keep their input order.
// rows is sorted in place and returned.
func SortRows(rows []users.Item, cols []Column, s Sort) []users.Item {
	if s.Order == OrderNone {
		return rows
	}
	col, ok := Lookup(cols, s.Column)
	if !ok || !col.Sortable() {
		return rows
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := col.number(rows[i]), col.number(rows[j])
		if s.Order == OrderDescend {
			return a > b
		}
		return a < b
	})
	return rows
}
