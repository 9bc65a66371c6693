package grid

// Filters holds the committed filter values per column. A search column has
// at most one value; a categorical column may have several.
type Filters map[ColumnKey][]string

// Values returns the committed values for col.
func (f Filters) Values(col ColumnKey) []string {
	return f[col]
}

// Value returns the first committed value for col, or "".
func (f Filters) Value(col ColumnKey) string {
	if v := f[col]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Active reports whether col has a committed filter.
func (f Filters) Active(col ColumnKey) bool {
	return len(f[col]) > 0
}

func (f Filters) with(col ColumnKey, values []string) Filters {
	out := make(Filters, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	var kept []string
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(out, col)
		return out
	}
	out[col] = kept
	return out
}

// Popover tracks the per-column filter dropdown.
type Popover struct {
	Open   bool
	Column ColumnKey
}

// State is everything the table view derives its rows from.
type State struct {
	Search    SearchState
	Filters   Filters
	Sort      Sort
	Page      Pagination
	Popover   Popover
	Selection Selection
}

// NewState returns the initial view state for the given page size.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Filters: Filters{},
		Page:    Pagination{Current: 1, Size: pageSize},
	}
}

// Action is a state transition. The set of actions is closed.
type Action interface {
	apply(State) State
}

// Reduce applies a to s and returns the new state. s is not modified.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Open shows the filter popover for Column.
type Open struct {
	Column ColumnKey
}

func (a Open) apply(s State) State {
	s.Popover = Popover{Open: true, Column: a.Column}
	return s
}

// Close hides the popover without touching any filter.
type Close struct{}

func (Close) apply(s State) State {
	s.Popover.Open = false
	return s
}

// Search commits Value as the column filter, records it as the highlighted
// search and closes the popover.
type Search struct {
	Column ColumnKey
	Value  string
}

func (a Search) apply(s State) State {
	s = commit(s, a.Column, a.Value)
	s.Popover.Open = false
	return s
}

// Filter commits like Search but keeps the popover open.
type Filter struct {
	Column ColumnKey
	Value  string
}

func (a Filter) apply(s State) State {
	return commit(s, a.Column, a.Value)
}

func commit(s State, col ColumnKey, value string) State {
	s.Filters = s.Filters.with(col, []string{value})
	s.Search = SearchState{Text: value, Column: col}
	s.Page.Current = 1
	return s
}

// Reset clears the column filter and the search text. The searched column
// is left as it was.
type Reset struct {
	Column ColumnKey
}

func (a Reset) apply(s State) State {
	s.Filters = s.Filters.with(a.Column, nil)
	s.Search.Text = ""
	s.Page.Current = 1
	return s
}

// SetCategories commits the selected options of a categorical column and
// closes the popover. An empty list removes the filter.
type SetCategories struct {
	Column ColumnKey
	Values []string
}

func (a SetCategories) apply(s State) State {
	s.Filters = s.Filters.with(a.Column, a.Values)
	s.Page.Current = 1
	s.Popover.Open = false
	return s
}

// ResetCategories clears a categorical column's filter. The popover stays
// open.
type ResetCategories struct {
	Column ColumnKey
}

func (a ResetCategories) apply(s State) State {
	s.Filters = s.Filters.with(a.Column, nil)
	s.Page.Current = 1
	return s
}

// ToggleSort advances the column's sort order: none, ascend, descend, none.
type ToggleSort struct {
	Column ColumnKey
}

func (a ToggleSort) apply(s State) State {
	order := OrderAscend
	if s.Sort.Column == a.Column {
		order = s.Sort.Order.Next()
	}
	return SetSort{Column: a.Column, Order: order}.apply(s)
}

// SetSort orders rows by Column.
type SetSort struct {
	Column ColumnKey
	Order  Order
}

func (a SetSort) apply(s State) State {
	if a.Order == OrderNone {
		s.Sort = Sort{}
	} else {
		s.Sort = Sort{Column: a.Column, Order: a.Order}
	}
	s.Page.Current = 1
	return s
}

// SetPage moves to Page.
type SetPage struct {
	Page int
}

func (a SetPage) apply(s State) State {
	s.Page.Current = max(a.Page, 1)
	return s
}

// SetPageSize changes the page size and the current page together.
type SetPageSize struct {
	Page int
	Size int
}

func (a SetPageSize) apply(s State) State {
	if a.Size > 0 {
		s.Page.Size = a.Size
	}
	s.Page.Current = max(a.Page, 1)
	return s
}

// ToggleRow flips the selection of one row.
type ToggleRow struct {
	Key string
}

func (a ToggleRow) apply(s State) State {
	if s.Selection.Has(a.Key) {
		s.Selection = s.Selection.without(a.Key)
	} else {
		s.Selection = s.Selection.with(a.Key)
	}
	return s
}

// TogglePage selects every key in Keys, or clears them all when they are
// already selected.
type TogglePage struct {
	Keys []string
}

func (a TogglePage) apply(s State) State {
	all := len(a.Keys) > 0
	for _, k := range a.Keys {
		if !s.Selection.Has(k) {
			all = false
			break
		}
	}
	for _, k := range a.Keys {
		if all {
			s.Selection = s.Selection.without(k)
		} else if !s.Selection.Has(k) {
			s.Selection = s.Selection.with(k)
		}
	}
	return s
}

// ClearSelection deselects every row.
type ClearSelection struct{}

func (ClearSelection) apply(s State) State {
	s.Selection = Selection{}
	return s
}
