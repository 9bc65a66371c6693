// Package grid holds the row model behind the user table: column
// descriptors, the view state and the actions that change it, the filter
// and highlight matchers, sorting and pagination.
//
// # Columns
//
// Each column is described by a Column whose Kind selects its behaviour:
//
//   - KindSearch: free-text filter, case-insensitive substring match
//   - KindCategorical: fixed options, exact match against any selected option
//   - KindNumericSort: no filter, ascending/descending numeric order
//
// Columns returns the table's set: username and email pinned on the left,
// then name, age, gender, phone, location and nat.
//
// # State
//
// State is a plain value. It is changed only through Reduce, which applies
// one Action and returns the new state:
//
//	s := grid.NewState(20)
//	s = grid.Reduce(s, grid.Search{Column: grid.ColUsername, Value: "jo"})
//	v := grid.Derive(items, grid.Columns(), s)
//
// Search, Filter and Reset mirror the popover buttons. Search commits and
// closes, Filter commits and stays open, Reset clears the column filter and
// the search text but keeps the searched column. Any filter or sort change
// returns to the first page. The categorical column uses SetCategories and
// ResetCategories instead; several options together match any of them.
//
// # Highlighting
//
// SearchState.Segments splits a cell into plain and matched runs when the
// cell belongs to the searched column. Matching is literal and
// case-insensitive; text is NFC-normalised before comparison.
package grid
