package grid

import (
	"reflect"
	"testing"
)

func TestReduce_SearchCommitsAndCloses(t *testing.T) {
	s := NewState(20)
	s = Reduce(s, Open{Column: ColUsername})
	if !s.Popover.Open || s.Popover.Column != ColUsername {
		t.Fatalf("Popover = %#v, want open on username", s.Popover)
	}
	s.Page.Current = 3

	s = Reduce(s, Search{Column: ColUsername, Value: "jo"})
	if s.Popover.Open {
		t.Fatalf("Search should close the popover")
	}
	if got := s.Filters.Value(ColUsername); got != "jo" {
		t.Fatalf("filter = %q, want jo", got)
	}
	if s.Search != (SearchState{Text: "jo", Column: ColUsername}) {
		t.Fatalf("Search = %#v", s.Search)
	}
	if s.Page.Current != 1 {
		t.Fatalf("Page.Current = %d, want 1 after filtering", s.Page.Current)
	}
}

func TestReduce_FilterKeepsPopoverOpen(t *testing.T) {
	s := Reduce(NewState(20), Open{Column: ColEmail})
	s = Reduce(s, Filter{Column: ColEmail, Value: "example"})
	if !s.Popover.Open {
		t.Fatalf("Filter should keep the popover open")
	}
	if s.Search != (SearchState{Text: "example", Column: ColEmail}) || s.Filters.Value(ColEmail) != "example" {
		t.Fatalf("state = %#v", s)
	}
}

func TestReduce_ResetClearsTextButKeepsColumn(t *testing.T) {
	s := NewState(20)
	s = Reduce(s, Search{Column: ColName, Value: "ann"})
	s = Reduce(s, Search{Column: ColEmail, Value: "example"})
	s = Reduce(s, Open{Column: ColEmail})

	s = Reduce(s, Reset{Column: ColEmail})
	if s.Filters.Active(ColEmail) {
		t.Fatalf("email filter still active: %#v", s.Filters)
	}
	if s.Search.Text != "" {
		t.Fatalf("Search.Text = %q, want empty", s.Search.Text)
	}
	if s.Search.Column != ColEmail {
		t.Fatalf("Search.Column = %q, want email kept", s.Search.Column)
	}
	if got := s.Filters.Value(ColName); got != "ann" {
		t.Fatalf("name filter = %q, want ann untouched", got)
	}
	if !s.Popover.Open {
		t.Fatalf("Reset should not close the popover")
	}

	// Resetting a column without a filter is harmless.
	again := Reduce(s, Reset{Column: ColPhone})
	if !reflect.DeepEqual(again.Filters, s.Filters) {
		t.Fatalf("Reset(phone) changed filters: %#v", again.Filters)
	}
}

func TestReduce_CloseChangesNothingElse(t *testing.T) {
	s := Reduce(NewState(20), Search{Column: ColNat, Value: "fr"})
	s = Reduce(s, Open{Column: ColNat})
	closed := Reduce(s, Close{})
	if closed.Popover.Open {
		t.Fatalf("Close left popover open")
	}
	closed.Popover = s.Popover
	if !reflect.DeepEqual(closed, s) {
		t.Fatalf("Close changed state:\n got %#v\nwant %#v", closed, s)
	}
}

func TestReduce_EmptySearchRemovesFilter(t *testing.T) {
	s := Reduce(NewState(20), Search{Column: ColPhone, Value: "01"})
	s = Reduce(s, Search{Column: ColPhone, Value: ""})
	if s.Filters.Active(ColPhone) {
		t.Fatalf("empty value should remove the filter")
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Reduce(NewState(20), Search{Column: ColName, Value: "a"})
	_ = Reduce(before, Search{Column: ColName, Value: "b"})
	_ = Reduce(before, Reset{Column: ColName})
	if got := before.Filters.Value(ColName); got != "a" {
		t.Fatalf("input filters mutated: %q", got)
	}
}

func TestReduce_Categories(t *testing.T) {
	s := Reduce(NewState(20), Open{Column: ColGender})
	s = Reduce(s, SetCategories{Column: ColGender, Values: []string{"male"}})
	if s.Popover.Open {
		t.Fatalf("SetCategories should close the popover")
	}
	if !reflect.DeepEqual(s.Filters.Values(ColGender), []string{"male"}) {
		t.Fatalf("gender filter = %#v", s.Filters.Values(ColGender))
	}
	if s.Search != (SearchState{}) {
		t.Fatalf("categorical filter must not touch search state: %#v", s.Search)
	}
	s = Reduce(s, SetCategories{Column: ColGender})
	if s.Filters.Active(ColGender) {
		t.Fatalf("empty categories should clear the filter")
	}

	s = Reduce(s, SetCategories{Column: ColGender, Values: []string{"male", "female"}})
	s = Reduce(s, Open{Column: ColGender})
	s.Page.Current = 2
	s = Reduce(s, ResetCategories{Column: ColGender})
	if s.Filters.Active(ColGender) || !s.Popover.Open || s.Page.Current != 1 {
		t.Fatalf("after ResetCategories: %#v", s)
	}
}

func TestReduce_ToggleSortCycles(t *testing.T) {
	s := NewState(20)
	want := []Order{OrderAscend, OrderDescend, OrderNone, OrderAscend}
	for i, w := range want {
		s = Reduce(s, ToggleSort{Column: ColAge})
		if s.Sort.Order != w {
			t.Fatalf("step %d: Order = %v, want %v", i, s.Sort.Order, w)
		}
	}
}

func TestReduce_Paging(t *testing.T) {
	s := Reduce(NewState(20), SetPageSize{Page: 1, Size: 10})
	s = Reduce(s, SetPage{Page: 2})
	if s.Page != (Pagination{Current: 2, Size: 10}) {
		t.Fatalf("Page = %#v", s.Page)
	}
	s = Reduce(s, SetPage{Page: -4})
	if s.Page.Current != 1 {
		t.Fatalf("Page.Current = %d, want 1", s.Page.Current)
	}
	s = Reduce(s, SetPageSize{Page: 3, Size: 0})
	if s.Page.Size != 10 || s.Page.Current != 3 {
		t.Fatalf("zero size should keep size: %#v", s.Page)
	}
}

func TestReduce_Selection(t *testing.T) {
	s := NewState(20)
	s = Reduce(s, ToggleRow{Key: "a"})
	s = Reduce(s, ToggleRow{Key: "b"})
	if !reflect.DeepEqual(s.Selection.Keys(), []string{"a", "b"}) {
		t.Fatalf("Keys = %v", s.Selection.Keys())
	}
	s = Reduce(s, ToggleRow{Key: "a"})
	if !reflect.DeepEqual(s.Selection.Keys(), []string{"b"}) {
		t.Fatalf("Keys after untoggle = %v", s.Selection.Keys())
	}

	s = Reduce(s, TogglePage{Keys: []string{"b", "c"}})
	if !reflect.DeepEqual(s.Selection.Keys(), []string{"b", "c"}) {
		t.Fatalf("TogglePage should select missing keys, got %v", s.Selection.Keys())
	}
	s = Reduce(s, TogglePage{Keys: []string{"b", "c"}})
	if s.Selection.Len() != 0 {
		t.Fatalf("TogglePage on a fully selected page should clear it, got %v", s.Selection.Keys())
	}

	s = Reduce(s, ToggleRow{Key: "z"})
	s = Reduce(s, ClearSelection{})
	if s.Selection.Len() != 0 {
		t.Fatalf("ClearSelection left %v", s.Selection.Keys())
	}
}

func TestReduce_NilAction(t *testing.T) {
	s := NewState(0)
	if got := Reduce(s, nil); got.Page != s.Page {
		t.Fatalf("Reduce(nil) changed state")
	}
	if s.Page.Size != DefaultPageSize {
		t.Fatalf("NewState(0).Page.Size = %d, want %d", s.Page.Size, DefaultPageSize)
	}
}
