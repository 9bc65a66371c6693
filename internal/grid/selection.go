package grid

import "github.com/five82/roster/internal/users"

// Selection is an ordered set of selected row keys. The zero value is empty.
type Selection struct {
	keys []string
}

// Has reports whether key is selected.
func (s Selection) Has(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

// Len returns the number of selected rows.
func (s Selection) Len() int {
	return len(s.keys)
}

// Keys returns the selected keys in selection order.
func (s Selection) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Rows returns the items whose keys are selected, in selection order.
func (s Selection) Rows(items []users.Item) []users.Item {
	byKey := make(map[string]users.Item, len(items))
	for _, it := range items {
		byKey[it.Key()] = it
	}
	rows := make([]users.Item, 0, len(s.keys))
	for _, k := range s.keys {
		if it, ok := byKey[k]; ok {
			rows = append(rows, it)
		}
	}
	return rows
}

// Equal reports whether both selections hold the same keys in the same order.
func (s Selection) Equal(other Selection) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i := range s.keys {
		if s.keys[i] != other.keys[i] {
			return false
		}
	}
	return true
}

func (s Selection) with(key string) Selection {
	keys := make([]string, len(s.keys), len(s.keys)+1)
	copy(keys, s.keys)
	return Selection{keys: append(keys, key)}
}

func (s Selection) without(key string) Selection {
	keys := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	return Selection{keys: keys}
}

// CheckboxProps describes the checkbox rendered for a row.
type CheckboxProps struct {
	Disabled bool
	Name     string
}

// CheckboxPropsFor returns the checkbox of item. Every row is selectable.
func CheckboxPropsFor(item users.Item) CheckboxProps {
	return CheckboxProps{Name: item.Email}
}

// Observer receives the selection side effects of the table. They are
// diagnostic only.
type Observer interface {
	SelectionChanged(keys []string, rows []users.Item)
	CheckboxQueried(item users.Item, props CheckboxProps)
}
