package logic

import (
	"sort"

	"transferlist/internal/domain"
)

// Selection is the set of checked item values on one side
type Selection map[string]struct{}

// NewSelection creates a selection holding the given values
func NewSelection(values ...string) Selection {
	s := make(Selection, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Values collects the values of items into a selection
func Values(items []domain.Item) Selection {
	s := make(Selection, len(items))
	for _, item := range items {
		s[item.Value] = struct{}{}
	}
	return s
}

// Has checks if a value is selected
func (s Selection) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of selected values
func (s Selection) Len() int {
	return len(s)
}

// Toggle flips the selection state of a value
func (s Selection) Toggle(value string) {
	if s.Has(value) {
		delete(s, value)
	} else {
		s[value] = struct{}{}
	}
}

// Clone returns an independent copy
func (s Selection) Clone() Selection {
	c := make(Selection, len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Sorted returns the selected values in lexical order
func (s Selection) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Equal reports whether both selections hold the same values
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Reconcile drops selected values that are not among the visible items.
// Stale entries would otherwise let a later transfer act on hidden items.
func Reconcile(sel Selection, visible []domain.Item) Selection {
	reconciled := make(Selection, len(sel))
	for _, item := range visible {
		if sel.Has(item.Value) {
			reconciled[item.Value] = struct{}{}
		}
	}
	return reconciled
}
