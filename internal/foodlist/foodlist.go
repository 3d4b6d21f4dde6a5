// Package foodlist holds the food log of a session and the pure functions
// that derive views from a sequence of entries.
package foodlist

import (
	"slices"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/model"
)

// FoodList is the ordered, mutable food log. Users address entries from 1.
type FoodList struct {
	entries []model.Entry
}

// New returns an empty food list.
func New() *FoodList {
	return &FoodList{}
}

// FromEntries builds a list holding a copy of entries.
func FromEntries(entries []model.Entry) *FoodList {
	return &FoodList{entries: slices.Clone(entries)}
}

// Add appends entry to the end of the list.
func (l *FoodList) Add(entry model.Entry) {
	l.entries = append(l.entries, entry)
}

// RemoveAt deletes the entry at the 1-based index. The list is unchanged on error.
func (l *FoodList) RemoveAt(index int) (model.Entry, error) {
	rest, removed, err := DeleteAt(l.entries, index)
	if err != nil {
		return nil, err
	}
	l.entries = rest
	return removed, nil
}

// Get returns the entry at the 1-based index.
func (l *FoodList) Get(index int) (model.Entry, error) {
	if index < 1 || index > len(l.entries) {
		return nil, apperror.IndexOutOfRange(index, len(l.entries))
	}
	return l.entries[index-1], nil
}

func (l *FoodList) Size() int { return len(l.entries) }

// Entries returns a copy of the entries in list order.
func (l *FoodList) Entries() []model.Entry {
	return slices.Clone(l.entries)
}

// DatedEntries returns the entries narrowed to dated entries.
func (l *FoodList) DatedEntries() ([]model.DatedEntry, error) {
	return Dated(l.entries)
}

// Clear removes every entry.
func (l *FoodList) Clear() {
	l.entries = nil
}

// String renders the list with RenderNumbered.
func (l *FoodList) String() string {
	return RenderNumbered(l.entries)
}
