package foodlist

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/model"
)

// mapList applies fn to every element, preserving order.
func mapList[T, R any](list []T, fn func(T) R) []R {
	out := make([]R, 0, len(list))
	for _, x := range list {
		out = append(out, fn(x))
	}
	return out
}

// filterList keeps the elements matching keep, preserving order.
func filterList[T any](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, x := range list {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func renderNumbered(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, line)
	}
	return b.String()
}

// RenderNumbered renders one entry per line, numbered from 1.
func RenderNumbered(entries []model.Entry) string {
	return renderNumbered(ToStrings(entries))
}

// RenderNumberedDated is RenderNumbered using the dated rendering.
func RenderNumberedDated(entries []model.DatedEntry) string {
	return renderNumbered(mapList(entries, model.DatedEntry.DatedString))
}

// DeleteAt removes the entry at the 1-based index. It returns the compacted
// copy of entries and the removed entry; entries itself is left untouched.
func DeleteAt(entries []model.Entry, index int) ([]model.Entry, model.Entry, error) {
	if index < 1 || index > len(entries) {
		return nil, nil, apperror.IndexOutOfRange(index, len(entries))
	}
	removed := entries[index-1]
	rest := make([]model.Entry, 0, len(entries)-1)
	rest = append(rest, entries[:index-1]...)
	rest = append(rest, entries[index:]...)
	return rest, removed, nil
}

// ToStrings returns the String form of every entry, in order.
func ToStrings(entries []model.Entry) []string {
	return mapList(entries, model.Entry.String)
}

// ToFoods returns the unscaled foods.
func ToFoods(entries []model.Entry) []model.Food {
	return mapList(entries, model.Entry.Food)
}

// ToPortionedFoods returns each food with its macros multiplied by the
// entry's portion size.
func ToPortionedFoods(entries []model.Entry) []model.Food {
	return mapList(entries, func(e model.Entry) model.Food {
		return e.Food().Scale(e.PortionSize())
	})
}

// ToPortionSizes returns the portion size of every entry, in order.
func ToPortionSizes(entries []model.Entry) []int {
	return mapList(entries, model.Entry.PortionSize)
}

// ToTimestamps returns the timestamp of every entry, in order.
func ToTimestamps(entries []model.DatedEntry) []time.Time {
	return mapList(entries, model.DatedEntry.DateTime)
}

// FilterSince keeps entries logged at or after cutoff.
func FilterSince(entries []model.DatedEntry, cutoff time.Time) []model.DatedEntry {
	return filterList(entries, func(e model.DatedEntry) bool {
		return !e.DateTime().Before(cutoff)
	})
}

// FilterRange keeps entries logged within [start, end]. start must be before
// end; callers validate user supplied bounds first.
func FilterRange(entries []model.DatedEntry, start, end time.Time) []model.DatedEntry {
	if !start.Before(end) {
		panic(fmt.Sprintf("foodlist: range start %s is not before end %s", start, end))
	}
	return filterList(entries, func(e model.DatedEntry) bool {
		t := e.DateTime()
		return !t.Before(start) && !t.After(end)
	})
}

// SortByDate returns a copy sorted by timestamp. Entries logged in the same
// minute keep their relative order.
func SortByDate(entries []model.DatedEntry) []model.DatedEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, model.DatedEntry.Compare)
	return sorted
}

// Dated narrows entries to dated entries. It fails on the first plain entry.
func Dated(entries []model.Entry) ([]model.DatedEntry, error) {
	out := make([]model.DatedEntry, 0, len(entries))
	for i, e := range entries {
		d, ok := e.(model.DatedEntry)
		if !ok {
			return nil, apperror.UndatedEntry(i + 1)
		}
		out = append(out, d)
	}
	return out, nil
}

// Total sums foods into a single food named "Total".
func Total(foods []model.Food) model.Food {
	total, _ := model.NewFood("Total", decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	for _, f := range foods {
		total = total.Add(f)
	}
	return total
}
