package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// search returns the index where day is, or would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history.
//
// Existing value at that date are overwritten.
func (h *History[T]) Append(on Date, q T) *History[T] {
	i, found := h.search(on)
	if found {
		// Found a point at that exact same instant.
		// We choose to replace, because it will give higher priority to the last data
		h.values[i] = q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	var value T
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return value, false
}

// Nearest returns the value recorded at the closest date within maxDays of day.
//
// Candidates are probed outward one day at a time, earlier before later
// (day-1, day+1, day-2, day+2, ...), so an earlier date only wins a tie.
func (h *History[T]) Nearest(day Date, maxDays int) (T, Date, bool) {
	if v, ok := h.Get(day); ok {
		return v, day, true
	}
	for offset := 1; offset <= maxDays; offset++ {
		if v, ok := h.Get(day.Add(-offset)); ok {
			return v, day.Add(-offset), true
		}
		if v, ok := h.Get(day.Add(offset)); ok {
			return v, day.Add(offset), true
		}
	}
	var zero T
	return zero, Date{}, false
}
