package ctab

import (
	"iter"
	"time"
)

// Iterator produces the matching timestamps of a Spec in increasing order.
// It checks every wall-clock minute from its start in the start's
// location, so a start with non-zero seconds yields timestamps with the
// same seconds. Across a daylight saving change a repeated wall-clock
// minute is checked once and a skipped one not at all. An Iterator holds
// no resources and may simply be dropped. It is not safe for concurrent
// use.
type Iterator struct {
	spec   Spec
	cursor time.Time
}

// Iterate returns an Iterator whose first candidate is start itself.
// A zero start means time.Now().
func (s Spec) Iterate(start time.Time) *Iterator {
	if start.IsZero() {
		start = time.Now()
	}
	return &Iterator{spec: s, cursor: start}
}

// Next returns the next matching timestamp. It tests and advances one
// minute at a time and never gives up: for a Spec that matches nothing
// Next does not return. Bound the search with Take or a loop counter
// when the Spec comes from untrusted input, or check it with Validate.
func (it *Iterator) Next() time.Time {
	for {
		t := it.cursor
		it.cursor = nextMinute(it.cursor)
		if it.spec.Matches(t) {
			return t
		}
	}
}

// NextBefore is Next with a horizon: it returns false once the candidate
// reaches limit, leaving the Iterator positioned at the first unchecked
// minute.
func (it *Iterator) NextBefore(limit time.Time) (time.Time, bool) {
	for it.cursor.Before(limit) {
		t := it.cursor
		it.cursor = nextMinute(it.cursor)
		if it.spec.Matches(t) {
			return t, true
		}
	}
	return time.Time{}, false
}

// nextMinute advances t by one minute of wall-clock time. When the next
// wall-clock minute falls in a daylight saving gap, time.Date may
// normalize it backwards; elapsed time is used there instead.
func nextMinute(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	next := time.Date(year, month, day, hour, minute+1, sec, t.Nanosecond(), t.Location())
	if !next.After(t) {
		return t.Add(time.Minute)
	}
	return next
}

// All returns the sequence produced by Iterate(start). The sequence is
// infinite; stop ranging over it to stop the search.
func (s Spec) All(start time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		it := s.Iterate(start)
		for {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Take collects the first n values of seq. n <= 0 yields nil.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
