package ctab

import (
	"slices"
	"strconv"
	"strings"
)

// span is the arithmetic progression lo, lo+step, ... up to hi.
// hi is always a member.
type span struct {
	lo, hi, step int
}

func (sp span) contains(v int) bool {
	return v >= sp.lo && v <= sp.hi && (v-sp.lo)%sp.step == 0
}

// newSpan normalizes [lo, hi] with stride step. ok is false for a
// reversed range.
func newSpan(lo, hi, step int) (span, bool) {
	if lo > hi {
		return span{}, false
	}
	return span{lo: lo, hi: lo + (hi-lo)/step*step, step: step}, true
}

// ValueSet is an immutable set of integers selected for one field.
// The zero value is the empty set.
//
// Items are stored as progressions, so Contains costs one check per item
// regardless of range width. Values, Len, Equal and String enumerate every
// member and cost time proportional to the set size.
type ValueSet struct {
	spans []span
}

// newValueSet builds a set holding exactly the given values.
func newValueSet(values ...int) ValueSet {
	spans := make([]span, len(values))
	for i, v := range values {
		spans[i] = span{lo: v, hi: v, step: 1}
	}
	return ValueSet{spans: spans}
}

// with returns a copy of s that also holds v.
func (s ValueSet) with(v int) ValueSet {
	spans := append(s.spans[:len(s.spans):len(s.spans)], span{lo: v, hi: v, step: 1})
	return ValueSet{spans: spans}
}

// Contains reports whether v is in the set.
func (s ValueSet) Contains(v int) bool {
	for _, sp := range s.spans {
		if sp.contains(v) {
			return true
		}
	}
	return false
}

// bounds returns the smallest and largest member. ok is false for the
// empty set.
func (s ValueSet) bounds() (lo, hi int, ok bool) {
	for i, sp := range s.spans {
		if i == 0 || sp.lo < lo {
			lo = sp.lo
		}
		if i == 0 || sp.hi > hi {
			hi = sp.hi
		}
	}
	return lo, hi, len(s.spans) > 0
}

// Len returns the number of values in the set.
func (s ValueSet) Len() int {
	return len(s.Values())
}

// Values returns the members in ascending order. The slice is a copy.
func (s ValueSet) Values() []int {
	out := make([]int, 0, len(s.spans))
	for _, sp := range s.spans {
		for v := sp.lo; ; v += sp.step {
			out = append(out, v)
			if v == sp.hi {
				break
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Equal reports whether both sets hold the same values.
func (s ValueSet) Equal(other ValueSet) bool {
	return slices.Equal(s.Values(), other.Values())
}

// String renders the set in expression syntax: ascending, comma
// separated, with runs of three or more consecutive values written as
// "a-b". The empty set renders as "".
func (s ValueSet) String() string {
	values := s.Values()
	var parts []string
	for i := 0; i < len(values); {
		j := i
		for j+1 < len(values) && values[j+1] == values[j]+1 {
			j++
		}
		switch {
		case j-i >= 2:
			parts = append(parts, strconv.Itoa(values[i])+"-"+strconv.Itoa(values[j]))
		case j == i+1:
			parts = append(parts, strconv.Itoa(values[i]), strconv.Itoa(values[j]))
		default:
			parts = append(parts, strconv.Itoa(values[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
