package ctab

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Spec is a parsed schedule: one set of accepted values per field.
// A Spec is immutable and safe for concurrent use. The zero Spec has
// five empty sets and matches nothing.
type Spec struct {
	sets [len(Fields)]ValueSet
}

// newSpec builds a Spec from per-field sets, in expression order, and
// applies the day-of-week alias: 0 implies 7.
func newSpec(fields [len(Fields)]ValueSet) Spec {
	dow := fields[DayOfWeek.index()]
	if dow.Contains(0) && !dow.Contains(7) {
		fields[DayOfWeek.index()] = dow.with(7)
	}
	return Spec{sets: fields}
}

// Field returns the set for f. An invalid field yields the empty set.
func (s Spec) Field(f Field) ValueSet {
	if !f.IsValid() {
		return ValueSet{}
	}
	return s.sets[f.index()]
}

// Minute returns the minute set.
func (s Spec) Minute() ValueSet { return s.sets[Minute.index()] }

// Hour returns the hour set.
func (s Spec) Hour() ValueSet { return s.sets[Hour.index()] }

// DayOfMonth returns the day-of-month set.
func (s Spec) DayOfMonth() ValueSet { return s.sets[DayOfMonth.index()] }

// Month returns the month set.
func (s Spec) Month() ValueSet { return s.sets[Month.index()] }

// DayOfWeek returns the day-of-week set. It holds 7 whenever it holds 0.
func (s Spec) DayOfWeek() ValueSet { return s.sets[DayOfWeek.index()] }

// Matches reports whether t satisfies every field of the schedule.
// Day-of-month and day-of-week must both match. Sunday is checked as 7,
// Monday as 1. t is evaluated in its own location.
func (s Spec) Matches(t time.Time) bool {
	return s.Minute().Contains(t.Minute()) &&
		s.Hour().Contains(t.Hour()) &&
		s.DayOfMonth().Contains(t.Day()) &&
		s.Month().Contains(int(t.Month())) &&
		s.DayOfWeek().Contains(weekday(t))
}

// weekday numbers days Monday=1 through Sunday=7.
func weekday(t time.Time) int {
	if d := t.Weekday(); d != time.Sunday {
		return int(d)
	}
	return 7
}

// Validate checks the Spec against the field domains. It returns
// ErrEmptyField for the first field that selects nothing and
// ErrOutOfRange for the first field holding a value outside its domain.
func (s Spec) Validate() error {
	for _, f := range Fields {
		first, last, ok := s.Field(f).bounds()
		if !ok {
			return fmt.Errorf("%w: %s", ErrEmptyField, f)
		}
		lo, hi := f.Domain()
		for _, v := range []int{first, last} {
			if v < lo || v > hi {
				return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, f, v, lo, hi)
			}
		}
	}
	return nil
}

// Equal reports whether both Specs select the same values in every field.
func (s Spec) Equal(other Spec) bool {
	for i := range s.sets {
		if !s.sets[i].Equal(other.sets[i]) {
			return false
		}
	}
	return true
}

// String renders the Spec as a numeric expression that Parse accepts
// and that parses back to an equal Spec. An empty field renders as "-",
// which Parse ignores.
func (s Spec) String() string {
	parts := make([]string, len(s.sets))
	for i, set := range s.sets {
		parts[i] = set.String()
		if parts[i] == "" {
			parts[i] = "-"
		}
	}
	return strings.Join(parts, " ")
}

// specJSON is the serialized form of a Spec.
type specJSON struct {
	Minute     []int `json:"minute" yaml:"minute,flow"`
	Hour       []int `json:"hour" yaml:"hour,flow"`
	DayOfMonth []int `json:"day-of-month" yaml:"day-of-month,flow"`
	Month      []int `json:"month" yaml:"month,flow"`
	DayOfWeek  []int `json:"day-of-week" yaml:"day-of-week,flow"`
}

func (s Spec) toJSON() specJSON {
	return specJSON{
		Minute:     s.Minute().Values(),
		Hour:       s.Hour().Values(),
		DayOfMonth: s.DayOfMonth().Values(),
		Month:      s.Month().Values(),
		DayOfWeek:  s.DayOfWeek().Values(),
	}
}

// MarshalJSON implements json.Marshaler. Each field serializes as a
// sorted array of its values, keyed by the field name.
func (s Spec) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.toJSON())
}

// MarshalYAML renders the same document as MarshalJSON for YAML encoders.
func (s Spec) MarshalYAML() (any, error) {
	return s.toJSON(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the sets and reapplies the day-of-week alias. Negative
// values cannot be written in an expression and are rejected with
// ErrOutOfRange.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var j specJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var fields [len(Fields)]ValueSet
	for i, values := range [...][]int{j.Minute, j.Hour, j.DayOfMonth, j.Month, j.DayOfWeek} {
		for _, v := range values {
			if v < 0 {
				return fmt.Errorf("%w: %s %d is negative", ErrOutOfRange, Fields[i], v)
			}
		}
		fields[i] = newValueSet(values...)
	}
	*s = newSpec(fields)
	return nil
}
