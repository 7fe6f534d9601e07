package ctab

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Field identifies one of the five positions of a schedule expression.
type Field int

const (
	Minute     Field = iota + 1 // 0-59
	Hour                        // 0-23
	DayOfMonth                  // 1-31
	Month                       // 1-12, or jan..dec
	DayOfWeek                   // 0-7, or sun..sat; 0 and 7 are Sunday
)

// Fields lists every field in expression order.
var Fields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

type fieldInfo struct {
	name     string
	min, max int
	wildcard string         // replacement text for "*"
	names    map[string]int // symbolic names, nil when the field has none
}

var (
	monthNames = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
	// sun resolves to 7, the alias slot at the end of the week.
	weekdayNames = map[string]int{
		"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6, "sun": 7,
	}

	fieldInfos = [...]fieldInfo{
		Minute:     {name: "minute", min: 0, max: 59, wildcard: "0-59"},
		Hour:       {name: "hour", min: 0, max: 23, wildcard: "0-23"},
		DayOfMonth: {name: "day-of-month", min: 1, max: 31, wildcard: "1-31"},
		Month:      {name: "month", min: 1, max: 12, wildcard: "1-12", names: monthNames},
		DayOfWeek:  {name: "day-of-week", min: 0, max: 7, wildcard: "0-7", names: weekdayNames},
	}
	fieldByName = map[string]Field{
		"minute":       Minute,
		"hour":         Hour,
		"day-of-month": DayOfMonth,
		"month":        Month,
		"day-of-week":  DayOfWeek,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Field(0)
	_ json.Marshaler           = Field(0)
	_ json.Unmarshaler         = (*Field)(nil)
	_ encoding.TextMarshaler   = Field(0)
	_ encoding.TextUnmarshaler = (*Field)(nil)
)

// IsValid reports whether f is one of the five fields.
func (f Field) IsValid() bool {
	return f >= Minute && f <= DayOfWeek
}

// Domain returns the inclusive bounds of the values the field accepts.
// Both bounds are zero for an invalid field.
func (f Field) Domain() (lo, hi int) {
	if !f.IsValid() {
		return 0, 0
	}
	return fieldInfos[f].min, fieldInfos[f].max
}

// index maps a valid field to its position in an expression (0-4).
func (f Field) index() int {
	return int(f - Minute)
}

// String returns the field name ("minute", "hour", "day-of-month",
// "month", "day-of-week"). For invalid values it returns "Field(n)".
func (f Field) String() string {
	if f.IsValid() {
		return fieldInfos[f].name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidField, int(f))
	}
	return []byte(fieldInfos[f].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	v, ok := fieldByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidField, text)
	}
	*f = v
	return nil
}

// MarshalJSON implements json.Marshaler. Field serializes as a JSON string.
func (f Field) MarshalJSON() ([]byte, error) {
	text, err := f.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidField, data)
	}
	return f.UnmarshalText([]byte(s))
}
