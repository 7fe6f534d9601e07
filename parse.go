package ctab

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a resolved, numeric-only expression into a Spec.
//
// Each field is split on commas and every item is classified by shape as
// a stepped range "b-e/s", an inclusive range "b-e" or a bare number "n".
// Items of any other shape are ignored. Reversed ranges contribute
// nothing, values outside a field's domain are kept, and missing fields
// parse as empty sets. If the day-of-week set contains 0 it also receives
// 7; the reverse is not applied.
//
// Ranges are kept as progressions rather than expanded, so a wide
// out-of-domain range such as "0-300000000" parses in constant space.
//
// Returns ErrInvalidStep if a stepped range has a step of zero.
func Parse(resolved string) (Spec, error) {
	var fields [len(Fields)]ValueSet
	tokens := strings.Fields(resolved)
	for i, f := range Fields {
		if i >= len(tokens) {
			break
		}
		set, err := parseField(tokens[i])
		if err != nil {
			return Spec{}, fmt.Errorf("%w (%s field)", err, f)
		}
		fields[i] = set
	}
	return newSpec(fields), nil
}

// Compile resolves and parses expression in one step.
func Compile(expression string) (Spec, error) {
	resolved, err := Resolve(expression)
	if err != nil {
		return Spec{}, err
	}
	return Parse(resolved)
}

// parseField collects the progression of every comma-separated item of a
// field token.
func parseField(token string) (ValueSet, error) {
	var set ValueSet
	for _, item := range strings.Split(token, ",") {
		sp, ok, err := parseItem(item)
		if err != nil {
			return ValueSet{}, err
		}
		if ok {
			set.spans = append(set.spans, sp)
		}
	}
	return set, nil
}

// parseItem reads a single item. ok is false for unrecognized items and
// reversed ranges.
func parseItem(item string) (sp span, ok bool, err error) {
	rangePart, stepPart, stepped := strings.Cut(item, "/")

	begin, end, ok := parseBounds(rangePart)
	if !ok {
		return span{}, false, nil
	}
	step := 1
	if stepped {
		// Steps only apply to explicit ranges.
		if !strings.Contains(rangePart, "-") {
			return span{}, false, nil
		}
		s, ok := parseNumber(stepPart)
		if !ok {
			return span{}, false, nil
		}
		if s <= 0 {
			return span{}, false, fmt.Errorf("%w: %q has step %d", ErrInvalidStep, item, s)
		}
		step = s
	}

	sp, ok = newSpan(begin, end, step)
	return sp, ok, nil
}

// parseBounds reads "b-e" or "n" (as n-n).
func parseBounds(text string) (begin, end int, ok bool) {
	lo, hi, isRange := strings.Cut(text, "-")
	if !isRange {
		n, ok := parseNumber(text)
		return n, n, ok
	}
	begin, ok = parseNumber(lo)
	if !ok {
		return 0, 0, false
	}
	end, ok = parseNumber(hi)
	if !ok {
		return 0, 0, false
	}
	return begin, end, true
}

// parseNumber accepts a non-empty run of ASCII digits.
func parseNumber(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
