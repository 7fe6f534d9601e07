package ctab

import (
	"fmt"
	"strconv"
	"strings"
)

// descriptors maps the @-shortcuts to their five-field form.
var descriptors = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@midnight": "0 0 * * *",
	"@hourly":   "0 * * * *",
}

// Resolve rewrites an expression into the numeric form accepted by Parse.
//
// The expression is lower-cased, each "*" is replaced by the full range
// of its field and the month and day-of-week fields have their
// three-letter names replaced by numbers. Both are plain substring
// substitutions. The result is the five fields joined by single spaces.
//
// Returns ErrMalformedExpression if the expression does not have exactly
// five whitespace-separated fields.
func Resolve(expression string) (string, error) {
	expression = strings.ToLower(expression)
	if expanded, ok := descriptors[strings.TrimSpace(expression)]; ok {
		expression = expanded
	}

	tokens := strings.Fields(expression)
	if len(tokens) != len(Fields) {
		return "", fmt.Errorf("%w: expected %d fields, got %d in %q",
			ErrMalformedExpression, len(Fields), len(tokens), expression)
	}

	for i, f := range Fields {
		info := fieldInfos[f]
		token := strings.ReplaceAll(tokens[i], "*", info.wildcard)
		if info.names != nil {
			token = replaceNames(token, info.names)
		}
		tokens[i] = token
	}
	return strings.Join(tokens, " "), nil
}

// replaceNames substitutes every occurrence of a name in token with its
// numeric value, scanning left to right without overlap.
func replaceNames(token string, names map[string]int) string {
	const nameLen = 3

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); {
		if i+nameLen <= len(token) {
			if v, ok := names[token[i:i+nameLen]]; ok {
				b.WriteString(strconv.Itoa(v))
				i += nameLen
				continue
			}
		}
		b.WriteByte(token[i])
		i++
	}
	return b.String()
}
