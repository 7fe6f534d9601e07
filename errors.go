package ctab

import "errors"

// Sentinel errors for the ctab package.
// Use errors.Is to check: errors.Is(err, ctab.ErrInvalidStep)
var (
	ErrMalformedExpression = errors.New("ctab: malformed expression")
	ErrInvalidStep         = errors.New("ctab: invalid step")
	ErrOutOfRange          = errors.New("ctab: value out of range")
	ErrEmptyField          = errors.New("ctab: field selects no values")
	ErrInvalidField        = errors.New("ctab: invalid field")
)
