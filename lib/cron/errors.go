package cron

import "errors"

// Error classes returned by Parse and the occurrence calculators. Parse
// errors wrap one of these sentinels along with the field kind and the
// offending text, so callers can match the class with errors.Is while
// still getting a descriptive message.
var (
	// ErrSyntax indicates field text that does not match the crontab grammar.
	ErrSyntax = errors.New("invalid syntax")

	// ErrOutOfRange indicates a literal outside its field's numeric domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidStep indicates a zero or negative step value.
	ErrInvalidStep = errors.New("invalid step")

	// ErrFieldCount indicates an expression that does not split into exactly
	// five whitespace-separated fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrNoMatch indicates the occurrence search exhausted its year bound
	// without finding a matching time.
	ErrNoMatch = errors.New("no matching time found")
)
