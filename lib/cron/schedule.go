// Package cron parses five-field crontab expressions and computes the
// times at which they fire.
package cron

import "slices"

// DefaultMaxSearchYears bounds how far Next and Previous search before
// giving up with ErrNoMatch. Some parseable schedules never fire (for
// example "0 0 31 2 *"); the bound is the safety valve for those.
const DefaultMaxSearchYears = 5

// Schedule represents a parsed cron expression. It is immutable after
// construction and safe for concurrent read-only use.
type Schedule struct {
	// Each field stores all valid values for that field
	minutes     field // 0-59
	hours       field // 0-23
	daysOfMonth field // 1-31
	months      field // 1-12
	daysOfWeek  field // 0-6 (0=Sunday)

	// Store original expression for debugging
	original string

	maxSearchYears int
}

// Parse parses a cron expression and validates all constraints.
// Returns an error wrapping one of the package sentinels if:
// - Format is invalid (not 5 fields): ErrFieldCount
// - Any field contains invalid syntax: ErrSyntax
// - A literal is outside its field's domain: ErrOutOfRange
// - A range runs backwards: ErrInvalidRange
// - A step is zero or negative: ErrInvalidStep
func Parse(expr string) (*Schedule, error) {
	return parse(expr)
}

// String returns the original expression text.
func (s *Schedule) String() string {
	return s.original
}

// WithMaxSearchYears returns a copy of the schedule whose occurrence
// searches give up after the given number of years. Values <= 0 restore
// the default. Useful for retrying an ErrNoMatch with a wider window, or
// for failing faster on schedules that are expected to be dense.
func (s *Schedule) WithMaxSearchYears(years int) *Schedule {
	if years <= 0 {
		years = DefaultMaxSearchYears
	}
	dup := *s
	dup.maxSearchYears = years
	return &dup
}

// Description holds the expanded value sets of a schedule, one ascending
// slice per field.
type Description struct {
	Minute     []int
	Hour       []int
	DayOfMonth []int
	Month      []int
	DayOfWeek  []int
}

// Describe returns the expanded value sets. The slices are copies; the
// caller may modify them freely.
func (s *Schedule) Describe() Description {
	return Description{
		Minute:     slices.Clone(s.minutes.values),
		Hour:       slices.Clone(s.hours.values),
		DayOfMonth: slices.Clone(s.daysOfMonth.values),
		Month:      slices.Clone(s.months.values),
		DayOfWeek:  slices.Clone(s.daysOfWeek.values),
	}
}
