package cron

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// parse parses a cron expression into a Schedule
func parse(expr string) (*Schedule, error) {
	// Split on whitespace
	fields := strings.Fields(expr)

	// Verify exactly 5 fields
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: expected 5 fields, got %d", ErrFieldCount, len(fields))
	}

	// Parse each field in kind order, stopping at the first error
	minutes, err := parseField(fields[0], minuteKind)
	if err != nil {
		return nil, err
	}

	hours, err := parseField(fields[1], hourKind)
	if err != nil {
		return nil, err
	}

	daysOfMonth, err := parseField(fields[2], dayOfMonthKind)
	if err != nil {
		return nil, err
	}

	months, err := parseField(fields[3], monthKind)
	if err != nil {
		return nil, err
	}

	daysOfWeek, err := parseField(fields[4], dayOfWeekKind)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		minutes:        minutes,
		hours:          hours,
		daysOfMonth:    daysOfMonth,
		months:         months,
		daysOfWeek:     daysOfWeek,
		original:       expr,
		maxSearchYears: DefaultMaxSearchYears,
	}, nil
}

// parseField parses a single cron field into its canonical value set
func parseField(text string, kind fieldKind) (field, error) {
	if text == "" {
		return field{}, fmt.Errorf("%w: empty %s field", ErrSyntax, kind.name)
	}

	// A lone wildcard leaves the field unconstrained. "*" combined with a
	// step is handled as a regular item below and is not a wildcard.
	if text == "*" {
		return field{values: expandRange(kind.min, kind.max, 1), wildcard: true}, nil
	}

	// A field is a comma-separated list of items; the value set is the
	// union of the items' sets.
	result := []int{}
	for _, item := range strings.Split(text, ",") {
		vals, err := parseItem(item, kind)
		if err != nil {
			return field{}, err
		}
		result = append(result, vals...)
	}

	sort.Ints(result)
	return field{values: deduplicate(result)}, nil
}

// parseItem parses one list item: a single value, a range, or either of
// those with a step suffix
func parseItem(item string, kind fieldKind) ([]int, error) {
	base := item
	step := 1
	hasStep := false

	if slash := strings.IndexByte(item, '/'); slash >= 0 {
		var err error
		step, err = parseStep(item[slash+1:], kind)
		if err != nil {
			return nil, err
		}
		base = item[:slash]
		hasStep = true
	}

	// "*" or "*/S": the base range is the field's full domain
	if base == "*" {
		if !hasStep {
			return nil, fmt.Errorf("%w: %q may not be combined with other values in %s field", ErrSyntax, item, kind.name)
		}
		return expandRange(kind.min, kind.max, step), nil
	}

	// "N-M" or "N-M/S"
	if lo, hi, ok := strings.Cut(base, "-"); ok {
		start, err := parseValue(lo, kind)
		if err != nil {
			return nil, err
		}
		end, err := parseValue(hi, kind)
		if err != nil {
			return nil, err
		}
		if start > end {
			return nil, fmt.Errorf("%w: start %d > end %d in %s field %q", ErrInvalidRange, start, end, kind.name, item)
		}
		return expandRange(start, end, step), nil
	}

	// "N" or "N/S"
	val, err := parseValue(base, kind)
	if err != nil {
		return nil, err
	}
	if hasStep {
		// A bare value with a step ranges from the value to the field maximum
		return expandRange(val, kind.max, step), nil
	}
	return []int{val}, nil
}

// parseStep parses the value after a "/" in a step expression
func parseStep(text string, kind fieldKind) (int, error) {
	step, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: step %q in %s field", ErrSyntax, text, kind.name)
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: step %d in %s field must be positive", ErrInvalidStep, step, kind.name)
	}
	return step, nil
}

// parseValue resolves a single literal: an integer or a symbolic name,
// normalized through the field's alias table before the range check
func parseValue(text string, kind fieldKind) (int, error) {
	val, named := kind.names[strings.ToLower(text)]
	if !named {
		var err error
		val, err = strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: %q in %s field", ErrSyntax, text, kind.name)
		}
	}

	if alias, ok := kind.alias[val]; ok {
		val = alias
	}

	if val < kind.min || val > kind.max {
		return 0, fmt.Errorf("%w: %s value %d not in %d-%d", ErrOutOfRange, kind.name, val, kind.min, kind.max)
	}
	return val, nil
}

// expandRange returns lo through hi inclusive, stepping by step
func expandRange(lo, hi, step int) []int {
	result := []int{}
	for v := lo; v <= hi; v += step {
		result = append(result, v)
	}
	return result
}

// deduplicate removes duplicate values from a sorted slice
func deduplicate(vals []int) []int {
	if len(vals) == 0 {
		return vals
	}

	result := []int{vals[0]}
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[i-1] {
			result = append(result, vals[i])
		}
	}
	return result
}
