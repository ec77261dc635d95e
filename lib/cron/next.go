package cron

import (
	"fmt"
	"sort"
	"time"
)

// Next calculates the next occurrence of this schedule strictly after the
// given time. "After" is truncated to minute resolution: the search starts
// at the beginning of the minute following it, so a time exactly on a
// scheduled minute yields the following occurrence, not itself.
// The search runs in the location of the given time and returns ErrNoMatch
// if no occurrence exists within the schedule's year bound.
func (s *Schedule) Next(after time.Time) (time.Time, error) {
	return s.advance(after.Truncate(time.Minute).Add(time.Minute))
}

// Previous calculates the latest occurrence of this schedule before the
// given time, the mirror of Next: the search starts at the end of the
// minute preceding it and steps backwards.
func (s *Schedule) Previous(before time.Time) (time.Time, error) {
	return s.retreat(before.Truncate(time.Minute).Add(-time.Minute))
}

// NextN calculates the next count occurrences strictly after the given
// time, in chronological order.
func (s *Schedule) NextN(after time.Time, count int) ([]time.Time, error) {
	results := make([]time.Time, 0, count)

	t := after
	for len(results) < count {
		next, err := s.Next(t)
		if err != nil {
			return nil, err
		}
		results = append(results, next)
		t = next
	}

	return results, nil
}

// PreviousN calculates the latest count occurrences before the given
// time, in reverse chronological order.
func (s *Schedule) PreviousN(before time.Time, count int) ([]time.Time, error) {
	results := make([]time.Time, 0, count)

	t := before
	for len(results) < count {
		prev, err := s.Previous(t)
		if err != nil {
			return nil, err
		}
		results = append(results, prev)
		t = prev
	}

	return results, nil
}

// Between calculates all occurrences within the given time window
// [start, end). Start is inclusive, end is exclusive. Returns all matching
// times in chronological order; the window itself bounds the search, so an
// unsatisfiable schedule simply yields no results.
func (s *Schedule) Between(start, end time.Time) []time.Time {
	results := []time.Time{}

	t := start.Add(-time.Minute)
	for {
		next, err := s.Next(t)
		if err != nil || !next.Before(end) {
			return results
		}
		if !next.Before(start) {
			results = append(results, next)
		}
		t = next
	}
}

// advance finds the first matching time at or after the candidate minute.
//
// Fields are tested most-significant-first. A mismatch at some granularity
// jumps the candidate to the next allowed value at that granularity and
// resets everything below it to its minimum; any carry into a more
// significant field restarts the loop so the changed components are
// re-validated. The candidate therefore moves by whole months, days and
// hours rather than minute by minute.
//
// Every jump targets a wall-clock reading, and a DST spring-forward can
// remove that reading from the location's clock. time.Date normalizes a
// skipped reading to a different one, so each jumped candidate is checked
// against the reading that was requested; on a mismatch the search resumes
// past the gap and re-validates. Skipped wall times are never occurrences.
// A fall-back repeats a wall hour instead, and a schedule minute inside it
// matches at both instants.
func (s *Schedule) advance(t time.Time) (time.Time, error) {
	loc := t.Location()
	yearLimit := t.Year() + s.maxSearchYears

	for {
		if t.Year() > yearLimit {
			return time.Time{}, fmt.Errorf("%w for %q within %d years", ErrNoMatch, s.original, s.maxSearchYears)
		}

		// Month: jump straight to the start of day 1 of the next allowed month.
		month, ok := searchCeil(s.months.values, int(t.Month()))
		if !ok {
			t = dayStart(t.Year()+1, time.Month(s.months.values[0]), 1, loc)
			continue
		}
		if month != int(t.Month()) {
			t = dayStart(t.Year(), time.Month(month), 1, loc)
		}

		// Day: the OR rule depends on the weekday of each concrete date, so
		// candidate days are stepped one at a time within the month. Stepping
		// real dates also means a day-of-month value beyond the month's true
		// length (leap years included) can never match.
		wrapped := false
		for !s.dayMatches(t) {
			t = nextDay(t)
			if t.Day() == 1 {
				wrapped = true
				break
			}
		}
		if wrapped {
			continue
		}

		// Hour: jump to the next allowed hour, or carry into the next day.
		hour, ok := searchCeil(s.hours.values, t.Hour())
		if !ok {
			t = nextDay(t)
			continue
		}
		if hour != t.Hour() {
			jumped := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, loc)
			if missingWall(jumped, t.Day(), hour, 0) {
				t = pastGap(t, jumped)
				continue
			}
			t = jumped
		}

		// Minute: jump to the next allowed minute, or carry into the next hour.
		minute, ok := searchCeil(s.minutes.values, t.Minute())
		if !ok {
			t = t.Add(time.Duration(60-t.Minute()) * time.Minute)
			continue
		}
		result := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, loc)
		if missingWall(result, t.Day(), t.Hour(), minute) {
			t = pastGap(t, result)
			continue
		}
		if result.Before(t) {
			// A repeated wall hour resolved to its first instance; the
			// search has already passed that one.
			result = laterInstance(result, t)
		}
		return result, nil
	}
}

// retreat is the mirror of advance: mismatches jump to the previous
// allowed value and reset less significant components to their maximum,
// with the same wall-clock checks on every jumped candidate.
func (s *Schedule) retreat(t time.Time) (time.Time, error) {
	loc := t.Location()
	yearLimit := t.Year() - s.maxSearchYears

	for {
		if t.Year() < yearLimit {
			return time.Time{}, fmt.Errorf("%w for %q within %d years", ErrNoMatch, s.original, s.maxSearchYears)
		}

		// Month: jump to the last minute of the previous allowed month.
		month, ok := searchFloor(s.months.values, int(t.Month()))
		if !ok {
			last := s.months.values[len(s.months.values)-1]
			first := time.Date(t.Year()-1, time.Month(last)+1, 1, 12, 0, 0, 0, loc)
			t = dayStart(first.Year(), first.Month(), first.Day(), loc).Add(-time.Minute)
			continue
		}
		if month != int(t.Month()) {
			first := time.Date(t.Year(), time.Month(month)+1, 1, 12, 0, 0, 0, loc)
			t = dayStart(first.Year(), first.Month(), first.Day(), loc).Add(-time.Minute)
		}

		// Day: step backwards one date at a time within the month.
		wrapped := false
		for !s.dayMatches(t) {
			m := t.Month()
			t = dayStart(t.Year(), t.Month(), t.Day(), loc).Add(-time.Minute)
			if t.Month() != m {
				wrapped = true
				break
			}
		}
		if wrapped {
			continue
		}

		// Hour: jump to the previous allowed hour, or borrow from the
		// previous day.
		hour, ok := searchFloor(s.hours.values, t.Hour())
		if !ok {
			t = dayStart(t.Year(), t.Month(), t.Day(), loc).Add(-time.Minute)
			continue
		}
		if hour != t.Hour() {
			jumped := time.Date(t.Year(), t.Month(), t.Day(), hour, 59, 0, 0, loc)
			if missingWall(jumped, t.Day(), hour, 59) {
				t = beforeGap(t, jumped)
				continue
			}
			t = jumped
		}

		// Minute: jump to the previous allowed minute, or borrow from the
		// previous hour.
		minute, ok := searchFloor(s.minutes.values, t.Minute())
		if !ok {
			t = t.Add(-time.Duration(t.Minute()+1) * time.Minute)
			continue
		}
		result := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, loc)
		if missingWall(result, t.Day(), t.Hour(), minute) {
			t = beforeGap(t, result)
			continue
		}
		if result.After(t) {
			result = laterInstance(result, t)
		}
		return result, nil
	}
}

// dayMatches handles the special day-of-month vs day-of-week logic
//
// Cron standard behavior:
// - If both day-of-month and day-of-week are restricted (not *): match if EITHER matches (OR logic)
// - If only one is restricted: match on that field only
// - If both are *: match any day
func (s *Schedule) dayMatches(t time.Time) bool {
	domMatch := s.daysOfMonth.contains(t.Day())
	dowMatch := s.daysOfWeek.contains(int(t.Weekday()))

	switch {
	case s.daysOfMonth.wildcard && s.daysOfWeek.wildcard:
		return true
	case s.daysOfMonth.wildcard:
		return dowMatch
	case s.daysOfWeek.wildcard:
		return domMatch
	default:
		return domMatch || dowMatch
	}
}

// missingWall reports whether a constructed time was normalized away from
// the wall-clock reading that was requested, which happens when the
// location's clock skips that reading in a DST transition.
func missingWall(t time.Time, day, hour, minute int) bool {
	return t.Day() != day || t.Hour() != hour || t.Minute() != minute
}

// pastGap returns an instant strictly after prev from which the forward
// search resumes once a requested wall time turned out not to exist.
// Transitions fall on quarter-hour boundaries, so quarter-hour steps land
// exactly on the end of a gap.
func pastGap(prev, jumped time.Time) time.Time {
	t := jumped
	for !t.After(prev) {
		t = t.Add(15 * time.Minute)
	}
	return t
}

// beforeGap is the backward counterpart of pastGap.
func beforeGap(prev, jumped time.Time) time.Time {
	t := jumped
	for !t.Before(prev) {
		t = t.Add(-15 * time.Minute)
	}
	return t
}

// laterInstance shifts a time in a repeated wall hour from the instance
// time.Date resolved to onto the one in ref's zone offset.
func laterInstance(t, ref time.Time) time.Time {
	_, have := t.Zone()
	_, want := ref.Zone()
	return t.Add(time.Duration(have-want) * time.Second)
}

// dayStart returns the earliest instant of the given calendar day. When a
// transition skips midnight the day starts later than 00:00.
func dayStart(year int, month time.Month, day int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	for beforeDate(t, year, month, day) {
		t = t.Add(15 * time.Minute)
	}
	return t
}

func beforeDate(t time.Time, year int, month time.Month, day int) bool {
	if t.Year() != year {
		return t.Year() < year
	}
	if t.Month() != month {
		return t.Month() < month
	}
	return t.Day() < day
}

// nextDay returns the earliest instant of the day after t. Noon anchors
// the date arithmetic because transitions never move the clock at midday.
func nextDay(t time.Time) time.Time {
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
	d := noon.AddDate(0, 0, 1)
	return dayStart(d.Year(), d.Month(), d.Day(), t.Location())
}

// searchCeil returns the smallest value in vals >= v.
func searchCeil(vals []int, v int) (int, bool) {
	i := sort.SearchInts(vals, v)
	if i == len(vals) {
		return 0, false
	}
	return vals[i], true
}

// searchFloor returns the largest value in vals <= v.
func searchFloor(vals []int, v int) (int, bool) {
	i := sort.SearchInts(vals, v+1)
	if i == 0 {
		return 0, false
	}
	return vals[i-1], true
}
