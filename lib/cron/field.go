package cron

// fieldKind identifies one of the five crontab fields and carries its
// numeric domain plus any symbolic names accepted in place of integers.
type fieldKind struct {
	name  string
	min   int
	max   int
	names map[string]int
	alias map[int]int
}

// The five field kinds, in expression order.
var (
	minuteKind     = fieldKind{name: "minute", min: 0, max: 59}
	hourKind       = fieldKind{name: "hour", min: 0, max: 23}
	dayOfMonthKind = fieldKind{name: "day-of-month", min: 1, max: 31}
	monthKind      = fieldKind{name: "month", min: 1, max: 12, names: map[string]int{
		"jan": 1,
		"feb": 2,
		"mar": 3,
		"apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dec": 12,
	}}
	// 7 is accepted as an alias for Sunday and normalized before range checks.
	dayOfWeekKind = fieldKind{name: "day-of-week", min: 0, max: 6, alias: map[int]int{7: 0}, names: map[string]int{
		"sun": 0,
		"mon": 1,
		"tue": 2,
		"wed": 3,
		"thu": 4,
		"fri": 5,
		"sat": 6,
	}}
)

// field is the canonical form of one parsed crontab field: the sorted,
// deduplicated set of allowed values, plus whether the original text was
// exactly "*". The wildcard flag matters only for the day fields, where an
// unrestricted field opts out of the day-of-month/day-of-week OR rule.
type field struct {
	values   []int
	wildcard bool
}

// contains reports whether val is in the field's allowed set.
func (f field) contains(val int) bool {
	for _, v := range f.values {
		if v == val {
			return true
		}
	}
	return false
}
