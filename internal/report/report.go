// Package report renders parsed schedules and computed occurrences for
// the command line.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/livinlefevreloca/cronwhen/lib/cron"
)

// labelWidth aligns the value column across all rows.
const labelWidth = 14

// Table renders the expanded value sets of a schedule, one line per field
// with the values space-separated in ascending order.
func Table(desc cron.Description) string {
	rows := []struct {
		name   string
		values []int
	}{
		{"minute", desc.Minute},
		{"hour", desc.Hour},
		{"day of month", desc.DayOfMonth},
		{"month", desc.Month},
		{"day of week", desc.DayOfWeek},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-*s %s\n", labelWidth, row.name, joinInts(row.values))
	}
	return b.String()
}

// Times renders computed occurrences with their offset from the reference
// time. The label appears on the first line only; continuation lines stay
// aligned under it.
func Times(label string, times []time.Time, now time.Time, layout string) string {
	var b strings.Builder
	for i, at := range times {
		name := label
		if i > 0 {
			name = ""
		}
		fmt.Fprintf(&b, "%-*s %s (%s)\n", labelWidth, name, at.Format(layout), relative(at.Sub(now)))
	}
	return b.String()
}

// relative renders a signed offset such as "in 2h30m0s" or "4h10m0s ago".
func relative(delta time.Duration) string {
	delta = delta.Round(time.Second)
	if delta < 0 {
		return fmt.Sprintf("%s ago", -delta)
	}
	return fmt.Sprintf("in %s", delta)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
