package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livinlefevreloca/cronwhen/lib/cron"
)

func TestTable(t *testing.T) {
	cs, err := cron.Parse("*/10 3,6 1,15 * 1-4")
	require.NoError(t, err)

	got := Table(cs.Describe())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "minute         0 10 20 30 40 50", lines[0])
	assert.Equal(t, "hour           3 6", lines[1])
	assert.Equal(t, "day of month   1 15", lines[2])
	assert.Equal(t, "month          1 2 3 4 5 6 7 8 9 10 11 12", lines[3])
	assert.Equal(t, "day of week    1 2 3 4", lines[4])
}

func TestTimes_Next(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	at := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	got := Times("next time", []time.Time{at}, now, "2006-01-02 15:04:05")

	assert.Equal(t, "next time      2024-01-01 12:30:00 (in 2h30m0s)\n", got)
}

func TestTimes_Previous(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	at := time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC)

	got := Times("previous time", []time.Time{at}, now, "2006-01-02 15:04:05")

	assert.Equal(t, "previous time  2024-01-01 09:45:00 (15m0s ago)\n", got)
}

func TestTimes_ContinuationLines(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	times := []time.Time{
		now.Add(30 * time.Minute),
		now.Add(90 * time.Minute),
	}

	got := Times("next time", times, now, "15:04")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "next time      10:30 (in 30m0s)", lines[0])
	assert.Equal(t, "               11:30 (in 1h30m0s)", lines[1])
}
