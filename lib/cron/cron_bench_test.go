package cron

import (
	"testing"
	"time"
)

// Benchmarks

var benchCronExpressions = []string{
	"* * * * *",         // Every minute
	"0 * * * *",         // Every hour
	"0 0 * * *",         // Daily
	"*/5 * * * *",       // Every 5 minutes
	"*/15 9-17 * * 1-5", // Business hours
	"0 0 1 * *",         // Monthly
	"0 0 1 1 *",         // Yearly
	"30 2 * * 0",        // Weekly on Sunday
	"0,30 * * * *",      // Twice an hour
	"0 0 * * 0,6",       // Weekends only
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("*/5 9-17 * * 1-5")
	}
}

func BenchmarkParse_100_Schedules(b *testing.B) {
	expressions := make([]string, 100)
	for i := 0; i < 100; i++ {
		expressions[i] = benchCronExpressions[i%len(benchCronExpressions)]
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, expr := range expressions {
			_, _ = Parse(expr)
		}
	}
}

func BenchmarkNext_EveryMinute(b *testing.B) {
	cs, _ := Parse("* * * * *")
	after := makeBenchTime(2024, 1, 1, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.NextN(after, 100)
	}
}

func BenchmarkNext_Daily(b *testing.B) {
	cs, _ := Parse("0 0 * * *")
	after := makeBenchTime(2024, 1, 1, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.NextN(after, 365)
	}
}

func BenchmarkNext_Sparse_Yearly(b *testing.B) {
	// One match per year; the search must skip whole months, not scan minutes
	cs, _ := Parse("0 0 1 1 *")
	after := makeBenchTime(2024, 1, 2, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Next(after)
	}
}

func BenchmarkNext_Sparse_LeapDay(b *testing.B) {
	cs, _ := Parse("0 0 29 2 *")
	after := makeBenchTime(2025, 1, 1, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Next(after)
	}
}

func BenchmarkPrevious_Daily(b *testing.B) {
	cs, _ := Parse("0 0 * * *")
	before := makeBenchTime(2024, 12, 31, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cs.Previous(before)
	}
}

func BenchmarkBetween_OneWeek(b *testing.B) {
	cs, _ := Parse("0 * * * *")
	start := makeBenchTime(2024, 1, 1, 0, 0)
	end := makeBenchTime(2024, 1, 8, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cs.Between(start, end)
	}
}

func BenchmarkBetween_OneYear(b *testing.B) {
	cs, _ := Parse("0 0 * * *")
	start := makeBenchTime(2024, 1, 1, 0, 0)
	end := makeBenchTime(2025, 1, 1, 0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cs.Between(start, end)
	}
}

func makeBenchTime(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}
