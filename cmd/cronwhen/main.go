package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/livinlefevreloca/cronwhen/internal/config"
	"github.com/livinlefevreloca/cronwhen/internal/report"
	"github.com/livinlefevreloca/cronwhen/lib/cron"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command-line flags
	configFile := pflag.String("config", "", "Path to configuration file (TOML)")
	refTime := pflag.String("time", "", "Reference time in RFC 3339 format (default: now)")
	count := pflag.IntP("count", "n", 0, "Number of occurrences to compute")
	previous := pflag.BoolP("previous", "p", false, "Compute past occurrences instead of future ones")
	timezone := pflag.String("timezone", "", "Time zone for calculations and output")
	maxYears := pflag.Int("max-years", 0, "Maximum number of years to search before giving up")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <expression>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Expands a five-field cron expression and computes its occurrences.\n\nFlags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	// Flags override the config file
	if *count > 0 {
		cfg.Output.Count = *count
	}
	if *timezone != "" {
		cfg.Output.Timezone = *timezone
	}
	if *maxYears > 0 {
		cfg.Search.MaxYears = *maxYears
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error: invalid configuration:", err)
		return 1
	}

	// Initialize structured logger
	opts := &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	if pflag.NArg() != 1 {
		pflag.Usage()
		return 2
	}
	expr := pflag.Arg(0)

	loc, err := cfg.Output.Location()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	now := time.Now().In(loc)
	if *refTime != "" {
		now, err = time.Parse(time.RFC3339, *refTime)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error: invalid reference time:", err)
			return 1
		}
		now = now.In(loc)
	}

	sched, err := cron.Parse(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	sched = sched.WithMaxSearchYears(cfg.Search.MaxYears)

	slog.Debug("computing occurrences",
		"expression", expr,
		"reference", now.Format(time.RFC3339),
		"count", cfg.Output.Count,
		"previous", *previous)

	var label string
	var times []time.Time
	if *previous {
		label = "previous time"
		times, err = sched.PreviousN(now, cfg.Output.Count)
	} else {
		label = "next time"
		times, err = sched.NextN(now, cfg.Output.Count)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	fmt.Print(report.Table(sched.Describe()))
	fmt.Print(report.Times(label, times, now, cfg.Output.TimeFormat))
	return 0
}
