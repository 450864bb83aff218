package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/meltforce/fittrack/internal/config"
	"github.com/meltforce/fittrack/internal/report"
	"github.com/meltforce/fittrack/internal/sensor"
	"github.com/meltforce/fittrack/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// demoStream holds the demo packages processed when no input is given.
const demoStream = `# demo session
SWM;720;1;80;25;40
RUN;15000;1;75
WLK;9000;1;75;180
`

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	inputPath := flag.String("input", "", "packages file, \"-\" for stdin (default: built-in demo stream)")
	strict := flag.Bool("strict", false, "stop on the first bad package")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fittrack: %v\n", err)
		os.Exit(1)
	}

	// Report lines own stdout, so the logger writes to stderr.
	log := newLogger(os.Stderr, cfg.Log)
	log.Info("FitTrack starting", "version", Version)

	if *strict {
		cfg.Ingest.Strict = true
	}

	packages, err := readPackages(*inputPath)
	if err != nil {
		log.Error("failed to read packages", "error", err)
		os.Exit(1)
	}

	stats, err := run(os.Stdout, packages, cfg.Ingest.Strict, log)
	if err != nil {
		log.Error("processing failed", "error", err)
		os.Exit(1)
	}

	log.Info("processing complete",
		"packages_read", stats.Read,
		"packages_reported", stats.Reported,
		"packages_skipped", stats.Skipped,
	)
}

// newLogger builds a logger from the log config.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// readPackages resolves the input flag into sensor packages.
func readPackages(path string) ([]sensor.Package, error) {
	switch path {
	case "":
		return sensor.ReadStream(strings.NewReader(demoStream))
	case "-":
		return sensor.ReadStream(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	if sensor.DetectFormat(path) == sensor.FormatBatch {
		return sensor.ReadBatch(f)
	}
	return sensor.ReadStream(f)
}

// runStats counts package outcomes for the final log line.
type runStats struct {
	Read     int
	Reported int
	Skipped  int
}

// typeTotals aggregates the reported workouts of one kind across a run.
type typeTotals struct {
	Count        int
	DistanceKm   float64
	CaloriesKcal float64
}

// run renders each package's report line to out in input order. A bad
// package aborts the run in strict mode and is skipped otherwise. Per-kind
// totals are logged once the run completes.
func run(out io.Writer, packages []sensor.Package, strict bool, log *slog.Logger) (runStats, error) {
	stats := runStats{Read: len(packages)}
	totals := make(map[string]*typeTotals)
	var kindOrder []string

	for _, pkg := range packages {
		info, err := process(pkg)
		if err != nil {
			if strict {
				return stats, fmt.Errorf("package %s: %w", pkg.ID, err)
			}
			stats.Skipped++
			log.Warn("skipping bad package", "id", pkg.ID, "code", pkg.Code, "error", err)
			continue
		}
		fmt.Fprintln(out, report.Format(info))
		stats.Reported++

		tt, ok := totals[info.TrainingType]
		if !ok {
			tt = &typeTotals{}
			totals[info.TrainingType] = tt
			kindOrder = append(kindOrder, info.TrainingType)
		}
		tt.Count++
		tt.DistanceKm += info.DistanceKm
		tt.CaloriesKcal += info.CaloriesKcal
	}

	for _, kind := range kindOrder {
		tt := totals[kind]
		log.Info("session totals",
			"type", kind,
			"workouts", tt.Count,
			"distance_km", tt.DistanceKm,
			"calories_kcal", tt.CaloriesKcal,
		)
	}

	return stats, nil
}

// process decodes one sensor package and computes its summary.
func process(pkg sensor.Package) (workout.InfoMessage, error) {
	w, err := sensor.Decode(pkg)
	if err != nil {
		return workout.InfoMessage{}, err
	}
	return workout.Summary(w)
}
