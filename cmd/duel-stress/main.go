// Command duel-stress plays scripted tank duels back to back on simulated
// time and reports frame cost, hit counts and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tankduel/config"
	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/tankduel"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frames := flag.Int("frames", 3600, "Frames simulated per match.")
	frameStep := flag.Duration("frame-step", time.Second/60, "Simulated time between frames.")
	width := flag.Int("width", 640, "Arena width.")
	height := flag.Int("height", 480, "Arena height.")
	gap := flag.Float64("gap", 100, "Distance between the tanks at spawn.")
	scriptPath := flag.String("script", "", "Lua opponent for both sides, empty for the built-in one.")
	think := flag.Duration("think", 150*time.Millisecond, "Script decision period.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log every match.")
	flag.Parse()

	if err := run(options{
		Duration:       *duration,
		Frames:         *frames,
		FrameStep:      *frameStep,
		Width:          *width,
		Height:         *height,
		Gap:            *gap,
		ScriptPath:     *scriptPath,
		Think:          *think,
		GCPauseMetrics: *gcPauseMetrics,
		Verbose:        *verbose,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	Duration       time.Duration
	Frames         int
	FrameStep      time.Duration
	Width, Height  int
	Gap            float64
	ScriptPath     string
	Think          time.Duration
	GCPauseMetrics bool
	Verbose        bool
}

func run(opts options) error {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log, err := config.NewLogger(config.LoggingConfig{Level: level, Format: "console"})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	runID := uuid.New()
	log = log.With(zap.Stringer("run", runID))

	script := input.DefaultScript
	if opts.ScriptPath != "" {
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script = string(data)
	}
	if opts.Frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}

	tuning := tankduel.DefaultTuning()
	cfg := matchConfig{
		Layout:    duelLayout(opts.Width, opts.Height, tuning, opts.Gap),
		Tuning:    tuning,
		Script:    script,
		Think:     opts.Think,
		Frames:    opts.Frames,
		FrameStep: opts.FrameStep,
		Log:       log,
	}
	if err := cfg.Layout.Validate(); err != nil {
		return err
	}

	report := &Report{
		RunID:          runID,
		Duration:       opts.Duration,
		Layout:         cfg.Layout.Name,
		Frames:         opts.Frames,
		FrameStep:      opts.FrameStep,
		Think:          opts.Think,
		Gap:            opts.Gap,
		GCPauseMetrics: opts.GCPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running duels", zap.Duration("duration", opts.Duration), zap.Int("frames", opts.Frames))
	ctx, cancel := context.WithTimeout(context.Background(), opts.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			res, err := runMatch(cfg)
			if err != nil {
				return fmt.Errorf("match %d: %w", report.Matches+1, err)
			}
			report.Add(res)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("duels finished", zap.Int("matches", report.Matches))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}
