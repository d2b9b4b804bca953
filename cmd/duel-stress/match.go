package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/tankduel"
	"go.uber.org/zap"
)

type matchConfig struct {
	Layout    tankduel.Layout
	Tuning    tankduel.Tuning
	Script    string
	Think     time.Duration
	Frames    int
	FrameStep time.Duration
	Log       *zap.Logger
}

type matchResult struct {
	ID             uuid.UUID
	Frames         int64
	LeftHits       int
	RightHits      int
	Shots          int64
	TimersFired    int64
	ScriptFailures int64
	Physics        engine.PhysicsStats
	FrameTimes     []time.Duration
}

// duelLayout places both tanks facing each other gap units apart in an open
// arena, close enough for the built-in script to score.
func duelLayout(width, height int, tuning tankduel.Tuning, gap float64) tankduel.Layout {
	layout := tankduel.OpenLayout(width, height, tuning.TankSize)
	layout.Name = "duel"
	mid := float64(width) / 2
	layout.Spawns.Left.X = mid - gap/2 - tuning.TankSize
	layout.Spawns.Right.X = mid + gap/2
	return layout
}

// runMatch plays one AI-vs-AI match on simulated time, one frame per
// FrameStep, and records how long each frame took to compute.
func runMatch(cfg matchConfig) (matchResult, error) {
	res := matchResult{
		ID:         uuid.New(),
		FrameTimes: make([]time.Duration, 0, cfg.Frames),
	}
	log := cfg.Log.With(zap.Stringer("match", res.ID))

	clock := engine.NewClock()
	left, err := input.NewScriptController(cfg.Script, clock, cfg.Think, log.Named("left"))
	if err != nil {
		return res, fmt.Errorf("left script: %w", err)
	}
	defer left.Close()

	right, err := input.NewScriptController(cfg.Script, clock, cfg.Think, log.Named("right"))
	if err != nil {
		return res, fmt.Errorf("right script: %w", err)
	}
	defer right.Close()

	level := tankduel.NewMainLevel(cfg.Layout)
	level.Tuning = cfg.Tuning
	level.LeftInput = left
	level.RightInput = right
	level.Log = log

	host := engine.NewFrameQueue()
	game := engine.NewGame(level, cfg.Layout.Arena(), host,
		engine.WithClock(clock),
		engine.WithLogger(log),
		engine.WithRenderer(engine.NewDisplayList()))
	display := game.Renderer().(*engine.DisplayList)
	game.Start()

	now := time.Duration(0)
	for i := 0; i < cfg.Frames; i++ {
		display.Reset()
		start := time.Now()
		host.Step(now)
		res.FrameTimes = append(res.FrameTimes, time.Since(start))
		now += cfg.FrameStep
	}

	stats := game.GetStats()
	res.Frames = stats.Frames
	res.TimersFired = stats.TimersFired
	res.LeftHits = level.Score.Left()
	res.RightHits = level.Score.Right()
	res.Shots = level.LeftTank.Shots() + level.RightTank.Shots()
	res.ScriptFailures = left.Failures() + right.Failures()
	res.Physics = game.Scene().Physics.Stats()

	log.Debug("match finished",
		zap.Int("left", res.LeftHits),
		zap.Int("right", res.RightHits),
		zap.Int64("shots", res.Shots))

	return res, nil
}
