package engine

import (
	"time"

	"go.uber.org/zap"
)

// GameStats provides statistics about frame loop execution.
type GameStats struct {
	PhaseCount  int
	Frames      int64
	LastFrame   Frame
	Phases      []PhaseStats
	TimersFired int64
}

// PhaseStats provides execution statistics for one phase of the frame.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats(name string) *phaseStatsInternal {
	return &phaseStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *phaseStatsInternal) record(duration time.Duration) {
	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

const (
	phaseClock = iota
	phaseUpdate
	phaseRender
)

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger sets the logger used by the game, its scene and its physics.
func WithLogger(log *zap.Logger) GameOption {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithRenderer sets the draw target. Defaults to NopRenderer.
func WithRenderer(r Renderer) GameOption {
	return func(g *Game) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithClock shares an existing timer queue with the game.
func WithClock(c *Clock) GameOption {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

// Game drives the frame loop: on every frame it advances the clock by the
// elapsed time, updates the scene, renders it, and requests the next frame.
//
// This is not a fixed-timestep loop. Scene.Update receives no delta, so
// entity motion per frame is constant and simulation speed follows the
// display refresh rate. Only Clock timers observe wall time.
type Game struct {
	scene    *Scene
	clock    *Clock
	host     Host
	renderer Renderer
	log      *zap.Logger

	frameID   FrameID
	started   bool
	lastFrame Frame
	frames    int64
	phases    []*phaseStatsInternal
}

// NewGame creates the scene for arena and lets level populate it. The loop
// does not run until Start.
func NewGame(level Level, arena Arena, host Host, opts ...GameOption) *Game {
	g := &Game{
		host:     host,
		renderer: NopRenderer{},
		log:      zap.NewNop(),
		phases: []*phaseStatsInternal{
			phaseClock:  newPhaseStats("clock"),
			phaseUpdate: newPhaseStats("update"),
			phaseRender: newPhaseStats("render"),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = NewClock()
	}

	g.scene = NewScene(arena, g.clock, g.log.Named("scene"))
	if level != nil {
		level.Create(g.scene)
	}

	g.log.Debug("scene created",
		zap.Int("entities", len(g.scene.children)),
		zap.Int("pairRelations", len(g.scene.Physics.pairs)),
		zap.Int("wallRelations", len(g.scene.Physics.walls)))

	return g
}

// Start requests the first frame. Calling Start again is a no-op.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.frameID = g.host.RequestFrame(g.tick)
}

// Started reports whether Start has been called.
func (g *Game) Started() bool {
	return g.started
}

func (g *Game) tick(timestamp time.Duration) {
	elapsed := time.Duration(0)
	if g.frames > 0 && timestamp > g.lastFrame.Timestamp {
		elapsed = timestamp - g.lastFrame.Timestamp
	}
	g.frames++
	g.lastFrame = Frame{Index: g.frames, Timestamp: timestamp, Elapsed: elapsed}

	g.Step(elapsed)

	// Guard against a second outstanding request for the same logical frame.
	g.host.CancelFrame(g.frameID)
	g.frameID = g.host.RequestFrame(g.tick)
}

// Step runs one frame body without touching the host: clock, update, render.
func (g *Game) Step(elapsed time.Duration) {
	start := time.Now()
	g.clock.Advance(elapsed)
	g.phases[phaseClock].record(time.Since(start))

	start = time.Now()
	g.scene.Update()
	g.phases[phaseUpdate].record(time.Since(start))

	start = time.Now()
	g.scene.Render(g.renderer)
	g.phases[phaseRender].record(time.Since(start))
}

// Scene returns the scene driven by the game.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Clock returns the game's timer queue.
func (g *Game) Clock() *Clock {
	return g.clock
}

// Renderer returns the current draw target.
func (g *Game) Renderer() Renderer {
	return g.renderer
}

// SetRenderer replaces the draw target.
func (g *Game) SetRenderer(r Renderer) {
	if r != nil {
		g.renderer = r
	}
}

// LastFrame returns the most recently delivered frame.
func (g *Game) LastFrame() Frame {
	return g.lastFrame
}

// GetStats returns statistics about frame execution.
func (g *Game) GetStats() *GameStats {
	stats := &GameStats{
		PhaseCount:  len(g.phases),
		Frames:      g.frames,
		LastFrame:   g.lastFrame,
		Phases:      make([]PhaseStats, len(g.phases)),
		TimersFired: g.clock.Fired(),
	}

	for i, internal := range g.phases {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Phases[i] = PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
