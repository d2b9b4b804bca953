package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/tankduel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMatch(frames int) matchConfig {
	tuning := tankduel.DefaultTuning()
	return matchConfig{
		Layout:    duelLayout(640, 480, tuning, 100),
		Tuning:    tuning,
		Script:    input.DefaultScript,
		Think:     50 * time.Millisecond,
		Frames:    frames,
		FrameStep: 16 * time.Millisecond,
		Log:       zap.NewNop(),
	}
}

func TestDuelLayout(t *testing.T) {
	tuning := tankduel.DefaultTuning()
	layout := duelLayout(640, 480, tuning, 100)

	require.NoError(t, layout.Validate())
	assert.Equal(t, 238.0, layout.Spawns.Left.X)
	assert.Equal(t, 370.0, layout.Spawns.Right.X)
	assert.Equal(t, layout.Spawns.Left.Y, layout.Spawns.Right.Y)
	assert.Empty(t, layout.Obstacles)
}

func TestRunMatch(t *testing.T) {
	res, err := runMatch(testMatch(600))
	require.NoError(t, err)

	assert.Equal(t, int64(600), res.Frames)
	assert.Len(t, res.FrameTimes, 600)
	assert.Positive(t, res.Shots)
	assert.Positive(t, res.LeftHits+res.RightHits, "tanks in range score")
	assert.Positive(t, res.TimersFired)
	assert.Zero(t, res.ScriptFailures)
	assert.Equal(t, int64(600), res.Physics.Updates)
}

func TestRunMatchRejectsBrokenScript(t *testing.T) {
	cfg := testMatch(10)
	cfg.Script = "function decide(self, enemy"

	_, err := runMatch(cfg)
	assert.ErrorContains(t, err, "left script")
}

func TestReport(t *testing.T) {
	report := &Report{Layout: "duel", Frames: 2}
	report.Add(matchResult{Frames: 2, LeftHits: 3, RightHits: 1, Shots: 5, FrameTimes: []time.Duration{time.Millisecond, 3 * time.Millisecond}})
	report.Add(matchResult{Frames: 2, LeftHits: 1, RightHits: 1, Shots: 2, FrameTimes: []time.Duration{2 * time.Millisecond, 2 * time.Millisecond}})
	report.FrameTime.Finalize()

	assert.Equal(t, 2, report.Matches)
	assert.Equal(t, int64(4), report.TotalFrames)
	assert.Equal(t, 1, report.LeftWins)
	assert.Equal(t, 1, report.Draws)
	assert.Equal(t, int64(7), report.Shots)
	assert.Equal(t, time.Millisecond, report.FrameTime.Min)
	assert.Equal(t, 3*time.Millisecond, report.FrameTime.Max)
	assert.Equal(t, 2*time.Millisecond, report.FrameTime.Avg)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "left 1, right 0, draws 1")
	assert.Contains(t, buf.String(), "**Shots Fired:** 7")
	assert.NotContains(t, buf.String(), "GC Pause")
}
