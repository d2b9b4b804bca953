package tankduel_test

import (
	"testing"
	"time"

	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/tankduel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCues struct {
	fired []tankduel.Side
	hits  []tankduel.Side
}

func (c *recordingCues) Fire(side tankduel.Side) { c.fired = append(c.fired, side) }
func (c *recordingCues) Hit(side tankduel.Side) { c.hits = append(c.hits, side) }

func duelLayout() tankduel.Layout {
	l := tankduel.Layout{Name: "test", Width: 640, Height: 480}
	l.Spawns.Left = tankduel.Point{X: 0, Y: 50}
	l.Spawns.Right = tankduel.Point{X: 100, Y: 50}
	return l
}

func startDuel(t *testing.T, level *tankduel.MainLevel) (*engine.Game, *engine.FrameQueue) {
	t.Helper()
	host := engine.NewFrameQueue()
	game := engine.NewGame(level, level.Layout.Arena(), host)
	game.Start()
	return game, host
}

func TestMainLevelCreate(t *testing.T) {
	level := tankduel.NewMainLevel(tankduel.DefaultLayout())
	game, _ := startDuel(t, level)

	require.NotNil(t, level.LeftTank)
	require.NotNil(t, level.RightTank)
	assert.Equal(t, len(level.Layout.Obstacles), level.Obstacles.Len())

	children := game.Scene().Children()
	require.Len(t, children, 4)
	assert.Same(t, level.LeftTank, children[0])
	assert.Same(t, level.RightTank, children[1])
	assert.Same(t, level.Score, children[3])

	stats := game.Scene().Physics.Stats()
	obstacles := level.Obstacles.Len()
	assert.Equal(t, 2+2*obstacles+2*obstacles+1, stats.PairRelations)
	assert.Equal(t, 4, stats.WallRelations)

	assert.Equal(t, 0.0, level.LeftTank.Heading)
	assert.Equal(t, 180.0, level.RightTank.Heading)
	assert.Same(t, level.LeftTank, level.Tank(tankduel.Left))
	assert.Same(t, level.RightTank, level.Tank(tankduel.Right))
}

// The left tank fires at a target 100 units away. The laser overlaps the
// target for several frames but the hit must count once.
func TestDuelHitScoresOnce(t *testing.T) {
	hub := input.NewHub()
	keys := input.NewKeyController(input.LeftKeymap)
	hub.Subscribe(keys)
	cues := &recordingCues{}

	level := tankduel.NewMainLevel(duelLayout())
	level.Tuning.LaserStep = 1
	level.Tuning.LaserRange = 150
	level.LeftInput = keys
	level.Cues = cues

	game, host := startDuel(t, level)

	hub.Dispatch(input.KeyEvent(input.KeySpace, input.Press))
	hub.Dispatch(input.KeyEvent(input.KeySpace, input.Release))

	now := time.Duration(0)
	for frame := 0; frame < 400; frame++ {
		host.Step(now)
		now += 16 * time.Millisecond
	}

	assert.Equal(t, 1, level.Score.Left())
	assert.Equal(t, 0, level.Score.Right())
	assert.Equal(t, int64(1), level.LeftTank.Shots())
	assert.Equal(t, []tankduel.Side{tankduel.Left}, cues.fired)
	assert.Equal(t, []tankduel.Side{tankduel.Left}, cues.hits)

	laser := level.LeftTank.Laser
	assert.True(t, laser.OffStage())
	assert.False(t, laser.IsActive())
	assert.Equal(t, 0, game.Clock().Pending())
}

func TestDuelMissExpiresAtRange(t *testing.T) {
	level := tankduel.NewMainLevel(tankduel.OpenLayout(640, 480, 32))
	game, host := startDuel(t, level)

	level.RightTank.Y = 300
	level.LeftTank.Fire()
	require.True(t, level.LeftTank.Laser.IsActive())

	now := time.Duration(0)
	for frame := 0; frame < 120; frame++ {
		host.Step(now)
		now += 16 * time.Millisecond
	}

	assert.Equal(t, 0, level.Score.Left())
	assert.True(t, level.LeftTank.Laser.OffStage())
	assert.Equal(t, 0, game.Clock().Pending())
	assert.Equal(t, int64(30), level.LeftTank.Laser.Ticks(), "150 units at 5 per tick")
}

func TestLaserAbsorbedByObstacle(t *testing.T) {
	layout := duelLayout()
	layout.Spawns.Right = tankduel.Point{X: 600, Y: 50}
	layout.Obstacles = []tankduel.Box{{X: 60, Y: 0, Width: 10, Height: 200}}

	level := tankduel.NewMainLevel(layout)
	_, host := startDuel(t, level)

	level.LeftTank.Fire()
	now := time.Duration(0)
	for frame := 0; frame < 100; frame++ {
		host.Step(now)
		now += 16 * time.Millisecond
	}

	laser := level.LeftTank.Laser
	assert.True(t, laser.OffStage())
	assert.Less(t, laser.Ticks(), int64(30), "reset before reaching its range")
}

func TestTankRollback(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		hub := input.NewHub()
		keys := input.NewKeyController(input.LeftKeymap)
		hub.Subscribe(keys)

		level := tankduel.NewMainLevel(duelLayout())
		level.LeftInput = keys
		_, host := startDuel(t, level)

		hub.Dispatch(input.KeyEvent(input.KeyArrowLeft, input.Press))
		host.Step(0)

		assert.Equal(t, 0.0, level.LeftTank.X, "moving into the west wall is undone")
	})

	t.Run("obstacle", func(t *testing.T) {
		layout := duelLayout()
		layout.Spawns.Right = tankduel.Point{X: 600, Y: 50}
		layout.Obstacles = []tankduel.Box{{X: 34, Y: 0, Width: 10, Height: 200}}

		hub := input.NewHub()
		keys := input.NewKeyController(input.LeftKeymap)
		hub.Subscribe(keys)

		level := tankduel.NewMainLevel(layout)
		level.LeftInput = keys
		_, host := startDuel(t, level)

		hub.Dispatch(input.KeyEvent(input.KeyArrowRight, input.Press))
		host.Step(0)

		assert.Equal(t, 0.0, level.LeftTank.X)
	})

	t.Run("tanks block each other", func(t *testing.T) {
		layout := duelLayout()
		layout.Spawns.Right = tankduel.Point{X: 34, Y: 50}

		hub := input.NewHub()
		keys := input.NewKeyController(input.LeftKeymap)
		hub.Subscribe(keys)

		level := tankduel.NewMainLevel(layout)
		level.LeftInput = keys
		_, host := startDuel(t, level)

		hub.Dispatch(input.KeyEvent(input.KeyArrowRight, input.Press))
		host.Step(0)

		assert.Equal(t, 0.0, level.LeftTank.X)
		assert.Equal(t, 34.0, level.RightTank.X)
	})

	t.Run("free movement sticks", func(t *testing.T) {
		hub := input.NewHub()
		keys := input.NewKeyController(input.LeftKeymap)
		hub.Subscribe(keys)

		level := tankduel.NewMainLevel(duelLayout())
		level.LeftInput = keys
		_, host := startDuel(t, level)

		hub.Dispatch(input.KeyEvent(input.KeyArrowDown, input.Press))
		host.Step(0)

		assert.Equal(t, 55.0, level.LeftTank.Y)
	})
}

func TestScriptedOpponentIsBound(t *testing.T) {
	clock := engine.NewClock()
	script, err := input.NewScriptController(input.DefaultScript, clock, 50*time.Millisecond, nil)
	require.NoError(t, err)
	defer script.Close()

	level := tankduel.NewMainLevel(tankduel.OpenLayout(640, 480, 32))
	level.RightInput = script

	host := engine.NewFrameQueue()
	game := engine.NewGame(level, level.Layout.Arena(), host, engine.WithClock(clock))
	game.Start()

	now := time.Duration(0)
	for frame := 0; frame < 200; frame++ {
		host.Step(now)
		now += 16 * time.Millisecond
	}

	assert.Positive(t, script.Decisions())
	assert.Zero(t, script.Failures())
	assert.Positive(t, level.RightTank.Shots(), "aligned opponent opens fire")
}
