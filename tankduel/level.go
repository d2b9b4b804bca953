package tankduel

import (
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"go.uber.org/zap"
)

// Binder is implemented by controllers that need to see the tanks, such as
// input.ScriptController.
type Binder interface {
	Bind(self, enemy input.Observer)
}

// MainLevel populates the duel scene: two tanks, the obstacle group and the
// score board, plus every collision rule between them.
//
// Configure the exported fields, pass the level to engine.NewGame, and read
// the entity fields once Create has run.
type MainLevel struct {
	Layout     Layout
	Tuning     Tuning
	Cues       Cues
	LeftInput  engine.InputController
	RightInput engine.InputController
	Log        *zap.Logger

	LeftTank  *Tank
	RightTank *Tank
	Score     *Score
	Obstacles *engine.Group
}

// NewMainLevel creates a level with the default tuning and no controllers.
func NewMainLevel(layout Layout) *MainLevel {
	return &MainLevel{
		Layout: layout,
		Tuning: DefaultTuning(),
	}
}

// Create implements engine.Level.
func (m *MainLevel) Create(scene *engine.Scene) {
	if m.Cues == nil {
		m.Cues = NopCues{}
	}
	if m.Log == nil {
		m.Log = scene.Logger()
	}
	scene.Background = ColorBackground

	clock := scene.Clock()
	left := m.Layout.Spawn(Left)
	right := m.Layout.Spawn(Right)

	m.LeftTank = NewTank(Left, left.X, left.Y, clock, m.Tuning, m.Cues)
	m.LeftTank.Input = m.LeftInput
	m.RightTank = NewTank(Right, right.X, right.Y, clock, m.Tuning, m.Cues)
	m.RightTank.Input = m.RightInput

	m.Obstacles = engine.NewGroup()
	for _, b := range m.Layout.Obstacles {
		m.Obstacles.Add(NewObstacle(b.Rect()))
	}

	m.Score = NewScore(scene.Arena())

	scene.Add(m.LeftTank)
	scene.Add(m.RightTank)
	scene.Add(m.Obstacles)
	scene.Add(m.Score)

	if b, ok := m.LeftInput.(Binder); ok {
		b.Bind(m.LeftTank, m.RightTank)
	}
	if b, ok := m.RightInput.(Binder); ok {
		b.Bind(m.RightTank, m.LeftTank)
	}

	m.registerCollisions(scene.Physics)
}

func (m *MainLevel) registerCollisions(physics *engine.Physics) {
	leftLaser, rightLaser := m.LeftTank.Laser, m.RightTank.Laser

	physics.OnCollide(leftLaser, m.RightTank, func(_, _ engine.Collider) {
		m.scoreHit(m.LeftTank)
	})
	physics.OnCollide(rightLaser, m.LeftTank, func(_, _ engine.Collider) {
		m.scoreHit(m.RightTank)
	})

	physics.OnCollide(leftLaser, m.Obstacles, func(_, _ engine.Collider) {
		leftLaser.Reset()
	})
	physics.OnCollide(rightLaser, m.Obstacles, func(_, _ engine.Collider) {
		rightLaser.Reset()
	})

	physics.OnCollide(m.LeftTank, m.Obstacles, func(_, _ engine.Collider) {
		m.LeftTank.Rollback()
	})
	physics.OnCollide(m.RightTank, m.Obstacles, func(_, _ engine.Collider) {
		m.RightTank.Rollback()
	})

	physics.OnCollide(m.LeftTank, m.RightTank, func(_, _ engine.Collider) {
		m.LeftTank.Rollback()
		m.RightTank.Rollback()
	})

	physics.OnCollideWalls(m.LeftTank, func(engine.Collider) {
		m.LeftTank.Rollback()
	})
	physics.OnCollideWalls(m.RightTank, func(engine.Collider) {
		m.RightTank.Rollback()
	})

	// Parked lasers sit outside the arena too; only retire ones in flight.
	physics.OnCollideWalls(leftLaser, func(engine.Collider) {
		if leftLaser.IsActive() {
			leftLaser.Reset()
		}
	})
	physics.OnCollideWalls(rightLaser, func(engine.Collider) {
		if rightLaser.IsActive() {
			rightLaser.Reset()
		}
	})
}

// scoreHit credits shooter once per shot and takes its laser off the board.
func (m *MainLevel) scoreHit(shooter *Tank) {
	if !shooter.Laser.Resolve() {
		return
	}
	m.Score.Increment(shooter.Side)
	shooter.Laser.Reset()
	m.Cues.Hit(shooter.Side)

	m.Log.Info("hit",
		zap.Stringer("shooter", shooter.Side),
		zap.Int("left", m.Score.Left()),
		zap.Int("right", m.Score.Right()))
}

// Tank returns the tank for side.
func (m *MainLevel) Tank(side Side) *Tank {
	if side == Right {
		return m.RightTank
	}
	return m.LeftTank
}
