package tankduel

import (
	"image/color"
	"math"

	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
)

// Tank is a player's vehicle. It owns one Laser that it updates and renders
// alongside itself; the laser is not a separate roster entry.
type Tank struct {
	engine.Body

	Side    Side
	Laser   *Laser
	Sprite  engine.Sprite
	Heading float64 // degrees, 0 points along +X

	tuning      Tuning
	cues        Cues
	baseHeading float64
	prevX       float64
	prevY       float64
	shots       int64
}

// NewTank creates a tank for side at (x, y). Left tanks face +X, right tanks
// face -X. Its laser runs on clock.
func NewTank(side Side, x, y float64, clock *engine.Clock, tuning Tuning, cues Cues) *Tank {
	if cues == nil {
		cues = NopCues{}
	}

	heading := 0.0
	var laserColor color.Color = ColorLeftLaser
	if side == Right {
		heading = 180
		laserColor = ColorRightLaser
	}

	return &Tank{
		Body:        engine.NewBody(x, y, tuning.TankSize, tuning.TankSize),
		Side:        side,
		Laser:       NewLaser(clock, tuning, laserColor),
		Sprite:      TankSprite(side),
		Heading:     heading,
		tuning:      tuning,
		cues:        cues,
		baseHeading: heading,
		prevX:       x,
		prevY:       y,
	}
}

// Update applies the pending command, then lets the laser do its own
// bookkeeping. The position before the move is kept for Rollback.
func (t *Tank) Update() {
	t.prevX, t.prevY = t.X, t.Y
	t.Body.Update()

	switch t.Command {
	case engine.CommandLeft:
		t.X -= t.tuning.TankSpeed
	case engine.CommandRight:
		t.X += t.tuning.TankSpeed
	case engine.CommandUp:
		t.Y -= t.tuning.TankSpeed
	case engine.CommandDown:
		t.Y += t.tuning.TankSpeed
	case engine.CommandRotateLeft:
		t.Heading = normalizeHeading(t.Heading - t.tuning.RotationStep)
	case engine.CommandRotateRight:
		t.Heading = normalizeHeading(t.Heading + t.tuning.RotationStep)
	case engine.CommandFire:
		t.Fire()
	}

	t.Laser.Update()
}

// Fire launches the laser from the tank's center along its heading. A laser
// still in flight is restarted.
func (t *Tank) Fire() {
	cx, cy := t.Center()
	t.Laser.Fire(cx, cy, t.Heading)
	t.shots++
	t.cues.Fire(t.Side)
}

// Rollback undoes this frame's movement.
func (t *Tank) Rollback() {
	t.X, t.Y = t.prevX, t.prevY
}

// Render draws the laser, then the tank sprite rotated to its heading.
func (t *Tank) Render(r engine.Renderer) {
	t.Body.Render(r)
	t.Laser.Render(r)

	cx, cy := t.Center()
	rotation := (t.Heading - t.baseHeading) * math.Pi / 180
	r.WithTransform(cx, cy, rotation, func() {
		r.DrawImage(t.Sprite, -t.Width/2, -t.Height/2, t.Width, t.Height)
	})
}

// Shots returns how many times the tank has fired.
func (t *Tank) Shots() int64 {
	return t.shots
}

// Observe implements input.Observer for scripted opponents.
func (t *Tank) Observe() input.Snapshot {
	return input.Snapshot{
		X:           t.X,
		Y:           t.Y,
		Width:       t.Width,
		Height:      t.Height,
		Heading:     t.Heading,
		LaserActive: t.Laser.IsActive(),
	}
}

func normalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
