package engine

import (
	"math"
	"time"
)

// ProjectileConfig holds the fixed motion parameters of a projectile.
type ProjectileConfig struct {
	Width, Height float64
	// Speed is the distance covered per tick.
	Speed float64
	// Tick is the period of the motion timer.
	Tick time.Duration
	// MaxDistance is the travel after which the projectile resets.
	MaxDistance float64
}

// Projectile is a body moved by its own repeating timer on a Clock. While
// inactive it rests at an off-stage coordinate wholly outside any arena, so
// Physics ignores it without a separate flag.
type Projectile struct {
	Body

	cfg   ProjectileConfig
	clock *Clock

	originX, originY float64
	dx, dy           float64
	traveled         float64
	timer            TimerID
	resolved         bool
	ticks            int64
}

// NewProjectile creates an inactive projectile whose motion timer runs on clock.
func NewProjectile(clock *Clock, cfg ProjectileConfig) *Projectile {
	p := &Projectile{
		Body:  NewBody(0, 0, cfg.Width, cfg.Height),
		cfg:   cfg,
		clock: clock,
	}
	p.park()
	return p
}

// Fire launches the projectile from (x, y) along headingDeg (0 points along
// +X, 90 along +Y). Any motion timer from a previous shot is cleared first,
// so at most one timer is ever scheduled per projectile.
func (p *Projectile) Fire(x, y, headingDeg float64) {
	p.MoveTo(x, y)
	p.originX, p.originY = x, y

	rad := headingDeg * math.Pi / 180
	p.dx = p.cfg.Speed * math.Cos(rad)
	p.dy = p.cfg.Speed * math.Sin(rad)
	p.traveled = 0
	p.resolved = false

	p.clock.Clear(p.timer)
	p.timer = 0
	if p.dx == 0 && p.dy == 0 {
		// A shot that cannot move would never reach its range.
		p.park()
		return
	}
	p.timer = p.clock.SetInterval(p.cfg.Tick, p.step)
}

func (p *Projectile) step() {
	p.ticks++
	p.X += p.dx
	p.Y += p.dy
	p.traveled = math.Hypot(p.X-p.originX, p.Y-p.originY)

	if p.traveled >= p.cfg.MaxDistance {
		p.Reset()
	}
}

// Reset returns the projectile to its off-stage rest position and cancels
// its motion timer.
func (p *Projectile) Reset() {
	p.clock.Clear(p.timer)
	p.timer = 0
	p.park()
}

func (p *Projectile) park() {
	p.MoveTo(-p.Width, -p.Height)
}

// Resolve marks the current shot as having scored. It returns true only the
// first time it is called after a Fire, so a hit that overlaps its target for
// several frames counts once.
func (p *Projectile) Resolve() bool {
	if p.resolved {
		return false
	}
	p.resolved = true
	return true
}

// IsActive reports whether the motion timer is scheduled.
func (p *Projectile) IsActive() bool {
	return p.clock.Active(p.timer)
}

// OffStage reports whether the projectile sits at its rest coordinate.
func (p *Projectile) OffStage() bool {
	return p.X == -p.Width && p.Y == -p.Height
}

// Traveled returns the distance from the firing origin.
func (p *Projectile) Traveled() float64 {
	return p.traveled
}

// Ticks returns how many motion steps the projectile has taken in total.
func (p *Projectile) Ticks() int64 {
	return p.ticks
}

// Velocity returns the per-tick displacement of the current shot.
func (p *Projectile) Velocity() (dx, dy float64) {
	return p.dx, p.dy
}

// Config returns the projectile's motion parameters.
func (p *Projectile) Config() ProjectileConfig {
	return p.cfg
}
