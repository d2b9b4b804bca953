package tankduel

import (
	"image/color"

	"github.com/plus3/tankduel/engine"
)

// Laser is a tank's single projectile. While not in flight it rests off
// stage and draws nothing.
type Laser struct {
	*engine.Projectile
	Color color.Color
}

// NewLaser creates an idle laser moving on clock.
func NewLaser(clock *engine.Clock, tuning Tuning, c color.Color) *Laser {
	return &Laser{
		Projectile: engine.NewProjectile(clock, tuning.Projectile()),
		Color:      c,
	}
}

// Render draws the laser as a filled box.
func (l *Laser) Render(r engine.Renderer) {
	l.Projectile.Render(r)
	if l.OffStage() {
		return
	}
	r.FillRect(l.X, l.Y, l.Width, l.Height, l.Color)
}
