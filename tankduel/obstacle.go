package tankduel

import (
	"image/color"

	"github.com/plus3/tankduel/engine"
)

// Obstacle is a static wall block. Tanks bounce off it and lasers are
// absorbed by it.
type Obstacle struct {
	engine.Body
	Color color.Color
}

// NewObstacle creates an obstacle covering r.
func NewObstacle(r engine.Rect) *Obstacle {
	return &Obstacle{
		Body:  engine.NewBody(r.X, r.Y, r.W, r.H),
		Color: ColorObstacle,
	}
}

// Render fills the obstacle box.
func (o *Obstacle) Render(r engine.Renderer) {
	o.Body.Render(r)
	r.FillRect(o.X, o.Y, o.Width, o.Height, o.Color)
}
