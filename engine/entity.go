package engine

// Updatable is advanced once per frame.
type Updatable interface {
	Update()
}

// Renderable emits draw calls. Render must not mutate simulation state.
type Renderable interface {
	Render(r Renderer)
}

// Collider exposes the bounding box used by Physics.
type Collider interface {
	Bounds() Rect
}

// Entity is anything a Scene can own: updatable, renderable and collidable.
type Entity interface {
	Updatable
	Renderable
	Collider
}

// InputController maps buffered raw input to a single pending command.
// Update writes the buffered token into the body and clears the buffer, so
// each discrete input event is applied exactly once.
type InputController interface {
	Update(b *Body)
}

// Body is the positioned, sized base every entity embeds. Embedding types
// that override Update or Render call the Body version first.
type Body struct {
	X, Y          float64
	Width, Height float64

	// Command is the single-slot pending command, written by Input.
	Command Command

	// Input is optional; when nil Update is a no-op.
	Input InputController
}

// NewBody creates a body at the given position and size.
func NewBody(x, y, width, height float64) Body {
	r := NewRect(x, y, width, height)
	return Body{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Update lets the attached controller write the pending command.
func (b *Body) Update() {
	if b.Input != nil {
		b.Input.Update(b)
	}
}

// Render draws nothing.
func (b *Body) Render(Renderer) {}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// MoveTo sets the top-left position.
func (b *Body) MoveTo(x, y float64) {
	b.X = x
	b.Y = y
}

// Center returns the center point of the body.
func (b *Body) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
