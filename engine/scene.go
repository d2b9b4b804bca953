package engine

import (
	"image/color"

	"go.uber.org/zap"
)

// Level populates a scene: it creates entities, adds them to the roster and
// registers collision relations. Create runs once, before the first frame.
type Level interface {
	Create(scene *Scene)
}

// LevelFunc adapts a plain function to Level.
type LevelFunc func(scene *Scene)

func (f LevelFunc) Create(scene *Scene) { f(scene) }

// Scene owns the entity roster and one Physics instance.
type Scene struct {
	Physics    *Physics
	Background color.Color

	arena    Arena
	clock    *Clock
	children []Entity
	log      *zap.Logger
}

// NewScene creates an empty scene for the arena. Timers created by entities
// of this scene should be scheduled on clock.
func NewScene(arena Arena, clock *Clock, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = NewClock()
	}
	return &Scene{
		Physics:    NewPhysics(arena, log.Named("physics")),
		Background: color.Black,
		arena:      arena,
		clock:      clock,
		children:   make([]Entity, 0, 16),
		log:        log,
	}
}

// Add appends e to the roster. Nil entities are ignored.
func (s *Scene) Add(e Entity) {
	if isNilCollider(e) {
		return
	}
	s.children = append(s.children, e)
}

// Children returns a copy of the roster in update order.
func (s *Scene) Children() []Entity {
	out := make([]Entity, len(s.children))
	copy(out, s.children)
	return out
}

// Arena returns the scene bounds.
func (s *Scene) Arena() Arena {
	return s.arena
}

// Clock returns the timer queue the scene's entities schedule on.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// Logger returns the scene logger.
func (s *Scene) Logger() *zap.Logger {
	return s.log
}

// Update runs every child's Update in roster order, then evaluates collisions.
func (s *Scene) Update() {
	for _, child := range s.children {
		child.Update()
	}
	s.Physics.Update()
}

// Render clears the target, paints the background and renders every child in
// roster order.
func (s *Scene) Render(r Renderer) {
	r.Clear()
	if s.Background != nil {
		r.FillRect(0, 0, float64(s.arena.Width), float64(s.arena.Height), s.Background)
	}
	for _, child := range s.children {
		child.Render(r)
	}
}
