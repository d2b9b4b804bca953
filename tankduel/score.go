package tankduel

import (
	"strconv"

	"github.com/plus3/tankduel/engine"
)

// Score is the two-player score board. It has no size, so it never collides.
type Score struct {
	engine.Body

	arena engine.Arena
	left  int
	right int
}

// NewScore creates a zeroed score board for the arena.
func NewScore(arena engine.Arena) *Score {
	return &Score{arena: arena}
}

// IncrementLeft adds a point for the left player.
func (s *Score) IncrementLeft() {
	s.left++
}

// IncrementRight adds a point for the right player.
func (s *Score) IncrementRight() {
	s.right++
}

// Increment adds a point for side.
func (s *Score) Increment(side Side) {
	if side == Right {
		s.IncrementRight()
		return
	}
	s.IncrementLeft()
}

// Left returns the left player's points.
func (s *Score) Left() int { return s.left }

// Right returns the right player's points.
func (s *Score) Right() int { return s.right }

// Render draws both counters near the top corners.
func (s *Score) Render(r engine.Renderer) {
	s.Body.Render(r)

	w := float64(s.arena.Width)
	r.DrawText(strconv.Itoa(s.left), w/8, 50, ScoreFont, ColorScore)
	r.DrawText(strconv.Itoa(s.right), w-w/8, 50, ScoreFont, ColorScore)
}
