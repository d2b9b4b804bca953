package engine_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/tankduel/engine"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b engine.Rect
		want bool
	}{
		{"partial overlap", engine.NewRect(0, 0, 10, 10), engine.NewRect(5, 5, 10, 10), true},
		{"shared corner only", engine.NewRect(0, 0, 10, 10), engine.NewRect(10, 10, 10, 10), false},
		{"shared vertical edge", engine.NewRect(0, 0, 10, 10), engine.NewRect(10, 0, 10, 10), false},
		{"shared horizontal edge", engine.NewRect(0, 0, 10, 10), engine.NewRect(0, 10, 10, 10), false},
		{"contained", engine.NewRect(0, 0, 10, 10), engine.NewRect(2, 2, 3, 3), true},
		{"identical", engine.NewRect(1, 1, 4, 4), engine.NewRect(1, 1, 4, 4), true},
		{"disjoint", engine.NewRect(0, 0, 5, 5), engine.NewRect(50, 50, 5, 5), false},
		{"zero size inside", engine.NewRect(0, 0, 10, 10), engine.NewRect(5, 5, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, engine.Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlapsIsCommutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randomRect := func() engine.Rect {
		return engine.NewRect(
			float64(rng.IntN(40)-10),
			float64(rng.IntN(40)-10),
			float64(rng.IntN(20)),
			float64(rng.IntN(20)),
		)
	}

	for i := 0; i < 5000; i++ {
		a, b := randomRect(), randomRect()
		if engine.Overlaps(a, b) != engine.Overlaps(b, a) {
			t.Fatalf("Overlaps(%v, %v) is not commutative", a, b)
		}
	}
}

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := engine.NewRect(3, 4, -5, -1)
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 0.0, r.H)
	assert.Equal(t, 3.0, r.X)
	assert.Equal(t, 4.0, r.Y)
}

func TestArenaEscapes(t *testing.T) {
	arena := engine.NewArena(100, 100)

	tests := []struct {
		rect engine.Rect
		want bool
	}{
		{engine.NewRect(0, 0, 5, 5), false},
		{engine.NewRect(95, 95, 5, 5), false},
		{engine.NewRect(-1, 0, 5, 5), true},
		{engine.NewRect(0, -1, 5, 5), true},
		{engine.NewRect(96, 0, 5, 5), true},
		{engine.NewRect(0, 96, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.rect), func(t *testing.T) {
			assert.Equal(t, tt.want, arena.Escapes(tt.rect))
		})
	}
}

func TestArenaOutside(t *testing.T) {
	arena := engine.NewArena(100, 100)

	assert.False(t, arena.Outside(engine.NewRect(0, 0, 10, 10)))
	assert.False(t, arena.Outside(engine.NewRect(-5, -5, 10, 10)), "partially inside is not wholly outside")
	assert.True(t, arena.Outside(engine.NewRect(-3, -3, 3, 3)), "touching from outside counts as outside")
	assert.True(t, arena.Outside(engine.NewRect(100, 10, 5, 5)))
	assert.True(t, arena.Outside(engine.NewRect(10, 100, 5, 5)))
	assert.True(t, arena.Outside(engine.NewRect(10, -50, 5, 5)))
}

func TestNewArenaPanicsOnNegativeSize(t *testing.T) {
	assert.Panics(t, func() { engine.NewArena(-1, 10) })
}

func TestRectUnion(t *testing.T) {
	u := engine.NewRect(0, 0, 10, 10).Union(engine.NewRect(20, 5, 5, 20))
	assert.Equal(t, engine.NewRect(0, 0, 25, 25), u)
}
