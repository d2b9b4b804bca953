package engine_test

import (
	"testing"

	"github.com/plus3/tankduel/engine"
	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	var trace []string
	a := newBox("a", 0, 0, 10, 10, &trace)
	b := newBox("b", 30, 20, 10, 10, &trace)
	var typedNil *box

	group := engine.NewGroup(a, nil, typedNil, b)

	t.Run("skips nil members", func(t *testing.T) {
		assert.Equal(t, 2, group.Len())
	})

	t.Run("forwards in registration order", func(t *testing.T) {
		trace = trace[:0]
		group.Update()
		group.Render(engine.NopRenderer{})
		assert.Equal(t, []string{"update:a", "update:b", "render:a", "render:b"}, trace)
	})

	t.Run("bounds is the union of members", func(t *testing.T) {
		assert.Equal(t, engine.NewRect(0, 0, 40, 30), group.Bounds())
		assert.Equal(t, engine.Rect{}, engine.NewGroup().Bounds())
	})

	t.Run("members is a copy", func(t *testing.T) {
		members := group.Members()
		members[0] = nil
		assert.Same(t, a, group.Members()[0])
	})
}
