package input_test

import (
	"testing"
	"time"

	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDispatchOrder(t *testing.T) {
	hub := input.NewHub()

	var order []string
	hub.Subscribe(input.ListenerFunc(func(input.Event) { order = append(order, "first") }))
	hub.Subscribe(nil)
	hub.Subscribe(input.ListenerFunc(func(input.Event) { order = append(order, "second") }))

	hub.Dispatch(input.KeyEvent(input.KeySpace, input.Press))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, int64(1), hub.Dispatched())
}

func TestKeyControllerSingleSlot(t *testing.T) {
	ctrl := input.NewKeyController(input.LeftKeymap)
	body := engine.NewBody(0, 0, 32, 32)
	body.Input = ctrl

	t.Run("press is applied exactly once", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent(input.KeySpace, input.Press))
		body.Update()
		assert.Equal(t, engine.CommandFire, body.Command)

		body.Update()
		assert.Equal(t, engine.CommandNone, body.Command)
	})

	t.Run("last press before update wins", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent(input.KeyArrowLeft, input.Press))
		ctrl.HandleEvent(input.KeyEvent(input.KeyArrowRight, input.Press))
		body.Update()
		assert.Equal(t, engine.CommandRight, body.Command)
	})

	t.Run("unbound keys and joystick events are ignored", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent("z", input.Press))
		ctrl.HandleEvent(input.TouchEvent(input.DirectionButton, input.Press))
		assert.Equal(t, engine.CommandNone, ctrl.Pending())
	})

	t.Run("release does not buffer", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent(input.KeyArrowLeft, input.Release))
		assert.Equal(t, engine.CommandNone, ctrl.Pending())
	})
}

func TestKeyControllerHoldRepeat(t *testing.T) {
	clock := engine.NewClock()
	ctrl := input.NewKeyController(input.RightKeymap, input.WithHoldRepeat(clock, 50*time.Millisecond))
	body := engine.NewBody(0, 0, 32, 32)
	body.Input = ctrl

	ctrl.HandleEvent(input.KeyEvent("a", input.Press))
	body.Update()
	require.Equal(t, engine.CommandLeft, body.Command)
	assert.Equal(t, input.Key("a"), ctrl.Held())

	body.Update()
	assert.Equal(t, engine.CommandNone, body.Command, "nothing until the repeat period elapses")

	clock.Advance(50 * time.Millisecond)
	body.Update()
	assert.Equal(t, engine.CommandLeft, body.Command)

	ctrl.HandleEvent(input.KeyEvent("a", input.Release))
	assert.Equal(t, 0, clock.Pending(), "release cancels the repeat timer")

	clock.Advance(time.Second)
	body.Update()
	assert.Equal(t, engine.CommandNone, body.Command)

	t.Run("fire does not repeat", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent("f", input.Press))
		assert.Equal(t, 0, clock.Pending())
	})

	t.Run("pressing a second movement key replaces the repeat", func(t *testing.T) {
		ctrl.HandleEvent(input.KeyEvent("w", input.Press))
		ctrl.HandleEvent(input.KeyEvent("s", input.Press))
		assert.Equal(t, 1, clock.Pending())
		assert.Equal(t, input.Key("s"), ctrl.Held())

		ctrl.Close()
		assert.Equal(t, 0, clock.Pending())
	})
}

func TestJoystickController(t *testing.T) {
	joy := input.NewJoystickController()
	body := engine.NewBody(0, 0, 32, 32)
	body.Input = joy

	tests := []struct {
		dir  input.Direction
		want engine.Command
	}{
		{input.DirectionUp, engine.CommandUp},
		{input.DirectionDown, engine.CommandDown},
		{input.DirectionLeft, engine.CommandLeft},
		{input.DirectionRight, engine.CommandRight},
		{input.DirectionButton, engine.CommandFire},
		{input.DirectionNone, engine.CommandNone},
	}

	for _, tt := range tests {
		joy.HandleEvent(input.TouchEvent(tt.dir, input.Press))
		body.Update()
		assert.Equal(t, tt.want, body.Command)
	}

	joy.HandleEvent(input.TouchEvent(input.DirectionUp, input.Release))
	joy.HandleEvent(input.KeyEvent(input.KeySpace, input.Press))
	body.Update()
	assert.Equal(t, engine.CommandNone, body.Command)
}

func TestParseKeymap(t *testing.T) {
	km, err := input.ParseKeymap(map[string]string{
		"left":  "LEFT",
		"Space": "fire",
		"Q":     "rotate_left",
	})
	require.NoError(t, err)
	assert.Equal(t, engine.CommandLeft, km[input.KeyArrowLeft])
	assert.Equal(t, engine.CommandFire, km[input.KeySpace])
	assert.Equal(t, engine.CommandRotateLeft, km["q"])

	_, err = input.ParseKeymap(map[string]string{"pageup": "fire"})
	assert.Error(t, err)

	_, err = input.ParseKeymap(map[string]string{"x": "jump"})
	assert.ErrorContains(t, err, "unknown command")
}
