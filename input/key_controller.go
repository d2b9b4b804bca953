package input

import (
	"time"

	"github.com/plus3/tankduel/engine"
)

// KeyController buffers the command bound to the most recent key press.
// Update hands the buffered command to the body and clears the buffer, so
// each press is applied once.
//
// With hold-repeat enabled, holding a movement key re-buffers its command
// every period until the key is released.
type KeyController struct {
	keymap Keymap
	buffer engine.Command

	clock       *engine.Clock
	repeat      time.Duration
	held        Key
	repeatTimer engine.TimerID
}

// KeyOption configures a KeyController.
type KeyOption func(*KeyController)

// WithHoldRepeat enables hold-repeat driven by clock.
func WithHoldRepeat(clock *engine.Clock, period time.Duration) KeyOption {
	return func(c *KeyController) {
		c.clock = clock
		c.repeat = period
	}
}

// NewKeyController creates a controller for the given bindings.
func NewKeyController(keymap Keymap, opts ...KeyOption) *KeyController {
	c := &KeyController{keymap: keymap.Clone()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HandleEvent implements Listener.
func (c *KeyController) HandleEvent(e Event) {
	if e.Key == "" {
		return
	}
	cmd, ok := c.keymap[e.Key]
	if !ok {
		return
	}

	switch e.Action {
	case Press:
		c.buffer = cmd
		if c.repeating() && cmd.IsMovement() {
			c.hold(e.Key, cmd)
		}
	case Release:
		if e.Key == c.held {
			c.release()
		}
	}
}

func (c *KeyController) repeating() bool {
	return c.clock != nil && c.repeat > 0
}

func (c *KeyController) hold(key Key, cmd engine.Command) {
	c.clock.Clear(c.repeatTimer)
	c.held = key
	c.repeatTimer = c.clock.SetInterval(c.repeat, func() {
		c.buffer = cmd
	})
}

func (c *KeyController) release() {
	if c.clock != nil {
		c.clock.Clear(c.repeatTimer)
	}
	c.repeatTimer = 0
	c.held = ""
}

// Update implements engine.InputController.
func (c *KeyController) Update(b *engine.Body) {
	b.Command = c.buffer
	c.buffer = engine.CommandNone
}

// Pending returns the buffered command without consuming it.
func (c *KeyController) Pending() engine.Command {
	return c.buffer
}

// Held returns the key currently repeating, if any.
func (c *KeyController) Held() Key {
	return c.held
}

// Close stops any hold-repeat timer.
func (c *KeyController) Close() {
	c.release()
}
