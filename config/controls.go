package config

import (
	"fmt"
	"os"
	"time"

	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"go.uber.org/zap"
)

// Controller kinds accepted by PlayerControls.Kind.
const (
	KindKeys     = "keys"
	KindJoystick = "joystick"
	KindScript   = "script"
	KindNone     = "none"
)

// PlayerControls selects and configures one player's controller.
type PlayerControls struct {
	Kind   string            `toml:"kind"`   // keys, joystick, script or none
	Keys   map[string]string `toml:"keys"`   // key name → command, replaces the default binding
	Repeat time.Duration     `toml:"repeat"` // hold-repeat period for movement keys, 0 disables
	Script string            `toml:"script"` // Lua file, empty for the built-in opponent
	Think  time.Duration     `toml:"think"`  // how often the script decides
}

func (p PlayerControls) validate(side string) error {
	switch p.Kind {
	case KindKeys, KindJoystick, KindNone:
	case KindScript:
		if p.Think <= 0 {
			return fmt.Errorf("controls.%s.think must be positive for scripts", side)
		}
	default:
		return fmt.Errorf("controls.%s.kind: unknown controller %q", side, p.Kind)
	}
	if p.Repeat < 0 {
		return fmt.Errorf("controls.%s.repeat must not be negative", side)
	}
	return nil
}

// Controller builds the configured controller. Keyboard and joystick
// controllers are subscribed to hub. The returned close function releases
// timers and script state and is never nil.
func (p PlayerControls) Controller(hub *input.Hub, defaults input.Keymap, clock *engine.Clock, log *zap.Logger) (engine.InputController, func(), error) {
	noop := func() {}

	switch p.Kind {
	case KindKeys:
		keymap := defaults
		if len(p.Keys) > 0 {
			km, err := input.ParseKeymap(p.Keys)
			if err != nil {
				return nil, noop, fmt.Errorf("keys: %w", err)
			}
			keymap = km
		}
		var opts []input.KeyOption
		if p.Repeat > 0 {
			opts = append(opts, input.WithHoldRepeat(clock, p.Repeat))
		}
		c := input.NewKeyController(keymap, opts...)
		hub.Subscribe(c)
		return c, c.Close, nil

	case KindJoystick:
		j := input.NewJoystickController()
		hub.Subscribe(j)
		return j, noop, nil

	case KindScript:
		source := input.DefaultScript
		if p.Script != "" {
			data, err := os.ReadFile(p.Script)
			if err != nil {
				return nil, noop, fmt.Errorf("read script %s: %w", p.Script, err)
			}
			source = string(data)
		}
		s, err := input.NewScriptController(source, clock, p.Think, log)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case KindNone:
		return nil, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown controller %q", p.Kind)
}
