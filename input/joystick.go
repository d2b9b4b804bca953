package input

import "github.com/plus3/tankduel/engine"

var joystickCommands = map[Direction]engine.Command{
	DirectionUp:     engine.CommandUp,
	DirectionDown:   engine.CommandDown,
	DirectionLeft:   engine.CommandLeft,
	DirectionRight:  engine.CommandRight,
	DirectionButton: engine.CommandFire,
}

// JoystickController maps touch joystick directions to commands with the
// same single-slot buffering as KeyController.
type JoystickController struct {
	buffer engine.Command
}

// NewJoystickController creates an idle joystick controller.
func NewJoystickController() *JoystickController {
	return &JoystickController{}
}

// HandleEvent implements Listener. Only presses of joystick events count.
func (j *JoystickController) HandleEvent(e Event) {
	if e.Key != "" || e.Action != Press {
		return
	}
	if cmd, ok := joystickCommands[e.Direction]; ok {
		j.buffer = cmd
	}
}

// Update implements engine.InputController.
func (j *JoystickController) Update(b *engine.Body) {
	b.Command = j.buffer
	j.buffer = engine.CommandNone
}
