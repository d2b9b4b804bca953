package engine

import "strings"

// Command is a discrete input token written into an entity's pending-command
// slot. CommandNone is the empty slot.
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	CommandRotateLeft
	CommandRotateRight
	CommandFire
)

var commandNames = [...]string{
	CommandNone:        "NONE",
	CommandLeft:        "LEFT",
	CommandRight:       "RIGHT",
	CommandUp:          "UP",
	CommandDown:        "DOWN",
	CommandRotateLeft:  "ROTATE_LEFT",
	CommandRotateRight: "ROTATE_RIGHT",
	CommandFire:        "FIRE",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "UNKNOWN"
}

// ParseCommand converts a command name (case-insensitive) back into a Command.
// Unknown names map to CommandNone with ok=false.
func ParseCommand(name string) (Command, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return CommandNone, true
	}
	for i, n := range commandNames {
		if n == upper {
			return Command(i), true
		}
	}
	return CommandNone, false
}

// IsMovement reports whether the command steers rather than acts.
func (c Command) IsMovement() bool {
	switch c {
	case CommandLeft, CommandRight, CommandUp, CommandDown, CommandRotateLeft, CommandRotateRight:
		return true
	}
	return false
}
