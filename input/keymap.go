package input

import (
	"fmt"
	"strings"

	"github.com/plus3/tankduel/engine"
)

// Keymap binds keys to commands.
type Keymap map[Key]engine.Command

// LeftKeymap is the default binding for the left player.
var LeftKeymap = Keymap{
	KeyArrowLeft:  engine.CommandLeft,
	KeyArrowRight: engine.CommandRight,
	KeyArrowUp:    engine.CommandUp,
	KeyArrowDown:  engine.CommandDown,
	KeySpace:      engine.CommandFire,
	",":           engine.CommandRotateLeft,
	".":           engine.CommandRotateRight,
}

// RightKeymap is the default binding for the right player.
var RightKeymap = Keymap{
	"a": engine.CommandLeft,
	"d": engine.CommandRight,
	"w": engine.CommandUp,
	"s": engine.CommandDown,
	"f": engine.CommandFire,
	"q": engine.CommandRotateLeft,
	"e": engine.CommandRotateRight,
}

// Names for keys that can't be written as a single character in config files.
var keyAliases = map[string]Key{
	"left":       KeyArrowLeft,
	"arrowleft":  KeyArrowLeft,
	"right":      KeyArrowRight,
	"arrowright": KeyArrowRight,
	"up":         KeyArrowUp,
	"arrowup":    KeyArrowUp,
	"down":       KeyArrowDown,
	"arrowdown":  KeyArrowDown,
	"space":      KeySpace,
	" ":          KeySpace,
	"enter":      KeyEnter,
	"escape":     KeyEscape,
	"esc":        KeyEscape,
}

// ParseKey resolves a key name as written in configuration.
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(name)
	if k, ok := keyAliases[lower]; ok {
		return k, nil
	}
	if len([]rune(lower)) == 1 {
		return Key(lower), nil
	}
	return "", fmt.Errorf("unknown key name: %q", name)
}

// ParseKeymap builds a Keymap from key name → command name bindings.
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for keyName, commandName := range bindings {
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, err
		}
		cmd, ok := engine.ParseCommand(commandName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown command %q", keyName, commandName)
		}
		km[key] = cmd
	}
	return km, nil
}

// Clone returns a copy of the keymap.
func (k Keymap) Clone() Keymap {
	out := make(Keymap, len(k))
	for key, cmd := range k {
		out[key] = cmd
	}
	return out
}
