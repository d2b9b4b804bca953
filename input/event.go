// Package input turns raw key, touch and script decisions into the discrete
// commands consumed by engine.Body.
//
// Backends translate their native events into Event values and Dispatch them
// through a Hub. Controllers subscribe to the hub, buffer at most one pending
// command, and hand it to their body on the next Update.
package input

// Key is a backend-neutral key name. Printable keys use their lower-case
// character, special keys use the names below.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
)

// Action distinguishes key/button presses from releases.
type Action uint8

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	if a == Release {
		return "release"
	}
	return "press"
}

// Direction is a touch joystick direction. DirectionButton is the fire button.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionButton
)

// Event is a single input occurrence. Keyboard events carry a Key, joystick
// events carry a Direction and an empty Key.
type Event struct {
	Key       Key
	Direction Direction
	Action    Action
}

// KeyEvent builds a keyboard event.
func KeyEvent(key Key, action Action) Event {
	return Event{Key: key, Action: action}
}

// TouchEvent builds a joystick event.
func TouchEvent(dir Direction, action Action) Event {
	return Event{Direction: dir, Action: action}
}

// Listener receives dispatched events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Hub fans events out to its listeners in subscription order. It is not safe
// for concurrent use; backends dispatch from the loop goroutine.
type Hub struct {
	listeners  []Listener
	dispatched int64
}

// NewHub creates a hub with no listeners.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe adds l. Nil listeners are ignored.
func (h *Hub) Subscribe(l Listener) {
	if l == nil {
		return
	}
	h.listeners = append(h.listeners, l)
}

// Dispatch delivers e to every listener.
func (h *Hub) Dispatch(e Event) {
	h.dispatched++
	for _, l := range h.listeners {
		l.HandleEvent(e)
	}
}

// Dispatched returns the number of events delivered so far.
func (h *Hub) Dispatched() int64 {
	return h.dispatched
}
