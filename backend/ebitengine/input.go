package ebitengine

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tankduel/input"
)

var namedKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyComma:      ",",
	ebiten.KeyPeriod:     ".",
	ebiten.KeySlash:      "/",
	ebiten.KeySemicolon:  ";",
	ebiten.KeyMinus:      "-",
	ebiten.KeyEqual:      "=",
}

// KeyName converts an ebiten key to the backend-neutral name. Letters and
// digits map to their lower-case character.
func KeyName(k ebiten.Key) (input.Key, bool) {
	if name, ok := namedKeys[k]; ok {
		return name, true
	}

	s := k.String()
	switch {
	case len(s) == 1:
		return input.Key(strings.ToLower(s)), true
	case len(s) == len("Digit0") && strings.HasPrefix(s, "Digit"):
		return input.Key(s[len("Digit"):]), true
	}
	return "", false
}

// TouchDirection maps a touch at (x, y) on a width×height screen to a
// joystick direction. The centre sixth of each axis is the fire button;
// elsewhere the axis with the larger relative offset wins.
func TouchDirection(x, y, width, height int) input.Direction {
	if width <= 0 || height <= 0 {
		return input.DirectionNone
	}

	dx := (float64(x) - float64(width)/2) / float64(width)
	dy := (float64(y) - float64(height)/2) / float64(height)

	if math.Abs(dx) < 1.0/6 && math.Abs(dy) < 1.0/6 {
		return input.DirectionButton
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			return input.DirectionLeft
		}
		return input.DirectionRight
	}
	if dy < 0 {
		return input.DirectionUp
	}
	return input.DirectionDown
}

// Capture tells the poller which devices an overlay is using.
type Capture struct {
	Keyboard bool
	Mouse    bool
}

// Poller turns ebiten's per-tick input state into hub events.
type Poller struct {
	hub     *input.Hub
	keys    []ebiten.Key
	touches []ebiten.TouchID
	held    map[ebiten.TouchID]input.Direction
	mouse   input.Direction
}

func NewPoller(hub *input.Hub) *Poller {
	return &Poller{
		hub:  hub,
		held: make(map[ebiten.TouchID]input.Direction),
	}
}

// Poll dispatches this tick's presses and releases. The mouse's left button
// acts as a single touch.
func (p *Poller) Poll(width, height int, capture Capture) {
	if !capture.Keyboard {
		p.pollKeys()
	}

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		x, y := ebiten.TouchPosition(id)
		dir := TouchDirection(x, y, width, height)
		p.held[id] = dir
		p.hub.Dispatch(input.TouchEvent(dir, input.Press))
	}
	for id, dir := range p.held {
		if inpututil.IsTouchJustReleased(id) {
			delete(p.held, id)
			p.hub.Dispatch(input.TouchEvent(dir, input.Release))
		}
	}

	if !capture.Mouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.mouse = TouchDirection(x, y, width, height)
		p.hub.Dispatch(input.TouchEvent(p.mouse, input.Press))
	}
	if p.mouse != input.DirectionNone && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.hub.Dispatch(input.TouchEvent(p.mouse, input.Release))
		p.mouse = input.DirectionNone
	}
}

func (p *Poller) pollKeys() {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if name, ok := KeyName(k); ok {
			p.hub.Dispatch(input.KeyEvent(name, input.Press))
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if name, ok := KeyName(k); ok {
			p.hub.Dispatch(input.KeyEvent(name, input.Release))
		}
	}
}
