package engine

import "image/color"

type opKind uint8

const (
	opClear opKind = iota
	opFillRect
	opDrawImage
	opPushTransform
	opPopTransform
	opDrawText
)

type drawOp struct {
	kind       opKind
	x, y, w, h float64
	rotation   float64
	color      color.Color
	sprite     Sprite
	text       string
	font       Font
}

// DisplayList is a Renderer that records draw calls so they can be replayed
// later, e.g. from a backend's draw callback that runs separately from the
// logic tick.
type DisplayList struct {
	ops []drawOp
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Clear queues a clear.
func (d *DisplayList) Clear() {
	d.ops = append(d.ops, drawOp{kind: opClear})
}

// FillRect queues a filled rectangle.
func (d *DisplayList) FillRect(x, y, w, h float64, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opFillRect, x: x, y: y, w: w, h: h, color: c})
}

// DrawImage queues an image draw.
func (d *DisplayList) DrawImage(sprite Sprite, x, y, w, h float64) {
	d.ops = append(d.ops, drawOp{kind: opDrawImage, sprite: sprite, x: x, y: y, w: w, h: h})
}

// WithTransform records fn's draw calls between a push and a pop so the
// replay reproduces the same scope.
func (d *DisplayList) WithTransform(tx, ty, rotation float64, fn func()) {
	d.ops = append(d.ops, drawOp{kind: opPushTransform, x: tx, y: ty, rotation: rotation})
	fn()
	d.ops = append(d.ops, drawOp{kind: opPopTransform})
}

// DrawText queues a text draw.
func (d *DisplayList) DrawText(text string, x, y float64, font Font, c color.Color) {
	d.ops = append(d.ops, drawOp{kind: opDrawText, text: text, x: x, y: y, font: font, color: c})
}

// Len returns the number of queued operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Flush replays all queued operations onto r in order, then resets the list.
func (d *DisplayList) Flush(r Renderer) {
	d.replay(r, 0)
	d.ops = d.ops[:0]
}

// Reset drops every queued operation.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Replay draws the queued operations onto r without resetting the list.
func (d *DisplayList) Replay(r Renderer) {
	d.replay(r, 0)
}

func (d *DisplayList) replay(r Renderer, start int) int {
	for i := start; i < len(d.ops); i++ {
		op := d.ops[i]
		switch op.kind {
		case opClear:
			r.Clear()
		case opFillRect:
			r.FillRect(op.x, op.y, op.w, op.h, op.color)
		case opDrawImage:
			r.DrawImage(op.sprite, op.x, op.y, op.w, op.h)
		case opDrawText:
			r.DrawText(op.text, op.x, op.y, op.font, op.color)
		case opPushTransform:
			body := i + 1
			r.WithTransform(op.x, op.y, op.rotation, func() {
				d.replay(r, body)
			})
			i = d.matchingPop(i)
		case opPopTransform:
			return i
		}
	}
	return len(d.ops)
}

// matchingPop returns the index of the pop closing the push at index push.
func (d *DisplayList) matchingPop(push int) int {
	depth := 0
	for i := push; i < len(d.ops); i++ {
		switch d.ops[i].kind {
		case opPushTransform:
			depth++
		case opPopTransform:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(d.ops)
}
