package engine

import "image/color"

// Sprite is a handle to a static embedded image. Backends decode PNG once and
// cache it by Name. Tint is used by backends that cannot draw images.
type Sprite struct {
	Name string
	PNG  []byte
	Tint color.Color
}

// Font describes text styling for DrawText.
type Font struct {
	Family string
	Size   float64
}

// Renderer is the drawing boundary. The engine only writes to it.
type Renderer interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	DrawImage(sprite Sprite, x, y, w, h float64)
	// WithTransform runs fn with a translation and a rotation (radians)
	// applied to every draw call it makes.
	WithTransform(tx, ty, rotation float64, fn func())
	DrawText(text string, x, y float64, font Font, c color.Color)
}

// NopRenderer discards every draw call. Useful for headless runs.
type NopRenderer struct{}

func (NopRenderer) Clear() {}
func (NopRenderer) FillRect(x, y, w, h float64, c color.Color) {}
func (NopRenderer) DrawImage(sprite Sprite, x, y, w, h float64) {}
func (NopRenderer) WithTransform(tx, ty, rotation float64, fn func()) { fn() }
func (NopRenderer) DrawText(text string, x, y float64, font Font, c color.Color) {}
