// Package terminal runs the game in a text terminal through tcell. World
// coordinates are scaled down to character cells and sprites are drawn as
// blocks of their tint color.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tankduel/engine"
)

type transform struct {
	tx, ty   float64
	rotation float64
}

// apply maps a local point into the parent space.
func (t transform) apply(x, y float64) (float64, float64) {
	sin, cos := math.Sincos(t.rotation)
	return x*cos - y*sin + t.tx, x*sin + y*cos + t.ty
}

// Renderer draws engine draw calls onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	arena  engine.Arena
	stack  []transform
}

func NewRenderer(screen tcell.Screen, arena engine.Arena) *Renderer {
	return &Renderer{screen: screen, arena: arena}
}

// CellSize returns the world size of one character cell for the current
// screen size.
func (r *Renderer) CellSize() (float64, float64) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || r.arena.Width == 0 || r.arena.Height == 0 {
		return 1, 1
	}
	return float64(r.arena.Width) / float64(cols), float64(r.arena.Height) / float64(rows)
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	r.fill(x, y, w, h, tcell.StyleDefault.Background(toColor(c)))
}

// DrawImage fills the sprite's box with its tint. Sprites without a tint are
// skipped.
func (r *Renderer) DrawImage(sprite engine.Sprite, x, y, w, h float64) {
	if sprite.Tint == nil {
		return
	}
	r.fill(x, y, w, h, tcell.StyleDefault.Background(toColor(sprite.Tint)))
}

func (r *Renderer) WithTransform(tx, ty, rotation float64, fn func()) {
	r.stack = append(r.stack, transform{tx: tx, ty: ty, rotation: rotation})
	fn()
	r.stack = r.stack[:len(r.stack)-1]
}

// DrawText writes text starting at the cell containing (x, y). Font size is
// ignored.
func (r *Renderer) DrawText(text string, x, y float64, font engine.Font, c color.Color) {
	wx, wy := r.toWorld(x, y)
	cw, ch := r.CellSize()
	col, row := int(math.Floor(wx/cw)), int(math.Floor(wy/ch))

	style := tcell.StyleDefault.Foreground(toColor(c))
	for i, glyph := range []rune(text) {
		r.screen.SetContent(col+i, row, glyph, nil, style)
	}
}

// fill paints every cell whose centre lies in the transformed box.
func (r *Renderer) fill(x, y, w, h float64, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}

	// The box's world-space AABB. Exact for the quarter-turn rotations tanks use.
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := r.toWorld(p[0], p[1])
		x0, y0 = min(x0, px), min(y0, py)
		x1, y1 = max(x1, px), max(y1, py)
	}

	cols, rows := r.screen.Size()
	cw, ch := r.CellSize()

	c0, c1 := cellSpan(x0, x1, cw)
	r0, r1 := cellSpan(y0, y1, ch)
	c0, c1 = max(c0, 0), min(c1, cols-1)
	r0, r1 = max(r0, 0), min(r1, rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// cellSpan returns the cells whose centre lies in [lo, hi). A span narrower
// than a cell still covers the cell containing lo.
func cellSpan(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	if last < first {
		first = int(math.Floor(lo / size))
		last = first
	}
	return first, last
}

func (r *Renderer) toWorld(x, y float64) (float64, float64) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		x, y = r.stack[i].apply(x, y)
	}
	return x, y
}

func toColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	red, green, blue, _ := c.RGBA()
	return tcell.NewRGBColor(int32(red>>8), int32(green>>8), int32(blue>>8))
}
