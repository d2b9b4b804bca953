// Package ebitengine runs the game in a window through Ebiten: it replays the
// recorded frame onto the screen, polls keys and touches into an input.Hub
// and steps the frame queue from ebiten's update loop.
package ebitengine

import (
	"bytes"
	"image/color"
	"image/png"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tankduel/engine"
	"go.uber.org/zap"
)

// Size of one glyph of the ebitenutil debug font.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const maxCachedTexts = 64

// Renderer draws engine draw calls onto an ebiten image. Sprites are decoded
// once and cached by name.
type Renderer struct {
	target  *ebiten.Image
	geo     ebiten.GeoM
	rotated bool

	images map[string]*ebiten.Image
	texts  map[string]*ebiten.Image
	pixel  *ebiten.Image
	log    *zap.Logger
}

func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		images: make(map[string]*ebiten.Image),
		texts:  make(map[string]*ebiten.Image),
		log:    log,
	}
}

// SetTarget selects the image drawn to and the world-to-screen mapping.
func (r *Renderer) SetTarget(target *ebiten.Image, scale, offsetX, offsetY float64) {
	r.target = target
	r.geo.Reset()
	r.geo.Scale(scale, scale)
	r.geo.Translate(offsetX, offsetY)
	r.rotated = false
}

func (r *Renderer) Clear() {
	r.target.Clear()
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	if !r.rotated {
		x0, y0 := r.geo.Apply(x, y)
		x1, y1 := r.geo.Apply(x+w, y+h)
		vector.DrawFilledRect(r.target, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(r.geo)
	op.ColorScale.ScaleWithColor(c)
	r.target.DrawImage(r.whitePixel(), op)
}

func (r *Renderer) DrawImage(sprite engine.Sprite, x, y, w, h float64) {
	img := r.image(sprite)
	if img == nil {
		if sprite.Tint != nil {
			r.FillRect(x, y, w, h, sprite.Tint)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(r.geo)
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(img, op)
}

// WithTransform composes a rotation then a translation onto the current
// transform for the duration of fn.
func (r *Renderer) WithTransform(tx, ty, rotation float64, fn func()) {
	saved, savedRotated := r.geo, r.rotated

	var g ebiten.GeoM
	g.Rotate(rotation)
	g.Translate(tx, ty)
	g.Concat(saved)

	r.geo = g
	r.rotated = savedRotated || rotation != 0
	fn()
	r.geo, r.rotated = saved, savedRotated
}

// DrawText draws with the debug font scaled to font.Size. y is the baseline.
func (r *Renderer) DrawText(text string, x, y float64, font engine.Font, c color.Color) {
	if text == "" {
		return
	}
	size := font.Size
	if size <= 0 {
		size = glyphHeight
	}
	scale := size / glyphHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-size)
	op.GeoM.Concat(r.geo)
	op.ColorScale.ScaleWithColor(c)
	r.target.DrawImage(r.textImage(text), op)
}

func (r *Renderer) image(sprite engine.Sprite) *ebiten.Image {
	if img, ok := r.images[sprite.Name]; ok {
		return img
	}

	decoded, err := png.Decode(bytes.NewReader(sprite.PNG))
	if err != nil {
		// Cache the miss so a broken sprite is reported once.
		r.log.Warn("decode sprite", zap.String("sprite", sprite.Name), zap.Error(err))
		r.images[sprite.Name] = nil
		return nil
	}

	img := ebiten.NewImageFromImage(decoded)
	r.images[sprite.Name] = img
	return img
}

func (r *Renderer) textImage(text string) *ebiten.Image {
	if img, ok := r.texts[text]; ok {
		return img
	}
	if len(r.texts) >= maxCachedTexts {
		for k, img := range r.texts {
			img.Deallocate()
			delete(r.texts, k)
		}
	}

	img := ebiten.NewImage(glyphWidth*utf8.RuneCountInString(text), glyphHeight)
	ebitenutil.DebugPrint(img, text)
	r.texts[text] = img
	return img
}

func (r *Renderer) whitePixel() *ebiten.Image {
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}
	return r.pixel
}
