package ebitengine

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"go.uber.org/zap"
)

var _ engine.Renderer = (*Renderer)(nil)

// Layer is drawn above the game, e.g. a debug overlay.
type Layer interface {
	Update(game *engine.Game)
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Captures() Capture
}

// AppOption configures an App.
type AppOption func(*App)

// WithLayer draws l above the game and lets it claim input devices.
func WithLayer(l Layer) AppOption {
	return func(a *App) {
		a.layer = l
	}
}

// WithQuitKeys replaces the keys that close the window. Defaults to Escape.
func WithQuitKeys(keys ...ebiten.Key) AppOption {
	return func(a *App) {
		a.quitKeys = keys
	}
}

// WithAppLogger sets the logger for the app and its renderer.
func WithAppLogger(log *zap.Logger) AppOption {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// App implements ebiten.Game. Each ebiten tick polls input, delivers one
// frame of the game into a display list, and Draw replays that list scaled to
// the window.
type App struct {
	game     *engine.Game
	frames   *engine.FrameQueue
	display  *engine.DisplayList
	renderer *Renderer
	poller   *Poller
	arena    engine.Arena
	layer    Layer
	quitKeys []ebiten.Key
	log      *zap.Logger

	start   time.Time
	screenW int
	screenH int
}

// NewApp takes over game's renderer. The game must have been created with
// frames as its host.
func NewApp(game *engine.Game, frames *engine.FrameQueue, hub *input.Hub, opts ...AppOption) *App {
	a := &App{
		game:     game,
		frames:   frames,
		display:  engine.NewDisplayList(),
		poller:   NewPoller(hub),
		arena:    game.Scene().Arena(),
		quitKeys: []ebiten.Key{ebiten.KeyEscape},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.renderer = NewRenderer(a.log.Named("renderer"))
	a.screenW, a.screenH = a.arena.Width, a.arena.Height

	game.SetRenderer(a.display)
	return a
}

func (a *App) Update() error {
	for _, k := range a.quitKeys {
		if ebiten.IsKeyPressed(k) {
			return ebiten.Termination
		}
	}

	var capture Capture
	if a.layer != nil {
		capture = a.layer.Captures()
	}
	a.poller.Poll(a.screenW, a.screenH, capture)

	if a.start.IsZero() {
		a.start = time.Now()
	}
	a.Advance(time.Since(a.start))

	if a.layer != nil {
		a.layer.Update(a.game)
	}
	return nil
}

// Advance starts the game if needed and delivers one frame at timestamp,
// recording its draw calls for the next Draw.
func (a *App) Advance(timestamp time.Duration) {
	if !a.game.Started() {
		a.game.Start()
		a.log.Debug("game started", zap.Int("width", a.arena.Width), zap.Int("height", a.arena.Height))
	}
	if a.frames.Pending() == 0 {
		return
	}
	a.display.Reset()
	a.frames.Step(timestamp)
}

// Display returns the draw calls of the last delivered frame.
func (a *App) Display() *engine.DisplayList {
	return a.display
}

func (a *App) Draw(screen *ebiten.Image) {
	scale, ox, oy := Fit(a.arena, a.screenW, a.screenH)
	a.renderer.SetTarget(screen, scale, ox, oy)
	a.display.Replay(a.renderer)

	if a.layer != nil {
		a.layer.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.screenW, a.screenH = outsideWidth, outsideHeight
	if a.layer != nil {
		a.layer.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Fit returns the uniform scale and offsets that center arena in a
// width×height screen.
func Fit(arena engine.Arena, width, height int) (scale, offsetX, offsetY float64) {
	if arena.Width == 0 || arena.Height == 0 || width <= 0 || height <= 0 {
		return 1, 0, 0
	}
	scale = min(float64(width)/float64(arena.Width), float64(height)/float64(arena.Height))
	offsetX = (float64(width) - float64(arena.Width)*scale) / 2
	offsetY = (float64(height) - float64(arena.Height)*scale) / 2
	return scale, offsetX, offsetY
}

// WindowOptions configures the native window.
type WindowOptions struct {
	Title string
	Scale int
	TPS   int
}

// Run opens the window and blocks until it is closed.
func Run(app *App, opts WindowOptions) error {
	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(app.arena.Width*scale, app.arena.Height*scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
