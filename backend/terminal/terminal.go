package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"go.uber.org/zap"
)

// KeyName converts a tcell key event to the backend-neutral key name.
func KeyName(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace, true
		}
		return input.Key(strings.ToLower(string(ev.Rune()))), true
	}
	return "", false
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithInterval sets the frame period. Defaults to 1/60s.
func WithInterval(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithLogger sets the logger. Console output would corrupt the screen, so
// pass a file-backed or no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Terminal) {
		if log != nil {
			t.log = log
		}
	}
}

// Terminal drives a game on a tcell screen. Frames are delivered and input is
// dispatched on the goroutine that calls Run.
type Terminal struct {
	screen   tcell.Screen
	game     *engine.Game
	frames   *engine.FrameQueue
	hub      *input.Hub
	renderer *Renderer
	interval time.Duration
	log      *zap.Logger
}

// New takes over game's renderer. The game must have been created with frames
// as its host, and screen must already be initialised.
func New(screen tcell.Screen, game *engine.Game, frames *engine.FrameQueue, hub *input.Hub, opts ...Option) *Terminal {
	t := &Terminal{
		screen:   screen,
		game:     game,
		frames:   frames,
		hub:      hub,
		renderer: NewRenderer(screen, game.Scene().Arena()),
		interval: time.Second / 60,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	game.SetRenderer(t.renderer)
	return t
}

// Run pumps frames until ctx is cancelled or Escape or Ctrl-C is pressed. It
// does not call Fini on the screen.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	start := time.Now()
	t.game.Start()
	t.log.Debug("terminal loop started", zap.Duration("interval", t.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.HandleEvent(ev) {
				t.log.Debug("quit requested")
				return nil
			}
		case now := <-ticker.C:
			t.Step(now.Sub(start))
		}
	}
}

// Step delivers one frame and shows it.
func (t *Terminal) Step(timestamp time.Duration) {
	t.frames.Step(timestamp)
	t.screen.Show()
}

// HandleEvent forwards key presses to the hub. It returns false when the
// event asks to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if name, ok := KeyName(ev); ok {
			// Terminals report no releases, so every press is a tap.
			t.hub.Dispatch(input.KeyEvent(name, input.Press))
			t.hub.Dispatch(input.KeyEvent(name, input.Release))
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}
