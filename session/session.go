// Package session assembles one duel from configuration: layout, controllers,
// audio cues, level and game, all driven by a single frame queue.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/plus3/tankduel/audio"
	"github.com/plus3/tankduel/config"
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/tankduel"
	"go.uber.org/zap"
)

// Session owns the pieces of a running duel. Backends drive Frames and feed
// Hub; Close releases controllers and the audio device.
type Session struct {
	ID     uuid.UUID
	Config *config.Config
	Layout tankduel.Layout
	Hub    *input.Hub
	Clock  *engine.Clock
	Frames *engine.FrameQueue
	Cues   *audio.Cues
	Level  *tankduel.MainLevel
	Game   *engine.Game

	closers []func()
	log     *zap.Logger
}

// New builds a session from cfg. Nothing runs until the game is started by a
// backend.
func New(cfg *config.Config, log *zap.Logger) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("session: nil config")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		ID:     uuid.New(),
		Config: cfg,
		Hub:    input.NewHub(),
		Clock:  engine.NewClock(),
		Frames: engine.NewFrameQueue(),
	}
	s.log = log.With(zap.Stringer("match", s.ID))

	layout, err := tankduel.LoadLayout(cfg.Arena.Layout)
	if err != nil {
		return nil, err
	}
	s.Layout = layout

	left, closeLeft, err := cfg.Controls.Left.Controller(s.Hub, input.LeftKeymap, s.Clock, s.log.Named("left"))
	if err != nil {
		return nil, fmt.Errorf("left controls: %w", err)
	}
	s.closers = append(s.closers, closeLeft)

	right, closeRight, err := cfg.Controls.Right.Controller(s.Hub, input.RightKeymap, s.Clock, s.log.Named("right"))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("right controls: %w", err)
	}
	s.closers = append(s.closers, closeRight)

	s.Cues = audio.NewCues(audio.Options{
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
		Speaker:    cfg.Audio.Enabled,
	}, s.log.Named("audio"))
	s.closers = append(s.closers, s.Cues.Close)

	s.Level = tankduel.NewMainLevel(layout)
	s.Level.Tuning = cfg.Tuning.Tuning()
	s.Level.Cues = s.Cues
	s.Level.LeftInput = left
	s.Level.RightInput = right
	s.Level.Log = s.log

	s.Game = engine.NewGame(s.Level, layout.Arena(), s.Frames,
		engine.WithClock(s.Clock),
		engine.WithLogger(s.log))

	s.log.Info("session ready",
		zap.String("layout", layout.Name),
		zap.String("left", cfg.Controls.Left.Kind),
		zap.String("right", cfg.Controls.Right.Kind),
		zap.Bool("audio", cfg.Audio.Enabled))

	return s, nil
}

// Close releases controllers and audio. It is safe to call more than once.
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Logger returns the session logger, tagged with the match id.
func (s *Session) Logger() *zap.Logger {
	return s.log
}
