// Package audio plays short synthesized cues for firing and hits.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/tankduel/tankduel"
	"go.uber.org/zap"
)

// Options configures the cue player.
type Options struct {
	SampleRate int
	Volume     float64 // 0.0-1.0

	// Speaker opens the audio device. Without it cues are never played and
	// the mixer holds only the latest one.
	Speaker bool
}

type tone struct {
	freq     float64
	duration time.Duration
}

var (
	fireTones = map[tankduel.Side][]tone{
		tankduel.Left:  {{freq: 880, duration: 60 * time.Millisecond}},
		tankduel.Right: {{freq: 660, duration: 60 * time.Millisecond}},
	}
	hitTones = []tone{
		{freq: 440, duration: 90 * time.Millisecond},
		{freq: 220, duration: 120 * time.Millisecond},
	}
)

// Cues implements tankduel.Cues with sine tones mixed into one stream.
type Cues struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	log    *zap.Logger
	played int64
	live   bool
}

// NewCues creates the cue player. If the speaker cannot be opened the error
// is logged and the cues stay silent.
func NewCues(opts Options, log *zap.Logger) *Cues {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}

	c := &Cues{
		rate:   beep.SampleRate(opts.SampleRate),
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}

	if opts.Speaker {
		if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
			log.Warn("audio disabled", zap.Error(err))
			return c
		}
		speaker.Play(c.mixer)
		c.live = true
	}
	return c
}

// Fire plays the shot cue for side.
func (c *Cues) Fire(side tankduel.Side) {
	c.play(fireTones[side])
}

// Hit plays the hit cue.
func (c *Cues) Hit(shooter tankduel.Side) {
	c.play(hitTones)
}

func (c *Cues) play(tones []tone) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		s, err := Tone(c.rate, t.freq, t.duration, c.volume)
		if err != nil {
			c.log.Warn("tone", zap.Float64("freq", t.freq), zap.Error(err))
			return
		}
		parts = append(parts, s)
	}

	c.mu.Lock()
	c.played++
	c.mu.Unlock()

	speaker.Lock()
	if !c.live {
		// Nothing drains the mixer without a speaker.
		c.mixer.Clear()
	}
	c.mixer.Add(beep.Seq(parts...))
	speaker.Unlock()
}

// Played returns how many cues were queued.
func (c *Cues) Played() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Mixer returns the stream all cues are mixed into.
func (c *Cues) Mixer() *beep.Mixer {
	return c.mixer
}

// Close drops any cue still playing.
func (c *Cues) Close() {
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}

// Tone returns a sine tone of the given length at volume (0.0-1.0).
func Tone(rate beep.SampleRate, freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine %vHz: %w", freq, err)
	}
	return withVolume(beep.Take(rate.N(d), sine), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
