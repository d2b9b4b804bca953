package audio_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/tankduel/audio"
	"github.com/plus3/tankduel/tankduel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tankduel.Cues = (*audio.Cues)(nil)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(44100)

	s, err := audio.Tone(rate, 440, 100*time.Millisecond, 0.5)
	require.NoError(t, err)
	assert.Equal(t, rate.N(100*time.Millisecond), drain(s))

	t.Run("samples stay in range", func(t *testing.T) {
		s, err := audio.Tone(rate, 440, 10*time.Millisecond, 1)
		require.NoError(t, err)

		buf := make([][2]float64, 200)
		n, _ := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 1.0)
			assert.GreaterOrEqual(t, buf[i][0], -1.0)
		}
	})

	t.Run("silent volume", func(t *testing.T) {
		s, err := audio.Tone(rate, 440, 10*time.Millisecond, 0)
		require.NoError(t, err)

		buf := make([][2]float64, 100)
		n, _ := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.Equal(t, 0.0, buf[i][0])
		}
	})

	t.Run("frequency above nyquist", func(t *testing.T) {
		_, err := audio.Tone(rate, 30000, 10*time.Millisecond, 1)
		assert.Error(t, err)
	})
}

func TestCuesMixHeadless(t *testing.T) {
	cues := audio.NewCues(audio.Options{SampleRate: 8000, Volume: 0.3}, nil)
	defer cues.Close()

	cues.Fire(tankduel.Left)
	cues.Hit(tankduel.Left)

	assert.Equal(t, int64(2), cues.Played())
	assert.Equal(t, 1, cues.Mixer().Len(), "only the latest cue is kept without a speaker")

	// The hit cue is the longest at 210ms; well after that the mixer is empty.
	rate := beep.SampleRate(8000)
	buf := make([][2]float64, rate.N(500*time.Millisecond))
	cues.Mixer().Stream(buf)
	assert.Equal(t, 0, cues.Mixer().Len())
}

func TestCuesHeadlessMixerStaysBounded(t *testing.T) {
	cues := audio.NewCues(audio.Options{SampleRate: 8000}, nil)
	defer cues.Close()

	for i := 0; i < 1000; i++ {
		cues.Fire(tankduel.Left)
		cues.Hit(tankduel.Right)
	}

	assert.Equal(t, int64(2000), cues.Played())
	assert.Equal(t, 1, cues.Mixer().Len())
}

func TestCuesClose(t *testing.T) {
	cues := audio.NewCues(audio.Options{}, nil)
	cues.Fire(tankduel.Right)
	require.Equal(t, 1, cues.Mixer().Len())

	cues.Close()
	assert.Equal(t, 0, cues.Mixer().Len())
}
