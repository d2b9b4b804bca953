package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tankduel/config"
	"github.com/plus3/tankduel/input"
	"github.com/plus3/tankduel/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Audio.Enabled = false
	return cfg
}

func TestNew(t *testing.T) {
	cfg := quietConfig()
	cfg.Controls.Right.Kind = config.KindNone

	s, err := session.New(cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "classic", s.Layout.Name)
	assert.False(t, s.Game.Started())

	s.Game.Start()
	s.Frames.Step(0)

	require.NotNil(t, s.Level.LeftTank)
	assert.Nil(t, s.Level.RightInput)
	assert.Same(t, s.Cues, s.Level.Cues)
	assert.Equal(t, config.Default().Tuning.Tuning(), s.Level.Tuning)
	assert.Same(t, s.Clock, s.Game.Clock())

	t.Run("keyboard reaches the left tank", func(t *testing.T) {
		s.Hub.Dispatch(input.KeyEvent(input.KeySpace, input.Press))
		s.Frames.Step(16 * time.Millisecond)
		assert.Equal(t, int64(1), s.Level.LeftTank.Shots())
		assert.Equal(t, int64(1), s.Cues.Played())
	})

	s.Close()
	s.Close()
}

func TestNewErrors(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := session.New(nil, nil)
		assert.Error(t, err)
	})

	t.Run("missing layout", func(t *testing.T) {
		cfg := quietConfig()
		cfg.Arena.Layout = filepath.Join(t.TempDir(), "nope.yaml")
		_, err := session.New(cfg, nil)
		assert.ErrorContains(t, err, "read layout")
	})

	t.Run("broken opponent script", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.lua")
		require.NoError(t, os.WriteFile(path, []byte("function decide("), 0o644))

		cfg := quietConfig()
		cfg.Controls.Right.Script = path
		_, err := session.New(cfg, nil)
		assert.ErrorContains(t, err, "right controls")
	})
}
