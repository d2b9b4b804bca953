// Package config loads tankduel settings from TOML.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/plus3/tankduel/tankduel"
)

// Config is the full settings file. Sections left out keep their Default
// values.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Arena    ArenaConfig    `toml:"arena"`
	Tuning   TuningConfig   `toml:"tuning"`
	Controls ControlsConfig `toml:"controls"`
	Audio    AudioConfig    `toml:"audio"`
	Debug    DebugConfig    `toml:"debug"`
	Logging  LoggingConfig  `toml:"logging"`
}

// WindowConfig sizes the native window and the logic tick rate.
type WindowConfig struct {
	Title string `toml:"title"`
	Scale int    `toml:"scale"` // window pixels per arena unit
	TPS   int    `toml:"tps"`   // logic ticks per second
}

// ArenaConfig selects the arena layout.
type ArenaConfig struct {
	Layout string `toml:"layout"` // path to a YAML layout, empty for the built-in arena
}

// TuningConfig mirrors tankduel.Tuning with TOML keys.
type TuningConfig struct {
	TankSize     float64       `toml:"tank_size"`
	TankSpeed    float64       `toml:"tank_speed"`
	RotationStep float64       `toml:"rotation_step"`
	LaserWidth   float64       `toml:"laser_width"`
	LaserHeight  float64       `toml:"laser_height"`
	LaserStep    float64       `toml:"laser_step"`
	LaserTick    time.Duration `toml:"laser_tick"`
	LaserRange   float64       `toml:"laser_range"`
}

// ControlsConfig holds one PlayerControls per side.
type ControlsConfig struct {
	Left  PlayerControls `toml:"left"`
	Right PlayerControls `toml:"right"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

// DebugConfig enables developer tooling.
type DebugConfig struct {
	Overlay bool `toml:"overlay"` // ImGui overlay in the windowed game
}

// LoggingConfig is passed to NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path and decodes it over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	t := tankduel.DefaultTuning()
	return &Config{
		Window: WindowConfig{
			Title: "Tank Duel",
			Scale: 1,
			TPS:   60,
		},
		Tuning: TuningConfig{
			TankSize:     t.TankSize,
			TankSpeed:    t.TankSpeed,
			RotationStep: t.RotationStep,
			LaserWidth:   t.LaserWidth,
			LaserHeight:  t.LaserHeight,
			LaserStep:    t.LaserStep,
			LaserTick:    t.LaserTick,
			LaserRange:   t.LaserRange,
		},
		Controls: ControlsConfig{
			Left: PlayerControls{
				Kind: KindKeys,
			},
			Right: PlayerControls{
				Kind:  KindScript,
				Think: 150 * time.Millisecond,
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window.scale must be at least 1, got %d", c.Window.Scale)
	}
	if c.Window.TPS < 1 {
		return fmt.Errorf("window.tps must be at least 1, got %d", c.Window.TPS)
	}
	if c.Tuning.TankSize <= 0 || c.Tuning.LaserWidth <= 0 || c.Tuning.LaserHeight <= 0 {
		return fmt.Errorf("tuning: sizes must be positive")
	}
	if c.Tuning.LaserTick <= 0 {
		return fmt.Errorf("tuning.laser_tick must be positive, got %v", c.Tuning.LaserTick)
	}
	if c.Tuning.LaserStep <= 0 {
		return fmt.Errorf("tuning.laser_step must be positive, got %v", c.Tuning.LaserStep)
	}
	if c.Tuning.LaserRange <= 0 {
		return fmt.Errorf("tuning.laser_range must be positive, got %v", c.Tuning.LaserRange)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within 0-1, got %v", c.Audio.Volume)
	}
	if err := c.Controls.Left.validate("left"); err != nil {
		return err
	}
	return c.Controls.Right.validate("right")
}

// Tuning converts the tuning section.
func (t TuningConfig) Tuning() tankduel.Tuning {
	return tankduel.Tuning{
		TankSize:     t.TankSize,
		TankSpeed:    t.TankSpeed,
		RotationStep: t.RotationStep,
		LaserWidth:   t.LaserWidth,
		LaserHeight:  t.LaserHeight,
		LaserStep:    t.LaserStep,
		LaserTick:    t.LaserTick,
		LaserRange:   t.LaserRange,
	}
}

// TickInterval returns the logic tick period.
func (w WindowConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(w.TPS)
}
