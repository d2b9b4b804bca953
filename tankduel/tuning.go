// Package tankduel is the two-player tank duel: tanks, lasers, the score
// board, obstacles and the level that wires their collisions together.
package tankduel

import (
	"image/color"
	"time"

	"github.com/plus3/tankduel/engine"
)

// Side identifies a player.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Right {
		return Left
	}
	return Right
}

var (
	ColorBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorLeftLaser  = color.RGBA{R: 0x12, G: 0x4a, B: 0xe0, A: 0xff}
	ColorRightLaser = color.RGBA{R: 0xe0, G: 0x12, B: 0x12, A: 0xff}
	ColorScore      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorObstacle   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// ScoreFont is the font of the score board.
var ScoreFont = engine.Font{Family: "Verdana", Size: 48}

// Tuning holds the gameplay constants. Every field can be overridden from
// configuration.
type Tuning struct {
	TankSize     float64
	TankSpeed    float64
	RotationStep float64 // degrees

	LaserWidth  float64
	LaserHeight float64
	LaserStep   float64 // distance per tick
	LaserTick   time.Duration
	LaserRange  float64
}

// DefaultTuning returns the classic duel settings.
func DefaultTuning() Tuning {
	return Tuning{
		TankSize:     32,
		TankSpeed:    5,
		RotationStep: 90,
		LaserWidth:   3,
		LaserHeight:  3,
		LaserStep:    5,
		LaserTick:    30 * time.Millisecond,
		LaserRange:   150,
	}
}

// Projectile returns the laser motion parameters.
func (t Tuning) Projectile() engine.ProjectileConfig {
	return engine.ProjectileConfig{
		Width:       t.LaserWidth,
		Height:      t.LaserHeight,
		Speed:       t.LaserStep,
		Tick:        t.LaserTick,
		MaxDistance: t.LaserRange,
	}
}
