package tankduel

import (
	_ "embed"

	"github.com/plus3/tankduel/engine"
)

var (
	//go:embed assets/blue_tank.png
	blueTankPNG []byte

	//go:embed assets/red_tank.png
	redTankPNG []byte
)

// TankSprite returns the sprite for side's tank.
func TankSprite(side Side) engine.Sprite {
	if side == Right {
		return engine.Sprite{Name: "red_tank", PNG: redTankPNG, Tint: ColorRightLaser}
	}
	return engine.Sprite{Name: "blue_tank", PNG: blueTankPNG, Tint: ColorLeftLaser}
}
