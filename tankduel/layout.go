package tankduel

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/plus3/tankduel/engine"
	"gopkg.in/yaml.v3"
)

//go:embed layouts/default.yaml
var defaultLayout []byte

// Point is a spawn position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is an obstacle rectangle as written in layout files.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the box to an engine rectangle.
func (b Box) Rect() engine.Rect {
	return engine.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Layout describes an arena: its size, where the tanks start and the static
// obstacles.
type Layout struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Spawns struct {
		Left  Point `yaml:"left"`
		Right Point `yaml:"right"`
	} `yaml:"spawns"`
	Obstacles []Box `yaml:"obstacles"`
}

// Arena returns the layout bounds.
func (l Layout) Arena() engine.Arena {
	return engine.NewArena(l.Width, l.Height)
}

// Spawn returns the starting point for side.
func (l Layout) Spawn(side Side) Point {
	if side == Right {
		return l.Spawns.Right
	}
	return l.Spawns.Left
}

// Validate checks that the arena is usable.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout %q: arena must be positive, got %dx%d", l.Name, l.Width, l.Height)
	}
	for i, b := range l.Obstacles {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("layout %q: obstacle %d has empty size", l.Name, i)
		}
	}
	return nil
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads a layout file. An empty path returns DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(data)
}

// DefaultLayout returns the built-in arena.
func DefaultLayout() Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("tankduel: embedded layout is invalid: %v", err))
	}
	return l
}

// OpenLayout returns a bare arena of the given size with the classic spawn
// points (both tanks vertically centered against the side walls) and no
// obstacles.
func OpenLayout(width, height int, tankSize float64) Layout {
	l := Layout{Name: "open", Width: width, Height: height}
	y := float64(height) - float64(height)/2
	l.Spawns.Left = Point{X: 0, Y: y}
	l.Spawns.Right = Point{X: float64(width) - tankSize, Y: y}
	return l
}
