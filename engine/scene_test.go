package engine_test

import (
	"image/color"
	"testing"

	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/engine/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSceneUpdateOrder(t *testing.T) {
	var trace []string
	scene := engine.NewScene(engine.NewArena(100, 100), nil, nil)

	a := newBox("a", 10, 10, 10, 10, &trace)
	b := newBox("b", 15, 15, 10, 10, &trace)
	scene.Add(a)
	scene.Add(b)
	scene.Physics.OnCollide(a, b, func(_, _ engine.Collider) {
		trace = append(trace, "collide")
	})

	scene.Update()
	assert.Equal(t, []string{"update:a", "update:b", "collide"}, trace,
		"collisions are evaluated after every child has updated")
}

func TestSceneAddIgnoresNil(t *testing.T) {
	scene := engine.NewScene(engine.NewArena(100, 100), nil, nil)
	var typedNil *box

	scene.Add(nil)
	scene.Add(typedNil)
	assert.Empty(t, scene.Children())
}

func TestSceneRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	scene := engine.NewScene(engine.NewArena(640, 480), nil, nil)
	scene.Background = color.Black
	var trace []string
	scene.Add(newBox("a", 0, 0, 1, 1, &trace))
	scene.Add(newBox("b", 0, 0, 1, 1, &trace))

	gomock.InOrder(
		renderer.EXPECT().Clear(),
		renderer.EXPECT().FillRect(0.0, 0.0, 640.0, 480.0, color.Black),
	)

	scene.Render(renderer)
	assert.Equal(t, []string{"render:a", "render:b"}, trace)
}

func TestSceneAppliesInputBeforeCollisions(t *testing.T) {
	scene := engine.NewScene(engine.NewArena(100, 100), nil, nil)

	a := newBox("a", 10, 10, 10, 10, nil)
	a.Input = &scriptedInput{commands: []engine.Command{engine.CommandFire}}
	scene.Add(a)

	scene.Update()
	assert.Equal(t, engine.CommandFire, a.Command)

	scene.Update()
	assert.Equal(t, engine.CommandNone, a.Command, "the controller consumed its only event")
}

func TestLevelFunc(t *testing.T) {
	scene := engine.NewScene(engine.NewArena(10, 10), nil, nil)
	level := engine.LevelFunc(func(s *engine.Scene) {
		s.Add(newBox("only", 0, 0, 1, 1, nil))
	})

	level.Create(scene)
	assert.Len(t, scene.Children(), 1)
}
