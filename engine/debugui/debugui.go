// Package debugui provides a Dear ImGui overlay for a running engine.Game.
// It shows the scene roster, a read-only inspector for the selected entity,
// collision counters and frame timing.
package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tankduel/engine"
)

// InputState reports whether Dear ImGui is consuming mouse or keyboard input.
// Backends check it before forwarding events to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the capture flags of the current ImGui context.
func CurrentInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Overlay groups the debug windows. Render must be called between the ImGui
// backend's BeginFrame and EndFrame.
type Overlay struct {
	Roster    *RosterBrowser
	Inspector *Inspector
	Physics   *PhysicsViewer
	Stats     *PerformanceStats

	windows []func()
}

// NewOverlay creates an overlay with every window enabled.
func NewOverlay() *Overlay {
	return &Overlay{
		Roster:    NewRosterBrowser(100),
		Inspector: NewInspector(),
		Physics:   NewPhysicsViewer(),
		Stats:     NewPerformanceStats(120),
	}
}

// AddWindow registers an extra render function, drawn after the built-in
// windows.
func (o *Overlay) AddWindow(render func()) {
	if render != nil {
		o.windows = append(o.windows, render)
	}
}

// Render draws all windows for game. dt is the duration of the last frame.
func (o *Overlay) Render(game *engine.Game, dt time.Duration) {
	scene := game.Scene()

	o.Roster.Render(scene)
	o.Inspector.Render(scene, o.Roster.Selected())
	o.Physics.Render(scene.Physics)
	o.Stats.Render(game, dt)

	for _, render := range o.windows {
		render()
	}
}
