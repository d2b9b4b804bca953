// Package ebiten connects the debug overlay to the Ebiten game loop through
// the cimgui-go Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tankduel/backend/ebitengine"
	"github.com/plus3/tankduel/engine"
	"github.com/plus3/tankduel/engine/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The ImGui layout file is
// disabled so no imgui.ini is written next to the binary.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

var _ ebitengine.Layer = (*Layer)(nil)

// Layer draws the overlay on top of the game window.
type Layer struct {
	Backend *ImguiBackend
	Overlay *debugui.Overlay
}

// NewLayer pairs a backend with a fresh overlay.
func NewLayer(backend *ImguiBackend) *Layer {
	return &Layer{Backend: backend, Overlay: debugui.NewOverlay()}
}

// Update builds this frame's ImGui windows.
func (l *Layer) Update(game *engine.Game) {
	l.Backend.BeginFrame()
	l.Overlay.Render(game, game.LastFrame().Elapsed)
	l.Backend.EndFrame()
}

func (l *Layer) Draw(screen *ebiten.Image) {
	l.Backend.Draw(screen)
}

func (l *Layer) Layout(width, height int) {
	l.Backend.Layout(width, height)
}

// Captures keeps keys and clicks aimed at ImGui windows, e.g. typing into the
// roster search box, away from the game.
func (l *Layer) Captures() ebitengine.Capture {
	state := debugui.CurrentInputState()
	return ebitengine.Capture{
		Keyboard: state.WantCaptureKeyboard,
		Mouse:    state.WantCaptureMouse,
	}
}
