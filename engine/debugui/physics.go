package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tankduel/engine"
)

// PhysicsViewer shows relation counts and collision hits.
type PhysicsViewer struct {
	last engine.PhysicsStats
}

func NewPhysicsViewer() *PhysicsViewer {
	return &PhysicsViewer{}
}

// Last returns the stats shown by the most recent Render.
func (pv *PhysicsViewer) Last() engine.PhysicsStats {
	return pv.last
}

func (pv *PhysicsViewer) Render(physics *engine.Physics) {
	if !imgui.BeginV("Physics", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	pv.last = physics.Stats()
	arena := physics.Arena()

	imgui.Text(fmt.Sprintf("Arena: %dx%d", arena.Width, arena.Height))
	imgui.Text(fmt.Sprintf("Updates: %d", pv.last.Updates))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pair Relations: %d", pv.last.PairRelations))
	imgui.Text(fmt.Sprintf("Wall Relations: %d", pv.last.WallRelations))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pair Hits: %d (last frame %d)", pv.last.PairHits, pv.last.LastPairHits))
	imgui.Text(fmt.Sprintf("Wall Hits: %d (last frame %d)", pv.last.WallHits, pv.last.LastWallHits))

	imgui.End()
}
