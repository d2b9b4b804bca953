package engine_test

import (
	"github.com/plus3/tankduel/engine"
)

// box is a plain entity that records its lifecycle calls into a shared trace.
type box struct {
	engine.Body
	name  string
	trace *[]string
}

func newBox(name string, x, y, w, h float64, trace *[]string) *box {
	return &box{
		Body:  engine.NewBody(x, y, w, h),
		name:  name,
		trace: trace,
	}
}

func (b *box) Update() {
	b.Body.Update()
	if b.trace != nil {
		*b.trace = append(*b.trace, "update:"+b.name)
	}
}

func (b *box) Render(r engine.Renderer) {
	b.Body.Render(r)
	if b.trace != nil {
		*b.trace = append(*b.trace, "render:"+b.name)
	}
}

// scriptedInput replays a fixed list of commands, one per Update.
type scriptedInput struct {
	commands []engine.Command
}

func (s *scriptedInput) Update(b *engine.Body) {
	if len(s.commands) == 0 {
		b.Command = engine.CommandNone
		return
	}
	b.Command = s.commands[0]
	s.commands = s.commands[1:]
}
