package input

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/plus3/tankduel/engine"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

//go:embed scripts/hunter.lua
var DefaultScript string

// Snapshot is the read-only view of a tank handed to scripts.
type Snapshot struct {
	X, Y          float64
	Width, Height float64
	Heading       float64
	LaserActive   bool
}

// Observer exposes a Snapshot of some entity.
type Observer interface {
	Observe() Snapshot
}

// ScriptController asks a Lua function what to do next. The script must
// define
//
//	function decide(self, enemy) return "FIRE" end
//
// returning a command name ("" or nil for none). decide runs every think
// period on the clock; its answer is buffered and consumed by Update like a
// key press. A failing script is logged and yields no command.
type ScriptController struct {
	vm    *lua.LState
	log   *zap.Logger
	clock *engine.Clock
	timer engine.TimerID

	self, enemy Observer
	buffer      engine.Command
	decisions   int64
	failures    int64
}

// NewScriptController loads source and schedules decide every think period.
// Call Bind before the first think tick so the script has something to look at.
func NewScriptController(source string, clock *engine.Clock, think time.Duration, log *zap.Logger) (*ScriptController, error) {
	if log == nil {
		log = zap.NewNop()
	}

	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	if vm.GetGlobal("decide") == lua.LNil {
		vm.Close()
		return nil, fmt.Errorf("load script: function decide not defined")
	}

	s := &ScriptController{
		vm:    vm,
		log:   log,
		clock: clock,
	}
	if clock != nil {
		s.timer = clock.SetInterval(think, s.think)
	}
	return s, nil
}

// Bind sets the entities the script reasons about.
func (s *ScriptController) Bind(self, enemy Observer) {
	s.self = self
	s.enemy = enemy
}

func (s *ScriptController) think() {
	if s.self == nil || s.enemy == nil {
		return
	}
	cmd, err := s.Decide(s.self.Observe(), s.enemy.Observe())
	if err != nil {
		s.failures++
		s.log.Error("script decide failed", zap.Error(err))
		return
	}
	s.buffer = cmd
}

// Decide calls the script's decide function directly.
func (s *ScriptController) Decide(self, enemy Snapshot) (engine.Command, error) {
	fn := s.vm.GetGlobal("decide")
	if fn == lua.LNil {
		return engine.CommandNone, fmt.Errorf("function decide not defined")
	}

	if err := s.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, s.table(self), s.table(enemy)); err != nil {
		return engine.CommandNone, fmt.Errorf("call decide: %w", err)
	}

	ret := s.vm.Get(-1)
	s.vm.Pop(1)
	s.decisions++

	if ret == lua.LNil {
		return engine.CommandNone, nil
	}
	name, ok := ret.(lua.LString)
	if !ok {
		return engine.CommandNone, fmt.Errorf("decide returned %s, want string", ret.Type())
	}
	cmd, ok := engine.ParseCommand(string(name))
	if !ok {
		return engine.CommandNone, fmt.Errorf("decide returned unknown command %q", string(name))
	}
	return cmd, nil
}

func (s *ScriptController) table(snap Snapshot) *lua.LTable {
	t := s.vm.NewTable()
	t.RawSetString("x", lua.LNumber(snap.X))
	t.RawSetString("y", lua.LNumber(snap.Y))
	t.RawSetString("width", lua.LNumber(snap.Width))
	t.RawSetString("height", lua.LNumber(snap.Height))
	t.RawSetString("heading", lua.LNumber(snap.Heading))
	t.RawSetString("laser_active", lua.LBool(snap.LaserActive))
	return t
}

// Update implements engine.InputController.
func (s *ScriptController) Update(b *engine.Body) {
	b.Command = s.buffer
	s.buffer = engine.CommandNone
}

// Decisions returns how many times decide returned successfully.
func (s *ScriptController) Decisions() int64 {
	return s.decisions
}

// Failures returns how many think ticks failed.
func (s *ScriptController) Failures() int64 {
	return s.failures
}

// Close cancels the think timer and releases the Lua state.
func (s *ScriptController) Close() {
	if s.clock != nil {
		s.clock.Clear(s.timer)
	}
	s.timer = 0
	s.vm.Close()
}
