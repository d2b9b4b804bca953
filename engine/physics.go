package engine

import (
	"reflect"

	"go.uber.org/zap"
)

// CollideFunc is invoked with the two participants of an overlapping pair.
// Context is captured by the closure.
type CollideFunc func(a, b Collider)

// WallFunc is invoked with a participant that crossed the arena boundary.
type WallFunc func(a Collider)

// Expander is implemented by participants that stand for several colliders,
// such as Group. Expansion happens once, at registration time.
type Expander interface {
	Colliders() []Collider
}

type pairRelation struct {
	a, b Collider
	fn   CollideFunc
}

type wallRelation struct {
	a  Collider
	fn WallFunc
}

// PhysicsStats reports relation counts and hit counters.
type PhysicsStats struct {
	PairRelations int
	WallRelations int
	PairHits      int64
	WallHits      int64
	LastPairHits  int
	LastWallHits  int
	Updates       int64
}

// Physics evaluates registered pair and wall relations once per Update.
// Relations are append-only and live as long as the Physics instance.
type Physics struct {
	arena Arena
	pairs []pairRelation
	walls []wallRelation
	log   *zap.Logger

	pairHits     int64
	wallHits     int64
	lastPairHits int
	lastWallHits int
	updates      int64
}

// NewPhysics creates a collision system bound to the given arena.
func NewPhysics(arena Arena, log *zap.Logger) *Physics {
	if log == nil {
		log = zap.NewNop()
	}
	return &Physics{
		arena: arena,
		pairs: make([]pairRelation, 0),
		walls: make([]wallRelation, 0),
		log:   log,
	}
}

// Arena returns the bounds the system checks against.
func (p *Physics) Arena() Arena {
	return p.arena
}

// OnCollide registers fn to run whenever a and b overlap. If b is an
// Expander, one relation is registered per member as the membership stands
// now. Nil participants or a nil fn register nothing.
func (p *Physics) OnCollide(a, b Collider, fn CollideFunc) {
	if isNilCollider(a) || isNilCollider(b) || fn == nil {
		p.log.Debug("ignored pair registration with nil participant")
		return
	}

	if group, ok := b.(Expander); ok {
		for _, member := range group.Colliders() {
			if isNilCollider(member) {
				continue
			}
			p.pairs = append(p.pairs, pairRelation{a: a, b: member, fn: fn})
		}
		return
	}

	p.pairs = append(p.pairs, pairRelation{a: a, b: b, fn: fn})
}

// OnCollideWalls registers fn to run whenever a crosses the arena boundary.
func (p *Physics) OnCollideWalls(a Collider, fn WallFunc) {
	if isNilCollider(a) || fn == nil {
		p.log.Debug("ignored wall registration with nil participant")
		return
	}

	if group, ok := a.(Expander); ok {
		for _, member := range group.Colliders() {
			if isNilCollider(member) {
				continue
			}
			p.walls = append(p.walls, wallRelation{a: member, fn: fn})
		}
		return
	}

	p.walls = append(p.walls, wallRelation{a: a, fn: fn})
}

// Update runs every pair relation, then every wall relation, in registration
// order. Callbacks run synchronously; a callback that moves a participant
// affects the relations evaluated after it in the same Update.
func (p *Physics) Update() {
	p.updates++
	p.lastPairHits = 0
	p.lastWallHits = 0

	for i := range p.pairs {
		rel := &p.pairs[i]
		boundsA := rel.a.Bounds()
		boundsB := rel.b.Bounds()

		if p.arena.Outside(boundsA) || p.arena.Outside(boundsB) {
			continue
		}

		if Overlaps(boundsA, boundsB) {
			p.lastPairHits++
			rel.fn(rel.a, rel.b)
		}
	}

	for i := range p.walls {
		rel := &p.walls[i]
		if p.arena.Escapes(rel.a.Bounds()) {
			p.lastWallHits++
			rel.fn(rel.a)
		}
	}

	p.pairHits += int64(p.lastPairHits)
	p.wallHits += int64(p.lastWallHits)
}

// Stats returns a snapshot of relation counts and hit counters.
func (p *Physics) Stats() PhysicsStats {
	return PhysicsStats{
		PairRelations: len(p.pairs),
		WallRelations: len(p.walls),
		PairHits:      p.pairHits,
		WallHits:      p.wallHits,
		LastPairHits:  p.lastPairHits,
		LastWallHits:  p.lastWallHits,
		Updates:       p.updates,
	}
}

// isNilCollider catches both nil interfaces and interfaces holding a nil pointer.
func isNilCollider(c Collider) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}
