package engine

// Group is an ordered collection of entities that updates, renders and
// collides as one participant. Members usually also live in the Scene roster.
type Group struct {
	members []Entity
}

// NewGroup creates a group from the given members, preserving their order.
// Nil members are skipped.
func NewGroup(members ...Entity) *Group {
	g := &Group{members: make([]Entity, 0, len(members))}
	for _, m := range members {
		g.Add(m)
	}
	return g
}

// Add appends a member. Physics relations already registered against the
// group are not affected.
func (g *Group) Add(e Entity) {
	if isNilCollider(e) {
		return
	}
	g.members = append(g.members, e)
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// Members returns a copy of the member list.
func (g *Group) Members() []Entity {
	out := make([]Entity, len(g.members))
	copy(out, g.members)
	return out
}

// Colliders returns the members as collision participants. Physics expands
// groups through this method at registration time.
func (g *Group) Colliders() []Collider {
	out := make([]Collider, len(g.members))
	for i, m := range g.members {
		out[i] = m
	}
	return out
}

// Update forwards to every member in registration order.
func (g *Group) Update() {
	for _, m := range g.members {
		m.Update()
	}
}

// Render forwards to every member in registration order.
func (g *Group) Render(r Renderer) {
	for _, m := range g.members {
		m.Render(r)
	}
}

// Bounds returns the union of all member boxes, or an empty rect.
func (g *Group) Bounds() Rect {
	if len(g.members) == 0 {
		return Rect{}
	}
	bounds := g.members[0].Bounds()
	for _, m := range g.members[1:] {
		bounds = bounds.Union(m.Bounds())
	}
	return bounds
}
