// Package sim is a minimal in-process simulation: entity collections the
// streaming bridge writes into, and an actor that moves around the arena.
package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/lifecycle"
)

// Body is the simulation's representation of any streamed entity.
type Body struct {
	id       uuid.UUID
	Kind     content.Kind
	Position mgl64.Vec2
	Radius   float64
	Partner  *mgl64.Vec2
	Exit     bool
}

// NewBody builds a body from a spawn request.
func NewBody(s lifecycle.Spawn) *Body {
	return &Body{
		id:       uuid.New(),
		Kind:     s.Kind,
		Position: s.Position,
		Radius:   s.Radius,
		Partner:  s.Partner,
		Exit:     s.Exit,
	}
}

func (b *Body) ID() uuid.UUID {
	return b.id
}

// Collection is an ordered entity list with constant-time removal by identity.
type Collection struct {
	items []lifecycle.Entity
	index map[uuid.UUID]int
}

func NewCollection() *Collection {
	return &Collection{index: make(map[uuid.UUID]int)}
}

// Add appends e. Adding an entity already present is ignored.
func (c *Collection) Add(e lifecycle.Entity) {
	if _, ok := c.index[e.ID()]; ok {
		return
	}
	c.index[e.ID()] = len(c.items)
	c.items = append(c.items, e)
}

// Remove swaps the entity out with the last element. Order is not preserved.
func (c *Collection) Remove(id uuid.UUID) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	last := len(c.items) - 1
	if i != last {
		c.items[i] = c.items[last]
		c.index[c.items[i].ID()] = i
	}
	c.items[last] = nil
	c.items = c.items[:last]
	delete(c.index, id)
	return true
}

func (c *Collection) Contains(id uuid.UUID) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Collection) Len() int {
	return len(c.items)
}

// Each visits entities in storage order.
func (c *Collection) Each(fn func(e lifecycle.Entity)) {
	for _, e := range c.items {
		fn(e)
	}
}
