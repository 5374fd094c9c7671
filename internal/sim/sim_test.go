package sim

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/lifecycle"
)

func TestCollection_AddRemoveByIdentity(t *testing.T) {
	c := NewCollection()
	bodies := make([]*Body, 5)
	for i := range bodies {
		bodies[i] = NewBody(lifecycle.Spawn{Kind: content.KindResource, Position: mgl64.Vec2{1, 1}})
		c.Add(bodies[i])
	}
	c.Add(bodies[0])
	require.Equal(t, 5, c.Len())

	assert.True(t, c.Remove(bodies[1].ID()))
	assert.False(t, c.Remove(bodies[1].ID()))
	assert.False(t, c.Remove(uuid.New()))
	assert.Equal(t, 4, c.Len())

	assert.True(t, c.Remove(bodies[4].ID()))
	assert.True(t, c.Remove(bodies[0].ID()))

	var left []uuid.UUID
	c.Each(func(e lifecycle.Entity) { left = append(left, e.ID()) })
	assert.ElementsMatch(t, []uuid.UUID{bodies[2].ID(), bodies[3].ID()}, left)
	assert.True(t, c.Contains(bodies[3].ID()))
	assert.False(t, c.Contains(bodies[0].ID()))
}

func TestWorld_Bindings(t *testing.T) {
	w := NewWorld()
	bindings := w.Bindings(content.KindMystery)

	assert.Len(t, bindings, 4)
	_, hasMystery := bindings[content.KindMystery]
	assert.False(t, hasMystery)

	portal := bindings[content.KindPortal]
	partner := mgl64.Vec2{9, 9}
	e := portal.Construct(lifecycle.Spawn{Kind: content.KindPortal, Position: mgl64.Vec2{1, 2}, Partner: &partner, Exit: true})
	portal.Registry.Add(e)

	body, ok := e.(*Body)
	require.True(t, ok)
	assert.Equal(t, content.KindPortal, body.Kind)
	assert.True(t, body.Exit)
	assert.Equal(t, partner, *body.Partner)
	assert.Equal(t, 1, w.Portals.Len())
	assert.Equal(t, 1, w.Total())
	assert.Equal(t, 1, w.Counts()[content.KindPortal])
	assert.Nil(t, w.Collection(content.Kind(99)))
}

type constRandom float64

func (c constRandom) Float64() float64 { return float64(c) }

func TestActor_StaysInsideArena(t *testing.T) {
	a := NewActor(mgl64.Vec2{100, 100}, 1000, 500, 400, constRandom(0.01))

	for i := 0; i < 2000; i++ {
		a.Step(50 * time.Millisecond)
		require.GreaterOrEqual(t, a.Position.X(), 0.0)
		require.Less(t, a.Position.X(), 1000.0)
		require.GreaterOrEqual(t, a.Position.Y(), 0.0)
		require.Less(t, a.Position.Y(), 500.0)
	}
}

func TestActor_MoveReflects(t *testing.T) {
	a := NewActor(mgl64.Vec2{950, 10}, 1000, 1000, 100, nil)

	a.Move(mgl64.Vec2{100, -30})

	assert.InDelta(t, 950, a.Position.X(), 1e-6)
	assert.InDelta(t, 20, a.Position.Y(), 1e-6)
	assert.Negative(t, a.Velocity.X())

	a.Step(time.Second)
	assert.InDelta(t, 850, a.Position.X(), 1e-6)
}
