package lifecycle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/worldstream/internal/testutil"
	"github.com/VoidMesh/worldstream/services/content"
)

type stubEntity struct {
	id    uuid.UUID
	spawn Spawn
}

func (s *stubEntity) ID() uuid.UUID { return s.id }

// recordingConstructor builds stub entities and remembers every spawn.
type recordingConstructor struct {
	spawns []Spawn
	built  []*stubEntity
}

func (r *recordingConstructor) construct(s Spawn) Entity {
	r.spawns = append(r.spawns, s)
	e := &stubEntity{id: uuid.New(), spawn: s}
	r.built = append(r.built, e)
	return e
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func resolvedPair() (*content.Descriptor, *content.Descriptor) {
	entrance := &content.Descriptor{Kind: content.KindPortal, Position: mgl64.Vec2{1000, 1000}}
	exit := &content.Descriptor{Kind: content.KindPortal, Position: mgl64.Vec2{9000, 9000}}
	content.Link(entrance, exit)
	return entrance, exit
}

func TestBridge_MaterializeRegistersEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindHazard: {Registry: registry, Construct: ctor.construct},
	}, fixedRandom(0), testutil.DiscardLogger())

	d := &content.Descriptor{Kind: content.KindHazard, Position: mgl64.Vec2{10, 20}, Radius: 150}
	registry.EXPECT().Add(gomock.Any()).Times(1)

	handle, ok := bridge.Materialize(d)

	require.True(t, ok)
	require.Len(t, ctor.built, 1)
	assert.Equal(t, ctor.built[0].id, handle)
	assert.Equal(t, handle, d.Handle)
	assert.Equal(t, Spawn{Kind: content.KindHazard, Position: mgl64.Vec2{10, 20}, Radius: 150}, ctor.spawns[0])
}

func TestBridge_DoubleMaterializeIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindResource: {Registry: registry, Construct: ctor.construct},
	}, fixedRandom(0), testutil.DiscardLogger())

	d := &content.Descriptor{Kind: content.KindResource}
	registry.EXPECT().Add(gomock.Any()).Times(1)

	first, ok := bridge.Materialize(d)
	require.True(t, ok)

	second, ok := bridge.Materialize(d)
	assert.False(t, ok)
	assert.Equal(t, first, second)
	assert.Len(t, ctor.built, 1)
}

func TestBridge_MissingBindingsAreSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}

	tests := []struct {
		name    string
		binding Binding
		present bool
	}{
		{name: "no binding at all", present: false},
		{name: "registry without constructor", binding: Binding{Registry: registry}, present: true},
		{name: "constructor without registry", binding: Binding{Construct: ctor.construct}, present: true},
		{name: "constructor returning nil", binding: Binding{Registry: registry, Construct: func(Spawn) Entity { return nil }}, present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings := map[content.Kind]Binding{}
			if tt.present {
				bindings[content.KindArtifact] = tt.binding
			}
			bridge := NewBridge(bindings, fixedRandom(0), testutil.DiscardLogger())
			d := &content.Descriptor{Kind: content.KindArtifact}

			handle, ok := bridge.Materialize(d)

			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, handle)
			assert.False(t, d.Materialized())
		})
	}
	// gomock fails the test if Add was called on the registry.
	assert.Empty(t, ctor.built)
}

func TestBridge_BindAfterReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}
	bridge := NewBridge(nil, fixedRandom(0), testutil.DiscardLogger())
	d := &content.Descriptor{Kind: content.KindArtifact}

	assert.False(t, bridge.Supports(content.KindArtifact))
	_, ok := bridge.Materialize(d)
	assert.False(t, ok)

	bridge.Bind(content.KindArtifact, Binding{Registry: registry, Construct: ctor.construct})
	registry.EXPECT().Add(gomock.Any())

	assert.True(t, bridge.Supports(content.KindArtifact))
	_, ok = bridge.Materialize(d)
	assert.True(t, ok)
}

func TestBridge_MysteryGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	rnd := NewMockRandomGeneratorInterface(ctrl)
	ctor := &recordingConstructor{}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindMystery: {Registry: registry, Construct: ctor.construct},
	}, rnd, testutil.DiscardLogger())

	t.Run("draw at or above chance stays dormant", func(t *testing.T) {
		d := &content.Descriptor{Kind: content.KindMystery, Chance: 0.3}
		rnd.EXPECT().Float64().Return(0.3)

		_, ok := bridge.Materialize(d)
		assert.False(t, ok)
		assert.False(t, d.Materialized())
	})

	t.Run("draw below chance materializes", func(t *testing.T) {
		d := &content.Descriptor{Kind: content.KindMystery, Chance: 0.3}
		rnd.EXPECT().Float64().Return(0.29)
		registry.EXPECT().Add(gomock.Any())

		_, ok := bridge.Materialize(d)
		assert.True(t, ok)
		assert.True(t, d.Materialized())
	})

	t.Run("other kinds never draw", func(t *testing.T) {
		other := NewBridge(map[content.Kind]Binding{
			content.KindArtifact: {Registry: registry, Construct: ctor.construct},
		}, rnd, testutil.DiscardLogger())
		registry.EXPECT().Add(gomock.Any())

		_, ok := other.Materialize(&content.Descriptor{Kind: content.KindArtifact})
		assert.True(t, ok)
	})
}

func TestBridge_PortalPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindPortal: {Registry: registry, Construct: ctor.construct},
	}, fixedRandom(0), testutil.DiscardLogger())

	t.Run("unresolved entrance is not materialized", func(t *testing.T) {
		lone := &content.Descriptor{Kind: content.KindPortal}
		_, ok := bridge.Materialize(lone)
		assert.False(t, ok)
		assert.Empty(t, ctor.built)
	})

	t.Run("entrance brings its exit and both leave together", func(t *testing.T) {
		entrance, exit := resolvedPair()
		registry.EXPECT().Add(gomock.Any()).Times(2)

		_, ok := bridge.Materialize(entrance)
		require.True(t, ok)
		require.True(t, exit.Materialized())
		require.Len(t, ctor.spawns, 2)

		assert.False(t, ctor.spawns[0].Exit)
		assert.Equal(t, exit.Position, *ctor.spawns[0].Partner)
		assert.True(t, ctor.spawns[1].Exit)
		assert.Equal(t, entrance.Position, *ctor.spawns[1].Partner)

		entranceID, exitID := entrance.Handle, exit.Handle
		gomock.InOrder(
			registry.EXPECT().Remove(entranceID).Return(true),
			registry.EXPECT().Remove(exitID).Return(true),
		)

		assert.True(t, bridge.Dematerialize(entrance))
		assert.False(t, entrance.Materialized())
		assert.False(t, exit.Materialized())
	})
}

func TestBridge_DematerializeByIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindResource: {Registry: registry, Construct: ctor.construct},
	}, fixedRandom(0), testutil.DiscardLogger())

	a := &content.Descriptor{Kind: content.KindResource, Position: mgl64.Vec2{5, 5}}
	b := &content.Descriptor{Kind: content.KindResource, Position: mgl64.Vec2{5, 5}}
	registry.EXPECT().Add(gomock.Any()).Times(2)
	bridge.Materialize(a)
	bridge.Materialize(b)

	registry.EXPECT().Remove(b.Handle).Return(true)
	assert.True(t, bridge.Dematerialize(b))
	assert.True(t, a.Materialized(), "same position must not remove the other entity")

	// no handle: no registry call
	assert.False(t, bridge.Dematerialize(b))
}

func TestBridge_DematerializeWithoutRegistryKeepsHandle(t *testing.T) {
	id := uuid.New()
	d := &content.Descriptor{Kind: content.KindHazard, Handle: id}
	bridge := NewBridge(nil, fixedRandom(0), testutil.DiscardLogger())

	assert.False(t, bridge.Dematerialize(d))
	assert.Equal(t, id, d.Handle)
}

func TestBridge_SetOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	ctor := &recordingConstructor{}
	binding := Binding{Registry: registry, Construct: ctor.construct}

	bridge := NewBridge(map[content.Kind]Binding{
		content.KindResource: binding,
		content.KindHazard:   binding,
		content.KindPortal:   binding,
	}, fixedRandom(0), testutil.DiscardLogger())

	entrance, _ := resolvedPair()
	set := &content.Set{
		Resources:   []*content.Descriptor{{Kind: content.KindResource}, {Kind: content.KindResource}},
		Hazards:     []*content.Descriptor{{Kind: content.KindHazard, Radius: 200}},
		Exploration: []*content.Descriptor{entrance, {Kind: content.KindArtifact}},
	}

	registry.EXPECT().Add(gomock.Any()).Times(5)
	assert.Equal(t, 5, bridge.MaterializeSet(set))

	registry.EXPECT().Remove(gomock.Any()).Return(true).Times(5)
	assert.Equal(t, 5, bridge.DematerializeSet(set))

	for _, d := range set.All() {
		assert.False(t, d.Materialized())
	}
	assert.Zero(t, bridge.DematerializeSet(set))
}
