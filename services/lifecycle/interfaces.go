package lifecycle

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/VoidMesh/worldstream/services/content"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=lifecycle

// Entity is a live simulation object. Its ID is the handle the bridge keeps on
// the descriptor that produced it.
type Entity interface {
	ID() uuid.UUID
}

// Registry is one of the simulation's per-kind entity collections.
type Registry interface {
	Add(e Entity)
	// Remove deletes the entity with the given identity and reports whether it was present.
	Remove(id uuid.UUID) bool
}

// RandomGeneratorInterface defines the draw used by the mystery gate.
type RandomGeneratorInterface interface {
	Float64() float64
}

// Spawn carries everything a constructor needs to build an entity.
type Spawn struct {
	Kind     content.Kind
	Position mgl64.Vec2
	// Radius is set for hazards.
	Radius float64
	// Partner is the opposite end for portal halves.
	Partner *mgl64.Vec2
	Exit    bool
}

// Constructor builds a live entity. Returning nil means the entity could not
// be built right now and is treated like a missing constructor.
type Constructor func(s Spawn) Entity

// Binding pairs the registry and constructor the simulation provides for one kind.
type Binding struct {
	Registry  Registry
	Construct Constructor
}

func (b Binding) usable() bool {
	return b.Registry != nil && b.Construct != nil
}
