package streaming

import (
	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/grid"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=streaming

// ContentGeneratorInterface populates a freshly loaded chunk.
type ContentGeneratorInterface interface {
	Generate(c grid.Coord, bounds grid.Bounds) *content.Set
}

// PortalResolverInterface finds exits for portal entrances among loaded chunks.
type PortalResolverInterface interface {
	Resolve(entrance *content.Descriptor, candidates []grid.Coord) (*content.Descriptor, bool)
}

// BridgeInterface hands chunk content to the simulation and takes it back.
type BridgeInterface interface {
	MaterializeSet(set *content.Set) int
	DematerializeSet(set *content.Set) int
}
