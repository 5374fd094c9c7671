package content

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/services/grid"
)

// Policy holds the spawn rates and margins used to populate a chunk.
type Policy struct {
	// Candidate counts per chunk are the global totals spread evenly over the grid.
	GlobalMaxResources int
	MatterSpawnRate    float64
	GlobalRiftCount    int
	RiftSpawnRate      float64
	RiftMinRadius      float64
	RiftMaxRadius      float64

	ArtifactChance           float64
	PortalChance             float64
	MysteryChance            float64
	MysteryMaterializeChance float64

	ResourceInset float64
	HazardInset   float64
	ArtifactInset float64
	PortalInset   float64
	MysteryInset  float64
}

// DefaultPolicy returns the stock spawn policy.
func DefaultPolicy() Policy {
	return Policy{
		GlobalMaxResources: 1800,
		MatterSpawnRate:    0.6,
		GlobalRiftCount:    72,
		RiftSpawnRate:      0.8,
		RiftMinRadius:      120,
		RiftMaxRadius:      320,

		ArtifactChance:           0.05,
		PortalChance:             0.02,
		MysteryChance:            0.08,
		MysteryMaterializeChance: 0.3,

		ResourceInset: 50,
		HazardInset:   100,
		ArtifactInset: 150,
		PortalInset:   200,
		MysteryInset:  150,
	}
}

// Generator populates chunks with descriptors. Each call draws fresh values
// from the shared random source, so regenerating a chunk yields a different
// population.
type Generator struct {
	grid   grid.Grid
	policy Policy
	rnd    RandomGeneratorInterface
	radii  FieldInterface
	logger *log.Logger
}

// NewGenerator creates a generator. radii may be nil, in which case hazard
// radii are drawn uniformly from the policy range.
func NewGenerator(g grid.Grid, policy Policy, rnd RandomGeneratorInterface, radii FieldInterface, logger *log.Logger) *Generator {
	return &Generator{
		grid:   g,
		policy: policy,
		rnd:    rnd,
		radii:  radii,
		logger: logging.OrDefault(logger).With("component", "content-generator"),
	}
}

// ResourceCandidates is the number of resource trials made per chunk.
func (g *Generator) ResourceCandidates() int {
	if g.grid.Cells() == 0 {
		return 0
	}
	return g.policy.GlobalMaxResources / g.grid.Cells()
}

// HazardCandidates is the number of hazard trials made per chunk.
func (g *Generator) HazardCandidates() int {
	if g.grid.Cells() == 0 {
		return 0
	}
	return g.policy.GlobalRiftCount / g.grid.Cells()
}

// Generate produces the population for the chunk at c covering bounds.
func (g *Generator) Generate(c grid.Coord, bounds grid.Bounds) *Set {
	set := &Set{}

	for i := 0; i < g.ResourceCandidates(); i++ {
		if g.roll(g.policy.MatterSpawnRate) {
			set.Resources = append(set.Resources, &Descriptor{
				Kind:     KindResource,
				Position: g.pointIn(bounds, g.policy.ResourceInset),
			})
		}
	}

	for i := 0; i < g.HazardCandidates(); i++ {
		if g.roll(g.policy.RiftSpawnRate) {
			pos := g.pointIn(bounds, g.policy.HazardInset)
			set.Hazards = append(set.Hazards, &Descriptor{
				Kind:     KindHazard,
				Position: pos,
				Radius:   g.hazardRadius(pos),
			})
		}
	}

	// One trial per rare kind, independent of each other.
	if g.roll(g.policy.ArtifactChance) {
		set.Exploration = append(set.Exploration, &Descriptor{
			Kind:     KindArtifact,
			Position: g.pointIn(bounds, g.policy.ArtifactInset),
		})
	}
	if g.roll(g.policy.PortalChance) {
		set.Exploration = append(set.Exploration, &Descriptor{
			Kind:     KindPortal,
			Position: g.pointIn(bounds, g.policy.PortalInset),
		})
	}
	if g.roll(g.policy.MysteryChance) {
		set.Exploration = append(set.Exploration, &Descriptor{
			Kind:     KindMystery,
			Position: g.pointIn(bounds, g.policy.MysteryInset),
			Chance:   g.policy.MysteryMaterializeChance,
		})
	}

	g.logger.Debug("Generated chunk content",
		"chunk_x", c.X, "chunk_y", c.Y,
		"resources", len(set.Resources),
		"hazards", len(set.Hazards),
		"exploration", len(set.Exploration))

	return set
}

func (g *Generator) roll(p float64) bool {
	return g.rnd.Float64() < p
}

func (g *Generator) pointIn(b grid.Bounds, inset float64) mgl64.Vec2 {
	return PointIn(g.rnd, b, inset)
}

func (g *Generator) hazardRadius(pos mgl64.Vec2) float64 {
	span := g.policy.RiftMaxRadius - g.policy.RiftMinRadius
	var t float64
	if g.radii != nil {
		t = g.radii.Sample(pos)
	} else {
		t = g.rnd.Float64()
	}
	return g.policy.RiftMinRadius + span*t
}

// PointIn draws a uniform point inside b shrunk by inset on every side. An
// inset that leaves no interior collapses to the center of b.
func PointIn(rnd RandomGeneratorInterface, b grid.Bounds, inset float64) mgl64.Vec2 {
	span := b.Size - 2*inset
	if span <= 0 {
		return b.Center()
	}
	return mgl64.Vec2{
		b.Origin.X() + inset + rnd.Float64()*span,
		b.Origin.Y() + inset + rnd.Float64()*span,
	}
}
