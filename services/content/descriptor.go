package content

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Kind tags what a descriptor turns into once materialized.
type Kind int

const (
	KindResource Kind = iota
	KindHazard
	KindArtifact
	KindPortal
	KindMystery
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindResource, KindHazard, KindArtifact, KindPortal, KindMystery}

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindHazard:
		return "hazard"
	case KindArtifact:
		return "artifact"
	case KindPortal:
		return "portal"
	case KindMystery:
		return "mystery"
	default:
		return "unknown"
	}
}

// Descriptor is inert spawn data for one feature of a chunk.
//
// Only the fields of its Kind are meaningful: Radius for hazards, Chance for
// mystery spawners, and Resolved, Pair and Exit for portal halves. Handle is the
// identity of the live entity built from the descriptor, uuid.Nil while none
// exists; the registry that holds the entity owns it.
type Descriptor struct {
	Kind     Kind
	Position mgl64.Vec2

	Radius float64
	Chance float64

	Resolved bool
	Exit     bool
	Pair     *Descriptor

	Handle uuid.UUID
}

// Materialized reports whether a live entity currently backs the descriptor.
func (d *Descriptor) Materialized() bool {
	return d.Handle != uuid.Nil
}

// Link pairs an entrance with its exit half.
func Link(entrance, exit *Descriptor) {
	entrance.Resolved, exit.Resolved = true, true
	entrance.Exit, exit.Exit = false, true
	entrance.Pair, exit.Pair = exit, entrance
}

// Set is the generated population of one chunk. Exploration holds the rare
// kinds: artifacts, portal entrances and mystery spawners. Exit halves of
// portals are reachable only through their entrance's Pair.
type Set struct {
	Resources   []*Descriptor
	Hazards     []*Descriptor
	Exploration []*Descriptor
}

// All returns every descriptor of the set, commons first.
func (s *Set) All() []*Descriptor {
	all := make([]*Descriptor, 0, s.Len())
	all = append(all, s.Resources...)
	all = append(all, s.Hazards...)
	all = append(all, s.Exploration...)
	return all
}

// Len counts the descriptors held directly by the set.
func (s *Set) Len() int {
	return len(s.Resources) + len(s.Hazards) + len(s.Exploration)
}

// UnresolvedPortals returns portal entrances still waiting for an exit.
func (s *Set) UnresolvedPortals() []*Descriptor {
	var out []*Descriptor
	for _, d := range s.Exploration {
		if d.Kind == KindPortal && !d.Resolved {
			out = append(out, d)
		}
	}
	return out
}

// Count returns how many descriptors of kind the set holds.
func (s *Set) Count(kind Kind) int {
	n := 0
	for _, d := range s.All() {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
