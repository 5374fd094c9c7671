package sim

import (
	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/lifecycle"
)

// World owns one collection per streamed kind.
type World struct {
	Resources *Collection
	Hazards   *Collection
	Artifacts *Collection
	Portals   *Collection
	Mysteries *Collection
}

func NewWorld() *World {
	return &World{
		Resources: NewCollection(),
		Hazards:   NewCollection(),
		Artifacts: NewCollection(),
		Portals:   NewCollection(),
		Mysteries: NewCollection(),
	}
}

// Collection returns the collection holding kind, or nil.
func (w *World) Collection(kind content.Kind) *Collection {
	switch kind {
	case content.KindResource:
		return w.Resources
	case content.KindHazard:
		return w.Hazards
	case content.KindArtifact:
		return w.Artifacts
	case content.KindPortal:
		return w.Portals
	case content.KindMystery:
		return w.Mysteries
	default:
		return nil
	}
}

// Bindings wires every collection to the body constructor. Kinds listed in
// without are left unbound, which is how tests model a simulation that lacks
// an entity type.
func (w *World) Bindings(without ...content.Kind) map[content.Kind]lifecycle.Binding {
	skip := make(map[content.Kind]bool, len(without))
	for _, k := range without {
		skip[k] = true
	}

	bindings := make(map[content.Kind]lifecycle.Binding, len(content.Kinds))
	for _, k := range content.Kinds {
		if skip[k] {
			continue
		}
		bindings[k] = lifecycle.Binding{
			Registry:  w.Collection(k),
			Construct: func(s lifecycle.Spawn) lifecycle.Entity { return NewBody(s) },
		}
	}
	return bindings
}

// Counts returns the number of live entities per kind.
func (w *World) Counts() map[content.Kind]int {
	counts := make(map[content.Kind]int, len(content.Kinds))
	for _, k := range content.Kinds {
		counts[k] = w.Collection(k).Len()
	}
	return counts
}

// Total returns the number of live entities across all kinds.
func (w *World) Total() int {
	total := 0
	for _, n := range w.Counts() {
		total += n
	}
	return total
}
