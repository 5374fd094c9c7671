package streaming

import (
	"time"

	"github.com/VoidMesh/worldstream/services/chunk"
	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/grid"
)

// PartitionSummary describes one loaded chunk without exposing its descriptors.
type PartitionSummary struct {
	Coord       grid.Coord `json:"coord"`
	LoadedAt    time.Time  `json:"loaded_at"`
	Resources   int        `json:"resources"`
	Hazards     int        `json:"hazards"`
	Artifacts   int        `json:"artifacts"`
	Portals     int        `json:"portals"`
	Mysteries   int        `json:"mysteries"`
	Live        int        `json:"live"`
	Unresolved  int        `json:"unresolved_portals"`
	Descriptors int        `json:"descriptors"`
}

// Snapshot is a copy of the controller state safe to hand to other goroutines.
type Snapshot struct {
	Tracked    grid.Coord         `json:"tracked"`
	Tracking   bool               `json:"tracking"`
	ChunkSize  float64            `json:"chunk_size"`
	ChunksX    int                `json:"chunks_x"`
	ChunksY    int                `json:"chunks_y"`
	Partitions []PartitionSummary `json:"partitions"`
	Stats      Stats              `json:"stats"`
}

// Loaded reports whether the snapshot holds coord.
func (s Snapshot) Loaded(coord grid.Coord) bool {
	for _, p := range s.Partitions {
		if p.Coord == coord {
			return true
		}
	}
	return false
}

// Coords lists the loaded chunks in row-major order.
func (s Snapshot) Coords() []grid.Coord {
	coords := make([]grid.Coord, len(s.Partitions))
	for i, p := range s.Partitions {
		coords[i] = p.Coord
	}
	return coords
}

// Snapshot copies the current state. Partitions are in row-major order.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Tracked:    c.tracked,
		Tracking:   c.tracked != grid.NoCoord,
		ChunkSize:  c.grid.ChunkSize,
		ChunksX:    c.grid.ChunksX,
		ChunksY:    c.grid.ChunksY,
		Partitions: make([]PartitionSummary, 0, c.store.Len()),
		Stats:      c.stats,
	}
	c.store.Each(func(p *chunk.Partition) {
		snap.Partitions = append(snap.Partitions, summarize(p))
	})
	return snap
}

// Stats returns the counters accumulated so far.
func (c *Controller) Stats() Stats {
	return c.stats
}

func summarize(p *chunk.Partition) PartitionSummary {
	s := PartitionSummary{Coord: p.Coord, LoadedAt: p.LoadedAt}
	if p.Content == nil {
		return s
	}

	s.Descriptors = p.Content.Len()
	s.Unresolved = len(p.Content.UnresolvedPortals())
	for _, d := range p.Content.All() {
		switch d.Kind {
		case content.KindResource:
			s.Resources++
		case content.KindHazard:
			s.Hazards++
		case content.KindArtifact:
			s.Artifacts++
		case content.KindPortal:
			s.Portals++
		case content.KindMystery:
			s.Mysteries++
		}
		if d.Materialized() {
			s.Live++
		}
	}
	return s
}
