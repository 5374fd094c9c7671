// Package chunk holds the set of chunks currently materialized around the
// tracked actor.
package chunk

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/grid"
)

var ErrPartitionExists = errors.New("partition already loaded")

// Partition is one loaded chunk and the content generated for it.
type Partition struct {
	Coord    grid.Coord
	LoadedAt time.Time
	Content  *content.Set
}

// Store maps chunk coordinates to loaded partitions. It has no policy of its
// own; the streaming controller decides what goes in and out.
type Store struct {
	partitions map[grid.Coord]*Partition
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{partitions: make(map[grid.Coord]*Partition)}
}

// Insert adds p. A coordinate can only be present once.
func (s *Store) Insert(p *Partition) error {
	if _, exists := s.partitions[p.Coord]; exists {
		return fmt.Errorf("insert %s: %w", p.Coord, ErrPartitionExists)
	}
	s.partitions[p.Coord] = p
	return nil
}

// Remove drops the partition at c and returns it, or nil when absent.
func (s *Store) Remove(c grid.Coord) *Partition {
	p, ok := s.partitions[c]
	if !ok {
		return nil
	}
	delete(s.partitions, c)
	return p
}

// Get returns the partition at c.
func (s *Store) Get(c grid.Coord) (*Partition, bool) {
	p, ok := s.partitions[c]
	return p, ok
}

func (s *Store) Contains(c grid.Coord) bool {
	_, ok := s.partitions[c]
	return ok
}

func (s *Store) Len() int {
	return len(s.partitions)
}

// Each calls fn for every partition in row-major order.
func (s *Store) Each(fn func(p *Partition)) {
	for _, c := range s.Coords() {
		fn(s.partitions[c])
	}
}

// Coords returns the loaded coordinates sorted row-major.
func (s *Store) Coords() []grid.Coord {
	coords := make([]grid.Coord, 0, len(s.partitions))
	for c := range s.partitions {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, grid.Compare)
	return coords
}
