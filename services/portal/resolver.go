// Package portal pairs portal entrances with exits placed in other loaded chunks.
package portal

import (
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/grid"
)

// Policy bounds the exit search.
type Policy struct {
	Attempts      int
	MinSeparation float64
	Inset         float64
}

// DefaultPolicy returns the stock search policy.
func DefaultPolicy() Policy {
	return Policy{Attempts: 10, MinSeparation: 1500, Inset: 200}
}

// Resolver finds exits for portal entrances.
type Resolver struct {
	grid   grid.Grid
	policy Policy
	rnd    content.RandomGeneratorInterface
	logger *log.Logger
}

// NewResolver creates a resolver drawing from rnd.
func NewResolver(g grid.Grid, policy Policy, rnd content.RandomGeneratorInterface, logger *log.Logger) *Resolver {
	return &Resolver{
		grid:   g,
		policy: policy,
		rnd:    rnd,
		logger: logging.OrDefault(logger).With("component", "portal-resolver"),
	}
}

// Resolve searches candidates, the currently loaded chunks, for an exit far
// enough from entrance. Each attempt picks a chunk uniformly with replacement
// and a point inside its inset interior. On success the two halves are linked
// and the exit is returned; otherwise entrance is left unresolved and ok is
// false.
func (r *Resolver) Resolve(entrance *content.Descriptor, candidates []grid.Coord) (*content.Descriptor, bool) {
	if entrance.Kind != content.KindPortal || entrance.Resolved {
		return nil, false
	}
	if len(candidates) == 0 {
		r.logger.Debug("No loaded chunks to place portal exit")
		return nil, false
	}

	for attempt := 0; attempt < r.policy.Attempts; attempt++ {
		c := candidates[r.rnd.Intn(len(candidates))]
		pos := content.PointIn(r.rnd, r.grid.Bounds(c), r.policy.Inset)

		if pos.Sub(entrance.Position).Len() < r.policy.MinSeparation {
			continue
		}

		exit := &content.Descriptor{Kind: content.KindPortal, Position: pos}
		content.Link(entrance, exit)
		r.logger.Debug("Resolved portal pair",
			"entrance", entrance.Position,
			"exit", exit.Position,
			"exit_chunk_x", c.X, "exit_chunk_y", c.Y,
			"attempt", attempt+1)
		return exit, true
	}

	r.logger.Debug("Portal exit search exhausted",
		"entrance", entrance.Position,
		"attempts", r.policy.Attempts,
		"candidates", len(candidates))
	return nil, false
}
