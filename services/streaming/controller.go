// Package streaming keeps the chunks around the tracked actor loaded and
// everything further away unloaded.
package streaming

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/zyedidia/generic/mapset"

	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/services/chunk"
	"github.com/VoidMesh/worldstream/services/grid"
)

var ErrInvalidRadii = errors.New("load radius must be below unload distance")

// Options controls how often and how far the controller streams.
type Options struct {
	UpdateInterval time.Duration
	LoadRadius     int
	UnloadDistance int
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		UpdateInterval: 500 * time.Millisecond,
		LoadRadius:     1,
		UnloadDistance: 2,
	}
}

// Stats counts streaming work since the controller was created.
type Stats struct {
	Ticks                int `json:"ticks"`
	Throttled            int `json:"throttled"`
	Crossings            int `json:"crossings"`
	PartitionsLoaded     int `json:"partitions_loaded"`
	PartitionsUnloaded   int `json:"partitions_unloaded"`
	EntitiesMaterialized int `json:"entities_materialized"`
	EntitiesRemoved      int `json:"entities_removed"`
	UnresolvedPortals    int `json:"unresolved_portals"`
	RejectedReentry      int `json:"rejected_reentry"`
}

// Update describes what one Tick did.
type Update struct {
	Throttled bool
	Crossed   bool
	Loaded    []grid.Coord
	Unloaded  []grid.Coord
}

// Controller streams chunks around a single tracked position. It is driven
// from the frame loop and is not safe for concurrent use.
type Controller struct {
	grid      grid.Grid
	opts      Options
	store     *chunk.Store
	generator ContentGeneratorInterface
	resolver  PortalResolverInterface
	bridge    BridgeInterface
	logger    *log.Logger

	lastUpdate time.Time
	tracked    grid.Coord
	ticking    bool
	stats      Stats
}

// NewController wires a controller. The load radius must be strictly below
// the unload distance so a chunk can never qualify for both in one tick.
func NewController(
	g grid.Grid,
	opts Options,
	generator ContentGeneratorInterface,
	resolver PortalResolverInterface,
	bridge BridgeInterface,
	logger *log.Logger,
) (*Controller, error) {
	if opts.LoadRadius < 0 || opts.LoadRadius >= opts.UnloadDistance {
		return nil, fmt.Errorf("load radius %d, unload distance %d: %w", opts.LoadRadius, opts.UnloadDistance, ErrInvalidRadii)
	}

	componentLogger := logging.OrDefault(logger).With("component", "streaming-controller")
	componentLogger.Debug("Creating streaming controller",
		"chunks_x", g.ChunksX, "chunks_y", g.ChunksY, "chunk_size", g.ChunkSize,
		"load_radius", opts.LoadRadius, "unload_distance", opts.UnloadDistance,
		"update_interval", opts.UpdateInterval)

	return &Controller{
		grid:      g,
		opts:      opts,
		store:     chunk.NewStore(),
		generator: generator,
		resolver:  resolver,
		bridge:    bridge,
		logger:    componentLogger,
		tracked:   grid.NoCoord,
	}, nil
}

// Tick advances streaming for the actor at pos. Work happens at most once per
// UpdateInterval and only when the actor has entered a different chunk; all
// loads of the tick finish before unloads are considered.
func (c *Controller) Tick(pos mgl64.Vec2, now time.Time) Update {
	if c.ticking {
		c.stats.RejectedReentry++
		c.logger.Warn("Tick called while a tick is running, ignoring")
		return Update{}
	}
	c.ticking = true
	defer func() { c.ticking = false }()

	c.stats.Ticks++
	if !c.lastUpdate.IsZero() && now.Sub(c.lastUpdate) < c.opts.UpdateInterval {
		c.stats.Throttled++
		return Update{Throttled: true}
	}
	c.lastUpdate = now

	next := c.grid.PositionToPartition(pos)
	if next == c.tracked {
		return Update{}
	}
	previous := c.tracked
	c.tracked = next
	c.stats.Crossings++

	start := time.Now()
	target := c.targetSet(next)
	update := Update{Crossed: true}
	update.Loaded = c.loadMissing(target, now)
	update.Unloaded = c.unloadBeyond(next, target)

	c.logger.Debug("Streamed chunks",
		"from", previous, "to", next,
		"loaded", len(update.Loaded),
		"unloaded", len(update.Unloaded),
		"resident", c.store.Len(),
		"duration", time.Since(start))

	return update
}

// targetSet returns the valid chunks within the load radius of center.
func (c *Controller) targetSet(center grid.Coord) mapset.Set[grid.Coord] {
	target := mapset.New[grid.Coord]()
	for _, coord := range c.grid.Neighborhood(center, c.opts.LoadRadius) {
		target.Put(coord)
	}
	return target
}

func (c *Controller) loadMissing(target mapset.Set[grid.Coord], now time.Time) []grid.Coord {
	var missing []grid.Coord
	target.Each(func(coord grid.Coord) {
		if !c.store.Contains(coord) {
			missing = append(missing, coord)
		}
	})
	slices.SortFunc(missing, grid.Compare)

	loaded := missing[:0]
	for _, coord := range missing {
		if c.load(coord, now) {
			loaded = append(loaded, coord)
		}
	}
	return loaded
}

func (c *Controller) load(coord grid.Coord, now time.Time) bool {
	set := c.generator.Generate(coord, c.grid.Bounds(coord))

	candidates := c.store.Coords()
	for _, entrance := range set.UnresolvedPortals() {
		if _, ok := c.resolver.Resolve(entrance, candidates); !ok {
			c.stats.UnresolvedPortals++
			c.logger.Debug("Portal left unresolved", "chunk_x", coord.X, "chunk_y", coord.Y, "loaded_chunks", len(candidates))
		}
	}

	created := c.bridge.MaterializeSet(set)
	partition := &chunk.Partition{Coord: coord, LoadedAt: now, Content: set}
	if err := c.store.Insert(partition); err != nil {
		c.logger.Error("Failed to store loaded chunk", "error", err, "chunk_x", coord.X, "chunk_y", coord.Y)
		c.bridge.DematerializeSet(set)
		return false
	}

	c.stats.PartitionsLoaded++
	c.stats.EntitiesMaterialized += created
	c.logger.Debug("Loaded chunk", "chunk_x", coord.X, "chunk_y", coord.Y, "descriptors", set.Len(), "entities", created)
	return true
}

func (c *Controller) unloadBeyond(center grid.Coord, target mapset.Set[grid.Coord]) []grid.Coord {
	var unloaded []grid.Coord
	for _, coord := range c.store.Coords() {
		if grid.Chebyshev(coord, center) <= c.opts.UnloadDistance || target.Has(coord) {
			continue
		}
		c.unload(coord)
		unloaded = append(unloaded, coord)
	}
	return unloaded
}

func (c *Controller) unload(coord grid.Coord) {
	partition := c.store.Remove(coord)
	if partition == nil {
		return
	}
	removed := c.bridge.DematerializeSet(partition.Content)
	c.stats.PartitionsUnloaded++
	c.stats.EntitiesRemoved += removed
	c.logger.Debug("Unloaded chunk", "chunk_x", coord.X, "chunk_y", coord.Y, "entities", removed)
}

// IsPositionLoaded reports whether the chunk containing (x, y) is loaded.
func (c *Controller) IsPositionLoaded(x, y float64) bool {
	return c.store.Contains(c.grid.WorldToPartition(x, y))
}

// Partition returns the loaded chunk at coord.
func (c *Controller) Partition(coord grid.Coord) (*chunk.Partition, bool) {
	return c.store.Get(coord)
}

// Reset unloads everything and forgets the tracked chunk, so the next Tick
// performs a full load pass.
func (c *Controller) Reset() {
	for _, coord := range c.store.Coords() {
		c.unload(coord)
	}
	c.tracked = grid.NoCoord
	c.lastUpdate = time.Time{}
}

// Grid returns the grid the controller streams over.
func (c *Controller) Grid() grid.Grid {
	return c.grid
}
