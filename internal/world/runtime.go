// Package world assembles the streaming stack from configuration and drives it
// from a frame loop.
package world

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/VoidMesh/worldstream/internal/config"
	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/internal/sim"
	"github.com/VoidMesh/worldstream/services/content"
	"github.com/VoidMesh/worldstream/services/grid"
	"github.com/VoidMesh/worldstream/services/lifecycle"
	"github.com/VoidMesh/worldstream/services/noise"
	"github.com/VoidMesh/worldstream/services/portal"
	"github.com/VoidMesh/worldstream/services/streaming"
)

// DefaultActorSpeed is how fast the drifting actor crosses the arena, in world
// units per second.
const DefaultActorSpeed = 600.0

// View is the published state of a runtime. Readers get their own copy.
type View struct {
	Frame     uint64             `json:"frame"`
	UpdatedAt time.Time          `json:"updated_at"`
	Actor     mgl64.Vec2         `json:"actor"`
	Entities  map[string]int     `json:"entities"`
	Snapshot  streaming.Snapshot `json:"snapshot"`
}

// Runtime owns the simulation, the actor and the controller streaming around
// it. Frame and MoveActor must be called from a single goroutine; Current is
// safe from any goroutine.
type Runtime struct {
	Seed       int64
	Grid       grid.Grid
	World      *sim.World
	Actor      *sim.Actor
	Bridge     *lifecycle.Bridge
	Controller *streaming.Controller

	logger *log.Logger
	frame  uint64

	mu   sync.RWMutex
	view View
}

// New builds a runtime from cfg. A zero seed is replaced by the current time.
func New(cfg config.StreamingConfig, logger *log.Logger) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = logging.OrDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := grid.New(cfg.ChunkSize, cfg.ChunksX, cfg.ChunksY)
	rnd := content.NewRandomGenerator(seed)
	field := noise.NewGenerator(seed, cfg.RiftNoiseScale)

	generator := content.NewGenerator(g, spawnPolicy(cfg), rnd, field, logger)
	resolver := portal.NewResolver(g, portal.Policy{
		Attempts:      cfg.PortalAttempts,
		MinSeparation: cfg.MinPortalSeparation,
		Inset:         cfg.PortalInset,
	}, rnd, logger)

	simWorld := sim.NewWorld()
	bridge := lifecycle.NewBridge(simWorld.Bindings(), rnd, logger)

	controller, err := streaming.NewController(g, streaming.Options{
		UpdateInterval: cfg.UpdateInterval,
		LoadRadius:     cfg.LoadRadius,
		UnloadDistance: cfg.UnloadDistance,
	}, generator, resolver, bridge, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create streaming controller: %w", err)
	}

	width, height := g.Arena()
	actor := sim.NewActor(mgl64.Vec2{width / 2, height / 2}, width, height, DefaultActorSpeed, rnd)

	r := &Runtime{
		Seed:       seed,
		Grid:       g,
		World:      simWorld,
		Actor:      actor,
		Bridge:     bridge,
		Controller: controller,
		logger:     logger.With("component", "world-runtime"),
	}
	r.publish(time.Now())

	r.logger.Info("World runtime ready", "seed", seed, "chunks_x", g.ChunksX, "chunks_y", g.ChunksY, "chunk_size", g.ChunkSize)
	return r, nil
}

func spawnPolicy(cfg config.StreamingConfig) content.Policy {
	return content.Policy{
		GlobalMaxResources:       cfg.GlobalMaxResources,
		MatterSpawnRate:          cfg.MatterSpawnRate,
		GlobalRiftCount:          cfg.GlobalRiftCount,
		RiftSpawnRate:            cfg.RiftSpawnRate,
		RiftMinRadius:            cfg.RiftMinRadius,
		RiftMaxRadius:            cfg.RiftMaxRadius,
		ArtifactChance:           cfg.ArtifactChance,
		PortalChance:             cfg.PortalChance,
		MysteryChance:            cfg.MysteryChance,
		MysteryMaterializeChance: cfg.MysteryMaterializeChance,
		ResourceInset:            cfg.ResourceInset,
		HazardInset:              cfg.HazardInset,
		ArtifactInset:            cfg.ArtifactInset,
		PortalInset:              cfg.PortalInset,
		MysteryInset:             cfg.MysteryInset,
	}
}

// Frame advances the actor by dt and lets the controller stream around its new
// position.
func (r *Runtime) Frame(dt time.Duration, now time.Time) streaming.Update {
	r.Actor.Step(dt)
	return r.tick(now)
}

// MoveActor displaces the actor by delta and streams immediately, subject to
// the controller's throttle.
func (r *Runtime) MoveActor(delta mgl64.Vec2, now time.Time) streaming.Update {
	r.Actor.Move(delta)
	return r.tick(now)
}

// Reset unloads every chunk, leaving the simulation empty.
func (r *Runtime) Reset() {
	r.Controller.Reset()
	r.publish(time.Now())
}

func (r *Runtime) tick(now time.Time) streaming.Update {
	update := r.Controller.Tick(r.Actor.Position, now)
	r.frame++
	r.publish(now)
	if len(update.Loaded) > 0 || len(update.Unloaded) > 0 {
		r.logger.Info("Chunks streamed",
			"actor_x", r.Actor.Position.X(), "actor_y", r.Actor.Position.Y(),
			"loaded", len(update.Loaded), "unloaded", len(update.Unloaded),
			"entities", r.World.Total())
	}
	return update
}

func (r *Runtime) publish(now time.Time) {
	entities := make(map[string]int, len(content.Kinds))
	for kind, n := range r.World.Counts() {
		entities[kind.String()] = n
	}

	view := View{
		Frame:     r.frame,
		UpdatedAt: now,
		Actor:     r.Actor.Position,
		Entities:  entities,
		Snapshot:  r.Controller.Snapshot(),
	}

	r.mu.Lock()
	r.view = view
	r.mu.Unlock()
}

// Current returns the most recently published view.
func (r *Runtime) Current() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

// LoadedAt reports the chunk containing (x, y) and whether it was loaded as of
// the last published view.
func (r *Runtime) LoadedAt(x, y float64) (grid.Coord, bool) {
	coord := r.Grid.WorldToPartition(x, y)
	return coord, r.Current().Snapshot.Loaded(coord)
}

// Run drives frames at interval until ctx is cancelled, then unloads everything.
func (r *Runtime) Run(ctx context.Context, interval time.Duration) {
	r.logger.Debug("Starting frame loop", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.Reset()
			r.logger.Info("Frame loop stopped", "frames", r.frame)
			return

		case now := <-ticker.C:
			r.Frame(now.Sub(last), now)
			last = now
		}
	}
}
