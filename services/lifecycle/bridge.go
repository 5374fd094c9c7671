// Package lifecycle hands chunk content over to the simulation and takes it
// back when the chunk unloads.
package lifecycle

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/VoidMesh/worldstream/internal/logging"
	"github.com/VoidMesh/worldstream/services/content"
)

// Bridge turns descriptors into entities through the bindings it was built
// with. A kind without a usable binding is skipped silently; exploration
// content is optional.
type Bridge struct {
	bindings map[content.Kind]Binding
	rnd      RandomGeneratorInterface
	logger   *log.Logger
}

// NewBridge creates a bridge over the given bindings. The map is copied.
func NewBridge(bindings map[content.Kind]Binding, rnd RandomGeneratorInterface, logger *log.Logger) *Bridge {
	own := make(map[content.Kind]Binding, len(bindings))
	for k, b := range bindings {
		own[k] = b
	}
	return &Bridge{
		bindings: own,
		rnd:      rnd,
		logger:   logging.OrDefault(logger).With("component", "lifecycle-bridge"),
	}
}

// Bind installs or replaces the binding for kind, e.g. after the simulation
// reloads one of its entity types.
func (b *Bridge) Bind(kind content.Kind, binding Binding) {
	b.bindings[kind] = binding
}

// Supports reports whether kind has a registry and a constructor.
func (b *Bridge) Supports(kind content.Kind) bool {
	return b.bindings[kind].usable()
}

// Materialize builds and registers the entity for d. It returns the new
// entity's handle and true, or false when nothing was created: d is already
// live, d is an unresolved portal, a mystery spawner lost its draw, or the
// kind has no usable binding. For a portal entrance the exit is built too.
func (b *Bridge) Materialize(d *content.Descriptor) (uuid.UUID, bool) {
	if d.Materialized() {
		return d.Handle, false
	}
	if d.Kind == content.KindPortal && (!d.Resolved || d.Pair == nil) {
		return uuid.Nil, false
	}

	binding := b.bindings[d.Kind]
	if !binding.usable() {
		b.logger.Debug("No binding for kind, skipping", "kind", d.Kind)
		return uuid.Nil, false
	}

	if d.Kind == content.KindMystery && b.rnd.Float64() >= d.Chance {
		b.logger.Debug("Mystery spawner stayed dormant", "position", d.Position, "chance", d.Chance)
		return uuid.Nil, false
	}

	entity := binding.Construct(spawnFor(d))
	if entity == nil {
		b.logger.Debug("Constructor produced no entity", "kind", d.Kind)
		return uuid.Nil, false
	}
	binding.Registry.Add(entity)
	d.Handle = entity.ID()

	if d.Kind == content.KindPortal {
		b.Materialize(d.Pair)
	}
	return d.Handle, true
}

// Dematerialize removes the entity backing d from its registry and clears the
// handle. Dematerializing either half of a portal removes both.
func (b *Bridge) Dematerialize(d *content.Descriptor) bool {
	if !d.Materialized() {
		return false
	}

	binding := b.bindings[d.Kind]
	if binding.Registry == nil {
		b.logger.Warn("Registry unavailable, entity left in place", "kind", d.Kind, "entity_id", d.Handle)
		return false
	}

	if !binding.Registry.Remove(d.Handle) {
		b.logger.Warn("Entity already gone from registry", "kind", d.Kind, "entity_id", d.Handle)
	}
	d.Handle = uuid.Nil

	if d.Kind == content.KindPortal && d.Pair != nil {
		b.Dematerialize(d.Pair)
	}
	return true
}

// MaterializeSet materializes every descriptor of set and returns how many
// entities were created, portal exits included.
func (b *Bridge) MaterializeSet(set *content.Set) int {
	created := 0
	for _, d := range set.All() {
		if _, ok := b.Materialize(d); ok {
			created++
			if d.Kind == content.KindPortal && d.Pair != nil && d.Pair.Materialized() {
				created++
			}
		}
	}
	return created
}

// DematerializeSet dematerializes every descriptor of set and returns how
// many entities were removed, portal exits included.
func (b *Bridge) DematerializeSet(set *content.Set) int {
	removed := 0
	for _, d := range set.All() {
		pairLive := d.Kind == content.KindPortal && d.Pair != nil && d.Pair.Materialized()
		if b.Dematerialize(d) {
			removed++
			if pairLive && !d.Pair.Materialized() {
				removed++
			}
		}
	}
	return removed
}

func spawnFor(d *content.Descriptor) Spawn {
	s := Spawn{
		Kind:     d.Kind,
		Position: d.Position,
		Radius:   d.Radius,
		Exit:     d.Exit,
	}
	if d.Pair != nil {
		partner := d.Pair.Position
		s.Partner = &partner
	}
	return s
}
