package world

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/worldstream/internal/config"
	"github.com/VoidMesh/worldstream/internal/testutil"
	"github.com/VoidMesh/worldstream/services/grid"
)

func newRuntime(t *testing.T) *Runtime {
	t.Helper()
	cfg := config.DefaultStreaming()
	cfg.Seed = 7

	r, err := New(cfg, testutil.DiscardLogger())
	require.NoError(t, err)
	return r
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultStreaming()
	cfg.LoadRadius = 3

	r, err := New(cfg, testutil.DiscardLogger())

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, r)
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	r, err := New(config.DefaultStreaming(), testutil.DiscardLogger())

	require.NoError(t, err)
	assert.NotZero(t, r.Seed)
}

func TestRuntime_InitialViewIsEmpty(t *testing.T) {
	r := newRuntime(t)

	view := r.Current()

	assert.False(t, view.Snapshot.Tracking)
	assert.Empty(t, view.Snapshot.Partitions)
	assert.Equal(t, mgl64.Vec2{6000, 6000}, view.Actor)
	assert.Zero(t, view.Entities["resource"])
}

func TestRuntime_MoveActorStreamsAndPublishes(t *testing.T) {
	r := newRuntime(t)
	now := time.Unix(1_700_000_000, 0)

	update := r.MoveActor(mgl64.Vec2{}, now)

	require.True(t, update.Crossed)
	assert.Len(t, update.Loaded, 9)

	view := r.Current()
	assert.Equal(t, grid.Coord{X: 3, Y: 3}, view.Snapshot.Tracked)
	assert.Len(t, view.Snapshot.Partitions, 9)
	assert.Equal(t, uint64(1), view.Frame)
	assert.Equal(t, r.World.Resources.Len(), view.Entities["resource"])
	assert.Positive(t, view.Entities["resource"])

	coord, loaded := r.LoadedAt(6000, 6000)
	assert.Equal(t, grid.Coord{X: 3, Y: 3}, coord)
	assert.True(t, loaded)

	_, loaded = r.LoadedAt(100, 100)
	assert.False(t, loaded)
}

func TestRuntime_Reset(t *testing.T) {
	r := newRuntime(t)
	r.MoveActor(mgl64.Vec2{}, time.Unix(1_700_000_000, 0))

	r.Reset()

	assert.Zero(t, r.World.Total())
	assert.Empty(t, r.Current().Snapshot.Partitions)
}

func TestRuntime_RunStopsAndUnloads(t *testing.T) {
	r := newRuntime(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("frame loop did not stop")
	}

	view := r.Current()
	assert.Positive(t, view.Frame)
	assert.Empty(t, view.Snapshot.Partitions)
	assert.Zero(t, r.World.Total())
	assert.Positive(t, view.Snapshot.Stats.PartitionsUnloaded)
}
