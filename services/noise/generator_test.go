package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/worldstream/internal/testutil"
)

func TestNewGenerator(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name  string
		seed  int64
		scale float64
	}{
		{name: "positive seed", seed: 12345, scale: 1500},
		{name: "zero seed", seed: 0, scale: 1500},
		{name: "negative seed", seed: -9876, scale: 10},
		{name: "max int64 seed", seed: math.MaxInt64, scale: 1},
		{name: "non-positive scale falls back", seed: 1, scale: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(tt.seed, tt.scale)
			require.NotNil(t, generator)
			assert.Equal(t, tt.seed, generator.GetSeed())
			assert.Positive(t, generator.scale)
		})
	}
}

func TestGenerator_SampleInUnitRange(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	generator := NewGenerator(12345, 1500)

	points := []mgl64.Vec2{
		{0, 0},
		{10.5, 20.7},
		{-15.3, -8.9},
		{7000, 7000},
		{11999, 0},
		{1000000, 2000000},
	}

	for _, p := range points {
		v := generator.Sample(p)
		assert.GreaterOrEqual(t, v, 0.0, "sample at %v", p)
		assert.LessOrEqual(t, v, 1.0, "sample at %v", p)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	a := NewGenerator(42, 1500)
	b := NewGenerator(42, 1500)

	for _, p := range []mgl64.Vec2{{123, 456}, {3000, 9000}, {-50, 75}} {
		assert.Equal(t, a.Sample(p), b.Sample(p))
		assert.Equal(t, a.GetNoise(p.X(), p.Y()), b.GetNoise(p.X(), p.Y()))
	}
}

func TestGenerator_SmoothOverShortDistances(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	generator := NewGenerator(7, 1500)
	p := mgl64.Vec2{4321, 1234}
	q := p.Add(mgl64.Vec2{1, 1})

	assert.InDelta(t, generator.Sample(p), generator.Sample(q), 0.05)
}
