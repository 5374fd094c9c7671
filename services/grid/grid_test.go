package grid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() Grid {
	return New(2000, 6, 6)
}

func TestGrid_WorldToPartition(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name string
		x, y float64
		want Coord
	}{
		{name: "origin", x: 0, y: 0, want: Coord{0, 0}},
		{name: "inside first chunk", x: 1999.9, y: 0.1, want: Coord{0, 0}},
		{name: "exact boundary belongs to next chunk", x: 2000, y: 4000, want: Coord{1, 2}},
		{name: "center of (3,3)", x: 7000, y: 7000, want: Coord{3, 3}},
		{name: "last chunk", x: 11999, y: 11999, want: Coord{5, 5}},
		{name: "outside right edge is not clamped", x: 12000, y: 10, want: Coord{6, 0}},
		{name: "negative floors down", x: -0.5, y: -2000.5, want: Coord{-1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.WorldToPartition(tt.x, tt.y))
			assert.Equal(t, tt.want, g.PositionToPartition(mgl64.Vec2{tt.x, tt.y}))
		})
	}
}

func TestGrid_RoundTripContainsPoint(t *testing.T) {
	g := testGrid()
	rng := rand.New(rand.NewSource(7))
	w, h := g.Arena()

	for i := 0; i < 1000; i++ {
		p := mgl64.Vec2{rng.Float64() * w, rng.Float64() * h}
		c := g.PositionToPartition(p)
		require.True(t, g.IsValid(c), "point %v mapped off-grid to %v", p, c)

		ox, oy := g.PartitionToWorldOrigin(c)
		assert.Equal(t, math.Floor(p.X()/g.ChunkSize)*g.ChunkSize, ox)
		assert.Equal(t, math.Floor(p.Y()/g.ChunkSize)*g.ChunkSize, oy)
		assert.True(t, g.Bounds(c).Contains(p), "bounds of %v should contain %v", c, p)
	}
}

func TestGrid_IsValid(t *testing.T) {
	g := testGrid()

	assert.True(t, g.IsValid(Coord{0, 0}))
	assert.True(t, g.IsValid(Coord{5, 5}))
	assert.False(t, g.IsValid(Coord{6, 0}))
	assert.False(t, g.IsValid(Coord{0, 6}))
	assert.False(t, g.IsValid(Coord{-1, 3}))
	assert.False(t, g.IsValid(NoCoord))
}

func TestGrid_Neighborhood(t *testing.T) {
	g := testGrid()

	t.Run("interior radius one", func(t *testing.T) {
		got := g.Neighborhood(Coord{3, 3}, 1)
		require.Len(t, got, 9)
		assert.Equal(t, Coord{2, 2}, got[0])
		assert.Equal(t, Coord{4, 4}, got[8])
		for _, c := range got {
			assert.LessOrEqual(t, Chebyshev(c, Coord{3, 3}), 1)
		}
	})

	t.Run("corner is clipped to the grid", func(t *testing.T) {
		got := g.Neighborhood(Coord{0, 0}, 1)
		assert.ElementsMatch(t, []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, got)
	})

	t.Run("off-grid center keeps only valid cells", func(t *testing.T) {
		got := g.Neighborhood(Coord{6, 0}, 1)
		assert.ElementsMatch(t, []Coord{{5, 0}, {5, 1}}, got)
	})

	t.Run("negative radius", func(t *testing.T) {
		assert.Empty(t, g.Neighborhood(Coord{3, 3}, -1))
	})
}

func TestChebyshevAndOrdering(t *testing.T) {
	assert.Equal(t, 0, Chebyshev(Coord{2, 2}, Coord{2, 2}))
	assert.Equal(t, 3, Chebyshev(Coord{0, 0}, Coord{3, -1}))
	assert.Equal(t, 2, Chebyshev(Coord{3, 4}, Coord{2, 2}))

	assert.True(t, Less(Coord{5, 0}, Coord{0, 1}))
	assert.Equal(t, -1, Compare(Coord{0, 0}, Coord{1, 0}))
	assert.Equal(t, 1, Compare(Coord{0, 2}, Coord{1, 0}))
	assert.Equal(t, 0, Compare(Coord{4, 4}, Coord{4, 4}))
}

func TestBounds(t *testing.T) {
	g := testGrid()
	b := g.Bounds(Coord{1, 2})

	assert.Equal(t, mgl64.Vec2{2000, 4000}, b.Origin)
	assert.Equal(t, mgl64.Vec2{3000, 5000}, b.Center())
	assert.Equal(t, g.Center(Coord{1, 2}), b.Center())
	assert.True(t, b.Contains(mgl64.Vec2{2000, 4000}))
	assert.False(t, b.Contains(mgl64.Vec2{4000, 4000}))
	assert.Equal(t, 36, g.Cells())
	assert.Equal(t, "(1,2)", Coord{1, 2}.String())
}
