// Package grid maps continuous world coordinates onto the fixed chunk grid
// covering the arena.
package grid

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coord identifies a chunk by its column and row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoCoord is never a valid chunk; trackers start from it so the first update
// always counts as a boundary crossing.
var NoCoord = Coord{X: math.MinInt32, Y: math.MinInt32}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is the world-space square covered by one chunk.
type Bounds struct {
	Origin mgl64.Vec2
	Size   float64
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() mgl64.Vec2 {
	return mgl64.Vec2{b.Origin.X() + b.Size/2, b.Origin.Y() + b.Size/2}
}

// Contains reports whether p lies inside the half-open square.
func (b Bounds) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.Origin.X() && p.X() < b.Origin.X()+b.Size &&
		p.Y() >= b.Origin.Y() && p.Y() < b.Origin.Y()+b.Size
}

// Grid describes a ChunksX by ChunksY arena of ChunkSize squares.
type Grid struct {
	ChunkSize float64
	ChunksX   int
	ChunksY   int
}

// New returns a grid with the given dimensions.
func New(chunkSize float64, chunksX, chunksY int) Grid {
	return Grid{ChunkSize: chunkSize, ChunksX: chunksX, ChunksY: chunksY}
}

// WorldToPartition floors world coordinates onto the chunk grid. The result is
// not clamped; callers check IsValid.
func (g Grid) WorldToPartition(x, y float64) Coord {
	return Coord{
		X: int(math.Floor(x / g.ChunkSize)),
		Y: int(math.Floor(y / g.ChunkSize)),
	}
}

// PositionToPartition is WorldToPartition for a vector.
func (g Grid) PositionToPartition(p mgl64.Vec2) Coord {
	return g.WorldToPartition(p.X(), p.Y())
}

// PartitionToWorldOrigin returns the world coordinates of the chunk's minimum corner.
func (g Grid) PartitionToWorldOrigin(c Coord) (float64, float64) {
	return float64(c.X) * g.ChunkSize, float64(c.Y) * g.ChunkSize
}

// Origin is PartitionToWorldOrigin as a vector.
func (g Grid) Origin(c Coord) mgl64.Vec2 {
	x, y := g.PartitionToWorldOrigin(c)
	return mgl64.Vec2{x, y}
}

// Bounds returns the world-space square of the chunk.
func (g Grid) Bounds(c Coord) Bounds {
	return Bounds{Origin: g.Origin(c), Size: g.ChunkSize}
}

// Center returns the world-space midpoint of the chunk.
func (g Grid) Center(c Coord) mgl64.Vec2 {
	return g.Bounds(c).Center()
}

// IsValid reports whether c lies on the grid.
func (g Grid) IsValid(c Coord) bool {
	return c.X >= 0 && c.X < g.ChunksX && c.Y >= 0 && c.Y < g.ChunksY
}

// Arena returns the world-space width and height of the whole grid.
func (g Grid) Arena() (float64, float64) {
	return float64(g.ChunksX) * g.ChunkSize, float64(g.ChunksY) * g.ChunkSize
}

// Cells returns the number of chunks on the grid.
func (g Grid) Cells() int {
	return g.ChunksX * g.ChunksY
}

// Neighborhood returns the valid coordinates within Chebyshev distance radius
// of center, in row-major order.
func (g Grid) Neighborhood(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	coords := make([]Coord, 0, (2*radius+1)*(2*radius+1))
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := Coord{X: x, Y: y}
			if g.IsValid(c) {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// Chebyshev returns max(|dx|, |dy|) between two coordinates.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Less orders coordinates row-major.
func Less(a, b Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Compare is Less in the three-way form used by slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
