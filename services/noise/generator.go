package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"
)

// GeneratorInterface defines the interface for noise generation operations.
type GeneratorInterface interface {
	GetNoise(x, y float64) float64
	Sample(p mgl64.Vec2) float64
	GetSeed() int64
}

// Generator is a Perlin noise field over world space. Sample normalizes the raw
// noise into [0,1] so callers can use it to interpolate between two bounds.
type Generator struct {
	noise *perlin.Perlin
	seed  int64
	scale float64
}

// NewGenerator creates a noise field with the given seed. scale is the world
// distance over which the field completes roughly one feature; values <= 0
// fall back to 1.
func NewGenerator(seed int64, scale float64) *Generator {
	if scale <= 0 {
		scale = 1
	}
	// alpha=2, beta=2, n=3 keeps the field smooth across a chunk
	return &Generator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		seed:  seed,
		scale: scale,
	}
}

// GetNoise returns the raw noise value, roughly within [-1, 1].
func (g *Generator) GetNoise(x, y float64) float64 {
	return g.noise.Noise2D(x, y)
}

// Sample returns the field value at p, clamped into [0,1].
func (g *Generator) Sample(p mgl64.Vec2) float64 {
	v := (g.GetNoise(p.X()/g.scale, p.Y()/g.scale) + 1) / 2
	return mgl64.Clamp(v, 0, 1)
}

// GetSeed returns the current seed
func (g *Generator) GetSeed() int64 {
	return g.seed
}
