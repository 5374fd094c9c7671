package content

import "github.com/go-gl/mathgl/mgl64"

// RandomGeneratorInterface defines the interface for random number generation.
type RandomGeneratorInterface interface {
	Float64() float64
	Intn(n int) int
}

// FieldInterface samples a smooth scalar field in [0,1] over world space.
type FieldInterface interface {
	Sample(p mgl64.Vec2) float64
}
