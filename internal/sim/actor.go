package sim

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// RandomGeneratorInterface is the draw source for the actor's heading changes.
type RandomGeneratorInterface interface {
	Float64() float64
}

// Actor is the tracked player. It drifts across the arena, turning at random
// and bouncing off the edges, unless moved explicitly.
type Actor struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Speed    float64

	width, height float64
	rnd           RandomGeneratorInterface
}

// NewActor places an actor at start inside a width x height arena.
func NewActor(start mgl64.Vec2, width, height, speed float64, rnd RandomGeneratorInterface) *Actor {
	return &Actor{
		Position: start,
		Velocity: mgl64.Vec2{speed, 0},
		Speed:    speed,
		width:    width,
		height:   height,
		rnd:      rnd,
	}
}

// Step advances the actor by dt, occasionally picking a new heading.
func (a *Actor) Step(dt time.Duration) {
	if a.rnd != nil && a.rnd.Float64() < 0.02 {
		angle := a.rnd.Float64() * 2 * math.Pi
		a.Velocity = mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(a.Speed)
	}
	a.Move(a.Velocity.Mul(dt.Seconds()))
}

// Move displaces the actor by delta and reflects it off the arena edges.
func (a *Actor) Move(delta mgl64.Vec2) {
	x, vx := reflect(a.Position.X()+delta.X(), a.Velocity.X(), a.width)
	y, vy := reflect(a.Position.Y()+delta.Y(), a.Velocity.Y(), a.height)
	a.Position = mgl64.Vec2{x, y}
	a.Velocity = mgl64.Vec2{vx, vy}
}

// reflect folds p back into [0, limit) and flips v when an edge was hit.
func reflect(p, v, limit float64) (float64, float64) {
	edge := math.Nextafter(limit, 0)
	switch {
	case p < 0:
		return math.Min(-p, edge), math.Abs(v)
	case p >= limit:
		return math.Max(2*edge-p, 0), -math.Abs(v)
	default:
		return p, v
	}
}
