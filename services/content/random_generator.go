package content

import (
	"math/rand"
)

// RandomGenerator implements RandomGeneratorInterface using math/rand.
// It is not safe for concurrent use; the streaming loop is single-threaded.
type RandomGenerator struct {
	rand *rand.Rand
}

// NewRandomGenerator creates a new random generator with the given seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	source := rand.NewSource(seed)
	return &RandomGenerator{
		rand: rand.New(source),
	}
}

func (r *RandomGenerator) Float64() float64 {
	return r.rand.Float64()
}

func (r *RandomGenerator) Intn(n int) int {
	return r.rand.Intn(n)
}
