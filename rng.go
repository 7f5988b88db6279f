package fenwick

import (
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of uniform numbers in [0, 1) used by a Sampler.
// *rand.Rand and go_rng's *UniformGenerator both satisfy it.
type RNG interface {
	Float64() float64
}

type globalRNG struct{}

func (r globalRNG) Float64() float64 {
	return rand.Float64()
}

type localRNG struct {
	gen *rng.UniformGenerator
}

func newLocalRNG(seed int64) *localRNG {
	return &localRNG{gen: rng.NewUniformGenerator(seed)}
}

func (r *localRNG) Float64() float64 {
	return r.gen.Float64()
}
