package fenwick

import "fmt"

// Sampler draws indices of a Tree with probability proportional to their
// elements, which are taken as weights. Updates to the tree through Add
// or Set are seen by the next draw.
//
// All weights must be non-negative and their total positive.
type Sampler[V Number] struct {
	tree *Tree[V]
	rng  RNG
}

// NewSampler creates a sampler over t.
func NewSampler[V Number](t *Tree[V], opts ...SamplerOption) *Sampler[V] {
	cfg := samplerConfig{rng: globalRNG{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sampler[V]{tree: t, rng: cfg.rng}
}

// Sample returns a random index. Indices with zero weight are never
// returned.
func (s *Sampler[V]) Sample() int {
	total := s.tree.Total()
	if contractChecks && !(0 < total) {
		panic(fmt.Errorf("%w: total weight %v is not positive", ErrEmpty, total))
	}
	threshold := V(s.rng.Float64() * float64(total))
	i := s.tree.UpperBound(threshold)
	if i == s.tree.Len() {
		// u * total rounded up to total
		i = s.tree.LowerBound(total)
	}
	return i
}

// SampleN appends n random indices to dst and returns the extended slice.
func (s *Sampler[V]) SampleN(dst []int, n int) []int {
	for ; n > 0; n-- {
		dst = append(dst, s.Sample())
	}
	return dst
}
