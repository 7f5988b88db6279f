package fenwick

// SamplerOption configures a Sampler.
type SamplerOption func(*samplerConfig)

type samplerConfig struct {
	rng RNG
}

// RandomNumberGenerator sets the generator a Sampler draws from.
//
// The default is the global math/rand source, which is safe to share
// but not reproducible. Passing a nil generator panics.
func RandomNumberGenerator(r RNG) SamplerOption {
	if r == nil {
		panic("RandomNumberGenerator must not be nil")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// SeededRNG makes a Sampler draw from its own uniform generator seeded
// with seed, so that the sequence of samples is reproducible.
//
// The generator is not shared, so the Sampler must not be used from
// several goroutines.
func SeededRNG(seed int64) SamplerOption {
	return func(c *samplerConfig) {
		c.rng = newLocalRNG(seed)
	}
}
