package inkfield

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// warmUpDraws is the number of values discarded after seeding from a float.
// Nearby float seeds produce nearly identical byte patterns, and the first draws
// of the generator would otherwise correlate.
const warmUpDraws = 50

// Rand is a deterministic random source. The same seed always yields the same
// sequence. Every stochastic operation in this package takes a *Rand
// explicitly; there is no package-level generator.
//
// A Rand must not be used from multiple goroutines at once.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a generator seeded with seed.
func NewRand(seed Seed) *Rand {
	return &Rand{r: rand.New(rand.NewChaCha8(seed))}
}

// NewRandFromFloat returns a generator for a numeric seed. The float's
// big-endian bytes fill the first half of a 16 byte prefix, the remaining
// bytes are zero, and the first 50 draws are discarded.
func NewRandFromFloat(seed float64) *Rand {
	var s Seed
	binary.BigEndian.PutUint64(s[:8], math.Float64bits(seed))
	r := NewRand(s)
	for range warmUpDraws {
		r.Float64()
	}
	return r
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Bool returns a random boolean value.
func (r *Rand) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Int64 returns a non-negative pseudo-random 63-bit integer.
func (r *Rand) Int64() int64 {
	return r.r.Int64()
}

// Range returns a uniform value in [lo, hi). If hi <= lo, it returns lo.
func (r *Rand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// Angle returns a uniform angle in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.r.Float64() * 2 * math.Pi
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *Rand) Source() *rand.Rand { return r.r }
