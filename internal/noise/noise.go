// Package noise generates value-noise height fields used as starting
// terrain for the demo application.
package noise

import (
	"math"
	"math/rand/v2"
)

// Field is a seeded 2D value-noise field. Sampling is deterministic for
// a given seed.
type Field struct {
	seed uint64
}

// New creates a noise field with the given seed.
func New(seed int64) *Field {
	// #nosec G115 -- seed sign is irrelevant for hashing
	return &Field{seed: uint64(seed)}
}

// lattice returns the pseudo-random value in [0, 1) at integer lattice
// point (x, y).
func (f *Field) lattice(x, y int) float64 {
	// #nosec G115 -- coordinate hashing is wraparound by design
	h := f.seed ^ (uint64(uint32(x)) * 0x9E3779B97F4A7C15) ^ (uint64(uint32(y)) * 0xC2B2AE3D27D4EB4F)
	r := rand.New(rand.NewPCG(h, 0xD6E8FEB86659FD93))
	return r.Float64()
}

// At samples the field at fractional coordinates with smoothstep
// interpolation between lattice values.
func (f *Field) At(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := smooth(x - float64(x0))
	ty := smooth(y - float64(y0))

	v00 := f.lattice(x0, y0)
	v10 := f.lattice(x0+1, y0)
	v01 := f.lattice(x0, y0+1)
	v11 := f.lattice(x0+1, y0+1)

	top := v00 + (v10-v00)*tx
	bot := v01 + (v11-v01)*tx
	return top + (bot-top)*ty
}

// Fractal samples octaves of the field with halving amplitude and
// doubling frequency, normalized back into [0, 1].
func (f *Field) Fractal(x, y float64, octaves int, frequency float64) float64 {
	var sum, amp, norm float64
	amp = 1
	for i := 0; i < octaves; i++ {
		sum += amp * f.At(x*frequency, y*frequency)
		norm += amp
		amp /= 2
		frequency *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}
