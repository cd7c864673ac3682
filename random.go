package sculpt

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding of stroke randomization.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	// #nosec G115 -- seed sign is irrelevant for PCG state
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// UniformIn returns a uniform value in [lo, hi).
func (r *RNG) UniformIn(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// RotationJitter configures per-dab brush rotation randomization.
// Min and Max are angle offsets in radians added to the base brush angle.
type RotationJitter struct {
	Enabled  bool
	Min, Max float64
}

// SpacingJitter configures per-dab spacing: a dab only applies after the
// pointer has traveled at least brushSize × factor in world space, with
// the factor drawn uniformly from [Min, Max) for each dab.
type SpacingJitter struct {
	Enabled  bool
	Min, Max float64
}

// ScatterJitter configures position randomization: the dab position is
// displaced by a uniform random point inside a disk of the given
// world-space radius.
type ScatterJitter struct {
	Enabled bool
	Radius  float64
}

// Randomizer holds the per-gesture randomization state: the rotation
// offset and spacing threshold currently in effect, and the world-space
// distance traveled since the last applied dab.
//
// Every random draw is consumed by exactly one applied dab and re-rolled
// immediately afterwards, so the next dab always works from a fresh draw.
type Randomizer struct {
	rng *RNG

	rotation float64
	spacing  float64
	traveled float64
	last     Vec2
	started  bool
}

// NewRandomizer creates a randomizer drawing from the given RNG.
func NewRandomizer(rng *RNG) *Randomizer {
	return &Randomizer{rng: rng}
}

// Reset prepares the randomizer for a new gesture, rolling the rotation
// offset and spacing threshold the first dab will consume.
func (r *Randomizer) Reset(rot RotationJitter, sp SpacingJitter) {
	r.started = false
	r.traveled = 0
	r.rotation = r.roll(rot.Min, rot.Max)
	r.spacing = r.roll(sp.Min, sp.Max)
}

// Scatter displaces a world-space position by a uniform random point
// inside the configured disk. Disabled scatter returns the position
// unchanged.
func (r *Randomizer) Scatter(p Vec2, sc ScatterJitter) Vec2 {
	if !sc.Enabled || sc.Radius <= 0 {
		return p
	}
	// sqrt keeps the distribution uniform over the disk area.
	dist := sc.Radius * math.Sqrt(r.rng.Float64())
	angle := 2 * math.Pi * r.rng.Float64()
	return p.Add(V2(dist, 0).Rotate(angle))
}

// ShouldApply reports whether a dab at world position p passes the
// spacing gate. The first dab of a gesture always applies. Movement is
// accumulated as Euclidean world-space distance and compared against
// brushSize × the current spacing factor.
func (r *Randomizer) ShouldApply(p Vec2, brushSize float64, sp SpacingJitter) bool {
	if !r.started {
		r.started = true
		r.last = p
		return true
	}
	r.traveled += p.Distance(r.last)
	r.last = p
	if !sp.Enabled {
		return true
	}
	return r.traveled >= brushSize*r.spacing
}

// RotationOffset returns the rotation offset the next applied dab should
// add to the base brush angle, or 0 when rotation jitter is disabled.
func (r *Randomizer) RotationOffset(rot RotationJitter) float64 {
	if !rot.Enabled {
		return 0
	}
	return r.rotation
}

// DabApplied consumes the current draws after a dab has been applied:
// the spacing accumulator resets and both the rotation offset and the
// spacing threshold are re-rolled for the next dab.
func (r *Randomizer) DabApplied(rot RotationJitter, sp SpacingJitter) {
	r.traveled = 0
	r.rotation = r.roll(rot.Min, rot.Max)
	r.spacing = r.roll(sp.Min, sp.Max)
}

// roll draws uniformly from [lo, hi), tolerating an inverted or empty
// range.
func (r *Randomizer) roll(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return r.rng.UniformIn(lo, hi)
}
