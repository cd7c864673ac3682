package sculpt

import "sort"

// CurveInterp selects how a Curve interpolates between adjacent keys.
type CurveInterp int

const (
	// InterpLinear interpolates linearly between keys (default).
	InterpLinear CurveInterp = iota
	// InterpSmooth uses smoothstep easing between keys, giving the soft
	// shoulder typical of brush falloff curves.
	InterpSmooth
)

// CurveKey is a single keyframe of a falloff curve: the output Value at
// normalized input position T.
type CurveKey struct {
	T     float64 // Position along the curve, 0.0 to 1.0
	Value float64 // Curve value at this position
}

// Curve is a keyframed function from [0, 1] to [0, 1], used as a brush
// falloff curve: input 1 is the brush center, input 0 the brush rim.
// Keys are kept sorted by position; evaluation pads beyond the outermost
// keys with their values.
type Curve struct {
	keys   []CurveKey
	interp CurveInterp
}

// NewCurve creates a curve from the given keys with the given
// interpolation mode. The keys are copied and sorted by position.
// A curve with no keys evaluates to 0 everywhere.
func NewCurve(interp CurveInterp, keys ...CurveKey) *Curve {
	sorted := make([]CurveKey, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return &Curve{keys: sorted, interp: interp}
}

// LinearCurve returns the identity falloff: value equals input, so brush
// strength fades linearly from center to rim.
func LinearCurve() *Curve {
	return NewCurve(InterpLinear, CurveKey{T: 0, Value: 0}, CurveKey{T: 1, Value: 1})
}

// SmoothCurve returns a falloff easing smoothly from 0 at the rim to 1 at
// the center.
func SmoothCurve() *Curve {
	return NewCurve(InterpSmooth, CurveKey{T: 0, Value: 0}, CurveKey{T: 1, Value: 1})
}

// ConstantCurve returns a curve that evaluates to the same value
// everywhere, clamped to [0, 1].
func ConstantCurve(value float64) *Curve {
	return NewCurve(InterpLinear, CurveKey{T: 0, Value: clamp01(value)})
}

// Keys returns a copy of the curve's keys in position order.
func (c *Curve) Keys() []CurveKey {
	out := make([]CurveKey, len(c.keys))
	copy(out, c.keys)
	return out
}

// Eval evaluates the curve at t. The input is clamped to [0, 1] and the
// result is clamped to [0, 1] regardless of key values.
func (c *Curve) Eval(t float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	t = clamp01(t)
	if t <= c.keys[0].T {
		return clamp01(c.keys[0].Value)
	}
	last := c.keys[len(c.keys)-1]
	if t >= last.T {
		return clamp01(last.Value)
	}

	// Find the key pair bracketing t.
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].T > t
	})
	k0 := c.keys[i-1]
	k1 := c.keys[i]

	span := k1.T - k0.T
	if span <= 0 {
		return clamp01(k1.Value)
	}
	u := (t - k0.T) / span
	if c.interp == InterpSmooth {
		u = u * u * (3 - 2*u)
	}
	return clamp01(lerp(k0.Value, k1.Value, u))
}
