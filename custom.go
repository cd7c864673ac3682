package sculpt

import "math"

// CustomMask derives a size×size brush mask from a grayscale source.
// Dark source pixels paint strongly: the sampled value is inverted, so a
// black texel carries full weight.
//
// Each cell's sample coordinate is rotated around the mask center by
// angle radians before sampling, which rotates the painted content of the
// brush rather than its outline.
//
// An optional falloff mask of the same size shapes the result:
//   - falloff non-nil, alphaFalloff true: weight = (1-gray) × falloff
//   - falloff non-nil, alphaFalloff false: weight = 1 - gray×(1-falloff)
//   - falloff nil: weight = 1 - gray
//
// If src is nil — typically because the backing image was deleted between
// ticks — CustomMask returns (nil, false); the caller keeps its previous
// mask and skips regeneration this frame.
func CustomMask(src GraySampler, size int, angle float64, falloff *BrushMask, alphaFalloff bool) (*BrushMask, bool) {
	if src == nil {
		return nil, false
	}
	if falloff != nil && falloff.Size() != size {
		falloff = nil
	}

	mask := NewBrushMask(size)
	if size == 0 {
		return mask, true
	}

	center := float64(size-1) / 2
	span := float64(size - 1)
	if span == 0 {
		span = 1
	}
	sin, cos := math.Sincos(angle)

	for y := 0; y < size; y++ {
		dy := float64(y) - center
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			sx := center + dx*cos - dy*sin
			sy := center + dx*sin + dy*cos
			gray := src.SampleGray(sx/span, sy/span)

			var v float64
			switch {
			case falloff != nil && alphaFalloff:
				v = (1 - gray) * falloff.At(x, y)
			case falloff != nil:
				v = 1 - gray*(1-falloff.At(x, y))
			default:
				v = 1 - gray
			}
			mask.Set(x, y, v)
		}
	}
	return mask, true
}
