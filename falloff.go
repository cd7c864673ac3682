package sculpt

import "math"

// minRoundness is the smallest usable roundness. Zero roundness would put
// the rounding-circle radius at 0 and degenerate the corner correction.
const minRoundness = 1e-3

// FalloffMask generates a procedural size×size brush mask from shape
// parameters. The falloff curve maps normalized distance-from-rim (1 at
// the brush center, 0 at the outline) to a weight.
//
// Roundness 1 produces a circular brush: the weight of a cell depends only
// on its distance from the center. Roundness below 1 produces a rounded
// square rotated by angle radians, where the outline distance for each
// cell is found by intersecting the ray through the cell with the square
// boundary and shortening it inside the rounded corners.
func FalloffMask(size int, roundness, angle float64, curve *Curve) *BrushMask {
	mask := NewBrushMask(size)
	if size == 0 {
		return mask
	}
	if roundness > 1 {
		roundness = 1
	}
	if roundness < minRoundness {
		roundness = minRoundness
	}

	half := float64(size) / 2
	center := float64(size-1) / 2

	for y := 0; y < size; y++ {
		dy := float64(y) - center
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			var v float64
			if roundness >= 1 {
				dist := math.Hypot(dx, dy)
				v = curve.Eval(1 - dist/half)
			} else {
				v = roundedValue(dx, dy, half, roundness, angle, curve)
			}
			mask.Set(x, y, v)
		}
	}
	return mask
}

// roundedValue computes the weight of one cell of a rounded-square brush.
// The cell offset is inverse-rotated into brush-local space, so the query
// angle is rotated by -angle while the square stays axis-aligned.
func roundedValue(dx, dy, half, roundness, angle float64, curve *Curve) float64 {
	local := V2(dx, dy).Rotate(-angle)

	dist := local.Length()
	if dist == 0 {
		return curve.Eval(1)
	}

	ex, ey := squareEdgePoint(math.Atan2(local.Y, local.X), half)
	edgeLen := math.Hypot(ex, ey)

	// Inside the rounded-corner zone the outline is the arc of the
	// rounding circle, not the square edge: shorten the edge length by
	// how far the edge point overshoots that arc.
	inner := half * (1 - roundness)
	if math.Abs(ex) >= inner && math.Abs(ey) >= inner {
		ccx := math.Copysign(inner, ex)
		ccy := math.Copysign(inner, ey)
		radius := half * roundness
		edgeLen -= math.Hypot(ex-ccx, ey-ccy) - radius
	}
	if edgeLen <= 0 {
		return 0
	}
	return curve.Eval(1 - dist/edgeLen)
}

// squareEdgePoint intersects the ray from the origin at angle phi with
// the axis-aligned square of the given half-size, picking the edge by a
// four-way angular band test.
func squareEdgePoint(phi, half float64) (ex, ey float64) {
	phi = math.Mod(phi, 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	sin, cos := math.Sincos(phi)

	// A ray along an axis has an undefined tangent; pin it straight to
	// the midpoint of the edge it hits.
	const tiny = 1e-12
	switch {
	case math.Abs(sin) < tiny:
		return math.Copysign(half, cos), 0
	case math.Abs(cos) < tiny:
		return 0, math.Copysign(half, sin)
	}

	tan := sin / cos
	switch {
	case phi < math.Pi/4 || phi >= 7*math.Pi/4:
		return half, half * tan
	case phi < 3*math.Pi/4:
		return half / tan, half
	case phi < 5*math.Pi/4:
		return -half, -half * tan
	default:
		return -half / tan, -half
	}
}
