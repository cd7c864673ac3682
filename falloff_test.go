package sculpt

import (
	"math"
	"testing"
)

func TestFalloffMaskRange(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		roundness float64
		angle     float64
	}{
		{"circular", 16, 1, 0},
		{"rounded", 16, 0.5, 0},
		{"rotated", 16, 0.3, 0.7},
		{"nearly square", 17, minRoundness, 1.2},
		{"tiny", 1, 1, 0},
		{"negative angle", 12, 0.8, -2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := FalloffMask(tt.size, tt.roundness, tt.angle, SmoothCurve())
			for y := 0; y < tt.size; y++ {
				for x := 0; x < tt.size; x++ {
					v := mask.At(x, y)
					if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
						t.Fatalf("value at (%d,%d) = %g, outside [0,1]", x, y, v)
					}
				}
			}
		})
	}
}

func TestFalloffMaskCircularRadialSymmetry(t *testing.T) {
	// At roundness 1 the value depends only on distance from center.
	mask := FalloffMask(15, 1, 0, LinearCurve())
	c := 7
	pairs := [][4]int{
		{c + 3, c, c, c + 3},
		{c - 5, c, c, c - 5},
		{c + 2, c + 2, c - 2, c - 2},
		{c + 4, c - 1, c - 1, c + 4},
	}
	for _, p := range pairs {
		a := mask.At(p[0], p[1])
		b := mask.At(p[2], p[3])
		if !near(a, b) {
			t.Errorf("asymmetric values %g vs %g at (%d,%d)/(%d,%d)", a, b, p[0], p[1], p[2], p[3])
		}
	}
}

func TestFalloffMaskCircularIgnoresAngle(t *testing.T) {
	a := FalloffMask(11, 1, 0, SmoothCurve())
	b := FalloffMask(11, 1, 1.3, SmoothCurve())
	for i, v := range a.Data() {
		if !near(v, b.Data()[i]) {
			t.Fatalf("circular mask changed under rotation at index %d: %g vs %g", i, v, b.Data()[i])
		}
	}
}

func TestFalloffMaskCircularValues(t *testing.T) {
	// size 3, identity falloff: center distance 0, axis neighbours
	// distance 1, corners distance sqrt2, half-size 1.5.
	mask := FalloffMask(3, 1, 0, LinearCurve())
	if got := mask.At(1, 1); !near(got, 1) {
		t.Errorf("center = %g, want 1", got)
	}
	want := 1 - 1/1.5
	for _, p := range [][2]int{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		if got := mask.At(p[0], p[1]); !near(got, want) {
			t.Errorf("edge (%d,%d) = %g, want %g", p[0], p[1], got, want)
		}
	}
	wantCorner := 1 - math.Sqrt2/1.5
	for _, p := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		if got := mask.At(p[0], p[1]); !near(got, wantCorner) {
			t.Errorf("corner (%d,%d) = %g, want %g", p[0], p[1], got, wantCorner)
		}
	}
}

func TestFalloffMaskRoundedOnAxis(t *testing.T) {
	// On an axis the rounded square boundary sits at the half-size, so
	// the value matches the circular brush there.
	sq := FalloffMask(9, 0.5, 0, LinearCurve())
	ci := FalloffMask(9, 1, 0, LinearCurve())
	for _, p := range [][2]int{{8, 4}, {0, 4}, {4, 8}, {4, 0}, {6, 4}} {
		if got, want := sq.At(p[0], p[1]), ci.At(p[0], p[1]); !near(got, want) {
			t.Errorf("axis cell (%d,%d): rounded %g vs circular %g", p[0], p[1], got, want)
		}
	}
}

func TestFalloffMaskSquareCornersReachFurther(t *testing.T) {
	// Toward the diagonal a near-square outline lies further out than a
	// circle, so corner cells keep weight the circular brush has lost.
	sq := FalloffMask(9, minRoundness, 0, LinearCurve())
	ci := FalloffMask(9, 1, 0, LinearCurve())
	if ci.At(8, 8) != 0 {
		t.Fatalf("circular corner = %g, want 0", ci.At(8, 8))
	}
	if sq.At(8, 8) <= 0 {
		t.Errorf("square corner = %g, want > 0", sq.At(8, 8))
	}
	if sq.At(7, 7) <= ci.At(7, 7) {
		t.Errorf("near-corner: square %g should exceed circular %g", sq.At(7, 7), ci.At(7, 7))
	}
}

func TestFalloffMaskAxisAlignedAngles(t *testing.T) {
	// Rays at exact multiples of pi/2 have an undefined tangent; the
	// generated mask must stay finite, and a quarter turn of a square
	// brush must reproduce the unrotated mask.
	base := FalloffMask(12, 0.4, 0, SmoothCurve())
	for _, angle := range []float64{math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi, -math.Pi / 2} {
		rot := FalloffMask(12, 0.4, angle, SmoothCurve())
		for i, v := range rot.Data() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("angle %g: non-finite value at index %d", angle, i)
			}
			if !near2(v, base.Data()[i], 1e-6) {
				t.Fatalf("angle %g: value %g differs from unrotated %g at index %d", angle, v, base.Data()[i], i)
			}
		}
	}
}

func TestFalloffMaskRotationMovesCorners(t *testing.T) {
	// An eighth turn points a corner of the square along the +x axis, so
	// the axis cell gains weight relative to the unrotated square.
	base := FalloffMask(17, minRoundness, 0, LinearCurve())
	rot := FalloffMask(17, minRoundness, math.Pi/4, LinearCurve())
	if rot.At(16, 8) <= base.At(16, 8) {
		t.Errorf("axis cell after eighth turn = %g, want > %g", rot.At(16, 8), base.At(16, 8))
	}
}

func TestFalloffMaskRoundnessClamped(t *testing.T) {
	// Out-of-range roundness is clamped rather than producing NaN.
	for _, r := range []float64{-1, 0, 2} {
		mask := FalloffMask(8, r, 0.3, SmoothCurve())
		for i, v := range mask.Data() {
			if math.IsNaN(v) || v < 0 || v > 1 {
				t.Fatalf("roundness %g: bad value %g at index %d", r, v, i)
			}
		}
	}
}
