package sculpt

import (
	"math"
	"testing"
)

// vecNear reports whether two vectors match within a small epsilon.
func vecNear(v, w Vec2) bool {
	return near(v.X, w.X) && near(v.Y, w.Y)
}

func TestVec2Arithmetic(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); !near(got, 5) {
		t.Errorf("Length = %g, want 5", got)
	}
	if got := v.Add(V2(1, -1)); !vecNear(got, V2(4, 3)) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(V2(3, 4)); !vecNear(got, V2(0, 0)) {
		t.Errorf("Sub = %v, want zero", got)
	}
	if got := V2(0, 0).Distance(v); !near(got, 5) {
		t.Errorf("Distance = %g, want 5", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := V2(1, 0)
	if got := v.Rotate(math.Pi / 2); !vecNear(got, V2(0, 1)) {
		t.Errorf("quarter turn = %v, want (0,1)", got)
	}
	if got := v.Rotate(math.Pi); !vecNear(got, V2(-1, 0)) {
		t.Errorf("half turn = %v, want (-1,0)", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
