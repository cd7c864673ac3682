package sculpt

import (
	"math"
	"testing"
)

func TestNewBrushMask(t *testing.T) {
	mask := NewBrushMask(8)
	if mask.Size() != 8 {
		t.Errorf("expected size 8, got %d", mask.Size())
	}
	if mask.At(4, 4) != 0 {
		t.Errorf("expected 0, got %g", mask.At(4, 4))
	}
}

func TestBrushMaskBounds(t *testing.T) {
	mask := NewBrushMask(4)
	mask.Set(0, 0, 1)

	// Out of bounds reads come back as 0, writes are ignored.
	if mask.At(-1, 0) != 0 || mask.At(0, -1) != 0 || mask.At(4, 0) != 0 || mask.At(0, 4) != 0 {
		t.Error("expected 0 for out-of-bounds reads")
	}
	mask.Set(4, 4, 1)
	if mask.At(4, 4) != 0 {
		t.Error("out-of-bounds write should be ignored")
	}
}

func TestBrushMaskSetClamps(t *testing.T) {
	mask := NewBrushMask(2)
	mask.Set(0, 0, 1.5)
	mask.Set(1, 0, -0.5)
	if mask.At(0, 0) != 1 {
		t.Errorf("expected clamp to 1, got %g", mask.At(0, 0))
	}
	if mask.At(1, 0) != 0 {
		t.Errorf("expected clamp to 0, got %g", mask.At(1, 0))
	}
}

func TestBrushMaskSample(t *testing.T) {
	mask := NewBrushMask(2)
	mask.Set(0, 0, 0)
	mask.Set(1, 0, 1)
	mask.Set(0, 1, 0)
	mask.Set(1, 1, 1)

	if got := mask.Sample(0.5, 0); !near(got, 0.5) {
		t.Errorf("expected 0.5 at x midpoint, got %g", got)
	}
	if got := mask.Sample(0, 0.5); !near(got, 0) {
		t.Errorf("expected 0 on left column, got %g", got)
	}
	// Outside samples contribute 0, pulling the value down.
	if got := mask.Sample(1.5, 0); !near(got, 0.5) {
		t.Errorf("expected 0.5 half outside, got %g", got)
	}
}

func TestBrushMaskRotated(t *testing.T) {
	// A single weight at the right-middle cell should land at the
	// top-middle cell after a quarter turn.
	mask := NewBrushMask(3)
	mask.Set(2, 1, 1)

	rot := mask.Rotated(math.Pi / 2)
	if got := rot.At(1, 0); !near(got, 1) {
		t.Errorf("expected weight at (1,0), got %g", got)
	}
	if got := rot.At(2, 1); !near(got, 0) {
		t.Errorf("expected original cell cleared, got %g", got)
	}
}

func TestBrushMaskRotatedZeroIsCopy(t *testing.T) {
	mask := NewBrushMask(3)
	mask.Set(1, 1, 0.5)
	rot := mask.Rotated(0)
	mask.Set(1, 1, 0)
	if rot.At(1, 1) != 0.5 {
		t.Error("zero-angle rotation should be an independent copy")
	}
}

func TestBrushMaskScaled(t *testing.T) {
	mask := NewBrushMask(2)
	mask.Set(0, 0, 0.4)
	mask.Set(1, 1, 0.8)

	half := mask.Scaled(0.5)
	if !near(half.At(0, 0), 0.2) || !near(half.At(1, 1), 0.4) {
		t.Errorf("expected halved weights, got %g and %g", half.At(0, 0), half.At(1, 1))
	}

	// Factors above 1 push weights past 1; the mask itself is unclamped
	// so high speeds keep their full effect.
	double := mask.Scaled(2)
	if !near(double.At(0, 0), 0.8) || !near(double.At(1, 1), 1.6) {
		t.Errorf("expected doubled weights, got %g and %g", double.At(0, 0), double.At(1, 1))
	}
}

// near checks if two values are approximately equal (default epsilon).
func near(a, b float64) bool {
	return near2(a, b, 1e-9)
}

// near2 checks if two values are approximately equal with custom epsilon.
func near2(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}
