package noise

import "testing"

func TestFieldDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 20; i++ {
		x, y := float64(i)*0.37, float64(i)*1.21
		if a.At(x, y) != b.At(x, y) {
			t.Fatalf("same seed diverged at (%g,%g)", x, y)
		}
	}
	c := New(8)
	same := true
	for i := 0; i < 20 && same; i++ {
		x, y := float64(i)*0.37, float64(i)*1.21
		same = a.At(x, y) == c.At(x, y)
	}
	if same {
		t.Error("different seeds produced identical fields")
	}
}

func TestFractalRange(t *testing.T) {
	f := New(3)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := f.Fractal(float64(x), float64(y), 4, 1.0/8)
			if v < 0 || v > 1 {
				t.Fatalf("Fractal(%d,%d) = %g, outside [0,1]", x, y, v)
			}
		}
	}
}

func TestFractalZeroOctaves(t *testing.T) {
	if got := New(1).Fractal(1, 1, 0, 1); got != 0 {
		t.Errorf("zero octaves = %g, want 0", got)
	}
}
