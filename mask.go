package sculpt

import "math"

// BrushMask is a square grid of brush weights. Each value describes how
// strongly the cell at that offset from the brush center is affected by a
// dab, from 0 (untouched) to 1 (full effect).
//
// A mask is treated as immutable while a dab is applied; regeneration and
// rescaling always produce a new mask.
type BrushMask struct {
	size int
	data []float64
}

// NewBrushMask creates an all-zero mask with the given side length.
func NewBrushMask(size int) *BrushMask {
	if size < 0 {
		size = 0
	}
	return &BrushMask{
		size: size,
		data: make([]float64, size*size),
	}
}

// Size returns the side length of the mask in cells.
func (m *BrushMask) Size() int { return m.size }

// At returns the weight at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *BrushMask) At(x, y int) float64 {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return 0
	}
	return m.data[y*m.size+x]
}

// Set sets the weight at (x, y), clamped to [0, 1].
// Coordinates outside the mask bounds are ignored.
func (m *BrushMask) Set(x, y int, value float64) {
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return
	}
	m.data[y*m.size+x] = clamp01(value)
}

// Sample returns the bilinearly interpolated weight at fractional
// coordinates (fx, fy). Samples outside the mask bounds contribute 0.
func (m *BrushMask) Sample(fx, fy float64) float64 {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := m.At(x0, y0)
	v10 := m.At(x0+1, y0)
	v01 := m.At(x0, y0+1)
	v11 := m.At(x0+1, y0+1)

	top := lerp(v00, v10, tx)
	bot := lerp(v01, v11, tx)
	return lerp(top, bot, ty)
}

// Rotated resamples the mask rotated by angle radians around its center
// and returns the result as a new mask of the same size. Source samples
// falling outside the mask come back as 0.
//
// Resampling an existing mask is much cheaper than regenerating it from
// shape parameters, which is what makes per-dab rotation jitter viable.
func (m *BrushMask) Rotated(angle float64) *BrushMask {
	if angle == 0 {
		return m.Clone()
	}
	out := NewBrushMask(m.size)
	c := float64(m.size-1) / 2
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	for y := 0; y < m.size; y++ {
		dy := float64(y) - c
		for x := 0; x < m.size; x++ {
			dx := float64(x) - c
			sx := c + dx*cos - dy*sin
			sy := c + dx*sin + dy*cos
			out.data[y*m.size+x] = clamp01(m.Sample(sx, sy))
		}
	}
	return out
}

// Scaled returns a new mask with every weight multiplied by factor. This
// is how brush speed is folded into the mask the tools actually read;
// factors above 1 push weights past 1 so the dab moves heights faster,
// and the heights themselves stay clamped where they are written.
func (m *BrushMask) Scaled(factor float64) *BrushMask {
	out := NewBrushMask(m.size)
	for i, v := range m.data {
		out.data[i] = v * factor
	}
	return out
}

// Clone creates a copy of the mask.
func (m *BrushMask) Clone() *BrushMask {
	clone := NewBrushMask(m.size)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying weight slice in row-major order.
func (m *BrushMask) Data() []float64 { return m.data }
