package sculpt

// HeightMap stores a 2D grid of normalized height values in row-major order.
// Values range from 0 (lowest) to 1 (highest). Every write path in this
// package clamps to that range, so a HeightMap that starts in range stays
// in range.
type HeightMap struct {
	width  int
	height int
	data   []float64
}

// NewHeightMap creates a new height map with the given dimensions.
// All values are initialized to 0.
func NewHeightMap(width, height int) *HeightMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &HeightMap{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the grid width in cells.
func (h *HeightMap) Width() int { return h.width }

// Height returns the grid height in cells.
func (h *HeightMap) Height() int { return h.height }

// At returns the height value at (x, y).
// Returns 0 for coordinates outside the grid bounds.
func (h *HeightMap) At(x, y int) float64 {
	if x < 0 || x >= h.width || y < 0 || y >= h.height {
		return 0
	}
	return h.data[y*h.width+x]
}

// In reports whether (x, y) lies inside the grid bounds.
func (h *HeightMap) In(x, y int) bool {
	return x >= 0 && x < h.width && y >= 0 && y < h.height
}

// Set sets the height value at (x, y), clamped to [0, 1].
// Coordinates outside the grid bounds are ignored.
func (h *HeightMap) Set(x, y int, value float64) {
	if x < 0 || x >= h.width || y < 0 || y >= h.height {
		return
	}
	h.data[y*h.width+x] = clamp01(value)
}

// Fill fills the entire grid with a value, clamped to [0, 1].
func (h *HeightMap) Fill(value float64) {
	value = clamp01(value)
	for i := range h.data {
		h.data[i] = value
	}
}

// Clone creates an independent copy of the height map.
func (h *HeightMap) Clone() *HeightMap {
	clone := NewHeightMap(h.width, h.height)
	copy(clone.data, h.data)
	return clone
}

// Sub copies the w×h region with low corner (x, y) into a new HeightMap.
// The region is clipped to the grid bounds; cells outside come back as 0.
func (h *HeightMap) Sub(x, y, w, h2 int) *HeightMap {
	sub := NewHeightMap(w, h2)
	for sy := 0; sy < h2; sy++ {
		for sx := 0; sx < w; sx++ {
			sub.Set(sx, sy, h.At(x+sx, y+sy))
		}
	}
	return sub
}

// SetSub writes the given sub-grid into this map with its low corner at
// (x, y). Cells falling outside the grid bounds are ignored.
func (h *HeightMap) SetSub(x, y int, sub *HeightMap) {
	for sy := 0; sy < sub.height; sy++ {
		for sx := 0; sx < sub.width; sx++ {
			h.Set(x+sx, y+sy, sub.data[sy*sub.width+sx])
		}
	}
}

// CopyFrom copies all values from src. The dimensions must match;
// mismatched sources are ignored.
func (h *HeightMap) CopyFrom(src *HeightMap) {
	if src == nil || src.width != h.width || src.height != h.height {
		return
	}
	copy(h.data, src.data)
}

// Data returns the underlying value slice in row-major order.
// This is useful for bulk rendering of the grid.
func (h *HeightMap) Data() []float64 { return h.data }
