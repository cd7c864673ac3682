package sculpt

import "math"

// PaintArea describes the clipped rectangle of grid cells one dab
// affects. X, Y is the write offset into the grid; W, H the clipped
// extent. MaskX, MaskY are the amounts clipped off the low sides, used to
// offset indexing into the brush mask so that mask cell (MaskX, MaskY)
// lands on grid cell (X, Y) even when the brush hangs past a grid edge.
type PaintArea struct {
	X, Y  int
	W, H  int
	MaskX int
	MaskY int
}

// Empty reports whether the dab misses the grid entirely.
func (p PaintArea) Empty() bool { return p.W <= 0 || p.H <= 0 }

// ClipStroke maps a cursor position in normalized [0,1]² grid space and a
// brush side length in cells onto the grid, clipping the brush square to
// the grid bounds. The clipped extents are floored at 0, so a cursor far
// enough off-grid yields an empty area and the dab is a no-op.
func ClipStroke(cursor Vec2, brushSize, gridW, gridH int) PaintArea {
	x, mx, w := clipAxis(cursor.X, brushSize, gridW)
	y, my, h := clipAxis(cursor.Y, brushSize, gridH)
	return PaintArea{X: x, Y: y, W: w, H: h, MaskX: mx, MaskY: my}
}

// clipAxis clips one axis of the brush square: the anchor is the rounded
// low edge of the square centered on the cursor, pulled back inside the
// grid with the pulled-back amount reported as the mask offset.
func clipAxis(cursor float64, brushSize, gridDim int) (anchor, maskOff, extent int) {
	anchor = int(math.Round(cursor*float64(gridDim) - float64(brushSize)/2))

	extent = brushSize
	if anchor < 0 {
		maskOff = -anchor
		extent -= maskOff
		anchor = 0
	}
	if over := anchor + extent - gridDim; over > 0 {
		extent -= over
	}
	if extent < 0 {
		extent = 0
	}
	return anchor, maskOff, extent
}
