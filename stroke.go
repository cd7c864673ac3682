package sculpt

// Modifiers carries the pointer and keyboard modifier state of one
// pointer event.
type Modifiers struct {
	Primary bool
	Shift   bool
	Control bool
}

// Stroke holds the state of one sculpting gesture, from pointer-down to
// pointer-up: the snapshot of the heights at gesture start, the tool
// instance editing the grid, the accumulated vertical pointer delta, and
// the world-space anchor of the initial press.
//
// A Stroke is created lazily at the first dab of a gesture and discarded
// at pointer release; the next gesture always starts from a fresh one.
type Stroke struct {
	grid   *HeightMap
	base   *HeightMap
	anchor Vec2
	dragY  float64

	tool       Tool
	shiftFired bool
}

// NewStroke starts a gesture on the given live grid with the tool the
// settings currently select. The grid is snapshotted so that
// delta-driven edits work from the unmodified heights for the whole
// gesture. sampleTarget is the host-side "pick the height under the
// cursor as the new target" action fired by the set-height tools.
func NewStroke(grid *HeightMap, anchor Vec2, settings *Settings, sampleTarget func()) *Stroke {
	s := &Stroke{
		grid:   grid,
		base:   grid.Clone(),
		anchor: anchor,
	}
	switch settings.Tool() {
	case ToolSmooth:
		s.tool = newSmoothTool(s, settings.SmoothRadius())
	case ToolSetHeight:
		s.tool = newSetHeightTool(s, settings, sampleTarget)
	case ToolFlatten:
		s.tool = newFlattenTool(s, settings, sampleTarget)
	default:
		s.tool = newRaiseLowerTool(s)
	}
	return s
}

// Anchor returns the world-space position of the initial press.
func (s *Stroke) Anchor() Vec2 { return s.anchor }

// DragY returns the signed vertical pointer delta accumulated since the
// press.
func (s *Stroke) DragY() float64 { return s.dragY }

// AccumulateDrag adds one event's vertical pointer movement to the
// gesture total that drives the control-click behaviors.
func (s *Stroke) AccumulateDrag(dy float64) { s.dragY += dy }

// Base returns the unmodified-heights snapshot taken at gesture start.
func (s *Stroke) Base() *HeightMap { return s.base }

// ApplyDab runs the tool over every cell of the paint area. Cells whose
// mask sample is exactly 0 are skipped. Dispatch order is control, then
// shift, then plain click; the plain-click result is clamped to [0, 1]
// before being written, while the shift and control behaviors write the
// grid themselves.
func (s *Stroke) ApplyDab(pa PaintArea, mask *BrushMask, mods Modifiers) {
	for py := 0; py < pa.H; py++ {
		gy := pa.Y + py
		for px := 0; px < pa.W; px++ {
			sample := mask.At(px+pa.MaskX, py+pa.MaskY)
			if sample == 0 {
				continue
			}
			gx := pa.X + px
			switch {
			case mods.Control:
				s.tool.ControlClick(gx, gy, sample)
			case mods.Shift:
				if !s.shiftFired {
					s.tool.ShiftClickDown()
					s.shiftFired = true
				}
				s.tool.ShiftClick(gx, gy, sample)
			default:
				s.grid.Set(gx, gy, clamp01(s.tool.Click(gx, gy, sample)))
			}
		}
	}
}
