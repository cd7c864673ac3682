package sculpt

// Editing step sizes. The plain-click steps are per dab; the control
// factors convert accumulated vertical pointer travel into an edit
// strength.
const (
	raiseStep         = 0.01
	raiseControlRate  = 0.005
	smoothFactor      = 0.5
	smoothControlRate = 0.015
	targetLerpFactor  = 0.5
	targetControlRate = 0.02
)

// Tool is the editing behavior of one gesture. It is a closed interface:
// exactly four implementations exist in this package, one per ToolKind.
//
// Click computes a cell's new height under a plain drag; the dab
// dispatcher clamps the result to [0, 1] and writes it. ShiftClick and
// ControlClick write the grid directly and clamp for themselves.
// ShiftClickDown fires once per gesture, at the first dab where shift is
// held.
type Tool interface {
	Click(x, y int, sample float64) float64
	ShiftClick(x, y int, sample float64)
	ShiftClickDown()
	ControlClick(x, y int, sample float64)
}

// -------------------------------------------------------------------
// Raise/Lower
// -------------------------------------------------------------------

// raiseLowerTool raises terrain under the brush; shift lowers it, and
// control sets the height proportionally to the vertical pointer travel
// measured from the unmodified gesture-start heights.
type raiseLowerTool struct {
	s *Stroke
}

func newRaiseLowerTool(s *Stroke) *raiseLowerTool {
	return &raiseLowerTool{s: s}
}

func (t *raiseLowerTool) Click(x, y int, sample float64) float64 {
	return t.s.grid.At(x, y) + sample*raiseStep
}

func (t *raiseLowerTool) ShiftClick(x, y int, sample float64) {
	t.s.grid.Set(x, y, t.s.grid.At(x, y)-sample*raiseStep)
}

func (t *raiseLowerTool) ShiftClickDown() {}

func (t *raiseLowerTool) ControlClick(x, y int, sample float64) {
	t.s.grid.Set(x, y, t.s.base.At(x, y)+sample*(-t.s.dragY)*raiseControlRate)
}

// -------------------------------------------------------------------
// Smooth
// -------------------------------------------------------------------

// smoothTool blends each cell toward the box average of its neighbours.
// The average reads a snapshot taken when the tool instance was created,
// not the progressively written live grid, so a dab cannot feed its own
// output back into the average.
type smoothTool struct {
	s      *Stroke
	radius int
	src    *HeightMap
}

func newSmoothTool(s *Stroke, radius int) *smoothTool {
	if radius < 1 {
		radius = 1
	}
	return &smoothTool{s: s, radius: radius, src: s.grid.Clone()}
}

// average computes the box average around (x, y) in the snapshot,
// skipping out-of-range neighbours and dividing by the count actually
// used. Near a grid edge fewer neighbours contribute, which makes the
// effective smoothing there slightly stronger; that asymmetry is kept
// as is.
func (t *smoothTool) average(x, y int) float64 {
	var sum float64
	var n int
	for dy := -t.radius; dy <= t.radius; dy++ {
		for dx := -t.radius; dx <= t.radius; dx++ {
			if !t.src.In(x+dx, y+dy) {
				continue
			}
			sum += t.src.At(x+dx, y+dy)
			n++
		}
	}
	if n == 0 {
		return t.s.grid.At(x, y)
	}
	return sum / float64(n)
}

func (t *smoothTool) Click(x, y int, sample float64) float64 {
	cur := t.s.grid.At(x, y)
	return cur - (cur-t.average(x, y))*sample*smoothFactor
}

func (t *smoothTool) ShiftClick(int, int, float64) {}

func (t *smoothTool) ShiftClickDown() {}

func (t *smoothTool) ControlClick(x, y int, sample float64) {
	f := clamp01(-t.s.dragY * sample * smoothControlRate)
	t.s.grid.Set(x, y, lerp(t.s.base.At(x, y), t.average(x, y), f))
}

// -------------------------------------------------------------------
// Set Height
// -------------------------------------------------------------------

// setHeightTool pulls cells toward the configured target height. The
// target is read live from the settings each cell, so sampling a new
// target mid-gesture takes effect immediately.
type setHeightTool struct {
	s            *Stroke
	settings     *Settings
	sampleTarget func()
}

func newSetHeightTool(s *Stroke, settings *Settings, sampleTarget func()) *setHeightTool {
	return &setHeightTool{s: s, settings: settings, sampleTarget: sampleTarget}
}

func (t *setHeightTool) Click(x, y int, sample float64) float64 {
	return lerp(t.s.grid.At(x, y), t.settings.TargetHeight(), sample*targetLerpFactor)
}

func (t *setHeightTool) ShiftClick(int, int, float64) {}

func (t *setHeightTool) ShiftClickDown() {
	if t.sampleTarget != nil {
		t.sampleTarget()
	}
}

func (t *setHeightTool) ControlClick(x, y int, sample float64) {
	f := clamp01(-t.s.dragY * sample * targetControlRate)
	t.s.grid.Set(x, y, lerp(t.s.base.At(x, y), t.settings.TargetHeight(), f))
}

// -------------------------------------------------------------------
// Flatten
// -------------------------------------------------------------------

// flattenTool is the one-sided variant of set-height: FlattenRaise only
// raises cells below the target and FlattenExtend only lowers cells
// above it, and neither ever crosses the target.
type flattenTool struct {
	s            *Stroke
	settings     *Settings
	sampleTarget func()
}

func newFlattenTool(s *Stroke, settings *Settings, sampleTarget func()) *flattenTool {
	return &flattenTool{s: s, settings: settings, sampleTarget: sampleTarget}
}

// clampToTarget keeps the result on the active side of the target.
func (t *flattenTool) clampToTarget(v, target float64) float64 {
	if t.settings.FlattenMode() == FlattenRaise {
		return min(v, target)
	}
	return max(v, target)
}

// onCorrectSide reports whether a height needs no edit in the active
// sub-mode.
func (t *flattenTool) onCorrectSide(h, target float64) bool {
	if t.settings.FlattenMode() == FlattenRaise {
		return h >= target
	}
	return h <= target
}

func (t *flattenTool) Click(x, y int, sample float64) float64 {
	target := t.settings.TargetHeight()
	cur := t.s.grid.At(x, y)
	if t.onCorrectSide(cur, target) {
		return cur
	}
	return t.clampToTarget(lerp(cur, target, sample*targetLerpFactor), target)
}

func (t *flattenTool) ShiftClick(int, int, float64) {}

func (t *flattenTool) ShiftClickDown() {
	if t.sampleTarget != nil {
		t.sampleTarget()
	}
}

func (t *flattenTool) ControlClick(x, y int, sample float64) {
	target := t.settings.TargetHeight()
	base := t.s.base.At(x, y)
	if t.onCorrectSide(base, target) {
		return
	}
	f := clamp01(-t.s.dragY * sample * targetControlRate)
	t.s.grid.Set(x, y, t.clampToTarget(lerp(base, target, f), target))
}
