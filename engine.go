package sculpt

import "image"

// WorldRect is the world-space rectangle the height grid spans. Pointer
// events carry world positions; the engine maps them through this
// rectangle into normalized grid space.
type WorldRect struct {
	Min, Max Vec2
}

// Normalize maps a world position to normalized [0,1]² grid coordinates.
// Positions outside the rectangle map outside the unit square.
func (r WorldRect) Normalize(p Vec2) Vec2 {
	w := r.Max.X - r.Min.X
	h := r.Max.Y - r.Min.Y
	if w == 0 || h == 0 {
		return Vec2{}
	}
	return Vec2{
		X: (p.X - r.Min.X) / w,
		Y: (p.Y - r.Min.Y) / h,
	}
}

// PointerEvent is one pointer sample delivered by the host, once per
// update tick while the pointer is down. The world position comes from
// the host's raycast or plane intersection; DeltaY is the signed
// vertical pointer movement since the previous event in screen space.
type PointerEvent struct {
	World  Vec2
	DeltaY float64
	Mods   Modifiers
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithCatalog supplies a pre-populated brush catalog.
func WithCatalog(c *Catalog) EngineOption {
	return func(e *Engine) { e.catalog = c }
}

// WithWorldBounds sets the world-space rectangle the grid spans. The
// default spans one world unit per grid cell starting at the origin.
func WithWorldBounds(r WorldRect) EngineOption {
	return func(e *Engine) { e.bounds = r }
}

// WithSeed seeds the stroke randomizer for reproducible jitter.
func WithSeed(seed int64) EngineOption {
	return func(e *Engine) { e.rand = NewRandomizer(NewRNG(seed)) }
}

// Engine ties the sculpting core together: the settings, the brush
// catalog, the cached brush masks with their dirty flags, the stroke
// randomizer, and the state of the active gesture. It is the explicit
// context object threaded through every operation; nothing in this
// package reaches for globals.
//
// An Engine is single-threaded: the host drives it once per update tick
// and must serialize access to the height grid while a gesture is
// active.
type Engine struct {
	settings *Settings
	catalog  *Catalog
	store    HeightStore
	grid     *HeightMap
	bounds   WorldRect
	rand     *Randomizer

	// Mask caches. The shape mask is the expensive one to rebuild;
	// speed-only changes rescale it, and the preview regenerates
	// independently of either.
	shapeMask    *BrushMask
	liveMask     *BrushMask
	preview      *BrushMask
	shapeDirty   bool
	speedDirty   bool
	previewDirty bool

	maskChanged []func()

	pressed  bool
	stroke   *Stroke
	lastNorm Vec2
}

// NewEngine creates an engine sculpting the given store with the given
// settings. The engine subscribes to the settings, so later parameter
// changes invalidate the cached masks automatically.
func NewEngine(store HeightStore, settings *Settings, opts ...EngineOption) *Engine {
	w, h := store.Size()
	e := &Engine{
		settings:     settings,
		catalog:      NewCatalog(),
		store:        store,
		grid:         store.Read(0, 0, w, h),
		bounds:       WorldRect{Max: Vec2{X: float64(w), Y: float64(h)}},
		rand:         NewRandomizer(NewRNG(1)),
		shapeDirty:   true,
		speedDirty:   true,
		previewDirty: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	settings.Subscribe(e.settingChanged)
	return e
}

// Settings returns the engine's settings object.
func (e *Engine) Settings() *Settings { return e.settings }

// Catalog returns the engine's brush catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Grid returns the engine's working copy of the height grid.
func (e *Engine) Grid() *HeightMap { return e.grid }

// Active reports whether a gesture is in progress.
func (e *Engine) Active() bool { return e.pressed }

// OnMaskChanged registers a callback fired whenever a parameter change
// mutates the brush shape, so the host can refresh cached preview or
// projector textures.
func (e *Engine) OnMaskChanged(fn func()) {
	e.maskChanged = append(e.maskChanged, fn)
}

// settingChanged is the settings subscription: it translates a change
// class into dirty flags and fires the host shape callbacks.
func (e *Engine) settingChanged(c SettingClass) {
	switch c {
	case SettingShape:
		e.shapeDirty = true
		e.previewDirty = true
		for _, fn := range e.maskChanged {
			fn()
		}
	case SettingSpeed:
		e.speedDirty = true
	}
}

// Resync re-reads the full height grid from the store. Hosts call this
// after an undo or redo rewrote the authoritative heights so the next
// dab doesn't sculpt stale data.
func (e *Engine) Resync() {
	w, h := e.store.Size()
	e.grid = e.store.Read(0, 0, w, h)
}

// BrushesChanged applies an asset-change notification: imported or moved
// brush image paths are ingested via the decode callback, deleted paths
// drop their entries. Decode failures skip the path.
func (e *Engine) BrushesChanged(imported []string, deleted []string, decode func(path string) (image.Image, error)) {
	for _, p := range imported {
		img, err := decode(p)
		if err != nil {
			Logger().Warn("brush decode failed", "path", p, "err", err)
			continue
		}
		e.catalog.Upsert(p, img)
	}
	e.catalog.RemovePaths(deleted)
	e.shapeDirty = true
	e.previewDirty = true
}

// refreshMasks regenerates whatever the dirty flags say is stale. A
// custom brush whose source image has gone missing skips regeneration
// and keeps the previous mask for this frame.
func (e *Engine) refreshMasks() {
	if e.shapeDirty {
		if mask, ok := e.generateShape(); ok {
			e.shapeMask = mask
			e.shapeDirty = false
			e.speedDirty = true
		}
	}
	if e.speedDirty && e.shapeMask != nil {
		e.liveMask = e.shapeMask.Scaled(e.settings.Speed())
		e.speedDirty = false
	}
}

// generateShape builds the brush mask for the currently selected catalog
// entry at the base angle.
func (e *Engine) generateShape() (*BrushMask, bool) {
	size := e.settings.BrushSize()
	entry := e.catalog.Resolve(e.settings.SelectedBrush())
	if entry.Procedural {
		mask := FalloffMask(size, e.settings.Roundness(), e.settings.Angle(), e.settings.Falloff())
		return mask, true
	}

	var falloff *BrushMask
	if e.settings.UseFalloff() {
		falloff = FalloffMask(size, e.settings.Roundness(), e.settings.Angle(), e.settings.Falloff())
	}
	mask, ok := CustomMask(entry.Sampler(), size, e.settings.Angle(), falloff, e.settings.UseAlphaFalloff())
	if !ok {
		Logger().Debug("brush source missing, keeping previous mask", "brush", entry.Name)
	}
	return mask, ok
}

// PreviewMask returns the current brush shape mask for host preview
// rendering. The preview is cached on its own dirty flag: repeated calls
// with no shape change return the same mask, and speed-only changes
// leave it untouched. Returns nil while no mask can be generated.
//
// The returned mask is shared between calls; hosts must treat it as
// read-only.
func (e *Engine) PreviewMask() *BrushMask {
	e.refreshMasks()
	if e.shapeMask == nil {
		return nil
	}
	if e.previewDirty || e.preview == nil {
		e.preview = e.shapeMask.Clone()
		e.previewDirty = e.shapeDirty
	}
	return e.preview
}

// PointerDown begins a gesture and applies its first dab. It returns the
// updated sub-grid, or nil when the dab was gated or missed the grid.
func (e *Engine) PointerDown(ev PointerEvent) *HeightMap {
	e.pressed = true
	return e.pointer(ev)
}

// PointerMove applies one dab of the active gesture. Events arriving
// while no gesture is active are ignored.
func (e *Engine) PointerMove(ev PointerEvent) *HeightMap {
	if !e.pressed {
		return nil
	}
	return e.pointer(ev)
}

// PointerUp ends the gesture, discarding the stroke state and its
// unmodified-heights snapshot. There is no rollback: whatever the
// gesture wrote stays written.
func (e *Engine) PointerUp() {
	if e.stroke != nil {
		Logger().Debug("gesture ended", "dragY", e.stroke.DragY())
	}
	e.pressed = false
	e.stroke = nil
}

// pointer runs one host tick of the active gesture: refresh masks,
// lazily start the stroke, gate on spacing, jitter the position and
// rotation, clip, and apply.
func (e *Engine) pointer(ev PointerEvent) *HeightMap {
	e.refreshMasks()
	if e.liveMask == nil {
		return nil
	}

	if e.stroke == nil {
		e.rand.Reset(e.settings.Rotation(), e.settings.Spacing())
		e.stroke = NewStroke(e.grid, ev.World, e.settings, e.sampleTargetUnderCursor)
	}
	e.stroke.AccumulateDrag(ev.DeltaY)

	size := e.settings.BrushSize()
	if !e.rand.ShouldApply(ev.World, float64(size), e.settings.Spacing()) {
		return nil
	}

	pos := e.rand.Scatter(ev.World, e.settings.Scatter())
	norm := e.bounds.Normalize(pos)
	e.lastNorm = norm

	area := ClipStroke(norm, size, e.grid.Width(), e.grid.Height())
	if area.Empty() {
		return nil
	}

	mask := e.liveMask
	if rot := e.settings.Rotation(); rot.Enabled {
		mask = e.shapeMask.Rotated(e.rand.RotationOffset(rot)).Scaled(e.settings.Speed())
	}

	sub := e.ApplyDab(area, mask, ev.Mods)
	e.rand.DabApplied(e.settings.Rotation(), e.settings.Spacing())
	return sub
}

// ApplyDab applies one dab of the active gesture over the given paint
// area with the given mask, writes the affected region back to the
// store, and returns the updated sub-grid. Callers normally go through
// the pointer methods; ApplyDab is the underlying operation.
func (e *Engine) ApplyDab(area PaintArea, mask *BrushMask, mods Modifiers) *HeightMap {
	if e.stroke == nil || area.Empty() {
		return nil
	}
	e.stroke.ApplyDab(area, mask, mods)
	sub := e.grid.Sub(area.X, area.Y, area.W, area.H)
	e.store.Write(area.X, area.Y, sub)
	return sub
}

// sampleTargetUnderCursor reads the height under the cursor and makes it
// the new set-height/flatten target. Wired into the tools as their
// shift-click-down side effect.
func (e *Engine) sampleTargetUnderCursor() {
	gx := int(e.lastNorm.X * float64(e.grid.Width()))
	gy := int(e.lastNorm.Y * float64(e.grid.Height()))
	if !e.grid.In(gx, gy) {
		return
	}
	e.settings.SetTargetHeight(e.grid.At(gx, gy))
}
