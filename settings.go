package sculpt

// ToolKind selects which of the four editing tools a gesture uses.
type ToolKind int

const (
	// ToolRaiseLower raises terrain under the brush (lowers with shift).
	ToolRaiseLower ToolKind = iota
	// ToolSmooth blends each cell toward the average of its neighbours.
	ToolSmooth
	// ToolSetHeight pulls cells toward a fixed target height.
	ToolSetHeight
	// ToolFlatten pulls cells toward the target from one side only.
	ToolFlatten
)

// FlattenMode selects which side of the target height the flatten tool
// acts on.
type FlattenMode int

const (
	// FlattenRaise only raises cells below the target, never past it.
	FlattenRaise FlattenMode = iota
	// FlattenExtend only lowers cells above the target, never past it.
	FlattenExtend
)

// SettingClass categorizes a settings change by what it invalidates.
type SettingClass int

const (
	// SettingShape covers parameters that change the brush mask shape:
	// size, roundness, angle, falloff curve, selected brush.
	SettingShape SettingClass = iota
	// SettingSpeed covers the brush speed factor, which rescales the
	// mask without regenerating its shape.
	SettingSpeed
	// SettingOther covers parameters that leave the mask untouched.
	SettingOther
)

// Settings holds the current brush parameters. Mutations go through the
// setters so that subscribers (the engine, host preview refresh) learn
// what class of parameter changed; there is no implicit global wiring.
type Settings struct {
	brushSize       int
	speed           float64
	roundness       float64
	angle           float64
	falloff         *Curve
	useFalloff      bool
	useAlphaFalloff bool
	selectedBrush   string

	tool         ToolKind
	targetHeight float64
	flattenMode  FlattenMode
	smoothRadius int

	rotation RotationJitter
	spacing  SpacingJitter
	scatter  ScatterJitter

	subs []func(SettingClass)
}

// DefaultSettings returns settings for a medium circular brush with a
// smooth falloff and all randomization disabled.
func DefaultSettings() *Settings {
	return &Settings{
		brushSize:     32,
		speed:         1,
		roundness:     1,
		falloff:       SmoothCurve(),
		useFalloff:    true,
		selectedBrush: DefaultBrushName,
		tool:          ToolRaiseLower,
		targetHeight:  0.5,
		smoothRadius:  2,
	}
}

// Subscribe registers a callback invoked after every settings mutation
// with the class of the changed parameter.
func (s *Settings) Subscribe(fn func(SettingClass)) {
	s.subs = append(s.subs, fn)
}

func (s *Settings) notify(c SettingClass) {
	for _, fn := range s.subs {
		fn(c)
	}
}

// BrushSize returns the brush side length in grid cells.
func (s *Settings) BrushSize() int { return s.brushSize }

// SetBrushSize sets the brush side length in grid cells, floored at 1.
func (s *Settings) SetBrushSize(n int) {
	if n < 1 {
		n = 1
	}
	if n == s.brushSize {
		return
	}
	s.brushSize = n
	s.notify(SettingShape)
}

// Speed returns the brush speed factor applied to mask weights.
func (s *Settings) Speed() float64 { return s.speed }

// SetSpeed sets the brush speed factor, floored at 0.
func (s *Settings) SetSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	if v == s.speed {
		return
	}
	s.speed = v
	s.notify(SettingSpeed)
}

// Roundness returns the brush outline roundness in (0, 1].
func (s *Settings) Roundness() float64 { return s.roundness }

// SetRoundness sets the brush outline roundness, clamped to (0, 1].
func (s *Settings) SetRoundness(v float64) {
	if v > 1 {
		v = 1
	}
	if v < minRoundness {
		v = minRoundness
	}
	if v == s.roundness {
		return
	}
	s.roundness = v
	s.notify(SettingShape)
}

// Angle returns the base brush rotation in radians.
func (s *Settings) Angle() float64 { return s.angle }

// SetAngle sets the base brush rotation in radians.
func (s *Settings) SetAngle(v float64) {
	if v == s.angle {
		return
	}
	s.angle = v
	s.notify(SettingShape)
}

// Falloff returns the falloff curve.
func (s *Settings) Falloff() *Curve { return s.falloff }

// SetFalloff replaces the falloff curve. A nil curve restores the smooth
// default.
func (s *Settings) SetFalloff(c *Curve) {
	if c == nil {
		c = SmoothCurve()
	}
	s.falloff = c
	s.notify(SettingShape)
}

// UseFalloff reports whether custom brushes are shaped by the falloff
// mask.
func (s *Settings) UseFalloff() bool { return s.useFalloff }

// SetUseFalloff toggles falloff shaping for custom brushes.
func (s *Settings) SetUseFalloff(v bool) {
	if v == s.useFalloff {
		return
	}
	s.useFalloff = v
	s.notify(SettingShape)
}

// UseAlphaFalloff reports whether the falloff multiplies the custom
// brush content instead of screening its rim.
func (s *Settings) UseAlphaFalloff() bool { return s.useAlphaFalloff }

// SetUseAlphaFalloff toggles the alpha combination rule for custom
// brushes.
func (s *Settings) SetUseAlphaFalloff(v bool) {
	if v == s.useAlphaFalloff {
		return
	}
	s.useAlphaFalloff = v
	s.notify(SettingShape)
}

// SelectedBrush returns the configured brush name. The engine resolves
// it against the catalog, falling back to the first entry if it no
// longer exists.
func (s *Settings) SelectedBrush() string { return s.selectedBrush }

// SetSelectedBrush selects a brush by catalog name.
func (s *Settings) SetSelectedBrush(name string) {
	if name == s.selectedBrush {
		return
	}
	s.selectedBrush = name
	s.notify(SettingShape)
}

// Tool returns the active editing tool.
func (s *Settings) Tool() ToolKind { return s.tool }

// SetTool selects the editing tool used by the next gesture.
func (s *Settings) SetTool(t ToolKind) {
	if t == s.tool {
		return
	}
	s.tool = t
	s.notify(SettingOther)
}

// TargetHeight returns the set-height/flatten target in [0, 1].
func (s *Settings) TargetHeight() float64 { return s.targetHeight }

// SetTargetHeight sets the set-height/flatten target, clamped to [0, 1].
func (s *Settings) SetTargetHeight(v float64) {
	v = clamp01(v)
	if v == s.targetHeight {
		return
	}
	s.targetHeight = v
	s.notify(SettingOther)
}

// FlattenMode returns the active flatten sub-mode.
func (s *Settings) FlattenMode() FlattenMode { return s.flattenMode }

// SetFlattenMode selects the flatten sub-mode.
func (s *Settings) SetFlattenMode(m FlattenMode) {
	if m == s.flattenMode {
		return
	}
	s.flattenMode = m
	s.notify(SettingOther)
}

// SmoothRadius returns the neighbourhood radius of the smooth tool.
func (s *Settings) SmoothRadius() int { return s.smoothRadius }

// SetSmoothRadius sets the neighbourhood radius of the smooth tool,
// floored at 1.
func (s *Settings) SetSmoothRadius(r int) {
	if r < 1 {
		r = 1
	}
	if r == s.smoothRadius {
		return
	}
	s.smoothRadius = r
	s.notify(SettingOther)
}

// Rotation returns the rotation jitter configuration.
func (s *Settings) Rotation() RotationJitter { return s.rotation }

// SetRotation configures rotation jitter.
func (s *Settings) SetRotation(j RotationJitter) {
	s.rotation = j
	s.notify(SettingOther)
}

// Spacing returns the spacing jitter configuration.
func (s *Settings) Spacing() SpacingJitter { return s.spacing }

// SetSpacing configures spacing jitter.
func (s *Settings) SetSpacing(j SpacingJitter) {
	s.spacing = j
	s.notify(SettingOther)
}

// Scatter returns the scatter jitter configuration.
func (s *Settings) Scatter() ScatterJitter { return s.scatter }

// SetScatter configures scatter jitter.
func (s *Settings) SetScatter(j ScatterJitter) {
	s.scatter = j
	s.notify(SettingOther)
}
