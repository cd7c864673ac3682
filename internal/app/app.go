// Package app adapts the sculpting engine to the ebiten game loop for
// the interactive demo.
package app

import (
	"image"
	_ "image/png" // brush images are PNG files
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gosculpt/sculpt"
)

// Game drives a sculpt.Engine from mouse and keyboard input and renders
// the height grid as grayscale.
//
// Controls: 1-4 select the tool, F toggles the flatten sub-mode, [ and ]
// resize the brush, J toggles rotation jitter, left drag sculpts (shift
// and control select the alternate behaviors), Q quits.
type Game struct {
	engine *sculpt.Engine
	store  *sculpt.GridStore
	scale  int

	screen *ebiten.Image
	pixels []byte

	lastCursorY int
	dragging    bool
}

// New constructs a Game over the given store and engine.
func New(engine *sculpt.Engine, store *sculpt.GridStore, scale int) *Game {
	w, h := store.Size()
	return &Game{
		engine: engine,
		store:  store,
		scale:  scale,
		screen: ebiten.NewImage(w, h),
		pixels: make([]byte, w*h*4),
	}
}

// LoadBrushes imports every PNG in dir into the engine's brush catalog.
// A missing or empty dir is fine; the procedural brush always exists.
func (g *Game) LoadBrushes(dir string) {
	if dir == "" {
		return
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil || len(paths) == 0 {
		return
	}
	g.engine.BrushesChanged(paths, nil, func(path string) (image.Image, error) {
		f, err := os.Open(path) // #nosec G304 -- user-chosen brush dir
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	})
}

// Update handles one tick of input and sculpting.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	st := g.engine.Settings()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		st.SetTool(sculpt.ToolRaiseLower)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		st.SetTool(sculpt.ToolSmooth)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		st.SetTool(sculpt.ToolSetHeight)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		st.SetTool(sculpt.ToolFlatten)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if st.FlattenMode() == sculpt.FlattenRaise {
			st.SetFlattenMode(sculpt.FlattenExtend)
		} else {
			st.SetFlattenMode(sculpt.FlattenRaise)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		st.SetBrushSize(st.BrushSize() - 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		st.SetBrushSize(st.BrushSize() + 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		j := st.Rotation()
		j.Enabled = !j.Enabled
		j.Min, j.Max = -0.5, 0.5
		st.SetRotation(j)
	}

	cx, cy := ebiten.CursorPosition()
	ev := sculpt.PointerEvent{
		World:  sculpt.V2(float64(cx)/float64(g.scale), float64(cy)/float64(g.scale)),
		DeltaY: float64(cy - g.lastCursorY),
		Mods: sculpt.Modifiers{
			Primary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Shift:   ebiten.IsKeyPressed(ebiten.KeyShift),
			Control: ebiten.IsKeyPressed(ebiten.KeyControl),
		},
	}
	g.lastCursorY = cy

	switch {
	case ev.Mods.Primary && !g.dragging:
		g.dragging = true
		g.engine.PointerDown(ev)
	case ev.Mods.Primary:
		g.engine.PointerMove(ev)
	case g.dragging:
		g.dragging = false
		g.engine.PointerUp()
	}
	return nil
}

// Draw renders the height grid as grayscale, scaled up to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	fillGrayRGBA(g.pixels, g.store.Grid().Data())
	g.screen.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.store.Size()
	return w * g.scale, h * g.scale
}

// fillGrayRGBA converts normalized heights into grayscale RGBA pixels.
func fillGrayRGBA(buf []byte, heights []float64) {
	for i, h := range heights {
		v := uint8(h * 255)
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xFF
	}
}
