// Package sculpt provides an interactive terrain-sculpting engine for Go.
//
// # Overview
//
// sculpt edits a 2D height field under a pointer-driven brush stroke. Each
// host update tick while the pointer is held produces a "dab": the engine
// computes which grid cells the brush covers, how strongly each is affected,
// and writes the new heights back to the terrain store.
//
// # Quick Start
//
//	import "github.com/gosculpt/sculpt"
//
//	store := sculpt.NewGridStore(256, 256)
//	eng := sculpt.NewEngine(store, sculpt.DefaultSettings())
//
//	// Host event loop, once per tick while the pointer is down:
//	eng.PointerDown(ev)
//	eng.PointerMove(ev)
//	eng.PointerUp()
//
// # Architecture
//
// The engine is organized into:
//   - Brush masks: procedural falloff shapes (falloff.go) and
//     image-derived masks (custom.go), registered in a Catalog
//   - Stroke state: per-gesture snapshot, tool dispatch, dab application
//   - Tools: raise/lower, smooth, set-height and flatten variants
//   - Randomization: per-dab spacing, rotation and scatter jitter
//
// # Coordinate System
//
// Grid coordinates are row-major with (0,0) at the low corner, x increasing
// right and y increasing up. Heights are normalized to [0, 1]. Angles are in
// radians and increase counter-clockwise.
//
// # Concurrency
//
// The engine is single-threaded by design: it is driven once per tick from
// the host event loop, and every dab completes fully within that call. The
// host must not mutate the height grid while a gesture is active.
package sculpt
