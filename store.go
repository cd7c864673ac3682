package sculpt

// HeightStore is the authoritative terrain store the engine sculpts
// against. The engine keeps a working copy of the full grid, writes each
// dab's sub-region back through Write, and re-reads the whole grid when
// the host signals that an undo or redo rewrote the store.
type HeightStore interface {
	// Size returns the grid dimensions in cells.
	Size() (w, h int)
	// Read copies the w×h region with low corner (x, y) out of the
	// store. Cells outside the grid read as 0.
	Read(x, y, w, h int) *HeightMap
	// Write copies a sub-grid into the store with its low corner at
	// (x, y). Cells falling outside the grid are ignored.
	Write(x, y int, sub *HeightMap)
}

// GridStore is an in-memory HeightStore backed by a single HeightMap.
type GridStore struct {
	grid *HeightMap
}

// NewGridStore creates an in-memory store with a flat zero-height grid.
func NewGridStore(w, h int) *GridStore {
	return &GridStore{grid: NewHeightMap(w, h)}
}

// NewGridStoreFrom creates an in-memory store over a copy of the given
// grid.
func NewGridStoreFrom(grid *HeightMap) *GridStore {
	return &GridStore{grid: grid.Clone()}
}

// Size implements HeightStore.
func (s *GridStore) Size() (int, int) {
	return s.grid.Width(), s.grid.Height()
}

// Read implements HeightStore.
func (s *GridStore) Read(x, y, w, h int) *HeightMap {
	return s.grid.Sub(x, y, w, h)
}

// Write implements HeightStore.
func (s *GridStore) Write(x, y int, sub *HeightMap) {
	s.grid.SetSub(x, y, sub)
}

// Grid exposes the backing map, mainly so hosts can render it.
func (s *GridStore) Grid() *HeightMap { return s.grid }
