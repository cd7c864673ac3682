package sculpt

import (
	"image"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultBrushName is the reserved name of the built-in procedural brush.
// The entry under this name always exists and cannot be removed. The
// parenthesized spelling keeps it sorted ahead of typical file-derived
// names and out of collision with them.
const DefaultBrushName = "(procedural)"

// BrushEntry is one named mask source in a Catalog: either the built-in
// procedural falloff brush or a custom brush backed by a grayscale image.
type BrushEntry struct {
	// Name is the catalog key, derived from the image file name for
	// custom entries.
	Name string

	// Path is the asset path the entry was imported from. Empty for the
	// procedural entry.
	Path string

	// Procedural is true only for the reserved default entry.
	Procedural bool

	img *image.Gray
}

// Sampler returns a bilinear sampler over the entry's source image, or
// nil if the entry has no image (the procedural entry, or a custom entry
// whose backing image has gone missing).
func (e *BrushEntry) Sampler() GraySampler {
	if e.img == nil {
		return nil
	}
	return NewImageSampler(e.img)
}

// Catalog is a registry of brush mask sources keyed by name. Enumeration
// order is lexicographic by name, so hosts iterating the catalog (for
// example to build a brush picker) see a deterministic order.
type Catalog struct {
	entries map[string]*BrushEntry
}

// NewCatalog creates a catalog holding only the reserved procedural
// entry.
func NewCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]*BrushEntry)}
	c.entries[DefaultBrushName] = &BrushEntry{
		Name:       DefaultBrushName,
		Procedural: true,
	}
	return c
}

// BrushNameForPath derives the catalog name for an asset path: the file
// base name with its extension stripped.
func BrushNameForPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Upsert registers or replaces a custom brush from an image asset.
// Non-square images fail validation and are ignored; Upsert reports
// whether the image was accepted. If an entry with the derived name
// already exists its source image is replaced in place, so a re-imported
// asset updates the existing brush.
func (c *Catalog) Upsert(path string, img image.Image) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || b.Dx() != b.Dy() {
		Logger().Warn("rejected brush image", "path", path, "width", b.Dx(), "height", b.Dy())
		return false
	}

	name := BrushNameForPath(path)
	gray := ScaleGray(img, b.Dx())
	if e, ok := c.entries[name]; ok && !e.Procedural {
		e.Path = path
		e.img = gray
		return true
	}
	if name == DefaultBrushName {
		return false
	}
	c.entries[name] = &BrushEntry{Name: name, Path: path, img: gray}
	Logger().Info("brush imported", "name", name, "path", path)
	return true
}

// Remove deletes the named entry. The reserved procedural entry is never
// removed. Reports whether an entry was deleted.
func (c *Catalog) Remove(name string) bool {
	e, ok := c.entries[name]
	if !ok || e.Procedural {
		return false
	}
	delete(c.entries, name)
	return true
}

// RemovePaths deletes the entries derived from the given asset paths,
// typically in response to a deleted-assets notification from the host.
func (c *Catalog) RemovePaths(paths []string) {
	for _, p := range paths {
		c.Remove(BrushNameForPath(p))
	}
}

// Get returns the named entry.
func (c *Catalog) Get(name string) (*BrushEntry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns all entry names in lexicographic order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries, the procedural one included.
func (c *Catalog) Len() int { return len(c.entries) }

// Resolve maps a configured selection to an entry that actually exists:
// the selection itself if present, otherwise the first entry in catalog
// order (covering a selected brush deleted out from under the settings).
func (c *Catalog) Resolve(selected string) *BrushEntry {
	if e, ok := c.entries[selected]; ok {
		return e
	}
	names := c.Names()
	return c.entries[names[0]]
}
