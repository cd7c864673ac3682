package sculpt

import (
	"image"
	"testing"
)

func grayImage(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}

func TestCatalogDefaultEntry(t *testing.T) {
	c := NewCatalog()
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
	e, ok := c.Get(DefaultBrushName)
	if !ok || !e.Procedural {
		t.Fatal("expected the reserved procedural entry")
	}
	if c.Remove(DefaultBrushName) {
		t.Error("default entry must not be removable")
	}
	if c.Len() != 1 {
		t.Errorf("expected default to survive removal, got %d entries", c.Len())
	}
}

func TestCatalogUpsert(t *testing.T) {
	c := NewCatalog()
	if !c.Upsert("brushes/star.png", grayImage(16, 16)) {
		t.Fatal("expected square image to be accepted")
	}
	e, ok := c.Get("star")
	if !ok {
		t.Fatal("expected entry under derived name")
	}
	if e.Procedural {
		t.Error("custom entry must not be procedural")
	}
	if e.Sampler() == nil {
		t.Error("custom entry should expose a sampler")
	}

	// Re-importing the same path replaces the source in place.
	if !c.Upsert("brushes/star.png", grayImage(32, 32)) {
		t.Fatal("expected replacement to be accepted")
	}
	if c.Len() != 2 {
		t.Errorf("expected no new entry on replacement, got %d", c.Len())
	}
}

func TestCatalogUpsertRejectsInvalid(t *testing.T) {
	c := NewCatalog()
	if c.Upsert("bad.png", grayImage(16, 8)) {
		t.Error("non-square image must be rejected")
	}
	if c.Upsert("worse.png", nil) {
		t.Error("nil image must be rejected")
	}
	if c.Len() != 1 {
		t.Errorf("rejected images must not create entries, got %d", c.Len())
	}
}

func TestCatalogOrder(t *testing.T) {
	c := NewCatalog()
	c.Upsert("zebra.png", grayImage(4, 4))
	c.Upsert("alpha.png", grayImage(4, 4))
	c.Upsert("mid.png", grayImage(4, 4))

	want := []string{DefaultBrushName, "alpha", "mid", "zebra"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogResolveFallback(t *testing.T) {
	c := NewCatalog()
	c.Upsert("star.png", grayImage(4, 4))

	if e := c.Resolve("star"); e.Name != "star" {
		t.Errorf("existing selection resolved to %q", e.Name)
	}
	// A selection deleted out from under the settings falls back to the
	// first entry in catalog order.
	if e := c.Resolve("gone"); e.Name != DefaultBrushName {
		t.Errorf("missing selection resolved to %q, want %q", e.Name, DefaultBrushName)
	}
}

func TestCatalogRemovePaths(t *testing.T) {
	c := NewCatalog()
	c.Upsert("a/star.png", grayImage(4, 4))
	c.Upsert("b/dot.png", grayImage(4, 4))

	c.RemovePaths([]string{"a/star.png", "missing.png"})
	if _, ok := c.Get("star"); ok {
		t.Error("star should be removed")
	}
	if _, ok := c.Get("dot"); !ok {
		t.Error("dot should survive")
	}
}

func TestBrushNameForPath(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"brushes/star.png", "star"},
		{"star.png", "star"},
		{"a/b/c/noise.v2.png", "noise.v2"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := BrushNameForPath(tt.path); got != tt.want {
			t.Errorf("BrushNameForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
