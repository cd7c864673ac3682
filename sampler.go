package sculpt

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// GraySampler samples a grayscale source at arbitrary fractional
// coordinates. Custom brush masks are built by sampling one of these.
type GraySampler interface {
	// SampleGray returns the grayscale value in [0, 1] at normalized
	// coordinates (u, v) in [0, 1]², bilinearly interpolated between
	// the four surrounding texels. Coordinates outside the unit square
	// clamp to the nearest edge.
	SampleGray(u, v float64) float64
}

// ImageSampler is a GraySampler over an in-memory grayscale image.
type ImageSampler struct {
	img *image.Gray
}

// NewImageSampler creates a sampler over an arbitrary image, converting
// it to grayscale first. Returns nil for a nil or empty image.
func NewImageSampler(img image.Image) *ImageSampler {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	if g, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return &ImageSampler{img: g}
	}
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(g, g.Bounds(), img, b.Min, xdraw.Src)
	return &ImageSampler{img: g}
}

// ScaleGray resamples an arbitrary image to a size×size grayscale image
// with a bilinear scaler. Catalog ingestion uses this to normalize
// imported brush images to a canonical resolution.
func ScaleGray(src image.Image, size int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SampleGray implements GraySampler.
func (s *ImageSampler) SampleGray(u, v float64) float64 {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()

	fx := clamp01(u) * float64(w-1)
	fy := clamp01(v) * float64(h-1)
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	v00 := s.texel(x0, y0)
	v10 := s.texel(x1, y0)
	v01 := s.texel(x0, y1)
	v11 := s.texel(x1, y1)

	top := lerp(v00, v10, tx)
	bot := lerp(v01, v11, tx)
	return lerp(top, bot, ty)
}

// texel returns one pixel as a normalized grayscale value.
func (s *ImageSampler) texel(x, y int) float64 {
	return float64(s.img.GrayAt(x, y).Y) / 255
}
