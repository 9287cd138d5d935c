package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Place copies src unscaled into dst with the top-left corner of src
// at origin. Pixels are replaced, not blended.
//
// Pixels outside of dst are clipped.
// Returns the rectangle that was written in dst coordinates.
func Place(dst *image.RGBA, origin image.Point, src image.Image) image.Rectangle {
	b := src.Bounds()
	r := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return r
	}
	draw.Draw(dst, r, src, b.Min, draw.Src)
	return r
}

// ToRGBA returns the given image as an *image.RGBA anchored at the origin.
// If i already is an RGBA at the origin, it is returned as it is.
func ToRGBA(i image.Image) *image.RGBA {
	if rgba, ok := i.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := i.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), i, b.Min, draw.Src)
	return dst
}

// Scale creates a copy of the given image, enlarged or reduced by factor.
// Nearest neighbour keeps the pixel structure of small icons intact.
func Scale(i image.Image, factor float64) image.Image {
	b := i.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), i, b, draw.Src, nil)
	return dst
}
