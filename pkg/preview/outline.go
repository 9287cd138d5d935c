// Package preview renders visual checks for a generated sprite sheet.
package preview

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/akeil/spritetool"
	"github.com/akeil/spritetool/internal/imaging"
)

// DefaultOutline is the stroke color used for cell outlines.
var DefaultOutline = color.RGBA{255, 0, 255, 255}

// Outline returns a copy of the sheet, enlarged by scale, with the rectangle
// of every placement stroked in the given color.
// The sheet itself is not modified.
func Outline(sheet image.Image, records []spritetool.Placement, c color.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	var dst *image.RGBA
	if scale == 1 {
		dst = image.NewRGBA(image.Rect(0, 0, sheet.Bounds().Dx(), sheet.Bounds().Dy()))
		imaging.Place(dst, image.Point{}, sheet)
	} else {
		dst = imaging.ToRGBA(imaging.Scale(sheet, float64(scale)))
	}

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(c)
	gc.SetLineWidth(1)

	s := float64(scale)
	for _, p := range records {
		// half pixel offset puts the line on the outermost pixels of the cell
		x0 := float64(p.X)*s + 0.5
		y0 := float64(p.Y)*s + 0.5
		x1 := float64(p.X+p.Width)*s - 0.5
		y1 := float64(p.Y+p.Height)*s - 0.5
		draw2dkit.Rectangle(gc, x0, y0, x1, y1)
		gc.Stroke()
	}

	return dst
}
