package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NewGrid allocates a zero-valued pixel grid of the given size.
//
// Every sample starts as (0,0,0,0). A non-positive width or height yields an
// empty grid rather than a panic.
func NewGrid(width, height int) *image.NRGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// ToGrid normalizes any decoded image into a pixel grid.
//
// The returned grid is always a fresh *image.NRGBA whose bounds start at (0,0),
// so callers can index it with plain x/y coordinates regardless of the source
// image's color model or origin. Non-premultiplied samples from *image.NRGBA
// sources are copied byte for byte.
func ToGrid(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// At returns the color sample at (x, y). The grid must have its origin at (0,0).
func At(grid *image.NRGBA, x, y int) color.NRGBA {
	i := y*grid.Stride + x*4
	p := grid.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set stores c at (x, y). The grid must have its origin at (0,0).
func Set(grid *image.NRGBA, x, y int, c color.NRGBA) {
	i := y*grid.Stride + x*4
	p := grid.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Size returns the width and height of a grid.
func Size(grid *image.NRGBA) (width, height int) {
	b := grid.Bounds()
	return b.Dx(), b.Dy()
}
