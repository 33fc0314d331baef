package render

import (
	"image"
	"image/color"

	"github.com/ironsheep/image-regions/internal/imaging"
	"github.com/ironsheep/image-regions/internal/segment"
)

// BackgroundTolerance is the per-channel distance below which a component's
// average color counts as background in Highlight.
const BackgroundTolerance = 30

var unlabeled = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// FlatMap renders every pixel in its component's average color.
//
// Unlabeled pixels become opaque black (0,0,0,255). Labeled pixels take the
// owning component's average RGB with alpha 255.
func FlatMap(seg *segment.Segmentation) *image.NRGBA {
	out := imaging.NewGrid(seg.Width(), seg.Height())
	for y := 0; y < seg.Height(); y++ {
		for x := 0; x < seg.Width(); x++ {
			c := unlabeled
			if comp, ok := seg.Component(seg.LabelAt(x, y)); ok {
				c = comp.Average
			}
			imaging.Set(out, x, y, c)
		}
	}
	return out
}

// Highlight tints foreground components with the palette while leaving the
// background untouched.
//
// Parameters:
//   - grid: The original pixel grid that seg was computed from.
//   - seg: Segmentation of grid.
//
// Returns a new grid of the same size.
//
// # Rules
//
// A pixel is copied unchanged, alpha included, when it is unlabeled or when
// its component's average color is within BackgroundTolerance of the
// background component's average on all three channels (strictly less than,
// per channel).
//
// Every other pixel becomes PaletteColor(id) scaled by the luminance of the
// original pixel, truncated per channel, with alpha 255.
func Highlight(grid *image.NRGBA, seg *segment.Segmentation) *image.NRGBA {
	width, height := seg.Width(), seg.Height()
	out := imaging.NewGrid(width, height)
	bg, hasBackground := seg.Background()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			orig := imaging.At(grid, x, y)
			id := seg.LabelAt(x, y)
			comp, ok := seg.Component(id)
			if !ok || (hasBackground && imaging.WithinTolerance(comp.Average, bg.Average, BackgroundTolerance)) {
				imaging.Set(out, x, y, orig)
				continue
			}
			imaging.Set(out, x, y, shade(PaletteColor(id), imaging.Luminance(orig)))
		}
	}
	return out
}

// shade scales the RGB channels of c by lum (0 to 1) and makes it opaque.
func shade(c color.NRGBA, lum float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * lum),
		G: uint8(float64(c.G) * lum),
		B: uint8(float64(c.B) * lum),
		A: 255,
	}
}
