package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// palette holds the highlight colors in the order they are assigned to
// component ids: red, violet, green, magenta, blue.
var palette = [5]color.NRGBA{
	mustHex("#FF0000"),
	mustHex("#AE00FF"),
	mustHex("#00FF00"),
	mustHex("#FF00AA"),
	mustHex("#0000FF"),
}

// PaletteColor returns the highlight color for a component id (>= 1).
// Colors repeat every five ids.
func PaletteColor(id int) color.NRGBA {
	return palette[(id-1)%len(palette)]
}

// Palette returns a copy of the highlight palette.
func Palette() []color.NRGBA {
	out := make([]color.NRGBA, len(palette))
	copy(out, palette[:])
	return out
}

func mustHex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
