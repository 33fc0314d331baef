package imaging

import (
	"fmt"
	"image/color"
)

// Luminance returns the relative brightness of c in the range [0, 1].
//
// Uses ITU-R BT.601 luma weights on the 8-bit channels:
//
//	(0.299*R + 0.587*G + 0.114*B) / 255
//
// Alpha is ignored.
func Luminance(c color.NRGBA) float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255.0
}

// Hex formats the RGB channels of c as "#RRGGBB". Alpha is excluded.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Opaque reports whether c counts as an opaque sample for segmentation,
// meaning its alpha is strictly greater than 128.
func Opaque(c color.NRGBA) bool {
	return c.A > 128
}

// ChannelDistance returns the sum of absolute per-channel differences between
// the RGB channels of a and b (a Manhattan distance in RGB space, 0-765).
func ChannelDistance(a, b color.NRGBA) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

// WithinTolerance reports whether every RGB channel of a differs from the
// matching channel of b by strictly less than tol.
func WithinTolerance(a, b color.NRGBA, tol int) bool {
	return absDiff(a.R, b.R) < tol && absDiff(a.G, b.G) < tol && absDiff(a.B, b.B) < tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
