package imaging

import (
	"image"
	"math"
)

// Sobel kernels indexed [ky+1][kx+1]. The vertical kernel is oriented so that
// brightness increasing upward yields a positive response.
var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}
)

// DetectEdges computes a grayscale gradient-magnitude image from a pixel grid.
//
// The returned grid has the same dimensions as the source. It is useful as a
// visual reference next to a segmentation: flat regions come out black and
// color boundaries come out bright.
//
// Parameters:
//   - grid: Source pixel grid with its origin at (0,0) (see ToGrid).
//
// Returns a new grid; the source is not modified.
//
// # Algorithm
//
//  1. For every interior pixel (not in the outermost row or column), convolve
//     the 3x3 neighborhood with the Sobel kernels separately for the red,
//     green and blue channels. Alpha takes no part in the gradient.
//
//  2. Per channel, magnitude = round(sqrt(Gx² + Gy²)).
//
//  3. The three channel magnitudes are averaged with integer division and
//     clamped to [0, 255].
//
//  4. The output pixel is (m, m, m, 255) regardless of the source alpha.
//
// # Borders
//
// The 1-pixel border is never written and keeps its zero value (0,0,0,0).
// Grids narrower or shorter than 3 pixels therefore come back entirely zero.
func DetectEdges(grid *image.NRGBA) *image.NRGBA {
	width, height := Size(grid)
	out := NewGrid(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var gx, gy [3]int
			for ky := -1; ky <= 1; ky++ {
				row := (y+ky)*grid.Stride + (x-1)*4
				for kx := -1; kx <= 1; kx++ {
					p := grid.Pix[row+(kx+1)*4:]
					wx := sobelX[ky+1][kx+1]
					wy := sobelY[ky+1][kx+1]
					for c := 0; c < 3; c++ {
						gx[c] += wx * int(p[c])
						gy[c] += wy * int(p[c])
					}
				}
			}

			sum := 0
			for c := 0; c < 3; c++ {
				sum += int(math.Round(math.Sqrt(float64(gx[c]*gx[c] + gy[c]*gy[c]))))
			}
			m := uint8(clamp(sum/3, 0, 255))

			i := y*out.Stride + x*4
			out.Pix[i] = m
			out.Pix[i+1] = m
			out.Pix[i+2] = m
			out.Pix[i+3] = 255
		}
	}

	return out
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
