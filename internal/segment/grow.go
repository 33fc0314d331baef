package segment

import (
	"image"
	"image/color"

	"github.com/ironsheep/image-regions/internal/imaging"
)

// DefaultThreshold is the similarity threshold used by the reference
// pipeline.
const DefaultThreshold = 30

// point is a pixel coordinate inside the grid.
type point struct {
	x, y int
}

// 4-connected neighbor offsets: left, right, up, down.
var (
	neighborDX = [4]int{-1, 1, 0, 0}
	neighborDY = [4]int{0, 0, -1, 1}
)

// Label assigns a component id to every opaque pixel by seeded region growing.
//
// Parameters:
//   - grid: Source pixel grid with its origin at (0,0).
//   - threshold: Similarity threshold. A neighbor joins a region when the sum
//     of its absolute RGB differences from the region's seed color is strictly
//     less than threshold. 0 admits nothing beyond the seed itself.
//
// Returns the label grid and the frozen component records.
//
// # Algorithm
//
//  1. Scan pixels in raster order. Each pixel that is still unlabeled and has
//     alpha > 128 seeds a new region with the next id (starting at 1).
//
//  2. Grow the region breadth-first over 4-connected neighbors using a FIFO
//     queue. A neighbor joins when it is inside the grid, unlabeled, opaque,
//     and similar to the seed. Similarity is always measured against the seed
//     color, never against the pixel it was reached from, so a slow gradient
//     stops growing once it drifts threshold away from the seed.
//
//  3. Joining pixels are labeled immediately, which guarantees each pixel is
//     queued at most once, and add to the region's running channel sums.
//
//  4. When the queue drains the component record is frozen with its pixel
//     count and truncated channel means.
//
// Pixels with alpha <= 128 are never labeled and never join a region.
func Label(grid *image.NRGBA, threshold int) *Segmentation {
	width, height := imaging.Size(grid)
	s := &Segmentation{
		width:      width,
		height:     height,
		labels:     make([]int, width*height),
		components: make([]Component, 0),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if s.labels[y*width+x] != 0 || !imaging.Opaque(imaging.At(grid, x, y)) {
				continue
			}
			id := len(s.components) + 1
			s.components = append(s.components, s.grow(grid, x, y, id, threshold))
		}
	}

	return s
}

// grow floods one region from the seed at (seedX, seedY) and returns its
// finished record. The queue lives only for the duration of this pass.
func (s *Segmentation) grow(grid *image.NRGBA, seedX, seedY, id, threshold int) Component {
	seed := imaging.At(grid, seedX, seedY)
	acc := accumulator{}
	acc.add(seed)

	q := newQueue()
	q.push(point{seedX, seedY})
	s.labels[seedY*s.width+seedX] = id

	for q.len() > 0 {
		p := q.pop()
		for i := 0; i < 4; i++ {
			nx, ny := p.x+neighborDX[i], p.y+neighborDY[i]
			if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
				continue
			}
			idx := ny*s.width + nx
			if s.labels[idx] != 0 {
				continue
			}
			c := imaging.At(grid, nx, ny)
			if !imaging.Opaque(c) || imaging.ChannelDistance(seed, c) >= threshold {
				continue
			}
			s.labels[idx] = id
			acc.add(c)
			q.push(point{nx, ny})
		}
	}

	return acc.component(id)
}

// accumulator holds the running totals of a region while it grows.
type accumulator struct {
	r, g, b int
	count   int
}

func (a *accumulator) add(c color.NRGBA) {
	a.r += int(c.R)
	a.g += int(c.G)
	a.b += int(c.B)
	a.count++
}

func (a *accumulator) component(id int) Component {
	return Component{
		ID:         id,
		PixelCount: a.count,
		Average: color.NRGBA{
			R: uint8(a.r / a.count),
			G: uint8(a.g / a.count),
			B: uint8(a.b / a.count),
			A: 255,
		},
	}
}
