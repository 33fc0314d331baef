package segment

import (
	"image/color"

	"github.com/ironsheep/image-regions/internal/imaging"
)

// Component is the frozen record of one connected region.
//
// Components are created once, when the flood fill that discovered them
// completes, and are never modified afterwards.
type Component struct {
	// ID is the component id (>= 1), assigned in raster discovery order.
	ID int `json:"id"`

	// PixelCount is the number of pixels carrying this id (>= 1).
	PixelCount int `json:"pixel_count"`

	// Average holds the truncated mean of each RGB channel over the member
	// pixels. Alpha is always 255.
	Average color.NRGBA `json:"average"`
}

// Hex returns the average color as "#RRGGBB".
func (c Component) Hex() string {
	return imaging.Hex(c.Average)
}

// Segmentation is the result of labeling a pixel grid.
type Segmentation struct {
	width, height int

	// labels holds one entry per pixel, row-major. 0 means unassigned.
	labels []int

	// components[i] has ID i+1.
	components []Component
}

// Width returns the width of the labeled grid.
func (s *Segmentation) Width() int { return s.width }

// Height returns the height of the labeled grid.
func (s *Segmentation) Height() int { return s.height }

// LabelAt returns the component id at (x, y), or 0 if the pixel is unassigned
// or the coordinates fall outside the grid.
func (s *Segmentation) LabelAt(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.labels[y*s.width+x]
}

// Labels returns a copy of the label grid in row-major order.
func (s *Segmentation) Labels() []int {
	out := make([]int, len(s.labels))
	copy(out, s.labels)
	return out
}

// Len returns the number of components.
func (s *Segmentation) Len() int { return len(s.components) }

// Component returns the record for id. The second result is false for id 0
// and for ids that were never assigned.
func (s *Segmentation) Component(id int) (Component, bool) {
	if id < 1 || id > len(s.components) {
		return Component{}, false
	}
	return s.components[id-1], true
}

// Components returns all component records ordered by id.
func (s *Segmentation) Components() []Component {
	out := make([]Component, len(s.components))
	copy(out, s.components)
	return out
}

// Background returns the component with the largest pixel count.
//
// Components are compared in ascending id order and a later component only
// replaces the current choice when it is strictly larger, so ties go to the
// lowest id. The second result is false when there are no components at all,
// in which case no pixel carries a label and there is nothing to compare
// against.
func (s *Segmentation) Background() (Component, bool) {
	if len(s.components) == 0 {
		return Component{}, false
	}
	bg := s.components[0]
	for _, c := range s.components[1:] {
		if c.PixelCount > bg.PixelCount {
			bg = c
		}
	}
	return bg, true
}
