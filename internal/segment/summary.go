package segment

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes a segmentation at a glance, for logs and reports.
type Summary struct {
	// Components is the number of regions found.
	Components int `json:"components"`

	// LabeledPixels is the number of pixels that carry a component id.
	LabeledPixels int `json:"labeled_pixels"`

	// BackgroundID is the id of the background component, or 0 if there
	// are no components.
	BackgroundID int `json:"background_id"`

	// BackgroundHex is the background's average color as "#RRGGBB".
	// Empty when there is no background.
	BackgroundHex string `json:"background_hex,omitempty"`

	// BackgroundShare is the fraction of labeled pixels (0.0 to 1.0) that
	// belong to the background component.
	BackgroundShare float64 `json:"background_share"`

	// MeanSize and StdDevSize are the mean and sample standard deviation of
	// component pixel counts. StdDevSize is 0 with fewer than two components.
	MeanSize   float64 `json:"mean_size"`
	StdDevSize float64 `json:"stddev_size"`
}

// Summarize computes aggregate statistics for a segmentation.
func Summarize(s *Segmentation) Summary {
	sum := Summary{Components: s.Len()}
	if sum.Components == 0 {
		return sum
	}

	sizes := make([]float64, 0, sum.Components)
	for _, c := range s.components {
		sizes = append(sizes, float64(c.PixelCount))
		sum.LabeledPixels += c.PixelCount
	}

	if len(sizes) > 1 {
		sum.MeanSize, sum.StdDevSize = stat.MeanStdDev(sizes, nil)
	} else {
		sum.MeanSize = sizes[0]
	}

	bg, _ := s.Background()
	sum.BackgroundID = bg.ID
	sum.BackgroundHex = bg.Hex()
	sum.BackgroundShare = float64(bg.PixelCount) / float64(sum.LabeledPixels)

	return sum
}
