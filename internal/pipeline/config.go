package pipeline

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-regions/internal/segment"
)

// Config holds the paths and parameters for one pipeline run.
type Config struct {
	// InputPath is the image to segment.
	InputPath string

	// EdgesPath receives the Sobel edge-magnitude image. Empty skips it.
	EdgesPath string

	// ComponentsPath receives the flat average-color component map.
	// Empty skips it.
	ComponentsPath string

	// ResultPath receives the palette-highlighted image. Empty skips it.
	ResultPath string

	// LabelsPath receives the zstd-compressed label grid. Empty skips it.
	LabelsPath string

	// Threshold is the region-growing similarity threshold.
	Threshold int

	// Debug enables per-step logging.
	Debug bool
}

// DefaultConfig returns the configuration of the reference run: skull.png
// in, three numbered PNGs out, threshold 30, no label file.
func DefaultConfig() Config {
	return Config{
		InputPath:      "skull.png",
		EdgesPath:      "11_edges.png",
		ComponentsPath: "22_components.png",
		ResultPath:     "33_result.png",
		Threshold:      segment.DefaultThreshold,
	}
}

// Validate checks that the configuration can produce at least one output.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}
	if c.EdgesPath == "" && c.ComponentsPath == "" && c.ResultPath == "" && c.LabelsPath == "" {
		return errors.New("at least one output path is required")
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be >= 0, got %d", c.Threshold)
	}
	return nil
}
