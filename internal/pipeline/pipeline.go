// Package pipeline wires edge detection, segmentation and rendering into a
// single run over one image.
//
// Process works purely in memory. Run adds file I/O around it: the input is
// decoded first (a failure there stops the run before anything is written),
// then each output is encoded in turn. A failed output is logged and
// reported, but the remaining outputs are still attempted.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/ironsheep/image-regions/internal/imaging"
	"github.com/ironsheep/image-regions/internal/render"
	"github.com/ironsheep/image-regions/internal/segment"
)

// Result holds everything a run produced.
type Result struct {
	// Info describes the decoded input. Nil when the result came from Process.
	Info *imaging.ImageInfo

	// Edges is the Sobel gradient-magnitude image.
	Edges *image.NRGBA

	// Components is the flat average-color component map.
	Components *image.NRGBA

	// Highlight is the background-preserving palette-highlighted image.
	Highlight *image.NRGBA

	// Segmentation is the label grid and component records.
	Segmentation *segment.Segmentation

	// Summary aggregates the segmentation.
	Summary segment.Summary
}

// Process runs the full analysis on an in-memory grid.
//
// The steps run one after another: edge detection, labeling with threshold,
// background selection, then both renderers. The input grid is not modified,
// and the same grid and threshold always yield identical results.
func Process(grid *image.NRGBA, threshold int) *Result {
	edges := imaging.DetectEdges(grid)
	seg := segment.Label(grid, threshold)

	return &Result{
		Edges:        edges,
		Components:   render.FlatMap(seg),
		Highlight:    render.Highlight(grid, seg),
		Segmentation: seg,
		Summary:      segment.Summarize(seg),
	}
}

// Run decodes cfg.InputPath, processes it and writes the configured outputs.
//
// Returns:
//   - *Result: The in-memory results. Nil only when validation or decoding
//     failed.
//   - error: The validation error, a *imaging.DecodeError, or the joined
//     errors of every output that failed to write (each a *imaging.EncodeError
//     for images). Outputs that were written successfully stay on disk.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	grid, info, err := imaging.Decode(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		log.Printf("Decoded %s: %dx%d %s (%d bytes)", cfg.InputPath, info.Width, info.Height, info.Format, info.FileSizeBytes)
	}

	res := Process(grid, cfg.Threshold)
	res.Info = info
	if cfg.Debug {
		s := res.Summary
		log.Printf("Found %d components over %d pixels (threshold %d); background #%d %s covers %.1f%%",
			s.Components, s.LabeledPixels, cfg.Threshold, s.BackgroundID, s.BackgroundHex, s.BackgroundShare*100)
	}

	outputs := []struct {
		name string
		path string
		img  *image.NRGBA
	}{
		{"edges", cfg.EdgesPath, res.Edges},
		{"components", cfg.ComponentsPath, res.Components},
		{"result", cfg.ResultPath, res.Highlight},
	}

	var errs []error
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if err := imaging.Encode(out.path, out.img); err != nil {
			log.Printf("Failed to write %s image: %v", out.name, err)
			errs = append(errs, err)
			continue
		}
		if cfg.Debug {
			log.Printf("Wrote %s image to %s", out.name, out.path)
		}
	}

	if cfg.LabelsPath != "" {
		if err := writeLabelFile(cfg.LabelsPath, res.Segmentation); err != nil {
			log.Printf("Failed to write label file: %v", err)
			errs = append(errs, err)
		} else if cfg.Debug {
			log.Printf("Wrote label grid to %s", cfg.LabelsPath)
		}
	}

	return res, errors.Join(errs...)
}

func writeLabelFile(path string, seg *segment.Segmentation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create label file: %w", err)
	}
	if err := segment.WriteLabels(f, seg); err != nil {
		f.Close()
		return fmt.Errorf("failed to write label file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close label file %s: %w", path, err)
	}
	return nil
}
