// Package segment labels connected regions of similar color in a pixel grid.
//
// Label performs seeded region growing: pixels are visited in raster order and
// every opaque pixel that is not yet part of a region starts a new one. The
// region then grows breadth-first across 4-connected neighbors whose color is
// within a threshold of the seed pixel's color.
//
// # Component Ids
//
// Ids start at 1 and increase by one for each new region, in the order the
// raster scan discovers their seeds. Id 0 marks pixels that carry no label,
// which after Label completes are exactly the pixels with alpha <= 128.
//
// # Similarity
//
// Two colors are similar when |Δr| + |Δg| + |Δb| < threshold. The comparison
// is always made against the region's seed, so the same image can segment
// differently if the seed moves. This is intentional and changing it changes
// results.
//
// # Background
//
// Segmentation.Background picks the largest component (lowest id on ties).
// It is used as a stand-in for "not a region of interest" when rendering.
//
// # Label Files
//
// WriteLabels and ReadLabels persist a label grid as a zstd-compressed
// binary stream so that a segmentation can be inspected without re-running it.
package segment
