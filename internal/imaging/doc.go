// Package imaging provides the pixel grid model and the image-level
// operations of the segmentation pipeline.
//
// This package holds the pieces that work on whole images rather than on
// segmentation results: normalizing decoded images into a pixel grid, color
// helpers, Sobel edge detection, and the adapters that read and write image
// files.
//
// # Pixel Grid
//
// A pixel grid is an *image.NRGBA whose bounds start at (0,0). Samples are
// non-premultiplied 8-bit red, green, blue and alpha, stored row-major with
// the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Use ToGrid to convert any image.Image into this form. All functions in this
// package and in the segment and render packages assume a zero origin.
//
// # Thread Safety
//
// Operations are stateless and never modify their input grids. A grid that is
// being filled in place must not be shared with concurrent readers.
//
// # Error Handling
//
// Only file I/O can fail. Decode returns a *DecodeError for missing or
// malformed input and Encode returns a *EncodeError for unwritable outputs or
// unsupported extensions. Both unwrap to the underlying cause. The numeric
// operations (DetectEdges, Luminance, ChannelDistance) are total functions
// and accept zero-sized grids.
package imaging
