// Package render turns a segmentation into images a person can review.
//
// FlatMap paints each region in its average color. Highlight keeps the
// original image for background and transparent pixels and tints every other
// region with a fixed five-color palette, shaded by the original luminance.
package render
