package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError reports that an input image could not be read or decoded.
//
// A DecodeError is fatal to a pipeline run: nothing is processed or written.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ImageInfo contains metadata about a decoded input image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format from the file extension:
	// "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Decode loads an image file and normalizes it into a pixel grid.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, BMP, TIFF and WebP. JPEG files are rotated according to their EXIF
//     orientation tag.
//
// Returns:
//   - *image.NRGBA: The pixels as non-premultiplied RGBA with origin (0,0).
//   - *ImageInfo: Dimensions, format and file size.
//   - error: A *DecodeError if the file cannot be opened, stat'd or decoded.
func Decode(path string) (*image.NRGBA, *ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	grid := ToGrid(img)
	width, height := Size(grid)

	return grid, &ImageInfo{
		Width:         width,
		Height:        height,
		Format:        formatFromPath(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// formatFromPath maps a file extension to a format name.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
