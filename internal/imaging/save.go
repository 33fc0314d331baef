package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality is the quality used when an output path ends in .jpg or .jpeg.
const JPEGQuality = 95

// EncodeError reports that an output image could not be written.
//
// Encode failures do not touch the in-memory grid, so callers may keep
// writing other outputs after one fails.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Encode writes a pixel grid to path, choosing the format from its extension.
//
// Supported extensions are .png, .jpg/.jpeg (quality JPEGQuality, alpha is
// dropped) and .bmp. Any other extension, and any I/O or encoder failure,
// returns a *EncodeError.
func Encode(path string, grid image.Image) error {
	encoder, err := encoderFor(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := imgio.Save(path, grid, encoder); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(JPEGQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", ext)
}
