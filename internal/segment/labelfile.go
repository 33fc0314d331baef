package segment

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// labelMagic identifies a label file.
var labelMagic = [4]byte{'R', 'G', 'L', 'B'}

// maxLabelPixels bounds the grid size accepted by ReadLabels.
const maxLabelPixels = 1 << 30

// LabelGrid is a label grid reloaded from a label file.
type LabelGrid struct {
	Width      int
	Height     int
	Components int

	// Labels holds Width*Height component ids in row-major order.
	Labels []int
}

// WriteLabels stores the label grid of s as a zstd-compressed stream.
//
// # Format
//
// After decompression the stream is little-endian:
//
//	magic      [4]byte "RGLB"
//	width      uint32
//	height     uint32
//	components uint32
//	labels     [width*height]uint32, row-major
func WriteLabels(w io.Writer, s *Segmentation) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	bw := bufio.NewWriter(enc)
	header := [16]byte{}
	copy(header[:4], labelMagic[:])
	binary.LittleEndian.PutUint32(header[4:], uint32(s.width))
	binary.LittleEndian.PutUint32(header[8:], uint32(s.height))
	binary.LittleEndian.PutUint32(header[12:], uint32(len(s.components)))
	if _, err := bw.Write(header[:]); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write label header: %w", err)
	}

	var buf [4]byte
	for _, l := range s.labels {
		binary.LittleEndian.PutUint32(buf[:], uint32(l))
		if _, err := bw.Write(buf[:]); err != nil {
			enc.Close()
			return fmt.Errorf("failed to write labels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write labels: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return nil
}

// ReadLabels decodes a label file written by WriteLabels.
//
// Returns an error if the stream is not a label file, is truncated, or holds
// a label greater than its declared component count.
func ReadLabels(r io.Reader) (*LabelGrid, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	var header [16]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, fmt.Errorf("failed to read label header: %w", err)
	}
	if [4]byte(header[:4]) != labelMagic {
		return nil, errors.New("not a label file")
	}

	width := int(binary.LittleEndian.Uint32(header[4:]))
	height := int(binary.LittleEndian.Uint32(header[8:]))
	components := int(binary.LittleEndian.Uint32(header[12:]))
	if width > 0 && height > maxLabelPixels/width {
		return nil, fmt.Errorf("label grid %dx%d too large", width, height)
	}

	labels := make([]int, width*height)
	var buf [4]byte
	for i := range labels {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to read labels: %w", err)
		}
		l := int(binary.LittleEndian.Uint32(buf[:]))
		if l > components {
			return nil, fmt.Errorf("label %d at index %d exceeds component count %d", l, i, components)
		}
		labels[i] = l
	}

	return &LabelGrid{
		Width:      width,
		Height:     height,
		Components: components,
		Labels:     labels,
	}, nil
}
