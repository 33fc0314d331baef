package segment

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestWriteReadLabels(t *testing.T) {
	img := createNoiseImage(17, 9, 7)
	seg := Label(img, DefaultThreshold)

	var buf bytes.Buffer
	if err := WriteLabels(&buf, seg); err != nil {
		t.Fatalf("WriteLabels failed: %v", err)
	}

	grid, err := ReadLabels(&buf)
	if err != nil {
		t.Fatalf("ReadLabels failed: %v", err)
	}

	if grid.Width != 17 || grid.Height != 9 {
		t.Errorf("dimensions: got %dx%d, want 17x9", grid.Width, grid.Height)
	}
	if grid.Components != seg.Len() {
		t.Errorf("Components: got %d, want %d", grid.Components, seg.Len())
	}
	want := seg.Labels()
	if len(grid.Labels) != len(want) {
		t.Fatalf("labels: got %d, want %d", len(grid.Labels), len(want))
	}
	for i := range want {
		if grid.Labels[i] != want[i] {
			t.Fatalf("label %d: got %d, want %d", i, grid.Labels[i], want[i])
		}
	}
}

func TestReadLabels_NotZstd(t *testing.T) {
	if _, err := ReadLabels(strings.NewReader("plain text")); err == nil {
		t.Error("ReadLabels should fail on non-zstd input")
	}
}

func TestReadLabels_BadMagic(t *testing.T) {
	data := compress(t, []byte("XXXX\x01\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))

	_, err := ReadLabels(bytes.NewReader(data))
	if err == nil || !strings.Contains(err.Error(), "not a label file") {
		t.Errorf("got %v, want not a label file", err)
	}
}

func TestReadLabels_Truncated(t *testing.T) {
	// header claims 2x2 but only one label follows
	data := compress(t, []byte("RGLB\x02\x00\x00\x00\x02\x00\x00\x00\x01\x00\x00\x00\x01\x00\x00\x00"))

	if _, err := ReadLabels(bytes.NewReader(data)); err == nil {
		t.Error("ReadLabels should fail on truncated labels")
	}
}

func TestReadLabels_LabelOutOfRange(t *testing.T) {
	data := compress(t, []byte("RGLB\x01\x00\x00\x00\x01\x00\x00\x00\x01\x00\x00\x00\x05\x00\x00\x00"))

	if _, err := ReadLabels(bytes.NewReader(data)); err == nil {
		t.Error("ReadLabels should reject a label above the component count")
	}
}

func compress(t *testing.T, raw []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("failed to create zstd writer: %v", err)
	}
	if _, err := enc.Write(raw); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close zstd writer: %v", err)
	}
	return buf.Bytes()
}
