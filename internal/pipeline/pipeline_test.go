package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/image-regions/internal/imaging"
	"github.com/ironsheep/image-regions/internal/segment"
)

// createSceneImage creates a 10x10 gray field with a red 3x3 square, a
// transparent corner pixel and a blue pixel.
func createSceneImage() *image.NRGBA {
	img := imaging.NewGrid(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			imaging.Set(img, x, y, color.NRGBA{90, 90, 90, 255})
		}
	}
	for y := 3; y < 6; y++ {
		for x := 3; x < 6; x++ {
			imaging.Set(img, x, y, color.NRGBA{220, 20, 20, 255})
		}
	}
	imaging.Set(img, 9, 9, color.NRGBA{0, 0, 0, 0})
	imaging.Set(img, 8, 1, color.NRGBA{10, 10, 240, 255})
	return img
}

// writePNG encodes img to a PNG file in dir and returns its path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
	return path
}

func TestProcess(t *testing.T) {
	img := createSceneImage()

	res := Process(img, segment.DefaultThreshold)

	for name, out := range map[string]*image.NRGBA{
		"edges":      res.Edges,
		"components": res.Components,
		"highlight":  res.Highlight,
	} {
		if out.Bounds() != img.Bounds() {
			t.Errorf("%s bounds: got %v, want %v", name, out.Bounds(), img.Bounds())
		}
	}

	// gray field, blue dot, red square in raster discovery order
	if res.Summary.Components != 3 {
		t.Fatalf("components: got %d, want 3", res.Summary.Components)
	}
	if res.Summary.BackgroundID != 1 {
		t.Errorf("BackgroundID: got %d, want 1", res.Summary.BackgroundID)
	}
	if res.Summary.LabeledPixels != 99 {
		t.Errorf("LabeledPixels: got %d, want 99", res.Summary.LabeledPixels)
	}
	if res.Info != nil {
		t.Error("Process should not set Info")
	}

	// background passes through, the square (component 3) is tinted green
	if got := imaging.At(res.Highlight, 0, 0); got != (color.NRGBA{90, 90, 90, 255}) {
		t.Errorf("highlight background: got %v", got)
	}
	if got := imaging.At(res.Highlight, 4, 4); got.R != 0 || got.B != 0 || got.G == 0 || got.A != 255 {
		t.Errorf("highlight square: got %v, want green tint", got)
	}
	if got := imaging.At(res.Components, 4, 4); got != (color.NRGBA{220, 20, 20, 255}) {
		t.Errorf("flat square: got %v", got)
	}
	if got := imaging.At(res.Components, 9, 9); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("flat transparent pixel: got %v", got)
	}
	// the gray interior far from the square has no gradient
	if got := imaging.At(res.Edges, 1, 8); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("edges flat area: got %v", got)
	}
	if got := imaging.At(res.Edges, 3, 4); got.R == 0 {
		t.Errorf("edges at square border: got %v, want non-zero", got)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	img := createSceneImage()

	a := Process(img, segment.DefaultThreshold)
	b := Process(img, segment.DefaultThreshold)

	if !bytes.Equal(a.Edges.Pix, b.Edges.Pix) {
		t.Error("edge images differ between runs")
	}
	if !bytes.Equal(a.Components.Pix, b.Components.Pix) {
		t.Error("component maps differ between runs")
	}
	if !bytes.Equal(a.Highlight.Pix, b.Highlight.Pix) {
		t.Error("highlight images differ between runs")
	}
	if a.Summary != b.Summary {
		t.Errorf("summaries differ: %+v vs %+v", a.Summary, b.Summary)
	}
}

func TestProcess_EmptyGrid(t *testing.T) {
	res := Process(imaging.NewGrid(0, 0), segment.DefaultThreshold)

	if res.Summary.Components != 0 {
		t.Errorf("components: got %d, want 0", res.Summary.Components)
	}
	if len(res.Highlight.Pix) != 0 {
		t.Errorf("highlight bytes: got %d, want 0", len(res.Highlight.Pix))
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		InputPath:      writePNG(t, dir, "input.png", createSceneImage()),
		EdgesPath:      filepath.Join(dir, "11_edges.png"),
		ComponentsPath: filepath.Join(dir, "22_components.png"),
		ResultPath:     filepath.Join(dir, "33_result.png"),
		LabelsPath:     filepath.Join(dir, "labels.zst"),
		Threshold:      segment.DefaultThreshold,
	}

	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Info == nil || res.Info.Width != 10 || res.Info.Height != 10 {
		t.Errorf("Info: got %+v", res.Info)
	}

	for _, p := range []string{cfg.EdgesPath, cfg.ComponentsPath, cfg.ResultPath} {
		grid, _, err := imaging.Decode(p)
		if err != nil {
			t.Errorf("output %s: %v", filepath.Base(p), err)
			continue
		}
		if w, h := imaging.Size(grid); w != 10 || h != 10 {
			t.Errorf("output %s: got %dx%d, want 10x10", filepath.Base(p), w, h)
		}
	}

	written, _, _ := imaging.Decode(cfg.ResultPath)
	if !bytes.Equal(written.Pix, res.Highlight.Pix) {
		t.Error("written result differs from in-memory highlight")
	}

	f, err := os.Open(cfg.LabelsPath)
	if err != nil {
		t.Fatalf("label file missing: %v", err)
	}
	defer f.Close()
	labels, err := segment.ReadLabels(f)
	if err != nil {
		t.Fatalf("ReadLabels failed: %v", err)
	}
	if labels.Components != 3 || labels.Labels[0] != 1 {
		t.Errorf("labels: got %d components, first label %d", labels.Components, labels.Labels[0])
	}
}

func TestRun_DecodeErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(dir, "missing.png")
	cfg.EdgesPath = filepath.Join(dir, "edges.png")
	cfg.ComponentsPath = filepath.Join(dir, "components.png")
	cfg.ResultPath = filepath.Join(dir, "result.png")

	res, err := Run(cfg)

	var decodeErr *imaging.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type: got %T (%v), want *imaging.DecodeError", err, err)
	}
	if res != nil {
		t.Error("result should be nil on decode failure")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory should be empty, found %d entries", len(entries))
	}
}

func TestRun_EncodeErrorContinues(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		InputPath:      writePNG(t, dir, "input.png", createSceneImage()),
		EdgesPath:      filepath.Join(dir, "edges.unsupported"),
		ComponentsPath: filepath.Join(dir, "no-such-dir", "components.png"),
		ResultPath:     filepath.Join(dir, "result.png"),
		Threshold:      segment.DefaultThreshold,
	}

	res, err := Run(cfg)
	if err == nil {
		t.Fatal("Run should report the failed outputs")
	}
	if res == nil {
		t.Fatal("result should still be returned")
	}

	var encodeErr *imaging.EncodeError
	if !errors.As(err, &encodeErr) {
		t.Errorf("error type: got %T, want to contain *imaging.EncodeError", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Errorf("want 2 joined errors, got %v", err)
	}
	if _, err := os.Stat(cfg.ResultPath); err != nil {
		t.Errorf("result should still be written: %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	if _, err := Run(Config{}); err == nil {
		t.Error("Run should reject an empty config")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"no input", func(c *Config) { c.InputPath = "" }, true},
		{"negative threshold", func(c *Config) { c.Threshold = -1 }, true},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, false},
		{"no outputs", func(c *Config) {
			c.EdgesPath, c.ComponentsPath, c.ResultPath = "", "", ""
		}, true},
		{"labels only", func(c *Config) {
			c.EdgesPath, c.ComponentsPath, c.ResultPath = "", "", ""
			c.LabelsPath = "labels.zst"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: got %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputPath != "skull.png" || cfg.EdgesPath != "11_edges.png" ||
		cfg.ComponentsPath != "22_components.png" || cfg.ResultPath != "33_result.png" {
		t.Errorf("paths: got %+v", cfg)
	}
	if cfg.Threshold != 30 {
		t.Errorf("Threshold: got %d, want 30", cfg.Threshold)
	}
	if cfg.LabelsPath != "" {
		t.Errorf("LabelsPath: got %q, want empty", cfg.LabelsPath)
	}
}
