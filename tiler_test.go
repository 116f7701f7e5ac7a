package multires

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func tileDimensions(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	return cfg.Width, cfg.Height
}

func TestCreateTilesSingleTile(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(512, 512, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	creator := NewTileCreator(src, dir, "f", NewPlan(512, 512), Format{PNG: true}, false)
	if err := creator.CreateTiles(); err != nil {
		t.Fatal(err)
	}

	w, h := tileDimensions(t, filepath.Join(dir, "1", "f0_0.png"))
	if w != 512 || h != 512 {
		t.Errorf("tile size = %dx%d, want 512x512", w, h)
	}
	if _, err := os.Stat(filepath.Join(dir, "2")); !os.IsNotExist(err) {
		t.Errorf("level 2 should not exist for a single-tile face")
	}
}

func TestCreateTilesClipsBoundary(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(600, 600, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	creator := NewTileCreator(src, dir, "f", NewPlan(600, 512), Format{PNG: true}, false)
	if err := creator.CreateTiles(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		w, h int
	}{
		{"2/f0_0.png", 512, 512},
		{"2/f0_1.png", 88, 512},
		{"2/f1_0.png", 512, 88},
		{"2/f1_1.png", 88, 88},
		{"1/f0_0.png", 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, h := tileDimensions(t, filepath.Join(dir, tt.path))
			if w != tt.w || h != tt.h {
				t.Errorf("tile size = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestCreateTilesNonSquare(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(600, 300, color.NRGBA{A: 255})

	// Plan from the shorter edge, as the single-image tool does.
	creator := NewTileCreator(src, dir, "pano", NewPlan(300, 256), Format{PNG: true}, false)
	if err := creator.CreateTiles(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		w, h int
	}{
		{"2/pano0_0.png", 256, 256},
		{"2/pano0_1.png", 256, 256},
		{"2/pano0_2.png", 88, 256},
		{"2/pano1_0.png", 256, 44},
		{"1/pano0_0.png", 256, 150},
		{"1/pano0_1.png", 44, 150},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, h := tileDimensions(t, filepath.Join(dir, tt.path))
			if w != tt.w || h != tt.h {
				t.Errorf("tile size = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestDropAlpha(t *testing.T) {
	img := imaging.New(2, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 40})
	dropAlpha(img)
	for y := range 2 {
		for x := range 2 {
			c := img.NRGBAAt(x, y)
			if c.A != 0xff {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, c.A)
			}
			if c.R != 1 || c.G != 2 || c.B != 3 {
				t.Fatalf("color channels changed at (%d,%d): %v", x, y, c)
			}
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := (Format{PNG: true}).Extension(); got != "png" {
		t.Errorf("png extension = %q, want %q", got, "png")
	}
	if got := (Format{Quality: 75}).Extension(); got != "jpg" {
		t.Errorf("jpg extension = %q, want %q", got, "jpg")
	}
}
