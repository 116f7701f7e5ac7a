package multires

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Config carries the whole tool configuration through the pipeline stages.
type Config struct {
	Input        string
	Output       string
	TileSize     int
	FallbackSize int // 0 disables fallback generation
	Quality      int
	AutoLoad     bool
	PNG          bool
	Debug        bool
}

// Generate runs the pipeline stages in order: validate the six cube faces,
// plan the pyramid, write the tiles, then the fallback images and the
// viewer manifest. The first error aborts the run; nothing is written
// before validation passes.
func Generate(cfg Config) error {
	if cfg.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, not %d", cfg.TileSize)
	}
	if err := checkOutput(cfg.Output, cfg.Debug); err != nil {
		return err
	}

	fmt.Println("Processing input image information...")
	faces, cubeSize, err := ScanFaces(cfg.Input)
	if err != nil {
		return err
	}

	format := Format{PNG: cfg.PNG, Quality: cfg.Quality}
	plan := NewPlan(cubeSize, cfg.TileSize)
	if cfg.Debug {
		fmt.Println("maxLevel:", plan.MaxLevel)
		fmt.Println("tileResolution:", plan.TileSize)
		fmt.Println("cubeResolution:", cubeSize)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return err
	}

	fmt.Println("Generating tiles...")
	for face, path := range faces {
		img, ok, err := openFace(path)
		if err != nil {
			return err
		}
		if !ok {
			// Face file gone since validation; nothing to generate for it.
			continue
		}
		creator := NewTileCreator(img, cfg.Output, Face(face).Letter(), plan, format, cfg.Debug)
		if err := creator.CreateTiles(); err != nil {
			return err
		}
	}

	hasFallback := cfg.FallbackSize > 0
	if hasFallback {
		fmt.Println("Generating fallback tiles...")
		if err := generateFallbacks(cfg, faces, format); err != nil {
			return err
		}
	}

	manifest := NewManifest(plan, cubeSize, format.Extension(), cfg.AutoLoad, hasFallback)
	return manifest.WriteFile(filepath.Join(cfg.Output, "config.json"))
}

// checkOutput rejects an already existing output directory unless debug
// mode allows writing into it.
func checkOutput(path string, debug bool) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if !debug {
			return fmt.Errorf("output directory %q already exists", path)
		}
		fmt.Printf("output directory %q already exists, writing into it\n", path)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return nil
}

// generateFallbacks resizes each original full-resolution face down to a
// single square for the viewer to show before the tiles load.
func generateFallbacks(cfg Config, faces [FaceCount]string, format Format) error {
	dir := filepath.Join(cfg.Output, "fallback")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for face, path := range faces {
		img, ok, err := openFace(path)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		// Flatten before resampling so transparent pixels keep their color
		// weight instead of being averaged away.
		work := imaging.Clone(img)
		if !format.PNG {
			dropAlpha(work)
		}
		small := imaging.Resize(work, cfg.FallbackSize, cfg.FallbackSize, imaging.Lanczos)
		name := Face(face).Letter() + "." + format.Extension()
		if err := imaging.Save(small, filepath.Join(dir, name), format.saveOptions()...); err != nil {
			return fmt.Errorf("failed to save fallback %s: %w", name, err)
		}
	}
	return nil
}

func openFace(path string) (image.Image, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open face %s: %w", path, err)
	}
	return img, true, nil
}
