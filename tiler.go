package multires

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

// Format selects the tile encoding: lossless png or lossy jpg at the
// configured quality.
type Format struct {
	PNG     bool
	Quality int
}

// Extension returns the file extension without the leading dot.
func (f Format) Extension() string {
	if f.PNG {
		return "png"
	}
	return "jpg"
}

func (f Format) saveOptions() []imaging.EncodeOption {
	if f.PNG {
		return nil
	}
	return []imaging.EncodeOption{imaging.JPEGQuality(f.Quality)}
}

// TileCreator cuts one source image into the multi-resolution tile layout.
// The working copy is resized in place from level to level, so each level
// is derived from the already-resized level above it and at most one full
// copy of the source stays in memory.
type TileCreator struct {
	dest   string
	img    *image.NRGBA
	width  int
	height int
	plan   Plan
	prefix string
	format Format
	debug  bool
}

// NewTileCreator prepares a tile run for src. Width and height are tracked
// separately so non-square sources tile correctly; the plan is expected to
// be computed from the shorter edge.
func NewTileCreator(src image.Image, dest, prefix string, plan Plan, format Format, debug bool) *TileCreator {
	bounds := src.Bounds()
	return &TileCreator{
		dest:   dest,
		img:    imaging.Clone(src),
		width:  bounds.Dx(),
		height: bounds.Dy(),
		plan:   plan,
		prefix: prefix,
		format: format,
		debug:  debug,
	}
}

// CreateTiles writes every level from the highest resolution down to 1.
func (c *TileCreator) CreateTiles() error {
	for level := c.plan.MaxLevel; level >= 1; level-- {
		w := c.plan.SizeAt(c.width, level)
		h := c.plan.SizeAt(c.height, level)
		if level < c.plan.MaxLevel {
			c.img = imaging.Resize(c.img, w, h, imaging.Lanczos)
		}
		if err := c.createLevel(level, w, h); err != nil {
			return err
		}
	}
	return nil
}

func (c *TileCreator) createLevel(level, w, h int) error {
	dir := filepath.Join(c.dest, strconv.Itoa(level))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tileSize := c.plan.TileSize
	rows := c.plan.TileCount(h)
	cols := c.plan.TileCount(w)
	if c.debug {
		fmt.Printf("level: %d tiles: %dx%d tileSize: %d size: %dx%d\n", level, rows, cols, tileSize, w, h)
	}

	for i := range rows {
		for j := range cols {
			// Boundary tiles clip to the image edge instead of padding.
			rect := image.Rect(j*tileSize, i*tileSize, min(j*tileSize+tileSize, w), min(i*tileSize+tileSize, h))
			tile := imaging.Crop(c.img, rect)
			if !c.format.PNG {
				dropAlpha(tile)
			}
			name := fmt.Sprintf("%s%d_%d.%s", c.prefix, i, j, c.format.Extension())
			if err := imaging.Save(tile, filepath.Join(dir, name), c.format.saveOptions()...); err != nil {
				return fmt.Errorf("failed to save tile %s: %w", name, err)
			}
		}
	}
	return nil
}

// dropAlpha forces the image opaque; the lossy encoder has no alpha channel.
func dropAlpha(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
