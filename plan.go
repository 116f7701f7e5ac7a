package multires

import "math"

// Plan holds the pyramid geometry derived from the source edge length and
// the requested tile size.
type Plan struct {
	TileSize int
	MaxLevel int
}

// NewPlan clamps tileSize to size and derives the number of pyramid levels.
// A top level whose rounded resolution already equals the tile size would
// duplicate the level below it, so it is dropped.
func NewPlan(size, tileSize int) Plan {
	if tileSize > size {
		tileSize = size
	}
	levels := int(math.Ceil(math.Log2(float64(size)/float64(tileSize)))) + 1
	if int(math.Round(float64(size)/math.Pow(2, float64(levels-2)))) == tileSize {
		levels--
	}
	return Plan{TileSize: tileSize, MaxLevel: levels}
}

// SizeAt reports the edge length an image of original length orig is
// resized to at the given level. Sizes are rounded, not truncated, to
// match how resized dimensions are chosen.
func (p Plan) SizeAt(orig, level int) int {
	return int(math.Round(float64(orig) / math.Pow(2, float64(p.MaxLevel-level))))
}

// TileCount reports how many tile rows (or columns) cover an edge of the
// given length.
func (p Plan) TileCount(size int) int {
	return (size + p.TileSize - 1) / p.TileSize
}
