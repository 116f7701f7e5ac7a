package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/gracefulearth/multires"
)

func main() {
	var (
		png      bool
		tileSize int
		quality  int
		dir      string
	)
	flag.BoolVar(&png, "p", false, "set tile image format to png instead of default jpg")
	flag.BoolVar(&png, "png", false, "set tile image format to png instead of default jpg")
	flag.IntVar(&tileSize, "s", 512, "tile size in pixels")
	flag.IntVar(&tileSize, "tilesize", 512, "tile size in pixels")
	flag.IntVar(&quality, "q", 75, "output JPEG quality 0-100")
	flag.IntVar(&quality, "quality", 75, "output JPEG quality 0-100")
	flag.StringVar(&dir, "d", "output", "output directory of tile image files")
	flag.StringVar(&dir, "directory", "output", "output directory of tile image files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("usage: imagetiles [flags] <image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	src := flag.Arg(0)

	if tileSize <= 0 {
		fmt.Println("tile size must be positive, not", tileSize)
		os.Exit(1)
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Println("creating directory", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Println("directory creation error:", err)
			os.Exit(1)
		}
	}

	img, err := imaging.Open(src)
	if err != nil {
		fmt.Println("could not open image:", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	plan := multires.NewPlan(min(bounds.Dx(), bounds.Dy()), tileSize)
	fmt.Println("levels:", plan.MaxLevel)

	prefix := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	format := multires.Format{PNG: png, Quality: quality}
	creator := multires.NewTileCreator(img, dir, prefix, plan, format, false)
	if err := creator.CreateTiles(); err != nil {
		fmt.Println("could not tile image:", err)
		os.Exit(1)
	}
}
