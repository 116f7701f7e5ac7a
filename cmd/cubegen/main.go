package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gracefulearth/multires"
)

func main() {
	var cfg multires.Config
	flag.StringVar(&cfg.Output, "o", "./output", "output directory (must not already exist)")
	flag.StringVar(&cfg.Output, "output", "./output", "output directory (must not already exist)")
	flag.IntVar(&cfg.TileSize, "s", 512, "tile size in pixels")
	flag.IntVar(&cfg.TileSize, "tilesize", 512, "tile size in pixels")
	flag.IntVar(&cfg.FallbackSize, "f", 1024, "fallback image size in pixels (0 to skip)")
	flag.IntVar(&cfg.FallbackSize, "fallbacksize", 1024, "fallback image size in pixels (0 to skip)")
	flag.BoolVar(&cfg.AutoLoad, "a", false, "automatically load the panorama in the viewer")
	flag.BoolVar(&cfg.AutoLoad, "autoload", false, "automatically load the panorama in the viewer")
	flag.IntVar(&cfg.Quality, "q", 75, "output JPEG quality 0-100")
	flag.IntVar(&cfg.Quality, "quality", 75, "output JPEG quality 0-100")
	flag.BoolVar(&cfg.PNG, "png", false, "output PNG tiles instead of JPEG tiles")
	flag.BoolVar(&cfg.Debug, "d", false, "print status info and allow an existing output directory")
	flag.BoolVar(&cfg.Debug, "debug", false, "print status info and allow an existing output directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("usage: cubegen [flags] <directory containing the six cube faces>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	cfg.Input = flag.Arg(0)

	if err := multires.Generate(cfg); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
