package multires

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gracefulearth/image/tiff"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// InvalidInputError reports a face set that cannot be tiled: wrong file
// count, a non-square face, inconsistent sizes, or an unmappable name.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// ScanFaces lists the regular files directly inside dir and checks the cube
// constraints: exactly six faces, each one square, all sharing one edge
// length. The returned paths are indexed in canonical face order.
func ScanFaces(dir string) (paths [FaceCount]string, cubeSize int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return paths, 0, err
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	if len(names) != FaceCount {
		return paths, 0, invalidInputf("the number of faces is %d, not %d", len(names), FaceCount)
	}

	cubeSize = -1
	for _, name := range names {
		face, err := FaceOfFile(name)
		if err != nil {
			return paths, 0, err
		}
		if paths[face] != "" {
			return paths, 0, invalidInputf("the faces %s and %s map to the same cube face %s",
				filepath.Base(paths[face]), name, face)
		}

		full := filepath.Join(dir, name)
		w, h, err := imageSize(full)
		if err != nil {
			return paths, 0, err
		}
		if w != h {
			return paths, 0, invalidInputf("the face %s is not a square (%dx%d)", full, w, h)
		}
		if cubeSize == -1 {
			cubeSize = w
		} else if w != cubeSize {
			return paths, 0, invalidInputf("all faces don't have the same size (%s is %d, want %d)", full, w, cubeSize)
		}
		paths[face] = full
	}

	return paths, cubeSize, nil
}

// imageSize reads the dimensions from the image header without decoding
// the pixel data.
func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
