package multires

import (
	"encoding/json"
	"os"
)

const (
	defaultHFov      = 100
	pathTemplate     = "/%l/%s%y_%x"
	fallbackTemplate = "/fallback/%s"
)

// Manifest is the viewer configuration document written next to the tiles.
type Manifest struct {
	HFov     int      `json:"hfov"`
	AutoLoad bool     `json:"autoLoad,omitempty"`
	Type     string   `json:"type"`
	MultiRes MultiRes `json:"multiRes"`
}

// MultiRes describes the tile layout: the path templates the viewer
// resolves per tile and the pyramid geometry.
type MultiRes struct {
	Path           string `json:"path"`
	FallbackPath   string `json:"fallbackPath,omitempty"`
	Extension      string `json:"extension"`
	TileResolution int    `json:"tileResolution"`
	MaxLevel       int    `json:"maxLevel"`
	CubeResolution int    `json:"cubeResolution"`
}

// NewManifest fills the manifest from the computed plan. The fallback path
// template is only present when fallback images were generated.
func NewManifest(plan Plan, cubeSize int, extension string, autoLoad, fallback bool) Manifest {
	m := Manifest{
		HFov:     defaultHFov,
		AutoLoad: autoLoad,
		Type:     "multires",
		MultiRes: MultiRes{
			Path:           pathTemplate,
			Extension:      extension,
			TileResolution: plan.TileSize,
			MaxLevel:       plan.MaxLevel,
			CubeResolution: cubeSize,
		},
	}
	if fallback {
		m.MultiRes.FallbackPath = fallbackTemplate
	}
	return m
}

// WriteFile serializes the manifest to path as indented JSON.
func (m Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
