package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
)

// Config is the on-disk JSON scene description
type Config struct {
	Camera    CameraCfg     `json:"camera"`
	Materials []MaterialCfg `json:"materials"`
	Spheres   []SphereCfg   `json:"spheres,omitempty"`
	Boxes     []BoxCfg      `json:"boxes,omitempty"`
}

// CameraCfg describes the camera in a scene file
type CameraCfg struct {
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"lookAt"`
	FOV      float64    `json:"fov,omitempty"` // vertical, degrees; defaults to 45
}

// MaterialCfg describes one material in a scene file
type MaterialCfg struct {
	Color            [3]float64 `json:"color"`
	SpecularColor    [3]float64 `json:"specularColor,omitempty"`
	SpecularExponent float64    `json:"specularExponent,omitempty"`
	Reflective       float64    `json:"reflective,omitempty"`
	Emittance        float64    `json:"emittance,omitempty"`
}

// SphereCfg describes one sphere in a scene file
type SphereCfg struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material int        `json:"material"`
}

// BoxCfg describes one axis-aligned box in a scene file.
// Size is the box's half-extents.
type BoxCfg struct {
	Center   [3]float64 `json:"center"`
	Size     [3]float64 `json:"size"`
	Material int        `json:"material"`
}

// Load reads a JSON scene file, validates it and builds a render-ready scene
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene file %q: %w", path, err)
	}

	return cfg.Build()
}

// Build constructs a scene from a parsed config
func (cfg *Config) Build() (*Scene, error) {
	if len(cfg.Materials) == 0 {
		return nil, fmt.Errorf("scene defines no materials")
	}
	if len(cfg.Spheres)+len(cfg.Boxes) == 0 {
		return nil, fmt.Errorf("scene defines no geometry")
	}

	fov := cfg.Camera.FOV
	if fov == 0 {
		fov = 45
	}
	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("camera fov must be in (0, 180), got %g", fov)
	}

	s := &Scene{
		Camera: CameraConfig{
			Position:    vec3(cfg.Camera.Position),
			LookAt:      vec3(cfg.Camera.LookAt),
			VerticalFOV: fov,
		},
	}

	for _, m := range cfg.Materials {
		s.Materials = append(s.Materials, Material{
			Color:            vec3(m.Color),
			SpecularColor:    vec3(m.SpecularColor),
			SpecularExponent: m.SpecularExponent,
			Reflective:       m.Reflective,
			Emittance:        m.Emittance,
		})
	}

	for i, sp := range cfg.Spheres {
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, sp.Radius)
		}
		s.Geometry = append(s.Geometry, geometry.NewSphere(vec3(sp.Center), sp.Radius, sp.Material))
	}
	for i, b := range cfg.Boxes {
		size := vec3(b.Size)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			return nil, fmt.Errorf("box %d: size must be positive on every axis, got %v", i, size)
		}
		s.Geometry = append(s.Geometry, geometry.NewBox(vec3(b.Center), size, b.Material))
	}

	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s, nil
}

func vec3(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
