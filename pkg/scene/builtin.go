package scene

import (
	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
)

// NewBoxScene creates the built-in demo scene: an enclosed box room with a
// ceiling light, a mirror sphere and a diffuse sphere. Used by the CLI when
// no scene file is given.
func NewBoxScene() *Scene {
	const (
		matWhite = iota
		matRed
		matGreen
		matMirror
		matGlossBlue
		matLight
	)

	s := &Scene{
		Camera: CameraConfig{
			Position:    core.NewVec3(0, 2.5, 9),
			LookAt:      core.NewVec3(0, 2.5, 0),
			VerticalFOV: 45,
		},
		Materials: []Material{
			matWhite: {Color: core.NewVec3(0.85, 0.85, 0.85)},
			matRed:   {Color: core.NewVec3(0.75, 0.15, 0.15)},
			matGreen: {Color: core.NewVec3(0.15, 0.75, 0.15)},
			matMirror: {
				Color:            core.NewVec3(0.9, 0.9, 0.9),
				SpecularColor:    core.NewVec3(0.95, 0.95, 0.95),
				SpecularExponent: 64,
				Reflective:       1,
			},
			matGlossBlue: {
				Color:            core.NewVec3(0.2, 0.3, 0.8),
				SpecularColor:    core.NewVec3(0.8, 0.8, 0.8),
				SpecularExponent: 32,
				Reflective:       0.3,
			},
			matLight: {Color: core.NewVec3(1, 1, 1), Emittance: 5},
		},
		Geometry: []geometry.Primitive{
			// Room: floor, ceiling, back wall, left and right walls
			geometry.NewBox(core.NewVec3(0, -0.25, 0), core.NewVec3(5, 0.25, 5), matWhite),
			geometry.NewBox(core.NewVec3(0, 5.25, 0), core.NewVec3(5, 0.25, 5), matWhite),
			geometry.NewBox(core.NewVec3(0, 2.5, -5.25), core.NewVec3(5, 3, 0.25), matWhite),
			geometry.NewBox(core.NewVec3(-5.25, 2.5, 0), core.NewVec3(0.25, 3, 5), matRed),
			geometry.NewBox(core.NewVec3(5.25, 2.5, 0), core.NewVec3(0.25, 3, 5), matGreen),

			// Ceiling light
			geometry.NewBox(core.NewVec3(0, 4.95, 0), core.NewVec3(1.2, 0.05, 1.2), matLight),

			// Subjects
			geometry.NewSphere(core.NewVec3(-1.6, 1.0, -1.0), 1.0, matMirror),
			geometry.NewSphere(core.NewVec3(1.4, 0.9, 0.8), 0.9, matGlossBlue),
		},
	}

	// Built-in data is known good
	if err := s.Finalize(); err != nil {
		panic(err)
	}
	return s
}
