package scene

import (
	"fmt"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

// Material describes how a surface responds to light. Materials are owned by
// the scene, addressed by index, and immutable for the duration of a render
// pass.
type Material struct {
	Color            core.Vec3 // base (diffuse) color
	SpecularColor    core.Vec3
	SpecularExponent float64
	Reflective       float64 // probability mass of the specular branch, in [0,1]
	Emittance        float64 // > 0 marks the surface as a light
}

// Validate checks material data at load time and clamps the specular branch
// probability into [0,1]. Shading assumes these preconditions hold and does
// no validation of its own.
func (m *Material) Validate() error {
	if m.SpecularExponent < 0 {
		return fmt.Errorf("specular exponent must be non-negative, got %g", m.SpecularExponent)
	}
	if m.Emittance < 0 {
		return fmt.Errorf("emittance must be non-negative, got %g", m.Emittance)
	}
	if m.Reflective < 0 {
		m.Reflective = 0
	}
	if m.Reflective > 1 {
		m.Reflective = 1
	}
	return nil
}

// IsEmissive reports whether the material emits light
func (m *Material) IsEmissive() bool {
	return m.Emittance > 0
}

// Emitted returns the radiance emitted by the material
func (m *Material) Emitted() core.Vec3 {
	return m.Color.Multiply(m.Emittance)
}
