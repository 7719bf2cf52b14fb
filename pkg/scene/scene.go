package scene

import (
	"fmt"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
)

// CameraConfig holds the camera parameters loaded with the scene
type CameraConfig struct {
	Position    core.Vec3
	LookAt      core.Vec3
	VerticalFOV float64 // degrees
}

// Scene holds geometry, materials and the light index. All of it is
// read-only for the duration of a render pass and may be read concurrently
// from any number of lanes without synchronization.
type Scene struct {
	Geometry  []geometry.Primitive
	Materials []Material
	Camera    CameraConfig

	lights []int // indices into Geometry of emissive primitives
}

// Finalize validates materials, checks geometry material references and
// builds the light index. Must be called once after construction, before
// rendering starts.
func (s *Scene) Finalize() error {
	for i := range s.Materials {
		if err := s.Materials[i].Validate(); err != nil {
			return fmt.Errorf("material %d: %w", i, err)
		}
	}

	s.lights = s.lights[:0]
	for i, prim := range s.Geometry {
		id := prim.MaterialIndex()
		if id < 0 || id >= len(s.Materials) {
			return fmt.Errorf("geometry %d references unknown material %d", i, id)
		}
		if s.Materials[id].IsEmissive() {
			s.lights = append(s.lights, i)
		}
	}
	return nil
}

// Material returns the material for an intersection's material index
func (s *Scene) Material(id int) Material {
	return s.Materials[id]
}

// Lights returns a read-only view over the scene's emissive geometry
func (s *Scene) Lights() LightView {
	return LightView{scene: s}
}

// Hit tests the ray against every primitive and returns the closest
// intersection within (tMin, tMax)
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection
	closestT := tMax

	for _, prim := range s.Geometry {
		if isect, ok := prim.Hit(ray, tMin, closestT); ok {
			closestT = isect.T
			closest = isect
		}
	}
	return closest, closest != nil
}

// LightView is a read-only handle over the scene's light list. The shading
// core consumes lights exclusively through this view and never mutates the
// underlying arrays.
type LightView struct {
	scene *Scene
}

// Count returns the number of lights in the scene
func (lv LightView) Count() int {
	return len(lv.scene.lights)
}

// Position returns the reference position of the i-th light
func (lv LightView) Position(i int) core.Vec3 {
	return lv.scene.Geometry[lv.scene.lights[i]].Position()
}

// GeometryIndex returns the geometry index of the i-th light
func (lv LightView) GeometryIndex(i int) int {
	return lv.scene.lights[i]
}
