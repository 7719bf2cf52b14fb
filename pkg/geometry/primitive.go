package geometry

import (
	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

// Intersection contains information about a ray-primitive intersection.
// The normal is always unit length and faces the incoming ray.
type Intersection struct {
	Point      core.Vec3 // point of intersection
	Normal     core.Vec3 // surface normal at intersection
	T          float64   // parameter t along the ray
	FrontFace  bool      // whether the ray hit the front face
	MaterialID int       // index into the scene's material array
}

// SetFaceNormal sets the normal vector and determines front/back face
func (i *Intersection) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	i.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if i.FrontFace {
		i.Normal = outwardNormal
	} else {
		i.Normal = outwardNormal.Multiply(-1)
	}
}

// Primitive is a piece of scene geometry that rays can intersect.
// Primitives are read-only for the duration of a render pass and may be
// intersected concurrently from any number of lanes.
type Primitive interface {
	// Hit tests if a ray intersects the primitive within (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool)

	// Position returns the primitive's reference position, used as the
	// target point when the primitive is sampled as a light
	Position() core.Vec3

	// MaterialIndex returns the index of the primitive's material
	MaterialIndex() int
}
