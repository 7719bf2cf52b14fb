package geometry

import (
	"math"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material int) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	isect := &Intersection{
		T:          root,
		Point:      ray.At(root),
		MaterialID: s.Material,
	}
	outwardNormal := isect.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	isect.SetFaceNormal(ray, outwardNormal)

	return isect, true
}

// Position returns the sphere center
func (s *Sphere) Position() core.Vec3 {
	return s.Center
}

// MaterialIndex returns the index of the sphere's material
func (s *Sphere) MaterialIndex() int {
	return s.Material
}
