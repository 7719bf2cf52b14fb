package geometry

import (
	"math"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

// Box represents an axis-aligned box defined by a center and half-extents
type Box struct {
	Center   core.Vec3
	Size     core.Vec3 // half-extents along each axis
	Material int
}

// NewBox creates a new axis-aligned box.
// Size represents half-extents (so a size of (1,1,1) creates a 2x2x2 box).
func NewBox(center, size core.Vec3, material int) *Box {
	return &Box{Center: center, Size: size, Material: material}
}

// Hit tests if a ray intersects with the box using the slab method
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	boundsMin := b.Center.Subtract(b.Size)
	boundsMax := b.Center.Add(b.Size)

	tNear := tMin
	tFar := tMax
	// Axis of the slab that produced the entry point, 0=X 1=Y 2=Z
	hitAxis := -1

	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float64{boundsMin.X, boundsMin.Y, boundsMin.Z}
	maxs := [3]float64{boundsMax.X, boundsMax.Y, boundsMax.Z}

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / dirs[axis]
		t0 := (mins[axis] - origins[axis]) * invD
		t1 := (maxs[axis] - origins[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
			hitAxis = axis
		}
		if t1 < tFar {
			tFar = t1
		}
		if tFar < tNear {
			return nil, false
		}
	}

	// Ray starts inside the box: use the exit point and its slab
	t := tNear
	if hitAxis == -1 {
		t = tFar
		if t < tMin || t > tMax {
			return nil, false
		}
		hitAxis = exitAxis(origins, dirs, mins, maxs, t)
	}

	isect := &Intersection{
		T:          t,
		Point:      ray.At(t),
		MaterialID: b.Material,
	}
	isect.SetFaceNormal(ray, b.faceNormal(isect.Point, hitAxis))

	return isect, true
}

// faceNormal returns the outward normal of the face containing point on the
// given axis
func (b *Box) faceNormal(point core.Vec3, axis int) core.Vec3 {
	var normal core.Vec3
	switch axis {
	case 0:
		normal = core.NewVec3(math.Copysign(1, point.X-b.Center.X), 0, 0)
	case 1:
		normal = core.NewVec3(0, math.Copysign(1, point.Y-b.Center.Y), 0)
	default:
		normal = core.NewVec3(0, 0, math.Copysign(1, point.Z-b.Center.Z))
	}
	return normal
}

// exitAxis finds which slab the ray exits through at parameter t
func exitAxis(origins, dirs, mins, maxs [3]float64, t float64) int {
	best := 0
	bestDist := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		p := origins[axis] + t*dirs[axis]
		if d := math.Abs(p - mins[axis]); d < bestDist {
			bestDist = d
			best = axis
		}
		if d := math.Abs(p - maxs[axis]); d < bestDist {
			bestDist = d
			best = axis
		}
	}
	return best
}

// Position returns the box center
func (b *Box) Position() core.Vec3 {
	return b.Center
}

// MaterialIndex returns the index of the box's material
func (b *Box) MaterialIndex() int {
	return b.Material
}
