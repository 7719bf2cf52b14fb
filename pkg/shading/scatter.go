// Package shading implements the stochastic scatter core of the path
// tracer: per bounce it chooses probabilistically between the specular and
// diffuse response of the hit material, updates the path's ray and
// throughput in place, and returns the color contribution of the bounce.
package shading

import (
	"math"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
)

// AmbientTerm is the constant added to the diffuse lighting estimate so that
// faces pointing away from the sampled light are not fully black. It is an
// approximation, not physically derived; the direct-lighting estimate here
// carries no solid-angle or attenuation weighting.
const AmbientTerm = 0.2

// Scatter executes one probabilistic bounce at an intersection.
//
// The specular branch is taken with probability mat.Reflective, the diffuse
// branch with the complementary probability, and each branch's contribution
// is divided by its selection probability so the Monte-Carlo estimator stays
// unbiased. The segment's ray, throughput, color and bounce budget are
// mutated in place; the returned color is the contribution of this bounce.
//
// Preconditions (enforced at scene load, not here): the normal is unit
// length, the incoming ray direction is unit length, and mat.Reflective is
// in [0,1]. Self-intersection avoidance is the caller's concern.
func Scatter(seg *core.PathSegment, isect geometry.Intersection, mat scene.Material, lightDir core.Vec3, sampler core.Sampler) core.Vec3 {
	normal := isect.Normal
	incoming := seg.Ray.Direction

	// The next bounce starts exactly at the surface
	seg.Ray.Origin = isect.Point

	var color core.Vec3
	if uBranch := sampler.Get1D(); uBranch <= mat.Reflective {
		// Specular bounce: mirror the incoming direction about the normal.
		// Reflection of a unit vector is unit length, so the stored
		// direction stays normalized.
		reflected := core.Reflect(incoming, normal)
		view := incoming.Negate()

		// Highlight term specular * p * max(dot(r,v),0)^exp, divided by the
		// branch probability p. The p factors cancel exactly, which also
		// keeps the term finite when uBranch == 0 and p == 0.
		highlight := math.Pow(math.Max(reflected.Dot(view), 0), mat.SpecularExponent)
		color = mat.SpecularColor.Multiply(highlight)

		seg.Ray.Direction = reflected
	} else {
		// Diffuse bounce. uBranch > mat.Reflective implies Reflective < 1
		// here, so the branch-probability correction below never divides
		// by zero.
		lux := math.Max(normal.Dot(lightDir), 0) + AmbientTerm
		color = mat.Color.Multiply(lux / (1 - mat.Reflective))

		// New direction from the cosine-weighted hemisphere; the cosine and
		// pi below match that proposal density, keeping the estimator
		// unbiased for the Lambertian term.
		newDir := core.SampleCosineHemisphere(normal, sampler.Get2D())
		seg.Throughput = seg.Throughput.
			MultiplyVec(mat.Color).
			Multiply(math.Abs(newDir.Dot(normal)) / math.Pi)
		seg.Ray.Direction = newDir
	}

	seg.RemainingBounces--
	seg.Color = color
	return color
}
