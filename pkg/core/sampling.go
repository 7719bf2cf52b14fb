package core

import "math"

// sqrtOneThird is the threshold for picking an axis that is guaranteed not
// to be parallel to the normal: a unit vector cannot have all three
// component magnitudes >= sqrt(1/3).
var sqrtOneThird = math.Sqrt(1.0 / 3.0)

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around normal. The density is cos(theta)/pi, which cancels the
// cosine term of the transport integral when used as the proposal
// distribution for diffuse bounces.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	cosTheta := math.Sqrt(sample.X)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	phi := 2.0 * math.Pi * sample.Y

	// Pick a world axis not parallel to the normal
	var axis Vec3
	if math.Abs(normal.X) < sqrtOneThird {
		axis = NewVec3(1, 0, 0)
	} else if math.Abs(normal.Y) < sqrtOneThird {
		axis = NewVec3(0, 1, 0)
	} else {
		axis = NewVec3(0, 0, 1)
	}

	// Orthonormal basis {normal, t1, t2}
	t1 := normal.Cross(axis).Normalize()
	t2 := normal.Cross(t1).Normalize()

	return normal.Multiply(cosTheta).
		Add(t1.Multiply(math.Cos(phi) * sinTheta)).
		Add(t2.Multiply(math.Sin(phi) * sinTheta))
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
