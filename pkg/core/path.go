package core

// PathSegment is the mutable record of one in-flight ray. It is created by
// the renderer from a camera ray, mutated in place once per bounce by the
// shading core, and retired by the renderer when the bounce budget reaches
// zero or the ray leaves the scene. Each segment is owned by exactly one
// lane at a time, so no synchronization is needed.
type PathSegment struct {
	Ray              Ray
	Throughput       Vec3 // multiplicative transport weight, starts at (1,1,1)
	Color            Vec3 // contribution produced by the most recent bounce
	RemainingBounces int
	PixelIndex       int
}

// NewPathSegment spawns a fresh path from a camera ray
func NewPathSegment(ray Ray, pixelIndex, maxBounces int) PathSegment {
	return PathSegment{
		Ray:              ray,
		Throughput:       NewVec3(1, 1, 1),
		Color:            NewVec3(0, 0, 0),
		RemainingBounces: maxBounces,
		PixelIndex:       pixelIndex,
	}
}

// Alive reports whether the segment still has bounce budget left
func (p *PathSegment) Alive() bool {
	return p.RemainingBounces > 0
}

// CompactSegments partitions segments in place so that the segments for
// which keep returns true occupy the front of the slice, and returns that
// active prefix. Relative order of the surviving segments is preserved so
// that bounce k+1 of a path always observes the state written by bounce k.
func CompactSegments(segments []PathSegment, keep func(*PathSegment) bool) []PathSegment {
	n := 0
	for i := range segments {
		if keep(&segments[i]) {
			if n != i {
				segments[n] = segments[i]
			}
			n++
		}
	}
	return segments[:n]
}
