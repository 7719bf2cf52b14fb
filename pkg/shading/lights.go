package shading

import (
	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
)

// SelectLight picks one light index uniformly at random from lightCount
// lights using a single uniform sample. Each index is selected with
// probability 1/lightCount. lightCount must be positive; callers with no
// lights substitute an ambient-only estimate instead of calling this.
func SelectLight(lightCount int, u float64) int {
	index := int(u * float64(lightCount))
	// u is in [0,1) but guard the boundary against floating-point rounding
	if index >= lightCount {
		index = lightCount - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// DirectionToward returns the unit vector from a shading point toward a
// light's reference position
func DirectionToward(point, lightPos core.Vec3) core.Vec3 {
	return lightPos.Subtract(point).Normalize()
}

// SampleLightDirection selects a light uniformly from the scene's light view
// and returns the direction from point toward it. Returns false when the
// scene has no lights.
func SampleLightDirection(lights scene.LightView, point core.Vec3, u float64) (core.Vec3, bool) {
	if lights.Count() == 0 {
		return core.Vec3{}, false
	}
	index := SelectLight(lights.Count(), u)
	return DirectionToward(point, lights.Position(index)), true
}
