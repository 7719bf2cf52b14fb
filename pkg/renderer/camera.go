package renderer

import (
	"math"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
)

// Camera generates primary rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from the scene's camera configuration and the
// output aspect ratio (width / height)
func NewCamera(cfg scene.CameraConfig, aspectRatio float64) *Camera {
	theta := cfg.VerticalFOV * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := cfg.Position.Subtract(cfg.LookAt).Normalize()
	u := core.NewVec3(0, 1, 0).Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.Position
	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}
