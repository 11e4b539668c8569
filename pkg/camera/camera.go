// Package camera implements the pinhole + focus-distance camera model:
// given look_from/look_at/vup/vfov/aspect/focus_dist, it derives the
// viewport basis once and answers get_ray(s, t) for s, t in [0,1].
package camera

import (
	"fmt"
	"math"

	"github.com/df07/pathtracer/pkg/core"
)

// Camera generates primary rays for a fixed viewport, derived once at
// construction from the look_from/look_at/vup/vfov/aspect/focus_dist
// parameters.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// New builds a Camera. vfovDegrees must be in (0, 180), aspect and
// focusDist must be positive; otherwise an error is returned, since a
// degenerate camera would silently produce garbage rays throughout the
// render rather than failing once at setup.
func New(lookFrom, lookAt, vup core.Vec3, vfovDegrees, aspect, focusDist float64) (*Camera, error) {
	if vfovDegrees <= 0 || vfovDegrees >= 180 {
		return nil, fmt.Errorf("camera: vfov must be in (0, 180) degrees, got %f", vfovDegrees)
	}
	if aspect <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be positive, got %f", aspect)
	}
	if focusDist <= 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive, got %f", focusDist)
	}

	theta := vfovDegrees * math.Pi / 180.0
	h := math.Tan(theta / 2.0)

	height := 2.0 * h
	width := aspect * height

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDist * width)
	vertical := v.Multiply(focusDist * height)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}, nil
}

// GetRay returns the primary ray for normalized viewport coordinates
// (s, t), each typically in [0, 1].
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
