package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrDegenerateCamera is returned when camera parameters cannot form a view
var ErrDegenerateCamera = errors.New("degenerate camera")

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera faces
	Up            core.Vec3 // Approximate up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 for a pinhole
	FocusDistance float64   // Distance to the plane in focus; 0 uses |LookAt-Center|
}

// Camera generates primary rays. It is immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera builds a camera from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("%w: aspect ratio %v must be positive", ErrDegenerateCamera, config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical fov %v must be in (0, 180)", ErrDegenerateCamera, config.VFov)
	}

	back := config.Center.Subtract(config.LookAt)
	if back.NearZero() {
		return nil, fmt.Errorf("%w: center and look-at coincide", ErrDegenerateCamera)
	}
	w := back.Normalize()

	right := config.Up.Cross(w)
	if right.NearZero() {
		return nil, fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrDegenerateCamera, config.Up)
	}
	u := right.Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = back.Length()
	}

	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the lower-left corner of the view.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	return core.NewRay(origin, target.Subtract(origin))
}
