package renderer

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Point3 // Camera position (look-from)
	LookAt        core.Point3 // Point the camera is looking at
	Up            core.Vec3   // Up direction (usually (0,1,0))
	AspectRatio   float64     // Width / height
	VFov          float64     // Vertical field of view in degrees
	Aperture      float64     // Lens diameter; 0 is a pinhole
	FocusDistance float64     // Distance to the focal plane; 0 uses |LookAt - Center|
}

// DefaultCameraConfig looks down -z from the origin with a 90° vertical field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// withDefaults fills in unset fields. A look-at equal to the center means "look down -z".
func (c CameraConfig) withDefaults() CameraConfig {
	if c.LookAt == c.Center {
		c.LookAt = c.Center.Add(core.NewVec3(0, 0, -1))
	}
	if c.Up == (core.Vec3{}) {
		c.Up = core.NewVec3(0, 1, 0)
	}
	if c.AspectRatio <= 0 {
		c.AspectRatio = 16.0 / 9.0
	}
	if c.VFov <= 0 {
		c.VFov = 90.0
	}
	return c
}

// Validate reports camera settings that cannot produce an image. Unset
// fields are checked after defaults are applied.
func (c CameraConfig) Validate() error {
	c = c.withDefaults()
	if c.VFov >= 180 {
		return fmt.Errorf("vertical field of view must be below 180°, got %v", c.VFov)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("aperture must not be negative, got %v", c.Aperture)
	}
	if c.FocusDistance < 0 {
		return fmt.Errorf("focus distance must not be negative, got %v", c.FocusDistance)
	}

	// An up vector along the view direction leaves the horizontal axis undefined
	forward := c.LookAt.Subtract(c.Center).Normalize()
	if c.Up.Normalize().Cross(forward).LengthSquared() < 1e-12 {
		return fmt.Errorf("up vector %v is parallel to the view direction %v", c.Up, forward)
	}
	return nil
}

// CameraOverride lists the camera fields to replace. Nil fields keep the
// base value, so a zero vector such as a look-at at the origin can be set.
type CameraOverride struct {
	Center        *core.Point3
	LookAt        *core.Point3
	Up            *core.Vec3
	AspectRatio   *float64
	VFov          *float64
	Aperture      *float64
	FocusDistance *float64
}

// MergeCameraConfig applies the set fields of override to base
func MergeCameraConfig(base CameraConfig, override CameraOverride) CameraConfig {
	result := base
	if override.Center != nil {
		result.Center = *override.Center
	}
	if override.LookAt != nil {
		result.LookAt = *override.LookAt
	}
	if override.Up != nil {
		result.Up = *override.Up
	}
	if override.AspectRatio != nil {
		result.AspectRatio = *override.AspectRatio
	}
	if override.VFov != nil {
		result.VFov = *override.VFov
	}
	if override.Aperture != nil {
		result.Aperture = *override.Aperture
	}
	if override.FocusDistance != nil {
		result.FocusDistance = *override.FocusDistance
	}
	return result
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewDefaultCamera creates the axis-aligned pinhole camera: origin at zero,
// focal length 1, viewport height 2, looking down -z.
func NewDefaultCamera(aspectRatio float64) *Camera {
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		u:               core.NewVec3(1, 0, 0),
		v:               core.NewVec3(0, 1, 0),
		w:               core.NewVec3(0, 0, 1),
	}
}

// NewCamera creates a positioned camera from a field of view and look-from/look-at/up vectors
func NewCamera(config CameraConfig) *Camera {
	config = config.withDefaults()

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// Camera basis: w points backwards, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Without a lens the focal plane sits at unit distance, matching the default camera
	focusDistance := 1.0
	if config.Aperture > 0 {
		focusDistance = config.FocusDistance
		if focusDistance <= 0 {
			focusDistance = config.LookAt.Subtract(config.Center).Length()
		}
	}

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
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// The sampler is only drawn from when the camera has a lens.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
