package integrator

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// ShadowAcneEpsilon is the minimum hit distance for traced rays.
// It keeps bounced rays from re-hitting the surface they start on.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray, allowing at most depth bounces
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color
}

var (
	skyBottom = core.NewColor(1.0, 1.0, 1.0) // white at the horizon below
	skyTop    = core.NewColor(0.5, 0.7, 1.0) // blue overhead
)

// SkyColor returns the analytic background for a ray that escapes the scene
func SkyColor(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Lerp(skyTop, t)
}

// nearestHit queries the world over [ShadowAcneEpsilon, +Inf)
func nearestHit(ray core.Ray, world geometry.Hittable) (*material.HitRecord, bool) {
	return world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
}

// Names lists the integrators New accepts
var Names = []string{"path", "normals"}

// New returns the integrator registered under name
func New(name string) (Integrator, error) {
	switch name {
	case "path":
		return NewPathTracingIntegrator(), nil
	case "normals":
		return NewNormalIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q (want one of %v)", name, Names)
	}
}
