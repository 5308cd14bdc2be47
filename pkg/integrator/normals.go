package integrator

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// NormalIntegrator shades each hit by its surface normal mapped into [0,1]³.
// Materials are ignored, which makes it useful for checking geometry and camera setup.
type NormalIntegrator struct{}

// NewNormalIntegrator creates a new normal visualization integrator
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{}
}

// RayColor returns 0.5*(n+1) for hits and the sky for misses
func (ni *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := nearestHit(ray, world)
	if !isHit {
		return SkyColor(ray)
	}

	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
