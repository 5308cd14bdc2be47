package integrator

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// PathTracingIntegrator gathers sky light by recursively following scattered rays
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := nearestHit(ray, world)
	if !isHit {
		return SkyColor(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
