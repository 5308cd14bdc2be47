package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// Layered represents a material with two layers - an outer and inner material.
// Light hits the outer layer first, then if it scatters inward, hits the inner layer.
// A glass outer over a diffuse inner gives a clear-coated look.
type Layered struct {
	Outer Material // Coating
	Inner Material // Base
}

// NewLayered creates a new layered material
func NewLayered(outer, inner Material) *Layered {
	return &Layered{
		Outer: outer,
		Inner: inner,
	}
}

// Scatter implements the Material interface for layered scattering
func (l *Layered) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	outerHit := hit
	outerHit.Material = l.Outer

	outerResult, outerScatters := l.Outer.Scatter(rayIn, outerHit, sampler)
	if !outerScatters {
		return ScatterResult{}, false
	}

	// A ray leaving on the incident side never reaches the inner layer
	scatteredDirection := outerResult.Scattered.Direction.Normalize()
	if scatteredDirection.Dot(hit.Normal) >= 0 {
		return outerResult, true
	}

	innerHit := hit
	innerHit.Material = l.Inner
	innerRay := core.NewRay(hit.Point, scatteredDirection)

	innerResult, innerScatters := l.Inner.Scatter(innerRay, innerHit, sampler)
	if !innerScatters {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Attenuation: outerResult.Attenuation.MultiplyVec(innerResult.Attenuation),
		Scattered:   innerResult.Scattered,
	}, true
}
