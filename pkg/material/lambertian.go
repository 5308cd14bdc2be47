package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// A diffuse surface never absorbs.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
