package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass.
// With Fresnel unset it always refracts; with Fresnel set it also reflects
// past the critical angle and with Schlick probability otherwise.
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
	Fresnel         bool
}

// NewDielectric creates a dielectric that always refracts
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// NewGlass creates a dielectric with total internal reflection and Fresnel reflectance
func NewGlass(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Fresnel: true}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewColor(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	var direction core.Vec3
	if d.Fresnel && d.shouldReflect(unitDirection, hit.Normal, refractionRatio, sampler) {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// shouldReflect picks reflection on total internal reflection or by Schlick probability
func (d *Dielectric) shouldReflect(unitDirection, normal core.Vec3, refractionRatio float64, sampler core.Sampler) bool {
	cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	if refractionRatio*sinTheta > 1.0 {
		return true
	}
	return Reflectance(cosTheta, refractionRatio) > sampler.Get1D()
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
