package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

// Scatter draws one sample to pick a material, then lets it scatter
func (m *Mix) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, sampler)
}
