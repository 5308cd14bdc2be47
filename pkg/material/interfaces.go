package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter decides how an incoming ray continues after hitting the surface.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Color // Color attenuation applied to light carried back along Scattered
	Scattered   core.Ray   // The scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always opposing the incident ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
	Material  Material    // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
