package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit reports the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
