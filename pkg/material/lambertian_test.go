package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewColor(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:     core.NewVec3(1, 2, 3),
		Normal:    normal,
		FrontFace: true,
		Material:  lambertian,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}

		// normal + unit vector never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Errorf("Scattered direction %v is below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.8, 0.8, 0.8))

	// Draws map to (0, 0, -0.5), whose unit vector exactly cancels the normal
	sampler := core.NewSequenceSampler(0.5, 0.5, 0.25)

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if !scatter.Scattered.Direction.Equals(normal) {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_CosineDistribution(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(1, 1, 1))
	sampler := core.NewSeededSampler(11)

	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// normal + random unit vector is cosine distributed, E[cosθ] = 2/3
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		sum += scatter.Scattered.Direction.Normalize().Dot(normal)
	}
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.02 {
		t.Errorf("Expected mean cosine near 0.667, got %f", mean)
	}
}
