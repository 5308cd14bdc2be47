package renderer

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Raytracer renders a world through a camera with a given integrator.
// It holds no mutable state, so one Raytracer may render rows concurrently
// as long as each goroutine uses its own Sampler.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	if integ == nil {
		integ = integrator.NewPathTracingIntegrator()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Integrator returns the integrator rays are shaded with
func (rt *Raytracer) Integrator() integrator.Integrator {
	return rt.integrator
}

// RenderPixel accumulates SamplesPerPixel radiance estimates for the pixel at
// column i and scanline j, where scanline 0 is the bottom of the image.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Color {
	colorAccum := core.Color{}
	du := span(rt.config.Width)
	dv := span(rt.config.Height)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(i) + sampler.Get1D()) / du
		t := (float64(j) + sampler.Get1D()) / dv

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
	}

	return colorAccum
}

// RenderRow renders output row y, where row 0 is the top of the image
func (rt *Raytracer) RenderRow(y int, sampler core.Sampler) []RGB {
	row := make([]RGB, rt.config.Width)
	j := rt.config.Height - 1 - y

	for i := range row {
		row[i] = MapColor(rt.RenderPixel(i, j, sampler), rt.config.SamplesPerPixel)
	}
	return row
}

// span is the divisor that maps the last pixel index to 1
func span(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n - 1)
}
