package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is not modified
// after Build, so any number of renders may share it.
type Scene struct {
	World          *geometry.HittableList
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Integrator     integrator.Integrator // Preferred integrator; nil means path tracing
}

// Raytracer binds the scene to an integrator. A nil integ falls back to the
// scene's own integrator, then to path tracing.
func (s *Scene) Raytracer(integ integrator.Integrator) *renderer.Raytracer {
	if integ == nil {
		integ = s.Integrator
	}
	return renderer.NewRaytracer(s.World, s.Camera, integ, s.SamplingConfig)
}

// WithSampling returns a copy of the scene with the non-zero fields of
// override applied. Changing only the width keeps the camera's aspect ratio.
func (s *Scene) WithSampling(override renderer.SamplingConfig) *Scene {
	cfg := s.SamplingConfig
	if override.Width > 0 {
		cfg.Width = override.Width
		cfg.Height = heightForAspect(cfg.Width, s.CameraConfig.AspectRatio)
	}
	if override.Height > 0 {
		cfg.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		cfg.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		cfg.MaxDepth = override.MaxDepth
	}

	copied := *s
	copied.SamplingConfig = cfg
	return &copied
}

// Builder collects spheres and settings for a Scene
type Builder struct {
	objects        []geometry.Hittable
	cameraConfig   renderer.CameraConfig
	samplingConfig renderer.SamplingConfig
	integrator     integrator.Integrator
}

// NewBuilder starts from the default camera and sampling settings
func NewBuilder() *Builder {
	return &Builder{
		cameraConfig:   renderer.DefaultCameraConfig(),
		samplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// AddSphere adds a sphere to the scene
func (b *Builder) AddSphere(center core.Point3, radius float64, mat material.Material) *Builder {
	b.objects = append(b.objects, geometry.NewSphere(center, radius, mat))
	return b
}

// Add adds any hittable to the scene
func (b *Builder) Add(obj geometry.Hittable) *Builder {
	b.objects = append(b.objects, obj)
	return b
}

// Camera replaces the camera configuration
func (b *Builder) Camera(config renderer.CameraConfig) *Builder {
	b.cameraConfig = config
	return b
}

// Integrator sets the integrator the scene is meant to be rendered with
func (b *Builder) Integrator(integ integrator.Integrator) *Builder {
	b.integrator = integ
	return b
}

// Sampling replaces the sampling configuration. A zero height is derived
// from the width and the camera's aspect ratio at Build time.
func (b *Builder) Sampling(config renderer.SamplingConfig) *Builder {
	b.samplingConfig = config
	return b
}

// Build creates the immutable scene. Later builder calls do not affect it.
func (b *Builder) Build() *Scene {
	cameraConfig := b.cameraConfig
	if cameraConfig.AspectRatio <= 0 {
		cameraConfig.AspectRatio = renderer.DefaultCameraConfig().AspectRatio
	}

	samplingConfig := b.samplingConfig
	if samplingConfig.Height <= 0 {
		samplingConfig.Height = heightForAspect(samplingConfig.Width, cameraConfig.AspectRatio)
	}

	return &Scene{
		World:          geometry.NewHittableList(b.objects...),
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		Integrator:     b.integrator,
	}
}

// heightForAspect truncates width/aspect, never going below one row
func heightForAspect(width int, aspectRatio float64) int {
	if aspectRatio <= 0 {
		return max(1, width)
	}
	return max(1, int(float64(width)/aspectRatio))
}
