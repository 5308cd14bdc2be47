package scene

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// builtin describes a scene compiled into the binary
type builtin struct {
	description string
	create      func(seed int64) *Scene
}

var builtins = map[string]builtin{
	"default": {
		description: "Blue and red diffuse spheres touching at the view axis",
		create:      func(int64) *Scene { return NewDefaultScene() },
	},
	"materials": {
		description: "Diffuse, glass and metal spheres on a large ground sphere",
		create:      func(int64) *Scene { return NewMaterialsScene() },
	},
	"normals": {
		description: "Single sphere for surface normal visualization",
		create:      func(int64) *Scene { return NewNormalsScene() },
	},
	"random": {
		description: "Field of small random spheres around three large ones",
		create:      NewRandomScene,
	},
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named built-in scene. The seed only affects
// procedurally placed scenes.
func Create(name string, seed int64) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return b.create(seed), nil
}

// NewDefaultScene creates two touching diffuse spheres seen through a 90° camera
func NewDefaultScene() *Scene {
	r := math.Cos(math.Pi / 4)
	left := material.NewLambertian(core.NewColor(0, 0, 1))
	right := material.NewLambertian(core.NewColor(1, 0, 0))

	return NewBuilder().
		AddSphere(core.NewVec3(-r, 0, -1), r, left).
		AddSphere(core.NewVec3(r, 0, -1), r, right).
		Build()
}

// NewMaterialsScene creates the three-material showcase: glass left, diffuse center, metal right
func NewMaterialsScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	left := material.NewGlass(1.5)
	right := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	return NewBuilder().
		AddSphere(core.NewVec3(0, -100.5, -1), 100, ground).
		AddSphere(core.NewVec3(0, 0, -1), 0.5, center).
		AddSphere(core.NewVec3(-1, 0, -1), 0.5, left).
		AddSphere(core.NewVec3(1, 0, -1), 0.5, right).
		Camera(renderer.CameraConfig{
			Center:      core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
		}).
		Build()
}

// NewNormalsScene creates one sphere in front of the default camera, shaded
// by its surface normals unless another integrator is requested
func NewNormalsScene() *Scene {
	return NewBuilder().
		AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))).
		Integrator(integrator.NewNormalIntegrator()).
		Sampling(renderer.SamplingConfig{
			Width:           400,
			SamplesPerPixel: 1,
			MaxDepth:        1,
		}).
		Build()
}

// NewRandomScene creates the classic final scene: a grid of small spheres with
// random materials, three large feature spheres and a defocused camera
func NewRandomScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))
	b := NewBuilder()

	b.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))

	randomColor := func(lo, hi float64) core.Color {
		return core.NewColor(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for c := -11; c < 11; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())

			// Keep the area around the large metal sphere free
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomColor(0, 1).MultiplyVec(randomColor(0, 1)))
			case chooseMat < 0.95:
				mat = material.NewMetal(randomColor(0.5, 1), 0.5*random.Float64())
			default:
				mat = material.NewGlass(1.5)
			}
			b.AddSphere(center, 0.2, mat)
		}
	}

	b.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewGlass(1.5))
	b.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))
	b.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0))

	return b.
		Camera(renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			AspectRatio:   3.0 / 2.0,
			VFov:          20,
			Aperture:      0.1,
			FocusDistance: 10.0,
		}).
		Sampling(renderer.SamplingConfig{
			Width:           1200,
			SamplesPerPixel: 500,
			MaxDepth:        50,
		}).
		Build()
}
