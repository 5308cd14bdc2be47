package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

// Vec3 converts to a core vector
func (v Vec3Cfg) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// vec3Ptr converts an optional vector; nil stays nil
func (v *Vec3Cfg) vec3Ptr() *core.Vec3 {
	if v == nil {
		return nil
	}
	vec := v.Vec3()
	return &vec
}

// FileCfg is the top level of a JSON scene file
type FileCfg struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Integrator  string                 `json:"integrator,omitempty"` // path or normals; empty is path
	Camera      *CameraCfg             `json:"camera,omitempty"`
	Sampling    *SamplingCfg           `json:"sampling,omitempty"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Spheres     []SphereCfg            `json:"spheres"`
}

// CameraCfg overrides the default camera. Omitted fields keep their defaults.
type CameraCfg struct {
	Center        *Vec3Cfg `json:"center,omitempty"`
	LookAt        *Vec3Cfg `json:"lookAt,omitempty"`
	Up            *Vec3Cfg `json:"up,omitempty"`
	AspectRatio   *float64 `json:"aspectRatio,omitempty"`
	VFov          *float64 `json:"vfov,omitempty"`
	Aperture      *float64 `json:"aperture,omitempty"`
	FocusDistance *float64 `json:"focusDistance,omitempty"`
}

// SamplingCfg overrides the default sampling settings
type SamplingCfg struct {
	Width           int `json:"width,omitempty"`
	Height          int `json:"height,omitempty"`
	SamplesPerPixel int `json:"samplesPerPixel,omitempty"`
	MaxDepth        int `json:"maxDepth,omitempty"`
}

// MaterialCfg describes one named material. Mix and layered materials refer
// to other materials of the same file by name.
type MaterialCfg struct {
	Type    string  `json:"type"` // lambertian, metal, dielectric, mix, layered
	Albedo  Vec3Cfg `json:"albedo,omitempty"`
	Fuzz    float64 `json:"fuzz,omitempty"`
	IOR     float64 `json:"ior,omitempty"`
	Fresnel bool    `json:"fresnel,omitempty"`
	A       string  `json:"a,omitempty"`     // mix: chosen with probability 1-ratio
	B       string  `json:"b,omitempty"`     // mix: chosen with probability ratio
	Ratio   float64 `json:"ratio,omitempty"` // mix
	Outer   string  `json:"outer,omitempty"` // layered: coating
	Inner   string  `json:"inner,omitempty"` // layered: base
}

// SphereCfg places a sphere with a named material
type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// Build creates the material, looking up referenced materials with resolve.
// Metal fuzz is clamped to [0,1] rather than rejected.
func (mc MaterialCfg) Build(resolve func(name string) (material.Material, error)) (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		return material.NewLambertian(mc.Albedo.Vec3()), nil
	case "metal":
		return material.NewMetal(mc.Albedo.Vec3(), mc.Fuzz), nil
	case "dielectric":
		if mc.IOR <= 0 {
			return nil, fmt.Errorf("refractive index must be > 0, got %v", mc.IOR)
		}
		if mc.Fresnel {
			return material.NewGlass(mc.IOR), nil
		}
		return material.NewDielectric(mc.IOR), nil
	case "mix":
		a, err := resolve(mc.A)
		if err != nil {
			return nil, err
		}
		b, err := resolve(mc.B)
		if err != nil {
			return nil, err
		}
		return material.NewMix(a, b, mc.Ratio), nil
	case "layered":
		outer, err := resolve(mc.Outer)
		if err != nil {
			return nil, err
		}
		inner, err := resolve(mc.Inner)
		if err != nil {
			return nil, err
		}
		return material.NewLayered(outer, inner), nil
	case "":
		return nil, fmt.Errorf("material type is required")
	default:
		return nil, fmt.Errorf("unknown material type %q", mc.Type)
	}
}

// Build applies the overrides to the default camera and validates the result
func (cc *CameraCfg) Build() (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()
	if cc == nil {
		return config, nil
	}
	config = renderer.MergeCameraConfig(config, renderer.CameraOverride{
		Center:        cc.Center.vec3Ptr(),
		LookAt:        cc.LookAt.vec3Ptr(),
		Up:            cc.Up.vec3Ptr(),
		AspectRatio:   cc.AspectRatio,
		VFov:          cc.VFov,
		Aperture:      cc.Aperture,
		FocusDistance: cc.FocusDistance,
	})
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("camera: %w", err)
	}
	return config, nil
}

// Build applies the overrides to the default sampling settings. Without an
// explicit height, Builder derives it from the camera aspect ratio.
func (sc *SamplingCfg) Build() renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Height = 0
	if sc == nil {
		return config
	}
	if sc.Width > 0 {
		config.Width = sc.Width
	}
	config.Height = sc.Height
	if sc.SamplesPerPixel > 0 {
		config.SamplesPerPixel = sc.SamplesPerPixel
	}
	if sc.MaxDepth > 0 {
		config.MaxDepth = sc.MaxDepth
	}
	return config
}

// Build validates the file and assembles the scene
func (fc FileCfg) Build() (*Scene, error) {
	materials := make(map[string]material.Material, len(fc.Materials))
	building := make(map[string]bool)

	var resolve func(name string) (material.Material, error)
	resolve = func(name string) (material.Material, error) {
		if mat, ok := materials[name]; ok {
			return mat, nil
		}
		mc, ok := fc.Materials[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		if building[name] {
			return nil, fmt.Errorf("material %q refers to itself", name)
		}
		building[name] = true
		defer delete(building, name)

		mat, err := mc.Build(resolve)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
		return mat, nil
	}

	// Sorted so the first reported error does not depend on map order
	names := make([]string, 0, len(fc.Materials))
	for name := range fc.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := resolve(name); err != nil {
			return nil, err
		}
	}

	camera, err := fc.Camera.Build()
	if err != nil {
		return nil, err
	}

	b := NewBuilder().
		Camera(camera).
		Sampling(fc.Sampling.Build())

	if fc.Integrator != "" {
		integ, err := integrator.New(fc.Integrator)
		if err != nil {
			return nil, err
		}
		b.Integrator(integ)
	}

	for i, sc := range fc.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sc.Material)
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0, got %v", i, sc.Radius)
		}
		b.AddSphere(sc.Center.Vec3(), sc.Radius, mat)
	}

	return b.Build(), nil
}

// Parse decodes a JSON scene description. Unknown fields are rejected.
func Parse(r io.Reader) (*Scene, error) {
	var cfg FileCfg
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return cfg.Build()
}

// LoadFile reads and parses a JSON scene file
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
