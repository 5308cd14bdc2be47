package scene

import (
	"math"
	"reflect"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
)

func TestNames(t *testing.T) {
	expected := []string{"default", "materials", "normals", "random"}
	if got := Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Names() = %v, want %v", got, expected)
	}
}

func TestCreate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, 1)
			if err != nil {
				t.Fatalf("Create(%q) error: %v", name, err)
			}
			if s.World.Len() == 0 {
				t.Error("Expected at least one object")
			}
			if s.SamplingConfig.Width <= 0 || s.SamplingConfig.Height <= 0 {
				t.Errorf("Expected positive image size, got %+v", s.SamplingConfig)
			}
		})
	}
}

func TestCreate_SceneIntegrators(t *testing.T) {
	for _, name := range Names() {
		s, err := Create(name, 1)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", name, err)
		}
		_, normals := s.Integrator.(*integrator.NormalIntegrator)
		if name == "normals" && !normals {
			t.Errorf("Expected normals scene to select the normal integrator, got %T", s.Integrator)
		}
		if name != "normals" && s.Integrator != nil {
			t.Errorf("Expected %s scene to leave the integrator unset, got %T", name, s.Integrator)
		}
	}
}

func TestCreate_Unknown(t *testing.T) {
	if _, err := Create("cornell-box", 1); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestDefaultScene_TouchingSpheres(t *testing.T) {
	s := NewDefaultScene()
	objects := s.World.Objects()
	if len(objects) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(objects))
	}

	left := objects[0].(*geometry.Sphere)
	right := objects[1].(*geometry.Sphere)
	r := math.Cos(math.Pi / 4)

	if math.Abs(left.Radius-r) > 1e-12 || math.Abs(right.Radius-r) > 1e-12 {
		t.Errorf("Expected radius cos(π/4), got %v and %v", left.Radius, right.Radius)
	}
	// The spheres meet exactly on the view axis
	gap := right.Center.Subtract(left.Center).Length() - left.Radius - right.Radius
	if math.Abs(gap) > 1e-12 {
		t.Errorf("Expected touching spheres, gap %v", gap)
	}
	if s.CameraConfig.VFov != 90 {
		t.Errorf("Expected 90° field of view, got %v", s.CameraConfig.VFov)
	}
}

func TestRandomScene_Seeded(t *testing.T) {
	a := NewRandomScene(7)
	b := NewRandomScene(7)
	c := NewRandomScene(8)

	centers := func(s *Scene) []core.Vec3 {
		var out []core.Vec3
		for _, obj := range s.World.Objects() {
			out = append(out, obj.(*geometry.Sphere).Center)
		}
		return out
	}

	if !reflect.DeepEqual(centers(a), centers(b)) {
		t.Error("Expected the same seed to place the same spheres")
	}
	if reflect.DeepEqual(centers(a), centers(c)) {
		t.Error("Expected different seeds to place different spheres")
	}
}

func TestRandomScene_ClearingAroundMetalSphere(t *testing.T) {
	s := NewRandomScene(3)
	clearing := core.NewVec3(4, 0.2, 0)

	for _, obj := range s.World.Objects() {
		sphere := obj.(*geometry.Sphere)
		if sphere.Radius != 0.2 {
			continue
		}
		if sphere.Center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("Small sphere at %v is inside the clearing", sphere.Center)
		}
		if sphere.Material == nil {
			t.Errorf("Sphere at %v has no material", sphere.Center)
		}
	}
}
