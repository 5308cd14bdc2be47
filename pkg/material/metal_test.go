package material

import (
	"math/rand"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewColor(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewColor(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// Incident (0, -1, -1) normalized reflects to (0, -0.707, 0.707)
	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction

	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
	if !scatter.Scattered.Origin.Equals(hit.Point) {
		t.Errorf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_AbsorbsExactlyWhenPerturbedIntoSurface(t *testing.T) {
	metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), 1.0)
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	tests := []struct {
		name      string
		direction core.Vec3
		draws     []float64 // maps to the perturbation point in the unit sphere
	}{
		{"head-on with downward perturbation", core.NewVec3(0, 0, -1), []float64{0.5, 0.5, 0.05}},
		{"grazing with downward perturbation", core.NewVec3(1, 0, -0.1), []float64{0.5, 0.5, 0.05}},
		{"grazing with upward perturbation", core.NewVec3(1, 0, -0.1), []float64{0.5, 0.5, 0.95}},
		{"grazing with sideways perturbation", core.NewVec3(1, 0, -0.1), []float64{0.1, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(core.NewVec3(0, 0, 1), tt.direction)

			// Expected outcome computed from the same perturbation
			p := core.RandomInUnitSphere(core.NewSequenceSampler(tt.draws...))
			perturbed := core.Reflect(tt.direction.Normalize(), normal).Add(p.Multiply(metal.Fuzz))
			expectScatter := perturbed.Dot(normal) > 0

			_, didScatter := metal.Scatter(rayIn, hit, core.NewSequenceSampler(tt.draws...))
			if didScatter != expectScatter {
				t.Errorf("Expected scatter=%t for perturbed direction %v, got %t", expectScatter, perturbed, didScatter)
			}
		})
	}

	// The grazing downward case must be absorbed
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, -0.1))
	if _, didScatter := metal.Scatter(rayIn, hit, core.NewSequenceSampler(0.5, 0.5, 0.05)); didScatter {
		t.Error("Grazing reflection pushed into the surface should be absorbed")
	}
}
