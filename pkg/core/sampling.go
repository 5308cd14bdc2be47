package core

import (
	"math/rand"
)

// Vec2 represents a 2D sample or coordinate
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each goroutine its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own source seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// FixedSampler returns the same value for every draw
type FixedSampler struct {
	Value float64
}

// NewFixedSampler creates a sampler that always yields value
func NewFixedSampler(value float64) *FixedSampler {
	return &FixedSampler{Value: value}
}

// Get1D returns the fixed value
func (f *FixedSampler) Get1D() float64 {
	return f.Value
}

// Get2D returns the fixed value in both components
func (f *FixedSampler) Get2D() Vec2 {
	return NewVec2(f.Value, f.Value)
}

// SequenceSampler replays a list of values in order, wrapping at the end
type SequenceSampler struct {
	values []float64
	next   int
}

// NewSequenceSampler creates a sampler that cycles through values
func NewSequenceSampler(values ...float64) *SequenceSampler {
	return &SequenceSampler{values: values}
}

// Get1D returns the next value in the sequence
func (s *SequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Get2D returns the next two values in the sequence
func (s *SequenceSampler) Get2D() Vec2 {
	return NewVec2(s.Get1D(), s.Get1D())
}

// maxRejections bounds the rejection loops so that samplers which repeat
// themselves, like FixedSampler, still terminate
const maxRejections = 64

// RandomInUnitSphere draws a point strictly inside the unit sphere by rejection.
// After maxRejections misses the last candidate is pulled inside the sphere.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	var p Vec3
	for i := 0; i < maxRejections; i++ {
		// Generate random point in [-1,1]³ cube
		p = NewVec3(
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
		)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
	return pullInside(p)
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	var p Vec3
	for i := 0; i < maxRejections; i++ {
		// Generate random point in [-1,1] x [-1,1] square
		p = NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
	return pullInside(p)
}

// pullInside scales p to length |p|/(1+|p|), which is always below one
func pullInside(p Vec3) Vec3 {
	return p.Divide(1 + p.Length())
}
