package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// HittableList is an ordered collection of hittables that reports the nearest hit
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, obj := range objects {
		list.Add(obj)
	}
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(obj Hittable) {
	l.objects = append(l.objects, obj)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns a copy of the member slice
func (l *HittableList) Objects() []Hittable {
	out := make([]Hittable, len(l.objects))
	copy(out, l.objects)
	return out
}

// Hit checks every member and keeps the closest intersection
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, obj := range l.objects {
		if hit, isHit := obj.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
