package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// World is an ordered collection of hittables that reports the nearest hit
type World struct {
	objects []Hittable
}

// NewWorld creates a world holding the given objects
func NewWorld(objects ...Hittable) *World {
	w := &World{}
	w.Add(objects...)
	return w
}

// Add appends objects to the world
func (w *World) Add(objects ...Hittable) {
	w.objects = append(w.objects, objects...)
}

// Objects returns the objects in insertion order
func (w *World) Objects() []Hittable {
	return w.objects
}

// Len returns the number of objects in the world
func (w *World) Len() int {
	return len(w.objects)
}

// Clear removes every object
func (w *World) Clear() {
	w.objects = nil
}

// Hit returns the closest intersection among all objects in [tMin, tMax].
// Each hit shrinks the search range, so only a strictly closer object can
// replace it and equal-t ties keep the first object found.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range w.objects {
		hit, isHit := object.Hit(ray, tMin, closestSoFar)
		if !isHit || (closestHit != nil && hit.T >= closestSoFar) {
			continue
		}
		closestSoFar = hit.T
		closestHit = hit
	}

	return closestHit, closestHit != nil
}
