package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the light arriving along ray, following at most
	// depth bounces through world
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color
}
