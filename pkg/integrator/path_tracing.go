package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance for every traced ray.
// It keeps scattered rays from re-hitting the surface they left.
const ShadowAcneEpsilon = 1e-4

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Top    core.Color // Color straight up
	Bottom core.Color // Color straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewColor(0.5, 0.7, 1.0),
		Bottom: core.White,
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(direction core.Vec3) core.Color {
	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// bounce budget and no light sampling
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{background: background}
}

// Background returns the sky gradient used for escaping rays
func (pt *PathTracingIntegrator) Background() Background {
	return pt.background
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.background.Color(ray.Direction)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Black // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyColor(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
