package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, sampler)
}

// MockHittable implements geometry.Hittable for testing
type MockHittable struct {
	hitFn func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

func (m *MockHittable) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

// floor is hit by every downward ray at the origin, with an upward normal
func floor(mat material.Material) *MockHittable {
	return &MockHittable{
		hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
			if ray.Direction.Y >= 0 {
				return nil, false
			}
			return &material.HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    core.NewVec3(0, 1, 0),
				T:         1.0,
				FrontFace: true,
				Material:  mat,
			}, true
		},
	}
}

func colorNear(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance && math.Abs(a.G-b.G) <= tolerance && math.Abs(a.B-b.B) <= tolerance
}

func TestPathTracingDepthTermination(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.7, 0.3, 0.3)))
	world := geometry.NewWorld(sphere)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	integrator := NewPathTracingIntegrator(DefaultBackground())

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
	}

	for _, ray := range rays {
		for _, depth := range []int{0, -1} {
			if color := integrator.RayColor(ray, world, sampler, depth); color != core.Black {
				t.Errorf("Expected black for depth %d, got %v", depth, color)
			}
		}
	}

	// With bounces left the sphere reflects some sky
	color := integrator.RayColor(rays[0], world, sampler, 3)
	if color == core.Black {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultBackground())
	world := geometry.NewWorld()
	sampler := core.NewSeededSampler(1)
	sky := core.NewColor(0.5, 0.7, 1.0)

	up := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), world, sampler, 5)
	if !colorNear(up, sky, 1e-12) {
		t.Errorf("Straight up should be sky blue, got %v", up)
	}
	down := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), world, sampler, 5)
	if !colorNear(down, core.White, 1e-12) {
		t.Errorf("Straight down should be white, got %v", down)
	}

	// Horizontal-ish rays fall strictly between the two ends
	mid := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.3, -1)), world, sampler, 5)
	if !(mid.R < core.White.R && mid.R > sky.R && mid.G < core.White.G && mid.G > sky.G) {
		t.Errorf("Expected color strictly between white and sky blue, got %v", mid)
	}

	// Sweep the vertical component from -1 to 1
	previous := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), world, sampler, 5)
	for y := -0.9; y <= 1.0; y += 0.1 {
		horizontal := math.Sqrt(math.Max(0, 1-y*y))
		color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(horizontal, y, 0)), world, sampler, 5)
		if color.B < previous.B {
			t.Fatalf("Blue channel decreased at y=%.1f: %f -> %f", y, previous.B, color.B)
		}
		if color.R >= previous.R {
			t.Fatalf("Red channel should fall toward sky blue at y=%.1f: %f -> %f", y, previous.R, color.R)
		}
		previous = color
	}
}

func TestPathTracingAbsorptionIsBlack(t *testing.T) {
	absorber := &MockMaterial{
		scatterFn: func(core.Ray, material.HitRecord, core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{}, false
		},
	}
	integrator := NewPathTracingIntegrator(DefaultBackground())

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if color := integrator.RayColor(ray, floor(absorber), core.NewSeededSampler(1), 5); color != core.Black {
		t.Errorf("Absorbed ray should be black, got %v", color)
	}
}

func TestPathTracingAttenuationProduct(t *testing.T) {
	// Each bounce sends the ray straight back down, so every bounce hits
	bounce := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, -1, 0)),
				Attenuation: core.NewColor(0.5, 0.5, 0.5),
			}, true
		},
	}
	integrator := NewPathTracingIntegrator(DefaultBackground())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// A path that never escapes runs out of budget and goes black
	if color := integrator.RayColor(ray, floor(bounce), core.NewSeededSampler(1), 4); color != core.Black {
		t.Errorf("Trapped path should be black, got %v", color)
	}

	// One bounce that escapes upward picks up attenuation * sky
	escape := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{
				Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
				Attenuation: core.NewColor(0.8, 0.5, 0.2),
			}, true
		},
	}
	color := integrator.RayColor(ray, floor(escape), core.NewSeededSampler(1), 4)
	expected := core.NewColor(0.8*0.5, 0.5*0.7, 0.2*1.0)
	if !colorNear(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestPathTracingConvergesToAnalyticDiffuse(t *testing.T) {
	// Gradient from black (down) to white (up): a lambertian floor with
	// albedo a sees E[0.5(1+cosθ)] = 0.5(1 + 2/3) under cosine sampling
	background := Background{Top: core.White, Bottom: core.Black}
	integrator := NewPathTracingIntegrator(background)
	albedo := 0.5
	world := floor(material.NewLambertian(core.NewColor(albedo, albedo, albedo)))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	expected := albedo * 0.5 * (1 + 2.0/3.0)

	meanError := func(samples int) float64 {
		total := 0.0
		const seeds = 20
		for seed := int64(0); seed < seeds; seed++ {
			sampler := core.NewSeededSampler(seed)
			sum := 0.0
			for i := 0; i < samples; i++ {
				sum += integrator.RayColor(ray, world, sampler, 5).R
			}
			total += math.Abs(sum/float64(samples) - expected)
		}
		return total / seeds
	}

	coarse := meanError(4)
	fine := meanError(1024)
	if fine >= coarse {
		t.Errorf("More samples should reduce error: 4 samples %f, 1024 samples %f", coarse, fine)
	}
	if fine > 0.01 {
		t.Errorf("1024-sample estimate should be within 0.01 of %f, mean error %f", expected, fine)
	}
}

func TestPathTracingReferenceSphere(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))
	world := geometry.NewWorld(sphere)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		t.Fatal("Expected the center ray to hit the sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}
