package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestLambertian_AlwaysScattersWithAlbedo(t *testing.T) {
	albedo := core.NewColor(0.7, 0.3, 0.1)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  lambertian,
	}

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Lambertian should always scatter (iteration %d)", i)
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewColor(0.5, 0.5, 0.5))

	// sample.X = 1 maps to z = -1, the exact opposite of the normal
	sampler := &queueSampler{samples: []core.Vec2{core.NewVec2(1, 0)}}

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != hit.Normal {
		t.Errorf("Degenerate scatter should fall back to the normal, got %v", scatter.Scattered.Direction)
	}
}
