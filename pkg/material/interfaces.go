package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Materials are shared by pointer between every surface that uses them.
type Material interface {
	// Scatter returns the attenuated outgoing ray, or false when the
	// material absorbs the incoming ray and the path terminates.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point  // Point of intersection
	Normal    core.Normal // Unit normal, always opposing the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
	Material  Material    // Material of the hit object
}

// NewHitRecord builds a hit record at parameter t. The outward normal does
// not need to be unit length; it is normalized and flipped to face the ray.
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3, mat Material) *HitRecord {
	h := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: mat,
	}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal.Normalize()
	} else {
		h.Normal = outwardNormal.Normalize().Negate()
	}
}
