package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	T            float64                `json:"t"` // Ray parameter at the hit
	FrontFace    bool                   `json:"frontFace"`
	Sphere       *SphereInfo            `json:"sphere,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// SphereInfo describes the sphere an inspection ray hit
type SphereInfo struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorHex(c core.Color) string {
	r, g, b := c.ToBytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// extractMaterialInfo extracts material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = [3]float64{m.Albedo.R, m.Albedo.G, m.Albedo.B}
		properties["color"] = colorHex(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = [3]float64{m.Albedo.R, m.Albedo.G, m.Albedo.B}
		properties["color"] = colorHex(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of pixel (x, y), y = 0 at
// the top, and returns the closest hit and the sphere it belongs to
func inspectPixel(sceneObj *scene.Scene, width, height, x, y int) (*material.HitRecord, *geometry.Sphere) {
	s := (float64(x) + 0.5) / float64(width)
	t := (float64(height-1-y) + 0.5) / float64(height)

	// Lens sampling is seeded so inspection is repeatable
	ray := sceneObj.Camera.GetRay(s, t, core.NewSeededSampler(0))

	hit, isHit := sceneObj.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return nil, nil
	}

	// The world only returns the hit record, so find the sphere that produced it
	for _, object := range sceneObj.World.Objects() {
		sphere, ok := object.(*geometry.Sphere)
		if !ok {
			continue
		}
		if sphereHit, ok := sphere.Hit(ray, integrator.ShadowAcneEpsilon, hit.T); ok && sphereHit.T == hit.T {
			return hit, sphere
		}
	}
	return hit, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	width, height := sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid y coordinate"))
		return
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, fmt.Errorf("pixel (%d, %d) outside %dx%d image", pixelX, pixelY, width, height))
		return
	}

	hit, sphere := inspectPixel(sceneObj, width, height, pixelX, pixelY)
	if hit == nil {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, properties := extractMaterialInfo(hit.Material)
	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		T:            hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	}
	if sphere != nil {
		response.Sphere = &SphereInfo{Center: vecArray(sphere.Center), Radius: sphere.Radius}
	}

	writeJSON(w, http.StatusOK, response)
}
