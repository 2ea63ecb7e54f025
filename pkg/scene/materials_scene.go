package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewMaterialsScene shows every material side by side: a hollow glass
// sphere on the left, diffuse in the middle and brushed metal on the right
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:   core.NewVec3(-2, 2, 1),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		Width:    400,
		Height:   225,
		VFov:     30.0,
		Aperture: 0.1, // Slight blur away from the centre sphere
	}

	s := newScene(defaultCameraConfig, cameraOverrides)
	s.SamplingConfig.SamplesPerPixel = 50
	s.SamplingConfig.MaxDepth = 10 // Glass needs a few more bounces

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)

	// A negative radius turns the inner sphere into an inward-facing
	// shell, leaving a thin bubble of glass
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.4, glass)

	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return s
}
