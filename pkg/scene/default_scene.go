package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewDefaultScene creates the two-sphere scene: a small diffuse sphere
// resting on a huge one that acts as the ground
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		Width:  400,
		Height: 225,  // 16:9 aspect ratio
		VFov:   90.0, // Viewport two units tall at unit distance
	}

	s := newScene(defaultCameraConfig, cameraOverrides)

	// One material shared by both spheres
	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}
