package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ErrInvalidScene is returned by Validate for scenes that cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.World // Objects in the scene
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

func (s *Scene) GetCamera() *renderer.Camera          { return s.Camera }
func (s *Scene) GetWorld() geometry.Hittable          { return s.World }
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// newScene builds a scene around a camera config, applying any overrides
func newScene(defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Camera:         renderer.NewCamera(cameraConfig),
		World:          geometry.NewWorld(),
		Background:     integrator.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		CameraConfig:   cameraConfig,
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Point, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("%w: no camera", ErrInvalidScene)
	}
	if s.World == nil {
		return fmt.Errorf("%w: no world", ErrInvalidScene)
	}
	if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidScene, s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if s.CameraConfig.VFov <= 0 || s.CameraConfig.VFov >= 180 {
		return fmt.Errorf("%w: vertical field of view %.1f", ErrInvalidScene, s.CameraConfig.VFov)
	}
	if s.CameraConfig.Center == s.CameraConfig.LookAt {
		return fmt.Errorf("%w: camera center equals look-at point", ErrInvalidScene)
	}
	if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d samples, depth %d", ErrInvalidScene,
			s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)
	}
	return nil
}
