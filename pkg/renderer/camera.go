package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Point // Camera position
	LookAt        core.Point // Point the camera is looking at
	Up            core.Vec3  // Up direction (usually (0,1,0))
	Width         int        // Image width in pixels
	Height        int        // Image height in pixels
	VFov          float64    // Vertical field of view in degrees
	Aperture      float64    // Lens diameter (0 = no depth of field)
	FocusDistance float64    // Distance to the focus plane (0 = |Center - LookAt|)
}

// AspectRatio returns width / height
func (c CameraConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// MergeCameraConfig returns defaults with every non-zero field of overrides applied
func MergeCameraConfig(defaults, overrides CameraConfig) CameraConfig {
	merged := defaults
	if !overrides.Center.IsZero() {
		merged.Center = overrides.Center
	}
	if !overrides.LookAt.IsZero() {
		merged.LookAt = overrides.LookAt
	}
	if !overrides.Up.IsZero() {
		merged.Up = overrides.Up
	}
	if overrides.Width > 0 {
		merged.Width = overrides.Width
	}
	if overrides.Height > 0 {
		merged.Height = overrides.Height
	}
	if overrides.VFov > 0 {
		merged.VFov = overrides.VFov
	}
	if overrides.Aperture > 0 {
		merged.Aperture = overrides.Aperture
	}
	if overrides.FocusDistance > 0 {
		merged.FocusDistance = overrides.FocusDistance
	}
	return merged
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point
	lowerLeftCorner core.Point
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Right-handed basis, w points from target to eye
	lensRadius      float64
}

// NewCamera creates a camera from configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio() * viewportHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// The image plane sits at the focus distance
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through image-plane coordinates (s, t) where
// 0 <= s,t <= 1 and (0, 0) is the lower-left corner
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		// Jitter the origin across the lens for defocus blur
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the direction the camera looks in
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// LensRadius returns half the aperture
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}
