package scene

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// SphereGridSeed fixes the layout of the sphere grid so every render of
// the scene places the same spheres
const SphereGridSeed = 7

// NewSphereGridScene creates a field of small random spheres around three
// large ones: glass, diffuse and polished metal
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         600,
		Height:        400,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene(defaultCameraConfig, cameraOverrides)
	s.SamplingConfig.SamplesPerPixel = 100
	s.SamplingConfig.MaxDepth = 20

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))

	// Layout randomness is separate from the render stream
	sampler := core.NewSeededSampler(SphereGridSeed)
	keepOut := []core.Point{core.NewVec3(4, 0.2, 0), core.NewVec3(0, 0.2, 0), core.NewVec3(-4, 0.2, 0)}

	const gridSize = 11
	for a := -gridSize; a < gridSize; a++ {
		for b := -gridSize; b < gridSize; b++ {
			chooseMat := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, 0.2, float64(b)+0.9*jitter.Y)

			if tooClose(center, keepOut, 0.9) {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				// Diffuse, colored by hue around the grid
				hue := math.Mod(math.Atan2(center.Z, center.X)*180/math.Pi+360, 360)
				chroma := 0.05 + 0.15*sampler.Get1D()
				mat = material.NewLambertian(oklchToRGB(0.65, chroma, hue))
			case chooseMat < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				mat = material.NewMetal(core.ColorFromVec(albedo), 0.5*sampler.Get1D())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0))

	return s
}

// tooClose reports whether p lies within distance of any of points
func tooClose(p core.Point, points []core.Point, distance float64) bool {
	for _, q := range points {
		if p.Subtract(q).Length() < distance {
			return true
		}
	}
	return false
}
