package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the frame's random stream
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        5,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground()),
		logger:     core.NopLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger sets where progress messages go
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// SetIntegrator replaces the default path tracing integrator
func (rt *Raytracer) SetIntegrator(in integrator.Integrator) {
	rt.integrator = in
}

// RenderFrame renders the whole image. Rendering is deterministic for a
// given scene and sampling config: each frame starts a fresh random stream
// from the configured seed.
func (rt *Raytracer) RenderFrame() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.width, rt.height)
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	sampler := core.NewSeededSampler(rt.config.Seed)

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	lastPercent := -1
	for j := rt.height - 1; j >= 0; j-- {
		for i := 0; i < rt.width; i++ {
			var pixel PixelStats
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				jitter := sampler.Get2D()
				s := (float64(i) + jitter.X) / float64(rt.width)
				t := (float64(j) + jitter.Y) / float64(rt.height)

				ray := camera.GetRay(s, t, sampler)
				pixel.AddSample(rt.integrator.RayColor(ray, world, sampler, rt.config.MaxDepth))
			}

			r, g, b := pixel.GetColor().GammaCorrect(2.0).ToBytes()
			frame.Set(i, rt.height-1-j, r, g, b)
		}

		done := rt.height - j
		if percent := done * 100 / rt.height; percent != lastPercent {
			lastPercent = percent
			rt.logger.Printf("\rRows: %d/%d (%d%%)", done, rt.height, percent)
		}
	}

	stats := RenderStats{
		TotalPixels:     rt.width * rt.height,
		TotalSamples:    rt.width * rt.height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Duration:        time.Since(start),
	}
	rt.logger.Printf("\nRender complete in %v (%.0f samples/s)\n", stats.Duration, stats.SamplesPerSecond())

	return frame, stats
}

// DefaultLogger writes progress to stdout
type DefaultLogger struct{}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Printf prints a formatted message to stdout
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
