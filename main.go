package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	help, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		slog.Error("parse flags", "error", err)
		os.Exit(2)
	}
	if help {
		printHelp(os.Stdout)
		return
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	filename, err := render(cfg, logger)
	if err != nil {
		slog.Error("render", "scene", cfg.Scene, "error", err)
		os.Exit(1)
	}
	slog.Info("render saved", "file", filename)
}

// parseFlags applies command line overrides on top of the environment config
func parseFlags(args []string, cfg *config.Config) (help bool, err error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene name: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Image width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Image height in pixels (0 = scene default)")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "Maximum ray bounce depth (0 = scene default)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	fs.BoolVar(&help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return false, err
	}
	if help {
		return true, nil
	}
	return false, cfg.Validate()
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Sphere Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -scene string    Scene name (env RAYTRACER_SCENE)")
	fmt.Fprintln(w, "  -width int       Image width, 0 for the scene default (env RAYTRACER_WIDTH)")
	fmt.Fprintln(w, "  -height int      Image height, 0 for the scene default (env RAYTRACER_HEIGHT)")
	fmt.Fprintln(w, "  -samples int     Samples per pixel, 0 for the scene default (env RAYTRACER_SAMPLES)")
	fmt.Fprintln(w, "  -depth int       Maximum bounce depth, 0 for the scene default (env RAYTRACER_MAX_DEPTH)")
	fmt.Fprintln(w, "  -seed int        Random seed (env RAYTRACER_SEED)")
	fmt.Fprintln(w, "  -out string      Output directory (env RAYTRACER_OUTPUT_DIR)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <out>/<scene>/render_<timestamp>_<id>.png")
}

// createScene builds the configured scene with size and sampling overrides applied
func createScene(cfg *config.Config) (*scene.Scene, error) {
	s, err := scene.New(cfg.Scene, renderer.CameraConfig{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return nil, err
	}

	if cfg.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = cfg.MaxDepth
	}
	s.SamplingConfig.Seed = cfg.Seed

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Scene, err)
	}
	return s, nil
}

// createOutputDir creates <base>/<scene> and returns its path
func createOutputDir(base, sceneName string) (string, error) {
	outputDir := filepath.Join(base, sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return outputDir, nil
}

// outputFilename returns a unique, timestamped PNG path inside dir
func outputFilename(dir string, now time.Time, id uuid.UUID) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s_%s.png", now.Format("20060102_150405"), id.String()[:8]))
}

// savePNG encodes the frame to filename
func savePNG(frame *renderer.Frame, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, frame.RGBA()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return file.Close()
}

// render renders the configured scene and writes it to disk
func render(cfg *config.Config, logger *slog.Logger) (string, error) {
	s, err := createScene(cfg)
	if err != nil {
		return "", err
	}

	outputDir, err := createOutputDir(cfg.OutputDir, cfg.Scene)
	if err != nil {
		return "", err
	}

	width, height := s.CameraConfig.Width, s.CameraConfig.Height
	logger.Info("starting render",
		"scene", cfg.Scene,
		"width", width,
		"height", height,
		"samples", s.SamplingConfig.SamplesPerPixel,
		"depth", s.SamplingConfig.MaxDepth,
		"seed", s.SamplingConfig.Seed,
		"objects", s.World.Len())

	raytracer := renderer.NewRaytracer(s, width, height)
	raytracer.SetSamplingConfig(s.SamplingConfig)
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		raytracer.SetLogger(renderer.NewDefaultLogger())
	} else {
		raytracer.SetLogger(core.NopLogger{})
	}

	frame, stats := raytracer.RenderFrame()
	logger.Info("render complete",
		"duration", stats.Duration,
		"samples", stats.TotalSamples,
		"samples_per_second", int(stats.SamplesPerSecond()))

	filename := outputFilename(outputDir, time.Now(), uuid.New())
	if err := savePNG(frame, filename); err != nil {
		return "", err
	}
	return filename, nil
}
