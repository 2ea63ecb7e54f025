package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func baseConfig() *config.Config {
	return &config.Config{
		Scene:      "default",
		Seed:       42,
		OutputDir:  "output",
		Port:       8080,
		LogLevel:   "info",
		MaxPixels:  640000,
		MaxSamples: 500,
	}
}

func TestParseFlags(t *testing.T) {
	cfg := baseConfig()
	help, err := parseFlags([]string{"-scene", "materials", "-width", "120", "-height", "80", "-samples", "3", "-depth", "7", "-seed", "9", "-out", "renders"}, cfg)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if help {
		t.Error("Help should not be requested")
	}
	if cfg.Scene != "materials" || cfg.Width != 120 || cfg.Height != 80 {
		t.Errorf("Unexpected scene settings: %+v", cfg)
	}
	if cfg.Samples != 3 || cfg.MaxDepth != 7 || cfg.Seed != 9 || cfg.OutputDir != "renders" {
		t.Errorf("Unexpected sampling settings: %+v", cfg)
	}
}

func TestParseFlags_KeepsEnvironmentValues(t *testing.T) {
	cfg := baseConfig()
	cfg.Samples = 12
	if _, err := parseFlags([]string{"-width", "10"}, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 12 {
		t.Errorf("Unset flags should keep config values, got %d samples", cfg.Samples)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-bogus"}},
		{"bad number", []string{"-width", "wide"}},
		{"negative samples", []string{"-samples", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, baseConfig()); err == nil {
				t.Errorf("Expected an error for %v", tt.args)
			}
		})
	}

	if _, err := parseFlags([]string{"-samples", "-1"}, baseConfig()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseFlags_Help(t *testing.T) {
	help, err := parseFlags([]string{"-help"}, baseConfig())
	if err != nil || !help {
		t.Errorf("Expected help request, got help=%t err=%v", help, err)
	}

	var out bytes.Buffer
	printHelp(&out)
	for _, name := range scene.Names() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Help should list scene %q", name)
		}
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"materials scene", "materials", false},
		{"spheregrid scene", "spheregrid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Scene = tt.sceneType
			s, err := createScene(cfg)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for %q", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.sceneType, err)
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
			if s.SamplingConfig.Seed != 42 {
				t.Errorf("Expected seed 42, got %d", s.SamplingConfig.Seed)
			}
		})
	}
}

func TestCreateScene_Overrides(t *testing.T) {
	cfg := baseConfig()
	cfg.Width, cfg.Height = 50, 40
	cfg.Samples, cfg.MaxDepth = 2, 3

	s, err := createScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.CameraConfig.Width != 50 || s.CameraConfig.Height != 40 {
		t.Errorf("Expected 50x40, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
	if s.SamplingConfig.SamplesPerPixel != 2 || s.SamplingConfig.MaxDepth != 3 {
		t.Errorf("Unexpected sampling config %+v", s.SamplingConfig)
	}
}

func TestOutputFilename(t *testing.T) {
	id := uuid.MustParse("0123abcd-0000-4000-8000-000000000000")
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	got := outputFilename(filepath.Join("output", "default"), now, id)
	want := filepath.Join("output", "default", "render_20240506_070809_0123abcd.png")
	if got != want {
		t.Errorf("outputFilename = %q, want %q", got, want)
	}
}

func TestRender_WritesPNG(t *testing.T) {
	cfg := baseConfig()
	cfg.OutputDir = t.TempDir()
	cfg.Width, cfg.Height = 16, 9
	cfg.Samples, cfg.MaxDepth = 1, 2

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	filename, err := render(cfg, logger)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if filepath.Dir(filename) != filepath.Join(cfg.OutputDir, "default") {
		t.Errorf("Expected file inside %s, got %s", filepath.Join(cfg.OutputDir, "default"), filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %v", b)
	}
}
