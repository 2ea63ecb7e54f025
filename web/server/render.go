package server

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

const (
	maxDimension  = 4000
	maxDepthLimit = 50
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string // Scene name (e.g., "spheregrid")
	Width    int    // Image width, 0 = scene default
	Height   int    // Image height, 0 = scene default
	Samples  int    // Samples per pixel, 0 = scene default
	MaxDepth int    // Maximum bounce depth, 0 = scene default
	Seed     int64
}

// parseRenderRequest parses and validates query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: s.cfg.Scene}
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", s.cfg.Width, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", s.cfg.Height, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", s.cfg.Samples, 1, s.cfg.MaxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", s.cfg.MaxDepth, 1, maxDepthLimit); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", s.cfg.Seed); err != nil {
		return nil, err
	}
	return req, nil
}

// createScene builds the requested scene and applies overrides and limits
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.New(req.Scene, renderer.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}

	if req.Samples > 0 {
		sceneObj.SamplingConfig.SamplesPerPixel = req.Samples
	}
	if req.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = req.MaxDepth
	}
	sceneObj.SamplingConfig.Seed = req.Seed

	// Scene defaults are checked against the limits too
	width, height := sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height
	if width*height > s.cfg.MaxPixels {
		return nil, fmt.Errorf("image %dx%d exceeds the %d pixel limit", width, height, s.cfg.MaxPixels)
	}
	if sceneObj.SamplingConfig.SamplesPerPixel > s.cfg.MaxSamples {
		return nil, fmt.Errorf("%d samples per pixel exceeds the limit of %d",
			sceneObj.SamplingConfig.SamplesPerPixel, s.cfg.MaxSamples)
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// handleRender renders a single frame and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
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

	// Each render is single-threaded; wait for a free slot
	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	case <-r.Context().Done():
		return
	}

	renderID := uuid.New().String()
	logger := s.logger.With("render_id", renderID, "scene", req.Scene)

	width, height := sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height
	raytracer := renderer.NewRaytracer(sceneObj, width, height)
	raytracer.SetSamplingConfig(sceneObj.SamplingConfig)
	raytracer.SetLogger(core.SlogLogger{Logger: logger, Level: slog.LevelDebug})

	frame, stats := raytracer.RenderFrame()

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame.RGBA()); err != nil {
		logger.Error("encode png", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("encode png: %w", err))
		return
	}

	logger.Info("render complete",
		"width", width,
		"height", height,
		"samples", stats.SamplesPerPixel,
		"depth", stats.MaxDepth,
		"duration", stats.Duration)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Duration", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
