package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	router *mux.Router
	slots  chan struct{} // Bounds concurrent renders
}

// NewServer creates a new web server
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	renders := cfg.MaxRenders
	if renders <= 0 {
		renders = 1
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: mux.NewRouter(),
		slots:  make(chan struct{}, renders),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.recovery)
	s.router.Use(s.requestLogger)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/scenes", s.handleScenes).Methods("GET")
	api.HandleFunc("/scenes/{scene}", s.handleSceneConfig).Methods("GET")
	api.HandleFunc("/render", s.handleRender).Methods("GET")
	api.HandleFunc("/inspect", s.handleInspect).Methods("GET")
}

// ServeHTTP lets the server be used directly as an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // Renders are synchronous
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.ListScenes()})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["scene"]
	sceneObj, err := scene.New(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene": name,
		"defaults": map[string]interface{}{
			"width":           sceneObj.CameraConfig.Width,
			"height":          sceneObj.CameraConfig.Height,
			"samplesPerPixel": sceneObj.SamplingConfig.SamplesPerPixel,
			"maxDepth":        sceneObj.SamplingConfig.MaxDepth,
			"seed":            sceneObj.SamplingConfig.Seed,
			"objects":         sceneObj.World.Len(),
		},
		"limits": map[string]interface{}{
			"maxPixels":  s.cfg.MaxPixels,
			"maxSamples": s.cfg.MaxSamples,
			"maxDepth":   maxDepthLimit,
		},
	})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses a 64-bit integer parameter, any value allowed
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
