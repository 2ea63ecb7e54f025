package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/web/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to serve on")
	flag.Parse()

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("sphere raytracer web server",
		"port", cfg.Port,
		"max_pixels", cfg.MaxPixels,
		"max_samples", cfg.MaxSamples,
		"max_renders", cfg.MaxRenders)

	if err := server.NewServer(cfg, logger).Start(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
