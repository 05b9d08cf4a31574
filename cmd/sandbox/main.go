package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/sandbox/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.DefaultConfig()

	// Parse command line flags
	flag.StringVar(&cfg.AssetRoot, "assets", cfg.AssetRoot, "Directory holding shaders/, textures/ and skyboxes/")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Wait for vertical sync")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "MSAA samples (0 disables)")
	heightScale := flag.Float64("height-scale", float64(cfg.HeightScale), "Initial parallax depth in [0, 1]")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg.HeightScale = float32(*heightScale)

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		logger.Error("failed to initialize renderer", "err", err)
		os.Exit(1)
	}

	renderer.Run()
}
