// Package main is the entry point for the headless landscape scene runner.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/internal/game/world"
	"github.com/Faultbox/landscape/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Landscape ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("scene failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	start := time.Now()

	hm, err := terrain.LoadHeightmap(cfg.Terrain.Heightmap)
	if err != nil {
		return err
	}
	logger.Info("heightmap loaded",
		zap.String("path", cfg.Terrain.Heightmap),
		zap.Int("width", hm.Width()),
		zap.Int("height", hm.Height()))

	t, err := terrain.New(hm, terrain.Params{
		Width:     cfg.Terrain.Width,
		Depth:     cfg.Terrain.Depth,
		MaxHeight: cfg.Terrain.MaxHeight,
		SegmentsX: cfg.Terrain.SegmentsX,
		SegmentsZ: cfg.Terrain.SegmentsZ,
	})
	if err != nil {
		return err
	}

	w, err := world.New(t, cfg.Scene)
	if err != nil {
		return err
	}
	stats := w.Stats()
	logger.Info("scene built",
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int("trees", stats.Trees),
		zap.Int("planes", stats.Planes),
		zap.Int("particles", stats.Particles),
		zap.Duration("elapsed", time.Since(start)))

	if cfg.Export.Path != "" {
		if err := terrain.ExportGLTF(cfg.Export.Path, w.Parts(cfg.Export.Planes)...); err != nil {
			return err
		}
		logger.Info("mesh exported", zap.String("path", cfg.Export.Path))
	}

	for range cfg.Scene.Ticks {
		w.Tick()
	}

	stats = w.Stats()
	logger.Info("simulation finished",
		zap.Uint64("ticks", stats.Tick),
		zap.Bool("day", stats.Day),
		zap.Float32("sun_y", stats.SunY))

	return nil
}
