package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Validate checks settings that would otherwise fail deep inside the scene build.
func (c *Config) Validate() error {
	var errs []error

	if c.Terrain.Heightmap == "" {
		errs = append(errs, errors.New("terrain.heightmap is required"))
	}
	if !positiveFinite(c.Terrain.Width) || !positiveFinite(c.Terrain.Depth) {
		errs = append(errs, fmt.Errorf("terrain size must be positive and finite, got %vx%v", c.Terrain.Width, c.Terrain.Depth))
	}
	if !finite(c.Terrain.MaxHeight) {
		errs = append(errs, fmt.Errorf("terrain.max_height must be finite, got %v", c.Terrain.MaxHeight))
	}
	if c.Terrain.SegmentsX < 0 || c.Terrain.SegmentsZ < 0 {
		errs = append(errs, fmt.Errorf("terrain segments must not be negative, got %dx%d", c.Terrain.SegmentsX, c.Terrain.SegmentsZ))
	}
	if c.Scene.Ticks < 0 {
		errs = append(errs, fmt.Errorf("scene.ticks must not be negative, got %d", c.Scene.Ticks))
	}
	if c.Scene.Smoke < 0 || c.Scene.Snow < 0 || c.Scene.SkyClouds < 0 || c.Scene.SnowClouds < 0 {
		errs = append(errs, errors.New("particle counts must not be negative"))
	}
	if t := c.Scene.Trees; t.Enabled {
		if t.Step <= 0 {
			errs = append(errs, fmt.Errorf("scene.trees.step must be positive, got %v", t.Step))
		}
		if t.MaxScale < t.MinScale {
			errs = append(errs, fmt.Errorf("scene.trees scale range inverted: %v > %v", t.MinScale, t.MaxScale))
		}
	}
	if p := c.Export.Path; p != "" {
		ext := strings.ToLower(filepath.Ext(p))
		if ext != ".glb" && ext != ".gltf" {
			errs = append(errs, fmt.Errorf("export.path must end in .glb or .gltf, got %q", p))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func positiveFinite(v float32) bool {
	return finite(v) && v > 0
}
