// Package config handles landscape configuration loading and management.
package config

// Config holds all scene settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Scene   SceneConfig   `yaml:"scene"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds heightmap and mesh settings.
type TerrainConfig struct {
	Heightmap string  `yaml:"heightmap"` // Path to the grayscale heightmap image
	Width     float32 `yaml:"width"`
	Depth     float32 `yaml:"depth"`
	MaxHeight float32 `yaml:"max_height"`
	SegmentsX int     `yaml:"segments_x"` // 0 = terrain default
	SegmentsZ int     `yaml:"segments_z"`
}

// SceneConfig holds simulation settings.
type SceneConfig struct {
	Seed       uint64     `yaml:"seed"`
	Ticks      int        `yaml:"ticks"` // Ticks to simulate in headless runs
	Smoke      int        `yaml:"smoke_particles"`
	Snow       int        `yaml:"snow_flakes"`
	SkyClouds  int        `yaml:"sky_clouds"`
	SnowClouds int        `yaml:"snow_clouds"`
	Water      bool       `yaml:"water"`
	Trees      TreeConfig `yaml:"trees"`
}

// TreeConfig controls tree scattering.
type TreeConfig struct {
	Enabled   bool    `yaml:"enabled"`
	MinX      float32 `yaml:"min_x"`
	MaxX      float32 `yaml:"max_x"`
	MinZ      float32 `yaml:"min_z"`
	MaxZ      float32 `yaml:"max_z"`
	Step      float32 `yaml:"step"`
	Jitter    float32 `yaml:"jitter"`     // Full width of the random offset
	MaxHeight float32 `yaml:"max_height"` // Only plant below this elevation
	MinScale  float32 `yaml:"min_scale"`
	MaxScale  float32 `yaml:"max_scale"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Path   string `yaml:"path"`   // .glb or .gltf; empty disables export
	Planes bool   `yaml:"planes"` // Include ocean/lava/ice planes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Heightmap: "resources/images/heightmap.png",
			Width:     500,
			Depth:     500,
			MaxHeight: 20,
			SegmentsX: 128,
			SegmentsZ: 128,
		},
		Scene: SceneConfig{
			Seed:       1,
			Ticks:      600,
			Smoke:      1800,
			Snow:       100,
			SkyClouds:  100,
			SnowClouds: 10,
			Water:      true,
			Trees: TreeConfig{
				Enabled:   true,
				MinX:      -50,
				MaxX:      50,
				MinZ:      -50,
				MaxZ:      50,
				Step:      8,
				Jitter:    6,
				MaxHeight: 5,
				MinScale:  1.5,
				MaxScale:  2.5,
			},
		},
		Export: ExportConfig{
			Path:   "",
			Planes: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
