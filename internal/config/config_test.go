package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.Width != 500 || cfg.Terrain.Depth != 500 {
		t.Errorf("expected 500x500 terrain, got %vx%v", cfg.Terrain.Width, cfg.Terrain.Depth)
	}
	if cfg.Terrain.MaxHeight != 20 {
		t.Errorf("expected max height 20, got %v", cfg.Terrain.MaxHeight)
	}
	if cfg.Scene.Smoke != 1800 {
		t.Errorf("expected 1800 smoke particles, got %d", cfg.Scene.Smoke)
	}
	if cfg.Scene.Snow != 100 {
		t.Errorf("expected 100 snow flakes, got %d", cfg.Scene.Snow)
	}
	if !cfg.Scene.Trees.Enabled || cfg.Scene.Trees.Step != 8 || cfg.Scene.Trees.MaxHeight != 5 {
		t.Errorf("unexpected tree defaults %+v", cfg.Scene.Trees)
	}
	if cfg.Export.Path != "" {
		t.Errorf("expected export disabled by default, got %s", cfg.Export.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "landscape.yaml")

	yamlContent := `
terrain:
  heightmap: "maps/island.png"
  width: 1000
  max_height: 64
  segments_x: 256

scene:
  seed: 42
  ticks: 10
  snow_flakes: 5
  trees:
    enabled: false

export:
  path: "out/terrain.glb"

logging:
  level: "debug"
  log_file: "landscape.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.Heightmap != "maps/island.png" {
		t.Errorf("expected heightmap maps/island.png, got %s", cfg.Terrain.Heightmap)
	}
	if cfg.Terrain.Width != 1000 {
		t.Errorf("expected width 1000, got %v", cfg.Terrain.Width)
	}
	if cfg.Terrain.Depth != 500 {
		t.Errorf("expected depth to keep default 500, got %v", cfg.Terrain.Depth)
	}
	if cfg.Terrain.SegmentsX != 256 || cfg.Terrain.SegmentsZ != 128 {
		t.Errorf("expected segments 256x128, got %dx%d", cfg.Terrain.SegmentsX, cfg.Terrain.SegmentsZ)
	}
	if cfg.Scene.Seed != 42 || cfg.Scene.Ticks != 10 || cfg.Scene.Snow != 5 {
		t.Errorf("unexpected scene %+v", cfg.Scene)
	}
	if cfg.Scene.Trees.Enabled {
		t.Error("expected trees disabled")
	}
	if cfg.Scene.Trees.Step != 8 {
		t.Errorf("expected tree step to keep default 8, got %v", cfg.Scene.Trees.Step)
	}
	if cfg.Export.Path != "out/terrain.glb" {
		t.Errorf("expected export path out/terrain.glb, got %s", cfg.Export.Path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "landscape.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/landscape.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	good := filepath.Join(tmpDir, "good.yaml")
	if err := os.WriteFile(good, []byte("terrain:\n  depth: 250\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Terrain.Depth != 250 {
		t.Errorf("expected depth 250, got %v", cfg.Terrain.Depth)
	}

	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("terrain:\n  width: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected validation error for negative width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"missing heightmap", func(c *Config) { c.Terrain.Heightmap = "" }},
		{"zero depth", func(c *Config) { c.Terrain.Depth = 0 }},
		{"nan width", func(c *Config) { c.Terrain.Width = float32(math.NaN()) }},
		{"inf depth", func(c *Config) { c.Terrain.Depth = float32(math.Inf(1)) }},
		{"nan max height", func(c *Config) { c.Terrain.MaxHeight = float32(math.NaN()) }},
		{"inf max height", func(c *Config) { c.Terrain.MaxHeight = float32(math.Inf(-1)) }},
		{"negative segments", func(c *Config) { c.Terrain.SegmentsZ = -1 }},
		{"negative ticks", func(c *Config) { c.Scene.Ticks = -5 }},
		{"negative smoke", func(c *Config) { c.Scene.Smoke = -1 }},
		{"zero tree step", func(c *Config) { c.Scene.Trees.Step = 0 }},
		{"inverted tree scale", func(c *Config) { c.Scene.Trees.MinScale = 3 }},
		{"bad export extension", func(c *Config) { c.Export.Path = "terrain.obj" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	cfg := Default()
	cfg.Scene.Trees.Enabled = false
	cfg.Scene.Trees.Step = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled trees should not be validated: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "landscape.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find landscape.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "heightmap flag",
			setup: func() { *flagHeightmap = "other.png" },
			verify: func(cfg *Config) {
				if cfg.Terrain.Heightmap != "other.png" {
					t.Errorf("expected heightmap other.png, got %s", cfg.Terrain.Heightmap)
				}
			},
			teardown: func() { *flagHeightmap = "" },
		},
		{
			name:  "segments flag",
			setup: func() { *flagSegments = 32 },
			verify: func(cfg *Config) {
				if cfg.Terrain.SegmentsX != 32 || cfg.Terrain.SegmentsZ != 32 {
					t.Errorf("expected 32x32 segments, got %dx%d", cfg.Terrain.SegmentsX, cfg.Terrain.SegmentsZ)
				}
			},
			teardown: func() { *flagSegments = 0 },
		},
		{
			name:  "out flag",
			setup: func() { *flagOut = "mesh.gltf" },
			verify: func(cfg *Config) {
				if cfg.Export.Path != "mesh.gltf" {
					t.Errorf("expected export path mesh.gltf, got %s", cfg.Export.Path)
				}
			},
			teardown: func() { *flagOut = "" },
		},
		{
			name:  "zero ticks flag",
			setup: func() { *flagTicks = 0 },
			verify: func(cfg *Config) {
				if cfg.Scene.Ticks != 0 {
					t.Errorf("expected 0 ticks, got %d", cfg.Scene.Ticks)
				}
			},
			teardown: func() { *flagTicks = -1 },
		},
		{
			name:  "seed flag",
			setup: func() { flagSeed.Set("7") },
			verify: func(cfg *Config) {
				if cfg.Scene.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Scene.Seed)
				}
			},
			teardown: func() { flagSeed = optionalUint64{} },
		},
		{
			name:  "zero seed flag",
			setup: func() { flagSeed.Set("0") },
			verify: func(cfg *Config) {
				if cfg.Scene.Seed != 0 {
					t.Errorf("expected explicit seed 0, got %d", cfg.Scene.Seed)
				}
			},
			teardown: func() { flagSeed = optionalUint64{} },
		},
		{
			name:  "seed flag unset",
			setup: func() {},
			verify: func(cfg *Config) {
				if cfg.Scene.Seed != Default().Scene.Seed {
					t.Errorf("expected default seed, got %d", cfg.Scene.Seed)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "landscape.yaml")

	yamlContent := `
terrain:
  segments_x: 64
  segments_z: 64
  max_height: 30
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagSegments = 16
	defer func() {
		*flagConfig = ""
		*flagSegments = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Segments from flag, not file
	if cfg.Terrain.SegmentsX != 16 {
		t.Errorf("expected segments 16 from flag, got %d", cfg.Terrain.SegmentsX)
	}
	// Max height from file since no flag override
	if cfg.Terrain.MaxHeight != 30 {
		t.Errorf("expected max height 30 from file, got %v", cfg.Terrain.MaxHeight)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "landscape.yaml")

	cfg := Default()
	cfg.Terrain.MaxHeight = 99
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Terrain.MaxHeight != 99 {
		t.Errorf("expected max height 99, got %v", loaded.Terrain.MaxHeight)
	}
}
