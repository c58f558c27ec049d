package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "landscape.log")

	// 1MB is the smallest size lumberjack rotates at
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	// A long headless run logs per-tick world state; ~300 bytes a line
	// needs a few thousand ticks to pass 1MB.
	log := Named("world")
	path := strings.Repeat("x", 200)
	for i := range 6000 {
		log.Debug("tick",
			zap.Int("tick", i),
			zap.Bool("day", i%2 == 0),
			zap.Float32("sun_y", float32(i)*0.5),
			zap.String("heightmap", path))
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Fatal("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	var rotated []string
	for _, f := range files {
		name := f.Name()
		if name == "landscape.log" || !strings.HasPrefix(name, "landscape-") {
			continue
		}
		rotated = append(rotated, name)
		// landscape-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") || !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
	}
	if len(rotated) == 0 {
		t.Error("no rotated files found")
	}

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "world") || !strings.Contains(string(content), `"sun_y"`) {
		t.Error("expected named logger and structured fields in the current log file")
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"export failed"},
			excluded: []string{"transition", "heightmap loaded", "mesh built"},
		},
		{
			level:    "warn",
			expected: []string{"export failed", "transition"},
			excluded: []string{"heightmap loaded", "mesh built"},
		},
		{
			level:    "info",
			expected: []string{"export failed", "transition", "heightmap loaded"},
			excluded: []string{"mesh built"},
		},
		{
			level:    "debug",
			expected: []string{"export failed", "transition", "heightmap loaded", "mesh built"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			cfg := FileConfig{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithFileConfig(tt.level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			log := Named("terrain")
			log.Debug("mesh built", zap.Int("vertices", 16641), zap.Int("triangles", 32768))
			log.Info("heightmap loaded", zap.String("path", "heightmap.png"), zap.Int("width", 256))
			Warn("day/night transition", zap.Uint64("tick", 1047), zap.String("phase", "night"))
			Error("export failed", zap.String("path", "out.obj"))
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %q in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %q in log output for level %s", exc, tt.level)
				}
			}
			if tt.level == "debug" && !strings.Contains(logContent, "terrain") {
				t.Error("expected logger name terrain in output")
			}
			if tt.level == "debug" && !strings.Contains(logContent, `"vertices": 16641`) {
				t.Error("expected structured vertices field in output")
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/test.log")

	if cfg.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestNopBeforeInit(t *testing.T) {
	// The package-level logger must be usable before Init.
	Log = zap.NewNop()
	Sugar = Log.Sugar()

	Info("no-op")
	Named("terrain").Debug("no-op")
	Sync()
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNamed(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("world").Info("scene ready", zap.Int("trees", 3))
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	for _, want := range []string{"world", "scene ready", "trees"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected %q in log output, got %s", want, content)
		}
	}
}
