package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagHeightmap = flag.String("heightmap", "", "Heightmap image path")
	flagSegments  = flag.Int("segments", 0, "Terrain grid resolution on both axes")
	flagOut       = flag.String("out", "", "Export mesh to this .glb/.gltf path")
	flagTicks     = flag.Int("ticks", -1, "Number of simulation ticks to run")
	flagSeed      optionalUint64
)

func init() {
	flag.Var(&flagSeed, "seed", "Random seed for scattering and particles")
}

// optionalUint64 is a uint64 flag that remembers whether it was given, so
// an explicit zero still overrides the config.
type optionalUint64 struct {
	value uint64
	set   bool
}

func (o *optionalUint64) String() string {
	return strconv.FormatUint(o.value, 10)
}

func (o *optionalUint64) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHeightmap != "" {
		cfg.Terrain.Heightmap = *flagHeightmap
	}
	if *flagSegments > 0 {
		cfg.Terrain.SegmentsX = *flagSegments
		cfg.Terrain.SegmentsZ = *flagSegments
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
	}
	if *flagTicks >= 0 {
		cfg.Scene.Ticks = *flagTicks
	}
	if flagSeed.set {
		cfg.Scene.Seed = flagSeed.value
	}
}
