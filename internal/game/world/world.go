// Package world holds the landscape simulation state and advances it one
// tick at a time.
package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/lighting"
	"github.com/Faultbox/landscape/internal/engine/particles"
	"github.com/Faultbox/landscape/internal/engine/terrain"
	"github.com/Faultbox/landscape/internal/engine/water"
	"github.com/Faultbox/landscape/internal/logger"
)

// World is the complete scene state. Static parts (terrain, mesh, planes,
// trees) are built once in New; the rest changes on every Tick.
//
// Scene space is centered on the terrain: the terrain's (0, 0) corner sits
// at Origin, so scene (0, 0) is the middle of the heightmap.
type World struct {
	Terrain *terrain.Terrain
	Origin  mgl32.Vec3
	Mesh    *terrain.Mesh
	Planes  []*water.Plane
	Trees   []Tree

	Cycle      *lighting.DayNightCycle
	Smoke      *particles.Smoke
	Snow       *particles.Snow
	SkyClouds  *particles.Clouds
	SnowClouds *particles.Clouds

	tick uint64
	log  *zap.Logger
}

// Stats summarizes the scene for logging.
type Stats struct {
	Tick      uint64
	Day       bool
	SunY      float32
	Vertices  int
	Triangles int
	Planes    int
	Trees     int
	Particles int
}

// New builds the scene over an existing terrain. All randomness is drawn
// from a generator seeded with cfg.Seed.
func New(t *terrain.Terrain, cfg config.SceneConfig) (*World, error) {
	if t == nil {
		return nil, fmt.Errorf("world: terrain is required")
	}

	log := logger.Named("world")
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	p := t.Params()
	w := &World{
		Terrain: t,
		Origin:  mgl32.Vec3{-p.Width / 2, 0, -p.Depth / 2},
		Mesh:    terrain.BuildMesh(t),
		Cycle:   lighting.NewDayNightCycle(),
		log:     log,
	}
	log.Debug("terrain mesh built",
		zap.Int("vertices", w.Mesh.VertexCount()),
		zap.Int("triangles", w.Mesh.TriangleCount()))

	if cfg.Water {
		w.Planes = water.DefaultPlanes()
	}

	w.Trees = ScatterTrees(GroundFunc(w.GroundHeight), cfg.Trees, rng)
	log.Debug("trees scattered", zap.Int("count", len(w.Trees)))

	w.Smoke = particles.NewSmoke(rng, cfg.Smoke)
	w.Snow = particles.NewSnow(rng, cfg.Snow)
	w.SkyClouds = particles.NewSkyClouds(rng, cfg.SkyClouds)
	w.SnowClouds = particles.NewSnowClouds(rng, cfg.SnowClouds)

	return w, nil
}

// Tick advances every animated system exactly once.
func (w *World) Tick() {
	wasDay := w.Cycle.IsDay()

	w.Cycle.Update()
	w.Smoke.Update()
	w.Snow.Update()
	w.SkyClouds.Update()
	w.SnowClouds.Update()
	w.tick++

	if w.Cycle.IsDay() != wasDay {
		phase := "night"
		if w.Cycle.IsDay() {
			phase = "day"
		}
		w.log.Info("day/night transition", zap.Uint64("tick", w.tick), zap.String("phase", phase))
	}
}

// Ticks returns how many ticks have run.
func (w *World) Ticks() uint64 { return w.tick }

// GroundHeight returns the terrain elevation at scene position (x, z).
func (w *World) GroundHeight(x, z float32) float32 {
	return w.Terrain.HeightAt(x-w.Origin.X(), z-w.Origin.Z())
}

// OnTerrain reports whether scene position (x, z) lies over the terrain.
func (w *World) OnTerrain(x, z float32) bool {
	return w.Terrain.Contains(x-w.Origin.X(), z-w.Origin.Z())
}

// Parts returns the meshes to export: the terrain first, then the planes
// when includePlanes is set. The terrain mesh is built in its own [0,W]x[0,D]
// frame, so its node carries the Origin translation.
func (w *World) Parts(includePlanes bool) []terrain.Part {
	parts := []terrain.Part{{Name: "terrain", Mesh: w.Mesh, Translation: w.Origin}}
	if includePlanes {
		for _, p := range w.Planes {
			parts = append(parts, terrain.Part{Name: p.Spec.Name, Mesh: p.Mesh})
		}
	}
	return parts
}

// Stats returns a snapshot summary.
func (w *World) Stats() Stats {
	return Stats{
		Tick:      w.tick,
		Day:       w.Cycle.IsDay(),
		SunY:      w.Cycle.SunPosition().Y(),
		Vertices:  w.Mesh.VertexCount(),
		Triangles: w.Mesh.TriangleCount(),
		Planes:    len(w.Planes),
		Trees:     len(w.Trees),
		Particles: w.Smoke.Len() + w.Snow.Len() + w.SkyClouds.Len() + w.SnowClouds.Len(),
	}
}
