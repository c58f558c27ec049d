package world

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/config"
)

// HeightSampler answers ground elevation queries.
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// GroundFunc adapts a plain function to HeightSampler.
type GroundFunc func(x, z float32) float32

// HeightAt calls f(x, z).
func (f GroundFunc) HeightAt(x, z float32) float32 { return f(x, z) }

// Tree is a placed tree instance.
type Tree struct {
	Position mgl32.Vec3
	Yaw      float32 // Radians about +Y
	Scale    float32
}

// treeSink lowers trees slightly so trunks do not float on slopes.
const treeSink = 0.01

// ScatterTrees walks a grid over the configured region, jitters each cell
// and keeps the positions whose ground is below cfg.MaxHeight.
func ScatterTrees(ground HeightSampler, cfg config.TreeConfig, rng *rand.Rand) []Tree {
	if !cfg.Enabled || cfg.Step <= 0 {
		return nil
	}

	var trees []Tree
	for x := cfg.MinX; x < cfg.MaxX; x += cfg.Step {
		for z := cfg.MinZ; z < cfg.MaxZ; z += cfg.Step {
			px := x + 1 + cfg.Jitter*rng.Float32() - cfg.Jitter/2
			pz := z + 1 + cfg.Jitter*rng.Float32() - cfg.Jitter/2

			h := ground.HeightAt(px, pz)
			if h >= cfg.MaxHeight {
				continue
			}

			trees = append(trees, Tree{
				Position: mgl32.Vec3{px, h - treeSink, pz},
				Yaw:      rng.Float32() * 2 * math.Pi,
				Scale:    cfg.MinScale + rng.Float32()*(cfg.MaxScale-cfg.MinScale),
			})
		}
	}
	return trees
}
