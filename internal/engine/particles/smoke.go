// Package particles animates the decorative point and sprite systems:
// the volcano smoke column, falling snow and billboard clouds.
package particles

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Smoke column constants.
const (
	DefaultSmokeCount = 1800
	SmokeCeiling      = 150.0 // particles above this height recycle
	SmokeRespawnY     = 5.0
	SmokeSize         = 20.0
	SmokeOpacity      = 0.1
)

// Smoke is a column of rising points. Each point keeps the speed it was
// spawned with.
type Smoke struct {
	Positions []mgl32.Vec3
	Speeds    []float32
}

// NewSmoke spawns count particles above the volcano.
func NewSmoke(rng *rand.Rand, count int) *Smoke {
	s := &Smoke{
		Positions: make([]mgl32.Vec3, count),
		Speeds:    make([]float32, count),
	}
	for i := range count {
		s.Positions[i] = mgl32.Vec3{
			rng.Float32()*20 - 140,
			rng.Float32()*100 + 50,
			rng.Float32()*20 - 90,
		}
		s.Speeds[i] = rng.Float32()
	}
	return s
}

// Update raises every particle by its speed and recycles those above the ceiling.
func (s *Smoke) Update() {
	for i := range s.Positions {
		y := s.Positions[i][1] + s.Speeds[i]
		if y > SmokeCeiling {
			y = SmokeRespawnY
		}
		s.Positions[i][1] = y
	}
}

// Len returns the particle count.
func (s *Smoke) Len() int { return len(s.Positions) }
