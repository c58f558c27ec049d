package particles

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Snowfall constants.
const (
	DefaultSnowCount = 100
	SnowFloor        = 5.0  // flakes below this height respawn
	SnowSpawnY       = 80.0 // respawn height
	SnowMaxDrift     = 0.05 // horizontal drift per tick
	SnowMaxFall      = 0.1  // fall per tick
	SnowScale        = 10.0
	SnowOpacity      = 0.6
)

// Winter corner of the map: origin and edge length.
const (
	snowAreaX    = 175.0
	snowAreaZ    = 175.0
	snowAreaSize = 20.0
)

// Snow is a set of sprites drifting down over the winter area. Horizontal
// drift follows a Perlin field so neighbouring flakes sway together.
type Snow struct {
	Flakes []mgl32.Vec3
	rng    *rand.Rand
	noise  *perlin.Perlin
	time   float64
}

// NewSnow spawns count flakes.
func NewSnow(rng *rand.Rand, count int) *Snow {
	s := &Snow{
		Flakes: make([]mgl32.Vec3, count),
		rng:    rng,
		noise:  perlin.NewPerlin(2, 2, 3, rng.Int64()),
	}
	for i := range count {
		s.Flakes[i] = mgl32.Vec3{
			rng.Float32()*snowAreaSize + snowAreaX,
			rng.Float32()*80 + 5,
			rng.Float32()*snowAreaSize + snowAreaZ,
		}
	}
	return s
}

// Update advances every flake by one tick.
func (s *Snow) Update() {
	s.time += 0.01
	for i := range s.Flakes {
		f := &s.Flakes[i]
		f[0] += s.drift(float64(i), 0)
		f[1] -= s.rng.Float32() * SnowMaxFall
		f[2] += s.drift(float64(i), 100)

		if f[1] < SnowFloor {
			*f = mgl32.Vec3{
				s.rng.Float32()*snowAreaSize + snowAreaX,
				SnowSpawnY,
				s.rng.Float32()*snowAreaSize + snowAreaZ,
			}
		}
	}
}

// drift returns a horizontal offset in [-SnowMaxDrift, SnowMaxDrift].
func (s *Snow) drift(i, offset float64) float32 {
	n := s.noise.Noise2D(i*0.37+offset, s.time)
	n = math.Max(-1, math.Min(1, n*2))
	return float32(n) * SnowMaxDrift
}

// Len returns the flake count.
func (s *Snow) Len() int { return len(s.Flakes) }
