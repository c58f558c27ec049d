package particles

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Cloud constants.
const (
	DefaultSkyCloudCount  = 100
	DefaultSnowCloudCount = 10
	CloudScale            = 50.0
	CloudOpacity          = 0.7
	CloudSpin             = 0.001 // sprite rotation per tick
	cloudJitter           = 15
)

// Sprite is a camera-facing textured quad.
type Sprite struct {
	Position mgl32.Vec3
	Scale    float32
	Rotation float32 // In-plane rotation in radians
	Opacity  float32
}

// Clouds is a set of slowly spinning billboard sprites.
type Clouds struct {
	Sprites []Sprite
}

// NewSkyClouds scatters count clouds high above the whole map.
func NewSkyClouds(rng *rand.Rand, count int) *Clouds {
	return newClouds(rng, count, func() mgl32.Vec3 {
		return mgl32.Vec3{
			rng.Float32()*2500 - 1250,
			rng.Float32()*100 + 200,
			rng.Float32()*2500 - 1250,
		}
	})
}

// NewSnowClouds bunches count clouds low over the winter area.
func NewSnowClouds(rng *rand.Rand, count int) *Clouds {
	return newClouds(rng, count, func() mgl32.Vec3 {
		return mgl32.Vec3{
			rng.Float32()*2 + 180,
			rng.Float32()*2 + 85,
			rng.Float32()*2 + 180,
		}
	})
}

func newClouds(rng *rand.Rand, count int, base func() mgl32.Vec3) *Clouds {
	c := &Clouds{Sprites: make([]Sprite, count)}
	for i := range count {
		p := base()
		for k := range 3 {
			p[k] += float32(math.Round(rng.Float64() * cloudJitter))
		}
		c.Sprites[i] = Sprite{
			Position: p,
			Scale:    CloudScale,
			Opacity:  CloudOpacity,
		}
	}
	return c
}

// Update spins every cloud sprite.
func (c *Clouds) Update() {
	for i := range c.Sprites {
		c.Sprites[i].Rotation += CloudSpin
	}
}

// Len returns the sprite count.
func (c *Clouds) Len() int { return len(c.Sprites) }
