package terrain

import (
	"fmt"
	"math"
)

// Terrain couples a heightmap with its world-space placement.
// It is read-only after New and safe for concurrent HeightAt calls.
type Terrain struct {
	heightmap *Heightmap
	params    Params
}

// New validates params and creates a terrain over the heightmap.
func New(hm *Heightmap, params Params) (*Terrain, error) {
	if hm == nil || hm.width <= 0 || hm.height <= 0 {
		return nil, ErrEmptyHeightmap
	}
	if !positiveFinite(params.Width) || !positiveFinite(params.Depth) {
		return nil, fmt.Errorf("%w: world size %vx%v", ErrInvalidParams, params.Width, params.Depth)
	}
	if !finite(params.MaxHeight) {
		return nil, fmt.Errorf("%w: max height %v", ErrInvalidParams, params.MaxHeight)
	}
	if params.SegmentsX < 0 || params.SegmentsZ < 0 {
		return nil, fmt.Errorf("%w: segments %dx%d", ErrInvalidParams, params.SegmentsX, params.SegmentsZ)
	}
	if params.SegmentsX == 0 {
		params.SegmentsX = DefaultSegments
	}
	if params.SegmentsZ == 0 {
		params.SegmentsZ = DefaultSegments
	}
	if !indexable(params.SegmentsX, params.SegmentsZ) {
		return nil, fmt.Errorf("%w: segments %dx%d exceed uint32 vertex indices", ErrInvalidParams, params.SegmentsX, params.SegmentsZ)
	}

	return &Terrain{heightmap: hm, params: params}, nil
}

// Params returns the effective parameters, with default segments resolved.
func (t *Terrain) Params() Params { return t.params }

// Heightmap returns the underlying heightmap.
func (t *Terrain) Heightmap() *Heightmap { return t.heightmap }

// HeightAt returns the world-space elevation at (x, z). Positions outside
// [0,Width]x[0,Depth] take the height of the nearest edge. Mesh vertices are
// placed with this same function, so the result matches the surface at
// every grid vertex.
func (t *Terrain) HeightAt(x, z float32) float32 {
	u := float64(x) / float64(t.params.Width)
	v := float64(z) / float64(t.params.Depth)
	return float32(t.heightmap.SampleUV(u, v) * float64(t.params.MaxHeight))
}

// Contains reports whether (x, z) lies within the nominal terrain extent.
func (t *Terrain) Contains(x, z float32) bool {
	return x >= 0 && x <= t.params.Width && z >= 0 && z <= t.params.Depth
}

// indexable reports whether every vertex of a segX x segZ grid fits a
// uint32 index.
func indexable(segX, segZ int) bool {
	if uint64(segX) >= math.MaxUint32 || uint64(segZ) >= math.MaxUint32 {
		return false
	}
	return uint64(segX+1)*uint64(segZ+1) <= math.MaxUint32
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func positiveFinite(v float32) bool {
	return finite(v) && v > 0
}
