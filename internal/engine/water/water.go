// Package water provides flat surface planes (ocean, lava, ice) as meshes.
package water

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/landscape/internal/engine/terrain"
)

// PlaneSpec describes a horizontal plane centered at Center.
type PlaneSpec struct {
	Name     string
	Size     [2]float32 // Extent along X and Z before rotation
	Segments [2]int     // Grid cells along X and Z
	Center   [3]float32
	Yaw      float32 // Rotation about +Y in radians
	Emissive bool
}

// Plane holds a built surface.
type Plane struct {
	Spec PlaneSpec
	Mesh *terrain.Mesh
}

// Level returns the plane's world Y.
func (p *Plane) Level() float32 { return p.Spec.Center[1] }

// Ocean returns the sea plane spanning the whole scene.
func Ocean() PlaneSpec {
	return PlaneSpec{
		Name:     "ocean",
		Size:     [2]float32{512, 512},
		Segments: [2]int{56, 56},
		Center:   [3]float32{0, 1.0, 0},
	}
}

// Lava returns the lava pool on top of the volcano.
func Lava() PlaneSpec {
	return PlaneSpec{
		Name:     "lava",
		Size:     [2]float32{15, 15},
		Segments: [2]int{33, 32},
		Center:   [3]float32{-130, 35, -85},
		Yaw:      mgl32.DegToRad(30),
		Emissive: true,
	}
}

// Ice returns the frozen lake in the winter area.
func Ice() PlaneSpec {
	return PlaneSpec{
		Name:     "ice",
		Size:     [2]float32{24, 24},
		Segments: [2]int{32, 32},
		Center:   [3]float32{188, 2.2, 178},
	}
}

// BuildPlane creates a subdivided plane mesh. Segment counts below one are
// raised to one.
func BuildPlane(spec PlaneSpec) *Plane {
	segX := max(spec.Segments[0], 1)
	segZ := max(spec.Segments[1], 1)
	spec.Segments = [2]int{segX, segZ}

	rot := mgl32.Rotate3DY(spec.Yaw)
	center := mgl32.Vec3(spec.Center)
	up := [3]float32{0, 1, 0}

	vertices := make([]terrain.Vertex, 0, (segX+1)*(segZ+1))
	bounds := terrain.Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for j := 0; j <= segZ; j++ {
		v := float32(j) / float32(segZ)
		for i := 0; i <= segX; i++ {
			u := float32(i) / float32(segX)
			local := mgl32.Vec3{(u - 0.5) * spec.Size[0], 0, (v - 0.5) * spec.Size[1]}
			pos := rot.Mul3x1(local).Add(center)

			for k := range 3 {
				bounds.Min[k] = min(bounds.Min[k], pos[k])
				bounds.Max[k] = max(bounds.Max[k], pos[k])
			}

			vertices = append(vertices, terrain.Vertex{
				Position: pos,
				Normal:   up,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	return &Plane{
		Spec: spec,
		Mesh: &terrain.Mesh{
			Vertices:  vertices,
			Indices:   terrain.GridIndices(segX, segZ),
			SegmentsX: segX,
			SegmentsZ: segZ,
			Bounds:    bounds,
		},
	}
}

// DefaultPlanes builds the ocean, lava and ice planes.
func DefaultPlanes() []*Plane {
	return []*Plane{
		BuildPlane(Ocean()),
		BuildPlane(Lava()),
		BuildPlane(Ice()),
	}
}
