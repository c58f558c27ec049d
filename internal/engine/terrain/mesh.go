package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildMesh creates the terrain surface mesh.
// The result depends only on the terrain's heightmap and params.
func BuildMesh(t *Terrain) *Mesh {
	segX := t.params.SegmentsX
	segZ := t.params.SegmentsZ
	cols := segX + 1

	vertices := make([]Vertex, 0, cols*(segZ+1))

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for j := 0; j <= segZ; j++ {
		v := float32(j) / float32(segZ)
		z := v * t.params.Depth
		for i := 0; i <= segX; i++ {
			u := float32(i) / float32(segX)
			x := u * t.params.Width

			pos := [3]float32{x, t.HeightAt(x, z), z}
			updateBounds(&bounds, pos)

			vertices = append(vertices, Vertex{
				Position: pos,
				TexCoord: [2]float32{u, v},
			})
		}
	}

	indices := GridIndices(segX, segZ)
	ComputeNormals(vertices, indices)

	return &Mesh{
		Vertices:  vertices,
		Indices:   indices,
		SegmentsX: segX,
		SegmentsZ: segZ,
		Bounds:    bounds,
	}
}

// GridIndices returns the index buffer for a (segX+1)x(segZ+1) vertex grid
// laid out row by row along X. Each cell becomes two triangles wound
// counter-clockwise when seen from +Y.
func GridIndices(segX, segZ int) []uint32 {
	cols := uint32(segX + 1)
	indices := make([]uint32, 0, segX*segZ*6)

	for j := range segZ {
		for i := range segX {
			a := uint32(j)*cols + uint32(i) // (i, j)
			b := a + 1                      // (i+1, j)
			c := a + cols                   // (i, j+1)
			d := c + 1                      // (i+1, j+1)

			indices = append(indices,
				a, c, b,
				b, c, d,
			)
		}
	}

	return indices
}

// ComputeNormals sets each vertex normal to the normalized sum of the unit
// face normals of every triangle that uses it.
func ComputeNormals(vertices []Vertex, indices []uint32) {
	sums := make([]mgl32.Vec3, len(vertices))

	for k := 0; k+2 < len(indices); k += 3 {
		i0, i1, i2 := indices[k], indices[k+1], indices[k+2]
		p0 := mgl32.Vec3(vertices[i0].Position)
		p1 := mgl32.Vec3(vertices[i1].Position)
		p2 := mgl32.Vec3(vertices[i2].Position)

		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Len() < 1e-12 {
			continue // degenerate
		}
		n = n.Normalize()

		sums[i0] = sums[i0].Add(n)
		sums[i1] = sums[i1].Add(n)
		sums[i2] = sums[i2].Add(n)
	}

	for i := range vertices {
		vertices[i].Normal = normalize(sums[i])
	}
}

func normalize(v mgl32.Vec3) [3]float32 {
	if v.Len() < 0.0001 {
		return [3]float32{0, 1, 0}
	}
	return v.Normalize()
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := range 3 {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
