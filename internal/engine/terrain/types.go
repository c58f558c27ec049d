// Package terrain builds triangulated ground meshes from grayscale heightmaps
// and answers height queries against them.
package terrain

import "errors"

// DefaultSegments is the grid resolution used when Params leaves it at zero.
const DefaultSegments = 128

var (
	// ErrEmptyHeightmap is returned for heightmaps without any samples.
	ErrEmptyHeightmap = errors.New("terrain: heightmap has no samples")
	// ErrInvalidParams is returned when terrain dimensions or resolution are unusable.
	ErrInvalidParams = errors.New("terrain: invalid parameters")
)

// Params configures terrain construction. Values are fixed once a Terrain is built.
type Params struct {
	Width     float32 // World extent along X
	Depth     float32 // World extent along Z
	MaxHeight float32 // Elevation of a fully white sample
	SegmentsX int     // Grid cells along X (0 = DefaultSegments)
	SegmentsZ int     // Grid cells along Z (0 = DefaultSegments)
}

// Vertex represents a terrain mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds renderer-neutral triangle data.
// Indices are counter-clockwise when viewed from above (+Y).
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	SegmentsX int
	SegmentsZ int
	Bounds    Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles described by the index buffer.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Positions returns a copy of the vertex positions.
func (m *Mesh) Positions() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i := range m.Vertices {
		out[i] = m.Vertices[i].Position
	}
	return out
}

// Normals returns a copy of the vertex normals.
func (m *Mesh) Normals() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i := range m.Vertices {
		out[i] = m.Vertices[i].Normal
	}
	return out
}

// TexCoords returns a copy of the vertex texture coordinates.
func (m *Mesh) TexCoords() [][2]float32 {
	out := make([][2]float32, len(m.Vertices))
	for i := range m.Vertices {
		out[i] = m.Vertices[i].TexCoord
	}
	return out
}
