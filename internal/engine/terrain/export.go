package terrain

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Part is a named mesh placed in an exported scene.
type Part struct {
	Name        string
	Mesh        *Mesh
	Translation [3]float32 // Node offset in the scene
}

// NewDocument builds a glTF document with one node per part. Parts with a
// nil or empty mesh are skipped.
func NewDocument(parts ...Part) *gltf.Document {
	doc := gltf.NewDocument()

	for _, p := range parts {
		if p.Mesh == nil || len(p.Mesh.Vertices) == 0 {
			continue
		}

		attrs := map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, p.Mesh.Positions()),
			gltf.NORMAL:     modeler.WriteNormal(doc, p.Mesh.Normals()),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, p.Mesh.TexCoords()),
		}
		indices := modeler.WriteIndices(doc, p.Mesh.Indices)

		meshIdx := len(doc.Meshes)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: p.Name,
			Primitives: []*gltf.Primitive{{
				Attributes: attrs,
				Indices:    gltf.Index(indices),
			}},
		})

		nodeIdx := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: p.Name,
			Mesh: gltf.Index(meshIdx),
			Translation: [3]float64{
				float64(p.Translation[0]),
				float64(p.Translation[1]),
				float64(p.Translation[2]),
			},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, nodeIdx)
	}

	return doc
}

// ExportGLTF writes parts to path. A ".gltf" extension produces JSON with
// embedded buffers; anything else produces binary glTF (.glb).
func ExportGLTF(path string, parts ...Part) error {
	doc := NewDocument(parts...)
	if len(doc.Meshes) == 0 {
		return fmt.Errorf("export %s: nothing to export", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".gltf") {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
		if err := gltf.Save(doc, path); err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return nil
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
