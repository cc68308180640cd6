package components

import (
	"showroom/internal/assets"
	"showroom/internal/engine"
)

// MeshRenderer marks a node as a mesh and references the materials of its
// primitives. Geometry for imported models lives on the GPU model owned by
// the ModelRenderer at the model root; this component only carries the
// material references that drawing reads.
type MeshRenderer struct {
	engine.BaseComponent
	Mesh      string
	Materials []*assets.Material
}

func NewMeshRenderer(mesh string, materials ...*assets.Material) *MeshRenderer {
	return &MeshRenderer{
		Mesh:      mesh,
		Materials: materials,
	}
}

// Material returns the first primitive's material, or nil.
func (m *MeshRenderer) Material() *assets.Material {
	if len(m.Materials) == 0 {
		return nil
	}
	return m.Materials[0]
}
