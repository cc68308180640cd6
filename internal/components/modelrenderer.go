package components

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/assets"
	"showroom/internal/engine"
)

// ModelRenderer draws an imported model at its GameObject's transform.
// raylib's glTF importer puts its default material at index 0 and document
// material i at index i+1; Draw uses the same mapping to find the shared
// assets.Material for each mesh.
type ModelRenderer struct {
	engine.BaseComponent
	Model   *assets.Model
	shading *Shading

	localCenter rl.Vector3
	localRadius float32
	hasBounds   bool
}

func NewModelRenderer(model *assets.Model) *ModelRenderer {
	return &ModelRenderer{Model: model}
}

func (m *ModelRenderer) SetShading(s *Shading) {
	m.shading = s
}

// materialFor maps a raylib material slot back to the shared material.
func (m *ModelRenderer) materialFor(slot int) *assets.Material {
	if slot <= 0 {
		return m.Model.Default
	}
	if slot-1 < len(m.Model.Materials) {
		return m.Model.Materials[slot-1]
	}
	return nil
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Model == nil {
		return
	}

	model := m.Model.GPU()
	if model.MeshCount == 0 {
		return
	}
	transform := rl.MatrixMultiply(model.Transform, worldMatrix(g))

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	meshMaterial := unsafe.Slice(model.MeshMaterial, model.MeshCount)
	materials := unsafe.Slice(model.Materials, model.MaterialCount)

	for i, mesh := range meshes {
		slot := int(meshMaterial[i])
		if slot >= len(materials) {
			slot = 0
		}
		target := &materials[slot]
		if mat := m.materialFor(slot); mat != nil && m.shading != nil {
			m.shading.Apply(mat, target)
		}
		rl.DrawMesh(mesh, *target, transform)
	}
}

// worldMatrix composes the local matrices from the root down to g.
func worldMatrix(g *engine.GameObject) rl.Matrix {
	local := g.Transform.LocalMatrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, worldMatrix(g.Parent))
}

func (m *ModelRenderer) Unload() {
	if m.Model != nil {
		m.Model.Unload()
	}
	m.hasBounds = false
}
