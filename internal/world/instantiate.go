package world

import (
	"showroom/internal/assets"
	"showroom/internal/components"
	"showroom/internal/engine"
)

// Instantiate turns a parsed model into a GameObject subtree. Mesh nodes get
// a MeshRenderer referencing the model's shared materials; the root gets the
// ModelRenderer that draws the whole model.
func Instantiate(m *assets.Model) *engine.GameObject {
	root := instantiateNode(m.Root)
	root.Tags = append(root.Tags, "Model")
	root.AddComponent(components.NewModelRenderer(m))
	return root
}

func instantiateNode(n *assets.ModelNode) *engine.GameObject {
	g := engine.NewGameObject(n.Name)
	g.Transform = n.Transform
	if n.Mesh {
		g.AddComponent(components.NewMeshRenderer(n.Name, n.Materials...))
	}
	for _, child := range n.Children {
		g.AddChild(instantiateNode(child))
	}
	return g
}
