package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"

	"showroom/internal/engine"
)

const unlitExtension = "KHR_materials_unlit"

// ModelNode mirrors one glTF node. Mesh nodes carry the materials of their
// primitives in primitive order.
type ModelNode struct {
	Name      string
	Transform engine.Transform
	Mesh      bool
	Materials []*Material
	Children  []*ModelNode
}

// Model is a parsed glTF scene. Materials holds one entry per document
// material, so node materials that share an index share a pointer.
type Model struct {
	Path      string
	Root      *ModelNode
	Materials []*Material
	Default   *Material

	gpu      rl.Model
	uploaded bool
}

func isModelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return true
	}
	return false
}

func decodeModelFile(path string) (*Model, error) {
	if !isModelFile(path) {
		return nil, loadError(path, ErrUnsupportedFormat, nil)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadError(path, ErrNotFound, nil)
		}
		return nil, loadError(path, ErrDecode, err)
	}
	return ModelFromDocument(path, doc)
}

// ModelFromDocument converts the default scene of doc into a node tree.
// Documents that reference missing scenes, nodes, meshes or materials fail
// with ErrDecode.
func ModelFromDocument(path string, doc *gltf.Document) (*Model, error) {
	if err := checkIndices(doc); err != nil {
		return nil, loadError(path, ErrDecode, err)
	}
	m := &Model{Path: path}
	for i, gm := range doc.Materials {
		m.Materials = append(m.Materials, convertMaterial(i, gm))
	}

	m.Root = &ModelNode{
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Transform: identityTransform(),
	}
	for _, idx := range sceneRoots(doc) {
		m.Root.Children = append(m.Root.Children, m.convertNode(doc, idx, 0))
	}
	return m, nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// checkIndices validates every cross reference convertNode follows. The
// glTF decoder leaves them unchecked.
func checkIndices(doc *gltf.Document) error {
	if doc.Scene != nil && !inRange(*doc.Scene, len(doc.Scenes)) {
		return fmt.Errorf("default scene %d out of range", *doc.Scene)
	}
	for si, sc := range doc.Scenes {
		if sc == nil {
			return fmt.Errorf("scene %d is null", si)
		}
		for _, n := range sc.Nodes {
			if !inRange(n, len(doc.Nodes)) {
				return fmt.Errorf("scene %d: node %d out of range", si, n)
			}
		}
	}
	for ni, n := range doc.Nodes {
		if n == nil {
			return fmt.Errorf("node %d is null", ni)
		}
		for _, c := range n.Children {
			if !inRange(c, len(doc.Nodes)) {
				return fmt.Errorf("node %d: child %d out of range", ni, c)
			}
		}
		if n.Mesh != nil && !inRange(*n.Mesh, len(doc.Meshes)) {
			return fmt.Errorf("node %d: mesh %d out of range", ni, *n.Mesh)
		}
	}
	for mi, mesh := range doc.Meshes {
		if mesh == nil {
			return fmt.Errorf("mesh %d is null", mi)
		}
		for pi, prim := range mesh.Primitives {
			if prim == nil {
				return fmt.Errorf("mesh %d: primitive %d is null", mi, pi)
			}
			if prim.Material != nil && !inRange(*prim.Material, len(doc.Materials)) {
				return fmt.Errorf("mesh %d: material %d out of range", mi, *prim.Material)
			}
		}
	}
	for i, mat := range doc.Materials {
		if mat == nil {
			return fmt.Errorf("material %d is null", i)
		}
	}
	return nil
}

// glTF forbids cycles; the depth guard keeps a malformed file from recursing forever.
const maxNodeDepth = 256

func (m *Model) convertNode(doc *gltf.Document, idx, depth int) *ModelNode {
	gn := doc.Nodes[idx]
	n := &ModelNode{
		Name:      gn.Name,
		Transform: nodeTransform(gn),
	}

	if gn.Mesh != nil {
		n.Mesh = true
		for _, prim := range doc.Meshes[*gn.Mesh].Primitives {
			n.Materials = append(n.Materials, m.primitiveMaterial(prim))
		}
	}

	if depth >= maxNodeDepth {
		return n
	}
	for _, child := range gn.Children {
		n.Children = append(n.Children, m.convertNode(doc, child, depth+1))
	}
	return n
}

func (m *Model) primitiveMaterial(prim *gltf.Primitive) *Material {
	if prim.Material != nil {
		return m.Materials[*prim.Material]
	}
	// glTF's default material is metallic/rough with both factors at 1.
	if m.Default == nil {
		m.Default = NewStandardMaterial("default")
		m.Default.Metalness = 1
		m.Default.Roughness = 1
	}
	return m.Default
}

// MaterialIndex returns the position of mat in Materials, or -1 for the
// default material and foreign pointers.
func (m *Model) MaterialIndex(mat *Material) int {
	for i, candidate := range m.Materials {
		if candidate == mat {
			return i
		}
	}
	return -1
}

func sceneRoots(doc *gltf.Document) []int {
	var roots []int
	if doc.Scene != nil {
		return append(roots, doc.Scenes[*doc.Scene].Nodes...)
	}
	if len(doc.Scenes) > 0 {
		return append(roots, doc.Scenes[0].Nodes...)
	}

	// No scene: every node that is nobody's child is a root.
	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots
}

func convertMaterial(i int, gm *gltf.Material) *Material {
	name := gm.Name
	if name == "" {
		name = fmt.Sprintf("material_%d", i)
	}

	color := rl.White
	metalness, roughness := float32(1), float32(1)
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		c := pbr.BaseColorFactorOrDefault()
		color = rl.NewColor(unit8(c[0]), unit8(c[1]), unit8(c[2]), unit8(c[3]))
		metalness = float32(pbr.MetallicFactorOrDefault())
		roughness = float32(pbr.RoughnessFactorOrDefault())
	}

	if _, unlit := gm.Extensions[unlitExtension]; unlit {
		return NewBasicMaterial(name, color)
	}
	mat := NewStandardMaterial(name)
	mat.Color = color
	mat.Metalness = metalness
	mat.Roughness = roughness
	return mat
}

func nodeTransform(n *gltf.Node) engine.Transform {
	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()

	euler := rl.QuaternionToEuler(rl.Quaternion{
		X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3]),
	})
	return engine.Transform{
		Position: rl.Vector3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])},
		Rotation: rl.Vector3Scale(euler, rl.Rad2deg),
		Scale:    rl.Vector3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])},
	}
}

func identityTransform() engine.Transform {
	return engine.Transform{Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

func unit8[F float32 | float64](v F) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// GPU loads the model geometry through raylib on first call.
func (m *Model) GPU() rl.Model {
	if m.uploaded {
		return m.gpu
	}
	m.gpu = rl.LoadModel(m.Path)
	m.uploaded = true
	return m.gpu
}

func (m *Model) Uploaded() bool {
	return m.uploaded
}

func (m *Model) Unload() {
	if !m.uploaded {
		return
	}
	rl.UnloadModel(m.gpu)
	m.gpu = rl.Model{}
	m.uploaded = false
}
