package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Floor")

	scene.AddGameObject(obj)

	require.Len(t, scene.GameObjects, 1)
	assert.Same(t, obj, scene.GameObjects[0])
	assert.Same(t, scene, obj.Scene, "GameObject.Scene not set")
}

func TestSceneAddPropagatesToChildren(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Model")
	child := NewGameObject("body")
	root.AddChild(child)

	scene.AddGameObject(root)

	assert.Same(t, scene, child.Scene)
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	camera := NewGameObject("Camera")
	floor := NewGameObject("Floor")

	scene.AddGameObject(camera)
	scene.AddGameObject(floor)
	scene.RemoveGameObject(camera)

	require.Len(t, scene.GameObjects, 1)
	assert.Same(t, floor, scene.GameObjects[0], "wrong GameObject removed")
	assert.Nil(t, camera.Scene)
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Model")
	child := NewGameObject("headlight")
	parent.AddChild(child)
	scene.AddGameObject(parent)

	scene.RemoveGameObject(parent)

	assert.Empty(t, scene.GameObjects)
	visited := 0
	scene.Traverse(func(*GameObject) bool { visited++; return true })
	assert.Zero(t, visited, "child still reachable after parent removal")
	assert.Nil(t, child.Scene)
}

func TestSceneRemoveNestedChild(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Model")
	child := NewGameObject("wheel")
	parent.AddChild(child)
	scene.AddGameObject(parent)

	scene.RemoveGameObject(child)

	assert.Empty(t, parent.Children)
	assert.Nil(t, child.Parent)
	assert.Len(t, scene.GameObjects, 1)
}

func TestSceneTraverseOrder(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("a")
	b := NewGameObject("b")
	c := NewGameObject("c")
	d := NewGameObject("d")
	a.AddChild(b)
	b.AddChild(c)
	scene.AddGameObject(a)
	scene.AddGameObject(d)

	var names []string
	scene.Traverse(func(g *GameObject) bool {
		names = append(names, g.Name)
		return true
	})

	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
}

func TestSceneTraversePrune(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("a")
	b := NewGameObject("b")
	a.AddChild(b)
	scene.AddGameObject(a)

	var names []string
	scene.Traverse(func(g *GameObject) bool {
		names = append(names, g.Name)
		return false
	})

	assert.Equal(t, []string{"a"}, names)
}
