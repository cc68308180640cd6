package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"showroom/internal/assets"
	"showroom/internal/engine"
)

func TestCameraProjectionFollowsAspect(t *testing.T) {
	cam := NewCamera(75, 16.0/9.0, 0.1, 100)
	want := mgl32.Perspective(mgl32.DegToRad(75), 16.0/9.0, 0.1, 100)
	assert.True(t, cam.Projection.ApproxEqual(want))

	cam.SetAspect(1)
	assert.Equal(t, float32(1), cam.Aspect)
	assert.True(t, cam.Projection.ApproxEqual(mgl32.Perspective(mgl32.DegToRad(75), 1, 0.1, 100)))
}

func TestCameraProjectionMatrixLayout(t *testing.T) {
	cam := NewCamera(90, 2, 1, 10)
	m := cam.ProjectionMatrix()

	assert.Equal(t, cam.Projection[0], m.M0)
	assert.Equal(t, cam.Projection[5], m.M5)
	assert.Equal(t, cam.Projection[11], m.M11)
	assert.Equal(t, cam.Projection[14], m.M14)
	assert.Equal(t, float32(-1), m.M11, "perspective w row")
}

func TestCameraRaylibCamera(t *testing.T) {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{X: 0, Y: 2, Z: 0}
	cam := NewCamera(75, 1, 0.1, 100)
	obj.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	assert.Equal(t, rl.Vector3{X: 0, Y: 2, Z: 0}, rc.Position)
	assert.Equal(t, float32(75), rc.Fovy)
}

func TestDirectionalLightDirection(t *testing.T) {
	obj := engine.NewGameObject("Sun")
	obj.Transform.Position = rl.Vector3{X: 7, Y: 3, Z: -3}
	light := NewDirectionalLight(rl.White, 1)
	obj.AddComponent(light)

	dir := light.Direction()
	want := rl.Vector3Normalize(rl.Vector3{X: -7, Y: -3, Z: 3})
	assert.InDelta(t, want.X, dir.X, 1e-6)
	assert.InDelta(t, want.Y, dir.Y, 1e-6)
	assert.InDelta(t, want.Z, dir.Z, 1e-6)
}

func TestDirectionalLightDegenerate(t *testing.T) {
	light := NewDirectionalLight(rl.White, 1)
	assert.Equal(t, rl.Vector3{Y: -1}, light.Direction())
}

func TestLightColorFloat(t *testing.T) {
	ambient := NewAmbientLight(rl.NewColor(255, 0, 51, 255), 2)
	assert.InDeltaSlice(t, []float32{2, 0, 0.4, 1}, ambient.GetColorFloat(), 1e-6)
}

func TestMeshRendererMaterial(t *testing.T) {
	assert.Nil(t, NewMeshRenderer("empty").Material())

	paint := assets.NewStandardMaterial("paint")
	glass := assets.NewStandardMaterial("glass")
	mr := NewMeshRenderer("body", paint, glass)
	assert.Same(t, paint, mr.Material())
	assert.Len(t, mr.Materials, 2)
}

func TestModelRendererMaterialSlots(t *testing.T) {
	paint := assets.NewStandardMaterial("paint")
	glass := assets.NewStandardMaterial("glass")
	model := &assets.Model{Materials: []*assets.Material{paint, glass}}
	mr := NewModelRenderer(model)

	assert.Nil(t, mr.materialFor(0), "no default material in use")
	assert.Same(t, paint, mr.materialFor(1))
	assert.Same(t, glass, mr.materialFor(2))
	assert.Nil(t, mr.materialFor(3))

	model.Default = assets.NewStandardMaterial("default")
	assert.Same(t, model.Default, mr.materialFor(0))
}

func TestWorldMatrixComposesParents(t *testing.T) {
	parent := engine.NewGameObject("Model")
	parent.Transform.Position = rl.Vector3{X: 1}
	child := engine.NewGameObject("body")
	child.Transform.Position = rl.Vector3{Y: 2}
	parent.AddChild(child)

	p := rl.Vector3Transform(rl.Vector3{}, worldMatrix(child))
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 2, p.Y, 1e-6)
}

func TestPlaneBounds(t *testing.T) {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{X: 1}
	floor.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}
	plane := NewPlaneRenderer(6, 8, 1, nil)
	floor.AddComponent(plane)

	center, radius, known := plane.Bounds()
	assert.True(t, known)
	assert.Equal(t, rl.Vector3{X: 1}, center)
	assert.InDelta(t, 10, radius, 1e-5)
}

func TestModelBoundsUnknownBeforeUpload(t *testing.T) {
	obj := engine.NewGameObject("Model")
	mr := NewModelRenderer(&assets.Model{})
	obj.AddComponent(mr)

	_, _, known := mr.Bounds()
	assert.False(t, known)
}

func TestBindMapKeepsImportedTexture(t *testing.T) {
	imported := rl.MaterialMap{Texture: rl.Texture2D{ID: 7, Width: 4, Height: 4}}
	assert.True(t, bindMap(&imported, nil))
	assert.Equal(t, uint32(7), imported.Texture.ID)

	var empty rl.MaterialMap
	assert.False(t, bindMap(&empty, nil))
}
