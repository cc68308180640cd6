package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"showroom/internal/components"
	"showroom/internal/engine"
)

func testCamera(pos rl.Vector3) *components.Camera {
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = pos
	cam := components.NewCamera(75, 1, 0.1, 100)
	obj.AddComponent(cam)
	return cam
}

func TestFrustumContainsTarget(t *testing.T) {
	f := CameraFrustum(testCamera(rl.Vector3{Z: 5}))

	assert.True(t, f.ContainsPoint(rl.Vector3Zero()))
	assert.True(t, f.ContainsPoint(rl.Vector3{X: 1, Y: 1}))
}

func TestFrustumRejectsOutside(t *testing.T) {
	f := CameraFrustum(testCamera(rl.Vector3{Z: 5}))

	assert.False(t, f.ContainsPoint(rl.Vector3{Z: 10}), "behind the camera")
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: -200}), "beyond the far plane")
	assert.False(t, f.ContainsSphere(rl.Vector3{X: 1000}, 1), "far to the side")
}

func TestFrustumSphereStraddlingEdge(t *testing.T) {
	f := CameraFrustum(testCamera(rl.Vector3{Z: 5}))

	// Just outside the right plane at the origin's depth, but the radius
	// reaches back in.
	assert.False(t, f.ContainsSphere(rl.Vector3{X: 5}, 0.5))
	assert.True(t, f.ContainsSphere(rl.Vector3{X: 5}, 2))
}
