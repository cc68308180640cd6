package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"showroom/internal/engine"
)

// Camera is a perspective camera looking from its GameObject's world
// position toward Target. Projection is kept in sync with FOV, Aspect and
// the clip planes by UpdateProjection.
type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees
	Aspect     float32
	Near       float32
	Far        float32
	Target     rl.Vector3
	Projection mgl32.Mat4
}

func NewCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// SetAspect changes the aspect ratio and recomputes the projection matrix.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.UpdateProjection()
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) Position() rl.Vector3 {
	if g := c.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}

// ProjectionMatrix converts the column-major mgl32 matrix into raylib's layout.
func (c *Camera) ProjectionMatrix() rl.Matrix {
	p := c.Projection
	return rl.Matrix{
		M0: p[0], M4: p[4], M8: p[8], M12: p[12],
		M1: p[1], M5: p[5], M9: p[9], M13: p[13],
		M2: p[2], M6: p[6], M10: p[10], M14: p[14],
		M3: p[3], M7: p[7], M11: p[11], M15: p[15],
	}
}
