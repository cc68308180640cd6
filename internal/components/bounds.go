package components

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/engine"
)

// Bounded is implemented by drawables that can report a world-space
// bounding sphere. known is false when the bounds are not available yet.
type Bounded interface {
	Bounds() (center rl.Vector3, radius float32, known bool)
}

// Bounds of the plane: a sphere through its corners.
func (p *PlaneRenderer) Bounds() (rl.Vector3, float32, bool) {
	g := p.GetGameObject()
	if g == nil {
		return rl.Vector3{}, 0, false
	}
	radius := math32.Hypot(p.Width, p.Length) / 2
	return g.WorldPosition(), radius * maxScale(g), true
}

// Bounds of the model, measured from its GPU geometry once it is uploaded.
func (m *ModelRenderer) Bounds() (rl.Vector3, float32, bool) {
	g := m.GetGameObject()
	if g == nil || m.Model == nil || !m.Model.Uploaded() {
		return rl.Vector3{}, 0, false
	}
	if !m.hasBounds {
		bb := rl.GetModelBoundingBox(m.Model.GPU())
		m.localCenter = rl.Vector3Scale(rl.Vector3Add(bb.Min, bb.Max), 0.5)
		m.localRadius = rl.Vector3Distance(bb.Min, bb.Max) / 2
		m.hasBounds = true
	}
	center := rl.Vector3Transform(m.localCenter, worldMatrix(g))
	return center, m.localRadius * maxScale(g), true
}

func maxScale(g *engine.GameObject) float32 {
	s := g.WorldScale()
	return math32.Max(math32.Abs(s.X), math32.Max(math32.Abs(s.Y), math32.Abs(s.Z)))
}
