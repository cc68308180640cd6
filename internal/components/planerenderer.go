package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/assets"
	"showroom/internal/engine"
)

// PlaneRenderer draws a flat Width x Length plane subdivided Segments times.
// raylib generates planes in the XZ plane already, so no extra rotation is
// applied to the GameObject.
type PlaneRenderer struct {
	engine.BaseComponent
	Width    float32
	Length   float32
	Segments int32
	Material *assets.Material

	model   rl.Model
	loaded  bool
	shading *Shading
}

func NewPlaneRenderer(width, length float32, segments int32, mat *assets.Material) *PlaneRenderer {
	return &PlaneRenderer{
		Width:    width,
		Length:   length,
		Segments: segments,
		Material: mat,
	}
}

func (p *PlaneRenderer) SetShading(s *Shading) {
	p.shading = s
}

func (p *PlaneRenderer) Draw() {
	g := p.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	if !p.loaded {
		mesh := rl.GenMeshPlane(p.Width, p.Length, int(p.Segments), int(p.Segments))
		p.model = rl.LoadModelFromMesh(mesh)
		p.loaded = true
	}

	if p.shading != nil && p.Material != nil {
		p.shading.Apply(p.Material, p.model.Materials)
	}
	p.model.Transform = worldMatrix(g)
	rl.DrawModel(p.model, rl.Vector3Zero(), 1.0, rl.White)
}

func (p *PlaneRenderer) Unload() {
	if !p.loaded {
		return
	}
	rl.UnloadModel(p.model)
	p.loaded = false
}
