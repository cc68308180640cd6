package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/engine"
)

// DirectionalLight shines from its GameObject's world position toward
// Target, like a sun placed at that position.
type DirectionalLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Target    rl.Vector3
}

func NewDirectionalLight(color rl.Color, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Intensity: intensity,
	}
}

// Direction is the normalized direction light travels in.
func (l *DirectionalLight) Direction() rl.Vector3 {
	pos := rl.Vector3Zero()
	if g := l.GetGameObject(); g != nil {
		pos = g.WorldPosition()
	}
	dir := rl.Vector3Subtract(l.Target, pos)
	if rl.Vector3Length(dir) == 0 {
		return rl.Vector3{X: 0, Y: -1, Z: 0}
	}
	return rl.Vector3Normalize(dir)
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}

// AmbientLight lights every surface equally.
type AmbientLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
}

func NewAmbientLight(color rl.Color, intensity float32) *AmbientLight {
	return &AmbientLight{
		Color:     color,
		Intensity: intensity,
	}
}

func (l *AmbientLight) GetColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}

func colorFloat(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
		1.0,
	}
}
