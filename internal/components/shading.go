package components

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/assets"
)

// Shading binds assets.Material state to the lighting shader. Uniform
// locations are looked up once and cached.
type Shading struct {
	Shader rl.Shader
	locs   map[string]int32
}

func NewShading(shader rl.Shader) *Shading {
	s := &Shading{Shader: shader, locs: make(map[string]int32)}

	// Sampler names for the map slots raylib binds automatically in DrawMesh.
	// raylib binds the BRDF slot as a plain 2D texture, so the
	// equirectangular environment panorama rides in it.
	locs := unsafe.Slice(shader.Locs, rl.ShaderLocMapBrdf+1)
	locs[rl.ShaderLocMapNormal] = rl.GetShaderLocation(shader, "normalMap")
	locs[rl.ShaderLocMapMetalness] = rl.GetShaderLocation(shader, "metalnessMap")
	locs[rl.ShaderLocMapRoughness] = rl.GetShaderLocation(shader, "roughnessMap")
	locs[rl.ShaderLocMapHeight] = rl.GetShaderLocation(shader, "bumpMap")
	locs[rl.ShaderLocMapBrdf] = rl.GetShaderLocation(shader, "envMap")
	return s
}

// Loc returns the cached location of a uniform.
func (s *Shading) Loc(name string) int32 {
	if loc, ok := s.locs[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(s.Shader, name)
	s.locs[name] = loc
	return loc
}

func (s *Shading) SetFloat(name string, v float32) {
	rl.SetShaderValue(s.Shader, s.Loc(name), []float32{v}, rl.ShaderUniformFloat)
}

func (s *Shading) SetVec2(name string, v rl.Vector2) {
	rl.SetShaderValue(s.Shader, s.Loc(name), []float32{v.X, v.Y}, rl.ShaderUniformVec2)
}

func (s *Shading) SetVec3(name string, v rl.Vector3) {
	rl.SetShaderValue(s.Shader, s.Loc(name), []float32{v.X, v.Y, v.Z}, rl.ShaderUniformVec3)
}

func (s *Shading) SetVec4(name string, v []float32) {
	rl.SetShaderValue(s.Shader, s.Loc(name), v, rl.ShaderUniformVec4)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Apply copies m into the raylib material and sets the per-material
// uniforms. It must run right before the draw call that uses target.
func (s *Shading) Apply(m *assets.Material, target *rl.Material) {
	target.Shader = s.Shader
	maps := unsafe.Slice(target.Maps, rl.MapBrdf+1)

	maps[rl.MapAlbedo].Color = m.Color
	maps[rl.MapMetalness].Value = m.Metalness
	maps[rl.MapRoughness].Value = m.Roughness

	if m.Map != nil {
		maps[rl.MapAlbedo].Texture = m.Map.GPU()
	}
	hasNormal := bindMap(&maps[rl.MapNormal], m.NormalMap)
	hasMetalness := bindMap(&maps[rl.MapMetalness], m.MetalnessMap)
	hasRoughness := bindMap(&maps[rl.MapRoughness], m.RoughnessMap)
	hasBump := bindMap(&maps[rl.MapHeight], m.BumpMap)
	bindMap(&maps[rl.MapBrdf], m.EnvMap)

	s.SetFloat("unlit", boolf(!m.IsPhysical()))
	s.SetFloat("metalness", m.Metalness)
	s.SetFloat("roughness", m.Roughness)
	s.SetFloat("bumpScale", m.BumpScale)
	s.SetFloat("useNormalMap", boolf(hasNormal))
	s.SetFloat("useMetalnessMap", boolf(hasMetalness))
	s.SetFloat("useRoughnessMap", boolf(hasRoughness))
	s.SetFloat("useBumpMap", boolf(hasBump))
	s.SetFloat("useEnvMap", boolf(m.EnvMap != nil && m.EnvMap.Mapping == assets.MappingEquirectangularReflection))

	normalRepeat := rl.Vector2{X: 1, Y: 1}
	if m.NormalMap != nil {
		normalRepeat = m.NormalMap.Repeat
	}
	s.SetVec2("normalRepeat", normalRepeat)
}

// bindMap binds tex into slot. A nil tex leaves whatever raylib imported
// from the model file in place. It reports whether slot holds a texture.
func bindMap(slot *rl.MaterialMap, tex *assets.Texture) bool {
	if tex != nil {
		slot.Texture = tex.GPU()
	}
	return slot.Texture.ID != 0
}

func (s *Shading) Unload() {
	rl.UnloadShader(s.Shader)
}
