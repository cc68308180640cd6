package world

import (
	"errors"
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"showroom/internal/assets"
	"showroom/internal/components"
	"showroom/internal/config"
	"showroom/internal/engine"
)

// ErrShader is returned when a shader fails to compile or link.
var ErrShader = errors.New("shader compile or link failed")

// shaded is implemented by renderers that draw with the lighting shader.
type shaded interface {
	SetShading(s *components.Shading)
}

type Renderer struct {
	Exposure float32

	cfg     config.RenderConfig
	shading *components.Shading
	skybox  rl.Model
	hasSky  bool
	target  rl.RenderTexture2D
	hasRT   bool
	log     *log.Logger
}

func NewRenderer(cfg config.RenderConfig, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Renderer{
		Exposure: cfg.Exposure,
		cfg:      cfg,
		log:      logger,
	}
}

// Initialize loads the lighting shader. It needs an open window.
func (r *Renderer) Initialize() error {
	shader := rl.LoadShader(r.cfg.VertexShader, r.cfg.FragmentShader)
	if !rl.IsShaderValid(shader) {
		return fmt.Errorf("load %s, %s: %w", r.cfg.VertexShader, r.cfg.FragmentShader, ErrShader)
	}
	r.shading = components.NewShading(shader)
	r.log.WithField("exposure", r.Exposure).Info("Renderer: lighting shader ready")
	return nil
}

// SetSkybox draws cube as the scene background from now on.
func (r *Renderer) SetSkybox(cube *assets.Cubemap) error {
	vs, fs := r.cfg.SkyboxVertex, r.cfg.SkyboxFragment
	shader := rl.LoadShader(vs, fs)
	if !rl.IsShaderValid(shader) {
		return fmt.Errorf("load %s, %s: %w", vs, fs, ErrShader)
	}
	locs := unsafe.Slice(shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMapCubemap] = rl.GetShaderLocation(shader, "environmentMap")

	r.unloadSkybox()
	r.skybox = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	r.skybox.Materials.Shader = shader
	rl.SetMaterialTexture(r.skybox.Materials, rl.MapCubemap, cube.GPU())
	r.hasSky = true
	r.log.WithField("faceSize", cube.FaceSize()).Info("Renderer: skybox ready")
	return nil
}

func (r *Renderer) updateShaderUniforms(w *World) {
	s := r.shading
	s.SetVec3("lightDir", w.Sun.Direction())
	s.SetVec4("lightColor", w.Sun.GetColorFloat())
	s.SetVec4("ambient", w.Ambient.GetColorFloat())
	s.SetVec3("viewPos", w.Camera.Position())
	s.SetFloat("exposure", r.Exposure)
}

// ResizeTarget recreates the offscreen target at the framebuffer size.
func (r *Renderer) ResizeTarget(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.hasRT {
		rl.UnloadRenderTexture(r.target)
	}
	r.target = rl.LoadRenderTexture(int32(width), int32(height))
	rl.SetTextureFilter(r.target.Texture, rl.FilterBilinear)
	r.hasRT = true
}

// Render draws the world from its camera. Call it between BeginDrawing and
// EndDrawing. With a target set, the scene is drawn offscreen at the
// framebuffer size and scaled onto the window.
func (r *Renderer) Render(w *World) {
	if !r.hasRT {
		r.renderScene(w)
		return
	}

	rl.BeginTextureMode(r.target)
	r.renderScene(w)
	rl.EndTextureMode()

	tex := r.target.Texture
	rl.ClearBackground(rl.Black)
	rl.DrawTexturePro(
		tex,
		rl.Rectangle{Width: float32(tex.Width), Height: float32(-tex.Height)},
		rl.Rectangle{Width: float32(w.Viewport.Width), Height: float32(w.Viewport.Height)},
		rl.Vector2{},
		0,
		rl.White,
	)
}

func (r *Renderer) renderScene(w *World) {
	rl.ClearBackground(rl.Black)
	if r.shading == nil {
		return
	}

	rl.BeginMode3D(w.Camera.GetRaylibCamera())
	rl.SetMatrixProjection(w.Camera.ProjectionMatrix())

	if r.hasSky {
		rl.DisableBackfaceCulling()
		rl.DisableDepthMask()
		rl.DrawModel(r.skybox, rl.Vector3Zero(), 1.0, rl.White)
		rl.EnableDepthMask()
		rl.EnableBackfaceCulling()
	}

	r.updateShaderUniforms(w)
	frustum := CameraFrustum(w.Camera)
	r.drawScene(w.Scene, &frustum)

	rl.EndMode3D()
}

func (r *Renderer) drawScene(scene *engine.Scene, frustum *Frustum) {
	scene.Traverse(func(g *engine.GameObject) bool {
		if !g.Active {
			return false
		}
		for _, c := range g.Components() {
			if s, ok := c.(shaded); ok {
				s.SetShading(r.shading)
			}
			d, ok := c.(engine.Drawable)
			if !ok {
				continue
			}
			if b, ok := c.(components.Bounded); ok {
				if center, radius, known := b.Bounds(); known && !frustum.ContainsSphere(center, radius) {
					continue
				}
			}
			d.Draw()
		}
		return true
	})
}

func (r *Renderer) unloadSkybox() {
	if !r.hasSky {
		return
	}
	rl.UnloadShader(r.skybox.Materials.Shader)
	rl.UnloadModel(r.skybox)
	r.hasSky = false
}

func (r *Renderer) Unload() {
	r.unloadSkybox()
	if r.hasRT {
		rl.UnloadRenderTexture(r.target)
		r.hasRT = false
	}
	if r.shading != nil {
		r.shading.Unload()
		r.shading = nil
	}
}
