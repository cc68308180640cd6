package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"showroom/internal/assets"
	"showroom/internal/camera"
	"showroom/internal/components"
	"showroom/internal/config"
	"showroom/internal/engine"
)

const (
	FloorSize     = 6.0
	FloorSegments = 4
)

// FloorColor is the fixed color of the unlit ground plane.
var FloorColor = rl.NewColor(0x80, 0x80, 0x80, 0xff)

// World is the showroom scene: a camera, two lights, the floor and, once
// loaded, the model. It is owned by the render goroutine.
type World struct {
	Scene    *engine.Scene
	Camera   *components.Camera
	Orbit    *camera.Orbit
	Ambient  *components.AmbientLight
	Sun      *components.DirectionalLight
	Floor    *engine.GameObject
	Model    *engine.GameObject
	Viewport Viewport

	// ModelAttached fires after a model subtree joins the scene.
	ModelAttached engine.EventWithArg[*engine.GameObject]

	log *log.Logger
}

// New assembles the fixed part of the scene from cfg. It makes no GPU calls.
func New(cfg *config.Config, input camera.InputSource, logger *log.Logger) *World {
	if logger == nil {
		logger = log.StandardLogger()
	}
	w := &World{
		Scene: engine.NewScene("Showroom"),
		log:   logger,
		Viewport: Viewport{
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
			PixelRatio:    1,
			MaxPixelRatio: cfg.Window.MaxPixelRatio,
		},
	}

	w.createCamera(cfg.Camera, input)
	w.createLights()
	w.createFloor()

	w.Scene.Start()
	return w
}

func (w *World) createCamera(cfg config.CameraConfig, input camera.InputSource) {
	obj := engine.NewGameObject("Camera")
	obj.Tags = []string{"MainCamera"}
	obj.Transform.Position = rl.Vector3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}

	w.Camera = components.NewCamera(cfg.FOV, w.Viewport.Aspect(), cfg.Near, cfg.Far)
	obj.AddComponent(w.Camera)

	w.Orbit = camera.NewOrbit(input)
	w.Orbit.LookFrom(obj.Transform.Position, rl.Vector3Zero())
	obj.AddComponent(w.Orbit)

	w.Scene.AddGameObject(obj)
}

func (w *World) createLights() {
	ambient := engine.NewGameObject("AmbientLight")
	w.Ambient = components.NewAmbientLight(rl.White, 1)
	ambient.AddComponent(w.Ambient)
	w.Scene.AddGameObject(ambient)

	sun := engine.NewGameObject("DirectionalLight")
	sun.Transform.Position = rl.Vector3{X: 7, Y: 3, Z: -3}
	w.Sun = components.NewDirectionalLight(rl.White, 1)
	sun.AddComponent(w.Sun)
	w.Scene.AddGameObject(sun)
}

func (w *World) createFloor() {
	w.Floor = engine.NewGameObject("Floor")
	mat := assets.NewBasicMaterial("floor", FloorColor)
	w.Floor.AddComponent(components.NewPlaneRenderer(FloorSize, FloorSize, FloorSegments, mat))
	w.Scene.AddGameObject(w.Floor)
}

// AttachModel instantiates m and adds it to the scene, replacing the model
// attached before, if any.
func (w *World) AttachModel(m *assets.Model) *engine.GameObject {
	if w.Model != nil {
		w.detachModel()
	}
	root := Instantiate(m)
	w.Scene.AddGameObject(root)
	root.Start()
	w.Model = root

	w.log.WithField("path", m.Path).Info("World: model attached")
	w.ModelAttached.Invoke(root)
	return root
}

func (w *World) detachModel() {
	old := w.Model
	w.Scene.RemoveGameObject(old)
	old.Traverse(func(g *engine.GameObject) bool {
		for _, c := range g.Components() {
			if u, ok := c.(engine.Unloader); ok {
				u.Unload()
			}
		}
		return true
	})
	w.Model = nil
}

// Resize applies a new window size and device pixel ratio. It reports
// whether anything changed.
func (w *World) Resize(width, height int, dpr float32) bool {
	if !w.Viewport.Resize(width, height, dpr) {
		return false
	}
	w.Camera.SetAspect(w.Viewport.Aspect())
	fbw, fbh := w.Viewport.FramebufferSize()
	w.log.WithFields(log.Fields{
		"size":        []int{width, height},
		"framebuffer": []int{fbw, fbh},
		"pixelRatio":  w.Viewport.PixelRatio,
	}).Debug("World: resized")
	return true
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Unload frees GPU resources held by scene components.
func (w *World) Unload() {
	w.Scene.Traverse(func(g *engine.GameObject) bool {
		for _, c := range g.Components() {
			if u, ok := c.(engine.Unloader); ok {
				u.Unload()
			}
		}
		return true
	})
}
