// Package app drives the showroom: it opens the window, starts the asset
// loads, applies their results on the frame loop and renders every frame.
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"

	"showroom/internal/assets"
	"showroom/internal/camera"
	"showroom/internal/components"
	"showroom/internal/config"
	"showroom/internal/engine"
	"showroom/internal/world"
)

// App holds everything the frame loop touches. Fields are owned by the
// goroutine running Run; loader goroutines reach them only through queue.
type App struct {
	World   *world.World
	Elapsed float32

	cfg      *config.Config
	log      *log.Logger
	loader   *assets.Loader
	renderer *world.Renderer
	queue    Queue
	clock    *Clock
	panel    Panel
	status   *loadStatus

	ctx    context.Context
	cancel context.CancelFunc

	// patch starts as the configured values and gains textures as loads
	// complete; model reloads reuse it.
	patch   world.PatchInputs
	patched bool
	window  bool
}

func New(cfg *config.Config, logger *log.Logger) (*App, error) {
	return newApp(cfg, logger, camera.RaylibInput{}, nil)
}

func newApp(cfg *config.Config, logger *log.Logger, input camera.InputSource, now func() time.Time) (*App, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	patch, err := world.PatchInputsFromConfig(cfg.Patch)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		World:    world.New(cfg, input, logger),
		cfg:      cfg,
		log:      logger,
		loader:   assets.NewLoader(cfg.Assets.Root, runtime.NumCPU(), logger),
		renderer: world.NewRenderer(cfg.Render, logger),
		clock:    NewClock(now),
		panel:    Panel{Exposure: cfg.Render.Exposure, BumpScale: 1},
		status:   newLoadStatus(),
		ctx:      ctx,
		cancel:   cancel,
		patch:    patch,
	}, nil
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(a.cfg.Window.Width), int32(a.cfg.Window.Height), a.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.cfg.Window.TargetFPS))

	if err := a.renderer.Initialize(); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	a.window = true
	a.panel.applyStyle()
	defer a.shutdown()

	a.Start()
	a.resize(true)

	for !rl.WindowShouldClose() {
		a.update()
		a.resize(false)
		if rl.IsKeyPressed(rl.KeyF1) {
			a.panel.Toggle()
		}
		a.draw()
	}
	return nil
}

// Start begins every asset load. Results are applied by later updates.
func (a *App) Start() {
	loads := StartLoads(a.loader, a.cfg.Assets)
	track(a.status, &a.queue, "model", loads.Model)
	track(a.status, &a.queue, "panorama", loads.Env)
	track(a.status, &a.queue, "metalness", loads.Metalness)
	track(a.status, &a.queue, "normal", loads.Normal)
	track(a.status, &a.queue, "roughness", loads.Roughness)
	track(a.status, &a.queue, "bump", loads.Bump)
	Join(a.ctx, loads, &a.queue, a.log, a.onLoaded)

	if a.cfg.Render.Background == "cubemap" {
		cube := a.loader.LoadCubemap(a.cfg.Assets.Cubemap)
		track(a.status, &a.queue, "cubemap", cube)
		cube.Then(&a.queue, a.onCubemap)
	}

	if a.cfg.Assets.WatchModel {
		if err := a.loader.Watch(a.ctx, a.cfg.Assets.Model, a.reloadModel); err != nil {
			a.log.WithError(err).Warn("App: model hot reload disabled")
		}
	}
}

func (a *App) onLoaded(j Joined, err error) {
	if err != nil {
		a.log.WithError(err).Error("App: model unavailable, scene stays empty")
		return
	}
	if n := j.Textures.Normal; n != nil {
		n.SetRepeat(a.cfg.Assets.NormalRepeat, a.cfg.Assets.NormalRepeat)
	}
	a.patch.Env = j.Textures.Env
	a.patch.Metalness = j.Textures.Metalness
	a.patch.Normal = j.Textures.Normal
	a.patch.Roughness = j.Textures.Roughness
	a.patch.Bump = j.Textures.Bump
	a.patched = true

	a.attach(j.Model)
}

func (a *App) attach(m *assets.Model) {
	root := a.World.AttachModel(m)
	n := world.Patch(root, a.patch)
	a.applyBumpScale()
	a.log.WithFields(log.Fields{
		"model":     m.Path,
		"materials": n,
	}).Info("App: model patched")
}

// reloadModel runs on the watcher goroutine.
func (a *App) reloadModel() {
	f := a.loader.LoadModel(a.cfg.Assets.Model)
	f.Then(&a.queue, func(m *assets.Model, err error) {
		if err != nil {
			a.log.WithError(err).Warn("App: model reload failed, keeping previous")
			return
		}
		if !a.patched {
			a.log.Debug("App: reload before first load completed, ignored")
			return
		}
		a.attach(m)
	})
}

func (a *App) onCubemap(c *assets.Cubemap, err error) {
	if err != nil {
		a.log.WithError(err).Warn("App: cubemap unavailable, plain background")
		return
	}
	if !a.window {
		return
	}
	if err := a.renderer.SetSkybox(c); err != nil {
		a.log.WithError(err).Warn("App: skybox disabled")
	}
}

// update runs the non-drawing part of a frame.
func (a *App) update() {
	a.queue.Drain()
	elapsed, delta := a.clock.Tick()
	a.Elapsed = elapsed
	a.World.Update(delta)
}

func (a *App) resize(force bool) {
	if !force && !rl.IsWindowResized() {
		return
	}
	dpi := rl.GetWindowScaleDPI()
	changed := a.World.Resize(rl.GetScreenWidth(), rl.GetScreenHeight(), dpi.X)
	if changed || force {
		a.renderer.ResizeTarget(a.World.Viewport.FramebufferSize())
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	a.renderer.Render(a.World)
	if a.panel.Draw(a.status.Lines()) {
		a.renderer.Exposure = a.panel.Exposure
		a.applyBumpScale()
	}
	rl.EndDrawing()
}

// applyBumpScale copies the panel's bump scale onto every bump-mapped
// material of the model.
func (a *App) applyBumpScale() {
	if a.World.Model == nil {
		return
	}
	a.World.Model.Traverse(func(g *engine.GameObject) bool {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			return true
		}
		for _, mat := range mr.Materials {
			if mat.BumpMap != nil {
				mat.BumpScale = a.panel.BumpScale
			}
		}
		return true
	})
}

func (a *App) shutdown() {
	a.cancel()
	a.loader.Close()
	a.World.Unload()
	a.renderer.Unload()
	a.loader.Unload()
}
