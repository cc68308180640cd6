package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"showroom/internal/assets"
	"showroom/internal/config"
	"showroom/internal/world"
)

// Loads are the futures the model patch waits for.
type Loads struct {
	Model     *assets.Future[*assets.Model]
	Env       *assets.Future[*assets.Texture]
	Metalness *assets.Future[*assets.Texture]
	Normal    *assets.Future[*assets.Texture]
	Roughness *assets.Future[*assets.Texture]
	Bump      *assets.Future[*assets.Texture]
}

// StartLoads kicks off every load the patch needs. All of them run at once.
func StartLoads(l *assets.Loader, cfg config.AssetsConfig) Loads {
	return Loads{
		Model:     l.LoadModel(cfg.Model),
		Env:       l.LoadHDR(cfg.PanoramaPath()),
		Metalness: l.LoadTexture(cfg.Metalness),
		Normal:    l.LoadTexture(cfg.Normal),
		Roughness: l.LoadTexture(cfg.Roughness),
		Bump:      l.LoadTexture(cfg.Bump),
	}
}

// Joined is what the gate hands to the frame loop once every load is done.
// Textures whose load failed are nil.
type Joined struct {
	Model    *assets.Model
	Textures world.PatchInputs
}

// Join waits for all loads, then posts done to d exactly once. err is
// non-nil only when the model failed; texture failures are logged and
// leave their field nil. If ctx ends first, done is never called.
func Join(ctx context.Context, loads Loads, d assets.Dispatcher, logger *log.Logger, done func(Joined, error)) {
	go func() {
		var (
			joined Joined
			g      errgroup.Group
		)

		g.Go(func() error {
			m, err := loads.Model.Wait(ctx)
			if err != nil {
				return fmt.Errorf("model %s: %w", loads.Model.Path(), err)
			}
			joined.Model = m
			return nil
		})

		optional := []struct {
			name string
			f    *assets.Future[*assets.Texture]
			dst  **assets.Texture
		}{
			{"env", loads.Env, &joined.Textures.Env},
			{"metalness", loads.Metalness, &joined.Textures.Metalness},
			{"normal", loads.Normal, &joined.Textures.Normal},
			{"roughness", loads.Roughness, &joined.Textures.Roughness},
			{"bump", loads.Bump, &joined.Textures.Bump},
		}
		for _, o := range optional {
			g.Go(func() error {
				tex, err := o.f.Wait(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					logger.WithError(err).WithFields(log.Fields{
						"slot": o.name,
						"path": o.f.Path(),
					}).Warn("Loads: texture unavailable, slot left empty")
					return nil
				}
				*o.dst = tex
				return nil
			})
		}

		err := g.Wait()
		if ctx.Err() != nil {
			return
		}
		d.Post(func() { done(joined, err) })
	}()
}
