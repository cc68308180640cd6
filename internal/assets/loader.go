package assets

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Loader decodes assets on background goroutines and caches image results
// by path. At most maxParallel decodes run at once.
type Loader struct {
	root   string
	log    *log.Logger
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	textures map[string]*Future[*Texture]
	cubemaps map[[CubeFaces]string]*Future[*Cubemap]
	models   []*Model
}

func NewLoader(root string, maxParallel int, logger *log.Logger) *Loader {
	if maxParallel < 1 {
		maxParallel = 1
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		root:     root,
		log:      logger,
		sem:      semaphore.NewWeighted(int64(maxParallel)),
		ctx:      ctx,
		cancel:   cancel,
		textures: make(map[string]*Future[*Texture]),
		cubemaps: make(map[[CubeFaces]string]*Future[*Cubemap]),
	}
}

// Resolve maps an asset path onto the loader root. Absolute paths pass through.
func (l *Loader) Resolve(path string) string {
	if filepath.IsAbs(path) || l.root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(l.root, path)
}

// LoadTexture starts decoding a 2D image. Repeated calls for the same path
// return the same future.
func (l *Loader) LoadTexture(path string) *Future[*Texture] {
	return l.loadImage(l.Resolve(path), false)
}

// LoadHDR starts decoding a Radiance panorama. Any other format resolves
// with ErrUnsupportedFormat.
func (l *Loader) LoadHDR(path string) *Future[*Texture] {
	return l.loadImage(l.Resolve(path), true)
}

func (l *Loader) loadImage(full string, wantHDR bool) *Future[*Texture] {
	key := full
	if wantHDR {
		key += "#hdr"
	}

	l.mu.Lock()
	if f, ok := l.textures[key]; ok {
		l.mu.Unlock()
		return f
	}
	f := newFuture[*Texture](full)
	l.textures[key] = f
	l.mu.Unlock()

	go l.run(full, func() (any, error) {
		img, format, err := decodeImageFile(full)
		if err != nil {
			return nil, err
		}
		isHDR := format == formatHDR
		if wantHDR && !isHDR {
			return nil, loadError(full, ErrUnsupportedFormat, errors.New("not a radiance file"))
		}
		tex := NewTexture(full, img)
		tex.HDR = isHDR
		return tex, nil
	}, func(v any, err error) {
		tex, _ := v.(*Texture)
		f.resolve(tex, err)
	})
	return f
}

// LoadCubemap loads six faces in +X -X +Y -Y +Z -Z order.
func (l *Loader) LoadCubemap(paths [CubeFaces]string) *Future[*Cubemap] {
	var key [CubeFaces]string
	for i, p := range paths {
		key[i] = l.Resolve(p)
	}

	l.mu.Lock()
	if f, ok := l.cubemaps[key]; ok {
		l.mu.Unlock()
		return f
	}
	f := newFuture[*Cubemap](key[0])
	l.cubemaps[key] = f
	l.mu.Unlock()

	faces := make([]*Future[*Texture], CubeFaces)
	for i, p := range key {
		faces[i] = l.loadImage(p, false)
	}

	go func() {
		cube := &Cubemap{Paths: key}
		g, ctx := errgroup.WithContext(l.ctx)
		for i, face := range faces {
			g.Go(func() error {
				tex, err := face.Wait(ctx)
				if err != nil {
					return err
				}
				cube.Faces[i] = tex.Image
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			l.log.WithError(err).Warn("Assets: cubemap incomplete")
			f.resolve(nil, err)
			return
		}
		l.log.WithField("size", cube.FaceSize()).Debug("Assets: cubemap ready")
		f.resolve(cube, nil)
	}()
	return f
}

// LoadModel parses a glTF/GLB file into a node tree. Models are not cached:
// each call reads the file again so a changed file produces a fresh tree.
func (l *Loader) LoadModel(path string) *Future[*Model] {
	full := l.Resolve(path)
	f := newFuture[*Model](full)

	go l.run(full, func() (any, error) {
		return decodeModelFile(full)
	}, func(v any, err error) {
		m, _ := v.(*Model)
		if m != nil {
			l.mu.Lock()
			l.models = append(l.models, m)
			l.mu.Unlock()
		}
		f.resolve(m, err)
	})
	return f
}

func (l *Loader) run(path string, decode func() (any, error), done func(any, error)) {
	entry := l.log.WithField("path", path)
	if err := l.sem.Acquire(l.ctx, 1); err != nil {
		done(nil, err)
		return
	}
	start := time.Now()
	v, err := decode()
	l.sem.Release(1)

	if err != nil {
		entry.WithError(err).Warn("Assets: load failed")
	} else {
		entry.WithField("took", time.Since(start)).Debug("Assets: loaded")
	}
	done(v, err)
}

// Close abandons decodes still waiting for a slot; their futures resolve
// with context.Canceled.
func (l *Loader) Close() {
	l.cancel()
}

// Unload frees every GPU resource created from loaded assets. Call it on
// the render goroutine.
func (l *Loader) Unload() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, f := range l.textures {
		if f.Ready() && f.val != nil {
			f.val.Unload()
		}
	}
	for _, f := range l.cubemaps {
		if f.Ready() && f.val != nil {
			f.val.Unload()
		}
	}
	for _, m := range l.models {
		m.Unload()
	}
}
