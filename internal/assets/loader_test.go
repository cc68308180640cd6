package assets

import (
	"context"
	"image/color"
	"io"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoaderResolve(t *testing.T) {
	l := NewLoader("static", 2, quietLogger())
	defer l.Close()

	assert.Equal(t, filepath.Join("static", "textures", "metal.png"), l.Resolve("textures/metal.png"))
	assert.Equal(t, "/abs/metal.png", l.Resolve("/abs/metal.png"))
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "textures/normal.png", 8, 8, color.RGBA{B: 255, A: 255})
	l := NewLoader(dir, 2, quietLogger())
	defer l.Close()

	tex, err := l.LoadTexture("textures/normal.png").Wait(waitCtx(t))
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
	assert.False(t, tex.HDR)
	assert.Equal(t, WrapClamp, tex.WrapS)
	assert.False(t, tex.Uploaded())
}

func TestLoadTextureCached(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "metal.png", 2, 2, color.White)
	l := NewLoader(dir, 1, quietLogger())
	defer l.Close()

	a := l.LoadTexture("metal.png")
	b := l.LoadTexture("./metal.png")
	assert.Same(t, a, b)

	ta, err := a.Wait(waitCtx(t))
	require.NoError(t, err)
	tb, err := b.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Same(t, ta, tb)
}

func TestLoadTextureMissingResolvesWithError(t *testing.T) {
	l := NewLoader(t.TempDir(), 1, quietLogger())
	defer l.Close()

	tex, err := l.LoadTexture("nope.png").Wait(waitCtx(t))
	assert.Nil(t, tex)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadHDRRejectsOtherFormats(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "fake.hdr", 2, 2, color.White)
	l := NewLoader(dir, 1, quietLogger())
	defer l.Close()

	_, err := l.LoadHDR("fake.hdr").Wait(waitCtx(t))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// The same file is still a valid 2D texture.
	_, err = l.LoadTexture("fake.hdr").Wait(waitCtx(t))
	assert.NoError(t, err)
}

func TestLoadCubemap(t *testing.T) {
	dir := t.TempDir()
	var paths [CubeFaces]string
	names := []string{"px", "nx", "py", "ny", "pz", "nz"}
	for i, n := range names {
		size := 4
		if i == 2 {
			size = 2
		}
		writePNG(t, dir, "env/"+n+".png", size, size, color.RGBA{R: uint8(i * 40), A: 255})
		paths[i] = "env/" + n + ".png"
	}
	l := NewLoader(dir, 3, quietLogger())
	defer l.Close()

	cube, err := l.LoadCubemap(paths).Wait(waitCtx(t))
	require.NoError(t, err)

	assert.Equal(t, 4, cube.FaceSize())
	strip := cube.Strip()
	assert.Equal(t, 4, strip.Bounds().Dx())
	assert.Equal(t, 24, strip.Bounds().Dy())

	// Face 1 (-X) starts at row 4 and was filled with R=40.
	r, _, _, _ := strip.At(0, 4).RGBA()
	assert.Equal(t, uint32(40), r>>8)

	assert.Same(t, l.LoadCubemap(paths), l.LoadCubemap(paths))
}

func TestLoadCubemapFaceMissing(t *testing.T) {
	dir := t.TempDir()
	var paths [CubeFaces]string
	for i := range paths {
		paths[i] = filepath.Join("env", string(rune('a'+i))+".png")
		if i != 3 {
			writePNG(t, dir, paths[i], 2, 2, color.White)
		}
	}
	l := NewLoader(dir, 2, quietLogger())
	defer l.Close()

	_, err := l.LoadCubemap(paths).Wait(waitCtx(t))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadModelUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "car.obj", []byte("o car"))
	l := NewLoader(dir, 1, quietLogger())
	defer l.Close()

	_, err := l.LoadModel("car.obj").Wait(waitCtx(t))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadModelMissing(t *testing.T) {
	l := NewLoader(t.TempDir(), 1, quietLogger())
	defer l.Close()

	_, err := l.LoadModel("models/Car/body-test.glb").Wait(waitCtx(t))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadModelFromGLTFFile(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "car.gltf", []byte(`{
		"asset": {"version": "2.0"},
		"scene": 0,
		"scenes": [{"nodes": [0]}],
		"nodes": [
			{"name": "body", "children": [1]},
			{"name": "headlight"}
		]
	}`))
	l := NewLoader(dir, 1, quietLogger())
	defer l.Close()

	m, err := l.LoadModel("car.gltf").Wait(waitCtx(t))
	require.NoError(t, err)
	require.Len(t, m.Root.Children, 1)
	assert.Equal(t, "car", m.Root.Name)
	assert.Equal(t, "body", m.Root.Children[0].Name)
	assert.Equal(t, "headlight", m.Root.Children[0].Children[0].Name)

	again, err := l.LoadModel("car.gltf").Wait(waitCtx(t))
	require.NoError(t, err)
	assert.NotSame(t, m, again, "models are re-read on every load")
}

func TestLoaderCloseCancelsQueued(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2, color.White)
	l := NewLoader(dir, 1, quietLogger())

	// Hold the only slot so the next load queues.
	require.NoError(t, l.sem.Acquire(context.Background(), 1))
	f := l.LoadTexture("a.png")
	l.Close()

	_, err := f.Wait(waitCtx(t))
	assert.ErrorIs(t, err, context.Canceled)
	l.sem.Release(1)
}
