package assets

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

// Mapping selects how a texture is projected when sampled.
type Mapping int

const (
	MappingUV Mapping = iota
	MappingEquirectangularReflection
	MappingCubeReflection
)

// Texture is a decoded image plus its sampling parameters. The GPU copy is
// created on first use and must only be touched from the render goroutine.
type Texture struct {
	Path    string
	Image   image.Image
	HDR     bool
	WrapS   WrapMode
	WrapT   WrapMode
	Repeat  rl.Vector2
	Mapping Mapping

	gpu      rl.Texture2D
	uploaded bool
}

func NewTexture(path string, img image.Image) *Texture {
	return &Texture{
		Path:   path,
		Image:  img,
		Repeat: rl.Vector2{X: 1, Y: 1},
	}
}

// SetRepeat tiles the texture u by v times and switches both axes to repeat.
func (t *Texture) SetRepeat(u, v float32) {
	t.Repeat = rl.Vector2{X: u, Y: v}
	t.WrapS = WrapRepeat
	t.WrapT = WrapRepeat
}

func (t *Texture) Size() (width, height int) {
	if t.Image == nil {
		return 0, 0
	}
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// GPU uploads the image on first call and returns the raylib handle.
func (t *Texture) GPU() rl.Texture2D {
	if t.uploaded {
		return t.gpu
	}
	img := rl.NewImageFromImage(t.Image)
	t.gpu = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	rl.GenTextureMipmaps(&t.gpu)
	rl.SetTextureFilter(t.gpu, rl.FilterTrilinear)
	rl.SetTextureWrap(t.gpu, raylibWrap(t.WrapS))
	t.uploaded = true
	return t.gpu
}

func (t *Texture) Uploaded() bool {
	return t.uploaded
}

func (t *Texture) Unload() {
	if !t.uploaded {
		return
	}
	rl.UnloadTexture(t.gpu)
	t.gpu = rl.Texture2D{}
	t.uploaded = false
}

func raylibWrap(w WrapMode) rl.TextureWrapMode {
	switch w {
	case WrapRepeat:
		return rl.WrapRepeat
	case WrapMirror:
		return rl.WrapMirrorRepeat
	default:
		return rl.WrapClamp
	}
}
