package assets

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/draw"
)

// Face order of a cubemap: +X, -X, +Y, -Y, +Z, -Z.
const CubeFaces = 6

// Cubemap is six square faces of a viewer-centred environment.
type Cubemap struct {
	Paths [CubeFaces]string
	Faces [CubeFaces]image.Image

	gpu      rl.Texture2D
	uploaded bool
}

// FaceSize is the edge length all faces are normalised to: the largest face.
func (c *Cubemap) FaceSize() int {
	size := 0
	for _, f := range c.Faces {
		if f == nil {
			continue
		}
		b := f.Bounds()
		size = max(size, b.Dx(), b.Dy())
	}
	return size
}

// Strip lays the faces out top to bottom in a size x 6*size image, the
// vertical line layout raylib understands. Faces of another size are
// resampled first.
func (c *Cubemap) Strip() *image.RGBA {
	size := c.FaceSize()
	strip := image.NewRGBA(image.Rect(0, 0, size, size*CubeFaces))
	for i, face := range c.Faces {
		if face == nil {
			continue
		}
		b := face.Bounds()
		if b.Dx() != size || b.Dy() != size {
			face = transform.Resize(face, size, size, transform.Linear)
			b = face.Bounds()
		}
		dst := image.Rect(0, i*size, size, (i+1)*size)
		draw.Copy(strip, dst.Min, face, b, draw.Src, nil)
	}
	return strip
}

// GPU uploads the cubemap on first call.
func (c *Cubemap) GPU() rl.Texture2D {
	if c.uploaded {
		return c.gpu
	}
	img := rl.NewImageFromImage(c.Strip())
	c.gpu = rl.LoadTextureCubemap(img, rl.CubemapLayoutLineVertical)
	rl.UnloadImage(img)
	c.uploaded = true
	return c.gpu
}

func (c *Cubemap) Unload() {
	if !c.uploaded {
		return
	}
	rl.UnloadTexture(c.gpu)
	c.gpu = rl.Texture2D{}
	c.uploaded = false
}
