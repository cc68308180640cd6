package world

// Viewport is the window size in logical pixels plus the pixel ratio used
// for the framebuffer.
type Viewport struct {
	Width         int
	Height        int
	PixelRatio    float32
	MaxPixelRatio float32
}

// Resize updates the viewport, clamping dpr to MaxPixelRatio. A zero-area
// size (a minimized window) is ignored.
func (v *Viewport) Resize(width, height int, dpr float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	pr := ClampPixelRatio(dpr, v.MaxPixelRatio)
	if width == v.Width && height == v.Height && pr == v.PixelRatio {
		return false
	}
	v.Width, v.Height, v.PixelRatio = width, height, pr
	return true
}

func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// FramebufferSize is the render target size in device pixels.
func (v Viewport) FramebufferSize() (int, int) {
	return int(float32(v.Width) * v.PixelRatio), int(float32(v.Height) * v.PixelRatio)
}

// ClampPixelRatio limits dpr to (0, max]; a non-positive dpr counts as 1.
func ClampPixelRatio(dpr, max float32) float32 {
	if dpr <= 0 {
		dpr = 1
	}
	if max > 0 && dpr > max {
		return max
	}
	return dpr
}
