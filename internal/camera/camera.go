package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"showroom/internal/components"
	"showroom/internal/engine"
)

// Input is one frame of pointer state relevant to orbiting.
type Input struct {
	MouseDelta rl.Vector2
	Rotating   bool // primary button held
	Panning    bool // secondary button held
	Wheel      float32
}

// InputSource supplies per-frame input. The window implementation polls
// raylib; tests feed recorded values.
type InputSource interface {
	Poll() Input
}

// RaylibInput reads the mouse through raylib.
type RaylibInput struct{}

func (RaylibInput) Poll() Input {
	return Input{
		MouseDelta: rl.GetMouseDelta(),
		Rotating:   rl.IsMouseButtonDown(rl.MouseLeftButton),
		Panning:    rl.IsMouseButtonDown(rl.MouseRightButton),
		Wheel:      rl.GetMouseWheelMove(),
	}
}

// Orbit keeps its GameObject on a sphere around Target and points the
// object's Camera at it.
type Orbit struct {
	engine.BaseComponent
	Target      rl.Vector3
	Yaw         float32 // degrees around +Y
	Pitch       float32 // degrees above the XZ plane
	Distance    float32
	MinDistance float32
	MaxDistance float32
	MaxPitch    float32
	RotateSpeed float32 // degrees per pixel
	PanSpeed    float32 // units per pixel at distance 1
	ZoomSpeed   float32 // fraction of distance per wheel step

	input InputSource
}

func NewOrbit(input InputSource) *Orbit {
	return &Orbit{
		Distance:    5,
		MinDistance: 0.5,
		MaxDistance: 50,
		MaxPitch:    89.9,
		RotateSpeed: 0.3,
		PanSpeed:    0.002,
		ZoomSpeed:   0.1,
		input:       input,
	}
}

// LookFrom places the orbit so that the eye sits at eye, looking at target.
func (o *Orbit) LookFrom(eye, target rl.Vector3) {
	o.Target = target
	offset := rl.Vector3Subtract(eye, target)
	o.Distance = o.clampDistance(rl.Vector3Length(offset))
	if o.Distance == 0 {
		return
	}
	o.Yaw = math32.Atan2(offset.X, offset.Z) * rl.Rad2deg
	o.Pitch = o.clampPitch(math32.Asin(clamp(offset.Y/rl.Vector3Length(offset), -1, 1)) * rl.Rad2deg)
}

func (o *Orbit) Rotate(dx, dy float32) {
	o.Yaw -= dx * o.RotateSpeed
	o.Pitch = o.clampPitch(o.Pitch + dy*o.RotateSpeed)
}

// Zoom moves toward the target for positive steps.
func (o *Orbit) Zoom(steps float32) {
	o.Distance = o.clampDistance(o.Distance * math32.Pow(1-o.ZoomSpeed, steps))
}

// Pan slides the target in the camera's screen plane.
func (o *Orbit) Pan(dx, dy float32) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(o.Target, o.Eye()))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up := rl.Vector3CrossProduct(right, forward)
	scale := o.PanSpeed * o.Distance
	move := rl.Vector3Add(rl.Vector3Scale(right, -dx*scale), rl.Vector3Scale(up, dy*scale))
	o.Target = rl.Vector3Add(o.Target, move)
}

// Eye is the current eye position.
func (o *Orbit) Eye() rl.Vector3 {
	yaw := o.Yaw * rl.Deg2rad
	pitch := o.Pitch * rl.Deg2rad
	cp := math32.Cos(pitch)
	return rl.Vector3Add(o.Target, rl.Vector3{
		X: o.Distance * cp * math32.Sin(yaw),
		Y: o.Distance * math32.Sin(pitch),
		Z: o.Distance * cp * math32.Cos(yaw),
	})
}

func (o *Orbit) Update(deltaTime float32) {
	if o.input != nil {
		in := o.input.Poll()
		switch {
		case in.Rotating:
			o.Rotate(in.MouseDelta.X, in.MouseDelta.Y)
		case in.Panning:
			o.Pan(in.MouseDelta.X, in.MouseDelta.Y)
		}
		if in.Wheel != 0 {
			o.Zoom(in.Wheel)
		}
	}
	o.apply()
}

func (o *Orbit) Start() {
	o.apply()
}

func (o *Orbit) apply() {
	g := o.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = o.Eye()
	if cam := engine.GetComponent[*components.Camera](g); cam != nil {
		cam.Target = o.Target
	}
}

func (o *Orbit) clampPitch(p float32) float32 {
	return clamp(p, -o.MaxPitch, o.MaxPitch)
}

func (o *Orbit) clampDistance(d float32) float32 {
	return clamp(d, o.MinDistance, o.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
