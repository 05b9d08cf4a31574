package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// KeySource reports the current state of a key. *glfw.Window satisfies it.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// State is everything the frame loop mutates between frames.
type State struct {
	Camera      *Camera
	HeightScale float32

	deltaTime float32
	lastFrame float32

	lastX, lastY float32
	firstMouse   bool
}

// NewState creates the per-run state with the mouse anchored at the center of
// the window.
func NewState(cfg Config) *State {
	return &State{
		Camera:      NewCamera(DefaultCameraPosition),
		HeightScale: cfg.HeightScale,
		lastX:       float32(cfg.Width) / 2,
		lastY:       float32(cfg.Height) / 2,
		firstMouse:  true,
	}
}

// Tick advances the frame clock to now, in seconds, and returns the time
// since the previous tick.
func (s *State) Tick(now float64) float32 {
	current := float32(now)
	s.deltaTime = current - s.lastFrame
	s.lastFrame = current
	return s.deltaTime
}

// DeltaTime returns the duration of the last frame in seconds.
func (s *State) DeltaTime() float32 {
	return s.deltaTime
}

// ProcessInput polls the held keys and applies them to the camera and the
// height scale. It reports whether the user asked to quit.
func (s *State) ProcessInput(keys KeySource) bool {
	pressed := func(k glfw.Key) bool { return keys.GetKey(k) == Press }

	quit := pressed(KeyEscape)

	for _, b := range []struct {
		key glfw.Key
		dir Movement
	}{
		{KeyW, Forward},
		{KeyS, Backward},
		{KeyA, Left},
		{KeyD, Right},
		{KeyQ, Down},
		{KeyE, Up},
	} {
		if pressed(b.key) {
			s.Camera.Move(b.dir, s.deltaTime)
		}
	}

	if pressed(KeyP) {
		s.HeightScale = clamp(s.HeightScale-HeightScaleStep, MinHeightScale, MaxHeightScale)
	} else if pressed(KeyO) {
		s.HeightScale = clamp(s.HeightScale+HeightScaleStep, MinHeightScale, MaxHeightScale)
	}

	return quit
}

// HandleCursor turns an absolute cursor position into a camera rotation. The
// first event only records the position.
func (s *State) HandleCursor(xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)

	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
	}

	xoffset := x - s.lastX
	yoffset := s.lastY - y // screen y grows downward
	s.lastX, s.lastY = x, y

	s.Camera.Rotate(xoffset, yoffset, true)
}

// HandleScroll zooms the camera.
func (s *State) HandleScroll(yoffset float64) {
	s.Camera.Zoom(float32(yoffset))
}

// Frame is the per-frame input to Scene.Draw.
type Frame struct {
	Time        float32 // Seconds since start, drives the animations
	View        mgl32.Mat4
	Projection  mgl32.Mat4
	CameraPos   mgl32.Vec3
	HeightScale float32
}

// Frame snapshots the state for drawing at the given aspect ratio.
func (s *State) Frame(aspect float32) Frame {
	return Frame{
		Time:        s.lastFrame,
		View:        s.Camera.ViewMatrix(),
		Projection:  s.Camera.ProjectionMatrix(aspect),
		CameraPos:   s.Camera.Position(),
		HeightScale: s.HeightScale,
	}
}
