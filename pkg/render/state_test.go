package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeys reports Press for every key in the set.
type fakeKeys map[glfw.Key]bool

func (f fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if f[key] {
		return Press
	}
	return Release
}

func newTestState() *State {
	return NewState(DefaultConfig())
}

func TestTick(t *testing.T) {
	s := newTestState()

	assert.InDelta(t, 1.5, s.Tick(1.5), 1e-6)
	assert.InDelta(t, 0.25, s.Tick(1.75), 1e-6)
	assert.InDelta(t, 0.25, s.DeltaTime(), 1e-6)
}

func TestProcessInputEscape(t *testing.T) {
	s := newTestState()

	assert.False(t, s.ProcessInput(fakeKeys{}))
	assert.True(t, s.ProcessInput(fakeKeys{KeyEscape: true}))
}

func TestProcessInputMovement(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want mgl32.Vec3
	}{
		{KeyW, mgl32.Vec3{0, 0, 3 - 2.5}},
		{KeyS, mgl32.Vec3{0, 0, 3 + 2.5}},
		{KeyA, mgl32.Vec3{-2.5, 0, 3}},
		{KeyD, mgl32.Vec3{2.5, 0, 3}},
		{KeyE, mgl32.Vec3{0, 2.5, 3}},
		{KeyQ, mgl32.Vec3{0, -2.5, 3}},
	}

	for _, tt := range tests {
		s := newTestState()
		s.Tick(1)

		s.ProcessInput(fakeKeys{tt.key: true})
		assert.True(t, vec3Near(s.Camera.Position(), tt.want, eps), "key %v: got %v want %v", tt.key, s.Camera.Position(), tt.want)
	}
}

func TestProcessInputOpposingKeysCancel(t *testing.T) {
	s := newTestState()
	s.Tick(1)

	s.ProcessInput(fakeKeys{KeyW: true, KeyS: true, KeyA: true, KeyD: true})
	assert.True(t, vec3Near(s.Camera.Position(), DefaultCameraPosition, eps))
}

func TestProcessInputHeightScale(t *testing.T) {
	s := newTestState()

	s.ProcessInput(fakeKeys{KeyO: true})
	assert.InDelta(t, 0.1+HeightScaleStep, s.HeightScale, 1e-6)

	s.ProcessInput(fakeKeys{KeyP: true})
	s.ProcessInput(fakeKeys{KeyP: true})
	assert.InDelta(t, 0.1-HeightScaleStep, s.HeightScale, 1e-6)

	// P wins when both are held.
	s.ProcessInput(fakeKeys{KeyP: true, KeyO: true})
	assert.InDelta(t, 0.1-2*HeightScaleStep, s.HeightScale, 1e-6)
}

func TestProcessInputHeightScaleBounds(t *testing.T) {
	s := newTestState()

	for i := 0; i < 1000; i++ {
		s.ProcessInput(fakeKeys{KeyP: true})
		require.GreaterOrEqual(t, s.HeightScale, float32(MinHeightScale))
	}
	assert.Equal(t, float32(MinHeightScale), s.HeightScale)

	s.HeightScale = 0.999
	for i := 0; i < 10; i++ {
		s.ProcessInput(fakeKeys{KeyO: true})
		require.LessOrEqual(t, s.HeightScale, float32(MaxHeightScale))
	}
	assert.Equal(t, float32(MaxHeightScale), s.HeightScale)
}

func TestHandleCursor(t *testing.T) {
	s := newTestState()

	// The first event only anchors the cursor.
	s.HandleCursor(100, 100)
	yaw, pitch := s.Camera.Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)

	// Moving right and up turns right and looks up.
	s.HandleCursor(150, 80)
	yaw, pitch = s.Camera.Orientation()
	assert.InDelta(t, DefaultYaw+5, yaw, eps)
	assert.InDelta(t, 2, pitch, eps)
}

func TestHandleScroll(t *testing.T) {
	s := newTestState()

	s.HandleScroll(10)
	assert.Equal(t, float32(35), s.Camera.FieldOfView())

	s.HandleScroll(-100)
	assert.Equal(t, float32(MaxZoom), s.Camera.FieldOfView())
}

func TestFrameSnapshot(t *testing.T) {
	s := newTestState()
	s.Tick(2)
	s.HeightScale = 0.3

	f := s.Frame(4.0 / 3.0)
	assert.Equal(t, float32(2), f.Time)
	assert.Equal(t, float32(0.3), f.HeightScale)
	assert.Equal(t, DefaultCameraPosition, f.CameraPos)
	assert.True(t, mat4Near(f.View, s.Camera.ViewMatrix(), 0))
	assert.True(t, mat4Near(f.Projection, s.Camera.ProjectionMatrix(4.0/3.0), 0))
}
