package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyQ      = glfw.KeyQ
	KeyE      = glfw.KeyE
	KeyO      = glfw.KeyO
	KeyP      = glfw.KeyP
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Movement speeds
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Clip planes
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Parallax height scale
const (
	DefaultHeightScale = 0.1
	HeightScaleStep    = 0.0005
	MinHeightScale     = 0.0
	MaxHeightScale     = 1.0
)

// Window defaults
const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultTitle   = "Sandbox"
	DefaultSamples = 4
)

var (
	// DefaultCameraPosition is where the camera starts.
	DefaultCameraPosition = mgl32.Vec3{0, 0, 3}

	// WorldUp is the world's up reference for the camera basis.
	WorldUp = mgl32.Vec3{0, 1, 0}

	// ClearColor is the background color behind the skybox.
	ClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

	// LightPos is the world-space position of the point light on the parallax quad.
	LightPos = mgl32.Vec3{3.2, 4.0, 4.2}
)
