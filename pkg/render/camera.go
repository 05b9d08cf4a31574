package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a direction the camera can be moved in, independent of which
// input device asked for it.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}

// Camera is a free-flying camera oriented by Euler angles
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Camera options
	zoom        float32
	moveSpeed   float32
	sensitivity float32
}

// NewCamera creates a camera at position with the default orientation
func NewCamera(position mgl32.Vec3) *Camera {
	return NewCameraWithAngles(position, WorldUp, DefaultYaw, DefaultPitch)
}

// NewCameraWithAngles creates a camera with an explicit world up and orientation
func NewCameraWithAngles(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     worldUp,
		front:       mgl32.Vec3{0, 0, -1},
		yaw:         yaw,
		pitch:       pitch,
		zoom:        DefaultZoom,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
	}

	camera.UpdateOrientation()

	return camera
}

// UpdateOrientation recalculates the front, right and up vectors from the
// Euler angles. It must run after every yaw or pitch change.
func (c *Camera) UpdateOrientation() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()

	// Normalize: their length approaches 0 the more you look up or down.
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// Move displaces the camera along its basis by moveSpeed*deltaTime
func (c *Camera) Move(direction Movement, deltaTime float32) {
	velocity := c.moveSpeed * deltaTime

	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.up.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.up.Mul(velocity))
	}
}

// Rotate applies a mouse offset to yaw and pitch
func (c *Camera) Rotate(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.sensitivity
	yoffset *= c.sensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	// Keep the screen from flipping when pitch goes out of bounds
	if constrainPitch {
		c.pitch = clamp(c.pitch, MinPitch, MaxPitch)
	}

	c.UpdateOrientation()
}

// Zoom narrows the field of view by yoffset degrees
func (c *Camera) Zoom(yoffset float32) {
	c.zoom = clamp(c.zoom-yoffset, MinZoom, MaxZoom)
}

// ViewMatrix returns the look-at transform from the camera position along front
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return LookAt(c.position, c.position.Add(c.front), c.up)
}

// ViewMatrixReversed returns the look-at transform with the view direction
// flipped: the result looks out of the back of the camera.
func (c *Camera) ViewMatrixReversed() mgl32.Mat4 {
	return LookAtReversed(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective projection for the current zoom
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current camera orientation (yaw, pitch)
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// FieldOfView returns the vertical field of view in degrees
func (c *Camera) FieldOfView() float32 {
	return c.zoom
}

// SetMoveSpeed sets the movement speed in units per second
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// SetSensitivity sets the mouse sensitivity
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// FrontVector returns the camera's front direction vector
func (c *Camera) FrontVector() mgl32.Vec3 {
	return c.front
}

// RightVector returns the camera's right direction vector
func (c *Camera) RightVector() mgl32.Vec3 {
	return c.right
}

// UpVector returns the camera's up direction vector
func (c *Camera) UpVector() mgl32.Vec3 {
	return c.up
}

// LookAt builds a view matrix from eye toward target as R * T, where the rows
// of R are the right, up and backward axes and T translates by -eye.
func LookAt(eye, target, worldUp mgl32.Vec3) mgl32.Mat4 {
	return basisView(eye, eye.Sub(target).Normalize(), worldUp)
}

// LookAtReversed is LookAt with the direction axis pointing at the target.
func LookAtReversed(eye, target, worldUp mgl32.Vec3) mgl32.Mat4 {
	return basisView(eye, target.Sub(eye).Normalize(), worldUp)
}

func basisView(eye, direction, worldUp mgl32.Vec3) mgl32.Mat4 {
	right := worldUp.Cross(direction).Normalize()
	up := direction.Cross(right)

	// Column-major: m[col*4+row]
	translation := mgl32.Ident4()
	translation[12] = -eye.X()
	translation[13] = -eye.Y()
	translation[14] = -eye.Z()

	rotation := mgl32.Ident4()
	rotation[0], rotation[4], rotation[8] = right.X(), right.Y(), right.Z()
	rotation[1], rotation[5], rotation[9] = up.X(), up.Y(), up.Z()
	rotation[2], rotation[6], rotation[10] = direction.X(), direction.Y(), direction.Z()

	return rotation.Mul4(translation)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
