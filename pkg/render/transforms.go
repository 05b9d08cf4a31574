package render

import "github.com/go-gl/mathgl/mgl32"

// Model transforms for the fixed scene. t is the elapsed time in seconds.

// spin is the pyramid rotation rate in degrees per second.
const spin = 50.0

var (
	mirrorY       = mgl32.Scale3D(1, -1, 1)
	parallaxAxis  = mgl32.Vec3{1, 0, 1}.Normalize()
	flagPosition  = mgl32.Vec3{3, 0, 4}
	quadPosition  = mgl32.Vec3{3, 4, 4}
	reflectOffset = mgl32.Vec3{1, 0, 2}
)

// PyramidModel spins the upright pyramid about +Y.
func PyramidModel(t float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(t * spin))
}

// MirroredPyramidModel stacks an upside-down copy on the upright pyramid,
// spinning the other way about the same axis.
func MirroredPyramidModel(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, 2, 0).
		Mul4(mirrorY).
		Mul4(mgl32.HomogRotate3DY(-mgl32.DegToRad(t * spin)))
}

// ReflectPyramidModel places the skybox-reflecting pyramid beside the first.
func ReflectPyramidModel(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(reflectOffset.Elem()).
		Mul4(mgl32.HomogRotate3DY(-mgl32.DegToRad(t * spin)))
}

// MirroredReflectPyramidModel is the upside-down half of the reflective pair.
func MirroredReflectPyramidModel(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(reflectOffset.Add(mgl32.Vec3{0, 2, 0}).Elem()).
		Mul4(mirrorY).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t * spin)))
}

// FlagModel places the red quad.
func FlagModel() mgl32.Mat4 {
	return mgl32.Translate3D(flagPosition.Elem())
}

// ParallaxQuadModel tumbles the parallax quad slowly about the XZ diagonal.
func ParallaxQuadModel(t float32) mgl32.Mat4 {
	return mgl32.Translate3D(quadPosition.Elem()).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(t*-10), parallaxAxis))
}

// SkyboxView drops the translation from a view matrix so the skybox stays
// centered on the camera.
func SkyboxView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}
