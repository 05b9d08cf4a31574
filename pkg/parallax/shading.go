package parallax

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lighting constants shared with the fragment shader.
const (
	Ambient           = 0.1
	Shininess         = 32.0
	SpecularIntensity = 0.2
)

// UnpackNormal maps a normal-map sample from [0,1] to a unit vector in [-1,1].
func UnpackNormal(sample mgl32.Vec3) mgl32.Vec3 {
	return sample.Mul(2).Sub(mgl32.Vec3{1, 1, 1}).Normalize()
}

// Shade evaluates ambient + Lambert diffuse + Blinn-Phong specular in tangent
// space. lightDir and viewDir point from the surface toward the light and the
// viewer respectively.
func Shade(albedo, normal, lightDir, viewDir mgl32.Vec3) mgl32.Vec3 {
	lightDir = lightDir.Normalize()
	viewDir = viewDir.Normalize()

	ambient := albedo.Mul(Ambient)

	diff := math32.Max(lightDir.Dot(normal), 0)
	diffuse := albedo.Mul(diff)

	halfway := lightDir.Add(viewDir).Normalize()
	spec := math32.Pow(math32.Max(normal.Dot(halfway), 0), Shininess)
	specular := mgl32.Vec3{1, 1, 1}.Mul(SpecularIntensity * spec)

	return ambient.Add(diffuse).Add(specular)
}
